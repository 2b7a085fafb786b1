package duration

import (
	"math"
	"testing"
	"time"
)

func sameValues(got, want []Value) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i].Unit != want[i].Unit || math.Abs(got[i].Amount-want[i].Amount) > 1e-9 {
			return false
		}
	}
	return true
}

func TestSelect(t *testing.T) {
	hms := NewUnitSet(Hours, Minutes, Seconds)
	ms := NewUnitSet(Minutes, Seconds)

	tests := []struct {
		name   string
		d      time.Duration
		policy Policy
		want   []Value
	}{
		{"default", time.Hour + 5*time.Minute + 3*time.Second, DefaultPolicy(),
			[]Value{{Hours, 1}, {Minutes, 5}, {Seconds, 3}}},
		{"zero units hidden", time.Hour + 3*time.Second, DefaultPolicy(),
			[]Value{{Hours, 1}, {Seconds, 3}}},
		{"zero duration keeps smallest", 0, DefaultPolicy(),
			[]Value{{Seconds, 0}}},
		{"zero units shown", 90 * time.Second, Policy{Units: hms, ZeroUnits: ShowZeroUnits},
			[]Value{{Hours, 0}, {Minutes, 1}, {Seconds, 30}}},
		{"max units window", time.Hour + 2*time.Minute + 3*time.Second, Policy{Units: hms, MaxUnits: 2},
			[]Value{{Hours, 1}, {Minutes, 2}}},
		{"hiding zeros fits budget", time.Hour + 3*time.Second, Policy{Units: hms, MaxUnits: 2},
			[]Value{{Hours, 1}, {Seconds, 3}}},
		{"window starts at first nonzero", 2*time.Minute + 3*time.Second, Policy{Units: hms, MaxUnits: 2, ZeroUnits: ShowZeroUnits},
			[]Value{{Minutes, 2}, {Seconds, 3}}},
		{"all zero window ends at smallest", 0, Policy{Units: hms, MaxUnits: 2, ZeroUnits: ShowZeroUnits},
			[]Value{{Minutes, 0}, {Seconds, 0}}},
		{"window rounds half to even", 2*time.Hour + 30*time.Minute, Policy{Units: hms, MaxUnits: 1},
			[]Value{{Hours, 2}}},
		{"window rounds odd half up", time.Hour + 30*time.Minute, Policy{Units: hms, MaxUnits: 1},
			[]Value{{Hours, 2}}},
		{"fraction on smallest", time.Hour + 2*time.Minute + 30*time.Second, Policy{Units: NewUnitSet(Hours, Minutes), FractionDigits: 1},
			[]Value{{Hours, 1}, {Minutes, 2.5}}},
		{"rounding carries", 59*time.Second + 600*time.Millisecond, Policy{Units: ms},
			[]Value{{Minutes, 1}}},
		{"rounding carries shown", 59*time.Second + 600*time.Millisecond, Policy{Units: ms, ZeroUnits: ShowZeroUnits},
			[]Value{{Minutes, 1}, {Seconds, 0}}},
		{"increment", 67 * time.Second, Policy{Units: ms, Increment: 15},
			[]Value{{Minutes, 1}}},
		{"negative", -90 * time.Second, Policy{Units: ms},
			[]Value{{Minutes, -1}, {Seconds, 30}}},
		{"weeks and days", 9 * 24 * time.Hour, Policy{Units: NewUnitSet(Weeks, Days)},
			[]Value{{Weeks, 1}, {Days, 2}}},
		{"sub-second units", 1500 * time.Microsecond, Policy{Units: NewUnitSet(Milliseconds, Microseconds)},
			[]Value{{Milliseconds, 1}, {Microseconds, 500}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Select(tt.d, tt.policy); !sameValues(got, tt.want) {
				t.Errorf("Select(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestSelectNegativeZero(t *testing.T) {
	got := Select(-30*time.Second, Policy{Units: NewUnitSet(Minutes, Seconds), ZeroUnits: ShowZeroUnits})
	if len(got) != 2 {
		t.Fatalf("Select() = %v, want two values", got)
	}
	if !got[0].Negative() || math.Abs(got[0].Amount) > 1e-300 {
		t.Errorf("first value = %v, want negative zero", got[0].Amount)
	}
	if got[1].Negative() || got[1].Amount != 30 {
		t.Errorf("second value = %v, want 30", got[1].Amount)
	}
}

func TestRoundingRules(t *testing.T) {
	seconds := NewUnitSet(Seconds)
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }

	tests := []struct {
		rule RoundingRule
		d    time.Duration
		want float64
	}{
		{ToNearestOrEven, ms(1500), 2},
		{ToNearestOrEven, ms(2500), 2},
		{ToNearestOrEven, ms(-2500), -2},
		{ToNearestOrEven, ms(2501), 3},
		{ToNearestOrAwayFromZero, ms(2500), 3},
		{ToNearestOrAwayFromZero, ms(-2500), -3},
		{ToNearestOrAwayFromZero, ms(2499), 2},
		{Up, ms(2100), 3},
		{Up, ms(-2900), -2},
		{Down, ms(2900), 2},
		{Down, ms(-2100), -3},
		{TowardZero, ms(2900), 2},
		{TowardZero, ms(-2900), -2},
		{AwayFromZero, ms(2100), 3},
		{AwayFromZero, ms(-2100), -3},
		{AwayFromZero, ms(2000), 2},
	}
	for _, tt := range tests {
		t.Run(tt.rule.String(), func(t *testing.T) {
			got := Select(tt.d, Policy{Units: seconds, Rounding: tt.rule})
			if len(got) != 1 || got[0].Amount != tt.want {
				t.Errorf("Select(%v, %v) = %v, want %v", tt.d, tt.rule, got, tt.want)
			}
		})
	}
}

func TestSelectMonotonic(t *testing.T) {
	policies := []Policy{
		DefaultPolicy(),
		{Units: NewUnitSet(Weeks, Days, Hours, Minutes, Seconds, Milliseconds), MaxUnits: 3},
		{Units: NewUnitSet(Days, Minutes, Nanoseconds), MaxUnits: 2, ZeroUnits: ShowZeroUnits},
		{Units: NewUnitSet(Hours, Seconds), MaxUnits: 1, FractionDigits: 3},
		{Units: NewUnitSet(Weeks, Days, Hours, Minutes, Seconds, Milliseconds, Microseconds, Nanoseconds), ZeroUnits: ShowZeroUnits},
	}
	durations := []time.Duration{
		0, 1, -1, 999 * time.Millisecond, 61 * time.Second, -3601 * time.Second,
		36*time.Hour + 7*time.Nanosecond, 15 * 24 * time.Hour, math.MaxInt64, math.MinInt64,
	}

	for _, p := range policies {
		for _, d := range durations {
			values := Select(d, p)
			if len(values) == 0 {
				t.Fatalf("Select(%v) returned no values", d)
			}
			if p.MaxUnits > 0 && len(values) > p.MaxUnits {
				t.Errorf("Select(%v) = %v, longer than %d", d, values, p.MaxUnits)
			}
			for i := 1; i < len(values); i++ {
				if values[i].Unit <= values[i-1].Unit {
					t.Errorf("Select(%v) = %v, units not strictly decreasing", d, values)
				}
				if values[i].Negative() {
					t.Errorf("Select(%v) = %v, only the first value may be negative", d, values)
				}
			}
			if d < 0 && !values[0].Negative() {
				t.Errorf("Select(%v) = %v, first value lost its sign", d, values)
			}
		}
	}
}

func TestParseUnit(t *testing.T) {
	tests := map[string]Unit{"hours": Hours, "Hour": Hours, "h": Hours, "ms": Milliseconds, "weeks": Weeks, "μs": Microseconds}
	for input, want := range tests {
		if got, ok := ParseUnit(input); !ok || got != want {
			t.Errorf("ParseUnit(%q) = %v, %v; want %v", input, got, ok, want)
		}
	}
	set, unknown := ParseUnitSet([]string{"hours", "fortnights", "s"})
	if !set.Has(Hours) || !set.Has(Seconds) || set.Has(Minutes) {
		t.Errorf("ParseUnitSet() = %v", set.Units())
	}
	if len(unknown) != 1 || unknown[0] != "fortnights" {
		t.Errorf("ParseUnitSet() unknown = %v", unknown)
	}
}

func TestParseRoundingRule(t *testing.T) {
	tests := []struct {
		input string
		want  RoundingRule
	}{
		{"toNearestOrEven", ToNearestOrEven},
		{"to-nearest-or-away-from-zero", ToNearestOrAwayFromZero},
		{"UP", Up},
		{"toward_zero", TowardZero},
	}
	for _, tt := range tests {
		if got, ok := ParseRoundingRule(tt.input); !ok || got != tt.want {
			t.Errorf("ParseRoundingRule(%q) = %v, %v; want %v", tt.input, got, ok, tt.want)
		}
	}
	if _, ok := ParseRoundingRule("sideways"); ok {
		t.Error("ParseRoundingRule(sideways) succeeded")
	}
}
