package iso8601

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"golang.org/x/sync/errgroup"

	"github.com/msto63/chrono/calendar"
	chronoerr "github.com/msto63/chrono/core/error"
	"github.com/msto63/chrono/zone"
)

var reference = time.Date(2015, time.November, 14, 15, 5, 3, 123456789, time.UTC)

func fixed(t *testing.T, seconds int) zone.Zone {
	t.Helper()
	z, err := zone.Fixed(seconds)
	if err != nil {
		t.Fatalf("Fixed(%d) error = %v", seconds, err)
	}
	return z
}

func TestFormatTime(t *testing.T) {
	plusOne := fixed(t, 3600)
	odd := fixed(t, -(5*3600 + 30*60 + 15))

	tests := []struct {
		name  string
		style Style
		at    time.Time
		want  string
	}{
		{"default", Default, reference, "2015-11-14T15:05:03Z"},
		{"fractional", Default.FractionalSeconds(true), reference, "2015-11-14T15:05:03.123Z"},
		{"date only", New().Year().Month().Day(), reference, "2015-11-14"},
		{"basic date", New().Year().Month().Day().DateSeparator(DateSeparatorOmitted), reference, "20151114"},
		{"week date", New().Year().WeekOfYear().Day(), reference, "2015-W46-6"},
		{"week across year end", New().Year().WeekOfYear().Day(), time.Date(2014, 12, 29, 0, 0, 0, 0, time.UTC), "2015-W01-1"},
		{"sunday is seven", New().Year().WeekOfYear().Day(), time.Date(2015, 11, 15, 0, 0, 0, 0, time.UTC), "2015-W46-7"},
		{"ordinal date", New().Year().Day(), reference, "2015-318"},
		{"year and month", New().Year().Month(), reference, "2015-11"},
		{"time only", New().Time(false), reference, "15:05:03"},
		{"offset", Default.In(plusOne), reference, "2015-11-14T16:05:03+0100"},
		{"offset with colon", New().Year().Month().Day().Time(false).TimeZone(TimeZoneSeparatorColon).In(plusOne), reference, "2015-11-14T16:05:03+01:00"},
		{"offset seconds", New().Year().Month().Day().Time(false).TimeZone(TimeZoneSeparatorColon).In(odd), reference, "2015-11-14T09:34:48-05:30:15"},
		{"space and basic time", Default.DateTimeSeparator(DateTimeSeparatorSpace).TimeSeparator(TimeSeparatorOmitted), reference, "2015-11-14 150503Z"},
		{"fully basic", Default.DateSeparator(DateSeparatorOmitted).TimeSeparator(TimeSeparatorOmitted), reference, "20151114T150503Z"},
		{"small year", New().Year(), time.Date(7, 1, 1, 0, 0, 0, 0, time.UTC), "0007"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.FormatTime(tt.at); got != tt.want {
				t.Errorf("FormatTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatNamedZone(t *testing.T) {
	berlin, err := zone.DefaultResolver().Named("Europe/Berlin")
	if err != nil {
		t.Fatalf("Named() error = %v", err)
	}
	s := New().Year().Month().Day().Time(false).TimeZone(TimeZoneSeparatorColon).In(berlin)
	tests := []struct {
		at   time.Time
		want string
	}{
		{reference, "2015-11-14T16:05:03+01:00"},
		{time.Date(2015, 7, 1, 12, 0, 0, 0, time.UTC), "2015-07-01T14:00:00+02:00"},
	}
	for _, tt := range tests {
		if got := s.FormatTime(tt.at); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.at, got, tt.want)
		}
	}
}

func TestFormatComponents(t *testing.T) {
	var c calendar.Components
	c.Set(calendar.Year, 2015)
	if got, want := Default.Format(c), "2015-01-01T00:00:00Z"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}

	c.Set(calendar.Hour, 10)
	c.Zone = fixed(t, 3600)
	if got, want := Default.Format(c), "2015-01-01T10:00:00+0100"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}

	var w calendar.Components
	w.Set(calendar.Year, 2020)
	w.Set(calendar.WeekOfYear, 53)
	w.Set(calendar.Weekday, 6)
	if got, want := New().Year().WeekOfYear().Day().Format(w), "2020-W53-5"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}

	dst := Default.AppendFormat([]byte("at "), c)
	if got, want := string(dst), "at 2015-01-01T10:00:00+0100"; got != want {
		t.Errorf("AppendFormat() = %q, want %q", got, want)
	}
}

func TestParseTime(t *testing.T) {
	at := time.Date(2015, 11, 14, 15, 5, 3, 0, time.UTC)
	basic := Default.DateSeparator(DateSeparatorOmitted).TimeSeparator(TimeSeparatorOmitted)

	tests := []struct {
		name  string
		style Style
		input string
		want  time.Time
	}{
		{"default", Default, "2015-11-14T15:05:03Z", at},
		{"lower case", Default, "2015-11-14t15:05:03z", at},
		{"fraction", Default, "2015-11-14T15:05:03.5Z", at.Add(500 * time.Millisecond)},
		{"comma fraction truncated", Default, "2015-11-14T15:05:03,123456789123Z", at.Add(123456789)},
		{"offset", Default, "2015-11-14T16:05:03+0100", at},
		{"offset with colon", Default, "2015-11-14T16:05:03+01:00", at},
		{"offset hours only", Default, "2015-11-14T16:05:03+01", at},
		{"offset seconds", Default, "2015-11-14T09:34:48-05:30:15", at},
		{"gmt prefix", Default, "2015-11-14T16:05:03GMT+01:00", at},
		{"utc literal", Default, "2015-11-14T15:05:03UTC", at},
		{"short fields", Default, "2015-11-14T15:5:3Z", at},
		{"basic", basic, "20151114T150503Z", at},
		{"week date", New().Year().WeekOfYear().Day(), "2015-W46-6", time.Date(2015, 11, 14, 0, 0, 0, 0, time.UTC)},
		{"ordinal date", New().Year().Day(), "2015-318", time.Date(2015, 11, 14, 0, 0, 0, 0, time.UTC)},
		{"time only fills date", New().Time(false), "15:05:03", time.Date(1970, 1, 1, 15, 5, 3, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.style.ParseTime(tt.input)
			if err != nil {
				t.Fatalf("ParseTime(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFill(t *testing.T) {
	s := New().Month().Day()

	c, err := s.Parse("11-14")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Has(calendar.Year) {
		t.Error("Parse() without fill set a year")
	}
	if v, _ := c.Value(calendar.Day); v != 14 {
		t.Errorf("day = %d, want 14", v)
	}

	c, err = s.ParseComponents("11-14", true)
	if err != nil {
		t.Fatalf("ParseComponents() error = %v", err)
	}
	if v, _ := c.Value(calendar.Year); v != 1970 {
		t.Errorf("year = %d, want 1970", v)
	}

	c, err = New().Year().ParseComponents("2015", true)
	if err != nil {
		t.Fatalf("ParseComponents() error = %v", err)
	}
	if v, _ := c.Value(calendar.Month); v != 1 {
		t.Errorf("month = %d, want 1", v)
	}
}

func TestParseZone(t *testing.T) {
	plusOne := fixed(t, 3600)

	c, err := Default.Parse("2015-11-14T16:05:03+01:00")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !zone.Equal(c.Zone, plusOne) {
		t.Errorf("zone = %v, want %v", c.Zone, plusOne)
	}

	c, err = New().Year().Month().Day().In(plusOne).Parse("2015-11-14")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !zone.Equal(c.Zone, plusOne) {
		t.Errorf("zone without zone field = %v, want style zone %v", c.Zone, plusOne)
	}
}

func TestParseErrors(t *testing.T) {
	week := New().Year().WeekOfYear().Day()

	tests := []struct {
		name   string
		style  Style
		input  string
		code   chronoerr.Code
		offset int
	}{
		{"month out of range", Default, "2015-13-14T15:05:03Z", chronoerr.CodeValueOutOfRange, 5},
		{"hour out of range", Default, "2015-11-14T25:05:03Z", chronoerr.CodeValueOutOfRange, 11},
		{"bad separator", Default, "2015-11-14X15:05:03Z", chronoerr.CodeMalformedInput, 10},
		{"missing zone", Default, "2015-11-14T15:05:03", chronoerr.CodeMalformedInput, 19},
		{"offset out of range", Default, "2015-11-14T15:05:03+19:00", chronoerr.CodeValueOutOfRange, 19},
		{"empty fraction", Default, "2015-11-14T15:05:03.Z", chronoerr.CodeMalformedInput, 20},
		{"trailing text", Default, "2015-11-14T15:05:03Zjunk", chronoerr.CodeMalformedInput, 20},
		{"short basic year", New().Year().DateSeparator(DateSeparatorOmitted), "215", chronoerr.CodeMalformedInput, 0},
		{"missing week marker", week, "2015-46-6", chronoerr.CodeMalformedInput, 5},
		{"weekday out of range", week, "2015-W46-8", chronoerr.CodeValueOutOfRange, 9},
		{"empty", Default, "", chronoerr.CodeMalformedInput, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.style.Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded", tt.input)
			}
			if got := chronoerr.GetCode(err); got != tt.code {
				t.Errorf("GetCode() = %v, want %v", got, tt.code)
			}
			var e *chronoerr.Error
			if !errors.As(err, &e) {
				t.Fatalf("error %T is not *Error", err)
			}
			if e.Offset() != tt.offset {
				t.Errorf("Offset() = %d, want %d", e.Offset(), tt.offset)
			}
			if e.Input() != tt.input {
				t.Errorf("Input() = %q, want %q", e.Input(), tt.input)
			}
			if e.Example() != tt.style.FormatTime(exampleTime) {
				t.Errorf("Example() = %q, want %q", e.Example(), tt.style.FormatTime(exampleTime))
			}
		})
	}
}

func TestParseTimeNonexistentDate(t *testing.T) {
	_, err := Default.ParseTime("2015-02-30T00:00:00Z")
	if got := chronoerr.GetCode(err); got != chronoerr.CodeUnsupportedCombination {
		t.Errorf("GetCode() = %v, want %v", got, chronoerr.CodeUnsupportedCombination)
	}
}

func TestParsePrefix(t *testing.T) {
	input := []byte("2015-11-14T15:05:03Z rest")
	_, n, err := Default.ParsePrefix(input, false)
	if err != nil {
		t.Fatalf("ParsePrefix() error = %v", err)
	}
	if n != 20 {
		t.Errorf("ParsePrefix() consumed %d bytes, want 20", n)
	}
}

func TestRoundTrip(t *testing.T) {
	berlin, err := zone.DefaultResolver().Named("Europe/Berlin")
	if err != nil {
		t.Fatalf("Named() error = %v", err)
	}
	plusOne := fixed(t, 3600)
	odd := fixed(t, -(3*3600 + 30*60 + 20))

	styles := map[string]Style{
		"default":        Default,
		"fractional":     Default.FractionalSeconds(true),
		"berlin":         New().Year().Month().Day().Time(false).TimeZone(TimeZoneSeparatorColon).In(berlin),
		"odd offset":     New().Year().Month().Day().Time(false).TimeZone(TimeZoneSeparatorColon).In(odd),
		"basic":          Default.DateSeparator(DateSeparatorOmitted).TimeSeparator(TimeSeparatorOmitted),
		"space":          Default.DateTimeSeparator(DateTimeSeparatorSpace),
		"week":           New().Year().WeekOfYear().Day().Time(true).TimeZone(TimeZoneSeparatorOmitted).In(berlin),
		"basic week":     New().Year().WeekOfYear().Day().DateSeparator(DateSeparatorOmitted),
		"year and week":  New().Year().WeekOfYear(),
		"ordinal":        New().Year().Day().Time(false),
		"date":           New().Year().Month().Day(),
		"year":           New().Year(),
		"time with zone": New().Time(true).TimeZone(TimeZoneSeparatorColon).In(plusOne),
	}
	instants := []time.Time{
		reference,
		time.Date(2014, 12, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2016, 2, 29, 23, 59, 59, 999000000, time.UTC),
		time.Date(2015, 7, 1, 12, 0, 0, 0, time.UTC),
		time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 12, 31, 22, 30, 0, 0, time.UTC),
	}

	for name, s := range styles {
		t.Run(name, func(t *testing.T) {
			for _, at := range instants {
				text := s.FormatTime(at)
				parsed, err := s.ParseTime(text)
				if err != nil {
					t.Fatalf("ParseTime(%q) error = %v", text, err)
				}
				if again := s.FormatTime(parsed); again != text {
					t.Errorf("FormatTime(ParseTime(%q)) = %q", text, again)
				}
			}
		})
	}
}

func TestFormatRepeatedHour(t *testing.T) {
	berlin, err := zone.DefaultResolver().Named("Europe/Berlin")
	if err != nil {
		t.Fatalf("Named() error = %v", err)
	}
	s := New().Year().Month().Day().Time(false).TimeZone(TimeZoneSeparatorColon).In(berlin)

	// 02:00-03:00 local time occurs twice on 2005-10-30.
	tests := []struct {
		at   time.Time
		want string
	}{
		{time.Date(2005, 10, 30, 0, 36, 31, 0, time.UTC), "2005-10-30T02:36:31+02:00"},
		{time.Date(2005, 10, 30, 1, 36, 31, 0, time.UTC), "2005-10-30T02:36:31+01:00"},
		{time.Date(2005, 3, 27, 0, 59, 59, 0, time.UTC), "2005-03-27T01:59:59+01:00"},
		{time.Date(2005, 3, 27, 1, 0, 0, 0, time.UTC), "2005-03-27T03:00:00+02:00"},
	}
	for _, tt := range tests {
		got := s.FormatTime(tt.at)
		if got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.at, got, tt.want)
			continue
		}
		parsed, err := s.ParseTime(got)
		if err != nil {
			t.Fatalf("ParseTime(%q) error = %v", got, err)
		}
		if !parsed.Equal(tt.at) {
			t.Errorf("ParseTime(%q) = %v, want %v", got, parsed.UTC(), tt.at)
		}
	}
}

func TestRoundTripInstant(t *testing.T) {
	s := Default.FractionalSeconds(true)
	at := reference.Truncate(time.Millisecond)
	got, err := s.ParseTime(s.FormatTime(at))
	if err != nil {
		t.Fatalf("ParseTime() error = %v", err)
	}
	if !got.Equal(at) {
		t.Errorf("ParseTime(FormatTime()) = %v, want %v", got, at)
	}
}

func TestFormatterCache(t *testing.T) {
	defer SetFormatterCacheLimit(DefaultFormatterCacheLimit)
	SetFormatterCacheLimit(2)

	before := FormatterCacheStats()
	for _, s := range []Style{Default, New().Year(), New().Month(), New().Day()} {
		s.FormatTime(reference)
	}
	after := FormatterCacheStats()
	if after.Resets <= before.Resets {
		t.Errorf("Resets = %d, want more than %d", after.Resets, before.Resets)
	}
}

func TestSetFormatterCacheLimitClears(t *testing.T) {
	defer SetFormatterCacheLimit(DefaultFormatterCacheLimit)
	SetFormatterCacheLimit(DefaultFormatterCacheLimit)
	Default.FormatTime(reference)

	before := FormatterCacheStats().Resets
	SetFormatterCacheLimit(DefaultFormatterCacheLimit)
	if got := FormatterCacheStats().Resets; got != before {
		t.Errorf("unchanged limit: Resets = %d, want %d", got, before)
	}
	SetFormatterCacheLimit(DefaultFormatterCacheLimit + 1)
	if got := FormatterCacheStats().Resets; got != before+1 {
		t.Errorf("changed limit: Resets = %d, want %d", got, before+1)
	}
	if formatters.Size() != 0 {
		t.Errorf("formatters.Size() = %d after limit change, want 0", formatters.Size())
	}
}

func TestConcurrentUse(t *testing.T) {
	styles := []Style{Default, Default.FractionalSeconds(true), New().Year().WeekOfYear().Day()}
	var g errgroup.Group
	for i := 0; i < 32; i++ {
		s := styles[i%len(styles)]
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				text := s.FormatTime(reference)
				if _, err := s.Parse(text); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent parse error = %v", err)
	}
}
