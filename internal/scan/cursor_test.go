package scan

import "testing"

func TestDigits(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		min, max  int
		want      int
		wantOK    bool
		wantOffst int
	}{
		{"exact", "1994", 4, 4, 1994, true, 4},
		{"stops at max", "123456", 1, 3, 123, true, 3},
		{"stops at non-digit", "12:30", 1, 9, 12, true, 2},
		{"too few", "1:30", 2, 2, 0, false, 0},
		{"leading non-digit", "x12", 1, 2, 0, false, 0},
		{"empty", "", 1, 2, 0, false, 0},
		{"zero min still needs a digit", "ab", 0, 2, 0, false, 0},
		{"leading zeros", "007", 3, 3, 7, true, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewString(tt.input)
			got, ok := c.Digits(tt.min, tt.max)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Digits() = %d, %v, want %d, %v", got, ok, tt.want, tt.wantOK)
			}
			if c.Offset() != tt.wantOffst {
				t.Errorf("Offset() = %d, want %d", c.Offset(), tt.wantOffst)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	c := NewString("GMT+01")
	if c.Match('X') {
		t.Error("Match('X') = true")
	}
	if !c.MatchString("GMT") {
		t.Fatal("MatchString(GMT) = false")
	}
	if b, ok := c.MatchAny("+-"); !ok || b != '+' {
		t.Errorf("MatchAny() = %q, %v", b, ok)
	}
	if c.MatchString("0123") {
		t.Error("MatchString past end should fail")
	}
	if c.Offset() != 4 {
		t.Errorf("Offset() = %d, want 4", c.Offset())
	}
	if string(c.Rest()) != "01" {
		t.Errorf("Rest() = %q", c.Rest())
	}
}

func TestMatchFold(t *testing.T) {
	c := NewString("zUtC")
	if !c.MatchFold('Z') {
		t.Error("MatchFold('Z') = false")
	}
	if !c.MatchStringFold("utc") {
		t.Error("MatchStringFold(utc) = false")
	}
	if !c.Done() {
		t.Error("Done() = false")
	}
}

func TestSkip(t *testing.T) {
	c := NewString("   06")
	if n := c.SkipAll(' '); n != 3 {
		t.Errorf("SkipAll() = %d, want 3", n)
	}
	if c.SkipSome(' ') {
		t.Error("SkipSome() = true with no spaces left")
	}
	if n := c.SkipAll(' '); n != 0 {
		t.Errorf("SkipAll() = %d, want 0", n)
	}
	if !c.PeekDigit() {
		t.Error("PeekDigit() = false")
	}
}

func TestNextAndTake(t *testing.T) {
	c := NewString("Sun,")
	name, ok := c.Take(3)
	if !ok || string(name) != "Sun" {
		t.Errorf("Take(3) = %q, %v", name, ok)
	}
	if _, ok := c.Take(2); ok {
		t.Error("Take past end should fail")
	}
	if b := c.Next(); b != ',' {
		t.Errorf("Next() = %q", b)
	}
	if b := c.Next(); b != EOF {
		t.Errorf("Next() at end = %q, want EOF", b)
	}
	if c.Peek() != EOF {
		t.Error("Peek() at end should be EOF")
	}
}
