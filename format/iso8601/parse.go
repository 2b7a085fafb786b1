// File: parse.go
// Title: ISO 8601 Parsing
// Description: Reads strings written in a Style back into component records
//              and instants.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package iso8601

import (
	"fmt"
	"time"

	"github.com/msto63/chrono/calendar"
	chronoerr "github.com/msto63/chrono/core/error"
	"github.com/msto63/chrono/internal/scan"
	"github.com/msto63/chrono/zone"
)

// maxVariableDigits bounds a separator-terminated field.
const maxVariableDigits = 9

// Parse extracts the components of s without filling in missing units.
func (s Style) Parse(str string) (calendar.Components, error) {
	return s.ParseComponents(str, false)
}

// ParseComponents parses s, which must be consumed entirely. With fill set,
// an absent year becomes 1970 and an absent month becomes 1 so the result
// names a concrete date.
func (s Style) ParseComponents(str string, fill bool) (calendar.Components, error) {
	b := []byte(str)
	c, n, err := s.ParsePrefix(b, fill)
	if err != nil {
		return calendar.Components{}, err
	}
	if n != len(b) {
		return calendar.Components{}, s.formatter().failure(chronoerr.CodeMalformedInput,
			"unexpected text after date", "end of input", b, n)
	}
	return c, nil
}

// ParsePrefix parses a value at the start of b and returns the number of
// bytes consumed.
func (s Style) ParsePrefix(b []byte, fill bool) (calendar.Components, int, error) {
	return s.formatter().parse(b, fill)
}

// ParseTime parses s and materializes it with the Gregorian calendar.
func (s Style) ParseTime(str string) (time.Time, error) {
	c, err := s.ParseComponents(str, true)
	if err != nil {
		return time.Time{}, err
	}
	t, ok := calendar.Gregorian.Date(c)
	if !ok {
		return time.Time{}, chronoerr.ParseFailure(chronoerr.CodeUnsupportedCombination,
			"date does not exist", str, 0, s.formatter().example).WithOperation("iso8601.ParseTime")
	}
	return t, nil
}

func (f *formatter) parse(b []byte, fill bool) (calendar.Components, int, error) {
	var c calendar.Components
	cur := scan.New(b)

	for _, st := range f.steps {
		start := cur.Offset()
		switch st.kind {
		case stepLiteral:
			if !cur.MatchStringFold(st.text) {
				return c, 0, f.failure(chronoerr.CodeMalformedInput,
					fmt.Sprintf("expected %q", st.text), st.text, b, start)
			}

		case stepNumber:
			var v int
			var ok bool
			if st.fixed {
				v, ok = cur.FixedDigits(st.width)
			} else {
				v, ok = cur.Digits(1, maxVariableDigits)
			}
			if !ok {
				return c, 0, f.failure(chronoerr.CodeMalformedInput,
					"expected "+st.unit.String(), st.unit.String(), b, start)
			}
			if r, _ := calendar.Gregorian.MaximumRange(st.unit); !r.Contains(v) {
				return c, 0, f.failure(chronoerr.CodeValueOutOfRange,
					st.unit.String()+" out of range", st.unit.String(), b, start).WithDetail("value", v)
			}
			c.Set(st.unit, v)

		case stepWeekday:
			v, ok := cur.FixedDigits(1)
			if !ok {
				return c, 0, f.failure(chronoerr.CodeMalformedInput,
					"expected weekday", "weekday", b, start)
			}
			if v < 1 || v > 7 {
				return c, 0, f.failure(chronoerr.CodeValueOutOfRange,
					"weekday out of range", "weekday", b, start).WithDetail("value", v)
			}
			c.Set(calendar.Weekday, calendarWeekday(v))

		case stepFraction:
			if _, ok := cur.MatchAny(".,"); !ok {
				continue
			}
			ns, ok := fraction(cur)
			if !ok {
				return c, 0, f.failure(chronoerr.CodeMalformedInput,
					"expected fractional seconds", "fraction", b, cur.Offset())
			}
			c.Set(calendar.Nanosecond, ns)

		case stepZone:
			z, err := f.parseZone(cur, b)
			if err != nil {
				return c, 0, err
			}
			c.Zone = z
		}
	}

	if c.Zone == nil {
		c.Zone = f.style.Zone()
	}
	if fill {
		if !c.Has(calendar.Year) && !c.Has(calendar.YearForWeekOfYear) {
			c.Set(calendar.Year, 1970)
		}
		if !c.Has(calendar.Month) {
			c.Set(calendar.Month, 1)
		}
	}
	return c, cur.Offset(), nil
}

// fraction reads the digits of a decimal fraction as nanoseconds. Digits
// beyond the ninth are consumed and dropped.
func fraction(cur *scan.Cursor) (int, bool) {
	ns, n := 0, 0
	for cur.PeekDigit() {
		d := int(cur.Next() - '0')
		if n < 9 {
			ns = ns*10 + d
		}
		n++
	}
	if n == 0 {
		return 0, false
	}
	for i := n; i < 9; i++ {
		ns *= 10
	}
	return ns, true
}

// parseZone reads "Z", an optional "GMT"/"UTC" prefix and a signed offset
// of the form HH, HHMM, HH:MM, HHMMSS or HH:MM:SS.
func (f *formatter) parseZone(cur *scan.Cursor, b []byte) (zone.Zone, error) {
	start := cur.Offset()
	if cur.MatchFold('Z') {
		return zone.GMT, nil
	}

	named := cur.MatchStringFold("GMT") || cur.MatchStringFold("UTC")
	sign, ok := cur.MatchAny("+-")
	if !ok {
		if named {
			return zone.GMT, nil
		}
		return nil, f.failure(chronoerr.CodeMalformedInput,
			"expected time zone", "Z or offset", b, start)
	}

	hours, ok := cur.Digits(1, 2)
	if !ok {
		return nil, f.failure(chronoerr.CodeMalformedInput,
			"expected offset hours", "offset hours", b, cur.Offset())
	}
	var minutes, seconds int
	colon := cur.Match(':')
	if colon || cur.PeekDigit() {
		if minutes, ok = cur.FixedDigits(2); !ok {
			return nil, f.failure(chronoerr.CodeMalformedInput,
				"expected offset minutes", "offset minutes", b, cur.Offset())
		}
		var more bool
		if colon {
			more = cur.Match(':')
		} else {
			more = cur.PeekDigit()
		}
		if more {
			if seconds, ok = cur.FixedDigits(2); !ok {
				return nil, f.failure(chronoerr.CodeMalformedInput,
					"expected offset seconds", "offset seconds", b, cur.Offset())
			}
		}
	}

	total := hours*3600 + minutes*60 + seconds
	if hours > 18 || minutes > 59 || seconds > 59 || total > zone.MaxOffset {
		return nil, f.failure(chronoerr.CodeValueOutOfRange,
			"time zone offset out of range", "offset", b, start).WithDetail("seconds", total)
	}
	if sign == '-' {
		total = -total
	}
	z, err := zone.DefaultResolver().Offset(total)
	if err != nil {
		return nil, chronoerr.Wrap(err, "resolve offset").WithOperation("iso8601.Parse")
	}
	return z, nil
}

// failure builds a parse error quoting up to eight bytes found at offset.
func (f *formatter) failure(code chronoerr.Code, reason, expected string, b []byte, offset int) *chronoerr.Error {
	if offset > len(b) {
		offset = len(b)
	}
	found := b[offset:]
	if len(found) > 8 {
		found = found[:8]
	}
	return chronoerr.ParseFailure(code, reason, string(b), offset, f.example).
		WithOperation("iso8601.Parse").
		WithDetails(map[string]interface{}{
			"expected": expected,
			"found":    string(found),
		})
}
