// File: httpdate.go
// Title: HTTP-date Codec
// Description: Formats and parses the fixed RFC 9110 date grammar
//              "Sun, 06 Nov 1994 08:49:37 GMT".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package httpdate converts between component records and HTTP dates.
//
// Formatting is total: absent fields take their calendar defaults and an
// out-of-range weekday or month falls back to the first name in the table.
// Parsing is strict about field widths and literals, with two leniencies:
// the weekday name may be left out, and a leap second (60) is read as 59.
package httpdate

import (
	"time"

	"github.com/msto63/chrono/calendar"
	chronoerr "github.com/msto63/chrono/core/error"
	"github.com/msto63/chrono/internal/scan"
	"github.com/msto63/chrono/utils/mathx"
	"github.com/msto63/chrono/zone"
)

// Example is a well-formed HTTP date.
const Example = "Sun, 06 Nov 1994 08:49:37 GMT"

// Length is the length of a formatted HTTP date with a four-digit year.
const Length = len(Example)

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// formatUnits are the units FormatTime extracts.
var formatUnits = calendar.NewUnitSet(
	calendar.Weekday, calendar.Day, calendar.Month, calendar.Year,
	calendar.Hour, calendar.Minute, calendar.Second,
)

// Format returns c as an HTTP date. The zone of c is ignored: HTTP dates
// are always GMT.
func Format(c calendar.Components) string {
	return string(Append(make([]byte, 0, Length), c))
}

// Append appends the HTTP date for c to dst.
func Append(dst []byte, c calendar.Components) []byte {
	dst = append(dst, lookup(weekdayNames[:], c.ValueOrDefault(calendar.Weekday))...)
	dst = append(dst, ", "...)
	dst = mathx.AppendPadded(dst, int64(c.ValueOrDefault(calendar.Day)), 2)
	dst = append(dst, ' ')
	dst = append(dst, lookup(monthNames[:], c.ValueOrDefault(calendar.Month))...)
	dst = append(dst, ' ')
	dst = mathx.AppendPadded(dst, int64(c.ValueOrDefault(calendar.Year)), 4)
	dst = append(dst, ' ')
	dst = mathx.AppendPadded(dst, int64(c.ValueOrDefault(calendar.Hour)), 2)
	dst = append(dst, ':')
	dst = mathx.AppendPadded(dst, int64(c.ValueOrDefault(calendar.Minute)), 2)
	dst = append(dst, ':')
	dst = mathx.AppendPadded(dst, int64(c.ValueOrDefault(calendar.Second)), 2)
	return append(dst, " GMT"...)
}

// lookup returns names[v-1], or the first name when v is out of range.
func lookup(names []string, v int) string {
	if v < 1 || v > len(names) {
		return names[0]
	}
	return names[v-1]
}

// FormatTime returns t as an HTTP date.
func FormatTime(t time.Time) string {
	return Format(calendar.Gregorian.Components(formatUnits, t, zone.GMT))
}

// Parse parses an HTTP date occupying all of s.
func Parse(s string) (calendar.Components, error) {
	c, n, err := ParsePrefix([]byte(s))
	if err != nil {
		return calendar.Components{}, err
	}
	if n != len(s) {
		return calendar.Components{}, failure(chronoerr.CodeMalformedInput, "unexpected text after date", []byte(s), n)
	}
	return c, nil
}

// ParsePrefix parses an HTTP date at the start of b and returns the number
// of bytes consumed, so a date can be read out of a longer token stream.
func ParsePrefix(b []byte) (calendar.Components, int, error) {
	var c calendar.Components
	cur := scan.New(b)
	cur.SkipAll(' ')

	if !cur.PeekDigit() {
		start := cur.Offset()
		name, ok := cur.Take(3)
		weekday := index(weekdayNames[:], name)
		if !ok || weekday == 0 {
			return c, 0, failure(chronoerr.CodeMalformedInput, "malformed weekday", b, start)
		}
		c.Set(calendar.Weekday, weekday)
		if !cur.Match(',') || !cur.SkipSome(' ') {
			return c, 0, failure(chronoerr.CodeMalformedInput, "expected \", \" after weekday", b, cur.Offset())
		}
	}

	day, err := field(cur, b, 2, 1, 31, "day")
	if err != nil {
		return c, 0, err
	}
	if !cur.SkipSome(' ') {
		return c, 0, failure(chronoerr.CodeMalformedInput, "expected space after day", b, cur.Offset())
	}

	start := cur.Offset()
	name, ok := cur.Take(3)
	month := index(monthNames[:], name)
	if !ok || month == 0 {
		return c, 0, failure(chronoerr.CodeMalformedInput, "malformed month", b, start)
	}
	if !cur.SkipSome(' ') {
		return c, 0, failure(chronoerr.CodeMalformedInput, "expected space after month", b, cur.Offset())
	}

	year, err := field(cur, b, 4, 0, 9999, "year")
	if err != nil {
		return c, 0, err
	}
	if !cur.SkipSome(' ') {
		return c, 0, failure(chronoerr.CodeMalformedInput, "expected space after year", b, cur.Offset())
	}

	hour, err := field(cur, b, 2, 0, 23, "hour")
	if err != nil {
		return c, 0, err
	}
	if !cur.Match(':') {
		return c, 0, failure(chronoerr.CodeMalformedInput, "expected ':' after hour", b, cur.Offset())
	}
	minute, err := field(cur, b, 2, 0, 59, "minute")
	if err != nil {
		return c, 0, err
	}
	if !cur.Match(':') {
		return c, 0, failure(chronoerr.CodeMalformedInput, "expected ':' after minute", b, cur.Offset())
	}
	second, err := field(cur, b, 2, 0, 60, "second")
	if err != nil {
		return c, 0, err
	}
	// Leap seconds are not representable in the calendar.
	if second == 60 {
		second = 59
	}

	if !cur.SkipSome(' ') || !cur.MatchString("GMT") {
		return c, 0, failure(chronoerr.CodeMalformedInput, "expected \" GMT\"", b, cur.Offset())
	}

	c.Set(calendar.Day, day)
	c.Set(calendar.Month, month)
	c.Set(calendar.Year, year)
	c.Set(calendar.Hour, hour)
	c.Set(calendar.Minute, minute)
	c.Set(calendar.Second, second)
	c.Zone = zone.GMT
	return c, cur.Offset(), nil
}

// ParseTime parses an HTTP date and materializes it in GMT.
func ParseTime(s string) (time.Time, error) {
	c, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	t, ok := calendar.Gregorian.Date(c)
	if !ok {
		return time.Time{}, chronoerr.ParseFailure(chronoerr.CodeUnsupportedCombination,
			"date does not exist", s, 0, Example).WithOperation("httpdate.ParseTime")
	}
	return t, nil
}

// field reads a fixed-width number and checks it against [lo, hi].
func field(cur *scan.Cursor, b []byte, width, lo, hi int, name string) (int, error) {
	start := cur.Offset()
	v, ok := cur.FixedDigits(width)
	if !ok {
		return 0, failure(chronoerr.CodeMalformedInput, "expected "+digitWords[width]+" "+name, b, start)
	}
	if v < lo || v > hi {
		return 0, failure(chronoerr.CodeValueOutOfRange, name+" out of range", b, start).
			WithDetail("value", v)
	}
	return v, nil
}

var digitWords = map[int]string{2: "two-digit", 4: "four-digit"}

func index(names []string, b []byte) int {
	for i, name := range names {
		if string(b) == name {
			return i + 1
		}
	}
	return 0
}

// failure builds a parse error quoting up to eight bytes found at offset.
func failure(code chronoerr.Code, reason string, b []byte, offset int) *chronoerr.Error {
	found := b[offset:]
	if len(found) > 8 {
		found = found[:8]
	}
	return chronoerr.ParseFailure(code, reason, string(b), offset, Example).
		WithOperation("httpdate.Parse").
		WithDetail("found", string(found))
}
