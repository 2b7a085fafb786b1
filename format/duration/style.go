// File: style.go
// Title: Duration Styles
// Description: Spells out selected unit values with unit and list patterns,
//              or fills an h:mm:ss-style time pattern.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package duration

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/msto63/chrono/core/i18n"
	"github.com/msto63/chrono/utils/mathx"
)

// UnitsStyle writes durations as a list of unit values, such as
// "1 hour, 5 minutes, and 3 seconds".
type UnitsStyle struct {
	Policy Policy
	Width  i18n.Width
	Locale string
}

// Format formats d. A nil provider, or any pattern the provider cannot
// supply, falls back to English.
func (s UnitsStyle) Format(d time.Duration, p i18n.Provider) string {
	values := Select(d, s.Policy)
	parts := make([]string, len(values))
	for i, v := range values {
		digits := 0
		if i == len(values)-1 {
			digits = visibleDigits(v.Amount, s.Policy.fractionDigits())
		}
		num := formatNumber(p, s.Locale, v.Amount, digits)
		parts[i] = fill(unitPattern(p, s.Locale, v.Unit, s.Width, v.Amount, digits), num, "")
	}
	return joinList(p, s.Locale, s.Width, parts)
}

// visibleDigits returns the decimals needed to show amount with at most
// limit digits and no trailing zeros.
func visibleDigits(amount float64, limit int) int {
	if limit <= 0 {
		return 0
	}
	s := strconv.FormatFloat(math.Abs(amount), 'f', limit, 64)
	s = strings.TrimRight(s, "0")
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func formatNumber(p i18n.Provider, locale string, amount float64, digits int) string {
	if p == nil {
		p = English
	}
	return p.FormatNumber(locale, amount, digits)
}

func unitPattern(p i18n.Provider, locale string, u Unit, w i18n.Width, amount float64, digits int) string {
	if p != nil {
		if pattern, err := p.UnitPattern(locale, u.String(), w, amount, digits); err == nil {
			return pattern
		}
	}
	pattern, _ := English.UnitPattern(locale, u.String(), w, amount, digits)
	return pattern
}

func listPattern(p i18n.Provider, locale string, w i18n.Width, pos i18n.ListPosition) string {
	if p != nil {
		if pattern, err := p.ListPattern(locale, w, pos); err == nil {
			return pattern
		}
	}
	pattern, _ := English.ListPattern(locale, w, pos)
	return pattern
}

// fill substitutes {0} and {1} in pattern.
func fill(pattern, first, second string) string {
	return strings.NewReplacer("{0}", first, "{1}", second).Replace(pattern)
}

// joinList joins parts with the start, middle, end and pair patterns.
func joinList(p i18n.Provider, locale string, w i18n.Width, parts []string) string {
	switch n := len(parts); n {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return fill(listPattern(p, locale, w, i18n.ListPair), parts[0], parts[1])
	default:
		result := fill(listPattern(p, locale, w, i18n.ListEnd), parts[n-2], parts[n-1])
		for i := n - 3; i > 0; i-- {
			result = fill(listPattern(p, locale, w, i18n.ListMiddle), parts[i], result)
		}
		return fill(listPattern(p, locale, w, i18n.ListStart), parts[0], result)
	}
}

// TimePattern selects the fields of a TimeStyle.
type TimePattern int

const (
	HourMinute TimePattern = iota
	HourMinuteSecond
	MinuteSecond
)

var timePatternTags = [...]string{"hm", "hms", "ms"}

var timePatternUnits = [...]UnitSet{
	NewUnitSet(Hours, Minutes),
	NewUnitSet(Hours, Minutes, Seconds),
	NewUnitSet(Minutes, Seconds),
}

// String returns the pattern tag ("hm", "hms" or "ms").
func (t TimePattern) String() string {
	if t < 0 || int(t) >= len(timePatternTags) {
		return "hms"
	}
	return timePatternTags[t]
}

// ParseTimePattern parses a pattern tag.
func ParseTimePattern(s string) (TimePattern, bool) {
	for i, tag := range timePatternTags {
		if tag == strings.ToLower(strings.TrimSpace(s)) {
			return TimePattern(i), true
		}
	}
	return HourMinuteSecond, false
}

// TimeStyle writes durations like a clock reading, such as "1:05:03".
// The largest field is not wrapped: 30 hours are written as "30:00:00".
type TimeStyle struct {
	Pattern        TimePattern
	Locale         string
	FractionDigits int
	Rounding       RoundingRule
}

// Format formats d. A nil provider, or a missing locale pattern, falls
// back to English.
func (s TimeStyle) Format(d time.Duration, p i18n.Provider) string {
	pattern := ""
	if p != nil {
		pattern, _ = p.TimePattern(s.Locale, s.Pattern.String())
	}
	if pattern == "" {
		pattern, _ = English.TimePattern(s.Locale, s.Pattern.String())
	}
	decimal := "."
	if p != nil {
		decimal = p.DecimalSeparator(s.Locale)
	}

	policy := Policy{
		Units:          timePatternUnits[s.patternIndex()],
		ZeroUnits:      ShowZeroUnits,
		FractionDigits: s.FractionDigits,
		Rounding:       s.Rounding,
	}
	values := Select(d, policy)
	amounts := make(map[Unit]float64, len(values))
	for _, v := range values {
		amounts[v.Unit] = v.Amount
	}
	smallest := values[len(values)-1].Unit
	digits := policy.fractionDigits()

	var b []byte
	signed := false
	for i := 0; i < len(pattern); {
		c := pattern[i]
		if c == '\'' {
			lit, next := quoted(pattern, i)
			b = append(b, lit...)
			i = next
			continue
		}

		unit, isField := fieldUnit(c)
		if !isField {
			b = append(b, c)
			i++
			continue
		}
		width := 1
		for i+width < len(pattern) && pattern[i+width] == c {
			width++
		}
		i += width

		amount, ok := amounts[unit]
		if !ok {
			continue
		}
		if !signed {
			signed = true
			if math.Signbit(values[0].Amount) {
				b = append(b, '-')
			}
		}
		amount = math.Abs(amount)
		if unit == smallest && digits > 0 {
			b = appendFraction(b, amount, width, digits, decimal)
			continue
		}
		b = mathx.AppendPadded(b, int64(amount), width)
	}
	return string(b)
}

func (s TimeStyle) patternIndex() int {
	if s.Pattern < 0 || int(s.Pattern) >= len(timePatternUnits) {
		return int(HourMinuteSecond)
	}
	return int(s.Pattern)
}

func fieldUnit(c byte) (Unit, bool) {
	switch c {
	case 'h', 'H', 'k', 'K':
		return Hours, true
	case 'm':
		return Minutes, true
	case 's':
		return Seconds, true
	}
	return 0, false
}

// quoted returns the literal text of the quoted section starting at
// pattern[i] and the index after it. Two quotes stand for one.
func quoted(pattern string, i int) (string, int) {
	if i+1 < len(pattern) && pattern[i+1] == '\'' {
		return "'", i + 2
	}
	var lit strings.Builder
	for j := i + 1; j < len(pattern); j++ {
		if pattern[j] != '\'' {
			lit.WriteByte(pattern[j])
			continue
		}
		if j+1 < len(pattern) && pattern[j+1] == '\'' {
			lit.WriteByte('\'')
			j++
			continue
		}
		return lit.String(), j + 1
	}
	return lit.String(), len(pattern)
}

// appendFraction writes amount with digits decimals and the integer part
// zero-padded to width.
func appendFraction(b []byte, amount float64, width, digits int, decimal string) []byte {
	s := strconv.FormatFloat(amount, 'f', digits, 64)
	whole, frac, _ := strings.Cut(s, ".")
	for n := len(whole); n < width; n++ {
		b = append(b, '0')
	}
	b = append(b, whole...)
	if frac != "" {
		b = append(b, decimal...)
		b = append(b, frac...)
	}
	return b
}
