// File: provider.go
// Title: Pattern Provider
// Description: The Provider interface consumed by the duration formatter
//              and its implementation on Manager.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package i18n

import (
	"math"
	"strings"
)

// Width selects how verbose unit and list patterns are.
type Width int

const (
	WidthWide Width = iota
	WidthAbbreviated
	WidthNarrow
)

// String returns the catalog key of the width
func (w Width) String() string {
	switch w {
	case WidthAbbreviated:
		return "abbreviated"
	case WidthNarrow:
		return "narrow"
	default:
		return "wide"
	}
}

// ParseWidth parses "wide", "abbreviated" or "narrow".
func ParseWidth(s string) (Width, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wide", "":
		return WidthWide, true
	case "abbreviated", "short":
		return WidthAbbreviated, true
	case "narrow":
		return WidthNarrow, true
	}
	return WidthWide, false
}

// ListPosition selects one of the list patterns. Each pattern joins two
// elements, {0} and {1}.
type ListPosition int

const (
	ListStart ListPosition = iota
	ListMiddle
	ListEnd
	ListPair
)

var listPositionKeys = [...]string{"start", "middle", "end", "pair"}

// String returns the catalog key of the position
func (p ListPosition) String() string {
	if p < 0 || int(p) >= len(listPositionKeys) {
		return "pair"
	}
	return listPositionKeys[p]
}

// Provider supplies locale patterns. Patterns use {0} and {1} as
// placeholders. Every method may fail; callers substitute their own
// fallback.
type Provider interface {
	// TimePattern returns a pattern such as "h:mm:ss" for the style tag
	// "hm", "hms" or "ms".
	TimePattern(locale, style string) (string, error)
	// ListPattern returns the pattern joining list elements.
	ListPattern(locale string, width Width, position ListPosition) (string, error)
	// UnitPattern returns the pattern for count of unit, pluralized for a
	// number shown with fractionDigits decimals.
	UnitPattern(locale, unit string, width Width, count float64, fractionDigits int) (string, error)
	// FormatNumber formats num with exactly fractionDigits decimals.
	FormatNumber(locale string, num float64, fractionDigits int) string
	// DecimalSeparator returns the locale's decimal separator.
	DecimalSeparator(locale string) string
}

var _ Provider = (*Manager)(nil)

// TimePattern implements Provider.
func (m *Manager) TimePattern(locale, style string) (string, error) {
	return m.Lookup(locale, "time."+style)
}

// ListPattern implements Provider.
func (m *Manager) ListPattern(locale string, width Width, position ListPosition) (string, error) {
	return m.Lookup(locale, "list."+width.String()+"."+position.String())
}

// UnitPattern implements Provider. The plural category comes from the
// CLDR cardinal rules; a catalog without that category is asked for
// "other".
func (m *Manager) UnitPattern(locale, unit string, width Width, count float64, fractionDigits int) (string, error) {
	if fractionDigits < 0 {
		fractionDigits = 0
	}
	key := "unit." + width.String() + "." + unit + "."
	rule := m.translator(m.Resolve(locale)).CardinalPluralRule(math.Abs(count), uint64(fractionDigits))
	if category := pluralCategory(rule); category != "other" {
		if pattern, err := m.Lookup(locale, key+category); err == nil {
			return pattern, nil
		}
	}
	return m.Lookup(locale, key+"other")
}

// FormatNumber implements Provider.
func (m *Manager) FormatNumber(locale string, num float64, fractionDigits int) string {
	if fractionDigits < 0 {
		fractionDigits = 0
	}
	return m.translator(m.Resolve(locale)).FmtNumber(num, uint64(fractionDigits))
}

// DecimalSeparator implements Provider.
func (m *Manager) DecimalSeparator(locale string) string {
	return decimalSeparator(m.translator(m.Resolve(locale)))
}
