// File: english.go
// Title: English Fallback Patterns
// Description: Fixed English patterns used when no provider is given or a
//              provider cannot supply a pattern.
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

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"

	chronoerr "github.com/msto63/chrono/core/error"
	"github.com/msto63/chrono/core/i18n"
)

// English is the fallback provider. It ignores the locale argument.
var English i18n.Provider = english{tr: en.New()}

type english struct {
	tr locales.Translator
}

var englishTime = map[string]string{
	"hm":  "h:mm",
	"hms": "h:mm:ss",
	"ms":  "m:ss",
}

var englishList = [3][4]string{
	i18n.WidthWide:        {"{0}, {1}", "{0}, {1}", "{0}, and {1}", "{0} and {1}"},
	i18n.WidthAbbreviated: {"{0}, {1}", "{0}, {1}", "{0}, {1}", "{0}, {1}"},
	i18n.WidthNarrow:      {"{0} {1}", "{0} {1}", "{0} {1}", "{0} {1}"},
}

// englishUnits holds {one, other} per width and unit.
var englishUnits = [3][unitCount][2]string{
	i18n.WidthWide: {
		{"{0} week", "{0} weeks"}, {"{0} day", "{0} days"},
		{"{0} hour", "{0} hours"}, {"{0} minute", "{0} minutes"},
		{"{0} second", "{0} seconds"}, {"{0} millisecond", "{0} milliseconds"},
		{"{0} microsecond", "{0} microseconds"}, {"{0} nanosecond", "{0} nanoseconds"},
	},
	i18n.WidthAbbreviated: {
		{"{0} wk", "{0} wks"}, {"{0} day", "{0} days"},
		{"{0} hr", "{0} hr"}, {"{0} min", "{0} min"},
		{"{0} sec", "{0} sec"}, {"{0} ms", "{0} ms"},
		{"{0} μs", "{0} μs"}, {"{0} ns", "{0} ns"},
	},
	i18n.WidthNarrow: {
		{"{0}w", "{0}w"}, {"{0}d", "{0}d"},
		{"{0}h", "{0}h"}, {"{0}m", "{0}m"},
		{"{0}s", "{0}s"}, {"{0}ms", "{0}ms"},
		{"{0}μs", "{0}μs"}, {"{0}ns", "{0}ns"},
	},
}

func clampWidth(w i18n.Width) i18n.Width {
	if w < i18n.WidthWide || w > i18n.WidthNarrow {
		return i18n.WidthWide
	}
	return w
}

func (e english) TimePattern(_, style string) (string, error) {
	if p, ok := englishTime[style]; ok {
		return p, nil
	}
	return "", chronoerr.New("unknown time pattern style").
		WithCode(chronoerr.CodePatternMissing).
		WithDetail("style", style)
}

func (e english) ListPattern(_ string, width i18n.Width, position i18n.ListPosition) (string, error) {
	if position < i18n.ListStart || position > i18n.ListPair {
		position = i18n.ListPair
	}
	return englishList[clampWidth(width)][position], nil
}

func (e english) UnitPattern(_, unit string, width i18n.Width, count float64, fractionDigits int) (string, error) {
	u, ok := ParseUnit(unit)
	if !ok {
		return "", chronoerr.New("unknown unit").
			WithCode(chronoerr.CodePatternMissing).
			WithDetail("unit", unit)
	}
	if fractionDigits < 0 {
		fractionDigits = 0
	}
	forms := englishUnits[clampWidth(width)][u]
	if e.tr.CardinalPluralRule(math.Abs(count), uint64(fractionDigits)) == locales.PluralRuleOne {
		return forms[0], nil
	}
	return forms[1], nil
}

func (e english) FormatNumber(_ string, num float64, fractionDigits int) string {
	if fractionDigits < 0 {
		fractionDigits = 0
	}
	return e.tr.FmtNumber(num, uint64(fractionDigits))
}

func (e english) DecimalSeparator(string) string {
	if d, ok := e.tr.(interface{ Decimal() string }); ok {
		return d.Decimal()
	}
	return "."
}
