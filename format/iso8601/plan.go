// File: plan.go
// Title: Compiled Style Plans
// Description: Turns a Style into the ordered steps shared by the formatter
//              and the parser, and caches the result per Style.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package iso8601

import (
	"time"

	"github.com/msto63/chrono/calendar"
	"github.com/msto63/chrono/internal/cache"
)

// DefaultFormatterCacheLimit is the number of compiled styles kept before
// the cache is cleared.
const DefaultFormatterCacheLimit = 100

var formatters = cache.New[Style, *formatter](DefaultFormatterCacheLimit)

// SetFormatterCacheLimit changes the number of compiled styles kept.
// Changing the limit drops every compiled style.
func SetFormatterCacheLimit(limit int) {
	if formatters.Limit() == limit {
		return
	}
	formatters.Clear()
	formatters.SetLimit(limit)
}

// FormatterCacheStats returns hit and reset counters of the style cache.
func FormatterCacheStats() cache.Stats {
	return formatters.Stats()
}

type stepKind uint8

const (
	stepLiteral stepKind = iota
	stepNumber
	stepWeekday
	stepFraction
	stepZone
)

type step struct {
	kind  stepKind
	unit  calendar.Unit
	width int
	fixed bool
	text  string
}

type formatter struct {
	style   Style
	steps   []step
	example string
}

// exampleTime is shown in parse errors, rendered in the failing style.
var exampleTime = time.Date(2015, time.November, 14, 15, 5, 3, 0, time.UTC)

func (s Style) formatter() *formatter {
	f, _ := formatters.GetOrSet(s, func() (*formatter, error) {
		return compile(s), nil
	})
	return f
}

func compile(s Style) *formatter {
	f := &formatter{style: s}
	week := s.Has(FieldWeekOfYear)
	dateFixed := s.dateSeparator == DateSeparatorOmitted
	timeFixed := s.timeSeparator == TimeSeparatorOmitted

	needSep := false
	dateSep := func() {
		if needSep && !dateFixed {
			f.add(step{kind: stepLiteral, text: "-"})
		}
		needSep = true
	}

	if s.Has(FieldYear) {
		dateSep()
		unit := calendar.Year
		if week {
			unit = calendar.YearForWeekOfYear
		}
		f.add(step{kind: stepNumber, unit: unit, width: 4, fixed: dateFixed})
	}
	if s.Has(FieldMonth) {
		dateSep()
		f.add(step{kind: stepNumber, unit: calendar.Month, width: 2, fixed: dateFixed})
	}
	if week {
		dateSep()
		f.add(step{kind: stepLiteral, text: "W"})
		f.add(step{kind: stepNumber, unit: calendar.WeekOfYear, width: 2, fixed: dateFixed})
	}
	if s.Has(FieldDay) {
		dateSep()
		switch {
		case week:
			f.add(step{kind: stepWeekday, unit: calendar.Weekday, width: 1, fixed: true})
		case s.Has(FieldMonth):
			f.add(step{kind: stepNumber, unit: calendar.Day, width: 2, fixed: dateFixed})
		default:
			f.add(step{kind: stepNumber, unit: calendar.DayOfYear, width: 3, fixed: dateFixed})
		}
	}

	if s.Has(FieldTime) {
		if needSep {
			text := "T"
			if s.dateTimeSeparator == DateTimeSeparatorSpace {
				text = " "
			}
			f.add(step{kind: stepLiteral, text: text})
		}
		for i, unit := range []calendar.Unit{calendar.Hour, calendar.Minute, calendar.Second} {
			if i > 0 && !timeFixed {
				f.add(step{kind: stepLiteral, text: ":"})
			}
			f.add(step{kind: stepNumber, unit: unit, width: 2, fixed: timeFixed})
		}
		f.add(step{kind: stepFraction, unit: calendar.Nanosecond, width: 3})
	}

	if s.Has(FieldTimeZone) {
		f.add(step{kind: stepZone})
	}

	f.example = f.format(calendar.Gregorian.Components(calendar.AllUnits, exampleTime, s.Zone()))
	return f
}

func (f *formatter) add(st step) {
	f.steps = append(f.steps, st)
}
