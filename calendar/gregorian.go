// File: gregorian.go
// Title: Gregorian Calendar
// Description: Calendar interface and the Gregorian implementation backed by
//              the time package, with ISO 8601 week numbering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package calendar

import (
	"time"

	"github.com/msto63/chrono/zone"
)

// Range is an inclusive interval of valid unit values.
type Range struct {
	Min, Max int
}

// Contains reports whether v lies in r.
func (r Range) Contains(v int) bool { return v >= r.Min && v <= r.Max }

// Calendar validates and materializes component records.
type Calendar interface {
	// Identifier names the calendar system.
	Identifier() string
	// MaximumRange returns the widest range u can take in any date.
	MaximumRange(u Unit) (Range, bool)
	// Date materializes c, filling absent units from the default table.
	// It reports false for unrepresentable combinations such as Feb 30.
	// A weekday next to a month day is not cross-checked.
	Date(c Components) (time.Time, bool)
	// Components extracts units of t as seen in z. A nil zone means GMT.
	Components(units UnitSet, t time.Time, z zone.Zone) Components
}

// Gregorian is the proleptic Gregorian calendar with ISO 8601 weeks.
var Gregorian Calendar = gregorian{}

type gregorian struct{}

var gregorianRanges = [unitCount]Range{
	Era:               {0, 1},
	Year:              {1, 144683},
	YearForWeekOfYear: {1, 144683},
	Month:             {1, 12},
	WeekOfYear:        {1, 53},
	Weekday:           {1, 7},
	Day:               {1, 31},
	DayOfYear:         {1, 366},
	Hour:              {0, 23},
	Minute:            {0, 59},
	Second:            {0, 59},
	Nanosecond:        {0, 999999999},
}

func (gregorian) Identifier() string { return "gregorian" }

func (gregorian) MaximumRange(u Unit) (Range, bool) {
	if u >= unitCount {
		return Range{}, false
	}
	return gregorianRanges[u], true
}

func (g gregorian) Date(c Components) (time.Time, bool) {
	for u := Unit(0); u < unitCount; u++ {
		if v, ok := c.Value(u); ok && !gregorianRanges[u].Contains(v) {
			return time.Time{}, false
		}
	}

	loc := time.UTC
	if c.Zone != nil {
		loc = c.Zone.Location()
	}

	hour := c.ValueOrDefault(Hour)
	minute := c.ValueOrDefault(Minute)
	second := c.ValueOrDefault(Second)
	nanos := c.ValueOrDefault(Nanosecond)

	var t time.Time
	switch {
	case c.Has(WeekOfYear):
		year := c.ValueOrDefault(YearForWeekOfYear)
		if !c.Has(YearForWeekOfYear) && c.Has(Year) {
			year = c.ValueOrDefault(Year)
		}
		year = eraYear(c.ValueOrDefault(Era), year)
		week := c.ValueOrDefault(WeekOfYear)
		weekday := c.ValueOrDefault(Weekday)

		// Monday of week 1 is the Monday on or before January 4th.
		jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
		offset := (int(jan4.Weekday()) + 6) % 7
		isoDay := (weekday + 5) % 7
		d := jan4.AddDate(0, 0, -offset+(week-1)*7+isoDay)
		if y, w := d.ISOWeek(); y != year || w != week {
			return time.Time{}, false
		}
		t = time.Date(d.Year(), d.Month(), d.Day(), hour, minute, second, nanos, loc)

	case c.Has(DayOfYear) && !c.Has(Day):
		year := eraYear(c.ValueOrDefault(Era), c.ValueOrDefault(Year))
		doy := c.ValueOrDefault(DayOfYear)
		t = time.Date(year, time.January, doy, hour, minute, second, nanos, loc)
		if t.Year() != year {
			return time.Time{}, false
		}

	default:
		year := eraYear(c.ValueOrDefault(Era), c.ValueOrDefault(Year))
		month := time.Month(c.ValueOrDefault(Month))
		day := c.ValueOrDefault(Day)
		t = time.Date(year, month, day, hour, minute, second, nanos, loc)
		if t.Month() != month || t.Day() != day {
			return time.Time{}, false
		}
	}

	return t, true
}

// eraYear converts an era-relative year to an astronomical year.
func eraYear(era, year int) int {
	if era == 0 {
		return 1 - year
	}
	return year
}

func (gregorian) Components(units UnitSet, t time.Time, z zone.Zone) Components {
	if z == nil {
		z = zone.GMT
	}
	t = t.In(z.Location())

	var c Components
	c.Zone = z
	year := t.Year()
	isoYear, isoWeek := t.ISOWeek()

	for u := Unit(0); u < unitCount; u++ {
		if !units.Has(u) {
			continue
		}
		switch u {
		case Era:
			if year > 0 {
				c.Set(Era, 1)
			} else {
				c.Set(Era, 0)
			}
		case Year:
			if year > 0 {
				c.Set(Year, year)
			} else {
				c.Set(Year, 1-year)
			}
		case YearForWeekOfYear:
			c.Set(YearForWeekOfYear, isoYear)
		case Month:
			c.Set(Month, int(t.Month()))
		case WeekOfYear:
			c.Set(WeekOfYear, isoWeek)
		case Weekday:
			c.Set(Weekday, int(t.Weekday())+1)
		case Day:
			c.Set(Day, t.Day())
		case DayOfYear:
			c.Set(DayOfYear, t.YearDay())
		case Hour:
			c.Set(Hour, t.Hour())
		case Minute:
			c.Set(Minute, t.Minute())
		case Second:
			c.Set(Second, t.Second())
		case Nanosecond:
			c.Set(Nanosecond, t.Nanosecond())
		}
	}
	return c
}
