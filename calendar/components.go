// File: components.go
// Title: Component Records
// Description: Unit enumeration, unit sets, the default table and the
//              Components record.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package calendar

import (
	"strconv"
	"strings"

	"github.com/msto63/chrono/zone"
)

// Unit identifies one calendar field.
type Unit uint8

const (
	Era Unit = iota
	Year
	YearForWeekOfYear
	Month
	WeekOfYear
	Weekday
	Day
	DayOfYear
	Hour
	Minute
	Second
	Nanosecond

	unitCount
)

var unitNames = [unitCount]string{
	"era", "year", "yearForWeekOfYear", "month", "weekOfYear", "weekday",
	"day", "dayOfYear", "hour", "minute", "second", "nanosecond",
}

// String returns the unit name
func (u Unit) String() string {
	if u >= unitCount {
		return "unit(" + strconv.Itoa(int(u)) + ")"
	}
	return unitNames[u]
}

// Units returns every unit from largest to smallest.
func Units() []Unit {
	units := make([]Unit, unitCount)
	for i := range units {
		units[i] = Unit(i)
	}
	return units
}

// defaults is the only place absent units get their values.
var defaults = [unitCount]int{
	Era:               1,
	Year:              1970,
	YearForWeekOfYear: 1970,
	Month:             1,
	WeekOfYear:        1,
	Weekday:           1,
	Day:               1,
	DayOfYear:         1,
}

// DefaultValue returns the value assumed for an absent unit.
func DefaultValue(u Unit) int {
	if u >= unitCount {
		return 0
	}
	return defaults[u]
}

// UnitSet is a set of units.
type UnitSet uint16

// NewUnitSet returns the set holding units.
func NewUnitSet(units ...Unit) UnitSet {
	var s UnitSet
	for _, u := range units {
		s = s.With(u)
	}
	return s
}

// AllUnits holds every unit.
const AllUnits UnitSet = 1<<unitCount - 1

// With returns s plus u.
func (s UnitSet) With(u Unit) UnitSet { return s | 1<<u }

// Without returns s minus u.
func (s UnitSet) Without(u Unit) UnitSet { return s &^ (1 << u) }

// Has reports whether u is in s.
func (s UnitSet) Has(u Unit) bool { return u < unitCount && s&(1<<u) != 0 }

// Len returns the number of units in s.
func (s UnitSet) Len() int {
	n := 0
	for u := Unit(0); u < unitCount; u++ {
		if s.Has(u) {
			n++
		}
	}
	return n
}

// Components is a partial set of calendar field values with an optional
// zone. The zero value is an empty record.
type Components struct {
	values [unitCount]int
	set    UnitSet

	// Zone the fields are expressed in, nil when unknown.
	Zone zone.Zone
	// System names the calendar the fields belong to, empty for Gregorian.
	System string
}

// Set stores v for unit u. Unknown units are ignored.
func (c *Components) Set(u Unit, v int) {
	if u >= unitCount {
		return
	}
	c.values[u] = v
	c.set = c.set.With(u)
}

// Clear removes unit u.
func (c *Components) Clear(u Unit) {
	if u >= unitCount {
		return
	}
	c.values[u] = 0
	c.set = c.set.Without(u)
}

// Value returns the value of u and whether it is present.
func (c Components) Value(u Unit) (int, bool) {
	if !c.set.Has(u) {
		return 0, false
	}
	return c.values[u], true
}

// ValueOrDefault returns the value of u, or its default when absent.
func (c Components) ValueOrDefault(u Unit) int {
	if v, ok := c.Value(u); ok {
		return v
	}
	return DefaultValue(u)
}

// Has reports whether u is present.
func (c Components) Has(u Unit) bool { return c.set.Has(u) }

// Units returns the set of present units.
func (c Components) Units() UnitSet { return c.set }

// IsEmpty reports whether no unit and no zone is present.
func (c Components) IsEmpty() bool { return c.set == 0 && c.Zone == nil }

// Equal reports whether both records hold the same units, values and zone.
func (c Components) Equal(other Components) bool {
	if c.set != other.set || c.values != other.values || c.System != other.System {
		return false
	}
	if c.Zone == nil || other.Zone == nil {
		return c.Zone == nil && other.Zone == nil
	}
	return zone.Equal(c.Zone, other.Zone)
}

// String lists the present units, e.g. "year=1994 month=11 zone=GMT".
func (c Components) String() string {
	var b strings.Builder
	for u := Unit(0); u < unitCount; u++ {
		if !c.set.Has(u) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(u.String())
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(c.values[u]))
	}
	if c.Zone != nil {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("zone=")
		b.WriteString(c.Zone.Identifier())
	}
	return b.String()
}
