// File: unit.go
// Title: Duration Units
// Description: The units a duration is broken into, and sets of them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package duration breaks durations into unit values and spells them out
// with locale patterns, as "1 hour, 5 minutes" or "1:05:00".
package duration

import (
	"strings"
	"time"
)

// Unit is a duration unit. Lower values are larger units.
type Unit int

const (
	Weeks Unit = iota
	Days
	Hours
	Minutes
	Seconds
	Milliseconds
	Microseconds
	Nanoseconds
	unitCount
)

var unitSizes = [unitCount]time.Duration{
	7 * 24 * time.Hour, 24 * time.Hour, time.Hour, time.Minute,
	time.Second, time.Millisecond, time.Microsecond, time.Nanosecond,
}

var unitKeys = [unitCount]string{
	"weeks", "days", "hours", "minutes",
	"seconds", "milliseconds", "microseconds", "nanoseconds",
}

var unitAliases = map[string]Unit{
	"w": Weeks, "week": Weeks,
	"d": Days, "day": Days,
	"h": Hours, "hour": Hours,
	"m": Minutes, "min": Minutes, "minute": Minutes,
	"s": Seconds, "sec": Seconds, "second": Seconds,
	"ms": Milliseconds, "millisecond": Milliseconds,
	"us": Microseconds, "µs": Microseconds, "μs": Microseconds, "microsecond": Microseconds,
	"ns": Nanoseconds, "nanosecond": Nanoseconds,
}

// String returns the plural unit name, which is also its catalog key.
func (u Unit) String() string {
	if u < 0 || u >= unitCount {
		return "unknown"
	}
	return unitKeys[u]
}

// Duration returns the length of one unit.
func (u Unit) Duration() time.Duration {
	if u < 0 || u >= unitCount {
		return 0
	}
	return unitSizes[u]
}

// ParseUnit accepts plural and singular names and the usual abbreviations.
func ParseUnit(s string) (Unit, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for u, key := range unitKeys {
		if key == s {
			return Unit(u), true
		}
	}
	u, ok := unitAliases[s]
	return u, ok
}

// UnitSet is a set of units.
type UnitSet uint16

// NewUnitSet returns a set holding units.
func NewUnitSet(units ...Unit) UnitSet {
	var s UnitSet
	for _, u := range units {
		if u >= 0 && u < unitCount {
			s |= 1 << u
		}
	}
	return s
}

// ParseUnitSet parses unit names. Unknown names are returned separately.
func ParseUnitSet(names []string) (UnitSet, []string) {
	var s UnitSet
	var unknown []string
	for _, name := range names {
		u, ok := ParseUnit(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		s |= 1 << u
	}
	return s, unknown
}

// Has reports whether u is in the set.
func (s UnitSet) Has(u Unit) bool { return u >= 0 && u < unitCount && s&(1<<u) != 0 }

// Units returns the members from largest to smallest.
func (s UnitSet) Units() []Unit {
	var units []Unit
	for u := Unit(0); u < unitCount; u++ {
		if s.Has(u) {
			units = append(units, u)
		}
	}
	return units
}

// DefaultUnits is used by a Policy without units.
const DefaultUnits = UnitSet(1<<Hours | 1<<Minutes | 1<<Seconds)
