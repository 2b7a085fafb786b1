// File: zone.go
// Title: Time Zone Values
// Description: The Zone interface and its three implementations: fixed
//              offsets, named zones backed by time.Location and the
//              autoupdating zone that follows the resolver's current zone.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package zone

import (
	"time"

	chronoerr "github.com/msto63/chrono/core/error"
)

// MaxOffset is the largest distance from GMT in seconds (18 hours).
const MaxOffset = 18 * 60 * 60

// Zone is a time zone. Implementations are fixed offsets, named zones and
// the autoupdating zone; all are safe for concurrent use.
type Zone interface {
	// Identifier is the zone name, e.g. "Europe/Berlin" or "GMT+0130".
	Identifier() string
	// SecondsFromGMT returns the offset in effect at t.
	SecondsFromGMT(t time.Time) int
	// Abbreviation returns the short name in effect at t, e.g. "CET".
	Abbreviation(t time.Time) string
	// IsDaylightSavingTime reports whether daylight saving time is in effect at t.
	IsDaylightSavingTime(t time.Time) bool
	// NextDaylightSavingTimeTransition returns the first instant after t at
	// which daylight saving time starts or ends.
	NextDaylightSavingTimeTransition(after time.Time) (time.Time, bool)
	// Location returns the zone as a time.Location.
	Location() *time.Location
}

// GMT is the zero offset zone.
var GMT Zone = fixedZone{}

// Fixed returns a zone with a constant offset. The offset must lie within
// ±MaxOffset.
func Fixed(seconds int) (Zone, error) {
	if seconds < -MaxOffset || seconds > MaxOffset {
		return nil, chronoerr.New("offset outside ±18 hours").
			WithCode(chronoerr.CodeValueOutOfRange).
			WithOperation("zone.Fixed").
			WithDetail("seconds", seconds)
	}
	return fixedZone{seconds: seconds}, nil
}

type fixedZone struct {
	seconds int
}

func (z fixedZone) Identifier() string { return FormatGMTName(z.seconds) }
func (z fixedZone) SecondsFromGMT(time.Time) int { return z.seconds }
func (z fixedZone) Abbreviation(time.Time) string { return FormatGMTName(z.seconds) }
func (z fixedZone) IsDaylightSavingTime(time.Time) bool { return false }

func (z fixedZone) NextDaylightSavingTimeTransition(time.Time) (time.Time, bool) {
	return time.Time{}, false
}

func (z fixedZone) Location() *time.Location {
	if z.seconds == 0 {
		return time.UTC
	}
	return time.FixedZone(z.Identifier(), z.seconds)
}

// namedZone is a geopolitical zone loaded from the zone database.
type namedZone struct {
	id  string
	loc *time.Location
}

// FromLocation wraps loc as a zone named id.
func FromLocation(id string, loc *time.Location) Zone {
	return namedZone{id: id, loc: loc}
}

func (z namedZone) Identifier() string { return z.id }

func (z namedZone) SecondsFromGMT(t time.Time) int {
	_, offset := t.In(z.loc).Zone()
	return offset
}

func (z namedZone) Abbreviation(t time.Time) string {
	name, _ := t.In(z.loc).Zone()
	return name
}

func (z namedZone) IsDaylightSavingTime(t time.Time) bool {
	return t.In(z.loc).IsDST()
}

// maxTransitionHops bounds the walk over zone periods that change the
// offset without changing daylight saving state.
const maxTransitionHops = 16

func (z namedZone) NextDaylightSavingTimeTransition(after time.Time) (time.Time, bool) {
	t := after.In(z.loc)
	dst := t.IsDST()
	for i := 0; i < maxTransitionHops; i++ {
		_, end := t.ZoneBounds()
		if end.IsZero() {
			return time.Time{}, false
		}
		t = end
		if t.IsDST() != dst {
			return t, true
		}
	}
	return time.Time{}, false
}

func (z namedZone) Location() *time.Location { return z.loc }

// autoupdatingZone re-reads the resolver's current zone on every call.
type autoupdatingZone struct {
	r *Resolver
}

func (z autoupdatingZone) Identifier() string { return z.r.Current().Identifier() }

func (z autoupdatingZone) SecondsFromGMT(t time.Time) int {
	return z.r.Current().SecondsFromGMT(t)
}

func (z autoupdatingZone) Abbreviation(t time.Time) string {
	return z.r.Current().Abbreviation(t)
}

func (z autoupdatingZone) IsDaylightSavingTime(t time.Time) bool {
	return z.r.Current().IsDaylightSavingTime(t)
}

func (z autoupdatingZone) NextDaylightSavingTimeTransition(after time.Time) (time.Time, bool) {
	return z.r.Current().NextDaylightSavingTimeTransition(after)
}

func (z autoupdatingZone) Location() *time.Location { return z.r.Current().Location() }

// IsAutoupdating reports whether z follows the current zone.
func IsAutoupdating(z Zone) bool {
	_, ok := z.(autoupdatingZone)
	return ok
}

// Equal reports whether a and b denote the same zone. An autoupdating zone
// is equal only to another autoupdating zone; other zones compare by
// identifier.
func Equal(a, b Zone) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	autoA, autoB := IsAutoupdating(a), IsAutoupdating(b)
	if autoA || autoB {
		return autoA && autoB
	}
	return a.Identifier() == b.Identifier()
}
