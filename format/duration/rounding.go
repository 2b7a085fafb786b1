// File: rounding.go
// Title: Rounding Rules
// Description: Rounding of nanosecond magnitudes to an increment.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package duration

import "strings"

// RoundingRule decides how a remainder below the rounding increment is
// resolved. Up and Down are directions on the number line, so they depend
// on the sign of the duration.
type RoundingRule int

const (
	ToNearestOrEven RoundingRule = iota
	ToNearestOrAwayFromZero
	Up
	Down
	TowardZero
	AwayFromZero
)

var roundingNames = [...]string{
	"toNearestOrEven", "toNearestOrAwayFromZero", "up", "down", "towardZero", "awayFromZero",
}

// String returns the rule name.
func (r RoundingRule) String() string {
	if r < 0 || int(r) >= len(roundingNames) {
		return "unknown"
	}
	return roundingNames[r]
}

// ParseRoundingRule parses a rule name, ignoring case, dashes and
// underscores.
func ParseRoundingRule(s string) (RoundingRule, bool) {
	norm := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	for i, name := range roundingNames {
		if strings.ToLower(name) == norm {
			return RoundingRule(i), true
		}
	}
	return ToNearestOrEven, false
}

// round rounds the magnitude of a duration to a multiple of increment.
// negative is the sign of the duration the magnitude belongs to.
func (r RoundingRule) round(magnitude, increment uint64, negative bool) uint64 {
	if increment <= 1 {
		return magnitude
	}
	q, rem := magnitude/increment, magnitude%increment
	if rem == 0 {
		return magnitude
	}

	var up bool
	switch r {
	case ToNearestOrEven:
		up = 2*rem > increment || (2*rem == increment && q%2 == 1)
	case ToNearestOrAwayFromZero:
		up = 2*rem >= increment
	case Up:
		up = !negative
	case Down:
		up = negative
	case TowardZero:
		up = false
	case AwayFromZero:
		up = true
	}
	if up {
		q++
	}
	return q * increment
}
