// File: select.go
// Title: Unit Selection
// Description: Breaks a duration into unit values according to a Policy.
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
	"time"
)

// ZeroUnits decides whether units with a zero value are shown.
type ZeroUnits int

const (
	HideZeroUnits ZeroUnits = iota
	ShowZeroUnits
)

// maxFractionDigits is the nanosecond resolution of time.Duration.
const maxFractionDigits = 9

// negativeZero stands in for a most significant value of zero in a
// negative duration so that it is still written with a minus sign.
var negativeZero = -math.SmallestNonzeroFloat64

// Policy selects units and rounding.
type Policy struct {
	// Units allowed in the output; DefaultUnits when empty.
	Units UnitSet
	// MaxUnits caps the number of values; 0 means no cap.
	MaxUnits int
	// ZeroUnits hides or shows zero values.
	ZeroUnits ZeroUnits
	// FractionDigits is the number of decimals kept on the smallest unit.
	FractionDigits int
	// Rounding applies to the smallest unit.
	Rounding RoundingRule
	// Increment is the rounding step in smallest units. When zero it is
	// 10^-FractionDigits.
	Increment float64
}

// DefaultPolicy shows nonzero hours, minutes and whole seconds.
func DefaultPolicy() Policy {
	return Policy{Units: DefaultUnits}
}

// Value is the amount of one unit. Only the last value of a selection may
// have a fraction.
type Value struct {
	Unit   Unit
	Amount float64
}

// Negative reports whether the value carries a minus sign, including the
// stand-in for a negative zero.
func (v Value) Negative() bool { return math.Signbit(v.Amount) }

// Select breaks d into values ordered from largest to smallest unit.
//
// The total is rounded once at the smallest unit used, so rounding carries
// into larger units. When more than MaxUnits values remain after hiding
// zeros, the units are narrowed to MaxUnits consecutive allowed units
// starting at the first nonzero one and d is broken down again. In a
// negative duration only the first value is negative.
func Select(d time.Duration, p Policy) []Value {
	units := p.Units.Units()
	if len(units) == 0 {
		units = DefaultUnits.Units()
	}

	values := decompose(d, units, p)
	if p.ZeroUnits == HideZeroUnits {
		values = dropZeros(values)
	}

	if p.MaxUnits > 0 && len(values) > p.MaxUnits {
		values = decompose(d, window(units, values, p.MaxUnits), p)
		if p.ZeroUnits == HideZeroUnits {
			values = dropZeros(values)
		}
	}

	if d < 0 {
		values[0].Amount = -values[0].Amount
		if values[0].Amount == 0 {
			values[0].Amount = negativeZero
		}
	}
	return values
}

// window returns limit consecutive units starting at the first nonzero value.
// Without a nonzero value the window ends at the smallest unit.
func window(units []Unit, values []Value, limit int) []Unit {
	start := len(units) - limit
	for _, v := range values {
		if v.Amount != 0 {
			for i, u := range units {
				if u == v.Unit {
					start = i
				}
			}
			break
		}
	}
	if start < 0 {
		start = 0
	}
	end := start + limit
	if end > len(units) {
		end = len(units)
	}
	return units[start:end]
}

// decompose splits the magnitude of d over units after rounding it at the
// smallest unit.
func decompose(d time.Duration, units []Unit, p Policy) []Value {
	negative := d < 0
	magnitude := uint64(d)
	if negative {
		magnitude = uint64(-(d + 1)) + 1
	}

	smallest := uint64(units[len(units)-1].Duration())
	magnitude = p.Rounding.round(magnitude, p.incrementNanos(smallest), negative)

	values := make([]Value, len(units))
	rem := magnitude
	for i, u := range units {
		size := uint64(u.Duration())
		if i == len(units)-1 {
			values[i] = Value{Unit: u, Amount: float64(rem) / float64(size)}
			break
		}
		q := rem / size
		rem -= q * size
		values[i] = Value{Unit: u, Amount: float64(q)}
	}
	return values
}

// incrementNanos converts the rounding increment to nanoseconds.
func (p Policy) incrementNanos(unitSize uint64) uint64 {
	inc := p.Increment
	if inc <= 0 {
		inc = math.Pow10(-p.fractionDigits())
	}
	n := math.Round(inc * float64(unitSize))
	if n < 1 {
		return 1
	}
	if n >= math.MaxInt64 {
		return math.MaxInt64
	}
	return uint64(n)
}

func (p Policy) fractionDigits() int {
	switch {
	case p.FractionDigits < 0:
		return 0
	case p.FractionDigits > maxFractionDigits:
		return maxFractionDigits
	}
	return p.FractionDigits
}

// dropZeros removes zero values but keeps the smallest unit when all are
// zero.
func dropZeros(values []Value) []Value {
	kept := values[:0:0]
	for _, v := range values {
		if v.Amount != 0 {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return values[len(values)-1:]
	}
	return kept
}
