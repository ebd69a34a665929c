package domain

import (
	"fmt"
	"math"
)

// Micros is a money amount in millionths of the currency unit. Prices,
// budgets and spend all use it so a single CPM impression (price / 1000)
// stays an exact integer.
type Micros int64

// MicrosPerUnit is the number of micros in one currency unit.
const MicrosPerUnit = 1_000_000

// FromUnits converts a decimal currency amount into micros, rounding to the
// nearest micro.
func FromUnits(v float64) Micros {
	return Micros(math.Round(v * MicrosPerUnit))
}

// Units returns the amount in currency units.
func (m Micros) Units() float64 {
	return float64(m) / MicrosPerUnit
}

// MaxUnits is the largest amount, in currency units, that fits in Micros.
const MaxUnits = math.MaxInt64 / MicrosPerUnit

// ParseUnits converts a client supplied amount into micros. Amounts that are
// not finite or do not fit in Micros are rejected with ErrInvalidInput.
func ParseUnits(v float64) (Micros, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > MaxUnits {
		return 0, fmt.Errorf("%w: amount %g is out of range", ErrInvalidInput, v)
	}
	return FromUnits(v), nil
}
