// Package payslip turns a stored salary slip into a finished PDF document
// with a derived earnings breakdown.
package payslip

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidAmount reports a gross amount that cannot be decomposed or
// rendered. Upstream layers store amounts as-is, so this package is the
// last line of defense.
var ErrInvalidAmount = errors.New("invalid gross amount")

// Breakdown is the derived earnings decomposition of a gross amount.
// Basic, HRA, and Special are fixed ratios of gross; Bonus is the
// balancing line that absorbs the nominal 5% remainder together with any
// rounding slack, so the four components always sum back to gross exactly
// to the cent. This mirrors the issuing system's arithmetic and is a
// deliberate design choice, not a fixed 5% bonus.
type Breakdown struct {
	Basic   float64
	HRA     float64
	Special float64
	Bonus   float64
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Decompose splits gross into the standard components. Gross must be a
// non-negative finite number.
func Decompose(gross float64) (Breakdown, error) {
	if math.IsNaN(gross) || math.IsInf(gross, 0) || gross < 0 {
		return Breakdown{}, fmt.Errorf("%w: %v", ErrInvalidAmount, gross)
	}

	basic := roundCents(gross * 0.50)
	hra := roundCents(gross * 0.20)
	special := roundCents(gross * 0.25)
	bonus := roundCents(gross - (basic + hra + special))

	return Breakdown{Basic: basic, HRA: hra, Special: special, Bonus: bonus}, nil
}
