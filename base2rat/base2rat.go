// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package base2rat searches for base-2 rational approximations `mul / 2^shift`
// of a target fraction, for use with [round.MulShift] as a division-free
// substitute for multiplication by the fraction.
package base2rat

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/ava-labs/fixedround/round"
)

// prec is the mantissa precision, in bits, of all search arithmetic. The
// search validates rounding behaviour so it must itself be computed with a
// mantissa strictly wider than the 64-bit integers being approximated.
const prec = 128

var (
	// ErrNoShift is returned by [Approximate] if no shift in [1, 63] meets
	// the half-unit tolerance at both range endpoints.
	ErrNoShift = errors.New("no shift in [1, 63] meets the tolerance")
	// ErrFraction is returned if the target fraction is negative, not finite,
	// or larger than a uint64 can hold.
	ErrFraction = errors.New("fraction outside [0, 2^64-1]")
	// ErrRange is returned if the input range is empty or its bounds are not
	// within [-2^63, 2^64-1].
	ErrRange = errors.New("invalid input range")
)

// An Approximation is a base-2 rational `Mul / 2^Shift` discovered by
// [Approximate], together with its realized value, worst endpoint error, and
// the classification of its intermediate products.
type Approximation struct {
	Mul   uint64
	Shift uint
	// Value is the realized rational Mul / 2^Shift.
	Value *big.Float
	// MaxErr is the larger of |x*Mul/2^Shift - x*fraction| over the two range
	// endpoints; it is strictly less than 0.5.
	MaxErr *big.Float
	// Products classifies the intermediate products rangeMin*Mul and
	// rangeMax*Mul against each fixed-width integer type.
	Products Report
}

// Apply computes `round((num * a.Mul) / 2^a.Shift)` in T's fixed-width
// arithmetic, i.e. [round.MulShift] with the discovered constants.
// [Approximation.Products] indicates for which types the intermediate product
// stays representable.
func Apply[T constraints.Integer](a *Approximation, num T) T {
	return round.MulShift(num, T(a.Mul), a.Shift)
}

var (
	bigMinInt64  = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 63))
	bigMaxUint64 = new(big.Int).SetUint64(math.MaxUint64)
	bigHalf      = big.NewFloat(0.5)
)

// Approximate searches shifts 1 to 63, in order, for the first rational
// `mul / 2^shift`, `mul = round(fraction * 2^shift)`, whose absolute error
// `|x*mul/2^shift - x*fraction|` is below one half at both endpoints of
// `[rangeMin, rangeMax]`. The error is linear in x, so a shift accepted at
// both endpoints holds the tolerance over the whole range.
//
// The fraction must be in [0, 2^64-1] and the range bounds in [-2^63, 2^64-1].
func Approximate(fraction *big.Float, rangeMin, rangeMax *big.Int) (*Approximation, error) {
	switch {
	case fraction == nil:
		return nil, fmt.Errorf("nil fraction: %w", ErrFraction)
	case fraction.Sign() < 0, fraction.IsInf(),
		new(big.Float).SetInt(bigMaxUint64).Cmp(fraction) < 0:
		return nil, fmt.Errorf("%v: %w", fraction, ErrFraction)
	case rangeMin == nil, rangeMax == nil,
		rangeMin.Cmp(bigMinInt64) < 0, rangeMax.Cmp(bigMaxUint64) > 0:
		return nil, fmt.Errorf("[%v, %v]: %w", rangeMin, rangeMax, ErrRange)
	case rangeMin.Cmp(rangeMax) > 0:
		return nil, fmt.Errorf("min %v exceeds max %v: %w", rangeMin, rangeMax, ErrRange)
	}

	f := new(big.Float).SetPrec(prec).Set(fraction)

	for shift := uint(1); shift <= 63; shift++ {
		scaled := new(big.Float).SetPrec(prec).SetMantExp(f, int(shift))
		mul := roundHalfUp(scaled)
		if !mul.IsUint64() {
			// mul grows monotonically with the shift; once it exceeds a
			// uint64 no later shift can be applied in 64-bit arithmetic.
			break
		}

		errMin := endpointErr(rangeMin, mul, shift, f)
		errMax := endpointErr(rangeMax, mul, shift, f)
		if errMin.Cmp(bigHalf) >= 0 || errMax.Cmp(bigHalf) >= 0 {
			continue
		}

		m := mul.Uint64()
		value := new(big.Float).SetPrec(prec).SetUint64(m)
		value.SetMantExp(value, -int(shift))
		maxErr := errMin
		if errMax.Cmp(maxErr) > 0 {
			maxErr = errMax
		}
		return &Approximation{
			Mul:      m,
			Shift:    shift,
			Value:    value,
			MaxErr:   maxErr,
			Products: classify(productOf(rangeMin, m), productOf(rangeMax, m)),
		}, nil
	}
	return nil, fmt.Errorf("approximating %v over [%v, %v]: %w", fraction, rangeMin, rangeMax, ErrNoShift)
}

// roundHalfUp returns round(x) for non-negative x. Rounding half up equals
// rounding half away from zero on this domain.
func roundHalfUp(x *big.Float) *big.Int {
	t := new(big.Float).SetPrec(prec).Add(x, bigHalf)
	i, _ := t.Int(nil)
	return i
}

// endpointErr returns `|x*mul/2^shift - x*f|`, computed exactly but for the
// final subtraction's rounding to `prec` bits.
func endpointErr(x, mul *big.Int, shift uint, f *big.Float) *big.Float {
	approx := new(big.Float).SetPrec(prec).SetInt(new(big.Int).Mul(x, mul))
	approx.SetMantExp(approx, -int(shift))

	exact := new(big.Float).SetPrec(prec).SetInt(x)
	exact.Mul(exact, f)

	return approx.Sub(approx, exact).Abs(approx)
}
