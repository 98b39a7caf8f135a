// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package round provides correctly rounded integer arithmetic without
// division.
//
// All functions round half away from zero, matching the semantics of
// [math.Round]: an exact .5 fractional part rounds to the adjacent integer of
// greater magnitude. They are pure functions over fixed-width two's-complement
// integers and are safe for concurrent use.
package round

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Saturate returns `value`, clamped to the interval `[lo, hi]`. Behaviour is
// undefined if `lo > hi`.
func Saturate[T constraints.Integer](value, lo, hi T) T {
	return min(max(value, lo), hi)
}

// Shift returns `round(num / 2^shift)` using only shifts and masks. For a
// W-bit type the legal shift range is [0, W-2] if signed and [0, W-1] if
// unsigned; results for larger shifts are unspecified (and reported in a
// `debug`-tagged build, see [SetDiagnostics]).
func Shift[T constraints.Integer](num T, shift uint) T {
	if debugEnabled {
		checkShift[T]("Shift", shift)
	}
	if shift == 0 {
		return num
	}
	// `half` is the bit worth exactly half an LSB of the result. A remainder
	// with that bit set rounds away from zero, except for a negative value
	// whose remainder is exactly `half`: two's complement right shift has
	// already rounded it towards negative infinity, which for a tie is the
	// away-from-zero direction.
	half := T(1) << (shift - 1)
	mask := half<<1 - 1
	quo := num >> shift // arithmetic shift for signed T
	if num&half == 0 {
		return quo
	}
	if num >= 0 || num&mask != half {
		return quo + 1
	}
	return quo
}

// MulShift returns `round((num * mul) / 2^shift)`. The caller MUST guarantee
// that `num * mul` is representable in T; the product wraps otherwise and the
// result is unspecified (and reported in a `debug`-tagged build). The legal
// shift range is that of [Shift].
func MulShift[T constraints.Integer](num, mul T, shift uint) T {
	if debugEnabled {
		checkProduct("MulShift", num, mul)
	}
	return Shift(num*mul, shift)
}

// Div returns `round(dividend / divisor)`.
//
// Two precondition violations have defined, non-fatal fallbacks that apply in
// every build configuration:
//   - a zero divisor returns `dividend` unchanged; and
//   - the signed overflow case `Div(minT, -1)` returns the maximum value of T.
func Div[T constraints.Integer](dividend, divisor T) T {
	if divisor == 0 {
		if debugEnabled {
			reportZeroDivisor(dividend)
		}
		return dividend
	}
	if isSigned[T]() && divisor == ^T(0) && dividend == minOf[T]() {
		if debugEnabled {
			reportDivOverflow(dividend, divisor)
		}
		return maxOf[T]()
	}

	quo := dividend / divisor // truncated towards zero
	rem := dividend - quo*divisor
	if rem == 0 {
		return quo
	}

	if !isSigned[T]() {
		if rem >= divisor/2+divisor%2 {
			quo++
		}
		return quo
	}

	// Signed comparison of |rem| against |divisor|/2, rounding the threshold
	// up for an odd divisor. Negating into the non-positive domain instead of
	// taking absolute values keeps a most-negative divisor representable.
	negRem, negDiv := rem, divisor
	if negRem > 0 {
		negRem = -negRem
	}
	if negDiv > 0 {
		negDiv = -negDiv
	}
	if negRem <= negDiv/2+negDiv%2 {
		if (dividend < 0) == (divisor < 0) {
			quo++
		} else {
			quo--
		}
	}
	return quo
}

// ErrShiftRange is returned by [NewShifter] and [NewMulShifter] if the shift
// amount is illegal for the type; see [Shift].
var ErrShiftRange = errors.New("shift amount out of range")

// A Shifter computes [Shift] with a shift amount fixed at construction,
// precomputing the rounding-boundary constants. For every legal input the
// result is bit-identical to [Shift].
type Shifter[T constraints.Integer] struct {
	shift      uint
	half, mask T
}

// NewShifter returns a [Shifter] for the given shift amount.
func NewShifter[T constraints.Integer](shift uint) (Shifter[T], error) {
	if m := maxShift[T](); shift > m {
		return Shifter[T]{}, fmt.Errorf("shift %d exceeds %d for %T: %w", shift, m, T(0), ErrShiftRange)
	}
	s := Shifter[T]{shift: shift}
	if shift > 0 {
		s.half = T(1) << (shift - 1)
		s.mask = s.half<<1 - 1
	}
	return s, nil
}

// Shift returns the fixed shift amount passed to [NewShifter].
func (s Shifter[T]) Shift() uint {
	return s.shift
}

// Round returns `round(num / 2^s.Shift())`; see [Shift].
func (s Shifter[T]) Round(num T) T {
	if s.shift == 0 {
		return num
	}
	quo := num >> s.shift
	if num&s.half == 0 {
		return quo
	}
	if num >= 0 || num&s.mask != s.half {
		return quo + 1
	}
	return quo
}

// A MulShifter computes [MulShift] with the multiplier and shift amount fixed
// at construction, i.e. it multiplies by the base-2 rational `mul / 2^shift`.
// For every legal input the result is bit-identical to [MulShift].
type MulShifter[T constraints.Integer] struct {
	mul T
	Shifter[T]
}

// NewMulShifter returns a [MulShifter] for the given multiplier and shift
// amount.
func NewMulShifter[T constraints.Integer](mul T, shift uint) (MulShifter[T], error) {
	s, err := NewShifter[T](shift)
	if err != nil {
		return MulShifter[T]{}, err
	}
	return MulShifter[T]{mul: mul, Shifter: s}, nil
}

// Mul returns the fixed multiplier passed to [NewMulShifter].
func (m MulShifter[T]) Mul() T {
	return m.mul
}

// Apply returns `round((num * m.Mul()) / 2^m.Shift())`; see [MulShift] for the
// product-overflow precondition.
func (m MulShifter[T]) Apply(num T) T {
	if debugEnabled {
		checkProduct("MulShifter.Apply", num, m.mul)
	}
	return m.Round(num * m.mul)
}

func isSigned[T constraints.Integer]() bool {
	return ^T(0) < T(0)
}

func bitSize[T constraints.Integer]() uint {
	var x T
	return uint(unsafe.Sizeof(x)) * 8
}

// maxShift returns the largest legal shift amount for T: one full bit less
// than the width for a signed type as the sign bit must survive the shift.
func maxShift[T constraints.Integer]() uint {
	if isSigned[T]() {
		return bitSize[T]() - 2
	}
	return bitSize[T]() - 1
}

func minOf[T constraints.Integer]() T {
	if !isSigned[T]() {
		return 0
	}
	one := T(1)
	return one << (bitSize[T]() - 1)
}

func maxOf[T constraints.Integer]() T {
	return ^minOf[T]()
}
