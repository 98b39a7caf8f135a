// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build debug

package round

import (
	"fmt"
	"math/bits"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

const debugEnabled = true

func init() {
	// Reports default to stderr; [SetDiagnostics] overrides.
	diag = zap.Must(zap.NewDevelopment())
}

func typeName[T constraints.Integer]() string {
	return fmt.Sprintf("%T", T(0))
}

func checkShift[T constraints.Integer](op string, shift uint) {
	if m := maxShift[T](); shift > m {
		diag.Error("shift amount out of range",
			zap.String("op", op),
			zap.String("type", typeName[T]()),
			zap.Uint("shift", shift),
			zap.Uint("max", m),
		)
	}
}

// magnitude returns |x| as a uint64. Unsigned negation of the converted value
// keeps the most-negative signed inputs representable.
func magnitude[T constraints.Integer](x T) uint64 {
	if x < 0 {
		return -uint64(x)
	}
	return uint64(x)
}

// checkProduct reports if `num * mul` is not representable in T. The widening
// multiplication via [bits.Mul64] covers all eight types, including the 64-bit
// ones for which no wider native integer exists.
func checkProduct[T constraints.Integer](op string, num, mul T) {
	hi, lo := bits.Mul64(magnitude(num), magnitude(mul))

	bound := uint64(maxOf[T]())
	if num != 0 && mul != 0 && (num < 0) != (mul < 0) {
		bound = magnitude(minOf[T]())
	}
	if hi != 0 || lo > bound {
		diag.Error("product overflows type",
			zap.String("op", op),
			zap.String("type", typeName[T]()),
			zap.Any("num", num),
			zap.Any("mul", mul),
		)
	}
}

func reportZeroDivisor[T constraints.Integer](dividend T) {
	diag.Error("zero divisor, returning dividend unchanged",
		zap.String("type", typeName[T]()),
		zap.Any("dividend", dividend),
	)
}

func reportDivOverflow[T constraints.Integer](dividend, divisor T) {
	diag.Error("quotient overflows type, returning saturated value",
		zap.String("type", typeName[T]()),
		zap.Any("dividend", dividend),
		zap.Any("divisor", divisor),
	)
}
