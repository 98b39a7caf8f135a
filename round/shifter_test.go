// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package round

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

// testShifterEquivalence requires that the precomputed-constant surfaces
// return bit-identical results to the plain functions for every legal shift.
func testShifterEquivalence[T constraints.Integer](t *testing.T, nums []int64) {
	t.Helper()
	for shift := uint(0); shift <= maxShift[T](); shift++ {
		s, err := NewShifter[T](shift)
		require.NoErrorf(t, err, "NewShifter[%T](%d)", T(0), shift)

		for _, n := range nums {
			num := T(n)
			if got, want := s.Round(num), Shift(num, shift); got != want {
				t.Fatalf("%T{shift: %d}.Round(%d) got %d; want Shift result %d", s, shift, num, got, want)
			}

			mul := T(n>>1) | 1 // odd multipliers exercise the tie masks
			ms, err := NewMulShifter(mul, shift)
			require.NoErrorf(t, err, "NewMulShifter[%T](%d, %d)", T(0), mul, shift)
			if got, want := ms.Apply(num), MulShift(num, mul, shift); got != want {
				t.Fatalf("%T{mul: %d, shift: %d}.Apply(%d) got %d; want MulShift result %d", ms, mul, shift, num, got, want)
			}
		}
	}
}

func TestShifterEquivalence(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 0)) //nolint:gosec // Reproducibility is valuable for tests

	t.Run("int8", func(t *testing.T) {
		testShifterEquivalence[int8](t, fullRange(math.MinInt8, math.MaxInt8))
	})
	t.Run("uint8", func(t *testing.T) {
		testShifterEquivalence[uint8](t, fullRange(0, math.MaxUint8))
	})
	t.Run("int32", func(t *testing.T) {
		testShifterEquivalence[int32](t, boundarySamples(rng, math.MinInt32, math.MaxInt32, 500))
	})
	t.Run("uint64", func(t *testing.T) {
		testShifterEquivalence[uint64](t, boundarySamples(rng, math.MinInt64, math.MaxInt64, 500))
	})
}

func TestShifterRange(t *testing.T) {
	// The sign bit must survive an arithmetic shift, so signed types allow
	// one less than the unsigned maximum.
	for _, shift := range []uint{0, 1, 6} {
		if _, err := NewShifter[int8](shift); err != nil {
			t.Errorf("NewShifter[int8](%d) got error %v; want nil", shift, err)
		}
	}
	for _, shift := range []uint{7, 8, 64} {
		if _, err := NewShifter[int8](shift); err == nil {
			t.Errorf("NewShifter[int8](%d) got nil error; want %v", shift, ErrShiftRange)
		}
	}

	_, err := NewShifter[uint8](7)
	require.NoError(t, err, "NewShifter[uint8](7)")
	_, err = NewShifter[uint8](8)
	require.ErrorIs(t, err, ErrShiftRange, "NewShifter[uint8](8)")

	_, err = NewShifter[int64](62)
	require.NoError(t, err, "NewShifter[int64](62)")
	_, err = NewShifter[int64](63)
	require.ErrorIs(t, err, ErrShiftRange, "NewShifter[int64](63)")

	_, err = NewShifter[uint64](63)
	require.NoError(t, err, "NewShifter[uint64](63)")
	_, err = NewMulShifter[uint64](3, 64)
	require.ErrorIs(t, err, ErrShiftRange, "NewMulShifter[uint64](3, 64)")
}
