// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !debug

package round

import "golang.org/x/exp/constraints"

// Precondition checks are compiled out entirely unless the `debug` build tag
// is set. The stubs below exist so the kernel reads identically in both build
// configurations; `debugEnabled` being a constant lets the compiler discard
// the calls.
const debugEnabled = false

func checkShift[T constraints.Integer](string, uint) {}

func checkProduct[T constraints.Integer](_ string, _, _ T) {}

func reportZeroDivisor[T constraints.Integer](T) {}

func reportDivOverflow[T constraints.Integer](_, _ T) {}
