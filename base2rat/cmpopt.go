// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !prod && !nocmpopts

package base2rat

import (
	"github.com/google/go-cmp/cmp"

	"github.com/ava-labs/fixedround/cmputils"
)

// CmpOpt returns a configuration for [cmp.Diff] to compare [Approximation]
// and [Report] instances in tests.
func CmpOpt() cmp.Option {
	return cmp.Options{
		// Without the [cmputils.IfIn] filter, any other use of BigFloats
		// would result in ambiguous comparers as [cmp] can't deduplicate
		// them.
		cmputils.IfIn[Approximation](cmputils.BigFloats()),
		cmputils.Uint256s(),
	}
}
