// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package round

import "go.uber.org/zap"

// diag receives precondition-violation reports in a `debug`-tagged build; see
// check.go. It is deliberately not synchronised as it is expected to be set
// once, before any arithmetic.
var diag = zap.NewNop()

// SetDiagnostics replaces the logger that receives precondition-violation
// reports in a `debug`-tagged build. A nil logger restores the no-op default.
// In a regular build the checks are compiled out and the logger is never
// written to.
//
// Diagnostics never alter control flow nor return values; the two [Div]
// fallbacks apply in every build configuration.
func SetDiagnostics(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	diag = l
}
