package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var out strings.Builder
	require.NoError(t, run([]string{"0", "1000", "0.333333333333333333"}, &out))

	got := out.String()
	assert.Contains(t, got, "mul = 341, shift = 10")
	assert.Contains(t, got, "narrowest int32")
}

func TestRunBadInputs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"too few args", []string{"0", "10"}},
		{"non-integer bound", []string{"0.5", "10", "0.25"}},
		{"malformed fraction", []string{"0", "10", "zero point five"}},
		{"negative fraction", []string{"0", "10", "-0.25"}},
		{"inverted range", []string{"10", "0", "0.25"}},
		{"bound overflow", []string{"0", "18446744073709551616", "0.25"}},
		{"no acceptable shift", []string{"0", "18446744073709551615", "0.333333333333333333"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			require.Error(t, run(tt.args, &out))
		})
	}
}
