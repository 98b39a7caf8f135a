// The optimal_base2_rational binary searches for a base-2 rational
// approximation `mul / 2^shift` of a target fraction over an input range and
// reports which integer types can hold the intermediate products.
//
// Usage:
//
//	optimal_base2_rational <range_min> <range_max> <fraction>
//
// Diagnostics are printed to standard output; unlike the historical tool this
// binary exits nonzero on malformed input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/ava-labs/fixedround/base2rat"
)

func main() {
	flag.Parse()
	if err := run(flag.Args(), os.Stdout); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

const searchPrec = 128

func run(args []string, out io.Writer) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: optimal_base2_rational <range_min> <range_max> <fraction>\n"+
			"range bounds must be integers in [-2^63, 2^64-1] and the fraction in [0, 2^64-1]; got %d argument(s)", len(args))
	}

	rangeMin, ok := new(big.Int).SetString(args[0], 10)
	if !ok {
		return fmt.Errorf("range_min %q is not a decimal integer", args[0])
	}
	rangeMax, ok := new(big.Int).SetString(args[1], 10)
	if !ok {
		return fmt.Errorf("range_max %q is not a decimal integer", args[1])
	}
	fraction, _, err := big.ParseFloat(args[2], 10, searchPrec, big.ToNearestEven)
	if err != nil {
		return fmt.Errorf("fraction %q is not a decimal number: %v", args[2], err)
	}

	a, err := base2rat.Approximate(fraction, rangeMin, rangeMax)
	if errors.Is(err, base2rat.ErrNoShift) {
		return fmt.Errorf("no base-2 rational with a shift in [1, 63] approximates %s to within 0.5 over [%v, %v]", args[2], rangeMin, rangeMax)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "mul = %d, shift = %d\n", a.Mul, a.Shift)
	fmt.Fprintf(out, "%d / 2^%d = %s\n", a.Mul, a.Shift, a.Value.Text('g', 25))
	fmt.Fprintf(out, "max endpoint error = %s\n", a.MaxErr.Text('g', 6))
	fmt.Fprintf(out, "intermediate products span [%v, %v]\n", a.Products.Min.ToBig(), a.Products.Max.ToBig())

	var fits []string
	for _, f := range a.Products.Fits {
		if f.Fits {
			fits = append(fits, f.Type)
		}
	}
	if len(fits) == 0 {
		fmt.Fprintln(out, "the products overflow every integer type")
		return nil
	}
	fmt.Fprintf(out, "usable product types: %s (narrowest %s)\n", strings.Join(fits, ", "), a.Products.Narrowest)
	return nil
}
