// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package base2rat

import (
	"math"
	"math/big"

	"github.com/holiman/uint256"
)

// A Product is the wide intermediate product `x * mul` at one range endpoint,
// held as a sign and magnitude so that the full [-2^63 * mul, 2^64 * mul]
// span stays exactly representable.
type Product struct {
	Neg bool
	Mag *uint256.Int
}

func productOf(x *big.Int, mul uint64) Product {
	p := new(big.Int).Mul(x, new(big.Int).SetUint64(mul))
	// The magnitude is below 2^128 so it can never overflow a uint256.
	mag, _ := uint256.FromBig(new(big.Int).Abs(p))
	return Product{Neg: p.Sign() < 0, Mag: mag}
}

func (p Product) fits(l typeLimit) bool {
	if p.Neg {
		return !p.Mag.Gt(l.negMag)
	}
	return !p.Mag.Gt(l.max)
}

// ToBig returns the product as a signed [big.Int].
func (p Product) ToBig() *big.Int {
	b := p.Mag.ToBig()
	if p.Neg {
		b.Neg(b)
	}
	return b
}

// A TypeFit records whether both endpoint products of an [Approximation] are
// representable in one fixed-width integer type.
type TypeFit struct {
	Type string
	Fits bool
}

// A Report classifies the wide intermediate products of an [Approximation]
// against all eight fixed-width integer types.
type Report struct {
	// Min and Max are the products at the two range endpoints.
	Min, Max Product
	// Fits is ordered from the narrowest type to the widest, signed before
	// unsigned within a width.
	Fits [8]TypeFit
	// Narrowest names the first type in Fits order that neither product
	// violates, or is empty if every type overflows.
	Narrowest string
}

// typeLimit is one type's representable range: `max` the largest positive
// value and `negMag` the magnitude of the most negative one.
type typeLimit struct {
	name        string
	max, negMag *uint256.Int
}

var typeLimits = [8]typeLimit{
	{"int8", uint256.NewInt(math.MaxInt8), uint256.NewInt(1 << 7)},
	{"uint8", uint256.NewInt(math.MaxUint8), uint256.NewInt(0)},
	{"int16", uint256.NewInt(math.MaxInt16), uint256.NewInt(1 << 15)},
	{"uint16", uint256.NewInt(math.MaxUint16), uint256.NewInt(0)},
	{"int32", uint256.NewInt(math.MaxInt32), uint256.NewInt(1 << 31)},
	{"uint32", uint256.NewInt(math.MaxUint32), uint256.NewInt(0)},
	{"int64", uint256.NewInt(math.MaxInt64), uint256.NewInt(1 << 63)},
	{"uint64", uint256.NewInt(math.MaxUint64), uint256.NewInt(0)},
}

func classify(minP, maxP Product) Report {
	r := Report{Min: minP, Max: maxP}
	for i, l := range typeLimits {
		ok := minP.fits(l) && maxP.fits(l)
		r.Fits[i] = TypeFit{Type: l.name, Fits: ok}
		if ok && r.Narrowest == "" {
			r.Narrowest = l.name
		}
	}
	return r
}
