/*
Unit Module - CGS Dimensional Algebra
======================================

This module implements the unit-exponent algebra that underlies every
dimensional number in Axion. A Unit is a 3-vector of real exponents over
the CGS base quantities: centimeter, gram, second. Multiplying two
physical quantities adds their unit vectors; raising a quantity to a
power scales its unit vector by that power.

Key implementation details:
- Equality is tolerance based (epsilon = 1e-10), never exact float compare
- Format renders each axis as blank/bare-name/name^power depending on
  whether the rounded exponent is 0, 1, or something else
- Fractional exponents are reduced to small num/den rationals with
  math/big.Rat before falling back to a raw decimal rendering
*/

package unit

import (
	"fmt"
	"math"
	"math/big"
)

// Epsilon is the tolerance used for all unit-vector comparisons.
const Epsilon = 1e-10

// Unit is the CGS exponent vector (length, mass, time).
type Unit struct {
	L float64 // centimeter exponent
	M float64 // gram exponent
	T float64 // second exponent
}

// One is the dimensionless identity unit.
func One() Unit {
	return Unit{}
}

// New builds a Unit from its three exponents.
func New(l, m, t float64) Unit {
	return Unit{L: l, M: m, T: t}
}

// Add returns the componentwise sum, used when multiplying two quantities.
func Add(a, b Unit) Unit {
	return Unit{L: a.L + b.L, M: a.M + b.M, T: a.T + b.T}
}

// Sub returns the componentwise difference, used when dividing two quantities.
func Sub(a, b Unit) Unit {
	return Unit{L: a.L - b.L, M: a.M - b.M, T: a.T - b.T}
}

// Scale returns a scaled by k, used when raising a quantity to a power.
func Scale(a Unit, k float64) Unit {
	return Unit{L: a.L * k, M: a.M * k, T: a.T * k}
}

// Equal reports whether a and b agree on every axis within Epsilon.
func Equal(a, b Unit) bool {
	return math.Abs(a.L-b.L) < Epsilon &&
		math.Abs(a.M-b.M) < Epsilon &&
		math.Abs(a.T-b.T) < Epsilon
}

// IsDimensionless reports whether a is the identity unit.
func IsDimensionless(a Unit) bool {
	return Equal(a, One())
}

// Format renders a as a concatenation of cm/g/s factors. An axis whose
// rounded exponent is 0 contributes nothing, 1 contributes the bare name,
// and anything else contributes "name^power".
func Format(a Unit) string {
	out := ""
	out += axis(a.L, "cm")
	out += axis(a.M, "g")
	out += axis(a.T, "s")
	return out
}

func axis(power float64, name string) string {
	rounded := roundEps(power)
	switch rounded {
	case "0":
		return ""
	case "1":
		return " " + name
	default:
		return " " + name + "^" + rounded
	}
}

// roundEps renders an exponent as an integer if it is within Epsilon of
// one, else as a reduced num/den rational with den in [2,7] if within
// Epsilon of such a fraction, else as a raw decimal.
func roundEps(n float64) string {
	integerPart := math.Floor(n)
	fractionalPart := n - integerPart

	if math.Abs(fractionalPart) < Epsilon {
		return fmt.Sprintf("%d", int64(integerPart))
	}
	if math.Abs(fractionalPart-1) < Epsilon {
		return fmt.Sprintf("%d", int64(integerPart)+1)
	}

	for den := 2; den <= 7; den++ {
		for num := 1; num < den; num++ {
			if math.Abs(fractionalPart-float64(num)/float64(den)) < Epsilon {
				r := big.NewRat(int64(num)+int64(den)*int64(integerPart), int64(den))
				return r.RatString()
			}
		}
	}
	return fmt.Sprintf("%g", n)
}
