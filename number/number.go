/*
Number Module - Dimensional Quantity Algebra
=============================================

This module implements the (scalar, unit) pair at the heart of Axion and
the arithmetic that keeps its unit invariants. A Number is a total,
freely-copyable value; the errors below are the only way the algebra can
fail: adding or subtracting across incompatible units, or raising a
quantity to a non-dimensionless power.

Parse resolves a single committed token against the catalogs in
priority order (UNITS, then CONSTANTS, then NUMBERS) and splits mixed
tokens like "1.6e-19esu" into a numeric prefix and a unit suffix.
*/

package number

import (
	"fmt"
	"math"
	"strconv"

	"axion/catalog"
	"axion/unit"
)

// Number is a physical quantity: a scalar paired with its CGS unit. It
// is a type alias for catalog.Number so the catalogs can be built
// without importing this package.
type Number = catalog.Number

// Error is the kind of failure the number algebra or its parser can
// report. It wraps exactly the payload needed to render the spec's
// user-visible message for that kind.
type Error struct {
	Kind    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func dimensionMismatch(msg string) error {
	return &Error{Kind: "DimensionMismatch", Message: msg}
}

func unknownName(s string) error {
	return &Error{Kind: "UnknownName", Message: fmt.Sprintf("unknown name %q", s)}
}

func badLiteral(s string) error {
	return &Error{Kind: "BadLiteral", Message: fmt.Sprintf("could not parse literal %q", s)}
}

// Mul returns a*b: the scalars multiply, the unit vectors add.
func Mul(a, b Number) Number {
	return Number{Q: a.Q * b.Q, U: unit.Add(a.U, b.U)}
}

// Div returns a/b: the scalars divide, the unit vectors subtract.
func Div(a, b Number) Number {
	return Number{Q: a.Q / b.Q, U: unit.Sub(a.U, b.U)}
}

// Add returns a+b. Fails with DimensionMismatch if a and b carry
// different units.
func Add(a, b Number) (Number, error) {
	if !unit.Equal(a.U, b.U) {
		return Number{}, dimensionMismatch("cannot add numbers with different units")
	}
	return Number{Q: a.Q + b.Q, U: a.U}, nil
}

// Sub returns a-b. Fails with DimensionMismatch if a and b carry
// different units.
func Sub(a, b Number) (Number, error) {
	if !unit.Equal(a.U, b.U) {
		return Number{}, dimensionMismatch("cannot subtract numbers with different units")
	}
	return Number{Q: a.Q - b.Q, U: a.U}, nil
}

// Neg returns -a.
func Neg(a Number) Number {
	return Number{Q: -a.Q, U: a.U}
}

// Expon returns a^b. Fails with DimensionMismatch unless b is
// dimensionless.
func Expon(a, b Number) (Number, error) {
	if !unit.IsDimensionless(b.U) {
		return Number{}, dimensionMismatch("exponents must be unitless")
	}
	return Number{Q: math.Pow(a.Q, b.Q), U: unit.Scale(a.U, b.Q)}, nil
}

// Parse resolves a single committed token: a numeric literal, a bare
// catalog name, or a numeric prefix with a unit suffix (e.g. "3cm",
// "1.6e-19esu"). It is the only entry point the line parser uses to turn
// buffered text into a Number.
func Parse(s string) (Number, error) {
	if s == "" {
		return Number{}, badLiteral(s)
	}

	split := numericPrefixLen(s)

	switch {
	case split == len(s):
		// All numeric.
		q, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Number{}, badLiteral(s)
		}
		return Number{Q: q, U: unit.One()}, nil

	case split == 0:
		// All alphabetic: resolve against UNITS, then CONSTANTS, then NUMBERS.
		return parseName(s)

	default:
		// Mixed: numeric prefix times a unit suffix.
		q, err := strconv.ParseFloat(s[:split], 64)
		if err != nil {
			return Number{}, badLiteral(s)
		}
		u, ok := catalog.UNITS[s[split:]]
		if !ok {
			return Number{}, unknownName(s)
		}
		return Mul(Number{Q: q, U: unit.One()}, u), nil
	}
}

func parseName(s string) (Number, error) {
	if n, ok := catalog.UNITS[s]; ok {
		return n, nil
	}
	if n, ok := catalog.CONSTANTS[s]; ok {
		return n, nil
	}
	if q, ok := catalog.NUMBERS[s]; ok {
		return Number{Q: q, U: unit.One()}, nil
	}
	return Number{}, unknownName(s)
}

// numericPrefixLen finds the first index at which s stops being a
// number character. Number characters are digits; '.' and '_' after
// position 0; and 'e'/'E' after position 0 only if followed by another
// number character or sign (so the 'e' in "3e-5" is numeric, but a
// leading or trailing 'e' is left for identifier resolution). A '-'
// immediately following 'e'/'E' within a numeric token is numeric.
func numericPrefixLen(s string) int {
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			i++
		case i > 0 && (c == '.' || c == '_'):
			i++
		case i > 0 && (c == 'e' || c == 'E') && isExponentNumeric(s, i):
			i++
		case i > 0 && c == '-' && (s[i-1] == 'e' || s[i-1] == 'E'):
			i++
		default:
			return i
		}
	}
	return i
}

// isExponentNumeric reports whether the e/E at index i in s is acting as
// a scientific-notation marker: the following character is a digit or a
// sign.
func isExponentNumeric(s string, i int) bool {
	if i+1 >= len(s) {
		return false
	}
	next := s[i+1]
	return (next >= '0' && next <= '9') || next == '+' || next == '-'
}
