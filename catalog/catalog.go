/*
Catalog Module - Static Identifier Tables
===========================================

This module holds the four immutable, process-lifetime tables that the
number parser and the expression tree evaluator resolve identifiers
against: dimensionless NUMBERS, dimensional CONSTANTS, named UNITS, and
the scalar FUNCTIONS available to Func nodes. All four are built once at
package init and are safe to share across any number of concurrent
readers, since nothing ever mutates them after init.

Values are expressed in CGS (centimeter-gram-second); FUNCTIONS pairs
each elementary function with the factor by which it scales its
argument's unit-exponent vector to produce the result's unit.
*/

package catalog

import (
	"math"

	"axion/unit"
)

const (
	eulerMascheroni = 0.57721566490153286060651209008240243
	newtonG         = 6.6743e-8
	planckHBar      = 1.05457266e-27
	electronMass    = 9.1093897e-28
	protonMass      = 1.6726231e-24
	speedOfLight    = 2.99792458e10
	electronCharge  = 4.8032068e-10
	boltzmann       = 1.380649e-16
	solarMass       = 1.989e33
	solarLuminosity = 3.828e33
)

// Number mirrors the (scalar, unit) pair the number package operates on.
// It lives here, rather than in package number, so the catalogs can be
// built without a dependency on the package that resolves identifiers
// against them.
type Number struct {
	Q float64
	U unit.Unit
}

// NUMBERS holds dimensionless real constants.
var NUMBERS = map[string]float64{
	"pi":     math.Pi,
	"e":      math.E,
	"egamma": eulerMascheroni,
}

// CONSTANTS holds dimensional physical constants.
var CONSTANTS = map[string]Number{
	"c":               {Q: speedOfLight, U: unit.New(1, 0, -1)},
	"hbar":            {Q: planckHBar, U: unit.New(2, 1, -1)},
	"GN":              {Q: newtonG, U: unit.New(3, -1, -2)},
	"kb":              {Q: boltzmann, U: unit.New(2, 1, -2)},
	"electron_mass":   {Q: electronMass, U: unit.New(0, 1, 0)},
	"proton_mass":     {Q: protonMass, U: unit.New(0, 1, 0)},
	"electron_charge": {Q: electronCharge, U: unit.New(1.5, 0.5, -1)},
	"msun":            {Q: solarMass, U: unit.New(0, 1, 0)},
	"lsun":            {Q: solarLuminosity, U: unit.New(2, 1, -3)},
}

// UNITS holds named units, each expressed as a Number in base CGS.
var UNITS = map[string]Number{
	// Base units.
	"cm": {Q: 1, U: unit.New(1, 0, 0)},
	"g":  {Q: 1, U: unit.New(0, 1, 0)},
	"s":  {Q: 1, U: unit.New(0, 0, 1)},

	// Derived mechanical units.
	"erg": {Q: 1, U: unit.New(2, 1, -2)},
	"dyn": {Q: 1, U: unit.New(1, 1, -2)},
	"esu": {Q: 1, U: unit.New(1.5, 0.5, -1)},

	// Energy prefixes, expressed in erg.
	"eV":  {Q: 1.602176634e-12, U: unit.New(2, 1, -2)},
	"keV": {Q: 1.602176634e-9, U: unit.New(2, 1, -2)},
	"MeV": {Q: 1.602176634e-6, U: unit.New(2, 1, -2)},
	"GeV": {Q: 1.602176634e-3, U: unit.New(2, 1, -2)},

	// Astronomical length units, expressed in cm.
	"pc": {Q: 3.0856775814913673e18, U: unit.New(1, 0, 0)},
	"ly": {Q: 9.4607304725808e17, U: unit.New(1, 0, 0)},
	"AU": {Q: 1.495978707e13, U: unit.New(1, 0, 0)},

	// Time units, expressed in s.
	"min": {Q: 60, U: unit.New(0, 0, 1)},
	"hr":  {Q: 3600, U: unit.New(0, 0, 1)},
	"d":   {Q: 86400, U: unit.New(0, 0, 1)},
	"yr":  {Q: 3.15576e7, U: unit.New(0, 0, 1)},
	"kyr": {Q: 3.15576e10, U: unit.New(0, 0, 1)},
}

// Function pairs an elementary real function with the factor by which
// it scales its argument's unit-exponent vector.
type Function struct {
	F         func(float64) float64
	UnitScale float64
}

// FUNCTIONS holds the scalar functions available to Func tree nodes.
var FUNCTIONS = map[string]Function{
	"sqrt": {F: math.Sqrt, UnitScale: 0.5},
	"cbrt": {F: math.Cbrt, UnitScale: 1.0 / 3.0},

	"sin":  {F: math.Sin, UnitScale: 0},
	"cos":  {F: math.Cos, UnitScale: 0},
	"tan":  {F: math.Tan, UnitScale: 0},
	"asin": {F: math.Asin, UnitScale: 0},
	"acos": {F: math.Acos, UnitScale: 0},
	"atan": {F: math.Atan, UnitScale: 0},
	// Aliases carried over from the original implementation's function table.
	"arcsin": {F: math.Asin, UnitScale: 0},
	"arccos": {F: math.Acos, UnitScale: 0},
	"arctan": {F: math.Atan, UnitScale: 0},

	"gamma": {F: math.Gamma, UnitScale: 0},
	"fact":  {F: factorial, UnitScale: 0},
}

// factorial is defined for non-negative integers representable as a
// float64 factorial; NaN outside that domain propagates as a
// DimensionMismatch-free numeric failure the evaluator surfaces as-is.
func factorial(n float64) float64 {
	if n < 0 || n != math.Floor(n) || n > 170 {
		return math.NaN()
	}
	result := 1.0
	for i := 2; i <= int(n); i++ {
		result *= float64(i)
	}
	return result
}
