package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitsDisjointFromConstants(t *testing.T) {
	for name := range UNITS {
		_, clash := CONSTANTS[name]
		assert.False(t, clash, "%q present in both UNITS and CONSTANTS", name)
	}
}

func TestFactorialDomain(t *testing.T) {
	assert.InDelta(t, 1, factorial(0), 1e-9)
	assert.InDelta(t, 120, factorial(5), 1e-9)
	assert.True(t, math.IsNaN(factorial(-1)))
	assert.True(t, math.IsNaN(factorial(2.5)))
	assert.True(t, math.IsNaN(factorial(171)))
}

func TestTrigFunctionScaleIsDimensionless(t *testing.T) {
	for _, name := range []string{"sin", "cos", "tan", "asin", "acos", "atan", "arcsin", "arccos", "arctan", "gamma", "fact"} {
		fn, ok := FUNCTIONS[name]
		assert.True(t, ok, "missing function %q", name)
		assert.Equal(t, 0.0, fn.UnitScale)
	}
}

func TestFunctionAliasesMatchCanonical(t *testing.T) {
	assert.InDelta(t, FUNCTIONS["asin"].F(0.5), FUNCTIONS["arcsin"].F(0.5), 1e-12)
	assert.InDelta(t, FUNCTIONS["acos"].F(0.5), FUNCTIONS["arccos"].F(0.5), 1e-12)
	assert.InDelta(t, FUNCTIONS["atan"].F(0.5), FUNCTIONS["arctan"].F(0.5), 1e-12)
}
