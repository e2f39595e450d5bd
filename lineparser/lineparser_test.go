package lineparser

import (
	"errors"
	"testing"

	"axion/tree"
	"axion/unit"

	"github.com/stretchr/testify/assert"
)

func TestArithmeticPrecedence(t *testing.T) {
	got, err := Parse("3*4+5")
	assert.NoError(t, err)
	assert.InDelta(t, 17, got.Q, 1e-9)
	assert.True(t, unit.IsDimensionless(got.U))
}

func TestUnitMultiplication(t *testing.T) {
	got, err := Parse("3cm * 4cm")
	assert.NoError(t, err)
	assert.InDelta(t, 12, got.Q, 1e-9)
	assert.True(t, unit.Equal(got.U, unit.New(2, 0, 0)))
}

func TestEnergyScenario(t *testing.T) {
	got, err := Parse("electron_mass * c^2")
	assert.NoError(t, err)
	assert.InDelta(t, 9.1093897e-28*2.99792458e10*2.99792458e10, got.Q, got.Q*1e-9)
	assert.True(t, unit.Equal(got.U, unit.New(2, 1, -2)))
}

func TestSqrtOfArea(t *testing.T) {
	got, err := Parse("sqrt(4cm^2)")
	assert.NoError(t, err)
	assert.InDelta(t, 2, got.Q, 1e-9)
	assert.True(t, unit.Equal(got.U, unit.New(1, 0, 0)))
}

func TestSinOfHalfPi(t *testing.T) {
	got, err := Parse("sin(pi/2)")
	assert.NoError(t, err)
	assert.InDelta(t, 1, got.Q, 1e-9)
	assert.True(t, unit.IsDimensionless(got.U))
}

func TestSinOfLengthFails(t *testing.T) {
	_, err := Parse("sin(1cm)")
	assert.Error(t, err)
	var treeErr *tree.Error
	assert.True(t, errors.As(err, &treeErr))
	assert.Equal(t, "DimensionMismatch", treeErr.Kind)
}

func TestAddingIncompatibleUnitsFails(t *testing.T) {
	_, err := Parse("1cm + 1s")
	assert.Error(t, err)
}

func TestExponChainsRightAssociative(t *testing.T) {
	got, err := Parse("2^3^2")
	assert.NoError(t, err)
	assert.InDelta(t, 512, got.Q, 1e-9)

	got, err = Parse("(2^3)^2")
	assert.NoError(t, err)
	assert.InDelta(t, 64, got.Q, 1e-9)
}

func TestImplicitMultiplicationEquivalence(t *testing.T) {
	spaced, err := Parse("2 pi")
	assert.NoError(t, err)
	explicit, err := Parse("2*pi")
	assert.NoError(t, err)
	assert.InDelta(t, explicit.Q, spaced.Q, 1e-9)

	joined, err := Parse("3cm")
	assert.NoError(t, err)
	explicitCm, err := Parse("3*cm")
	assert.NoError(t, err)
	assert.InDelta(t, explicitCm.Q, joined.Q, 1e-9)
	assert.True(t, unit.Equal(joined.U, explicitCm.U))

	paren, err := Parse("2(3+1)")
	assert.NoError(t, err)
	assert.InDelta(t, 8, paren.Q, 1e-9)
}

func TestWhitespaceInsensitive(t *testing.T) {
	tight, err := Parse("1+2*3")
	assert.NoError(t, err)
	spread, err := Parse("1 + 2 * 3")
	assert.NoError(t, err)
	assert.InDelta(t, tight.Q, spread.Q, 1e-12)
	assert.True(t, unit.Equal(tight.U, spread.U))
}

func TestUnrecognizedChar(t *testing.T) {
	_, err := Parse("3 @ 4")
	assert.Error(t, err)
	var lpErr *Error
	assert.True(t, errors.As(err, &lpErr))
	assert.Equal(t, "UnrecognizedChar", lpErr.Kind)
}

func TestUnbalancedParens(t *testing.T) {
	_, err := Parse("1+2)")
	assert.Error(t, err)
}

func TestMixedLiteralAndUnitSuffix(t *testing.T) {
	got, err := Parse("1.6e-19esu")
	assert.NoError(t, err)
	assert.InDelta(t, 1.6e-19, got.Q, 1e-30)
	assert.True(t, unit.Equal(got.U, unit.New(1.5, 0.5, -1)))
}
