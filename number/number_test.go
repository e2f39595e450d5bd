package number

import (
	"testing"

	"axion/unit"

	"github.com/stretchr/testify/assert"
)

func TestMulDiv(t *testing.T) {
	a := Number{Q: 3, U: unit.New(1, 0, 0)}
	b := Number{Q: 4, U: unit.New(1, 0, 0)}

	got := Mul(a, b)
	assert.InDelta(t, 12, got.Q, 1e-12)
	assert.True(t, unit.Equal(got.U, unit.New(2, 0, 0)))

	got = Div(a, b)
	assert.InDelta(t, 0.75, got.Q, 1e-12)
	assert.True(t, unit.Equal(got.U, unit.One()))
}

func TestAddSubDimensionMismatch(t *testing.T) {
	cm := Number{Q: 1, U: unit.New(1, 0, 0)}
	s := Number{Q: 1, U: unit.New(0, 0, 1)}

	_, err := Add(cm, s)
	assert.Error(t, err)
	var numErr *Error
	assert.ErrorAs(t, err, &numErr)
	assert.Equal(t, "DimensionMismatch", numErr.Kind)

	_, err = Sub(cm, s)
	assert.Error(t, err)
}

func TestExponDimensionMismatch(t *testing.T) {
	cm := Number{Q: 2, U: unit.New(1, 0, 0)}

	_, err := Expon(Number{Q: 2, U: unit.One()}, cm)
	assert.Error(t, err)

	got, err := Expon(cm, Number{Q: 2, U: unit.One()})
	assert.NoError(t, err)
	assert.InDelta(t, 4, got.Q, 1e-12)
	assert.True(t, unit.Equal(got.U, unit.New(2, 0, 0)))
}

func TestParseLiteral(t *testing.T) {
	n, err := Parse("1.6e-19")
	assert.NoError(t, err)
	assert.InDelta(t, 1.6e-19, n.Q, 1e-30)
	assert.True(t, unit.IsDimensionless(n.U))
}

func TestParseUnitSuffix(t *testing.T) {
	n, err := Parse("3cm")
	assert.NoError(t, err)
	assert.InDelta(t, 3, n.Q, 1e-12)
	assert.True(t, unit.Equal(n.U, unit.New(1, 0, 0)))
}

func TestParseBareName(t *testing.T) {
	n, err := Parse("pi")
	assert.NoError(t, err)
	assert.InDelta(t, 3.14159265358979, n.Q, 1e-10)
	assert.True(t, unit.IsDimensionless(n.U))

	n, err = Parse("electron_mass")
	assert.NoError(t, err)
	assert.InDelta(t, 9.1093897e-28, n.Q, 1e-35)
	assert.True(t, unit.Equal(n.U, unit.New(0, 1, 0)))
}

func TestParseUnknownName(t *testing.T) {
	_, err := Parse("bogus")
	assert.Error(t, err)
}

func TestParseEnergyScenario(t *testing.T) {
	// electron_mass * c^2 should reduce to an energy (erg) unit: cm^2 g s^-2.
	em, err := Parse("electron_mass")
	assert.NoError(t, err)
	c, err := Parse("c")
	assert.NoError(t, err)
	c2, err := Expon(c, Number{Q: 2, U: unit.One()})
	assert.NoError(t, err)
	energy := Mul(em, c2)

	assert.InDelta(t, 9.1093897e-28*2.99792458e10*2.99792458e10, energy.Q, energy.Q*1e-9)
	assert.True(t, unit.Equal(energy.U, unit.New(2, 1, -2)))
}
