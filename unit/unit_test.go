package unit

import (
	"math/big"
	"testing"

	"quanta/number"

	"github.com/stretchr/testify/assert"
)

func TestEmptyIsUnitless(t *testing.T) {
	assert.True(t, Empty().IsEmpty())
}

func TestBaseIsNotUnitless(t *testing.T) {
	assert.False(t, Base(Meter).IsEmpty())
}

func TestMulAddsExponents(t *testing.T) {
	meterSquared := Base(Meter).Mul(Base(Meter))
	assert.Equal(t, "m^2", meterSquared.String())
}

func TestDivSubtractsExponents(t *testing.T) {
	frequency := Empty().Div(Base(Second))
	assert.Equal(t, "s^-1", frequency.String())
}

func TestPowScalesExponents(t *testing.T) {
	volume := Base(Meter).Pow(number.Int(3))
	assert.Equal(t, "m^3", volume.String())
}

func TestPowFractionalExponentStaysExact(t *testing.T) {
	half := number.Rational(big.NewInt(1), big.NewInt(2))
	root := Base(Meter).Pow(half)
	assert.Equal(t, "m^1/2", root.String())
}

func TestEqualComparesComponentwise(t *testing.T) {
	velocity := Base(Meter).Div(Base(Second))
	same := Base(Meter).Div(Base(Second))
	assert.True(t, velocity.Equal(same))
	assert.False(t, velocity.Equal(Base(Meter)))
}

func TestStringOmitsZeroExponentsAndKeepsExplicitOne(t *testing.T) {
	force := Base(Gram).Mul(Base(Meter)).Mul(WithExponent(Second, number.Int(-2)))
	assert.Equal(t, "s^-2 m^1 g^1", force.String())
}
