package eval

import (
	"testing"

	"quanta/number"
	"quanta/parser"
	"quanta/unit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalNumber(t *testing.T, src string) string {
	t.Helper()
	expr, err := parser.Parse(src)
	require.NoError(t, err)
	result, err := Eval(expr, NewNumberContext())
	require.NoError(t, err)
	return result.String()
}

func TestEvalArithmeticPrecedence(t *testing.T) {
	tests := []struct{ src, want string }{
		{"2 + 3 * 4", "14"},
		{"(2 + 3) * 4", "20"},
		{"2 ^ 3 ^ 2", "512"},   // right-associative: 2^(3^2)
		{"-3 ^ 2", "9"},        // unary minus binds tighter than ^: (-3)^2
		{"2 ^ -3", "1/8"},      // a sign directly on the exponent needs no parens
		{"1/2 + 1/3", "5/6"},   // stays exact
		{"2(3)", "6"},          // implicit multiplication before a group
		{"2 3", "6"},           // implicit multiplication between atoms
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, evalNumber(t, tt.src))
		})
	}
}

func TestEvalUserVariable(t *testing.T) {
	ctx := NewNumberContext()
	ctx.SetVariable("x", number.Int(10))

	expr, err := parser.Parse("x * 2")
	require.NoError(t, err)
	result, err := Eval(expr, ctx)
	require.NoError(t, err)
	assert.Equal(t, "20", result.String())
}

func TestEvalUnknownVariableErrors(t *testing.T) {
	expr, err := parser.Parse("y + 1")
	require.NoError(t, err)
	_, err = Eval(expr, NewNumberContext())
	assert.Error(t, err)
}

func TestEvalUnknownFunctionErrors(t *testing.T) {
	expr, err := parser.Parse("bogus(1)")
	require.NoError(t, err)
	_, err = Eval(expr, NewNumberContext())
	assert.Error(t, err)
}

func TestEvalFunctionArity(t *testing.T) {
	expr, err := parser.Parse("sqrt(4, 9)")
	require.NoError(t, err)
	_, err = Eval(expr, NewNumberContext())
	assert.Error(t, err)
}

func TestEvalFunctionCallExact(t *testing.T) {
	assert.Equal(t, "2", evalNumber(t, "sqrt(4)"))
	assert.Equal(t, "-2", evalNumber(t, "cbrt(-8)"))
}

func TestEvalMinMax(t *testing.T) {
	assert.Equal(t, "1", evalNumber(t, "min(3, 1, 2)"))
	assert.Equal(t, "3", evalNumber(t, "max(3, 1, 2)"))
}

func TestEvalDivisionByZeroErrors(t *testing.T) {
	expr, err := parser.Parse("1 / 0")
	require.NoError(t, err)
	_, err = Eval(expr, NewNumberContext())
	assert.Error(t, err)
}

func TestEvalQuantityDimensionalConsistency(t *testing.T) {
	ctx := NewQuantityContext()

	sumExpr, err := parser.Parse("5 m + 2 m")
	require.NoError(t, err)
	sum, err := Eval(sumExpr, ctx)
	require.NoError(t, err)
	assert.Equal(t, "7 m^1", sum.String())

	mismatchExpr, err := parser.Parse("5 m + 2 kg")
	require.NoError(t, err)
	_, err = Eval(mismatchExpr, ctx)
	assert.Error(t, err)
}

func TestEvalQuantityCatalogConversionStaysExact(t *testing.T) {
	ctx := NewQuantityContext()
	expr, err := parser.Parse("100 cm")
	require.NoError(t, err)
	q, err := Eval(expr, ctx)
	require.NoError(t, err)

	converted, matched, err := ConvertTo(q, "m", ctx)
	require.NoError(t, err)
	require.True(t, matched)
	assert.True(t, converted.IsRational())
	assert.Equal(t, "1", converted.String())
}

func TestEvalQuantityUnitlessFunctionRejectsDimensioned(t *testing.T) {
	ctx := NewQuantityContext()
	expr, err := parser.Parse("sin(5 m)")
	require.NoError(t, err)
	_, err = Eval(expr, ctx)
	assert.Error(t, err)
}

func TestEvalQuantityAnyUnitFunctionAcceptsDimensioned(t *testing.T) {
	ctx := NewQuantityContext()
	expr, err := parser.Parse("abs(-5 m)")
	require.NoError(t, err)
	result, err := Eval(expr, ctx)
	require.NoError(t, err)
	assert.Equal(t, "5 m^1", result.String())
}

func TestEvalQuantityPowRequiresUnitlessExponent(t *testing.T) {
	ctx := NewQuantityContext()
	expr, err := parser.Parse("(2 m) ^ (1 kg)")
	require.NoError(t, err)
	_, err = Eval(expr, ctx)
	assert.Error(t, err)
}

func TestEvalQuantityCatalogLookupAsVariable(t *testing.T) {
	ctx := NewQuantityContext()
	expr, err := parser.Parse("2 * km")
	require.NoError(t, err)
	result, err := Eval(expr, ctx)
	require.NoError(t, err)
	assert.True(t, result.Unit.Equal(unit.Base(unit.Meter)))
	assert.Equal(t, "2000", result.Coefficient.String())
}
