package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualDistinguishesNodeShape(t *testing.T) {
	a := Add{Left: Literal{"1"}, Right: Literal{"2"}}
	b := Add{Left: Literal{"1"}, Right: Literal{"2"}}
	c := Sub{Left: Literal{"1"}, Right: Literal{"2"}}

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestEqualComparesFunctionArgsPositionally(t *testing.T) {
	f1 := Function{Name: "atan2", Args: []Expr{Literal{"1"}, Literal{"2"}}}
	f2 := Function{Name: "atan2", Args: []Expr{Literal{"1"}, Literal{"2"}}}
	f3 := Function{Name: "atan2", Args: []Expr{Literal{"2"}, Literal{"1"}}}

	assert.True(t, Equal(f1, f2))
	assert.False(t, Equal(f1, f3))
}

func TestEqualRejectsDifferentArgCounts(t *testing.T) {
	f1 := Function{Name: "max", Args: []Expr{Literal{"1"}}}
	f2 := Function{Name: "max", Args: []Expr{Literal{"1"}, Literal{"2"}}}
	assert.False(t, Equal(f1, f2))
}

func TestFormatOmitsParensForTighterOperand(t *testing.T) {
	// 2 + 3 * 4 should format without parens since * binds tighter.
	expr := Add{Left: Literal{"2"}, Right: Mul{Left: Literal{"3"}, Right: Literal{"4"}}}
	assert.Equal(t, "2 + 3 * 4", Format(expr))
}

func TestFormatAddsParensWhenPrecedenceRequires(t *testing.T) {
	// (2 + 3) * 4 needs explicit parens around the addition.
	expr := Mul{Left: Add{Left: Literal{"2"}, Right: Literal{"3"}}, Right: Literal{"4"}}
	assert.Equal(t, "(2 + 3) * 4", Format(expr))
}

func TestFormatPowIsRightAssociative(t *testing.T) {
	// 2^(3^4) formats without parens; (2^3)^4 needs them.
	rightAssoc := Pow{Left: Literal{"2"}, Right: Pow{Left: Literal{"3"}, Right: Literal{"4"}}}
	assert.Equal(t, "2^3^4", Format(rightAssoc))

	leftGrouped := Pow{Left: Pow{Left: Literal{"2"}, Right: Literal{"3"}}, Right: Literal{"4"}}
	assert.Equal(t, "(2^3)^4", Format(leftGrouped))
}

func TestFormatFunctionCallJoinsArgsWithCommaSpace(t *testing.T) {
	expr := Function{Name: "atan2", Args: []Expr{Literal{"1"}, Variable{"x"}}}
	assert.Equal(t, "atan2(1, x)", Format(expr))
}

func TestFormatNegWrapsLowerPrecedenceOperand(t *testing.T) {
	expr := Neg{Operand: Add{Left: Literal{"1"}, Right: Literal{"2"}}}
	assert.Equal(t, "-(1 + 2)", Format(expr))
}
