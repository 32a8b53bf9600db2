package ast

import (
	"fmt"
	"strings"
)

// Precedence levels, lowest to highest. Exponentiation's right-associativity
// and the other operators' left-associativity are handled by which side of
// a node gets rendered at prec and which at prec+1.
const (
	precAdditive       = 10
	precMultiplicative = 20
	precExponent       = 40
	precAtomic         = 50
)

func precOf(e Expr) int {
	switch e.(type) {
	case Add, Sub:
		return precAdditive
	case Mul, Div:
		return precMultiplicative
	case Pow:
		return precExponent
	default:
		return precAtomic
	}
}

// Format renders an expression by recursive descent with precedence-aware
// parenthesization: the inverse of Parse.
func Format(e Expr) string {
	return formatAt(e, 0)
}

func formatAt(e Expr, parent int) string {
	prec := precOf(e)
	var body string
	switch n := e.(type) {
	case Literal:
		body = n.Text
	case Variable:
		body = n.Name
	case Function:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = formatAt(a, 0)
		}
		body = fmt.Sprintf("%s(%s)", n.Name, strings.Join(args, ", "))
	case Neg:
		body = "-" + formatAt(n.Operand, prec)
	case Add:
		body = formatAt(n.Left, prec) + " + " + formatAt(n.Right, prec+1)
	case Sub:
		body = formatAt(n.Left, prec) + " - " + formatAt(n.Right, prec+1)
	case Mul:
		body = formatAt(n.Left, prec) + " * " + formatAt(n.Right, prec+1)
	case Div:
		body = formatAt(n.Left, prec) + " / " + formatAt(n.Right, prec+1)
	case Pow:
		body = formatAt(n.Left, prec+1) + "^" + formatAt(n.Right, prec)
	default:
		body = ""
	}
	if parent > prec {
		return "(" + body + ")"
	}
	return body
}
