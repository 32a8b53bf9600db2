package eval

import (
	"quanta/number"
	"quanta/parser"
	"quanta/quantity"
)

// ConvertTo implements Quantity's unit-conversion operation: parse target as
// an expression with the same grammar, evaluate it against ctx to obtain a
// reference quantity, and — only if its unit matches q's exactly — divide
// the coefficients. Returns ok = false (no error) when the units differ,
// mirroring the spec's Option-returning convert_to rather than an error.
func ConvertTo(q quantity.Quantity, target string, ctx *Context[quantity.Quantity]) (number.Number, bool, error) {
	expr, err := parser.Parse(target)
	if err != nil {
		return number.Number{}, false, err
	}
	reference, err := Eval(expr, ctx)
	if err != nil {
		return number.Number{}, false, err
	}
	if !q.Unit.Equal(reference.Unit) {
		return number.Number{}, false, nil
	}
	ratio, err := q.Coefficient.Div(reference.Coefficient)
	if err != nil {
		return number.Number{}, false, err
	}
	return ratio, true, nil
}
