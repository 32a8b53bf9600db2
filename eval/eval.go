package eval

import (
	"quanta/ast"
	"quanta/errs"
)

// Eval walks expr against ctx, evaluating literals through ctx.Parse,
// variables and functions through ctx's bindings, and operators through T's
// own arithmetic. Arguments and operands are evaluated strictly left to
// right, short-circuiting the first error encountered.
func Eval[T Value[T]](expr ast.Expr, ctx *Context[T]) (T, error) {
	var zero T
	switch n := expr.(type) {
	case ast.Literal:
		v, err := ctx.Parse(n.Text)
		if err != nil {
			return zero, err
		}
		return v, nil

	case ast.Variable:
		v, ok := ctx.GetVariable(n.Name)
		if !ok {
			return zero, errs.UnknownVariableError(n.Name)
		}
		return v, nil

	case ast.Function:
		fn, ok := ctx.GetFunction(n.Name)
		if !ok {
			return zero, errs.UnknownFunctionError(n.Name)
		}
		args := make([]T, len(n.Args))
		for i, a := range n.Args {
			v, err := Eval(a, ctx)
			if err != nil {
				return zero, err
			}
			args[i] = v
		}
		return fn(args)

	case ast.Neg:
		v, err := Eval(n.Operand, ctx)
		if err != nil {
			return zero, err
		}
		return v.Neg()

	case ast.Add:
		l, err := Eval(n.Left, ctx)
		if err != nil {
			return zero, err
		}
		r, err := Eval(n.Right, ctx)
		if err != nil {
			return zero, err
		}
		return l.Add(r)

	case ast.Sub:
		l, err := Eval(n.Left, ctx)
		if err != nil {
			return zero, err
		}
		r, err := Eval(n.Right, ctx)
		if err != nil {
			return zero, err
		}
		return l.Sub(r)

	case ast.Mul:
		l, err := Eval(n.Left, ctx)
		if err != nil {
			return zero, err
		}
		r, err := Eval(n.Right, ctx)
		if err != nil {
			return zero, err
		}
		return l.Mul(r)

	case ast.Div:
		l, err := Eval(n.Left, ctx)
		if err != nil {
			return zero, err
		}
		r, err := Eval(n.Right, ctx)
		if err != nil {
			return zero, err
		}
		return l.Div(r)

	case ast.Pow:
		l, err := Eval(n.Left, ctx)
		if err != nil {
			return zero, err
		}
		r, err := Eval(n.Right, ctx)
		if err != nil {
			return zero, err
		}
		return l.Pow(r)

	default:
		return zero, errs.NotSupportedError("unhandled expression node %T", expr)
	}
}
