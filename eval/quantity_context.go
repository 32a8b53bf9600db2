package eval

import (
	"quanta/errs"
	"quanta/number"
	"quanta/quantity"
)

// unitlessUnary wraps a Number->Number function so it can only be applied
// to a unitless Quantity, matching the transcendental functions' dimensional
// policy: sin, ln and friends are not defined on dimensioned inputs.
func unitlessUnary(f func(number.Number) number.Number) Func[quantity.Quantity] {
	return func(args []quantity.Quantity) (quantity.Quantity, error) {
		args, err := CheckArity(args, 1, 1)
		if err != nil {
			return quantity.Quantity{}, err
		}
		q := args[0]
		if !q.IsUnitless() {
			return quantity.Quantity{}, errs.NotSupportedError("function can only be applied to a unitless quantity")
		}
		result, err := f(q.Coefficient).NanToErr()
		if err != nil {
			return quantity.Quantity{}, err
		}
		return quantity.Unitless(result), nil
	}
}

// anyUnitUnary wraps a Quantity->Quantity function that is defined
// regardless of unit (abs, sign, sqrt, cbrt).
func anyUnitUnary(f func(quantity.Quantity) quantity.Quantity) Func[quantity.Quantity] {
	return func(args []quantity.Quantity) (quantity.Quantity, error) {
		args, err := CheckArity(args, 1, 1)
		if err != nil {
			return quantity.Quantity{}, err
		}
		result := f(args[0])
		resultCoeff, err := result.Coefficient.NanToErr()
		if err != nil {
			return quantity.Quantity{}, err
		}
		return quantity.Quantity{Coefficient: resultCoeff, Unit: result.Unit}, nil
	}
}

// NewQuantityContext builds the dimensioned evaluation context. abs, sign,
// sqrt and cbrt accept any unit; every transcendental requires a unitless
// argument; min and max require every argument share a common unit.
func NewQuantityContext() *Context[quantity.Quantity] {
	ctx := NewContext(quantity.Parse)

	ctx.SetVariable("pi", quantity.Pi())
	ctx.SetVariable("e", quantity.E())
	for name, q := range quantity.NewCatalog() {
		ctx.SetVariable(name, q)
	}
	for name, q := range quantity.PhysicalConstants() {
		ctx.SetVariable(name, q)
	}

	ctx.SetFunction("abs", anyUnitUnary(quantity.Quantity.Abs))
	ctx.SetFunction("sign", anyUnitUnary(quantity.Quantity.Sign))
	ctx.SetFunction("sqrt", anyUnitUnary(quantity.Quantity.Sqrt))
	ctx.SetFunction("cbrt", anyUnitUnary(quantity.Quantity.Cbrt))

	ctx.SetFunction("floor", unitlessUnary(number.Number.Floor))
	ctx.SetFunction("ceil", unitlessUnary(number.Number.Ceil))
	ctx.SetFunction("round", unitlessUnary(number.Number.Round))
	ctx.SetFunction("trunc", unitlessUnary(number.Number.Trunc))
	ctx.SetFunction("fract", unitlessUnary(number.Number.Fract))
	ctx.SetFunction("ln", unitlessUnary(number.Number.Ln))
	ctx.SetFunction("log", unitlessUnary(number.Number.Log))
	ctx.SetFunction("sin", unitlessUnary(number.Number.Sin))
	ctx.SetFunction("cos", unitlessUnary(number.Number.Cos))
	ctx.SetFunction("tan", unitlessUnary(number.Number.Tan))
	ctx.SetFunction("asin", unitlessUnary(number.Number.Asin))
	ctx.SetFunction("acos", unitlessUnary(number.Number.Acos))
	ctx.SetFunction("atan", unitlessUnary(number.Number.Atan))
	ctx.SetFunction("sinh", unitlessUnary(number.Number.Sinh))
	ctx.SetFunction("cosh", unitlessUnary(number.Number.Cosh))
	ctx.SetFunction("tanh", unitlessUnary(number.Number.Tanh))
	ctx.SetFunction("asinh", unitlessUnary(number.Number.Asinh))
	ctx.SetFunction("acosh", unitlessUnary(number.Number.Acosh))
	ctx.SetFunction("atanh", unitlessUnary(number.Number.Atanh))

	ctx.SetFunction("atan2", func(args []quantity.Quantity) (quantity.Quantity, error) {
		args, err := CheckArity(args, 2, 2)
		if err != nil {
			return quantity.Quantity{}, err
		}
		if !args[0].IsUnitless() || !args[1].IsUnitless() {
			return quantity.Quantity{}, errs.NotSupportedError("function can only be applied to a unitless quantity")
		}
		result, err := args[0].Coefficient.Atan2(args[1].Coefficient).NanToErr()
		if err != nil {
			return quantity.Quantity{}, err
		}
		return quantity.Unitless(result), nil
	})

	ctx.SetFunction("min", func(args []quantity.Quantity) (quantity.Quantity, error) {
		args, err := CheckArity(args, 1, -1)
		if err != nil {
			return quantity.Quantity{}, err
		}
		best := args[0]
		for _, a := range args[1:] {
			cmp, ok := a.Compare(best)
			if !ok {
				return quantity.Quantity{}, notComparable("min")
			}
			if cmp < 0 {
				best = a
			}
		}
		return best, nil
	})

	ctx.SetFunction("max", func(args []quantity.Quantity) (quantity.Quantity, error) {
		args, err := CheckArity(args, 1, -1)
		if err != nil {
			return quantity.Quantity{}, err
		}
		best := args[0]
		for _, a := range args[1:] {
			cmp, ok := a.Compare(best)
			if !ok {
				return quantity.Quantity{}, notComparable("max")
			}
			if cmp > 0 {
				best = a
			}
		}
		return best, nil
	})

	return ctx
}
