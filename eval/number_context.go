package eval

import "quanta/number"

func unary(f func(number.Number) number.Number) Func[number.Number] {
	return func(args []number.Number) (number.Number, error) {
		args, err := CheckArity(args, 1, 1)
		if err != nil {
			return number.Number{}, err
		}
		return f(args[0]).NanToErr()
	}
}

// NewNumberContext builds the plain-number evaluation context: pi and e as
// variables, and the full set of built-in scalar functions.
func NewNumberContext() *Context[number.Number] {
	ctx := NewContext(number.Parse)

	ctx.SetVariable("pi", number.Pi())
	ctx.SetVariable("e", number.E())

	ctx.SetFunction("floor", unary(number.Number.Floor))
	ctx.SetFunction("ceil", unary(number.Number.Ceil))
	ctx.SetFunction("round", unary(number.Number.Round))
	ctx.SetFunction("trunc", unary(number.Number.Trunc))
	ctx.SetFunction("fract", unary(number.Number.Fract))
	ctx.SetFunction("abs", unary(number.Number.Abs))
	ctx.SetFunction("sign", unary(number.Number.Sign))
	ctx.SetFunction("sqrt", unary(number.Number.Sqrt))
	ctx.SetFunction("cbrt", unary(number.Number.Cbrt))
	ctx.SetFunction("ln", unary(number.Number.Ln))
	ctx.SetFunction("log", unary(number.Number.Log))
	ctx.SetFunction("sin", unary(number.Number.Sin))
	ctx.SetFunction("cos", unary(number.Number.Cos))
	ctx.SetFunction("tan", unary(number.Number.Tan))
	ctx.SetFunction("asin", unary(number.Number.Asin))
	ctx.SetFunction("acos", unary(number.Number.Acos))
	ctx.SetFunction("atan", unary(number.Number.Atan))
	ctx.SetFunction("sinh", unary(number.Number.Sinh))
	ctx.SetFunction("cosh", unary(number.Number.Cosh))
	ctx.SetFunction("tanh", unary(number.Number.Tanh))
	ctx.SetFunction("asinh", unary(number.Number.Asinh))
	ctx.SetFunction("acosh", unary(number.Number.Acosh))
	ctx.SetFunction("atanh", unary(number.Number.Atanh))

	ctx.SetFunction("atan2", func(args []number.Number) (number.Number, error) {
		args, err := CheckArity(args, 2, 2)
		if err != nil {
			return number.Number{}, err
		}
		return args[0].Atan2(args[1]).NanToErr()
	})

	ctx.SetFunction("min", func(args []number.Number) (number.Number, error) {
		args, err := CheckArity(args, 1, -1)
		if err != nil {
			return number.Number{}, err
		}
		best := args[0]
		for _, a := range args[1:] {
			cmp, ok := a.Compare(best)
			if !ok {
				return number.Number{}, notComparable("min")
			}
			if cmp < 0 {
				best = a
			}
		}
		return best, nil
	})

	ctx.SetFunction("max", func(args []number.Number) (number.Number, error) {
		args, err := CheckArity(args, 1, -1)
		if err != nil {
			return number.Number{}, err
		}
		best := args[0]
		for _, a := range args[1:] {
			cmp, ok := a.Compare(best)
			if !ok {
				return number.Number{}, notComparable("max")
			}
			if cmp > 0 {
				best = a
			}
		}
		return best, nil
	})

	return ctx
}
