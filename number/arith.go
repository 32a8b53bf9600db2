package number

import (
	"math"
	"math/big"

	"quanta/errs"
)

// Add, Sub, Mul and Div stay in Rational when both operands are Rational;
// otherwise both sides widen to Float and IEEE arithmetic applies. Div
// rejects division by zero outright so no infinity leaks into a result.
func (n Number) Add(o Number) (Number, error) {
	if n.kind == KindRational && o.kind == KindRational {
		return Number{kind: KindRational, rat: new(big.Rat).Add(n.rat, o.rat)}, nil
	}
	return Float(n.ToF64() + o.ToF64()), nil
}

func (n Number) Sub(o Number) (Number, error) {
	if n.kind == KindRational && o.kind == KindRational {
		return Number{kind: KindRational, rat: new(big.Rat).Sub(n.rat, o.rat)}, nil
	}
	return Float(n.ToF64() - o.ToF64()), nil
}

func (n Number) Mul(o Number) (Number, error) {
	if n.kind == KindRational && o.kind == KindRational {
		return Number{kind: KindRational, rat: new(big.Rat).Mul(n.rat, o.rat)}, nil
	}
	return Float(n.ToF64() * o.ToF64()), nil
}

func (n Number) Div(o Number) (Number, error) {
	if o.IsZero() {
		return Number{}, errs.MathError("division by zero")
	}
	if n.kind == KindRational && o.kind == KindRational {
		return Number{kind: KindRational, rat: new(big.Rat).Quo(n.rat, o.rat)}, nil
	}
	return Float(n.ToF64() / o.ToF64()), nil
}

// Neg negates componentwise: the numerator of a Rational, the value of a
// Float. It always succeeds; the error return exists only so Number
// satisfies the evaluator's uniform Value contract.
func (n Number) Neg() (Number, error) {
	if n.kind == KindRational {
		return Number{kind: KindRational, rat: new(big.Rat).Neg(n.rat)}, nil
	}
	return Float(-n.flt), nil
}

// Pow implements a^b. 0^0 and 0^(negative) are MathErrors. Both operands
// Rational with an integer exponent fitting int32 computes an exact
// repeated rational power; everything else falls back to Float pow.
func (n Number) Pow(o Number) (Number, error) {
	if n.IsZero() && o.IsNegative() {
		return Number{}, errs.MathError("division by zero")
	}
	if n.IsZero() && o.IsZero() {
		return Number{}, errs.MathError("zero to the power of zero")
	}
	if n.kind == KindRational && o.kind == KindRational && o.rat.IsInt() {
		if e, ok := int32Exponent(o.rat); ok {
			return ratPowInt(n.rat, e), nil
		}
	}
	return Float(math.Pow(n.ToF64(), o.ToF64())), nil
}

func int32Exponent(r *big.Rat) (int32, bool) {
	if !r.IsInt() {
		return 0, false
	}
	i := r.Num()
	if !i.IsInt64() {
		return 0, false
	}
	v := i.Int64()
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

// ratPowInt computes r^e exactly for an integer exponent e (possibly
// negative or zero), returning a Rational in lowest terms.
func ratPowInt(r *big.Rat, e int32) Number {
	if e == 0 {
		return One()
	}
	neg := e < 0
	if neg {
		e = -e
	}
	num := new(big.Int).Exp(r.Num(), big.NewInt(int64(e)), nil)
	den := new(big.Int).Exp(r.Denom(), big.NewInt(int64(e)), nil)
	if neg {
		num, den = den, num
	}
	return Rational(num, den)
}
