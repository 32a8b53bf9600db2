package number

import (
	"math"
	"math/big"
)

// ratFloor rounds a big.Rat toward negative infinity.
func ratFloor(r *big.Rat) *big.Int {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(r.Num(), r.Denom(), m) // Euclidean: m in [0, den)
	return q
}

// Floor, Ceil, Round, Trunc and Fract are Rational-preserving: exact on a
// Rational, and fall back to the platform float functions on a Float.
func (n Number) Floor() Number {
	if n.kind == KindRational {
		return Number{kind: KindRational, rat: new(big.Rat).SetInt(ratFloor(n.rat))}
	}
	return Float(math.Floor(n.flt))
}

func (n Number) Ceil() Number {
	if n.kind == KindRational {
		f := ratFloor(n.rat)
		if new(big.Rat).SetInt(f).Cmp(n.rat) == 0 {
			return Number{kind: KindRational, rat: new(big.Rat).SetInt(f)}
		}
		return Number{kind: KindRational, rat: new(big.Rat).SetInt(new(big.Int).Add(f, big.NewInt(1)))}
	}
	return Float(math.Ceil(n.flt))
}

func (n Number) Trunc() Number {
	if n.kind == KindRational {
		q := new(big.Int).Quo(n.rat.Num(), n.rat.Denom()) // truncates toward zero
		return Number{kind: KindRational, rat: new(big.Rat).SetInt(q)}
	}
	return Float(math.Trunc(n.flt))
}

// Round rounds half away from zero, matching math.Round's tie-breaking.
func (n Number) Round() Number {
	if n.kind == KindRational {
		neg := n.rat.Sign() < 0
		abs := new(big.Rat).Abs(n.rat)
		shifted := new(big.Rat).Add(abs, big.NewRat(1, 2))
		f := ratFloor(shifted)
		if neg {
			f = new(big.Int).Neg(f)
		}
		return Number{kind: KindRational, rat: new(big.Rat).SetInt(f)}
	}
	return Float(math.Round(n.flt))
}

func (n Number) Fract() Number {
	if n.kind == KindRational {
		t := n.Trunc()
		return Number{kind: KindRational, rat: new(big.Rat).Sub(n.rat, t.rat)}
	}
	return Float(n.flt - math.Trunc(n.flt))
}

func (n Number) Abs() Number {
	if n.kind == KindRational {
		return Number{kind: KindRational, rat: new(big.Rat).Abs(n.rat)}
	}
	return Float(math.Abs(n.flt))
}

// Sign returns -1, 0 or +1 as a Rational; NaN is neither positive nor
// negative so it yields 0, and ±0 is never positive.
func (n Number) Sign() Number {
	if n.IsPositive() {
		return One()
	}
	if n.IsNegative() {
		return NegOne()
	}
	return Zero()
}

func perfectSquareRoot(i *big.Int) (*big.Int, bool) {
	if i.Sign() < 0 {
		return nil, false
	}
	r := new(big.Int).Sqrt(i)
	sq := new(big.Int).Mul(r, r)
	if sq.Cmp(i) == 0 {
		return r, true
	}
	return nil, false
}

// Sqrt returns an exact Rational when the argument is a non-negative
// Rational whose numerator and denominator are both perfect squares;
// otherwise falls back to Float (NaN on negative input, surfaced as a
// MathError by callers via NanToErr).
func (n Number) Sqrt() Number {
	if n.kind == KindRational && n.rat.Sign() >= 0 {
		if num, ok := perfectSquareRoot(n.rat.Num()); ok {
			if den, ok := perfectSquareRoot(n.rat.Denom()); ok {
				return Rational(num, den)
			}
		}
	}
	return Float(math.Sqrt(n.ToF64()))
}

func perfectCubeRoot(i *big.Int) (*big.Int, bool) {
	neg := i.Sign() < 0
	a := new(big.Int).Abs(i)
	r := new(big.Int).Set(a)
	if a.Sign() > 0 {
		// Newton's method seeded from the float cube root.
		f, _ := new(big.Float).SetInt(a).Float64()
		r = big.NewInt(int64(math.Cbrt(f)))
		if r.Sign() <= 0 {
			r.SetInt64(1)
		}
		for k := 0; k < 64; k++ {
			r2 := new(big.Int).Mul(r, r)
			if r2.Sign() == 0 {
				r2.SetInt64(1)
			}
			t := new(big.Int).Div(a, r2)
			t.Add(t, r)
			t.Add(t, r)
			t.Div(t, big.NewInt(3))
			if t.Cmp(r) == 0 {
				break
			}
			r = t
		}
	} else {
		r.SetInt64(0)
	}
	for _, cand := range []*big.Int{r, new(big.Int).Add(r, big.NewInt(1)), new(big.Int).Sub(r, big.NewInt(1))} {
		if cand.Sign() < 0 {
			continue
		}
		cube := new(big.Int).Mul(new(big.Int).Mul(cand, cand), cand)
		if cube.Cmp(a) == 0 {
			if neg {
				cand = new(big.Int).Neg(cand)
			}
			return cand, true
		}
	}
	return nil, false
}

// Cbrt mirrors Sqrt but over perfect cubes, and (unlike Sqrt) is defined
// for negative arguments.
func (n Number) Cbrt() Number {
	if n.kind == KindRational {
		if num, ok := perfectCubeRoot(n.rat.Num()); ok {
			if den, ok := perfectCubeRoot(n.rat.Denom()); ok {
				return Rational(num, den)
			}
		}
	}
	return Float(math.Cbrt(n.ToF64()))
}

func (n Number) Ln() Number   { return Float(math.Log(n.ToF64())) }
func (n Number) Log() Number  { return Float(math.Log10(n.ToF64())) }
func (n Number) Sin() Number  { return Float(math.Sin(n.ToF64())) }
func (n Number) Cos() Number  { return Float(math.Cos(n.ToF64())) }
func (n Number) Tan() Number  { return Float(math.Tan(n.ToF64())) }
func (n Number) Asin() Number { return Float(math.Asin(n.ToF64())) }
func (n Number) Acos() Number { return Float(math.Acos(n.ToF64())) }
func (n Number) Atan() Number { return Float(math.Atan(n.ToF64())) }
func (n Number) Atan2(o Number) Number {
	return Float(math.Atan2(n.ToF64(), o.ToF64()))
}
func (n Number) Sinh() Number  { return Float(math.Sinh(n.ToF64())) }
func (n Number) Cosh() Number  { return Float(math.Cosh(n.ToF64())) }
func (n Number) Tanh() Number  { return Float(math.Tanh(n.ToF64())) }
func (n Number) Asinh() Number { return Float(math.Asinh(n.ToF64())) }
func (n Number) Acosh() Number { return Float(math.Acosh(n.ToF64())) }
func (n Number) Atanh() Number { return Float(math.Atanh(n.ToF64())) }
