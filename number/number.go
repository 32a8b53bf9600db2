// Package number implements the hybrid exact-rational / IEEE-754 double
// scalar that backs the plain-number evaluation context. A Number is one of
// two cases: an arbitrary-precision Rational in lowest terms, or a Float.
// Arithmetic stays in Rational whenever both operands are Rational and
// widens to Float the moment either side is a Float, per the engine's
// exactness-opportunistic, float-fallback discipline.
package number

import (
	"math"
	"math/big"
	"strconv"

	"quanta/errs"
)

// Kind tags which of the two closed variant cases a Number holds.
type Kind int

const (
	KindRational Kind = iota
	KindFloat
)

// Number is a tagged union: exactly one of rat (when Kind == KindRational)
// or flt (when Kind == KindFloat) is meaningful.
type Number struct {
	kind Kind
	rat  *big.Rat
	flt  float64
}

// Rational builds a Number in lowest terms from a numerator and a positive
// denominator. big.Rat canonicalizes sign-into-numerator and gcd reduction
// on construction, which is exactly the invariant the spec requires.
func Rational(num, den *big.Int) Number {
	return Number{kind: KindRational, rat: new(big.Rat).SetFrac(num, den)}
}

// RationalFromRat wraps an already-reduced big.Rat.
func RationalFromRat(r *big.Rat) Number {
	return Number{kind: KindRational, rat: new(big.Rat).Set(r)}
}

// Int builds an integer-valued Rational.
func Int(i int64) Number {
	return Number{kind: KindRational, rat: new(big.Rat).SetInt64(i)}
}

// Float builds a Number holding an IEEE-754 double.
func Float(f float64) Number {
	return Number{kind: KindFloat, flt: f}
}

func zeroRat() *big.Rat { return new(big.Rat) }

// Zero, One and NegOne are the Rational constants the math library and the
// unit package reuse (e.g. Sign's results, x^0, unit exponent vectors).
func Zero() Number   { return Number{kind: KindRational, rat: zeroRat()} }
func One() Number    { return Int(1) }
func NegOne() Number { return Int(-1) }

// Pi and E are Floats carried to 16 significant digits, per spec.
func Pi() Number { return Float(3.141592653589793) }
func E() Number  { return Float(2.718281828459045) }

// IsRational, IsZero, IsInteger, IsPositive and IsNegative are the scalar
// predicates every backend needs for dimensional and control-flow checks.
func (n Number) IsRational() bool { return n.kind == KindRational }

func (n Number) IsZero() bool {
	if n.kind == KindRational {
		return n.rat.Sign() == 0
	}
	return n.flt == 0
}

func (n Number) IsInteger() bool {
	if n.kind == KindRational {
		return n.rat.IsInt()
	}
	return !math.IsNaN(n.flt) && !math.IsInf(n.flt, 0) && n.flt == math.Trunc(n.flt)
}

func (n Number) IsPositive() bool {
	if n.kind == KindRational {
		return n.rat.Sign() > 0
	}
	return n.flt > 0
}

func (n Number) IsNegative() bool {
	if n.kind == KindRational {
		return n.rat.Sign() < 0
	}
	return n.flt < 0
}

// ToF64 is total: a Rational converts to its nearest double, a Float
// returns itself.
func (n Number) ToF64() float64 {
	if n.kind == KindRational {
		f, _ := new(big.Float).SetRat(n.rat).Float64()
		return f
	}
	return n.flt
}

// ToRational converts a Float to its exact rational representation. It is
// undefined (returns an error) for ±Inf and NaN, as the spec requires.
func (n Number) ToRational() (*big.Rat, error) {
	if n.kind == KindRational {
		return new(big.Rat).Set(n.rat), nil
	}
	if math.IsNaN(n.flt) || math.IsInf(n.flt, 0) {
		return nil, errs.MathError("cannot convert %v to a rational", n.flt)
	}
	r := new(big.Rat)
	r.SetFloat64(n.flt)
	return r, nil
}

// Equal implements the spec's mixed-variant equality: two Rationals compare
// exactly, two Floats compare by IEEE equality (so NaN != NaN), and a
// mixed pair compares by converting the Rational side to Float.
func (n Number) Equal(o Number) bool {
	if n.kind == KindFloat && o.kind == KindFloat {
		return n.flt == o.flt
	}
	if n.kind == KindRational && o.kind == KindRational {
		return n.rat.Cmp(o.rat) == 0
	}
	return n.ToF64() == o.ToF64()
}

// Compare orders two Numbers. The returned bool is false when the values
// are incomparable (NaN on either side), mirroring Rust's partial_cmp.
func (n Number) Compare(o Number) (int, bool) {
	if n.kind == KindRational && o.kind == KindRational {
		return n.rat.Cmp(o.rat), true
	}
	a, b := n.ToF64(), o.ToF64()
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, false
	}
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	default:
		return 0, true
	}
}

// String renders integers as decimal, non-integer rationals as "p/q", and
// floats via the platform's shortest round-trip decimal representation.
func (n Number) String() string {
	if n.kind == KindRational {
		if n.rat.IsInt() {
			return n.rat.Num().String()
		}
		return n.rat.Num().String() + "/" + n.rat.Denom().String()
	}
	return formatFloat(n.flt)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// NanToErr surfaces a NaN-valued Float as a MathError so NaN never escapes
// past a math function; Rationals can never hold NaN so they pass through.
func (n Number) NanToErr() (Number, error) {
	if n.kind == KindFloat && math.IsNaN(n.flt) {
		return Number{}, errs.MathError("result is not a number")
	}
	return n, nil
}
