// Package quantity implements a dimensioned Number: a coefficient paired
// with an algebraic SI-style Unit. Arithmetic enforces dimensional
// consistency (UnitError on mismatched addition, Pow requiring a unitless
// exponent) while delegating all numeric work to the number package.
package quantity

import (
	"math/big"

	"quanta/errs"
	"quanta/number"
	"quanta/unit"
)

// Quantity pairs a coefficient with a unit vector.
type Quantity struct {
	Coefficient number.Number
	Unit        unit.Unit
}

// New builds a Quantity from a coefficient and a unit.
func New(n number.Number, u unit.Unit) Quantity {
	return Quantity{Coefficient: n, Unit: u}
}

// Unitless builds a Quantity whose unit is empty.
func Unitless(n number.Number) Quantity {
	return Quantity{Coefficient: n, Unit: unit.Empty()}
}

// Pi and E are the unitless transcendental constants.
func Pi() Quantity { return Unitless(number.Pi()) }
func E() Quantity  { return Unitless(number.E()) }

// IsUnitless reports whether the quantity's unit has all-zero exponents.
func (q Quantity) IsUnitless() bool {
	return q.Unit.IsEmpty()
}

func (q Quantity) String() string {
	if q.IsUnitless() {
		return q.Coefficient.String()
	}
	return q.Coefficient.String() + " " + q.Unit.String()
}

// Add and Sub require identical units; the result keeps that unit.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if !q.Unit.Equal(o.Unit) {
		return Quantity{}, errs.UnitError("cannot add %s to %s", q.Unit, o.Unit)
	}
	c, err := q.Coefficient.Add(o.Coefficient)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Coefficient: c, Unit: q.Unit}, nil
}

func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if !q.Unit.Equal(o.Unit) {
		return Quantity{}, errs.UnitError("cannot subtract %s from %s", o.Unit, q.Unit)
	}
	c, err := q.Coefficient.Sub(o.Coefficient)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Coefficient: c, Unit: q.Unit}, nil
}

// Mul and Div combine coefficients numerically and units algebraically.
func (q Quantity) Mul(o Quantity) (Quantity, error) {
	c, err := q.Coefficient.Mul(o.Coefficient)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Coefficient: c, Unit: q.Unit.Mul(o.Unit)}, nil
}

func (q Quantity) Div(o Quantity) (Quantity, error) {
	c, err := q.Coefficient.Div(o.Coefficient)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Coefficient: c, Unit: q.Unit.Div(o.Unit)}, nil
}

// Neg negates the coefficient; the unit is unaffected.
func (q Quantity) Neg() (Quantity, error) {
	c, err := q.Coefficient.Neg()
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Coefficient: c, Unit: q.Unit}, nil
}

// Pow requires a unitless exponent, then raises the coefficient to it and
// scales the unit's exponents by it.
func (q Quantity) Pow(o Quantity) (Quantity, error) {
	if !o.IsUnitless() {
		return Quantity{}, errs.UnitError("cannot take a power with a dimensioned exponent of %s", o.Unit)
	}
	c, err := q.Coefficient.Pow(o.Coefficient)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Coefficient: c, Unit: q.Unit.Pow(o.Coefficient)}, nil
}

// Compare orders two quantities; they are only comparable when their units
// are identical.
func (q Quantity) Compare(o Quantity) (int, bool) {
	if !q.Unit.Equal(o.Unit) {
		return 0, false
	}
	return q.Coefficient.Compare(o.Coefficient)
}

func (q Quantity) Abs() Quantity {
	return Quantity{Coefficient: q.Coefficient.Abs(), Unit: q.Unit}
}

func (q Quantity) Sign() Quantity {
	return Unitless(q.Coefficient.Sign())
}

func (q Quantity) Sqrt() Quantity {
	half := number.Rational(big.NewInt(1), big.NewInt(2))
	return Quantity{Coefficient: q.Coefficient.Sqrt(), Unit: q.Unit.Pow(half)}
}

func (q Quantity) Cbrt() Quantity {
	third := number.Rational(big.NewInt(1), big.NewInt(3))
	return Quantity{Coefficient: q.Coefficient.Cbrt(), Unit: q.Unit.Pow(third)}
}
