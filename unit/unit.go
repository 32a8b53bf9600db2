// Package unit implements the fixed-length exponent vector over the seven
// SI base dimensions: Second, Meter, Gram, Ampere, Mole, Kelvin, Candela.
// Gram, not Kilogram, is the base for mass so that the "kilo" prefix
// composes with it like any other SI prefix.
package unit

import (
	"fmt"
	"strings"

	"quanta/number"
)

// Dimension indexes a base unit within the Unit vector.
type Dimension int

const (
	Second Dimension = iota
	Meter
	Gram
	Ampere
	Mole
	Kelvin
	Candela
	dimensionCount
)

var dimensionSymbols = [dimensionCount]string{"s", "m", "g", "A", "mol", "K", "cd"}

// Unit is a fixed-length vector of rational exponents, one per base
// dimension. Exponents are Numbers (not plain integers) so that sqrt/cbrt
// of a unit can yield fractional exponents losslessly.
type Unit struct {
	exponents [dimensionCount]number.Number
}

// Empty returns the unitless vector: all exponents zero.
func Empty() Unit {
	var u Unit
	for i := range u.exponents {
		u.exponents[i] = number.Zero()
	}
	return u
}

// Base returns the unit vector with exponent 1 at d and 0 elsewhere.
func Base(d Dimension) Unit {
	u := Empty()
	u.exponents[d] = number.One()
	return u
}

// WithExponent returns a copy of Empty with the given dimension set to exp,
// used by the SI catalog to build compound units like N = kg*m*s^-2.
func WithExponent(d Dimension, exp number.Number) Unit {
	u := Empty()
	u.exponents[d] = exp
	return u
}

// IsEmpty reports whether every exponent is zero.
func (u Unit) IsEmpty() bool {
	for _, e := range u.exponents {
		if !e.IsZero() {
			return false
		}
	}
	return true
}

// Equal compares two unit vectors componentwise.
func (u Unit) Equal(o Unit) bool {
	for i := range u.exponents {
		if !u.exponents[i].Equal(o.exponents[i]) {
			return false
		}
	}
	return true
}

// Mul adds exponents componentwise.
func (u Unit) Mul(o Unit) Unit {
	var r Unit
	for i := range u.exponents {
		sum, _ := u.exponents[i].Add(o.exponents[i])
		r.exponents[i] = sum
	}
	return r
}

// Div subtracts exponents componentwise.
func (u Unit) Div(o Unit) Unit {
	var r Unit
	for i := range u.exponents {
		diff, _ := u.exponents[i].Sub(o.exponents[i])
		r.exponents[i] = diff
	}
	return r
}

// Pow multiplies each exponent by n. A fractional n yields a unit with
// fractional exponents (how sqrt/cbrt of a dimensioned quantity stay
// representable).
func (u Unit) Pow(n number.Number) Unit {
	var r Unit
	for i := range u.exponents {
		prod, _ := u.exponents[i].Mul(n)
		r.exponents[i] = prod
	}
	return r
}

// Exponent returns the exponent at dimension d.
func (u Unit) Exponent(d Dimension) number.Number {
	return u.exponents[d]
}

// String joins "symbol^exponent" components with single spaces, omitting
// zero-exponent components. An exponent of 1 is still written as "symbol^1"
// (the spec's deliberately unsimplified form). Negative, non-integer
// exponents are parenthesized, e.g. "s^(-3/4)".
func (u Unit) String() string {
	var parts []string
	for i, e := range u.exponents {
		if e.IsZero() {
			continue
		}
		exp := e.String()
		if e.IsNegative() && !e.IsInteger() {
			exp = "(" + exp + ")"
		}
		parts = append(parts, fmt.Sprintf("%s^%s", dimensionSymbols[i], exp))
	}
	return strings.Join(parts, " ")
}
