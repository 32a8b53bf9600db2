package quantity

import (
	"math/big"
	"strings"

	"quanta/number"
	"quanta/unit"
)

// Catalog maps every recognised unit spelling (compact and long-form,
// prefixed and bare) to the Quantity it denotes. It is built once by the
// Cartesian product of unit.Prefixes with unit.BaseSymbols and
// unit.DerivedUnits, then consulted with an exact-match-first, then
// lowercase-fallback lookup (see Lookup).
type Catalog map[string]Quantity

// decimalFactor parses exact decimal (optionally scientific-notation) text
// into a Rational, via big.Rat.SetString — never through a float64 literal,
// so e.g. "0.01" is exactly 1/100 rather than the nearest IEEE-754 double.
func decimalFactor(text string) number.Number {
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		panic("quantity: invalid catalog decimal literal " + text)
	}
	return number.RationalFromRat(r)
}

// floatFactor builds a Number from a float64 exponent that is always a
// small integer in practice (unit vector components), so no precision is
// lost going through big.Rat.SetFloat64.
func floatFactor(f float64) number.Number {
	r := new(big.Rat)
	r.SetFloat64(f)
	return number.RationalFromRat(r)
}

func addEntry(cat Catalog, name string, q Quantity) {
	if _, exists := cat[name]; !exists {
		cat[name] = q
	}
}

// NewCatalog builds the full SI prefix x unit product.
func NewCatalog() Catalog {
	cat := make(Catalog)

	for _, base := range unit.BaseSymbols {
		for _, p := range unit.Prefixes {
			coeff := decimalFactor(p.Factor)
			u := unit.Base(base.Dimension)
			q := New(coeff, u)
			addEntry(cat, p.Symbol+base.Symbol, q)
			if base.Long != "" {
				addEntry(cat, p.Name+base.Long, q)
			}
		}
	}

	for _, d := range unit.DerivedUnits {
		u := unitFromExponents(d.Exponents)
		scale := decimalFactor(d.Scale)
		if d.Prefixable {
			for _, p := range unit.Prefixes {
				prefix := decimalFactor(p.Factor)
				coeff, _ := prefix.Mul(scale)
				q := New(coeff, u)
				addEntry(cat, p.Symbol+d.Symbol, q)
				if d.Long != "" {
					addEntry(cat, p.Name+d.Long, q)
				}
			}
		} else {
			q := New(scale, u)
			addEntry(cat, d.Symbol, q)
			if d.Long != "" && d.Long != d.Symbol {
				addEntry(cat, d.Long, q)
			}
		}
	}

	return cat
}

func unitFromExponents(exponents [7]float64) unit.Unit {
	u := unit.Empty()
	for i, e := range exponents {
		if e == 0 {
			continue
		}
		u = u.Mul(unit.WithExponent(unit.Dimension(i), floatFactor(e)))
	}
	return u
}

// Lookup resolves name against the catalog: an exact match first, then a
// lowercase fallback, matching the spec's case-sensitive-identifiers but
// forgiving-unit-lookup rule.
func (cat Catalog) Lookup(name string) (Quantity, bool) {
	if q, ok := cat[name]; ok {
		return q, true
	}
	q, ok := cat[strings.ToLower(name)]
	return q, ok
}
