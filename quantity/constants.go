package quantity

import "quanta/unit"

// physicalConstant is a named dimensioned value added to the quantity
// context alongside the unit catalog: CODATA-rounded, one value each. The
// magnitude is exact decimal text, parsed the same way as the unit
// catalog's prefix and scale factors, so the rounding a constant carries is
// only the CODATA rounding itself and never an extra binary-float rounding
// on top of it.
type physicalConstant struct {
	name  string
	value string
	unit  unit.Unit
}

func u(d unit.Dimension, exp float64) unit.Unit {
	return unit.WithExponent(d, floatFactor(exp))
}

func mulAll(units ...unit.Unit) unit.Unit {
	r := unit.Empty()
	for _, uu := range units {
		r = r.Mul(uu)
	}
	return r
}

// PhysicalConstants returns the catalog of named physical-constant
// Quantities: speed of light, Planck's constant, Avogadro's number, the
// elementary charge, the gravitational constant, and the Boltzmann
// constant, each a single CODATA-rounded value.
func PhysicalConstants() map[string]Quantity {
	constants := []physicalConstant{
		{"c", "299792458", mulAll(u(unit.Meter, 1), u(unit.Second, -1))},
		{"h", "6.62607015e-31", mulAll(u(unit.Gram, 1), u(unit.Meter, 2), u(unit.Second, -1))},
		{"N_A", "6.02214076e23", u(unit.Mole, -1)},
		{"e_charge", "1.602176634e-19", mulAll(u(unit.Ampere, 1), u(unit.Second, 1))},
		{"G", "6.67430e-14", mulAll(u(unit.Meter, 3), u(unit.Gram, -1), u(unit.Second, -2))},
		{"k_B", "1.380649e-20", mulAll(u(unit.Gram, 1), u(unit.Meter, 2), u(unit.Second, -2), u(unit.Kelvin, -1))},
	}
	out := make(map[string]Quantity, len(constants))
	for _, c := range constants {
		out[c.name] = New(decimalFactor(c.value), c.unit)
	}
	return out
}
