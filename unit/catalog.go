package unit

// Prefix is one SI magnitude prefix: a symbol, a long-form name, and the
// power-of-ten factor it scales a unit by, given as exact decimal text
// (parsed with big.Rat.SetString, never through a float64 literal) so e.g.
// "centi" contributes an exact 1/100, not its nearest double.
type Prefix struct {
	Symbol string
	Name   string
	Factor string
}

// Prefixes lists the 21 SI prefixes, smallest to largest, including the
// empty prefix (factor 1) so the Cartesian product with base symbols yields
// the unprefixed unit too.
var Prefixes = []Prefix{
	{"y", "yocto", "1e-24"},
	{"z", "zepto", "1e-21"},
	{"a", "atto", "1e-18"},
	{"f", "femto", "1e-15"},
	{"p", "pico", "1e-12"},
	{"n", "nano", "1e-9"},
	{"u", "micro", "1e-6"},
	{"m", "milli", "1e-3"},
	{"c", "centi", "1e-2"},
	{"d", "deci", "1e-1"},
	{"", "", "1"},
	{"da", "deca", "1e1"},
	{"h", "hecto", "1e2"},
	{"k", "kilo", "1e3"},
	{"M", "mega", "1e6"},
	{"G", "giga", "1e9"},
	{"T", "tera", "1e12"},
	{"P", "peta", "1e15"},
	{"E", "exa", "1e18"},
	{"Z", "zetta", "1e21"},
	{"Y", "yotta", "1e24"},
}

// BaseSymbol names one of the seven base dimensions' catalog symbols, both
// compact and long-form, so the prefix product can build entries like "kg"
// and "kilogram" alike.
type BaseSymbol struct {
	Symbol    string
	Long      string
	Dimension Dimension
}

// BaseSymbols is the catalog's prefixable base-dimension entries. Gram, not
// Kilogram, is listed so "kilo" composes with it like any other prefix.
var BaseSymbols = []BaseSymbol{
	{"s", "second", Second},
	{"m", "meter", Meter},
	{"g", "gram", Gram},
	{"A", "ampere", Ampere},
	{"mol", "mole", Mole},
	{"K", "kelvin", Kelvin},
	{"cd", "candela", Candela},
}

// DerivedSymbol is a named compound SI unit expressed as a unit vector over
// the base dimensions (gram-based) plus a scale factor relative to that
// vector's unprefixed base-unit product (e.g. Newton's vector is g*m*s^-2
// and its scale is 1000, since 1 N = 1000 g*m*s^-2). Prefixes apply to
// these the same way they apply to base symbols (e.g. "kN", "MPa").
type DerivedSymbol struct {
	Symbol     string
	Long       string
	Exponents  [dimensionCount]float64
	Scale      string
	Prefixable bool
}

func exps(second, meter, gram, ampere, mole, kelvin, candela float64) [dimensionCount]float64 {
	return [dimensionCount]float64{second, meter, gram, ampere, mole, kelvin, candela}
}

// DerivedUnits lists the named SI-derived units the catalog recognises.
var DerivedUnits = []DerivedSymbol{
	{"Hz", "hertz", exps(-1, 0, 0, 0, 0, 0, 0), "1", true},
	{"N", "newton", exps(-2, 1, 1, 0, 0, 0, 0), "1000", true},
	{"Pa", "pascal", exps(-2, -1, 1, 0, 0, 0, 0), "1000", true},
	{"J", "joule", exps(-2, 2, 1, 0, 0, 0, 0), "1000", true},
	{"W", "watt", exps(-3, 2, 1, 0, 0, 0, 0), "1000", true},
	{"C", "coulomb", exps(1, 0, 0, 1, 0, 0, 0), "1", true},
	{"V", "volt", exps(-3, 2, 1, -1, 0, 0, 0), "1000", true},
	{"F", "farad", exps(4, -2, -1, 2, 0, 0, 0), "0.001", true},
	{"ohm", "ohm", exps(-3, 2, 1, -2, 0, 0, 0), "1000", true},
	{"S", "siemens", exps(3, -2, -1, 2, 0, 0, 0), "0.001", true},
	{"Wb", "weber", exps(-2, 2, 1, -1, 0, 0, 0), "1000", true},
	{"T", "tesla", exps(-2, 0, 1, -1, 0, 0, 0), "1000", true},
	{"H", "henry", exps(-2, 2, 1, -2, 0, 0, 0), "1000", true},
	{"lm", "lumen", exps(0, 0, 0, 0, 0, 0, 1), "1", true},
	{"lx", "lux", exps(0, -2, 0, 0, 0, 0, 1), "1", true},
	{"Bq", "becquerel", exps(-1, 0, 0, 0, 0, 0, 0), "1", true},
	{"Gy", "gray", exps(-2, 2, 0, 0, 0, 0, 0), "1", true},
	{"Sv", "sievert", exps(-2, 2, 0, 0, 0, 0, 0), "1", true},
	{"kat", "katal", exps(-1, 0, 0, 0, 1, 0, 0), "1", true},
	{"rad", "radian", exps(0, 0, 0, 0, 0, 0, 0), "1", true},
	{"sr", "steradian", exps(0, 0, 0, 0, 0, 0, 0), "1", true},

	// Accepted non-SI units: recognised but not prefixable.
	{"min", "minute", exps(1, 0, 0, 0, 0, 0, 0), "60", false},
	{"h", "hour", exps(1, 0, 0, 0, 0, 0, 0), "3600", false},
	{"d", "day", exps(1, 0, 0, 0, 0, 0, 0), "86400", false},
	{"au", "astronomicalunit", exps(0, 1, 0, 0, 0, 0, 0), "1.495978707e11", false},
	{"ha", "hectare", exps(0, 2, 0, 0, 0, 0, 0), "1e4", false},
	{"l", "litre", exps(0, 3, 0, 0, 0, 0, 0), "1e-3", false},
	{"L", "liter", exps(0, 3, 0, 0, 0, 0, 0), "1e-3", false},
	{"t", "tonne", exps(0, 0, 1, 0, 0, 0, 0), "1e6", false},
	{"Da", "dalton", exps(0, 0, 1, 0, 0, 0, 0), "1.66053906660e-24", false},
	{"eV", "electronvolt", exps(-2, 2, 1, 0, 0, 0, 0), "1.602176634e-16", false},

	// Imperial units.
	{"in", "inch", exps(0, 1, 0, 0, 0, 0, 0), "0.0254", false},
	{"ft", "foot", exps(0, 1, 0, 0, 0, 0, 0), "0.3048", false},
	{"yd", "yard", exps(0, 1, 0, 0, 0, 0, 0), "0.9144", false},
	{"mi", "mile", exps(0, 1, 0, 0, 0, 0, 0), "1609.344", false},
	{"lb", "pound", exps(0, 0, 1, 0, 0, 0, 0), "453.59237", false},
	{"oz", "ounce", exps(0, 0, 1, 0, 0, 0, 0), "28.349523125", false},
}
