package quantity

import "quanta/number"

// Parse reads a bare numeric literal as a unitless Quantity. Units never
// come from literal text in the quantity grammar — they come from variable
// references into the SI catalog (e.g. "5 m" is Mul(Literal("5"), Variable("m"))).
func Parse(s string) (Quantity, error) {
	n, err := number.Parse(s)
	if err != nil {
		return Quantity{}, err
	}
	return Unitless(n), nil
}
