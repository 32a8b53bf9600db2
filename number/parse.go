package number

import (
	"math/big"

	"quanta/errs"
)

// Parse reads exactly the numeric-literal grammar of the tokenizer: an
// optional leading sign, an optional radix prefix (0b/0o/0x, base 10
// otherwise), one or more digits, an optional fractional part, and — in
// base 10 only — an optional decimal exponent. The result is always a
// Rational in lowest terms, regardless of which surface form was used.
func Parse(s string) (Number, error) {
	chars := []rune(s)
	pos := 0
	n := len(chars)

	if n == 0 {
		return Number{}, errs.InvalidLiteralError("literal must not be empty")
	}

	num := new(big.Int)
	den := big.NewInt(1)

	if pos < n && (chars[pos] == '+' || chars[pos] == '-') {
		if chars[pos] == '-' {
			den.Neg(den)
		}
		pos++
	}

	base := 10
	if pos+2 < n && chars[pos] == '0' && (chars[pos+1] == 'b' || chars[pos+1] == 'o' || chars[pos+1] == 'x') && digitValue(chars[pos+2], radixFor(chars[pos+1])) >= 0 {
		switch chars[pos+1] {
		case 'b':
			base = 2
		case 'o':
			base = 8
		case 'x':
			base = 16
		}
		pos += 2
	} else if pos >= n || digitValue(chars[pos], 10) < 0 {
		return Number{}, errs.InvalidLiteralError("literal must not be empty")
	}

	start := pos
	for pos < n {
		if d := digitValue(chars[pos], base); d >= 0 {
			num.Mul(num, big.NewInt(int64(base)))
			num.Add(num, big.NewInt(int64(d)))
			pos++
		} else {
			break
		}
	}
	sawIntDigits := pos > start

	if pos < n && chars[pos] == '.' {
		if pos+1 >= n || digitValue(chars[pos+1], base) < 0 {
			return Number{}, errs.InvalidLiteralError("trailing decimal point in %q", s)
		}
		pos++
		for pos < n {
			if d := digitValue(chars[pos], base); d >= 0 {
				num.Mul(num, big.NewInt(int64(base)))
				num.Add(num, big.NewInt(int64(d)))
				den.Mul(den, big.NewInt(int64(base)))
				pos++
			} else {
				break
			}
		}
	}

	if !sawIntDigits {
		return Number{}, errs.InvalidLiteralError("literal must have at least one digit")
	}

	if base == 10 && pos < n && chars[pos] == 'e' {
		pos++
		expNeg := false
		if pos < n && (chars[pos] == '+' || chars[pos] == '-') {
			expNeg = chars[pos] == '-'
			pos++
		}
		expStart := pos
		exp := new(big.Int)
		for pos < n && digitValue(chars[pos], 10) >= 0 {
			exp.Mul(exp, big.NewInt(10))
			exp.Add(exp, big.NewInt(int64(digitValue(chars[pos], 10))))
			pos++
		}
		if pos == expStart {
			return Number{}, errs.InvalidLiteralError("missing exponent digits in %q", s)
		}
		pow := new(big.Int).Exp(big.NewInt(10), exp, nil)
		if expNeg {
			den.Mul(den, pow)
		} else {
			num.Mul(num, pow)
		}
	}

	if pos != n {
		return Number{}, errs.InvalidLiteralError("unexpected character %q in %q", chars[pos], s)
	}

	return Rational(num, den), nil
}

func radixFor(prefix rune) int {
	switch prefix {
	case 'b':
		return 2
	case 'o':
		return 8
	case 'x':
		return 16
	default:
		return 10
	}
}

// digitValue returns the numeric value of r as a base-r digit, or -1 if it
// isn't one. Hex letters a-f are lowercase only, per the tokenizer grammar.
func digitValue(r rune, base int) int {
	var v int
	switch {
	case r >= '0' && r <= '9':
		v = int(r - '0')
	case r >= 'a' && r <= 'f':
		v = int(r-'a') + 10
	default:
		return -1
	}
	if v >= base {
		return -1
	}
	return v
}
