package surd

import (
	"fmt"
	"math/big"
	"strings"
)

var bigTen = big.NewInt(10)

// Decimal is a non-negative fixed-point decimal number, coeff / 10^scale. It
// carries f1, which needs more fractional digits than any binary float holds.
type Decimal struct {
	coeff *big.Int
	scale int
}

// ParseDecimal reads a plain decimal number such as "9.87" or "123".
// Signs, exponents and other notation are not accepted.
func ParseDecimal(s string) (Decimal, error) {
	intPart, fracPart, _ := strings.Cut(s, ".")
	digits := intPart + fracPart
	if digits == "" {
		return Decimal{}, fmt.Errorf("parse decimal %q: no digits", s)
	}

	coeff, ok := new(big.Int).SetString(digits, 10)
	if !ok || coeff.Sign() < 0 || strings.ContainsAny(s, "+-") {
		return Decimal{}, fmt.Errorf("parse decimal %q: want an unsigned number like 9.87", s)
	}

	return Decimal{coeff: coeff, scale: len(fracPart)}, nil
}

func (d Decimal) String() string {
	s := d.value().String()
	if d.scale == 0 {
		return s
	}

	if len(s) <= d.scale {
		s = strings.Repeat("0", d.scale-len(s)+1) + s
	}
	dot := len(s) - d.scale

	s = strings.TrimRight(s[:dot]+"."+s[dot:], "0")
	return strings.TrimSuffix(s, ".")
}

// Cmp compares d and e, returning -1, 0 or 1.
func (d Decimal) Cmp(e Decimal) int {
	dc := new(big.Int).Set(d.value())
	ec := new(big.Int).Set(e.value())

	// Align to the larger scale.
	if diff := e.scale - d.scale; diff > 0 {
		dc.Mul(dc, pow10(diff))
	} else if diff < 0 {
		ec.Mul(ec, pow10(-diff))
	}

	return dc.Cmp(ec)
}

// value tolerates the zero Decimal.
func (d Decimal) value() *big.Int {
	if d.coeff == nil {
		return new(big.Int)
	}
	return d.coeff
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// approximateRoot computes the r-th root of m to precisionDigits fractional
// digits, rounded toward zero.
func approximateRoot(m *big.Int, r int) Decimal {
	scaled := new(big.Int).Mul(m, pow10(r*precisionDigits))
	return Decimal{coeff: iroot(scaled, r), scale: precisionDigits}
}

// invertRoot raises f1 back to the r-th power and rounds to the nearest
// integer. For any f1 produced by approximateRoot at the same depth this
// recovers the payload exactly: the floor root leaves f1 within 10^-precision
// of the true root, so m - f1^r < r * 10^(r-1) * 10^-precision, which stays
// under 1/2 for every encodable payload because precisionDigits exceeds
// maxPayloadDigits.
func invertRoot(f1 Decimal, r int) (*big.Int, error) {
	if r < 1 || r > maxRootDepth {
		return nil, fmt.Errorf("%w: root depth %d", ErrMetadataOutOfRange, r)
	}

	num := new(big.Int).Exp(f1.value(), big.NewInt(int64(r)), nil)
	den := pow10(r * f1.scale)

	m, rem := new(big.Int).DivMod(num, den, new(big.Int))
	if rem.Lsh(rem, 1).Cmp(den) >= 0 {
		m.Add(m, big.NewInt(1))
	}

	return m, nil
}

// iroot returns the integer part of the r-th root of a. Newton iteration
// from an overestimate decreases monotonically, so the first non-decreasing
// step lands on the floor root.
func iroot(a *big.Int, r int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	if r == 1 {
		return new(big.Int).Set(a)
	}

	br := big.NewInt(int64(r))
	brm1 := big.NewInt(int64(r - 1))

	// 2^ceil(bitlen/r) >= a^(1/r)
	x := new(big.Int).Lsh(big.NewInt(1), uint((a.BitLen()+r-1)/r))
	for {
		y := new(big.Int).Exp(x, brm1, nil)
		y.Div(a, y)
		y.Add(y, new(big.Int).Mul(brm1, x))
		y.Div(y, br)

		if y.Cmp(x) >= 0 {
			return x
		}
		x = y
	}
}
