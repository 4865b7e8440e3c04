package surd

import (
	"math/big"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestParseDecimalString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9.87", "9.87"},
		{"123", "123"},
		{"0.5", "0.5"},
		{"00.50", "0.5"},
		{".25", "0.25"},
		{"7.", "7"},
		{"0", "0"},
		{"0.000", "0"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			d, err := ParseDecimal(c.in)
			if err != nil {
				t.Fatal(err)
			}
			if have, want := d.String(), c.want; have != want {
				t.Fatalf("String %q != %q", have, want)
			}
		})
	}
}

func TestParseDecimalInvalid(t *testing.T) {
	for _, in := range []string{"", ".", "-1", "+1", "1e5", "1.2.3", "abc", " 5"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseDecimal(in); err == nil {
				t.Fatalf("ParseDecimal(%q) accepted", in)
			}
		})
	}
}

func TestDecimalCmp(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1.5", "1.50", 0},
		{"9.9999", "10", -1},
		{"10", "9.9999", 1},
		{"0", "0.0", 0},
		{"0.1", "0.09", 1},
	}

	for _, c := range cases {
		t.Run(c.a+" vs "+c.b, func(t *testing.T) {
			a, err := ParseDecimal(c.a)
			if err != nil {
				t.Fatal(err)
			}
			b, err := ParseDecimal(c.b)
			if err != nil {
				t.Fatal(err)
			}
			if have, want := a.Cmp(b), c.want; have != want {
				t.Fatalf("Cmp %d != %d", have, want)
			}
		})
	}
}

func TestIroot(t *testing.T) {
	cases := []struct {
		a    *big.Int
		r    int
		want *big.Int
	}{
		{big.NewInt(0), 5, big.NewInt(0)},
		{big.NewInt(1), 7, big.NewInt(1)},
		{big.NewInt(2), 2, big.NewInt(1)},
		{big.NewInt(8), 3, big.NewInt(2)},
		{big.NewInt(1000000), 2, big.NewInt(1000)},
		{big.NewInt(999999), 2, big.NewInt(999)},
		{big.NewInt(34095303), 8, big.NewInt(8)},
		{pow10(60), 20, big.NewInt(1000)},
	}

	for _, c := range cases {
		have := iroot(c.a, c.r)
		if have.Cmp(c.want) != 0 {
			t.Fatalf("iroot(%s, %d) = %s, want %s", c.a, c.r, have, c.want)
		}

		// Floor root: have^r <= a < (have+1)^r.
		br := big.NewInt(int64(c.r))
		low := new(big.Int).Exp(have, br, nil)
		high := new(big.Int).Exp(new(big.Int).Add(have, big.NewInt(1)), br, nil)
		if low.Cmp(c.a) > 0 || high.Cmp(c.a) <= 0 {
			t.Fatalf("iroot(%s, %d) = %s is not the floor root", c.a, c.r, have)
		}
	}
}

func randPayload(digits int) *big.Int {
	s := &strings.Builder{}
	s.Grow(digits)
	s.WriteByte('1' + byte(rand.IntN(9)))
	for range digits - 1 {
		s.WriteByte('0' + byte(rand.IntN(10)))
	}

	m, ok := new(big.Int).SetString(s.String(), 10)
	if !ok {
		panic("randPayload: bad digit string")
	}
	return m
}

// Raising the approximation back to its depth must reproduce the payload
// exactly, for payloads all the way up to the widest encodable one.
func TestRootInversion(t *testing.T) {
	for _, digits := range []int{1, 2, 7, 40, 99, 160, maxPayloadDigits} {
		for range 5 {
			m := randPayload(digits)

			t.Run(m.String(), func(t *testing.T) {
				r, err := selectRoot(m, Threshold)
				if err != nil {
					t.Fatal(err)
				}

				back, err := invertRoot(approximateRoot(m, r), r)
				if err != nil {
					t.Fatal(err)
				}
				if back.Cmp(m) != 0 {
					t.Fatalf("inverted %s != %s at depth %d", back, m, r)
				}
			})
		}
	}
}
