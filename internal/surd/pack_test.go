package surd

import (
	"errors"
	"math/big"
	"testing"
)

func TestPack(t *testing.T) {
	cases := []struct {
		msg  string
		want int64
	}{
		{"", 0},
		{"a", 101},
		{"ab", 10202},
		{"aa", 10102}, // leading zero code survives
		{"z", 2601},
		{"A", 2701},
		{"?", 5301},
		{" ", 5401},
		{"Hi?", 34095303},
	}

	for _, c := range cases {
		t.Run(c.msg, func(t *testing.T) {
			m, err := pack(c.msg)
			if err != nil {
				t.Fatal(err)
			}
			if m.Cmp(big.NewInt(c.want)) != 0 {
				t.Fatalf("pack(%q) = %s, want %d", c.msg, m, c.want)
			}
		})
	}
}

func TestUnpack(t *testing.T) {
	for _, msg := range []string{"", "a", "aaa", "a b", "Hi?", alphabet} {
		t.Run(msg, func(t *testing.T) {
			m, err := pack(msg)
			if err != nil {
				t.Fatal(err)
			}

			dec, err := unpack(m, len(msg))
			if err != nil {
				t.Fatal(err)
			}
			if have, want := dec, msg; have != want {
				t.Fatalf("unpack %q != %q", have, want)
			}
		})
	}
}

func TestUnpackMismatch(t *testing.T) {
	m, err := pack("ab")
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		m      *big.Int
		length int
	}{
		{"wrong length", m, 3},
		{"negative payload", big.NewInt(-5), 1},
		{"length out of range", m, MaxMessageLen + 1},
		{"negative length", m, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := unpack(c.m, c.length)
			if !errors.Is(err, ErrLengthMismatch) {
				t.Fatalf("error %v is not ErrLengthMismatch", err)
			}
		})
	}
}

func TestUnpackDoesNotMutate(t *testing.T) {
	m, err := pack("abc")
	if err != nil {
		t.Fatal(err)
	}
	before := m.String()

	if _, err := unpack(m, 3); err != nil {
		t.Fatal(err)
	}

	if have := m.String(); have != before {
		t.Fatalf("unpack side effect: payload changed from %s to %s", before, have)
	}
}
