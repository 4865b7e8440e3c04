package surd

import (
	"errors"
	"testing"
)

func TestAlphabetBijection(t *testing.T) {
	seen := map[int]rune{}

	for _, r := range alphabet {
		code, err := charToCode(r)
		if err != nil {
			t.Fatal(err)
		}
		if code < 1 || code > 54 {
			t.Fatalf("code %d for %q out of range", code, r)
		}
		if prev, ok := seen[code]; ok {
			t.Fatalf("code %d maps to both %q and %q", code, prev, r)
		}
		seen[code] = r

		back, err := charFromCode(code)
		if err != nil {
			t.Fatal(err)
		}
		if back != r {
			t.Fatalf("charFromCode(%d) = %q, want %q", code, back, r)
		}
	}

	if have, want := len(seen), 54; have != want {
		t.Fatalf("alphabet size %d != %d", have, want)
	}
}

func TestCharToCodeInvalid(t *testing.T) {
	for _, r := range "0!.\näß" {
		if _, err := charToCode(r); !errors.Is(err, ErrInvalidCharacter) {
			t.Fatalf("charToCode(%q) error %v is not ErrInvalidCharacter", r, err)
		}
	}
}

func TestCharFromCodeInvalid(t *testing.T) {
	for _, code := range []int{-1, 0, 55, 99} {
		if _, err := charFromCode(code); !errors.Is(err, ErrInvalidCharacter) {
			t.Fatalf("charFromCode(%d) error %v is not ErrInvalidCharacter", code, err)
		}
	}
}
