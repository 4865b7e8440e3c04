package surd

import (
	"fmt"
	"math/big"
)

var (
	bigCodeBase = big.NewInt(codeBase)
	bigLenMod   = big.NewInt(lengthModulus)
)

// pack concatenates the two-digit code of every character and appends the
// message length as a final two-digit field, yielding the payload integer.
func pack(message string) (*big.Int, error) {
	runes := []rune(message)
	if len(runes) > MaxMessageLen {
		return nil, fmt.Errorf("%w: message length %d exceeds %d", ErrMetadataOutOfRange, len(runes), MaxMessageLen)
	}

	m := big.NewInt(0)
	for _, r := range runes {
		code, err := charToCode(r)
		if err != nil {
			return nil, err
		}
		m.Mul(m, bigCodeBase)
		m.Add(m, big.NewInt(int64(code)))
	}

	m.Mul(m, bigLenMod)
	m.Add(m, big.NewInt(int64(len(runes))))

	return m, nil
}

// unpack splits a payload back into characters. length is the message length
// recovered from the metadata; the payload's own embedded length field must
// agree with it.
func unpack(m *big.Int, length int) (string, error) {
	if length < 0 || length > MaxMessageLen {
		return "", fmt.Errorf("%w: message length %d", ErrLengthMismatch, length)
	}
	if m.Sign() < 0 {
		return "", fmt.Errorf("%w: negative payload", ErrLengthMismatch)
	}

	m = new(big.Int).Set(m) // Clone m

	embedded := new(big.Int)
	m.DivMod(m, bigLenMod, embedded)
	if embedded.Int64() != int64(length) {
		return "", fmt.Errorf("%w: payload holds %d characters, metadata says %d", ErrLengthMismatch, embedded.Int64(), length)
	}

	// Extract codes right to left. Positional extraction keeps leading zero
	// codes that a shortest-form decimal rendering would drop.
	runes := make([]rune, length)
	code := new(big.Int)
	for i := length - 1; i >= 0; i-- {
		m.DivMod(m, bigCodeBase, code)
		r, err := charFromCode(int(code.Int64()))
		if err != nil {
			return "", err
		}
		runes[i] = r
	}

	if m.Sign() != 0 {
		return "", fmt.Errorf("%w: payload wider than %d characters", ErrLengthMismatch, length)
	}

	return string(runes), nil
}
