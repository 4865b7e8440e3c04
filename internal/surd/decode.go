package surd

import "fmt"

// Decode recovers the message from an (f1, f2) pair produced by Encode. Any
// pair this package did not produce fails with an error wrapping
// ErrDecodeFailure rather than yielding corrupted text.
func Decode(f1 Decimal, f2 int) (string, error) {
	r, length, err := decodeMeta(f2)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	}

	m, err := invertRoot(f1, r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	}

	message, err := unpack(m, length)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	}

	return message, nil
}
