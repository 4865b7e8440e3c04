package surd

import "fmt"

// encodeMeta packs the root depth and the message length into one integer,
// f2 = r*100 + length.
func encodeMeta(r, length int) (int, error) {
	if r < 1 || r > maxRootDepth {
		return 0, fmt.Errorf("%w: root depth %d", ErrMetadataOutOfRange, r)
	}
	if length < 0 || length > MaxMessageLen {
		return 0, fmt.Errorf("%w: message length %d", ErrMetadataOutOfRange, length)
	}

	return r*lengthModulus + length, nil
}

func decodeMeta(f2 int) (r, length int, err error) {
	r = f2 / lengthModulus
	length = f2 % lengthModulus
	if f2 < 0 || r < 1 || r > maxRootDepth {
		return 0, 0, fmt.Errorf("%w: f2 %d", ErrMetadataOutOfRange, f2)
	}

	return r, length, nil
}
