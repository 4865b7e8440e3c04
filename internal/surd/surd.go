// Package surd encodes short restricted-alphabet messages into two decimal
// numbers and decodes them back. A message is packed into one large integer,
// and the pair published is the minimal-depth root of that integer held below
// a display threshold, plus an integer combining the root depth with the
// message length.
package surd

import "errors"

// System constants. Changing any of these changes the number format and
// breaks decoding of previously encoded pairs.
const (
	// Threshold is the exclusive upper bound on f1.
	Threshold = 10

	// MaxMessageLen is the longest encodable message, fixed by the two-digit
	// length fields inside the payload and inside f2.
	MaxMessageLen = lengthModulus - 1

	codeWidth   = 2   // decimal digits per character code
	codeBase    = 100 // 10^codeWidth
	lengthWidth = 2   // decimal digits of the length field

	lengthModulus = 100 // 10^lengthWidth

	// maxPayloadDigits is the widest possible payload in decimal digits.
	maxPayloadDigits = codeWidth*MaxMessageLen + lengthWidth

	// maxRootDepth bounds the root depth: with Threshold 10 the minimal
	// depth for a payload equals its digit count.
	maxRootDepth = maxPayloadDigits

	// precisionDigits is the number of fractional decimal digits carried by
	// f1. It exceeds maxPayloadDigits by a margin, which makes rounding
	// f1^r back to an integer exact for every encodable payload.
	precisionDigits = maxPayloadDigits + 20
)

var (
	ErrInvalidCharacter    = errors.New("character outside alphabet")
	ErrRootSearchExhausted = errors.New("root search exhausted")
	ErrMetadataOutOfRange  = errors.New("metadata out of range")
	ErrLengthMismatch      = errors.New("length mismatch")
	ErrDecodeFailure       = errors.New("decode failure")
)
