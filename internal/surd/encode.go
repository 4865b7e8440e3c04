package surd

// Encode maps a message onto two numbers: f1, the minimal-depth root of the
// packed payload held below Threshold, and f2, the integer combining that
// depth with the message length. Encode is pure; identical messages always
// yield the identical pair.
func Encode(message string) (Decimal, int, error) {
	m, err := pack(message)
	if err != nil {
		return Decimal{}, 0, err
	}

	r, err := selectRoot(m, Threshold)
	if err != nil {
		return Decimal{}, 0, err
	}

	f2, err := encodeMeta(r, len([]rune(message)))
	if err != nil {
		return Decimal{}, 0, err
	}

	return approximateRoot(m, r), f2, nil
}
