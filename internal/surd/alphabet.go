package surd

import "fmt"

// Character codes, two decimal digits each:
// a-z: 01-26, A-Z: 27-52, '?': 53, ' ': 54.

func charToCode(r rune) (int, error) {
	switch {
	case 'a' <= r && r <= 'z':
		return int(r-'a') + 1, nil
	case 'A' <= r && r <= 'Z':
		return int(r-'A') + 27, nil
	case r == '?':
		return 53, nil
	case r == ' ':
		return 54, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCharacter, r)
}

func charFromCode(code int) (rune, error) {
	switch {
	case 1 <= code && code <= 26:
		return 'a' + rune(code-1), nil
	case 27 <= code && code <= 52:
		return 'A' + rune(code-27), nil
	case code == 53:
		return '?', nil
	case code == 54:
		return ' ', nil
	}
	return 0, fmt.Errorf("%w: no character for code %02d", ErrInvalidCharacter, code)
}
