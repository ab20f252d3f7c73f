package word

import "fmt"

// ParseBinary parses a literal "0"/"1" string into an int64,
// most-significant bit first.
func ParseBinary(bits string) (int64, error) {
	if bits == "" {
		return 0, nil
	}
	var n int64
	for _, c := range bits {
		n <<= 1
		switch c {
		case '0':
		case '1':
			n |= 1
		default:
			return 0, fmt.Errorf("word: invalid binary digit %q", c)
		}
	}
	return n, nil
}

// FormatBinary renders n as a bit string at least width bits wide,
// zero-padded on the left.
func FormatBinary(n int64, width int) string {
	return FromInt(n, width).Bits()
}
