package osc

import (
	"errors"
	"fmt"
)

// Base94 maps every byte to two printable characters from '!' (0x21)
// to '~' (0x7e): the byte's quotient and remainder mod 94. The output
// never contains ESC or ';', so it can sit inside an escape sequence.

var ErrBase94 = errors.New("invalid base94 data")

const base94Min = '!'

// EncodeBase94 encodes data for embedding in an escape sequence.
func EncodeBase94(data []byte) string {
	out := make([]byte, 0, len(data)*2)
	for _, b := range data {
		out = append(out, base94Min+b/94, base94Min+b%94)
	}
	return string(out)
}

// DecodeBase94 reverses EncodeBase94.
func DecodeBase94(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrBase94, len(s))
	}
	out := make([]byte, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c1 := int(s[i]) - base94Min
		c2 := int(s[i+1]) - base94Min
		if c1 < 0 || c1 > 93 || c2 < 0 || c2 > 93 {
			return nil, fmt.Errorf("%w: byte %q at %d", ErrBase94, s[i:i+2], i)
		}
		v := c1*94 + c2
		if v > 255 {
			return nil, fmt.Errorf("%w: pair %q exceeds a byte", ErrBase94, s[i:i+2])
		}
		out = append(out, byte(v))
	}
	return out, nil
}
