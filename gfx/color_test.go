package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#112233", 0xFF332211},
		{"#11223344", 0x44332211},
		{"#fff", 0xFFFFFFFF},
		{"#f00", 0xFF0000FF},
		{"#123f", 0xFF332211},
		{"#FF0000", 0xFF0000FF},
		{"#00ff00", 0xFF00FF00},
		{"0xFF112233", 0xFF332211},
		{"0X80FF0000", 0x800000FF},
		{"4278190080", 0xFF000000},
		{"0", 0},
	}
	for _, tt := range tests {
		c, err := ParseColor(tt.in)
		require.NoError(t, err, "ParseColor(%q)", tt.in)
		assert.Equal(t, tt.want, c, "ParseColor(%q)", tt.in)
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "red", "#", "#12345", "#zzz", "0x", "0xFFF", "0xFF11223344", "-1", "12.5"} {
		_, err := ParseColor(in)
		assert.ErrorIs(t, err, ErrInvalidColorLiteral, "ParseColor(%q)", in)
	}
}

func TestColorAccessors(t *testing.T) {
	c := MustParseColor("#11223344")
	assert.Equal(t, uint8(0x11), c.R())
	assert.Equal(t, uint8(0x22), c.G())
	assert.Equal(t, uint8(0x33), c.B())
	assert.Equal(t, uint8(0x44), c.A())
	assert.Equal(t, "#11223344", c.String())

	assert.Equal(t, Color(0x44332211), FromRGBA(0x11, 0x22, 0x33, 0x44))
}
