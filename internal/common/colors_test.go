package common

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"#ff0000", "255, 0, 0"},
		{"#00ff00", "0, 255, 0"},
		{"#0000ff", "0, 0, 255"},
		{"#ffffff", "255, 255, 255"},
		{"#000000", "0, 0, 0"},
		{"#fff", "255, 255, 255"},
		{"#f00", "255, 0, 0"},
		{"38a169", "56, 161, 105"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHexColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, RGBString(c))
			assert.Equal(t, uint8(255), c.A)
		})
	}
}

func TestParseHexColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#zzzzzz", "#1234567"} {
		_, err := ParseHexColor(in)
		assert.Error(t, err, in)
	}
}

func TestPlayerColor(t *testing.T) {
	assert.Equal(t, "#38a169", PlayerColor(0))
	assert.Equal(t, "#dd6b20", PlayerColor(5))
	assert.Equal(t, "#38a169", PlayerColor(6))

	for _, hex := range DefaultPlayerColors {
		c, err := ParseHexColor(hex)
		require.NoError(t, err)
		assert.NotEqual(t, color.RGBA{}, c)
	}
}
