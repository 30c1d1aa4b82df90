package common

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// DefaultPlayerColors is the palette assigned to players in seat order.
var DefaultPlayerColors = []string{
	"#38a169", // green
	"#2c5282", // blue
	"#c53030", // red
	"#d69e2e", // yellow
	"#805ad5", // purple
	"#dd6b20", // orange
}

// PlayerColor returns the default colour for a seat, cycling the palette.
func PlayerColor(seat int) string {
	return DefaultPlayerColors[Abs(seat)%len(DefaultPlayerColors)]
}

// ParseHexColor parses "#rrggbb" or "#rgb".
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// RGBString formats a colour as "r, g, b".
func RGBString(c color.RGBA) string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}
