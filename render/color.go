package render

import (
	"image/color"
	"strconv"
	"strings"
)

// Theme defaults, used whenever a metadata color token is absent or does not
// parse. A bad theme override must never fail a render.
var (
	defaultBackground = color.RGBA{0x0f, 0x17, 0x2a, 0xff}
	defaultText       = color.RGBA{0xe2, 0xe8, 0xf0, 0xff}
	defaultAccent     = color.RGBA{0x3b, 0x82, 0xf6, 0xff}
	defaultSecondary  = color.RGBA{0x8b, 0x5c, 0xf6, 0xff}
)

var namedColors = map[string]color.RGBA{
	"black":  {0x00, 0x00, 0x00, 0xff},
	"white":  {0xff, 0xff, 0xff, 0xff},
	"red":    {0xdc, 0x26, 0x26, 0xff},
	"green":  {0x16, 0xa3, 0x4a, 0xff},
	"blue":   {0x25, 0x63, 0xeb, 0xff},
	"yellow": {0xea, 0xb3, 0x08, 0xff},
	"orange": {0xea, 0x58, 0x0c, 0xff},
	"purple": {0x93, 0x33, 0xea, 0xff},
	"gray":   {0x6b, 0x72, 0x80, 0xff},
	"grey":   {0x6b, 0x72, 0x80, 0xff},
}

// parseColor resolves a color token (hex or named) to a concrete RGBA,
// falling back for empty, unknown, or malformed tokens.
func parseColor(token string, fallback color.RGBA) color.RGBA {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return fallback
	}
	if c, ok := namedColors[token]; ok {
		return c
	}
	hex := strings.TrimPrefix(token, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
}
