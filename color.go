package gepard

import (
	"fmt"

	"github.com/szledan/gepard-sub001/backend"
)

// Color is a straight-alpha (non-premultiplied) 8-bit-per-channel color.
// It is the same representation backend.Backend renders, so no conversion
// happens between the facade and the rendering pipeline.
type Color = backend.Color

// RGB returns an opaque Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a Color from 8-bit channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex parses a CSS-style hex color: "#RGB", "#RGBA", "#RRGGBB" or
// "#RRGGBBAA" (the leading "#" is optional). Channels missing an alpha
// nibble default to fully opaque. Returns an error if s isn't one of
// those four recognized lengths or contains non-hex digits.
func Hex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}

	expand := func(c byte) (byte, byte) { return c, c }

	var r, g, b, a [2]byte
	a = [2]byte{'f', 'f'}

	switch len(s) {
	case 3, 4:
		r[0], r[1] = expand(s[0])
		g[0], g[1] = expand(s[1])
		b[0], b[1] = expand(s[2])
		if len(s) == 4 {
			a[0], a[1] = expand(s[3])
		}
	case 6, 8:
		r[0], r[1] = s[0], s[1]
		g[0], g[1] = s[2], s[3]
		b[0], b[1] = s[4], s[5]
		if len(s) == 8 {
			a[0], a[1] = s[6], s[7]
		}
	default:
		return Color{}, fmt.Errorf("gepard: %q is not a valid hex color", s)
	}

	rv, err := hexByte(r)
	if err != nil {
		return Color{}, err
	}
	gv, err := hexByte(g)
	if err != nil {
		return Color{}, err
	}
	bv, err := hexByte(b)
	if err != nil {
		return Color{}, err
	}
	av, err := hexByte(a)
	if err != nil {
		return Color{}, err
	}
	return Color{R: rv, G: gv, B: bv, A: av}, nil
}

func hexByte(pair [2]byte) (uint8, error) {
	hi, err := hexDigit(pair[0])
	if err != nil {
		return 0, err
	}
	lo, err := hexDigit(pair[1])
	if err != nil {
		return 0, err
	}
	return hi<<4 | lo, nil
}

func hexDigit(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("gepard: %q is not a hex digit", string(c))
	}
}

// Common colors, as a convenience for callers that would otherwise spell
// out RGB(...) for frequently used values.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Transparent = RGBA(0, 0, 0, 0)
)
