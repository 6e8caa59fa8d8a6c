package gear

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/soypat/gear/anim"
	"golang.org/x/image/colornames"
)

// Paint is a non-premultiplied RGBA color shared by the stroke and fill of
// generated primitives. It implements color.Color.
type Paint struct {
	R, G, B, A uint8
}

// White is the default gear color.
var White = Paint{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// RGBA implements color.Color.
func (p Paint) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

// Hex returns the color as #rrggbb, or #rrggbbaa when not opaque.
func (p Paint) Hex() string {
	if p.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", p.R, p.G, p.B, p.A)
}

func (p Paint) String() string { return p.Hex() }

// PaintOf converts any color.Color to a Paint.
func PaintOf(c color.Color) Paint {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Paint{R: n.R, G: n.G, B: n.B, A: n.A}
}

// ParsePaint parses #rgb, #rrggbb, #rrggbbaa or an SVG color keyword such
// as "white" or "steelblue".
func ParsePaint(s string) (Paint, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return Paint{}, fmt.Errorf("gear: unknown color name %q", s)
		}
		return PaintOf(c), nil
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Paint{}, fmt.Errorf("gear: bad hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Paint{}, fmt.Errorf("gear: bad hex color %q: %w", s, err)
	}
	return Paint{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func mixPaint(a, b Paint, t float64) Paint {
	ch := func(x, y uint8) uint8 {
		return uint8(anim.MixInt(int(x), int(y), t))
	}
	return Paint{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}
