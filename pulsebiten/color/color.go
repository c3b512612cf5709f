package color

import (
	"fmt"
	"strconv"
	"strings"
)

var White = RGB(1, 1, 1)
var Black = RGB(0, 0, 0)
var Transparent = RGBA(0, 0, 0, 0)

// Color is a straight alpha color. Components are in the range [0, 1].
// Color implements image/color.Color.
type Color struct {
	R, G, B, A float32
}

func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func RGB(r, g, b float32) Color {
	return RGBA(r, g, b, 1.0)
}

func Gray(g float32) Color {
	return RGB(g, g, g)
}

// Hex parses colors in the form #rgb, #rrggbb or #rrggbbaa.
func Hex(value string) (Color, error) {
	digits := strings.TrimPrefix(value, "#")

	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}

	if len(digits) == 6 {
		digits += "ff"
	}

	if len(digits) != 8 {
		return Color{}, fmt.Errorf("invalid color %q", value)
	}

	packed, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", value, err)
	}

	channel := func(shift int) float32 {
		return float32((packed>>shift)&0xff) / 255
	}

	return RGBA(channel(24), channel(16), channel(8), channel(0)), nil
}

// UnmarshalText parses a color using Hex. This allows colors in config files.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Hex(string(text))
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Lerp interpolates between c and other. The alpha channel is interpolated too.
func (c Color) Lerp(other Color, f float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*f,
		G: c.G + (other.G-c.G)*f,
		B: c.B + (other.B-c.B)*f,
		A: c.A + (other.A-c.A)*f,
	}
}

// RGBA returns alpha pre-multiplied 16 bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	const maxValue = 0xffff

	r = uint32(clamp(c.R*c.A*maxValue, 0, maxValue))
	g = uint32(clamp(c.G*c.A*maxValue, 0, maxValue))
	b = uint32(clamp(c.B*c.A*maxValue, 0, maxValue))
	a = uint32(clamp(c.A*maxValue, 0, maxValue))

	return
}

func clamp(value, lo, hi float32) float32 {
	return max(lo, min(hi, value))
}
