// Package color implements the RGB color value used to shade balloons.
//
// A [Color] holds three integer channels in [0,255]. Shading colors are
// derived from a base color with [Color.Lighten] and [Color.Darken], which
// move every channel a fraction of the way toward white or black. Both
// return new values; a Color is never mutated.
//
// Colors are parsed from CSS-style "rgb(r,g,b)" strings or hex strings:
//
//	base, err := color.Parse("rgb(229, 45, 45)")
//	light := base.Lighten(0.3) // rgb(237,108,108)
//	dark := base.Darken(0.3)   // rgb(160,31,31)
//
// Lighten and darken are not inverses of one another: rounding and clamping
// lose information, so base.Darken(f).Lighten(f) is generally not base.
package color

import (
	"fmt"
	stdcolor "image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/canvasballoon/pkg/errors"
)

// Color is an opaque RGB color with integer channels in [0,255].
// It implements image/color.Color so it can be handed to raster backends.
// Channels of a struct literal outside [0,255] are clamped wherever the
// color is read.
type Color struct {
	R, G, B int
}

// New creates a Color, clamping each channel to [0,255].
func New(r, g, b int) Color {
	return Color{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// FromColor converts any image/color.Color, discarding alpha.
func FromColor(c stdcolor.Color) Color {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return Color{R: int(n.R), G: int(n.G), B: int(n.B)}
}

// Parse parses a color specification.
//
// Accepted forms are "rgb(r,g,b)" with numeric channels (whitespace allowed,
// fractional values rounded, out-of-range values clamped) and "#rrggbb" or
// "#rgb" hex. Anything else, including a channel count other than three,
// fails with [errors.ErrCodeInvalidColorFormat].
func Parse(spec string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(spec))

	if strings.HasPrefix(s, "#") {
		if len(s) != 4 && len(s) != 7 {
			return Color{}, errors.New(errors.ErrCodeInvalidColorFormat, "cannot parse %q: hex colors need 3 or 6 digits", spec)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, errors.Wrap(errors.ErrCodeInvalidColorFormat, err, "cannot parse %q", spec)
		}
		r, g, b := c.RGB255()
		return Color{R: int(r), G: int(g), B: int(b)}, nil
	}

	body, ok := strings.CutPrefix(s, "rgb(")
	if !ok {
		return Color{}, errors.New(errors.ErrCodeInvalidColorFormat, "cannot parse %q: expected rgb(r,g,b) or #rrggbb", spec)
	}
	body, ok = strings.CutSuffix(body, ")")
	if !ok {
		return Color{}, errors.New(errors.ErrCodeInvalidColorFormat, "cannot parse %q: missing closing parenthesis", spec)
	}

	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return Color{}, errors.New(errors.ErrCodeInvalidColorFormat, "cannot parse %q: want 3 channels, got %d", spec, len(parts))
	}

	var ch [3]int
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Color{}, errors.New(errors.ErrCodeInvalidColorFormat, "cannot parse %q: channel %d is not a number", spec, i+1)
		}
		ch[i] = roundChannel(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(spec string) Color {
	c, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return c
}

// Lighten moves every channel toward 255 by factor of the remaining distance:
// c' = c + (255 - c) * factor. The factor is clamped to [0,1].
func (c Color) Lighten(factor float64) Color {
	c, f := c.clamped(), clampFactor(factor)
	lighten := func(v int) int {
		return roundChannel(float64(v) + float64(255-v)*f)
	}
	return Color{R: lighten(c.R), G: lighten(c.G), B: lighten(c.B)}
}

// Darken moves every channel toward 0: c' = c * (1 - factor).
// The factor is clamped to [0,1].
func (c Color) Darken(factor float64) Color {
	c, f := c.clamped(), clampFactor(factor)
	darken := func(v int) int {
		return roundChannel(float64(v) * (1 - f))
	}
	return Color{R: darken(c.R), G: darken(c.G), B: darken(c.B)}
}

// String renders the color as "rgb(R,G,B)".
func (c Color) String() string {
	c = c.clamped()
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Hex renders the color as "#rrggbb".
func (c Color) Hex() string {
	c = c.clamped()
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// RGBA implements image/color.Color. The color is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	c = c.clamped()
	return stdcolor.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 0xff}.RGBA()
}

func (c Color) clamped() Color {
	return New(c.R, c.G, c.B)
}

func roundChannel(v float64) int {
	return int(math.Round(min(max(v, 0), 255)))
}

func clampChannel(v int) int {
	return min(max(v, 0), 255)
}

func clampFactor(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return min(max(f, 0), 1)
}
