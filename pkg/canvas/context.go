package canvas

import (
	"cmp"
	"slices"
)

// Context is the drawing-surface contract.
//
// Commands take effect immediately and in call order. Fill fills the current
// path with the current fill style using the nonzero winding rule and leaves
// the path in place; BeginPath discards it.
type Context interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// BezierCurveTo adds a cubic bezier from the current point through two
	// control points to (x, y).
	BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64)
	// QuadraticCurveTo adds a quadratic bezier through one control point.
	QuadraticCurveTo(cpx, cpy, x, y float64)
	Fill()
	// CreateRadialGradient returns a gradient between the inner circle
	// (x0, y0, r0) and the outer circle (x1, y1, r1).
	CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) *RadialGradient
	SetFillStyle(p Paint)
}

// Paint is a fill style: a *RadialGradient or a Solid.
type Paint interface {
	isPaint()
}

// Solid is a flat color, given as a color string such as "rgb(0,0,0)".
type Solid string

func (Solid) isPaint() {}

// DefaultFillStyle is used until a context's fill style is set.
const DefaultFillStyle = Solid("rgb(0,0,0)")

// ColorStop is a single gradient stop.
type ColorStop struct {
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
}

// RadialGradient is a two-circle radial gradient. Offset 0 lies on the
// inner circle and offset 1 on the outer circle; beyond the last stop the
// last color is extended.
type RadialGradient struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []ColorStop
}

// NewRadialGradient creates a gradient with no stops. Backends use it to
// implement Context.CreateRadialGradient.
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) *RadialGradient {
	return &RadialGradient{X0: x0, Y0: y0, R0: r0, X1: x1, Y1: y1, R1: r1}
}

// AddColorStop adds a stop at offset (clamped to [0,1]). Stops are kept
// sorted by offset; stops at equal offsets keep insertion order.
func (g *RadialGradient) AddColorStop(offset float64, color string) {
	offset = min(max(offset, 0), 1)
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: color})
	slices.SortStableFunc(g.Stops, func(a, b ColorStop) int {
		return cmp.Compare(a.Offset, b.Offset)
	})
}

func (*RadialGradient) isPaint() {}
