package canvas

import "slices"

// Op names a Context call.
type Op string

// Context operations, named after their HTML canvas counterparts.
const (
	OpBeginPath            Op = "beginPath"
	OpMoveTo               Op = "moveTo"
	OpLineTo               Op = "lineTo"
	OpBezierCurveTo        Op = "bezierCurveTo"
	OpQuadraticCurveTo     Op = "quadraticCurveTo"
	OpFill                 Op = "fill"
	OpCreateRadialGradient Op = "createRadialGradient"
	OpSetFillStyle         Op = "setFillStyle"
)

// Segment is one path-construction command with its coordinates.
type Segment struct {
	Op   Op        `json:"op"`
	Args []float64 `json:"args"`
}

// Path is the sequence of segments added since the last BeginPath.
type Path []Segment

// Count returns how many segments of the given kind the path holds.
func (p Path) Count(op Op) int {
	n := 0
	for _, s := range p {
		if s.Op == op {
			n++
		}
	}
	return n
}

// PathBuilder tracks the current path and fill style. Backends embed it and
// add the Fill behaviour that is specific to them.
type PathBuilder struct {
	path Path
	fill Paint
}

func (b *PathBuilder) BeginPath() { b.path = nil }

func (b *PathBuilder) MoveTo(x, y float64) { b.add(OpMoveTo, x, y) }

func (b *PathBuilder) LineTo(x, y float64) { b.add(OpLineTo, x, y) }

func (b *PathBuilder) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	b.add(OpBezierCurveTo, cp1x, cp1y, cp2x, cp2y, x, y)
}

func (b *PathBuilder) QuadraticCurveTo(cpx, cpy, x, y float64) {
	b.add(OpQuadraticCurveTo, cpx, cpy, x, y)
}

func (b *PathBuilder) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) *RadialGradient {
	return NewRadialGradient(x0, y0, r0, x1, y1, r1)
}

func (b *PathBuilder) SetFillStyle(p Paint) { b.fill = p }

// FillStyle returns the current fill style, or DefaultFillStyle if none was set.
func (b *PathBuilder) FillStyle() Paint {
	if b.fill == nil {
		return DefaultFillStyle
	}
	return b.fill
}

// CurrentPath returns a copy of the current path.
func (b *PathBuilder) CurrentPath() Path {
	return slices.Clone(b.path)
}

func (b *PathBuilder) add(op Op, args ...float64) {
	b.path = append(b.path, Segment{Op: op, Args: args})
}
