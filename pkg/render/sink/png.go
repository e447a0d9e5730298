package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/canvasballoon/pkg/canvas"
	"github.com/matzehuels/canvasballoon/pkg/color"
	"github.com/matzehuels/canvasballoon/pkg/errors"
	"github.com/matzehuels/canvasballoon/pkg/scene"
)

// maxPixels caps the raster size after scaling.
const maxPixels = 64 << 20

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the PNG scale factor (default 1.0). A scale of 2 produces
// an image twice as wide and high as the scene.
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the scene to PNG.
func RenderPNG(s *scene.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1.0}
	for _, opt := range opts {
		opt(&r)
	}
	if !(r.scale > 0) || math.IsInf(r.scale, 0) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid PNG scale %v", r.scale)
	}

	w := int(math.Ceil(float64(s.Width) * r.scale))
	h := int(math.Ceil(float64(s.Height) * r.scale))
	if w <= 0 || h <= 0 || w*h > maxPixels {
		return nil, errors.New(errors.ErrCodeInvalidInput, "PNG size %dx%d out of range", w, h)
	}

	dc := gg.NewContext(w, h)
	if s.Background != "" {
		bg, err := color.Parse(s.Background)
		if err != nil {
			return nil, err
		}
		dc.SetColor(bg)
		dc.Clear()
	}

	surface := newRasterSurface(dc, r.scale)
	surfaces, err := canvas.Single(s.Surface, surface)
	if err != nil {
		return nil, err
	}
	if err := s.Draw(surfaces); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// rasterSurface is a canvas.Context backed by a gg drawing context.
//
// gg evaluates fill patterns in device space, so every coordinate is scaled
// here rather than through the gg transform; otherwise gradients would not
// line up with the scaled paths.
type rasterSurface struct {
	dc    *gg.Context
	scale float64
	fill  canvas.Paint
}

func newRasterSurface(dc *gg.Context, scale float64) *rasterSurface {
	return &rasterSurface{dc: dc, scale: scale, fill: canvas.DefaultFillStyle}
}

func (s *rasterSurface) BeginPath() { s.dc.ClearPath() }

func (s *rasterSurface) MoveTo(x, y float64) { s.dc.MoveTo(s.pt(x), s.pt(y)) }

func (s *rasterSurface) LineTo(x, y float64) { s.dc.LineTo(s.pt(x), s.pt(y)) }

func (s *rasterSurface) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	s.dc.CubicTo(s.pt(cp1x), s.pt(cp1y), s.pt(cp2x), s.pt(cp2y), s.pt(x), s.pt(y))
}

func (s *rasterSurface) QuadraticCurveTo(cpx, cpy, x, y float64) {
	s.dc.QuadraticTo(s.pt(cpx), s.pt(cpy), s.pt(x), s.pt(y))
}

func (s *rasterSurface) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) *canvas.RadialGradient {
	return canvas.NewRadialGradient(x0, y0, r0, x1, y1, r1)
}

func (s *rasterSurface) SetFillStyle(p canvas.Paint) {
	if p != nil {
		s.fill = p
	}
}

func (s *rasterSurface) Fill() {
	switch p := s.fill.(type) {
	case *canvas.RadialGradient:
		g := gg.NewRadialGradient(
			s.pt(p.X0), s.pt(p.Y0), s.pt(max(p.R0, 0)),
			s.pt(p.X1), s.pt(p.Y1), s.pt(max(p.R1, 0)))
		for _, stop := range p.Stops {
			c, err := color.Parse(stop.Color)
			if err != nil {
				continue
			}
			g.AddColorStop(stop.Offset, c)
		}
		s.dc.SetFillStyle(g)
	case canvas.Solid:
		c, err := color.Parse(string(p))
		if err != nil {
			c = color.Color{}
		}
		s.dc.SetColor(c)
	}
	s.dc.FillPreserve()
}

func (s *rasterSurface) pt(v float64) float64 { return v * s.scale }

var _ canvas.Context = (*rasterSurface)(nil)
