package balloon

import (
	"math"

	"github.com/matzehuels/canvasballoon/pkg/canvas"
	"github.com/matzehuels/canvasballoon/pkg/color"
	"github.com/matzehuels/canvasballoon/pkg/errors"
)

// Balloon renders one balloon onto a drawing context. It is immutable after
// construction.
type Balloon struct {
	CenterX, CenterY float64
	Radius           float64

	Base  color.Color
	Light color.Color
	Dark  color.Color

	cfg Config
	ctx canvas.Context
}

// Option configures a Balloon.
type Option func(*Balloon)

// WithConfig replaces the default shape and shading constants.
func WithConfig(cfg Config) Option {
	return func(b *Balloon) { b.cfg = cfg }
}

// New resolves surfaceID and creates a balloon centered at (cx, cy).
//
// It fails with errors.ErrCodeSurfaceUnavailable if the surface cannot be
// resolved and with errors.ErrCodeInvalidColorFormat if colorSpec cannot be
// parsed. On failure the returned *Balloon is nil; Draw on it does nothing.
func New(surfaces canvas.Resolver, surfaceID string, cx, cy, r float64, colorSpec string, opts ...Option) (*Balloon, error) {
	if surfaces == nil {
		return nil, errors.New(errors.ErrCodeSurfaceUnavailable, "no surfaces to resolve %q from", surfaceID)
	}
	ctx, err := surfaces.Resolve(surfaceID)
	if err != nil {
		return nil, err
	}
	return NewOnContext(ctx, cx, cy, r, colorSpec, opts...)
}

// NewOnContext creates a balloon on an already resolved context.
// A nil context fails with errors.ErrCodeSurfaceUnavailable.
func NewOnContext(ctx canvas.Context, cx, cy, r float64, colorSpec string, opts ...Option) (*Balloon, error) {
	if ctx == nil {
		return nil, errors.New(errors.ErrCodeSurfaceUnavailable, "surface has no drawing context")
	}
	base, err := color.Parse(colorSpec)
	if err != nil {
		return nil, err
	}

	b := &Balloon{
		CenterX: cx,
		CenterY: cy,
		Radius:  r,
		Base:    base,
		cfg:     DefaultConfig(),
		ctx:     ctx,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.Dark = base.Darken(b.cfg.GradientFactor)
	b.Light = base.Lighten(b.cfg.GradientFactor)
	return b, nil
}

// Config returns the constants the balloon was built with.
func (b *Balloon) Config() Config { return b.cfg }

// Geometry returns the derived geometry Draw uses.
func (b *Balloon) Geometry() Geometry {
	return ComputeGeometry(b.cfg, b.CenterY, b.Radius)
}

// Draw issues the body path, its gradient fill and the tie path. A nil
// Balloon, or one without a context, draws nothing.
func (b *Balloon) Draw() {
	if b == nil || b.ctx == nil {
		return
	}
	g := b.Geometry()
	b.drawBody(g)
	b.drawTie(g)
}

func (b *Balloon) drawBody(g Geometry) {
	ctx := b.ctx
	cx, cy, r := b.CenterX, b.CenterY, b.Radius
	h := g.HandleLength

	ctx.BeginPath()

	// Top left: left pole to top pole.
	startX, startY := cx-r, cy
	endX, endY := cx, cy-r
	ctx.MoveTo(startX, startY)
	ctx.BezierCurveTo(startX, startY-h-g.WidthDiff, endX-h, endY, endX, endY)

	// Top right: top pole to right pole.
	startX, startY = cx, cy-r
	endX, endY = cx+r, cy
	ctx.BezierCurveTo(startX+h+g.WidthDiff, startY, endX, endY-h, endX, endY)

	// Bottom right: right pole to the lowered bottom pole.
	startX, startY = cx+r, cy
	endX, endY = cx, g.BottomY
	ctx.BezierCurveTo(startX, startY+h, endX+h, endY, endX, endY)

	// Bottom left: bottom pole back to the left pole.
	startX, startY = cx, g.BottomY
	endX, endY = cx-r, cy
	ctx.BezierCurveTo(startX-h, startY, endX, endY+h, endX, endY)

	offset := r / 3
	grad := ctx.CreateRadialGradient(cx+offset, cy-offset, b.cfg.GradientCircleRadius,
		cx, cy, r+g.HeightDiff)
	grad.AddColorStop(0, b.Light.String())
	grad.AddColorStop(b.cfg.GradientStop, b.Dark.String())

	ctx.SetFillStyle(grad)
	ctx.Fill()
}

// drawTie fills the knot with whatever fill style the body left set.
func (b *Balloon) drawTie(g Geometry) {
	ctx := b.ctx
	cx := b.CenterX

	ctx.BeginPath()
	ctx.MoveTo(cx-1, g.BottomY)
	ctx.LineTo(cx-g.HalfTieWidth, g.BottomY+g.TieHeight)
	ctx.QuadraticCurveTo(cx, g.BottomY+g.TieCurveHeight, cx+g.HalfTieWidth, g.BottomY+g.TieHeight)
	ctx.LineTo(cx+1, g.BottomY)
	ctx.Fill()
}

// Bounds returns the box spanned by every point and control point Draw
// emits. Bezier curves lie inside the hull of their control points, so the
// box covers the body and the tie.
func (b *Balloon) Bounds() Rect {
	if b == nil {
		return Rect{}
	}
	rec := canvas.NewRecorder()
	shadow := *b
	shadow.ctx = rec
	shadow.Draw()

	box := Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, f := range rec.Fills {
		for _, seg := range f.Path {
			for i := 0; i+1 < len(seg.Args); i += 2 {
				x, y := seg.Args[i], seg.Args[i+1]
				box.MinX, box.MaxX = min(box.MinX, x), max(box.MaxX, x)
				box.MinY, box.MaxY = min(box.MinY, y), max(box.MaxY, y)
			}
		}
	}
	return box
}
