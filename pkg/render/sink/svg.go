package sink

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/canvasballoon/pkg/canvas"
	"github.com/matzehuels/canvasballoon/pkg/color"
	"github.com/matzehuels/canvasballoon/pkg/scene"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	prefix string
}

// WithIDPrefix sets the prefix of generated element ids (default "balloons").
// Use distinct prefixes when several documents are inlined into one page.
func WithIDPrefix(p string) SVGOption { return func(r *svgRenderer) { r.prefix = p } }

// RenderSVG renders the scene as an SVG document.
func RenderSVG(s *scene.Scene, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{prefix: "balloons"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	doc := svg.New(&buf)
	doc.Startview(s.Width, s.Height, 0, 0, s.Width, s.Height)
	if s.Title != "" {
		doc.Title(s.Title)
	}
	if s.Background != "" {
		doc.Rect(0, 0, s.Width, s.Height, fmt.Sprintf(`fill="%s"`, svgColor(s.Background)))
	}

	surface := newSVGSurface(doc, r.prefix)
	surfaces, err := canvas.Single(s.Surface, surface)
	if err != nil {
		return nil, err
	}
	if err := s.Draw(surfaces); err != nil {
		return nil, err
	}

	doc.End()
	return buf.Bytes(), nil
}

// svgSurface is a canvas.Context that writes each fill as an SVG path.
// Gradients are emitted on first use, so stops added after the first fill
// with a gradient do not appear in the document.
type svgSurface struct {
	canvas.PathBuilder
	doc       *svg.SVG
	prefix    string
	gradients map[*canvas.RadialGradient]string
}

func newSVGSurface(doc *svg.SVG, prefix string) *svgSurface {
	return &svgSurface{
		doc:       doc,
		prefix:    prefix,
		gradients: make(map[*canvas.RadialGradient]string),
	}
}

func (s *svgSurface) Fill() {
	path := s.CurrentPath()
	if len(path) == 0 {
		return
	}
	fill := s.paint(s.FillStyle())
	s.doc.Path(pathData(path), fmt.Sprintf(`fill="%s"`, fill))
}

func (s *svgSurface) paint(p canvas.Paint) string {
	switch p := p.(type) {
	case *canvas.RadialGradient:
		id, ok := s.gradients[p]
		if !ok {
			id = fmt.Sprintf("%s-gradient-%d", s.prefix, len(s.gradients))
			s.gradients[p] = id
			s.writeGradient(id, p)
		}
		return "url(#" + id + ")"
	case canvas.Solid:
		return svgColor(string(p))
	}
	return svgColor(string(canvas.DefaultFillStyle))
}

func (s *svgSurface) writeGradient(id string, g *canvas.RadialGradient) {
	w := s.doc.Writer
	s.doc.Def()
	fmt.Fprintf(w, `<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s" fx="%s" fy="%s" fr="%s">`+"\n",
		id, num(g.X1), num(g.Y1), num(max(g.R1, 0)), num(g.X0), num(g.Y0), num(max(g.R0, 0)))
	for _, stop := range g.Stops {
		fmt.Fprintf(w, `<stop offset="%s" stop-color="%s"/>`+"\n", num(stop.Offset), svgColor(stop.Color))
	}
	fmt.Fprintf(w, "</radialGradient>\n")
	s.doc.DefEnd()
}

var _ canvas.Context = (*svgSurface)(nil)

// pathData converts a path into SVG path data.
func pathData(p canvas.Path) string {
	var b strings.Builder
	for _, seg := range p {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch seg.Op {
		case canvas.OpMoveTo:
			b.WriteByte('M')
		case canvas.OpLineTo:
			b.WriteByte('L')
		case canvas.OpBezierCurveTo:
			b.WriteByte('C')
		case canvas.OpQuadraticCurveTo:
			b.WriteByte('Q')
		default:
			continue
		}
		for i, v := range seg.Args {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(num(v))
		}
	}
	return b.String()
}

// num formats a coordinate with at most three decimals.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// svgColor normalizes a color string to rgb(r,g,b). Unparseable colors fall
// back to black.
func svgColor(spec string) string {
	c, err := color.Parse(spec)
	if err != nil {
		return color.Color{}.String()
	}
	return c.String()
}
