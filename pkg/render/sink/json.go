package sink

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/canvasballoon/pkg/balloon"
	"github.com/matzehuels/canvasballoon/pkg/canvas"
	"github.com/matzehuels/canvasballoon/pkg/scene"
)

type jsonOutput struct {
	ID         string        `json:"id"`
	Title      string        `json:"title,omitempty"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Background string        `json:"background,omitempty"`
	Surface    string        `json:"surface"`
	Balloons   []jsonBalloon `json:"balloons"`
}

type jsonBalloon struct {
	scene.Spec
	Light  string     `json:"light"`
	Dark   string     `json:"dark"`
	Bounds jsonBounds `json:"bounds"`
	Fills  []jsonFill `json:"fills"`
}

type jsonBounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonFill struct {
	Path  canvas.Path `json:"path"`
	Paint jsonPaint   `json:"paint"`
}

type jsonPaint struct {
	Type  string             `json:"type"`
	Color string             `json:"color,omitempty"`
	Inner []float64          `json:"inner,omitempty"`
	Outer []float64          `json:"outer,omitempty"`
	Stops []canvas.ColorStop `json:"stops,omitempty"`
}

// RenderJSON exports the draw commands each balloon issues. Every balloon
// is recorded on its own surface, so the fills are grouped per balloon.
func RenderJSON(s *scene.Scene) ([]byte, error) {
	id, err := s.ID()
	if err != nil {
		return nil, err
	}
	out := jsonOutput{
		ID:         id.String(),
		Title:      s.Title,
		Width:      s.Width,
		Height:     s.Height,
		Background: s.Background,
		Surface:    s.Surface,
		Balloons:   make([]jsonBalloon, 0, len(s.Balloons)),
	}

	for i, spec := range s.Balloons {
		rec := canvas.NewRecorder()
		b, err := balloon.NewOnContext(rec, spec.X, spec.Y, spec.Radius, spec.Color)
		if err != nil {
			return nil, fmt.Errorf("balloon %d: %w", i+1, err)
		}
		b.Draw()

		box := b.Bounds()
		jb := jsonBalloon{
			Spec:   spec,
			Light:  b.Light.String(),
			Dark:   b.Dark.String(),
			Bounds: jsonBounds{X: box.MinX, Y: box.MinY, Width: box.Width(), Height: box.Height()},
			Fills:  make([]jsonFill, 0, len(rec.Fills)),
		}
		for _, f := range rec.Fills {
			jb.Fills = append(jb.Fills, jsonFill{Path: f.Path, Paint: toJSONPaint(f.Paint)})
		}
		out.Balloons = append(out.Balloons, jb)
	}

	return json.MarshalIndent(out, "", "  ")
}

func toJSONPaint(p canvas.Paint) jsonPaint {
	switch p := p.(type) {
	case *canvas.RadialGradient:
		return jsonPaint{
			Type:  "radialGradient",
			Inner: []float64{p.X0, p.Y0, p.R0},
			Outer: []float64{p.X1, p.Y1, p.R1},
			Stops: p.Stops,
		}
	case canvas.Solid:
		return jsonPaint{Type: "solid", Color: string(p)}
	}
	return jsonPaint{Type: "solid", Color: string(canvas.DefaultFillStyle)}
}
