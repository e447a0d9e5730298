package sink

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/canvasballoon/pkg/scene"
)

func TestRenderJSON(t *testing.T) {
	s := scene.Demo()
	data, err := RenderJSON(s)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var out struct {
		ID       string `json:"id"`
		Width    int    `json:"width"`
		Surface  string `json:"surface"`
		Balloons []struct {
			X     float64 `json:"x"`
			Color string  `json:"color"`
			Light string  `json:"light"`
			Dark  string  `json:"dark"`
			Fills []struct {
				Path []struct {
					Op   string    `json:"op"`
					Args []float64 `json:"args"`
				} `json:"path"`
				Paint struct {
					Type  string    `json:"type"`
					Inner []float64 `json:"inner"`
					Stops []struct {
						Offset float64 `json:"offset"`
						Color  string  `json:"color"`
					} `json:"stops"`
				} `json:"paint"`
			} `json:"fills"`
		} `json:"balloons"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if id, _ := s.ID(); out.ID != id.String() {
		t.Errorf("id = %q, want %q", out.ID, id)
	}
	if out.Width != 500 || out.Surface != "canvas" {
		t.Errorf("header = %d %q", out.Width, out.Surface)
	}
	if len(out.Balloons) != 4 {
		t.Fatalf("balloons = %d, want 4", len(out.Balloons))
	}

	first := out.Balloons[0]
	if first.Color != "rgb(229,45,45)" || first.Light != "rgb(237,108,108)" || first.Dark != "rgb(160,31,31)" {
		t.Errorf("colors = %s %s %s", first.Color, first.Light, first.Dark)
	}
	if len(first.Fills) != 2 {
		t.Fatalf("fills = %d, want 2", len(first.Fills))
	}
	body := first.Fills[0]
	if body.Path[0].Op != "moveTo" || body.Path[0].Args[0] != 170 || body.Path[0].Args[1] != 250 {
		t.Errorf("body starts with %+v", body.Path[0])
	}
	if len(body.Path) != 5 {
		t.Errorf("body segments = %d, want 5", len(body.Path))
	}
	if body.Paint.Type != "radialGradient" || len(body.Paint.Stops) != 2 || body.Paint.Inner[2] != 3 {
		t.Errorf("body paint = %+v", body.Paint)
	}
	if tie := first.Fills[1]; tie.Paint.Type != "radialGradient" || len(tie.Path) != 4 {
		t.Errorf("tie = %+v", tie)
	}
}
