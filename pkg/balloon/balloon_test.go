package balloon

import (
	"math"
	"testing"

	"github.com/matzehuels/canvasballoon/pkg/canvas"
	"github.com/matzehuels/canvasballoon/pkg/color"
	"github.com/matzehuels/canvasballoon/pkg/errors"
)

const tolerance = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func newRecorded(t *testing.T, cx, cy, r float64, spec string) (*Balloon, *canvas.Recorder) {
	t.Helper()
	rec := canvas.NewRecorder()
	reg, err := canvas.Single("canvas", rec)
	if err != nil {
		t.Fatalf("Single: %v", err)
	}
	b, err := New(reg, "canvas", cx, cy, r, spec)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b, rec
}

func TestKappa(t *testing.T) {
	want := 4 * (math.Sqrt(2) - 1) / 3
	if !near(Kappa, want) {
		t.Errorf("Kappa = %v, want %v", Kappa, want)
	}
	if math.Abs(Kappa-0.5523) > 1e-4 {
		t.Errorf("Kappa = %v, want about 0.5523", Kappa)
	}
}

func TestGeometry(t *testing.T) {
	for _, r := range []float64{1, 50, 60, 80, 123.45} {
		g := ComputeGeometry(DefaultConfig(), 250, r)

		if want := 4 * (math.Sqrt(2) - 1) / 3 * r; !near(g.HandleLength, want) {
			t.Errorf("r=%v: HandleLength = %v, want %v", r, g.HandleLength, want)
		}
		if want := 250 + r + 0.4*r; !near(g.BottomY, want) {
			t.Errorf("r=%v: BottomY = %v, want %v", r, g.BottomY, want)
		}
		if want := r * 0.0333; !near(g.WidthDiff, want) {
			t.Errorf("r=%v: WidthDiff = %v, want %v", r, g.WidthDiff, want)
		}
		if want := r * 0.12 / 2; !near(g.HalfTieWidth, want) {
			t.Errorf("r=%v: HalfTieWidth = %v, want %v", r, g.HalfTieWidth, want)
		}
	}
}

func TestNewDerivesShadingColors(t *testing.T) {
	b, _ := newRecorded(t, 250, 250, 80, "rgb(229,45,45)")

	base := color.MustParse("rgb(229,45,45)")
	if b.Base != base {
		t.Errorf("Base = %v, want %v", b.Base, base)
	}
	if want := base.Lighten(0.3); b.Light != want {
		t.Errorf("Light = %v, want %v", b.Light, want)
	}
	if want := base.Darken(0.3); b.Dark != want {
		t.Errorf("Dark = %v, want %v", b.Dark, want)
	}
}

func TestDrawCommandSequence(t *testing.T) {
	b, rec := newRecorded(t, 250, 250, 80, "rgb(229,45,45)")
	b.Draw()

	h := Kappa * 80
	wd := 80 * 0.0333
	bottom := 250 + 80 + 80*0.4
	halfTie := 80 * 0.12 / 2

	want := []struct {
		op   canvas.Op
		args []float64
	}{
		{canvas.OpBeginPath, nil},
		{canvas.OpMoveTo, []float64{170, 250}},
		{canvas.OpBezierCurveTo, []float64{170, 250 - h - wd, 250 - h, 170, 250, 170}},
		{canvas.OpBezierCurveTo, []float64{250 + h + wd, 170, 330, 250 - h, 330, 250}},
		{canvas.OpBezierCurveTo, []float64{330, 250 + h, 250 + h, bottom, 250, bottom}},
		{canvas.OpBezierCurveTo, []float64{250 - h, bottom, 170, 250 + h, 170, 250}},
		{canvas.OpCreateRadialGradient, []float64{250 + 80.0/3, 250 - 80.0/3, 3, 250, 250, 80 + 80*0.4}},
		{canvas.OpSetFillStyle, nil},
		{canvas.OpFill, nil},
		{canvas.OpBeginPath, nil},
		{canvas.OpMoveTo, []float64{249, bottom}},
		{canvas.OpLineTo, []float64{250 - halfTie, bottom + 8}},
		{canvas.OpQuadraticCurveTo, []float64{250, bottom + 80*0.13, 250 + halfTie, bottom + 8}},
		{canvas.OpLineTo, []float64{251, bottom}},
		{canvas.OpFill, nil},
	}

	if len(rec.Commands) != len(want) {
		t.Fatalf("recorded %d commands, want %d: %v", len(rec.Commands), len(want), rec.Commands)
	}
	for i, w := range want {
		got := rec.Commands[i]
		if got.Op != w.op {
			t.Errorf("command %d op = %s, want %s", i, got.Op, w.op)
			continue
		}
		if len(got.Args) != len(w.args) {
			t.Errorf("command %d (%s) args = %v, want %v", i, got.Op, got.Args, w.args)
			continue
		}
		for j := range w.args {
			if !near(got.Args[j], w.args[j]) {
				t.Errorf("command %d (%s) arg %d = %v, want %v", i, got.Op, j, got.Args[j], w.args[j])
			}
		}
	}
}

func TestDrawPaths(t *testing.T) {
	b, rec := newRecorded(t, 250, 250, 80, "rgb(229,45,45)")
	b.Draw()

	if len(rec.Fills) != 2 {
		t.Fatalf("len(Fills) = %d, want 2", len(rec.Fills))
	}

	body := rec.Fills[0].Path
	if got := body.Count(canvas.OpBezierCurveTo); got != 4 {
		t.Errorf("body beziers = %d, want 4", got)
	}
	if len(body) != 5 {
		t.Errorf("body has %d segments, want 5", len(body))
	}
	if first := body[0]; first.Op != canvas.OpMoveTo || first.Args[0] != 170 || first.Args[1] != 250 {
		t.Errorf("body starts with %v, want moveTo(170, 250)", first)
	}
	if top := body[1].Args[4:]; top[0] != 250 || top[1] != 170 {
		t.Errorf("top pole = %v, want (250, 170)", top)
	}

	tie := rec.Fills[1].Path
	if got := tie.Count(canvas.OpLineTo); got != 2 {
		t.Errorf("tie lines = %d, want 2", got)
	}
	if got := tie.Count(canvas.OpQuadraticCurveTo); got != 1 {
		t.Errorf("tie quadratics = %d, want 1", got)
	}
	if got := tie.Count(canvas.OpBezierCurveTo); got != 0 {
		t.Errorf("tie should not contain beziers, got %d", got)
	}
}

func TestTieSharesBodyGradient(t *testing.T) {
	b, rec := newRecorded(t, 250, 250, 80, "rgb(229,45,45)")
	b.Draw()

	grad, ok := rec.Fills[0].Paint.(*canvas.RadialGradient)
	if !ok {
		t.Fatalf("body paint = %T, want *canvas.RadialGradient", rec.Fills[0].Paint)
	}
	if rec.Fills[1].Paint != canvas.Paint(grad) {
		t.Error("tie should be filled with the body gradient")
	}

	want := []canvas.ColorStop{
		{Offset: 0, Color: b.Light.String()},
		{Offset: 0.7, Color: b.Dark.String()},
	}
	if len(grad.Stops) != len(want) {
		t.Fatalf("Stops = %v, want %v", grad.Stops, want)
	}
	for i := range want {
		if grad.Stops[i] != want[i] {
			t.Errorf("Stops[%d] = %v, want %v", i, grad.Stops[i], want[i])
		}
	}
	if grad.Stops[0].Color != "rgb(237,108,108)" || grad.Stops[1].Color != "rgb(160,31,31)" {
		t.Errorf("unexpected stop colors: %v", grad.Stops)
	}
}

func TestDrawIsIdempotent(t *testing.T) {
	b, rec := newRecorded(t, 400, 400, 60, "rgb(45,137,229)")

	b.Draw()
	first := rec.Commands
	rec.Reset()
	b.Draw()
	second := rec.Commands

	if len(first) != len(second) {
		t.Fatalf("draws differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Op != second[i].Op {
			t.Errorf("command %d: %s vs %s", i, first[i].Op, second[i].Op)
		}
		for j := range first[i].Args {
			if first[i].Args[j] != second[i].Args[j] {
				t.Errorf("command %d arg %d: %v vs %v", i, j, first[i].Args[j], second[i].Args[j])
			}
		}
	}
}

func TestFailedBalloonIsInert(t *testing.T) {
	rec := canvas.NewRecorder()
	reg, err := canvas.Single("canvas", rec)
	if err != nil {
		t.Fatal(err)
	}

	b, err := New(reg, "missing", 250, 250, 80, "rgb(229,45,45)")
	if err == nil {
		t.Fatal("expected an error")
	}
	b.Draw()
	if box := b.Bounds(); box != (Rect{}) {
		t.Errorf("Bounds() on a nil balloon = %+v, want zero", box)
	}
	(&Balloon{Radius: 10}).Draw()
	if len(rec.Commands) != 0 {
		t.Errorf("inert balloons issued %d commands", len(rec.Commands))
	}
}

func TestNewSurfaceUnavailable(t *testing.T) {
	rec := canvas.NewRecorder()
	reg, err := canvas.Single("canvas", rec)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		surfaces canvas.Resolver
		id       string
	}{
		{"unknown id", reg, "missing"},
		{"nil resolver", nil, "canvas"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.surfaces, tt.id, 250, 250, 80, "rgb(229,45,45)")
			if b != nil {
				t.Error("New should not return a balloon on failure")
			}
			if !errors.Is(err, errors.ErrCodeSurfaceUnavailable) {
				t.Errorf("error = %v, want %s", err, errors.ErrCodeSurfaceUnavailable)
			}
		})
	}

	if len(rec.Commands) != 0 {
		t.Errorf("no commands should be issued, got %d", len(rec.Commands))
	}
}

func TestNewOnNilContext(t *testing.T) {
	_, err := NewOnContext(nil, 0, 0, 10, "rgb(0,0,0)")
	if !errors.Is(err, errors.ErrCodeSurfaceUnavailable) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeSurfaceUnavailable)
	}
}

func TestNewInvalidColor(t *testing.T) {
	rec := canvas.NewRecorder()
	b, err := NewOnContext(rec, 250, 250, 80, "rgb(229,45)")
	if b != nil {
		t.Error("New should not return a balloon on failure")
	}
	if !errors.Is(err, errors.ErrCodeInvalidColorFormat) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidColorFormat)
	}
	if len(rec.Commands) != 0 {
		t.Errorf("no commands should be issued, got %d", len(rec.Commands))
	}
}

func TestDegenerateRadiusDoesNotPanic(t *testing.T) {
	for _, r := range []float64{0, -10, math.Inf(1), math.NaN()} {
		b, rec := newRecorded(t, 100, 100, r, "rgb(1,2,3)")
		b.Draw()
		if len(rec.Fills) != 2 {
			t.Errorf("r=%v: len(Fills) = %d, want 2", r, len(rec.Fills))
		}
	}
}

func TestWithConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GradientFactor = 0
	cfg.HeightFactor = 0

	rec := canvas.NewRecorder()
	b, err := NewOnContext(rec, 100, 100, 50, "rgb(10,20,30)", WithConfig(cfg))
	if err != nil {
		t.Fatal(err)
	}
	if b.Light != b.Base || b.Dark != b.Base {
		t.Errorf("zero gradient factor should keep the base color, got light=%v dark=%v", b.Light, b.Dark)
	}
	if got := b.Geometry().BottomY; got != 150 {
		t.Errorf("BottomY = %v, want 150", got)
	}
	if b.Config() != cfg {
		t.Error("Config() should return the configured constants")
	}
}

func TestBounds(t *testing.T) {
	b, _ := newRecorded(t, 250, 250, 80, "rgb(229,45,45)")
	box := b.Bounds()

	want := Rect{MinX: 170, MinY: 170, MaxX: 330, MaxY: 250 + 80 + 80*0.4 + 80*0.13}
	if !near(box.MinX, want.MinX) || !near(box.MinY, want.MinY) ||
		!near(box.MaxX, want.MaxX) || !near(box.MaxY, want.MaxY) {
		t.Errorf("Bounds() = %+v, want %+v", box, want)
	}
	if !near(box.Width(), 160) {
		t.Errorf("Width() = %v, want 160", box.Width())
	}
	if !near(box.Height(), 202.4) {
		t.Errorf("Height() = %v, want 202.4", box.Height())
	}

	frame := Rect{MaxX: 500, MaxY: 500}
	if !frame.Contains(box) {
		t.Error("demo balloon should fit a 500x500 frame")
	}
	if frame.Contains(Rect{MinX: -1, MaxX: 10, MaxY: 10}) {
		t.Error("Contains should reject boxes crossing the frame")
	}
}
