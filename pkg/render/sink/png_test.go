package sink

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/matzehuels/canvasballoon/pkg/scene"
)

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	return img
}

func TestRenderPNGDemo(t *testing.T) {
	data, err := RenderPNG(scene.Demo())
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img := decodePNG(t, data)

	if b := img.Bounds(); b.Dx() != 500 || b.Dy() != 500 {
		t.Fatalf("size = %dx%d, want 500x500", b.Dx(), b.Dy())
	}

	// Outside every balloon the canvas stays transparent.
	if _, _, _, a := img.At(5, 5).RGBA(); a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}

	// The center of the red balloon is opaque and red.
	r, g, b, a := img.At(250, 250).RGBA()
	if a != 0xffff {
		t.Errorf("center alpha = %d, want opaque", a)
	}
	if r <= g || r <= b {
		t.Errorf("center color = (%d,%d,%d), want red dominant", r>>8, g>>8, b>>8)
	}

	// The tie hangs below the bottom pole at y = 362.
	if _, _, _, a := img.At(250, 366).RGBA(); a == 0 {
		t.Error("tie should be painted below the bottom pole")
	}
}

func TestRenderPNGScale(t *testing.T) {
	data, err := RenderPNG(scene.Demo(), WithScale(2))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img := decodePNG(t, data)
	if b := img.Bounds(); b.Dx() != 1000 || b.Dy() != 1000 {
		t.Fatalf("size = %dx%d, want 1000x1000", b.Dx(), b.Dy())
	}
	if r, g, _, a := img.At(500, 500).RGBA(); a != 0xffff || r <= g {
		t.Error("scaled balloon should cover the scaled center")
	}
}

func TestRenderPNGBackground(t *testing.T) {
	s := scene.Demo()
	s.Background = "rgb(10,20,30)"

	data, err := RenderPNG(s)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	r, g, b, a := decodePNG(t, data).At(5, 5).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 || a != 0xffff {
		t.Errorf("background = (%d,%d,%d,%d), want (10,20,30,255)", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestRenderPNGInvalidScale(t *testing.T) {
	for _, scale := range []float64{0, -1, 1e6} {
		if _, err := RenderPNG(scene.Demo(), WithScale(scale)); err == nil {
			t.Errorf("RenderPNG(scale=%v) should fail", scale)
		}
	}
}
