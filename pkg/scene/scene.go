// Package scene describes a canvas full of balloons and draws it.
//
// A [Scene] is the replacement for a page-load bootstrap: it names the
// drawing surface, gives the canvas size and lists the balloons to draw in
// paint order. [Scene.Draw] is the explicit entry point a host calls once
// its surface is available.
//
// Scenes are stored as TOML:
//
//	title = "Balloons"
//	width = 500
//	height = 500
//	surface = "canvas"
//
//	[[balloon]]
//	x = 250
//	y = 250
//	radius = 80
//	color = "rgb(229,45,45)"
package scene

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/matzehuels/canvasballoon/pkg/balloon"
	"github.com/matzehuels/canvasballoon/pkg/canvas"
	"github.com/matzehuels/canvasballoon/pkg/color"
	"github.com/matzehuels/canvasballoon/pkg/errors"
)

const (
	// DefaultSurface is the surface identifier used when a scene names none.
	DefaultSurface = "canvas"

	// DefaultSize is the canvas width and height used when a scene gives none.
	DefaultSize = 500

	// MaxSize bounds the canvas dimensions accepted from scene files.
	MaxSize = 8192
)

// namespace scopes scene IDs.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/canvasballoon/scene"))

// Spec places one balloon.
type Spec struct {
	X      float64 `toml:"x" json:"x"`
	Y      float64 `toml:"y" json:"y"`
	Radius float64 `toml:"radius" json:"radius"`
	Color  string  `toml:"color" json:"color"`
}

// Scene is a canvas and the balloons drawn on it.
type Scene struct {
	Title      string `toml:"title,omitempty" json:"title,omitempty"`
	Width      int    `toml:"width" json:"width"`
	Height     int    `toml:"height" json:"height"`
	Background string `toml:"background,omitempty" json:"background,omitempty"`
	Surface    string `toml:"surface" json:"surface"`
	Balloons   []Spec `toml:"balloon" json:"balloons"`
}

// Demo returns the built-in scene of four balloons.
func Demo() *Scene {
	return &Scene{
		Title:   "Balloons",
		Width:   DefaultSize,
		Height:  DefaultSize,
		Surface: DefaultSurface,
		Balloons: []Spec{
			{X: 250, Y: 250, Radius: 80, Color: "rgb(229,45,45)"},
			{X: 400, Y: 400, Radius: 60, Color: "rgb(45,137,229)"},
			{X: 120, Y: 340, Radius: 50, Color: "rgb(113,229,45)"},
			{X: 420, Y: 120, Radius: 50, Color: "rgb(174,0,255)"},
		},
	}
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return Parse(data)
}

// Parse decodes a TOML scene, applies defaults and validates it.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode scene")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidScene, "unknown scene key %q", undecoded[0].String())
	}
	s.SetDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// SetDefaults fills in the canvas size and surface identifier if unset.
func (s *Scene) SetDefaults() {
	if s.Width == 0 {
		s.Width = DefaultSize
	}
	if s.Height == 0 {
		s.Height = DefaultSize
	}
	if s.Surface == "" {
		s.Surface = DefaultSurface
	}
}

// Validate checks the scene for values the renderer would accept but that
// are almost certainly mistakes, such as a non-positive radius.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 || s.Width > MaxSize || s.Height > MaxSize {
		return errors.New(errors.ErrCodeInvalidScene, "canvas size %dx%d out of range (1..%d)", s.Width, s.Height, MaxSize)
	}
	if err := errors.ValidateSurfaceID(s.Surface); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidScene, err, "surface")
	}
	if s.Background != "" {
		if _, err := color.Parse(s.Background); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "background")
		}
	}
	for i, b := range s.Balloons {
		if !finite(b.X) || !finite(b.Y) {
			return errors.New(errors.ErrCodeInvalidScene, "balloon %d: center must be finite", i+1)
		}
		if !finite(b.Radius) || b.Radius <= 0 {
			return errors.New(errors.ErrCodeInvalidScene, "balloon %d: radius must be positive, got %v", i+1, b.Radius)
		}
		if _, err := color.Parse(b.Color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "balloon %d", i+1)
		}
	}
	return nil
}

// Draw constructs every balloon on the scene's surface and draws it, in
// declaration order. It stops at the first balloon that cannot be built.
func (s *Scene) Draw(surfaces canvas.Resolver) error {
	for i, spec := range s.Balloons {
		b, err := balloon.New(surfaces, s.Surface, spec.X, spec.Y, spec.Radius, spec.Color)
		if err != nil {
			return fmt.Errorf("balloon %d: %w", i+1, err)
		}
		b.Draw()
	}
	return nil
}

// OutOfFrame returns the indices of balloons that extend past the canvas.
func (s *Scene) OutOfFrame() []int {
	frame := balloon.Rect{MaxX: float64(s.Width), MaxY: float64(s.Height)}
	var out []int
	for i, spec := range s.Balloons {
		b, err := balloon.NewOnContext(canvas.NewRecorder(), spec.X, spec.Y, spec.Radius, spec.Color)
		if err != nil {
			continue
		}
		if !frame.Contains(b.Bounds()) {
			out = append(out, i)
		}
	}
	return out
}

// Encode writes the scene as TOML.
func (s *Scene) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return nil, fmt.Errorf("encode scene: %w", err)
	}
	return buf.Bytes(), nil
}

// ID returns a deterministic identifier derived from the scene's TOML
// encoding. Equal scenes share an ID, which makes it usable as a cache key.
func (s *Scene) ID() (uuid.UUID, error) {
	data, err := s.Encode()
	if err != nil {
		return uuid.Nil, fmt.Errorf("scene id: %w", err)
	}
	return uuid.NewSHA1(namespace, data), nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
