// Package pkg holds the libraries behind canvasballoon.
//
// # Overview
//
// A balloon is four cubic bezier curves closed into an egg shape, filled
// with a radial gradient whose bright spot sits up and to the right of the
// center, plus a small knot drawn with the same gradient. The pkg directory
// is organized by concern:
//
//  1. [color] - rgb() and hex parsing, lightening and darkening
//  2. [canvas] - the drawing surface contract, surface registry, recorder
//  3. [balloon] - the balloon shape and its shading
//  4. [scene] - TOML scenes of several balloons and the demo scene
//  5. [render/sink] - SVG, PNG, PDF, and JSON output
//  6. [pipeline] - cached, observable rendering shared by the CLI and server
//
// # Data Flow
//
//	scene.toml / scene.Demo()
//	         ↓
//	    [scene] package (validate, resolve the surface)
//	         ↓
//	    [balloon] package (issue path and gradient calls)
//	         ↓
//	    [render/sink] package (surface implementation per format)
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/canvasballoon/pkg/canvas"
//	    "github.com/matzehuels/canvasballoon/pkg/balloon"
//	)
//
//	rec := canvas.NewRecorder()
//	surfaces, _ := canvas.Single("canvas", rec)
//	b, err := balloon.New(surfaces, "canvas", 250, 250, 80, "rgb(229,45,45)")
//	if err != nil {
//	    return err
//	}
//	b.Draw()
//
// Whole scenes go through the sinks:
//
//	svg, err := sink.RenderSVG(scene.Demo())
//
// [color]: https://pkg.go.dev/github.com/matzehuels/canvasballoon/pkg/color
// [canvas]: https://pkg.go.dev/github.com/matzehuels/canvasballoon/pkg/canvas
// [balloon]: https://pkg.go.dev/github.com/matzehuels/canvasballoon/pkg/balloon
// [scene]: https://pkg.go.dev/github.com/matzehuels/canvasballoon/pkg/scene
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/canvasballoon/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/canvasballoon/pkg/pipeline
package pkg
