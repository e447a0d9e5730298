// Package sink renders a [scene.Scene] to output formats.
//
// # Overview
//
// A "sink" provides a concrete [canvas.Context], registers it under the
// scene's surface identifier and lets [scene.Scene.Draw] issue the balloon
// commands onto it. This package provides:
//
//   - SVG: a vector document, one radial gradient and one path per fill
//   - PNG: a raster image drawn with fogleman/gg
//   - JSON: the recorded draw commands per balloon
//   - PDF: SVG converted by rsvg-convert (requires librsvg)
//
// # SVG Output
//
// Canvas radial gradients map onto SVG gradients in user space: the outer
// circle becomes cx/cy/r and the inner circle fx/fy/fr.
//
//	svg, err := sink.RenderSVG(s, sink.WithIDPrefix("party"))
//
// # PNG Output
//
//	png, err := sink.RenderPNG(s, sink.WithScale(2))
//
// [scene.Scene]: github.com/matzehuels/canvasballoon/pkg/scene.Scene
// [scene.Scene.Draw]: github.com/matzehuels/canvasballoon/pkg/scene.Scene.Draw
// [canvas.Context]: github.com/matzehuels/canvasballoon/pkg/canvas.Context
package sink
