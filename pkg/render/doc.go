// Package render provides output conversion shared by the scene sinks.
//
// # Format Conversion
//
// [ToPDF] converts an SVG document to PDF using the external rsvg-convert
// tool (from librsvg). The PDF sink renders SVG first and converts it:
//
//	svg, err := sink.RenderSVG(s)
//	pdf, err := render.ToPDF(svg)
//
// PNG output does not need librsvg; the [sink] package rasterizes scenes
// directly.
//
// [sink]: github.com/matzehuels/canvasballoon/pkg/render/sink
package render
