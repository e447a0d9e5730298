// Package canvas defines the 2D drawing-surface contract that balloons are
// drawn on.
//
// # Overview
//
// [Context] mirrors the small subset of an HTML canvas 2D context the balloon
// renderer needs: path construction (BeginPath, MoveTo, LineTo,
// BezierCurveTo, QuadraticCurveTo), Fill, radial gradients and a settable
// fill style. Any backend that implements it can host balloons; this module
// ships an SVG document surface and a raster surface in
// [github.com/matzehuels/canvasballoon/pkg/render/sink].
//
// # Paint
//
// A fill style is a [Paint]: either a [*RadialGradient] created through
// [Context.CreateRadialGradient] or a [Solid] color string. Until a fill
// style is set, fills use [DefaultFillStyle] (opaque black), as on an HTML
// canvas.
//
// # Surfaces by Identifier
//
// A [Registry] maps identifiers (such as "canvas") to contexts. Resolving an
// unknown identifier fails with errors.ErrCodeSurfaceUnavailable, which is
// how the renderer reports a missing surface.
//
// # Recording
//
// [Recorder] is an in-memory Context that logs every call. Tests use it to
// assert on the exact command sequence, and the JSON sink serializes it.
package canvas
