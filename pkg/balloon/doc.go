// Package balloon draws stylized balloons on a [canvas.Context].
//
// # Shape
//
// A balloon is a body and a tie. The body is four cubic bezier segments
// around a circle of the given radius, each approximating a quarter arc with
// handles of length κ·r (κ = 4(√2−1)/3). Two deliberate distortions turn
// the circle into a balloon:
//
//   - The bottom pole moves down by HeightFactor·r, so the lower half is
//     longer than the upper half.
//   - The two handles meeting at the top pole grow by WidthFactor·r,
//     flattening the crown slightly.
//
// The body is filled with a radial gradient whose small inner circle sits
// up and to the right of the center, which reads as a highlight from a light
// source. The tie is a small separate path below the bottom pole: two lines
// and a quadratic curve, filled with the same gradient.
//
// # Usage
//
//	reg, _ := canvas.Single("canvas", ctx)
//	b, err := balloon.New(reg, "canvas", 250, 250, 80, "rgb(229,45,45)")
//	if err != nil {
//	    return err // SURFACE_UNAVAILABLE or INVALID_COLOR_FORMAT
//	}
//	b.Draw()
//
// Draw is deterministic and may be called any number of times; each call
// issues a fresh command sequence computed from the balloon's fields.
//
// # Radius
//
// The radius is not validated. Zero or negative radii produce degenerate or
// mirrored geometry but never panic. Callers that accept user input, such as
// [github.com/matzehuels/canvasballoon/pkg/scene], reject them upstream.
//
// [canvas.Context]: github.com/matzehuels/canvasballoon/pkg/canvas.Context
package balloon
