package balloon

import "math"

// Kappa is the bezier handle ratio that best approximates a quarter circle
// with one cubic segment.
var Kappa = 4 * (math.Sqrt2 - 1) / 3

// Config holds the shape and shading constants. The zero value is not
// useful; start from DefaultConfig.
type Config struct {
	Kappa                float64 // handle length as a fraction of the radius
	WidthFactor          float64 // extra handle length at the top pole
	HeightFactor         float64 // downward shift of the bottom pole
	TieWidthFactor       float64 // full tie width
	TieHeightFactor      float64 // depth of the tie corners below the bottom pole
	TieCurveFactor       float64 // depth of the tie curve's control point
	GradientFactor       float64 // lighten/darken amount for the shading colors
	GradientCircleRadius float64 // radius of the gradient's inner circle, in pixels
	GradientStop         float64 // offset of the dark color stop
}

// DefaultConfig returns the standard balloon constants.
func DefaultConfig() Config {
	return Config{
		Kappa:                Kappa,
		WidthFactor:          0.0333,
		HeightFactor:         0.4,
		TieWidthFactor:       0.12,
		TieHeightFactor:      0.10,
		TieCurveFactor:       0.13,
		GradientFactor:       0.3,
		GradientCircleRadius: 3,
		GradientStop:         0.7,
	}
}
