package balloon

// Geometry holds the quantities derived from a balloon's radius and center.
type Geometry struct {
	HandleLength   float64
	WidthDiff      float64
	HeightDiff     float64
	BottomY        float64 // y of the relocated bottom pole
	HalfTieWidth   float64
	TieHeight      float64
	TieCurveHeight float64
}

// ComputeGeometry derives the geometry for a balloon at (cx, cy) with radius r.
func ComputeGeometry(cfg Config, cy, r float64) Geometry {
	heightDiff := r * cfg.HeightFactor
	return Geometry{
		HandleLength:   cfg.Kappa * r,
		WidthDiff:      r * cfg.WidthFactor,
		HeightDiff:     heightDiff,
		BottomY:        cy + r + heightDiff,
		HalfTieWidth:   (r * cfg.TieWidthFactor) / 2,
		TieHeight:      r * cfg.TieHeightFactor,
		TieCurveHeight: r * cfg.TieCurveFactor,
	}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.MinX >= r.MinX && o.MinY >= r.MinY && o.MaxX <= r.MaxX && o.MaxY <= r.MaxY
}
