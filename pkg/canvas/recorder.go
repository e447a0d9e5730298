package canvas

// Command is one recorded Context call.
type Command struct {
	Op   Op
	Args []float64
	// Paint is set for OpSetFillStyle and OpFill.
	Paint Paint
}

// FilledPath is a path captured at the moment Fill was called.
type FilledPath struct {
	Path  Path
	Paint Paint
}

// Recorder is an in-memory Context that logs every call.
// It is not safe for concurrent use.
type Recorder struct {
	PathBuilder
	Commands []Command
	Fills    []FilledPath
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) BeginPath() {
	r.PathBuilder.BeginPath()
	r.record(OpBeginPath, nil)
}

func (r *Recorder) MoveTo(x, y float64) {
	r.PathBuilder.MoveTo(x, y)
	r.record(OpMoveTo, nil, x, y)
}

func (r *Recorder) LineTo(x, y float64) {
	r.PathBuilder.LineTo(x, y)
	r.record(OpLineTo, nil, x, y)
}

func (r *Recorder) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	r.PathBuilder.BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y)
	r.record(OpBezierCurveTo, nil, cp1x, cp1y, cp2x, cp2y, x, y)
}

func (r *Recorder) QuadraticCurveTo(cpx, cpy, x, y float64) {
	r.PathBuilder.QuadraticCurveTo(cpx, cpy, x, y)
	r.record(OpQuadraticCurveTo, nil, cpx, cpy, x, y)
}

func (r *Recorder) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) *RadialGradient {
	r.record(OpCreateRadialGradient, nil, x0, y0, r0, x1, y1, r1)
	return r.PathBuilder.CreateRadialGradient(x0, y0, r0, x1, y1, r1)
}

func (r *Recorder) SetFillStyle(p Paint) {
	r.PathBuilder.SetFillStyle(p)
	r.record(OpSetFillStyle, p)
}

// Fill records the fill and captures the current path with the active paint.
func (r *Recorder) Fill() {
	paint := r.FillStyle()
	r.record(OpFill, paint)
	r.Fills = append(r.Fills, FilledPath{Path: r.CurrentPath(), Paint: paint})
}

// Count returns how many calls of the given kind were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset clears the log, the current path and the fill style.
func (r *Recorder) Reset() {
	*r = Recorder{}
}

func (r *Recorder) record(op Op, p Paint, args ...float64) {
	r.Commands = append(r.Commands, Command{Op: op, Args: args, Paint: p})
}

var _ Context = (*Recorder)(nil)
