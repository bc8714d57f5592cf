package field

import "image/color"

type OpKind int

const (
	OpFillRect OpKind = iota
	OpRadialGradient
	OpFillCircle
	OpStrokeCircle
	OpLine
)

func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "fill-rect"
	case OpRadialGradient:
		return "radial-gradient"
	case OpFillCircle:
		return "fill-circle"
	case OpStrokeCircle:
		return "stroke-circle"
	case OpLine:
		return "line"
	default:
		return "unknown"
	}
}

// Op is one recorded draw call, tagged with the blend mode in force.
type Op struct {
	Kind  OpKind
	Blend BlendMode

	X, Y   float64 // rect origin, circle/gradient centre, line start
	X1, Y1 float64 // line end
	W, H   float64 // rect size
	R      float64 // circle or gradient radius
	Width  float64 // stroke width

	Fill   color.NRGBA
	Color  HSLA // circle colour, line start colour
	To     HSLA // line end colour
	Stops  []GradientStop
	Shadow Shadow
}

// Recorder is a Painter that keeps every call instead of drawing. It backs
// the headless runner and tests.
type Recorder struct {
	Ops   []Op
	blend BlendMode
}

func (r *Recorder) SetBlend(mode BlendMode) { r.blend = mode }

func (r *Recorder) Blend() BlendMode { return r.blend }

func (r *Recorder) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Blend: r.blend, X: x, Y: y, W: w, H: h, Fill: c})
}

func (r *Recorder) RadialGradient(cx, cy, radius float64, stops []GradientStop) {
	r.Ops = append(r.Ops, Op{
		Kind:  OpRadialGradient,
		Blend: r.blend,
		X:     cx,
		Y:     cy,
		R:     radius,
		Stops: append([]GradientStop(nil), stops...),
	})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c HSLA, shadow Shadow) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, Blend: r.blend, X: cx, Y: cy, R: radius, Color: c, Shadow: shadow})
}

func (r *Recorder) StrokeCircle(cx, cy, radius, width float64, c HSLA) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeCircle, Blend: r.blend, X: cx, Y: cy, R: radius, Width: width, Color: c})
}

func (r *Recorder) Line(x0, y0, x1, y1, width float64, from, to HSLA) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Blend: r.blend, X: x0, Y: y0, X1: x1, Y1: y1, Width: width, Color: from, To: to})
}

// Count returns how many ops of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset forgets recorded ops but keeps the current blend mode.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
