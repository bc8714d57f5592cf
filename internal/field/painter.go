package field

import "image/color"

// BlendMode is the compositing mode shapes are drawn with.
type BlendMode int

const (
	// BlendNormal paints source over destination.
	BlendNormal BlendMode = iota
	// BlendAdditive sums colours, so overlapping glows brighten.
	BlendAdditive
)

func (b BlendMode) String() string {
	if b == BlendAdditive {
		return "additive"
	}
	return "normal"
}

// GradientStop is one colour stop of a radial gradient. Offset is in
// [0, 1] along the radius.
type GradientStop struct {
	Offset float64
	Color  HSLA
}

// Shadow is a soft bloom drawn underneath a filled shape.
type Shadow struct {
	Blur  float64
	Color HSLA
}

// Painter is the drawing surface the engine renders onto. All coordinates
// are logical pixels; implementations apply the device transform.
type Painter interface {
	SetBlend(mode BlendMode)
	FillRect(x, y, w, h float64, c color.NRGBA)
	RadialGradient(cx, cy, radius float64, stops []GradientStop)
	FillCircle(cx, cy, r float64, c HSLA, shadow Shadow)
	StrokeCircle(cx, cy, r, width float64, c HSLA)
	Line(x0, y0, x1, y1, width float64, from, to HSLA)
}
