package field

import "math"

// Transform is a 2D affine matrix in canvas order:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Transform struct {
	A, B, C, D, E, F float64
}

func Identity() Transform {
	return Transform{A: 1, D: 1}
}

func (t *Transform) Reset() {
	*t = Identity()
}

// Scale post-multiplies t by a scale, so later coordinates are scaled first.
func (t *Transform) Scale(sx, sy float64) {
	t.A *= sx
	t.B *= sx
	t.C *= sy
	t.D *= sy
}

func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.A*x + t.C*y + t.E, t.B*x + t.D*y + t.F
}

// Invert returns the inverse of t, or false if t is singular.
func (t Transform) Invert() (Transform, bool) {
	det := t.A*t.D - t.B*t.C
	if det == 0 {
		return Transform{}, false
	}
	return Transform{
		A: t.D / det,
		B: -t.B / det,
		C: -t.C / det,
		D: t.A / det,
		E: (t.C*t.F - t.D*t.E) / det,
		F: (t.B*t.E - t.A*t.F) / det,
	}, true
}

// Surface tracks the logical size of the drawing area, the device pixel
// ratio, and the physical buffer size and transform derived from them.
type Surface struct {
	width, height float64
	ratio         float64
	physW, physH  int
	transform     Transform
}

// Configure resizes the surface. The physical buffer becomes
// round(w*ratio) x round(h*ratio) and the transform is reset to identity
// before the ratio is applied, so repeated calls never compound. A ratio
// that is not positive is treated as 1. It reports whether anything changed.
func (s *Surface) Configure(w, h, ratio float64) bool {
	if ratio <= 0 || math.IsNaN(ratio) {
		ratio = 1
	}
	w, h = math.Max(w, 0), math.Max(h, 0)
	prev := *s

	s.width, s.height = w, h
	s.ratio = ratio
	s.physW = int(math.Round(w * ratio))
	s.physH = int(math.Round(h * ratio))
	s.transform.Reset()
	s.transform.Scale(ratio, ratio)

	return prev != *s
}

// Size is the logical (CSS pixel) size.
func (s *Surface) Size() (w, h float64) { return s.width, s.height }

func (s *Surface) Ratio() float64 {
	if s.ratio == 0 {
		return 1
	}
	return s.ratio
}

// PhysicalSize is the size of the backing buffer in device pixels.
func (s *Surface) PhysicalSize() (w, h int) { return s.physW, s.physH }

// Transform maps logical coordinates to device pixels.
func (s *Surface) Transform() Transform {
	if s.ratio == 0 {
		return Identity()
	}
	return s.transform
}

// ToLogical maps a device pixel coordinate back to logical space.
func (s *Surface) ToLogical(x, y float64) (float64, float64) {
	inv, ok := s.Transform().Invert()
	if !ok {
		return x, y
	}
	return inv.Apply(x, y)
}
