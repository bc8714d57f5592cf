// Package mesh builds indexed triangle meshes with per-vertex colours for
// the shapes the particle field draws: radial gradients, discs, rings and
// two-colour lines. Colours are straight (non-premultiplied) alpha.
package mesh

import "math"

type Color struct {
	R, G, B, A float32
}

// Transparent returns c with zero alpha.
func (c Color) Transparent() Color {
	c.A = 0
	return c
}

type Vertex struct {
	X, Y float32
	Color
}

// Mesh accumulates vertices and triangle indices. Reuse one across frames
// with Reset to avoid reallocating.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

func (m *Mesh) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
}

// Empty reports whether the mesh has no triangles.
func (m *Mesh) Empty() bool { return len(m.Indices) == 0 }

// Segments picks how many edges to approximate a circle of radius r (in
// device pixels) with.
func Segments(r float64) int {
	n := int(math.Ceil(r * 1.5))
	switch {
	case n < 12:
		return 12
	case n > 96:
		return 96
	}
	return n
}

// Stop is one colour stop of a radial gradient.
type Stop struct {
	Offset float32
	Color  Color
}

// RadialGradient fills a disc of the given radius whose colour interpolates
// between stops from the centre outward. The first stop's colour is used at
// the centre regardless of its offset.
func (m *Mesh) RadialGradient(cx, cy, radius float32, stops []Stop, segments int) {
	if len(stops) == 0 || radius <= 0 {
		return
	}
	center := m.vertex(cx, cy, stops[0].Color)
	prev := -1
	for _, s := range stops {
		if s.Offset <= 0 {
			continue
		}
		ring := m.ring(cx, cy, radius*s.Offset, s.Color, segments)
		if prev < 0 {
			m.fan(center, ring, segments)
		} else {
			m.strip(prev, ring, segments)
		}
		prev = ring
	}
}

// Disc fills a circle with a single colour.
func (m *Mesh) Disc(cx, cy, r float32, c Color, segments int) {
	if r <= 0 {
		return
	}
	center := m.vertex(cx, cy, c)
	m.fan(center, m.ring(cx, cy, r, c, segments), segments)
}

// Ring strokes a circle of radius r with the given width, centred on r.
func (m *Mesh) Ring(cx, cy, r, width float32, c Color, segments int) {
	if width <= 0 {
		return
	}
	inner := r - width/2
	if inner < 0 {
		inner = 0
	}
	in := m.ring(cx, cy, inner, c, segments)
	out := m.ring(cx, cy, r+width/2, c, segments)
	m.strip(in, out, segments)
}

// Line strokes a segment whose colour runs from `from` at (x0,y0) to `to`
// at (x1,y1).
func (m *Mesh) Line(x0, y0, x1, y1, width float32, from, to Color) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 || width <= 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	base := m.vertex(x0+nx, y0+ny, from)
	m.vertex(x0-nx, y0-ny, from)
	m.vertex(x1+nx, y1+ny, to)
	m.vertex(x1-nx, y1-ny, to)
	m.quad(base, base+1, base+2, base+3)
}

// Rect fills an axis-aligned rectangle.
func (m *Mesh) Rect(x, y, w, h float32, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	base := m.vertex(x, y, c)
	m.vertex(x, y+h, c)
	m.vertex(x+w, y, c)
	m.vertex(x+w, y+h, c)
	m.quad(base, base+1, base+2, base+3)
}

// Affine maps every vertex through x' = a*x + c*y + e, y' = b*x + d*y + f.
func (m *Mesh) Affine(a, b, c, d, e, f float32) {
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.X, v.Y = a*v.X+c*v.Y+e, b*v.X+d*v.Y+f
	}
}

func (m *Mesh) vertex(x, y float32, c Color) int {
	m.Vertices = append(m.Vertices, Vertex{X: x, Y: y, Color: c})
	return len(m.Vertices) - 1
}

// ring appends segments vertices evenly spaced on a circle and returns the
// index of the first.
func (m *Mesh) ring(cx, cy, r float32, c Color, segments int) int {
	first := len(m.Vertices)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		m.vertex(cx+r*float32(math.Cos(theta)), cy+r*float32(math.Sin(theta)), c)
	}
	return first
}

func (m *Mesh) fan(center, ring, segments int) {
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		m.Indices = append(m.Indices, uint16(center), uint16(ring+i), uint16(ring+next))
	}
}

func (m *Mesh) strip(inner, outer, segments int) {
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		m.quad(inner+i, outer+i, inner+next, outer+next)
	}
}

// quad adds two triangles for the corners a-b on one edge and c-d on the
// opposite edge.
func (m *Mesh) quad(a, b, c, d int) {
	m.Indices = append(m.Indices,
		uint16(a), uint16(b), uint16(c),
		uint16(b), uint16(d), uint16(c),
	)
}
