package screen

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/mesh"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Painter draws field shapes onto an ebiten image. Shapes arrive in logical
// pixels and are mapped through the surface transform to device pixels.
type Painter struct {
	dst   *ebiten.Image
	geo   field.Transform
	scale float64
	mode  field.BlendMode

	mesh     mesh.Mesh
	stops    []mesh.Stop
	vertices []ebiten.Vertex
}

func NewPainter() *Painter {
	return &Painter{geo: field.Identity(), scale: 1}
}

// Target points the painter at dst with the given logical-to-device transform.
func (p *Painter) Target(dst *ebiten.Image, t field.Transform) {
	p.dst = dst
	p.geo = t
	p.scale = math.Sqrt(math.Abs(t.A*t.D - t.B*t.C))
	if p.scale == 0 {
		p.scale = 1
	}
}

func (p *Painter) SetBlend(mode field.BlendMode) { p.mode = mode }

func (p *Painter) blend() ebiten.Blend {
	if p.mode == field.BlendAdditive {
		return ebiten.BlendLighter
	}
	return ebiten.BlendSourceOver
}

func (p *Painter) FillRect(x, y, w, h float64, c color.NRGBA) {
	if p.dst == nil {
		return
	}
	x0, y0 := p.geo.Apply(x, y)
	x1, y1 := p.geo.Apply(x+w, y+h)
	if p.mode == field.BlendNormal {
		vector.DrawFilledRect(p.dst, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), c, false)
		return
	}
	p.mesh.Reset()
	p.mesh.Rect(float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), nrgbaColor(c))
	p.flush(false)
}

func (p *Painter) RadialGradient(cx, cy, radius float64, stops []field.GradientStop) {
	if p.dst == nil || radius <= 0 {
		return
	}
	p.stops = p.stops[:0]
	for _, s := range stops {
		p.stops = append(p.stops, mesh.Stop{Offset: float32(s.Offset), Color: hslaColor(s.Color)})
	}
	p.mesh.Reset()
	p.mesh.RadialGradient(float32(cx), float32(cy), float32(radius), p.stops, p.segments(radius))
	p.flush(true)
}

// FillCircle draws the shadow as a soft halo reaching Blur past the edge,
// then the solid disc on top.
func (p *Painter) FillCircle(cx, cy, r float64, c field.HSLA, shadow field.Shadow) {
	if p.dst == nil || r <= 0 {
		return
	}
	p.mesh.Reset()
	if shadow.Blur > 0 && shadow.Color.A > 0 {
		outer := r + shadow.Blur
		sc := hslaColor(shadow.Color)
		half := sc
		half.A *= 0.5
		faint := sc
		faint.A *= 0.15
		p.stops = append(p.stops[:0],
			mesh.Stop{Offset: 0, Color: sc},
			mesh.Stop{Offset: float32(r / outer), Color: half},
			mesh.Stop{Offset: float32((r + shadow.Blur/2) / outer), Color: faint},
			mesh.Stop{Offset: 1, Color: sc.Transparent()},
		)
		p.mesh.RadialGradient(float32(cx), float32(cy), float32(outer), p.stops, p.segments(outer))
	}
	p.mesh.Disc(float32(cx), float32(cy), float32(r), hslaColor(c), p.segments(r))
	p.flush(true)
}

func (p *Painter) StrokeCircle(cx, cy, r, width float64, c field.HSLA) {
	if p.dst == nil {
		return
	}
	p.mesh.Reset()
	p.mesh.Ring(float32(cx), float32(cy), float32(r), float32(width), hslaColor(c), p.segments(r))
	p.flush(true)
}

func (p *Painter) Line(x0, y0, x1, y1, width float64, from, to field.HSLA) {
	if p.dst == nil {
		return
	}
	p.mesh.Reset()
	p.mesh.Line(float32(x0), float32(y0), float32(x1), float32(y1), float32(width), hslaColor(from), hslaColor(to))
	p.flush(true)
}

func (p *Painter) segments(logicalRadius float64) int {
	return mesh.Segments(logicalRadius * p.scale)
}

// flush maps the mesh to device pixels when it is still in logical space and
// draws it with the current blend mode.
func (p *Painter) flush(logical bool) {
	if p.mesh.Empty() {
		return
	}
	if logical {
		g := p.geo
		p.mesh.Affine(float32(g.A), float32(g.B), float32(g.C), float32(g.D), float32(g.E), float32(g.F))
	}
	p.vertices = p.vertices[:0]
	for _, v := range p.mesh.Vertices {
		p.vertices = append(p.vertices, ebiten.Vertex{
			DstX:   v.X,
			DstY:   v.Y,
			SrcX:   1,
			SrcY:   1,
			ColorR: v.R,
			ColorG: v.G,
			ColorB: v.B,
			ColorA: v.A,
		})
	}
	op := &ebiten.DrawTrianglesOptions{
		Blend:          p.blend(),
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		AntiAlias:      true,
	}
	p.dst.DrawTriangles(p.vertices, p.mesh.Indices, whiteSubImage, op)
}

func hslaColor(c field.HSLA) mesh.Color {
	r, g, b, a := c.RGBA()
	return mesh.Color{R: r, G: g, B: b, A: a}
}

func nrgbaColor(c color.NRGBA) mesh.Color {
	return mesh.Color{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}
