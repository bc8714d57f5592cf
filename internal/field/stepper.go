package field

import "math"

// step renders one frame: trail fade, spawn, update and draw of every live
// particle, links, trim, and finally a return to normal blending so the
// next trail fade is unaffected.
func (e *Engine) step(p Painter, now, dt float64) {
	w, h := e.surface.Size()
	p.SetBlend(BlendNormal)
	p.FillRect(0, 0, w, h, e.cfg.TrailColor)

	px, py := e.pointer.Position()
	e.spawner.TrySpawn(e.pop, px, py, now)

	if dt < 0 {
		dt = 0
	}
	p.SetBlend(e.cfg.Blend)
	e.pop.Retain(func(pt *Particle) bool {
		t := pt.Age(now)
		if t >= 1 {
			return false
		}
		e.integrate(pt, px, py, dt, now)
		e.drawParticle(p, pt, 1-t)
		return true
	})
	e.drawLinks(p)

	if n := e.pop.Trim(); n > 0 {
		e.logger.Debugf("field: trimmed %d particles over cap %d", n, e.pop.Cap())
	}
	p.SetBlend(BlendNormal)
}

// integrate pulls the particle toward the pointer, damps it and moves it.
func (e *Engine) integrate(pt *Particle, px, py, dt, now float64) {
	pt.VX += (px - pt.X) * e.cfg.Attraction
	pt.VY += (py - pt.Y) * e.cfg.Attraction
	if e.drift != nil {
		fx, fy := e.drift.Force(pt.X, pt.Y, now)
		pt.VX += fx
		pt.VY += fy
	}
	pt.VX *= e.cfg.Damping
	pt.VY *= e.cfg.Damping
	pt.X += pt.VX * dt * e.cfg.VelocityScale
	pt.Y += pt.VY * dt * e.cfg.VelocityScale
}

// drawParticle draws glow, bloomed core and outline, all faded by alpha.
func (e *Engine) drawParticle(p Painter, pt *Particle, alpha float64) {
	c := pt.Color
	e.stops = [4]GradientStop{
		{Offset: 0, Color: c.WithAlpha(0.55 * alpha)},
		{Offset: 0.35, Color: c.WithAlpha(0.28 * alpha)},
		{Offset: 0.7, Color: c.WithAlpha(0.08 * alpha)},
		{Offset: 1, Color: c.WithAlpha(0)},
	}
	p.RadialGradient(pt.X, pt.Y, pt.Radius*e.cfg.GlowScale, e.stops[:])

	p.FillCircle(pt.X, pt.Y, pt.Radius, c.WithAlpha(0.98*alpha), Shadow{
		Blur:  math.Max(6, pt.Radius*6),
		Color: c.WithAlpha(0.95 * alpha),
	})

	p.StrokeCircle(pt.X, pt.Y, pt.Radius+1, math.Max(0.6, pt.Radius*0.28), c.WithAlpha(0.95*alpha))
}

// drawLinks joins every pair of particles closer than LinkDistance.
func (e *Engine) drawLinks(p Painter) {
	maxD2 := e.cfg.LinkDistance * e.cfg.LinkDistance
	n := e.pop.Len()
	for i := 0; i < n; i++ {
		a := &e.pop.items[i]
		for j := i + 1; j < n; j++ {
			b := &e.pop.items[j]
			dx, dy := a.X-b.X, a.Y-b.Y
			d2 := dx*dx + dy*dy
			if d2 >= maxD2 {
				continue
			}
			alpha := e.cfg.LinkOpacity(math.Sqrt(d2))
			from, to := a.Color.WithAlpha(alpha), b.Color.WithAlpha(alpha*0.9)
			if e.cfg.LinkStyle == LinkSolid {
				from = e.cfg.LinkColor.WithAlpha(alpha)
				to = from
			}
			p.Line(a.X, a.Y, b.X, b.Y, 1, from, to)
		}
	}
}
