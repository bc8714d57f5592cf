package field

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
)

// snapshotParticle stores age instead of birth time so a snapshot can be
// restored onto a different clock.
type snapshotParticle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	Radius float64 `json:"radius"`
	AgeMS  float64 `json:"age_ms"`
	LifeMS float64 `json:"life_ms"`
	Hue    float64 `json:"h"`
	Sat    float64 `json:"s"`
	Light  float64 `json:"l"`
}

// SaveSnapshot writes the live population at now as JSON.
func (e *Engine) SaveSnapshot(w io.Writer, now float64) error {
	out := make([]snapshotParticle, 0, e.pop.Len())
	for _, pt := range e.pop.items {
		if pt.Expired(now) {
			continue
		}
		out = append(out, snapshotParticle{
			X: pt.X, Y: pt.Y, VX: pt.VX, VY: pt.VY,
			Radius: pt.Radius,
			AgeMS:  now - pt.Born,
			LifeMS: pt.Life,
			Hue:    pt.Color.H, Sat: pt.Color.S, Light: pt.Color.L,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot replaces the population with the particles in r, rebasing
// their birth times onto now. Radius and lifespan are clamped to the
// configured ranges and colours snap to the nearest palette entry. Entries
// with a non-positive lifespan, or that are expired once clamped, are
// skipped, and the oldest are dropped if the snapshot holds more than the
// cap. It returns the resulting size.
func (e *Engine) LoadSnapshot(r io.Reader, now float64) (int, error) {
	var in []snapshotParticle
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return 0, fmt.Errorf("decode snapshot: %w", err)
	}
	sort.SliceStable(in, func(i, j int) bool { return in[i].AgeMS > in[j].AgeMS })

	e.pop.Reset()
	skipped := 0
	for _, sp := range in {
		if sp.LifeMS <= 0 || sp.AgeMS < 0 {
			skipped++
			continue
		}
		life := math.Min(math.Max(sp.LifeMS, e.cfg.LifeMin), e.cfg.LifeMax)
		if sp.AgeMS >= life {
			skipped++
			continue
		}
		e.pop.push(Particle{
			X: sp.X, Y: sp.Y, VX: sp.VX, VY: sp.VY,
			Radius: math.Min(math.Max(sp.Radius, e.cfg.RadiusMin), e.cfg.RadiusMax),
			Born:   now - sp.AgeMS,
			Life:   life,
			Color:  nearestColor(e.cfg.Palette, HSLA{H: sp.Hue, S: sp.Sat, L: sp.Light, A: 1}),
		})
	}
	if skipped > 0 {
		e.logger.Debugf("field: snapshot skipped %d expired or invalid particles", skipped)
	}
	if n := e.pop.Trim(); n > 0 {
		e.logger.Warnf("field: snapshot held %d particles over cap %d, dropped oldest", n, e.pop.Cap())
	}
	return e.pop.Len(), nil
}

// nearestColor returns the palette entry closest to c, comparing hue on the
// colour wheel and saturation and lightness directly.
func nearestColor(palette []HSLA, c HSLA) HSLA {
	best, bestD := palette[0], math.Inf(1)
	for _, p := range palette {
		dh := math.Abs(math.Mod(p.H-c.H, 360))
		dh = math.Min(dh, 360-dh)
		ds, dl := p.S-c.S, p.L-c.L
		if d := dh*dh + ds*ds + dl*dl; d < bestD {
			best, bestD = p, d
		}
	}
	return best
}
