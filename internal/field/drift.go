package field

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// driftTimeScale converts engine milliseconds into the noise field's third
// axis, so the wander pattern evolves slowly.
const driftTimeScale = 0.0003

// Drift is a Perlin noise vector field that adds a slow wander to particles.
type Drift struct {
	noise    *perlin.Perlin
	scale    float64
	strength float64
}

func NewDrift(seed int64, scale, strength float64) *Drift {
	return &Drift{
		noise:    perlin.NewPerlin(2, 2, 3, seed),
		scale:    scale,
		strength: strength,
	}
}

// Force returns the wander force at (x, y) and time now (ms).
func (d *Drift) Force(x, y, now float64) (fx, fy float64) {
	n := d.noise.Noise3D(x*d.scale, y*d.scale, now*driftTimeScale)
	angle := (n + 1) * math.Pi
	return math.Cos(angle) * d.strength, math.Sin(angle) * d.strength
}
