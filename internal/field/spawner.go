package field

import "math/rand"

// Spawner injects particles near the pointer.
type Spawner struct {
	cfg *Config
	rng *rand.Rand
}

func NewSpawner(cfg *Config, rng *rand.Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// TrySpawn rolls the per-frame spawn probability and, if it passes and the
// population has room, adds one particle around (x, y) born at now.
// It reports whether a particle was added.
func (s *Spawner) TrySpawn(pop *Population, x, y, now float64) bool {
	if s.rng.Float64() >= s.cfg.SpawnProbability {
		return false
	}
	if pop.Full() {
		return false
	}
	j, v := s.cfg.SpawnJitter, s.cfg.SpeedRange
	pt := Particle{
		X:      x + s.between(-j, j),
		Y:      y + s.between(-j, j),
		VX:     s.between(-v, v),
		VY:     s.between(-v, v),
		Radius: s.between(s.cfg.RadiusMin, s.cfg.RadiusMax),
		Life:   s.between(s.cfg.LifeMin, s.cfg.LifeMax),
		Born:   now,
		Color:  s.cfg.Palette[s.rng.Intn(len(s.cfg.Palette))],
	}
	return pop.Add(pt)
}

func (s *Spawner) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
