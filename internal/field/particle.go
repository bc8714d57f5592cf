package field

// Particle is a single glowing dot. Radius, Born, Life and Color are fixed
// at spawn; position and velocity change every frame.
type Particle struct {
	X, Y   float64 // logical px
	VX, VY float64
	Radius float64
	Born   float64 // ms on the engine clock
	Life   float64 // ms
	Color  HSLA
}

// Age is the elapsed fraction of the particle's lifespan at now.
// The particle is live while Age < 1.
func (p *Particle) Age(now float64) float64 {
	return (now - p.Born) / p.Life
}

// Expired reports whether the particle has reached the end of its life.
func (p *Particle) Expired(now float64) bool {
	return p.Age(now) >= 1
}
