package field

// Population is the bounded set of live particles, kept in spawn order so
// the front of the slice is always the oldest entry.
type Population struct {
	items []Particle
	cap   int
}

func NewPopulation(capacity int) *Population {
	return &Population{
		items: make([]Particle, 0, capacity),
		cap:   capacity,
	}
}

func (p *Population) Len() int { return len(p.items) }

func (p *Population) Cap() int { return p.cap }

// SetCap changes the bound. Entries above it are dropped on the next Trim.
func (p *Population) SetCap(capacity int) { p.cap = capacity }

func (p *Population) Full() bool { return len(p.items) >= p.cap }

// Add appends pt unless the population is at its cap.
func (p *Population) Add(pt Particle) bool {
	if p.Full() {
		return false
	}
	p.items = append(p.items, pt)
	return true
}

// At returns the i-th particle, oldest first.
func (p *Population) At(i int) Particle { return p.items[i] }

// Particles returns a copy of the live particles, oldest first.
func (p *Population) Particles() []Particle {
	out := make([]Particle, len(p.items))
	copy(out, p.items)
	return out
}

// Retain calls keep for each particle in order and drops those for which it
// returns false. keep may modify the particle in place.
func (p *Population) Retain(keep func(pt *Particle) bool) {
	live := p.items[:0]
	for i := range p.items {
		pt := p.items[i]
		if keep(&pt) {
			live = append(live, pt)
		}
	}
	clear(p.items[len(live):])
	p.items = live
}

// Trim drops the oldest entries until the population is within its cap and
// returns how many were dropped.
func (p *Population) Trim() int {
	over := len(p.items) - p.cap
	if over <= 0 {
		return 0
	}
	n := copy(p.items, p.items[over:])
	clear(p.items[n:])
	p.items = p.items[:n]
	return over
}

func (p *Population) Reset() {
	clear(p.items)
	p.items = p.items[:0]
}

// push appends without the cap check; callers Trim afterwards.
func (p *Population) push(pt Particle) {
	p.items = append(p.items, pt)
}
