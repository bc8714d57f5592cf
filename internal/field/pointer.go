package field

// Pointer is the last observed pointer state. Every notification overwrites
// it; nothing is queued.
type Pointer struct {
	x, y       float64
	defX, defY float64
	seen       bool
	pressed    bool
}

// SetDefault sets the position reported before the first move.
func (p *Pointer) SetDefault(x, y float64) {
	p.defX, p.defY = x, y
}

func (p *Pointer) Move(x, y float64) {
	p.x, p.y = x, y
	p.seen = true
}

func (p *Pointer) Press()   { p.pressed = true }
func (p *Pointer) Release() { p.pressed = false }

// Position returns the last observed position, or the default if the
// pointer has not moved yet.
func (p Pointer) Position() (x, y float64) {
	if !p.seen {
		return p.defX, p.defY
	}
	return p.x, p.y
}

func (p Pointer) Pressed() bool { return p.pressed }
