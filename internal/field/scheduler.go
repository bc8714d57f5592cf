package field

type State int

const (
	Running State = iota
	Suspended
)

func (s State) String() string {
	if s == Suspended {
		return "suspended"
	}
	return "running"
}

// Scheduler does the elapsed-time accounting for the frame loop. The host
// calls Tick once per display refresh; Tick says whether the frame should
// run and how long it has been since the previous one.
type Scheduler struct {
	state   State
	last    float64
	started bool
	stopped bool
	frames  uint64
}

// Start sets the reference time for the first frame.
func (s *Scheduler) Start(now float64) {
	s.last = now
	s.started = true
}

// Tick returns the time since the previous frame. ok is false while the
// page is hidden and after Stop; in the hidden case the reference time still
// follows now so nothing accumulates.
func (s *Scheduler) Tick(now float64) (dt float64, ok bool) {
	if s.stopped {
		return 0, false
	}
	if !s.started {
		s.Start(now)
	}
	if s.state == Suspended {
		s.last = now
		return 0, false
	}
	dt = now - s.last
	s.last = now
	s.frames++
	return dt, true
}

// SetHidden applies a visibility change. Either transition resets the
// reference time to now, so the first frame after resuming measures a
// single interval rather than the time spent hidden. It reports whether the
// state changed.
func (s *Scheduler) SetHidden(hidden bool, now float64) bool {
	next := Running
	if hidden {
		next = Suspended
	}
	if next == s.state {
		return false
	}
	s.state = next
	s.last = now
	s.started = true
	return true
}

// Stop ends the loop. It cannot be undone.
func (s *Scheduler) Stop() { s.stopped = true }

func (s *Scheduler) Stopped() bool { return s.stopped }

func (s *Scheduler) State() State { return s.state }

// Frames counts the frames that have run.
func (s *Scheduler) Frames() uint64 { return s.frames }
