package field

import "time"

// Clock yields a monotonic timestamp in milliseconds.
type Clock interface {
	Now() float64
}

// SystemClock measures wall time since it was created.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Now() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// StepClock is a manual clock advanced in fixed steps.
type StepClock struct {
	T    float64
	Step float64
}

func (c *StepClock) Now() float64 { return c.T }

// Advance moves the clock forward one step and returns the new time.
func (c *StepClock) Advance() float64 {
	c.T += c.Step
	return c.T
}
