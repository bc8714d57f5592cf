package field

import (
	"math"
	"testing"
)

const eps = 1e-9

func newTestEngine(t *testing.T, mutate func(*Config)) *Engine {
	t.Helper()
	cfg := Default()
	if mutate != nil {
		mutate(&cfg)
	}
	e, err := New(cfg, WithSeed(42))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.Configure(800, 600, 1)
	return e
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func testParticle(x, y float64) Particle {
	return Particle{
		X: x, Y: y,
		Radius: 2,
		Born:   0,
		Life:   1000,
		Color:  NeonPalette()[0],
	}
}
