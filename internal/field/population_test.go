package field

import "testing"

func TestPopulationAddRespectsCap(t *testing.T) {
	pop := NewPopulation(2)
	for i := 0; i < 2; i++ {
		if !pop.Add(testParticle(float64(i), 0)) {
			t.Fatalf("Add %d refused below cap", i)
		}
	}
	if pop.Add(testParticle(9, 9)) {
		t.Fatal("Add accepted at cap")
	}
	if pop.Len() != 2 || !pop.Full() {
		t.Fatalf("Len = %d Full = %v", pop.Len(), pop.Full())
	}
}

func TestPopulationTrimDropsOldest(t *testing.T) {
	pop := NewPopulation(5)
	for i := 0; i < 5; i++ {
		pop.Add(testParticle(float64(i), 0))
	}
	pop.SetCap(2)
	if n := pop.Trim(); n != 3 {
		t.Fatalf("Trim dropped %d, want 3", n)
	}
	got := pop.Particles()
	if len(got) != 2 || got[0].X != 3 || got[1].X != 4 {
		t.Fatalf("after trim = %+v, want the two newest", got)
	}
	if n := pop.Trim(); n != 0 {
		t.Fatalf("second Trim dropped %d", n)
	}
}

func TestPopulationRetainKeepsOrderAndEdits(t *testing.T) {
	pop := NewPopulation(10)
	for i := 0; i < 6; i++ {
		pop.Add(testParticle(float64(i), 0))
	}
	pop.Retain(func(pt *Particle) bool {
		pt.Y = 7
		return int(pt.X)%2 == 0
	})
	got := pop.Particles()
	if len(got) != 3 {
		t.Fatalf("Len = %d, want 3", len(got))
	}
	for i, pt := range got {
		if pt.X != float64(i*2) || pt.Y != 7 {
			t.Errorf("particle %d = %+v", i, pt)
		}
	}
}

func TestPopulationParticlesIsCopy(t *testing.T) {
	pop := NewPopulation(1)
	pop.Add(testParticle(1, 1))
	out := pop.Particles()
	out[0].X = 100
	if pop.At(0).X != 1 {
		t.Fatal("Particles returned an alias")
	}
}

func TestParticleAge(t *testing.T) {
	p := Particle{Born: 100, Life: 1000}
	if got := p.Age(600); got != 0.5 {
		t.Fatalf("Age = %g", got)
	}
	if p.Expired(1099) {
		t.Fatal("expired early")
	}
	if !p.Expired(1100) {
		t.Fatal("not expired at end of life")
	}
}
