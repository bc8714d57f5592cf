package headless

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/log"
)

func newEngine(t *testing.T) *field.Engine {
	t.Helper()
	e, err := field.New(field.Default(), field.WithSeed(5))
	if err != nil {
		t.Fatal(err)
	}
	e.Configure(800, 600, 1)
	return e
}

func TestRunFixedFrames(t *testing.T) {
	var buf bytes.Buffer
	e := newEngine(t)
	rep := Run(context.Background(), e, Options{
		Frames: 120,
		Orbit:  80,
		Logger: log.New(&buf, log.LevelInfo),
	})

	if rep.Frames != 120 {
		t.Fatalf("Frames = %d", rep.Frames)
	}
	if rep.PeakSize == 0 || rep.PeakSize > 28 || rep.FinalSize > 28 {
		t.Fatalf("sizes: final=%d peak=%d", rep.FinalSize, rep.PeakSize)
	}
	// One trail fade per frame plus the prime, which is not counted.
	if rep.Ops[field.OpFillRect] != 120 {
		t.Fatalf("fill rects = %d", rep.Ops[field.OpFillRect])
	}
	if rep.Ops[field.OpFillCircle] == 0 {
		t.Fatal("no particles drawn")
	}
	if !e.Stopped() {
		t.Fatal("engine not stopped after run")
	}
	if !strings.Contains(buf.String(), "headless: 120 frames") {
		t.Fatalf("summary not logged: %q", buf.String())
	}
	if want := 120 * defaultStep; rep.ElapsedTime < want-1e-6 || rep.ElapsedTime > want+1e-6 {
		t.Fatalf("elapsed = %g, want %g", rep.ElapsedTime, want)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := newEngine(t)
	rep := Run(ctx, e, Options{})
	if rep.Frames != 0 || !e.Stopped() {
		t.Fatalf("cancelled run rendered %d frames", rep.Frames)
	}
}

func TestRunReproducible(t *testing.T) {
	a := Run(context.Background(), newEngine(t), Options{Frames: 200, Orbit: 120})
	b := Run(context.Background(), newEngine(t), Options{Frames: 200, Orbit: 120})
	if a.FinalSize != b.FinalSize || a.PeakSize != b.PeakSize || a.Ops[field.OpLine] != b.Ops[field.OpLine] {
		t.Fatalf("runs differ: %+v vs %+v", a, b)
	}
}
