// Package headless drives a field.Engine without a window, on a synthetic
// fixed-step clock, recording draw calls instead of rendering them.
package headless

import (
	"context"
	"math"

	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/log"
)

// Options controls a headless run.
type Options struct {
	Frames   int     // frames to render; 0 runs until ctx is done
	Step     float64 // ms per frame; defaults to one 60 Hz interval
	Orbit    float64 // radius of the pointer's orbit around the centre, logical px
	Period   float64 // ms per orbit revolution
	LogEvery int     // log progress every N frames; 0 disables
	Logger   *log.Logger
}

// Report summarises a run.
type Report struct {
	Frames      int
	FinalSize   int
	PeakSize    int
	Ops         map[field.OpKind]int
	ElapsedTime float64 // synthetic ms
}

const defaultStep = 1000.0 / 60

// Run renders frames until opts.Frames is reached or ctx is cancelled, then
// stops the engine. The surface must already be configured.
func Run(ctx context.Context, e *field.Engine, opts Options) Report {
	if opts.Step <= 0 {
		opts.Step = defaultStep
	}
	if opts.Period <= 0 {
		opts.Period = 4000
	}
	clock := &field.StepClock{Step: opts.Step}
	rec := &field.Recorder{}
	rep := Report{Ops: make(map[field.OpKind]int)}

	w, h := e.Surface().Size()
	cx, cy := w/2, h/2

	e.Start(clock.Now())
	e.Prime(rec)
	for opts.Frames == 0 || rep.Frames < opts.Frames {
		if ctx.Err() != nil {
			opts.Logger.Infof("headless: cancelled after %d frames", rep.Frames)
			break
		}
		now := clock.Advance()
		if opts.Orbit > 0 {
			theta := 2 * math.Pi * now / opts.Period
			e.PointerMove(cx+opts.Orbit*math.Cos(theta), cy+opts.Orbit*math.Sin(theta))
		}

		rec.Reset()
		if !e.Frame(rec, now) {
			break
		}
		rep.Frames++
		for _, op := range rec.Ops {
			rep.Ops[op.Kind]++
		}
		size := e.Population().Len()
		rep.PeakSize = max(rep.PeakSize, size)
		if opts.LogEvery > 0 && rep.Frames%opts.LogEvery == 0 {
			opts.Logger.Debugf("headless: frame %d t=%.0fms particles=%d ops=%d", rep.Frames, now, size, len(rec.Ops))
		}
	}
	e.Stop()

	rep.FinalSize = e.Population().Len()
	rep.ElapsedTime = clock.Now()
	opts.Logger.Infof("headless: %d frames, %d particles at end, peak %d, %d lines drawn",
		rep.Frames, rep.FinalSize, rep.PeakSize, rep.Ops[field.OpLine])
	return rep
}
