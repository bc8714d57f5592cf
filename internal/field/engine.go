// Package field implements a cursor-reactive particle field: glowing
// particles spawn near the pointer, drift toward it, fade out over a fixed
// lifespan and are joined by distance-faded links. Frames are rendered onto
// a Painter with a translucent overpaint so motion leaves trails.
//
// An Engine is driven from a single loop and is not safe for concurrent use.
package field

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/olivierh59500/particle-field-go/internal/log"
)

// Engine owns all state of one particle field.
type Engine struct {
	cfg     Config
	surface Surface
	pointer Pointer
	pop     *Population
	spawner *Spawner
	sched   Scheduler
	drift   *Drift
	rng     *rand.Rand
	seed    int64
	logger  *log.Logger

	stops [4]GradientStop
}

type Option func(*Engine)

// WithSeed fixes the random source, making runs reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New builds an engine from cfg. Without WithSeed the random source is
// seeded from the wall clock.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:  cfg,
		seed: time.Now().UnixNano(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.rng = rand.New(rand.NewSource(e.seed))
	e.pop = NewPopulation(cfg.MaxParticles)
	e.spawner = NewSpawner(&e.cfg, e.rng)
	e.rebuildDrift()
	return e, nil
}

// SetConfig swaps the configuration at runtime. A smaller MaxParticles takes
// effect through the trim at the end of the next frame.
func (e *Engine) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("set config: %w", err)
	}
	driftChanged := cfg.DriftStrength != e.cfg.DriftStrength || cfg.DriftScale != e.cfg.DriftScale
	e.cfg = cfg
	e.pop.SetCap(cfg.MaxParticles)
	if driftChanged {
		e.rebuildDrift()
	}
	e.logger.Infof("field: config applied (variant=%s max=%d blend=%s)", cfg.Variant, cfg.MaxParticles, cfg.Blend)
	return nil
}

func (e *Engine) rebuildDrift() {
	e.drift = nil
	if e.cfg.DriftStrength > 0 {
		e.drift = NewDrift(e.seed, e.cfg.DriftScale, e.cfg.DriftStrength)
	}
}

func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) Seed() int64 { return e.seed }

// Configure resizes the surface to a w x h logical viewport at the given
// device pixel ratio. Until the pointer first moves it is reported at the
// viewport centre. It reports whether the surface changed.
func (e *Engine) Configure(w, h, ratio float64) bool {
	changed := e.surface.Configure(w, h, ratio)
	if changed {
		lw, lh := e.surface.Size()
		e.pointer.SetDefault(lw/2, lh/2)
		pw, ph := e.surface.PhysicalSize()
		e.logger.Debugf("field: surface %gx%g @%g -> %dx%d", lw, lh, e.surface.Ratio(), pw, ph)
	}
	return changed
}

func (e *Engine) Surface() *Surface { return &e.surface }

func (e *Engine) PointerMove(x, y float64) { e.pointer.Move(x, y) }
func (e *Engine) PointerDown()             { e.pointer.Press() }
func (e *Engine) PointerUp()               { e.pointer.Release() }

func (e *Engine) Pointer() Pointer { return e.pointer }

// SetHidden forwards a page visibility change to the scheduler.
func (e *Engine) SetHidden(hidden bool, now float64) {
	if e.sched.SetHidden(hidden, now) {
		e.logger.Infof("field: %s at %.1fms", e.sched.State(), now)
	}
}

// Start sets the reference time of the first frame.
func (e *Engine) Start(now float64) { e.sched.Start(now) }

// Stop is the teardown hook. Frames are no-ops afterwards.
func (e *Engine) Stop() {
	if !e.sched.Stopped() {
		e.sched.Stop()
		e.logger.Infof("field: stopped after %d frames", e.sched.Frames())
	}
}

func (e *Engine) Stopped() bool { return e.sched.Stopped() }

func (e *Engine) Scheduler() *Scheduler { return &e.sched }

func (e *Engine) Population() *Population { return e.pop }

// Prime paints the whole surface with the solid background colour.
func (e *Engine) Prime(p Painter) {
	if p == nil {
		return
	}
	w, h := e.surface.Size()
	p.SetBlend(BlendNormal)
	p.FillRect(0, 0, w, h, e.cfg.Background)
}

// Frame runs one tick of the loop at time now. A nil painter means there is
// no surface to draw on and the frame is skipped silently. It reports whether
// a frame was rendered.
func (e *Engine) Frame(p Painter, now float64) bool {
	if p == nil {
		return false
	}
	dt, ok := e.sched.Tick(now)
	if !ok {
		return false
	}
	e.step(p, now, dt)
	return true
}
