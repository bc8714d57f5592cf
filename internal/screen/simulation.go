// Package screen runs the particle field as an ebiten game.
package screen

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/log"
)

// Options configures a Simulation.
type Options struct {
	Clock        field.Clock // defaults to a SystemClock
	Logger       *log.Logger
	SnapshotPath string // where the S key saves; empty disables it
}

// Simulation adapts a field.Engine to ebiten. Update feeds input and
// visibility into the engine and Draw renders one frame, both on ebiten's
// single game loop.
type Simulation struct {
	engine  *field.Engine
	painter *Painter
	clock   field.Clock
	logger  *log.Logger

	snapshotPath string

	primed  bool
	focused bool
	stopped atomic.Bool

	cursorSeen     bool
	prevMX, prevMY int
	touchIDs       []ebiten.TouchID
}

// NewSimulation wraps e. The engine's first frame is measured from now.
func NewSimulation(e *field.Engine, opts Options) *Simulation {
	clock := opts.Clock
	if clock == nil {
		clock = field.NewSystemClock()
	}
	s := &Simulation{
		engine:       e,
		painter:      NewPainter(),
		clock:        clock,
		logger:       opts.Logger,
		snapshotPath: opts.SnapshotPath,
		focused:      true,
	}
	e.Start(clock.Now())
	s.watchPageTeardown()
	return s
}

// Stop ends the game loop at the next Update. Safe to call from any goroutine.
func (s *Simulation) Stop() {
	s.stopped.Store(true)
}

// Update is called each tick by Ebitengine
func (s *Simulation) Update() error {
	if s.stopped.Load() {
		s.engine.Stop()
	}
	if s.engine.Stopped() {
		return ebiten.Termination
	}
	now := s.clock.Now()

	if focused := ebiten.IsFocused(); focused != s.focused {
		s.focused = focused
		s.engine.SetHidden(!focused, now)
	}
	s.handleInput()
	return nil
}

// Draw is called each frame by Ebitengine
func (s *Simulation) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	s.painter.Target(screen, s.engine.Surface().Transform())
	if !s.primed {
		s.engine.Prime(s.painter)
		s.primed = true
	}
	s.engine.Frame(s.painter, s.clock.Now())
}

// Layout sizes the backing buffer to the window at native resolution. The
// engine keeps drawing in logical pixels through the surface transform.
func (s *Simulation) Layout(outsideWidth, outsideHeight int) (int, int) {
	ratio := 1.0
	if m := ebiten.Monitor(); m != nil {
		ratio = m.DeviceScaleFactor()
	}
	if s.engine.Configure(float64(outsideWidth), float64(outsideHeight), ratio) {
		s.primed = false
	}
	return s.engine.Surface().PhysicalSize()
}

// handleInput processes pointer and keyboard input
func (s *Simulation) handleInput() {
	surface := s.engine.Surface()

	mx, my := ebiten.CursorPosition()
	if !s.cursorSeen {
		// The first reading is where the cursor already was, not a move.
		s.prevMX, s.prevMY = mx, my
		s.cursorSeen = true
	} else if mx != s.prevMX || my != s.prevMY {
		s.prevMX, s.prevMY = mx, my
		s.engine.PointerMove(surface.ToLogical(float64(mx), float64(my)))
	}

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(s.touchIDs[0])
		s.engine.PointerMove(surface.ToLogical(float64(tx), float64(ty)))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		s.engine.PointerDown()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) || len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		s.engine.PointerUp()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		s.toggleVariant()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := s.saveSnapshot(); err != nil {
			s.logger.Errorf("screen: %v", err)
		}
	}
}

func (s *Simulation) toggleVariant() {
	cfg := s.engine.Config()
	next := field.VariantClassic
	if cfg.Variant == field.VariantClassic {
		next = field.VariantNeon
	}
	if err := s.engine.SetConfig(cfg.WithVariant(next)); err != nil {
		s.logger.Errorf("screen: switch variant: %v", err)
	}
}

// saveSnapshot writes the live population to the snapshot path.
func (s *Simulation) saveSnapshot() error {
	if s.snapshotPath == "" {
		return nil
	}
	f, err := os.Create(s.snapshotPath)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := s.engine.SaveSnapshot(f, s.clock.Now()); err != nil {
		f.Close()
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	s.logger.Infof("screen: saved %d particles to %s", s.engine.Population().Len(), s.snapshotPath)
	return nil
}
