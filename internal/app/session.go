package app

import (
	"errors"
	"fmt"

	"sand-ca/internal/core"
	"sand-ca/internal/logging"
	"sand-ca/internal/sand"
)

// Button is the pointer action held during a drag.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonPaint
	ButtonErase
)

// Sound receives feedback from the session. audio.Player implements it.
type Sound interface {
	Click(density int)
	SetActivity(moves, cells int)
}

// Session turns front-end input into simulation commands. The ebiten game
// and the terminal front end share it.
type Session struct {
	sim   *sand.Simulation
	sound Sound
	seed  int64
	held  Button
}

// NewSession wraps sim. sound may be nil.
func NewSession(sim *sand.Simulation, seed int64, sound Sound) *Session {
	return &Session{sim: sim, seed: seed, sound: sound}
}

// Build looks up a registered simulation and constructs it from params.
func Build(name string, params map[string]string) (*sand.Simulation, error) {
	factory, ok := core.Sims()[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (have %v)", name, core.SimNames())
	}
	sim, ok := factory(params).(*sand.Simulation)
	if !ok {
		return nil, fmt.Errorf("sim %q is not a sand simulation", name)
	}
	return sim, nil
}

// Sim returns the wrapped simulation.
func (s *Session) Sim() *sand.Simulation { return s.sim }

// Seed returns the seed used by Reset(0).
func (s *Session) Seed() int64 { return s.seed }

// Key applies the command bound to r and reports whether r was bound.
func (s *Session) Key(r rune) bool {
	ev, ok := s.sim.EventForKey(r)
	if !ok {
		return false
	}
	if err := s.sim.Apply(ev); err != nil {
		logging.WithError(err).WithField("key", string(r)).Warn("key command rejected")
		return true
	}
	logging.WithField("event", ev.Kind.String()).Debugf("key %q", r)
	return true
}

// Reset clears the world. A zero seed reuses the session seed.
func (s *Session) Reset(seed int64) {
	if seed == 0 {
		seed = s.seed
	}
	s.seed = seed
	if err := s.sim.Apply(sand.Event{Kind: sand.EventReset, Arg: seed}); err != nil {
		logging.WithError(err).Error("reset")
		return
	}
	logging.WithField("seed", seed).Info("world reset")
}

// Pointer handles a held or released pointer at grid coordinates. Positions
// outside the grid are ignored.
func (s *Session) Pointer(x, y int, b Button) {
	if b == ButtonNone {
		s.held = ButtonNone
		return
	}
	kind := sand.EventPaint
	if b == ButtonErase {
		kind = sand.EventErase
	}
	err := s.sim.Apply(sand.Event{Kind: kind, X: x, Y: y})
	if errors.Is(err, sand.ErrOutOfBounds) {
		return
	}
	if err != nil {
		logging.WithError(err).Warn("placement rejected")
		return
	}
	if s.held != b && s.sound != nil {
		density := 0
		if b == ButtonPaint {
			if m, ok := s.sim.Table().Lookup(s.sim.SelectedMaterial()); ok {
				density = m.Density
			}
		}
		s.sound.Click(density)
	}
	s.held = b
}

// Step advances the simulation n frames and reports the activity of the last
// one to the sound sink.
func (s *Session) Step(n int) {
	for i := 0; i < n; i++ {
		s.sim.Step()
	}
	if n <= 0 {
		return
	}
	last := s.sim.LastFrame()
	if s.sound != nil {
		s.sound.SetActivity(last.Moves, s.sim.Size().Cells())
	}
	if last.Frame%600 == 0 {
		logging.WithFields(map[string]any{
			"frame":    last.Frame,
			"occupied": s.sim.CountOccupied(),
			"active":   s.sim.CountActive(),
			"moves":    last.Moves,
		}).Debug("frame stats")
	}
}
