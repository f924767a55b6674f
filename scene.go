package splash

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultFixedStep is the physics tick used when NewSimulation gets a
// non-positive step.
const DefaultFixedStep = 1.0 / 60.0

// defaultMaxSubsteps bounds the ticks run by one Advance call.
const defaultMaxSubsteps = 8

// Simulation owns a set of water bodies and steps them at a fixed timestep.
// It is the explicit context a game passes around; there is no global
// instance.
type Simulation struct {
	// MaxSubsteps caps the ticks run per Advance. Time beyond the cap is
	// dropped so a long frame cannot cascade into longer ones.
	MaxSubsteps int

	bodies []*Body
	step   float64
	accum  float64
	ticks  uint64
	debug  bool
}

// NewSimulation creates an empty simulation ticking every fixedStep seconds.
func NewSimulation(fixedStep float64) *Simulation {
	if fixedStep <= 0 {
		fixedStep = DefaultFixedStep
	}
	return &Simulation{MaxSubsteps: defaultMaxSubsteps, step: fixedStep}
}

// FixedStep returns the tick length in seconds.
func (s *Simulation) FixedStep() float64 { return s.step }

// Ticks returns the number of fixed ticks run so far.
func (s *Simulation) Ticks() uint64 { return s.ticks }

// Add appends a body. Adding a body twice is a no-op.
func (s *Simulation) Add(b *Body) {
	for _, o := range s.bodies {
		if o == b {
			return
		}
	}
	s.bodies = append(s.bodies, b)
}

// Remove removes a body from the simulation.
func (s *Simulation) Remove(b *Body) {
	for i, o := range s.bodies {
		if o == b {
			s.bodies = append(s.bodies[:i], s.bodies[i+1:]...)
			return
		}
	}
}

// Bodies returns the simulation's bodies. The returned slice MUST NOT be mutated.
func (s *Simulation) Bodies() []*Body {
	return s.bodies
}

// Advance accumulates frameDt seconds and runs as many whole fixed ticks as
// fit, up to MaxSubsteps. It returns the number of ticks run.
func (s *Simulation) Advance(frameDt float64) int {
	if frameDt > 0 {
		s.accum += frameDt
	}
	limit := s.MaxSubsteps
	if limit <= 0 {
		limit = defaultMaxSubsteps
	}
	n := 0
	for s.accum >= s.step && n < limit {
		s.tick()
		s.accum -= s.step
		n++
	}
	if n == limit && s.accum >= s.step {
		s.accum = 0
	}
	return n
}

// tick runs one fixed step on every body.
func (s *Simulation) tick() {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	for _, b := range s.bodies {
		b.Update(s.step)
	}
	s.ticks++
	if s.debug {
		s.debugLog(time.Since(t0))
	}
}

// Update advances the simulation by one ebiten tick (1/TPS seconds). It
// matches the ebiten.Game Update signature.
func (s *Simulation) Update() error {
	s.Advance(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw renders every body onto screen in insertion order. geom maps world
// space to screen pixels; see ScreenGeoM.
func (s *Simulation) Draw(screen *ebiten.Image, geom ebiten.GeoM) {
	for _, b := range s.bodies {
		b.Draw(screen, geom)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, per-tick
// timing and energy stats are logged to stderr and non-finite water state
// prints a warning.
func (s *Simulation) SetDebugMode(enabled bool) {
	s.debug = enabled
}
