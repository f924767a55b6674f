package trigger

import (
	"github.com/jakecoffman/cp"

	"github.com/phanxgames/splash"
)

// Spawner drops square boxes into a space: the first after Delay seconds,
// then one every RepeatRate seconds while Playing.
type Spawner struct {
	Space    *cp.Space
	Position splash.Vec2
	// RepeatRate is the interval between drops. Zero drops a single box.
	RepeatRate float64
	Delay      float64
	Playing    bool
	// Size is the box side length and Mass its mass.
	Size float64
	Mass float64

	started bool
	elapsed float64
	next    float64
	spawned int
	onSpawn func(*cp.Shape)
}

// NewSpawner returns a playing spawner dropping 0.5 unit, 1 kg boxes at pos
// once per second.
func NewSpawner(space *cp.Space, pos splash.Vec2) *Spawner {
	return &Spawner{
		Space:      space,
		Position:   pos,
		RepeatRate: 1,
		Playing:    true,
		Size:       0.5,
		Mass:       1,
	}
}

// OnSpawn sets a hook called with every new shape, typically Watcher.Track.
func (s *Spawner) OnSpawn(fn func(*cp.Shape)) {
	s.onSpawn = fn
}

// Spawned returns the number of boxes dropped so far.
func (s *Spawner) Spawned() int { return s.spawned }

// Reset rewinds the timer so the next drop happens Delay seconds from now.
func (s *Spawner) Reset() {
	s.started = false
	s.elapsed = 0
	s.spawned = 0
}

// Update advances the timer by dt and returns the shapes dropped during it.
func (s *Spawner) Update(dt float64) []*cp.Shape {
	if !s.Playing || s.Space == nil || dt <= 0 {
		return nil
	}
	if !s.started {
		s.started = true
		s.elapsed = 0
		s.next = s.Delay
	}
	s.elapsed += dt

	var out []*cp.Shape
	for s.Playing && s.elapsed >= s.next {
		out = append(out, s.spawn())
		if s.RepeatRate <= 0 {
			s.Playing = false
			break
		}
		s.next += s.RepeatRate
	}
	return out
}

func (s *Spawner) spawn() *cp.Shape {
	body := s.Space.AddBody(cp.NewBody(s.Mass, cp.MomentForBox(s.Mass, s.Size, s.Size)))
	body.SetPosition(cp.Vector{X: s.Position.X, Y: s.Position.Y})

	shape := s.Space.AddShape(cp.NewBox(body, s.Size, s.Size, 0))
	shape.SetElasticity(0)
	shape.SetFriction(0.8)

	s.spawned++
	if s.onSpawn != nil {
		s.onSpawn(shape)
	}
	return shape
}
