package trigger

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/phanxgames/splash"
)

func TestSpawnerDelayAndRepeat(t *testing.T) {
	space := cp.NewSpace()
	s := NewSpawner(space, splash.Vec2{X: 0, Y: 4})
	s.Delay = 0.5
	s.RepeatRate = 0.25

	if got := s.Update(0.25); len(got) != 0 {
		t.Errorf("before delay: spawned %d, want 0", len(got))
	}
	if got := s.Update(0.25); len(got) != 1 {
		t.Errorf("at delay: spawned %d, want 1", len(got))
	}
	if got := s.Update(0.5); len(got) != 2 {
		t.Errorf("two intervals: spawned %d, want 2", len(got))
	}
	if s.Spawned() != 3 {
		t.Errorf("Spawned() = %d, want 3", s.Spawned())
	}
}

func TestSpawnerShape(t *testing.T) {
	space := cp.NewSpace()
	s := NewSpawner(space, splash.Vec2{X: 1, Y: 4})
	s.Size = 1

	got := s.Update(tick)
	if len(got) != 1 {
		t.Fatalf("spawned %d, want 1", len(got))
	}
	shape := got[0]
	pos := shape.Body().Position()
	if pos.X != 1 || pos.Y != 4 {
		t.Errorf("position = %v, want (1, 4)", pos)
	}
	space.Step(tick)
	bb := shape.BB()
	if w := bb.R - bb.L; w < 0.99 || w > 1.01 {
		t.Errorf("box width = %v, want 1", w)
	}
}

func TestSpawnerSingleShot(t *testing.T) {
	s := NewSpawner(cp.NewSpace(), splash.Vec2{})
	s.RepeatRate = 0

	if got := s.Update(tick); len(got) != 1 {
		t.Errorf("spawned %d, want 1", len(got))
	}
	if s.Playing {
		t.Error("single-shot spawner should stop playing")
	}
	if got := s.Update(10); len(got) != 0 {
		t.Errorf("stopped spawner dropped %d boxes", len(got))
	}
}

func TestSpawnerStoppedAndReset(t *testing.T) {
	s := NewSpawner(cp.NewSpace(), splash.Vec2{})
	s.Playing = false
	if got := s.Update(5); len(got) != 0 {
		t.Errorf("paused spawner dropped %d boxes", len(got))
	}

	s.Playing = true
	s.Delay = 1
	s.Update(1)
	s.Reset()
	if s.Spawned() != 0 {
		t.Errorf("Spawned() = %d after Reset, want 0", s.Spawned())
	}
	if got := s.Update(0.5); len(got) != 0 {
		t.Errorf("after Reset: spawned %d before delay", len(got))
	}
	if got := s.Update(0.5); len(got) != 1 {
		t.Errorf("after Reset: spawned %d at delay, want 1", len(got))
	}
}

func TestSpawnerFeedsWatcher(t *testing.T) {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: -10})
	pool := newPool(t)
	w := NewWatcher(pool)

	s := NewSpawner(space, splash.Vec2{X: 0, Y: 2})
	s.RepeatRate = 0
	s.OnSpawn(func(shape *cp.Shape) { w.Track(shape, 1) })

	for range 120 {
		s.Update(tick)
		space.Step(tick)
		w.Update()
	}
	if w.Tracked() != 1 {
		t.Errorf("Tracked() = %d, want 1", w.Tracked())
	}
	if pool.Splashes() != 1 {
		t.Errorf("pool.Splashes() = %d, want 1", pool.Splashes())
	}
}
