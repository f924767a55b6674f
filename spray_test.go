package splash

import (
	"math"
	"testing"
)

func fixedSprayConfig(max int) SprayConfig {
	return SprayConfig{
		MaxDroplets: max,
		PerForce:    2,
		Lifetime:    Range{1, 1},
		Speed:       Range{4, 4},
		Angle:       Range{0, 0},
		Size:        Range{0.1, 0.1},
		Gravity:     Vec2{0, 0},
		Color:       ColorWhite,
	}
}

func TestRangeRandom(t *testing.T) {
	if v := (Range{2, 2}).Random(); v != 2 {
		t.Errorf("degenerate range = %v, want 2", v)
	}
	r := Range{1, 3}
	for range 100 {
		if v := r.Random(); v < 1 || v > 3 {
			t.Fatalf("Random() = %v, want in [1, 3]", v)
		}
	}
}

func TestNewSprayPool(t *testing.T) {
	if s := NewSpray(SprayConfig{}); len(s.droplets) != 128 {
		t.Errorf("default pool = %d, want 128", len(s.droplets))
	}
	if s := NewSpray(fixedSprayConfig(10)); len(s.droplets) != 10 {
		t.Errorf("pool = %d, want 10", len(s.droplets))
	}
}

func TestSprayEmitCapsAtPool(t *testing.T) {
	s := NewSpray(fixedSprayConfig(10))
	if n := s.Emit(Vec2{}, 6); n != 6 {
		t.Errorf("Emit(6) = %d, want 6", n)
	}
	if n := s.Emit(Vec2{}, 6); n != 4 {
		t.Errorf("Emit(6) into 4 free slots = %d, want 4", n)
	}
	if s.Alive() != 10 {
		t.Errorf("Alive() = %d, want 10", s.Alive())
	}
	s.Reset()
	if s.Alive() != 0 {
		t.Errorf("Alive() = %d after Reset, want 0", s.Alive())
	}
}

func TestSprayUpdateMovesAndFades(t *testing.T) {
	s := NewSpray(fixedSprayConfig(4))
	s.Emit(Vec2{1, 2}, 1)
	s.Update(0.25)

	d := s.droplets[0]
	if !approxEqual(d.x, 1, epsilon) || !approxEqual(d.y, 3, epsilon) {
		t.Errorf("position = (%v,%v), want (1,3)", d.x, d.y)
	}
	if !approxEqual(d.size, 0.075, epsilon) {
		t.Errorf("size = %v, want 0.075", d.size)
	}
	if math.Abs(float64(d.alpha)-0.75) > 1e-6 {
		t.Errorf("alpha = %v, want 0.75", d.alpha)
	}
}

func TestSprayGravity(t *testing.T) {
	cfg := fixedSprayConfig(4)
	cfg.Gravity = Vec2{0, -8}
	s := NewSpray(cfg)
	s.Emit(Vec2{}, 1)
	s.Update(0.5)
	if v := s.droplets[0].vy; !approxEqual(v, 0, epsilon) {
		t.Errorf("vy = %v, want 0 after 0.5s against gravity", v)
	}
}

func TestSprayDropletsDie(t *testing.T) {
	s := NewSpray(fixedSprayConfig(8))
	s.Emit(Vec2{}, 5)
	s.Update(0.5)
	if s.Alive() != 5 {
		t.Fatalf("Alive() = %d, want 5", s.Alive())
	}
	s.Update(0.5)
	if s.Alive() != 0 {
		t.Errorf("Alive() = %d after lifetime, want 0", s.Alive())
	}
}

func TestSpraySplashScalesWithForce(t *testing.T) {
	b := newTestBody(t)
	s := NewSpray(fixedSprayConfig(64))

	// -10 * 0.3 = -3 force, 2 droplets per unit.
	n := s.Splash(b, Impact{Center: Vec2{0, 0.3}, Extents: Vec2{0.2, 0.2}, VerticalSpeed: -10})
	if n != 6 {
		t.Errorf("Splash() = %d droplets, want 6", n)
	}
	// Spawned at the object's bottom edge.
	if d := s.droplets[0]; !approxEqual(d.y, 0.1, epsilon) {
		t.Errorf("droplet y = %v, want 0.1", d.y)
	}

	// Clamped at MaxForce 5 -> 10 droplets.
	s.Reset()
	if n := s.Splash(b, Impact{VerticalSpeed: -100}); n != 10 {
		t.Errorf("Splash() clamped = %d droplets, want 10", n)
	}
}

func TestSprayBuildQuads(t *testing.T) {
	s := NewSpray(fixedSprayConfig(4))
	s.Emit(Vec2{1, 1}, 2)
	s.buildQuads(identityTransform)

	if len(s.verts) != 8 || len(s.inds) != 12 {
		t.Fatalf("buffers = %d verts / %d indices, want 8 / 12", len(s.verts), len(s.inds))
	}
	v := s.verts[0]
	if !approxEqual(float64(v.DstX), 0.95, 1e-6) || !approxEqual(float64(v.DstY), 0.95, 1e-6) {
		t.Errorf("first corner = (%v,%v), want (0.95,0.95)", v.DstX, v.DstY)
	}
	if s.inds[6] != 4 {
		t.Errorf("second quad starts at %d, want 4", s.inds[6])
	}
}
