package splash

import "testing"

func TestImpactForce(t *testing.T) {
	tests := []struct {
		name            string
		speed, mult, mx float64
		want            float64
	}{
		{"falling clamped", -20, 0.3, 5, -5},
		{"rising within cap", 10, 0.3, 5, 3},
		{"falling within cap", -1, 0.3, 5, -0.3},
		{"rising clamped", 100, 0.3, 5, 5},
		{"at rest", 0, 0.3, 5, 0},
		{"zero multiplier", -50, 0, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ImpactForce(tt.speed, tt.mult, tt.mx)
			if !approxEqual(got, tt.want, epsilon) {
				t.Errorf("ImpactForce(%v, %v, %v) = %v, want %v", tt.speed, tt.mult, tt.mx, got, tt.want)
			}
		})
	}
}

func TestImpactRadius(t *testing.T) {
	im := Impact{Extents: Vec2{0.5, 2}}
	if got := im.Radius(4.15); !approxEqual(got, 2.075, epsilon) {
		t.Errorf("Radius = %v, want 2.075", got)
	}
}

func TestImpactFromAboveAndSpawnPoint(t *testing.T) {
	tests := []struct {
		name      string
		centerY   float64
		fromAbove bool
		spawnY    float64
	}{
		{"above", 1.5, true, 1.0},
		{"on the surface", 0, true, -0.5},
		{"below", -2, false, -1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			im := Impact{Center: Vec2{3, tt.centerY}, Extents: Vec2{0.5, 0.5}}
			if got := im.FromAbove(0); got != tt.fromAbove {
				t.Errorf("FromAbove = %v, want %v", got, tt.fromAbove)
			}
			sp := im.SpawnPoint(0)
			if sp.X != 3 || !approxEqual(sp.Y, tt.spawnY, epsilon) {
				t.Errorf("SpawnPoint = %+v, want (3, %v)", sp, tt.spawnY)
			}
		})
	}
}

func TestInsideCircle(t *testing.T) {
	c := Vec2{1, 1}
	tests := []struct {
		p    Vec2
		r    float64
		want bool
	}{
		{Vec2{1, 1}, 0, true},
		{Vec2{2, 1}, 1, true},
		{Vec2{1, 3}, 1.5, false},
		{Vec2{1.6, 1.7}, 1, true},
	}
	for _, tt := range tests {
		if got := insideCircle(tt.p, c, tt.r); got != tt.want {
			t.Errorf("insideCircle(%v, %v, %v) = %v, want %v", tt.p, c, tt.r, got, tt.want)
		}
	}
}
