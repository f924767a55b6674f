package splash

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Range is a min/max range sampled uniformly.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// droplet holds per-droplet state. Unexported; managed by Spray.
type droplet struct {
	x, y      float64
	vx, vy    float64
	life      float64 // remaining lifetime in seconds
	maxLife   float64
	startSize float64
	size      float64
	alpha     float32
}

// SprayConfig controls the droplets thrown up by a splash.
type SprayConfig struct {
	// MaxDroplets is the pool size. New droplets are silently dropped when full.
	MaxDroplets int
	// PerForce is the number of droplets per unit of impulse force.
	PerForce float64
	// Lifetime is the range of droplet lifetimes in seconds.
	Lifetime Range
	// Speed is the range of launch speeds in world units per second.
	Speed Range
	// Angle is the range of launch angles in radians, 0 pointing straight up.
	Angle Range
	// Size is the range of droplet sizes at birth. Droplets shrink to zero.
	Size Range
	// Gravity is the constant acceleration applied to every droplet.
	Gravity Vec2
	Color   Color
	Blend   BlendMode
}

// DefaultSprayConfig returns a light white spray for a 10-unit pool.
func DefaultSprayConfig() SprayConfig {
	return SprayConfig{
		MaxDroplets: 256,
		PerForce:    4,
		Lifetime:    Range{0.4, 0.8},
		Speed:       Range{2, 5},
		Angle:       Range{-0.6, 0.6},
		Size:        Range{0.05, 0.12},
		Gravity:     Vec2{0, -9.8},
		Color:       Color{0.85, 0.93, 1, 0.9},
	}
}

// Spray is a pool of splash droplets simulated on the CPU.
type Spray struct {
	config   SprayConfig
	droplets []droplet
	alive    int
	verts    []ebiten.Vertex
	inds     []uint16
}

// NewSpray creates a Spray with a preallocated pool.
func NewSpray(cfg SprayConfig) *Spray {
	max := cfg.MaxDroplets
	if max <= 0 {
		max = 128
	}
	return &Spray{config: cfg, droplets: make([]droplet, max)}
}

// Config returns a pointer to the spray's config for live tuning.
func (s *Spray) Config() *SprayConfig { return &s.config }

// Alive returns the number of live droplets.
func (s *Spray) Alive() int { return s.alive }

// Reset kills every droplet.
func (s *Spray) Reset() { s.alive = 0 }

// Emit launches up to count droplets from at. It returns how many fit in the
// pool.
func (s *Spray) Emit(at Vec2, count int) int {
	n := 0
	for ; n < count && s.alive < len(s.droplets); n++ {
		s.spawn(at)
	}
	return n
}

// Splash emits droplets for an impact on body: PerForce droplets per unit of
// the impulse the impact produced, from the impact's spawn point.
func (s *Spray) Splash(body *Body, im Impact) int {
	cfg := body.Config()
	force := ImpactForce(im.VerticalSpeed, cfg.ForceMultiplier, cfg.MaxForce)
	count := int(math.Ceil(math.Abs(force) * s.config.PerForce))
	return s.Emit(im.SpawnPoint(body.Y), count)
}

func (s *Spray) spawn(at Vec2) {
	d := &s.droplets[s.alive]

	angle := s.config.Angle.Random()
	speed := s.config.Speed.Random()
	d.x, d.y = at.X, at.Y
	d.vx = math.Sin(angle) * speed
	d.vy = math.Cos(angle) * speed

	d.life = s.config.Lifetime.Random()
	if d.life <= 0 {
		d.life = 1.0
	}
	d.maxLife = d.life
	d.startSize = s.config.Size.Random()
	d.size = d.startSize
	d.alpha = 1

	s.alive++
}

// Update advances every droplet by dt seconds, swap-removing dead ones.
func (s *Spray) Update(dt float64) {
	gx := s.config.Gravity.X * dt
	gy := s.config.Gravity.Y * dt

	i := 0
	for i < s.alive {
		d := &s.droplets[i]
		d.life -= dt
		if d.life <= 0 {
			s.alive--
			s.droplets[i] = s.droplets[s.alive]
			continue
		}
		d.vx += gx
		d.vy += gy
		d.x += d.vx * dt
		d.y += d.vy * dt

		t := 1 - d.life/d.maxLife
		d.size = d.startSize * (1 - t)
		d.alpha = lerp32(1, 0, float32(t))
		i++
	}
}

// Draw renders every live droplet as a square. geom maps world space to dst
// pixels; see ScreenGeoM.
func (s *Spray) Draw(dst *ebiten.Image, geom ebiten.GeoM) {
	if s.alive == 0 {
		return
	}
	s.buildQuads(geomTransform(geom))

	var triOp ebiten.DrawTrianglesOptions
	triOp.Blend = s.config.Blend.EbitenBlend()
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles(s.verts, s.inds, ensureWhitePixel(), &triOp)
}

// buildQuads fills the vertex and index buffers with one quad per droplet.
func (s *Spray) buildQuads(transform [6]float64) {
	needV := s.alive * 4
	needI := s.alive * 6
	if cap(s.verts) < needV {
		s.verts = make([]ebiten.Vertex, needV)
	}
	s.verts = s.verts[:needV]
	if cap(s.inds) < needI {
		s.inds = make([]uint16, needI)
	}
	s.inds = s.inds[:needI]

	a, b, c, d, tx, ty := transform[0], transform[1], transform[2], transform[3], transform[4], transform[5]
	col := s.config.Color
	for i := 0; i < s.alive; i++ {
		p := &s.droplets[i]
		h := p.size / 2
		alpha := float32(col.A) * p.alpha
		corners := [4][2]float64{
			{p.x - h, p.y - h}, {p.x + h, p.y - h},
			{p.x - h, p.y + h}, {p.x + h, p.y + h},
		}
		for j, k := range corners {
			s.verts[i*4+j] = ebiten.Vertex{
				DstX:   float32(a*k[0] + c*k[1] + tx),
				DstY:   float32(b*k[0] + d*k[1] + ty),
				SrcX:   0.5,
				SrcY:   0.5,
				ColorR: float32(col.R) * alpha,
				ColorG: float32(col.G) * alpha,
				ColorB: float32(col.B) * alpha,
				ColorA: alpha,
			}
		}
		base := uint16(i * 4)
		ii := i * 6
		s.inds[ii+0] = base
		s.inds[ii+1] = base + 1
		s.inds[ii+2] = base + 2
		s.inds[ii+3] = base + 1
		s.inds[ii+4] = base + 3
		s.inds[ii+5] = base + 2
	}
}

// lerp32 linearly interpolates between a and b by t (float32).
func lerp32(a, b, t float32) float32 {
	return a + (b-a)*t
}
