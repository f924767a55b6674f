package splash

import "math"

// WavePoint is one sample along the water surface.
type WavePoint struct {
	Velocity   float64
	Position   float64
	RestHeight float64
}

// WaveField is a row of coupled spring-mass points forming the top edge of a
// water body, ordered left to right. The first and last points are anchors
// and never move.
//
// A WaveField is owned by a single simulation loop. Step, InjectImpulse and
// Regenerate must not run concurrently; reads of Heights belong between
// Steps.
type WaveField struct {
	// Origin is the world-space position of the surface midpoint at rest.
	// Sample i sits at Origin + (x_i, Position_i).
	Origin Vec2

	config  Config
	points  []WavePoint
	xs      []float64 // local x of each sample, -Width/2 .. +Width/2
	heights []float64 // refreshed from Position after every Step
}

// NewWaveField builds a field at rest from cfg.
func NewWaveField(cfg Config) (*WaveField, error) {
	f := &WaveField{}
	if err := f.Regenerate(cfg); err != nil {
		return nil, err
	}
	return f, nil
}

// Regenerate rebuilds every point from cfg: SampleCount points evenly spaced
// across Width, at rest height 0 with zero velocity. Prior state is fully
// replaced. If cfg is invalid a *ConfigError is returned and the field is
// left unchanged. Origin is kept.
func (f *WaveField) Regenerate(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	n := cfg.SampleCount

	// Grow buffers to high-water mark.
	if cap(f.points) < n {
		f.points = make([]WavePoint, n)
		f.xs = make([]float64, n)
		f.heights = make([]float64, n)
	}
	f.points = f.points[:n]
	f.xs = f.xs[:n]
	f.heights = f.heights[:n]

	for i := range f.points {
		f.points[i] = WavePoint{}
		f.xs[i] = float64(i)/float64(n-1)*cfg.Width - cfg.Width/2
		f.heights[i] = 0
	}
	f.config = cfg
	return nil
}

// Config returns the config the field was last built with.
func (f *WaveField) Config() Config { return f.config }

// Len returns the number of points, anchors included.
func (f *WaveField) Len() int { return len(f.points) }

// Point returns a copy of point i.
func (f *WaveField) Point(i int) WavePoint { return f.points[i] }

// Points returns the point slice. The returned slice MUST NOT be mutated.
func (f *WaveField) Points() []WavePoint { return f.points }

// Heights returns one height per point, refreshed after every Step. The
// returned slice is reused across Steps and MUST NOT be mutated.
func (f *WaveField) Heights() []float64 { return f.heights }

// Spacing returns the horizontal distance between neighboring points.
func (f *WaveField) Spacing() float64 {
	return f.config.Width / float64(len(f.points)-1)
}

// SamplePosition returns the world-space position of point i.
func (f *WaveField) SamplePosition(i int) Vec2 {
	return Vec2{X: f.Origin.X + f.xs[i], Y: f.Origin.Y + f.points[i].Position}
}

// Step advances the field by one fixed timestep of dt seconds. A
// non-positive dt does nothing.
func (f *WaveField) Step(dt float64) {
	if dt <= 0 {
		return
	}
	c := &f.config
	k := c.SpeedMultiplier * dt
	last := len(f.points) - 1

	// Spring-damper phase. Each point reads only its own prior state, so
	// sequential left-to-right application equals a snapshot pass. Position
	// is set from velocity, not integrated.
	for i := 1; i < last; i++ {
		p := &f.points[i]
		x := p.Position - p.RestHeight
		accel := -c.SpringConstant*x - c.Damping*p.Velocity
		p.Position = p.Velocity * k
		p.Velocity += accel * k
	}

	// Propagation phase. Writes land in place, left to right, so later
	// reads in the same pass see earlier writes. Anchors receive nothing.
	for range c.Iterations {
		for i := 1; i < last; i++ {
			pos := f.points[i].Position
			if i-1 > 0 {
				f.points[i-1].Velocity += c.Spread * (pos - f.points[i-1].Position) * k
			}
			if i+1 < last {
				f.points[i+1].Velocity += c.Spread * (pos - f.points[i+1].Position) * k
			}
		}
	}

	for i := range f.points {
		f.heights[i] = f.points[i].Position
	}
}

// InjectImpulse overwrites the velocity of every point whose world position
// lies within radius of center (inclusive) with force. Positive force pushes
// the surface up. Anchors are skipped. When several impulses claim the same
// point before a Step, the last one wins.
func (f *WaveField) InjectImpulse(center Vec2, radius, force float64) {
	last := len(f.points) - 1
	for i := 1; i < last; i++ {
		if insideCircle(f.SamplePosition(i), center, radius) {
			f.points[i].Velocity = force
		}
	}
}

// Energy returns the sum of squared velocity and squared displacement over
// the interior points.
func (f *WaveField) Energy() float64 {
	var e float64
	for i := 1; i < len(f.points)-1; i++ {
		p := f.points[i]
		x := p.Position - p.RestHeight
		e += p.Velocity*p.Velocity + x*x
	}
	return e
}

// MaxAmplitude returns the largest absolute displacement from rest.
func (f *WaveField) MaxAmplitude() float64 {
	var m float64
	for _, p := range f.points {
		if a := math.Abs(p.Position - p.RestHeight); a > m {
			m = a
		}
	}
	return m
}

// Finite reports whether every position and velocity is finite. A false
// result means the config was outside its stable range (see Config.Stable).
func (f *WaveField) Finite() bool {
	for _, p := range f.points {
		if math.IsNaN(p.Position) || math.IsInf(p.Position, 0) ||
			math.IsNaN(p.Velocity) || math.IsInf(p.Velocity, 0) {
			return false
		}
	}
	return true
}
