package splash

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Limits enforced by Config.Validate.
const (
	MinSampleCount = 2
	MaxSampleCount = 500
	MinIterations  = 1
	MaxIterations  = 10
	MaxSpeedMult   = 20.0
	MinMaxForce    = 1.0
	MaxMaxForce    = 50.0
	MinRadiusMult  = 1.0
	MaxRadiusMult  = 10.0
)

// Config tunes a water body. The spring fields drive WaveField.Step, the
// force fields convert impacts into impulses, and the mesh fields define the
// sampled surface.
type Config struct {
	// SpringConstant pulls each point back toward its rest height.
	SpringConstant float64 `yaml:"spring_constant"`
	// Damping bleeds velocity every tick.
	Damping float64 `yaml:"damping"`
	// Spread scales how strongly neighbors exchange velocity.
	Spread float64 `yaml:"spread"`
	// Iterations is the number of propagation passes per tick.
	Iterations int `yaml:"iterations"`
	// SpeedMultiplier scales dt in every update rule.
	SpeedMultiplier float64 `yaml:"speed_multiplier"`

	// ForceMultiplier converts an object's vertical speed into an impulse.
	ForceMultiplier float64 `yaml:"force_multiplier"`
	// MaxForce caps the magnitude of a converted impulse.
	MaxForce float64 `yaml:"max_force"`
	// CollisionRadiusMultiplier scales an object's half-width into the
	// impact radius.
	CollisionRadiusMultiplier float64 `yaml:"collision_radius_multiplier"`

	// SampleCount is the number of points along the surface, anchors included.
	SampleCount int `yaml:"sample_count"`
	// Width is the horizontal extent of the surface in world units.
	Width float64 `yaml:"width"`
	// Height is the depth of the water mesh below the surface.
	Height float64 `yaml:"height"`
}

// DefaultConfig returns the tuning the water asset kit ships with.
func DefaultConfig() Config {
	return Config{
		SpringConstant:            1.4,
		Damping:                   1.1,
		Spread:                    6.5,
		Iterations:                8,
		SpeedMultiplier:           5.5,
		ForceMultiplier:           0.3,
		MaxForce:                  5,
		CollisionRadiusMultiplier: 4.15,
		SampleCount:               70,
		Width:                     10,
		Height:                    4,
	}
}

// Validate reports the first out-of-range field as a *ConfigError.
func (c Config) Validate() error {
	if c.SampleCount < MinSampleCount || c.SampleCount > MaxSampleCount {
		return configErrorf("sample_count", "must be in [%d, %d], got %d", MinSampleCount, MaxSampleCount, c.SampleCount)
	}
	if !(c.Width > 0) || math.IsInf(c.Width, 0) {
		return configErrorf("width", "must be positive, got %v", c.Width)
	}
	if !(c.Height > 0) || math.IsInf(c.Height, 0) {
		return configErrorf("height", "must be positive, got %v", c.Height)
	}
	if c.Iterations < MinIterations || c.Iterations > MaxIterations {
		return configErrorf("iterations", "must be in [%d, %d], got %d", MinIterations, MaxIterations, c.Iterations)
	}
	if !(c.SpeedMultiplier > 0) || c.SpeedMultiplier > MaxSpeedMult {
		return configErrorf("speed_multiplier", "must be in (0, %v], got %v", MaxSpeedMult, c.SpeedMultiplier)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"spring_constant", c.SpringConstant},
		{"damping", c.Damping},
		{"spread", c.Spread},
		{"force_multiplier", c.ForceMultiplier},
	} {
		if !(f.v >= 0) || math.IsInf(f.v, 0) {
			return configErrorf(f.name, "must be finite and non-negative, got %v", f.v)
		}
	}
	if c.MaxForce < MinMaxForce || c.MaxForce > MaxMaxForce {
		return configErrorf("max_force", "must be in [%v, %v], got %v", MinMaxForce, MaxMaxForce, c.MaxForce)
	}
	if c.CollisionRadiusMultiplier < MinRadiusMult || c.CollisionRadiusMultiplier > MaxRadiusMult {
		return configErrorf("collision_radius_multiplier", "must be in [%v, %v], got %v", MinRadiusMult, MaxRadiusMult, c.CollisionRadiusMultiplier)
	}
	return nil
}

// Stable reports whether stepping with this config at the given dt keeps
// every interior mode bounded.
//
// Propagation only reads positions, and positions are set from the previous
// velocity. The anchors receive no velocity, so the interior points couple
// as a free-ended chain and each of its Laplacian modes λ follows
//
//	v[n+1] = c·v[n] - q·v[n-1]
//	c = 1 - k·Damping - k·P·λ,  q = SpringConstant·k²
//	k = SpeedMultiplier·dt,     P = Iterations·Spread·k
//
// which is bounded iff q < 1 and |c| < 1 + q. Unstable configs are not
// clamped; their state grows until it overflows.
func (c Config) Stable(dt float64) bool {
	interior := c.SampleCount - 2
	if dt <= 0 || interior < 1 {
		// Nothing integrates.
		return true
	}
	k := c.SpeedMultiplier * dt
	p := float64(c.Iterations) * c.Spread * k
	q := c.SpringConstant * k * k
	if q >= 1 {
		return false
	}
	for j := 0; j < interior; j++ {
		lambda := 2 - 2*math.Cos(math.Pi*float64(j)/float64(interior))
		cj := 1 - k*c.Damping - k*p*lambda
		if math.Abs(cj) >= 1+q {
			return false
		}
	}
	return true
}

// LoadConfig parses YAML over DefaultConfig, so absent keys keep their
// defaults and explicit zeros are honoured, then validates the result.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("splash: failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a YAML config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("splash: read config %s: %w", path, err)
	}
	return LoadConfig(data)
}
