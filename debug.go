package splash

import (
	"fmt"
	"os"
	"time"
)

// BodyStats is a snapshot of a body's wave state.
type BodyStats struct {
	Name         string
	Energy       float64
	MaxAmplitude float64
	Splashes     int
	Finite       bool
}

// Stats returns the body's current wave statistics.
func (b *Body) Stats() BodyStats {
	return BodyStats{
		Name:         b.Name,
		Energy:       b.field.Energy(),
		MaxAmplitude: b.field.MaxAmplitude(),
		Splashes:     b.splashes,
		Finite:       b.field.Finite(),
	}
}

// debugLog prints tick timing and per-body stats to stderr.
func (s *Simulation) debugLog(elapsed time.Duration) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[splash] tick %d: %d bodies | step: %v\n",
		s.ticks, len(s.bodies), elapsed)
	for _, b := range s.bodies {
		st := b.Stats()
		_, _ = fmt.Fprintf(os.Stderr, "[splash] %q energy: %.6g | amplitude: %.6g | splashes: %d\n",
			st.Name, st.Energy, st.MaxAmplitude, st.Splashes)
		if !st.Finite {
			_, _ = fmt.Fprintf(os.Stderr, "[splash] warning: body %q is non-finite; config is outside its stable range at dt=%v\n",
				st.Name, s.step)
		}
	}
}
