package splash

import (
	"encoding/json"
	"fmt"
	"log"
)

// scriptStep represents a single action in a water script.
type scriptStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Radius  float64 `json:"radius,omitempty"`
	Force   float64 `json:"force,omitempty"`
	ExtentX float64 `json:"extentX,omitempty"`
	ExtentY float64 `json:"extentY,omitempty"`
	Speed   float64 `json:"speed,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a water script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// Runner replays a scripted sequence of impulses, splashes and ticks against
// a Body, recording height snapshots along the way. Scripts make wave
// behavior reproducible for regression tests and tuning sessions.
type Runner struct {
	steps     []scriptStep
	cursor    int
	snapshots map[string][]float64
	order     []string
}

// LoadScript parses a JSON script.
//
//	{"steps": [
//		{"action": "impulse", "x": 0, "y": 0, "radius": 0.5, "force": 2},
//		{"action": "splash", "x": 1, "y": 0.2, "extentX": 0.1, "extentY": 0.1, "speed": -12},
//		{"action": "step", "frames": 30},
//		{"action": "snapshot", "label": "settled"}
//	]}
func LoadScript(jsonData []byte) (*Runner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse water script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse water script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "impulse", "splash", "step", "snapshot":
		default:
			return nil, fmt.Errorf("parse water script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Runner{steps: sc.Steps, snapshots: make(map[string][]float64)}, nil
}

// Done reports whether every step has been executed.
func (r *Runner) Done() bool {
	return r.cursor >= len(r.steps)
}

// Next executes one script step against body, ticking it with dt for step
// actions. It returns false once the script is exhausted.
func (r *Runner) Next(body *Body, dt float64) bool {
	if r.Done() {
		return false
	}
	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "impulse":
		body.Impulse(Vec2{st.X, st.Y}, st.Radius, st.Force)
	case "splash":
		body.Splash(Impact{
			Center:        Vec2{st.X, st.Y},
			Extents:       Vec2{st.ExtentX, st.ExtentY},
			VerticalSpeed: st.Speed,
		})
	case "step":
		frames := st.Frames
		if frames < 1 {
			frames = 1
		}
		for range frames {
			body.Update(dt)
		}
	case "snapshot":
		label := st.Label
		if label == "" {
			label = fmt.Sprintf("step-%d", r.cursor-1)
		}
		if _, ok := r.snapshots[label]; ok {
			log.Printf("splash: script snapshot %q recorded twice, keeping the latest", label)
		} else {
			r.order = append(r.order, label)
		}
		r.snapshots[label] = append([]float64(nil), body.Field().Heights()...)
	}
	return true
}

// Run executes the remaining steps.
func (r *Runner) Run(body *Body, dt float64) {
	for r.Next(body, dt) {
	}
}

// Snapshot returns the heights recorded under label.
func (r *Runner) Snapshot(label string) ([]float64, bool) {
	h, ok := r.snapshots[label]
	return h, ok
}

// Labels returns snapshot labels in the order they were first recorded.
func (r *Runner) Labels() []string {
	return r.order
}
