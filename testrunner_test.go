package splash

import (
	"strings"
	"testing"
)

const basicScript = `{"steps": [
	{"action": "impulse", "x": 0, "y": 0, "radius": 0.5, "force": 2},
	{"action": "step", "frames": 1},
	{"action": "snapshot", "label": "one"},
	{"action": "step", "frames": 59},
	{"action": "snapshot"}
]}`

func TestLoadScriptValid(t *testing.T) {
	r, err := LoadScript([]byte(basicScript))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if r.Done() {
		t.Error("fresh runner should not be Done")
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"invalid json", `{not json`, "parse water script"},
		{"empty", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "drain"}]}`, `step 0: unknown action "drain"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestRunnerMatchesDirectCalls(t *testing.T) {
	r, err := LoadScript([]byte(basicScript))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	scripted := newTestBody(t)
	r.Run(scripted, 1.0/60)
	if !r.Done() {
		t.Fatal("runner should be Done after Run")
	}
	if r.Next(scripted, 1.0/60) {
		t.Error("Next after Done should return false")
	}

	direct := newTestBody(t)
	direct.Impulse(Vec2{0, 0}, 0.5, 2)
	direct.Update(1.0 / 60)
	want := append([]float64(nil), direct.Field().Heights()...)

	one, ok := r.Snapshot("one")
	if !ok {
		t.Fatal(`snapshot "one" missing`)
	}
	for i := range want {
		if one[i] != want[i] {
			t.Errorf("one[%d] = %v, want %v", i, one[i], want[i])
		}
	}

	// Snapshots are copies, not views of the live heights.
	if one[2] == scripted.Field().Heights()[2] {
		t.Error("snapshot should not track later steps")
	}
}

func TestRunnerLabels(t *testing.T) {
	r, err := LoadScript([]byte(basicScript))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	r.Run(newTestBody(t), 1.0/60)

	labels := r.Labels()
	if len(labels) != 2 || labels[0] != "one" || labels[1] != "step-4" {
		t.Errorf("Labels() = %v, want [one step-4]", labels)
	}
	if _, ok := r.Snapshot("missing"); ok {
		t.Error("unknown label should not be found")
	}
}

func TestRunnerDuplicateLabelKeepsLatest(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "snapshot", "label": "s"},
		{"action": "impulse", "x": 0, "y": 0, "radius": 0.5, "force": 2},
		{"action": "step"},
		{"action": "snapshot", "label": "s"}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	r.Run(newTestBody(t), 1.0/60)

	if len(r.Labels()) != 1 {
		t.Errorf("Labels() = %v, want one entry", r.Labels())
	}
	s, _ := r.Snapshot("s")
	if s[2] == 0 {
		t.Error("duplicate label should keep the latest snapshot")
	}
}

func TestRunnerSplash(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "splash", "x": 0, "y": 0.1, "extentX": 0.2, "extentY": 0.2, "speed": -30}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	b := newTestBody(t)
	r.Run(b, 1.0/60)
	if b.Splashes() != 1 {
		t.Errorf("Splashes() = %d, want 1", b.Splashes())
	}
	if v := b.Field().Point(2).Velocity; v != -5 {
		t.Errorf("p2 velocity = %v, want -5", v)
	}
}

func TestRunnerDeterministic(t *testing.T) {
	run := func() []float64 {
		r, err := LoadScript([]byte(basicScript))
		if err != nil {
			t.Fatalf("LoadScript: %v", err)
		}
		r.Run(newTestBody(t), 1.0/60)
		s, _ := r.Snapshot("step-4")
		return s
	}
	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("run differs at %d: %v vs %v", i, a[i], b[i])
		}
	}
}
