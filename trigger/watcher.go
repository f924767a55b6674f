package trigger

import (
	"github.com/jakecoffman/cp"

	"github.com/phanxgames/splash"
)

// SplashFunc is called once per impact, after the impulse has been applied.
// spawn is where splash particles should appear and fromAbove tells which
// side of the surface the shape came from.
type SplashFunc func(im splash.Impact, spawn splash.Vec2, fromAbove bool)

type tracked struct {
	shape  *cp.Shape
	layer  uint
	inside bool
}

// Watcher turns shapes crossing a body's surface into splashes.
type Watcher struct {
	Body *splash.Body
	// Mask selects which layers splash. A shape tracked on layer L splashes
	// only if Mask&L != 0.
	Mask uint

	shapes   []tracked
	onSplash SplashFunc
}

// NewWatcher creates a watcher for body that splashes every layer.
func NewWatcher(body *splash.Body) *Watcher {
	return &Watcher{Body: body, Mask: ^uint(0)}
}

// OnSplash sets the impact callback. nil removes it.
func (w *Watcher) OnSplash(fn SplashFunc) {
	w.onSplash = fn
}

// Track starts watching shape on the given layer bit. Tracking a shape twice
// updates its layer.
func (w *Watcher) Track(shape *cp.Shape, layer uint) {
	for i := range w.shapes {
		if w.shapes[i].shape == shape {
			w.shapes[i].layer = layer
			return
		}
	}
	w.shapes = append(w.shapes, tracked{shape: shape, layer: layer})
}

// Untrack stops watching shape.
func (w *Watcher) Untrack(shape *cp.Shape) {
	for i := range w.shapes {
		if w.shapes[i].shape == shape {
			w.shapes = append(w.shapes[:i], w.shapes[i+1:]...)
			return
		}
	}
}

// Tracked returns the number of shapes being watched.
func (w *Watcher) Tracked() int { return len(w.shapes) }

// Update checks every tracked shape against the surface and splashes the
// ones that just entered it. Call it after space.Step. It returns the
// number of splashes.
func (w *Watcher) Update() int {
	if w.Body == nil {
		return 0
	}
	left, right := w.Body.Surface()
	surface := splash.Rect{X: left.X, Y: left.Y, Width: right.X - left.X}

	n := 0
	for i := range w.shapes {
		t := &w.shapes[i]
		bb := t.shape.BB()
		box := splash.Rect{X: bb.L, Y: bb.B, Width: bb.R - bb.L, Height: bb.T - bb.B}
		overlapping := surface.Intersects(box)

		entered := overlapping && !t.inside
		t.inside = overlapping
		if !entered || w.Mask&t.layer == 0 {
			continue
		}

		im := impactOf(t.shape, bb)
		w.Body.Splash(im)
		n++
		if w.onSplash != nil {
			w.onSplash(im, im.SpawnPoint(left.Y), im.FromAbove(left.Y))
		}
	}
	return n
}

func impactOf(shape *cp.Shape, bb cp.BB) splash.Impact {
	body := shape.Body()
	pos := body.Position()
	vel := body.Velocity()
	return splash.Impact{
		Center:        splash.Vec2{X: pos.X, Y: pos.Y},
		Extents:       splash.Vec2{X: (bb.R - bb.L) / 2, Y: (bb.T - bb.B) / 2},
		VerticalSpeed: vel.Y,
	}
}
