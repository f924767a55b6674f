package splash

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Body simultaneously.
// Create one via TweenPosition or TweenTint and call Update(dt) each frame.
// The group auto-applies values and marks the body dirty, so impulses and
// steps see the moved surface.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Body
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenPosition creates a TweenGroup that moves body.X and body.Y to the
// given world coordinates, e.g. a rising tide or a drifting pool.
func TweenPosition(body *Body, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: body}
	g.tweens[0] = gween.New(float32(body.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(body.Y), float32(toY), duration, fn)
	g.fields[0] = &body.X
	g.fields[1] = &body.Y
	return g
}

// TweenTint creates a TweenGroup that animates all four components of
// body.Tint to the target color over the specified duration.
func TweenTint(body *Body, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: body}
	g.tweens[0] = gween.New(float32(body.Tint.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(body.Tint.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(body.Tint.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(body.Tint.A), float32(to.A), duration, fn)
	g.fields[0] = &body.Tint.R
	g.fields[1] = &body.Tint.G
	g.fields[2] = &body.Tint.B
	g.fields[3] = &body.Tint.A
	return g
}
