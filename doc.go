// Package splash is an interactive 2D water surface for [Ebitengine].
//
// A [WaveField] is a row of coupled spring-mass points along the top edge
// of a water body. Objects hitting the water overwrite the velocity of the
// points near the impact, and every fixed tick the field runs a
// spring-damper pass followed by several neighbor propagation passes, so the
// disturbance spreads out as waves.
//
// # Quick start
//
//	body, err := splash.NewBody("pool", splash.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	sim := splash.NewSimulation(1.0 / 60)
//	sim.Add(body)
//
//	// On impact:
//	body.Splash(splash.Impact{
//		Center:        splash.Vec2{X: 1.2, Y: 0.1},
//		Extents:       splash.Vec2{X: 0.25, Y: 0.25},
//		VerticalSpeed: -9,
//	})
//
//	// In ebiten.Game:
//	func (g *Game) Update() error        { return g.sim.Update() }
//	func (g *Game) Draw(s *ebiten.Image) { g.sim.Draw(s, g.view) }
//
// World space is Y-up. Use [ScreenGeoM] to map it onto a screen.
//
// # The update rule
//
// Each tick, for every interior point, position is set from velocity (not
// integrated) and velocity is pulled back by the spring and damping terms.
// Then, Iterations times, each interior point pushes velocity into its
// interior neighbors in proportion to their height difference, scanning
// left to right and writing in place. The first and last points are anchors
// and never move.
//
// No parameter combination is clamped. Use [Config.Stable] to check a
// config against a timestep before shipping it; an unstable config grows
// until it overflows, which [WaveField.Finite] detects.
//
// # Collaborators
//
// Package splash/trigger turns jakecoffman/cp bodies crossing the surface
// into impacts and spawns falling blocks. The nested splash/ecs module
// bridges bodies and impacts into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package splash
