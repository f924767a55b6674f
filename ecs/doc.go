// Package ecs provides ECS adapters for splash water bodies.
//
// [NewWater] attaches a [splash.Body] to a [Donburi] entity, and [Splash]
// publishes impacts as typed events. Game systems that detect collisions
// publish; [Step] delivers the queued impacts and then ticks every water
// entity.
//
// Usage:
//
//	world := donburi.NewWorld()
//	ecs.RegisterImpactHandler(world)
//	pool := ecs.NewWater(world, body)
//
//	// In a collision system:
//	ecs.Splash(world, pool, impact)
//
//	// Once per fixed tick:
//	ecs.Step(world, 1.0/60)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
