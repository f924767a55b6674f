package ecs

import (
	"log"

	"github.com/phanxgames/splash"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// WaterData is the component payload for a water entity.
type WaterData struct {
	Body *splash.Body
}

// Water is the Donburi component holding a water body.
var Water = donburi.NewComponentType[WaterData]()

// ImpactEvent asks the water on Target to splash.
type ImpactEvent struct {
	Target donburi.Entity
	Impact splash.Impact
}

// ImpactEventType is the Donburi event type for impacts. Subscribe to it to
// observe splashes, e.g. to spawn particles.
var ImpactEventType = events.NewEventType[ImpactEvent]()

var waterQuery = donburi.NewQuery(filter.Contains(Water))

// NewWater creates an entity carrying body.
func NewWater(world donburi.World, body *splash.Body) donburi.Entity {
	e := world.Create(Water)
	Water.Set(world.Entry(e), &WaterData{Body: body})
	return e
}

// Splash queues an impact on target. It is applied by the next ProcessEvents
// or Step.
func Splash(world donburi.World, target donburi.Entity, im splash.Impact) {
	ImpactEventType.Publish(world, ImpactEvent{Target: target, Impact: im})
}

// RegisterImpactHandler subscribes the handler that applies impact events to
// their target's water body. Register it once per world.
func RegisterImpactHandler(world donburi.World) {
	ImpactEventType.Subscribe(world, handleImpact)
}

func handleImpact(world donburi.World, ev ImpactEvent) {
	if !world.Valid(ev.Target) {
		log.Printf("splash/ecs: impact on invalid entity %v dropped", ev.Target)
		return
	}
	entry := world.Entry(ev.Target)
	if !entry.HasComponent(Water) {
		log.Printf("splash/ecs: impact on entity %v without water dropped", ev.Target)
		return
	}
	if w := Water.Get(entry); w.Body != nil {
		w.Body.Splash(ev.Impact)
	}
}

// Step delivers queued impacts, then advances every water entity by dt.
func Step(world donburi.World, dt float64) {
	ImpactEventType.ProcessEvents(world)
	waterQuery.Each(world, func(entry *donburi.Entry) {
		if w := Water.Get(entry); w.Body != nil {
			w.Body.Update(dt)
		}
	})
}
