package ecs

import (
	"github.com/phanxgames/splat"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// WindowEventType is the Donburi event type for splat window events.
var WindowEventType = events.NewEventType[splat.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Window events are published to WindowEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) splat.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event splat.Event) {
	WindowEventType.Publish(s.world, event)
}
