// Package ecs provides ECS adapters for petal.
package ecs

import (
	"github.com/phanxgames/petal"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StyleEventType is the Donburi event type for skipped attribute writes.
var StyleEventType = events.NewEventType[petal.StyleEvent]()

// PhaseEventType is the Donburi event type for interaction phase changes.
var PhaseEventType = events.NewEventType[petal.PhaseEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are queued on StyleEventType and PhaseEventType and delivered by
// ProcessEvents.
func NewDonburiStore(world donburi.World) petal.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitStyleEvent(event petal.StyleEvent) {
	StyleEventType.Publish(s.world, event)
}

func (s *donburiStore) EmitPhaseEvent(event petal.PhaseEvent) {
	PhaseEventType.Publish(s.world, event)
}
