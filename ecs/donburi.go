// Package ecs provides ECS adapters for gesturepad.
package ecs

import (
	"github.com/tapkit/gesturepad"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for gesture events.
// Subscribe to this in your ECS systems to receive pinch, rotate, pan,
// and undo/redo tap events.
var GestureEventType = events.NewEventType[gesturepad.GestureEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Gesture events are published to GestureEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) gesturepad.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitGesture(event gesturepad.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
