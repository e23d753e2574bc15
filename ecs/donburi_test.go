package ecs

import (
	"testing"

	"github.com/tapkit/gesturepad"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitGesture(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []gesturepad.GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e gesturepad.GestureEvent) {
		received = append(received, e)
	})

	sink.EmitGesture(gesturepad.GestureEvent{
		Kind:    gesturepad.GesturePinch,
		Phase:   gesturepad.PhaseChanged,
		AnchorX: 100,
		AnchorY: 200,
		Factor:  1.5,
	})

	sink.EmitGesture(gesturepad.GestureEvent{
		Kind:  gesturepad.GestureTapUndo,
		Phase: gesturepad.PhaseEnded,
	})

	// Events are queued — process them.
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Kind != gesturepad.GesturePinch || e0.Factor != 1.5 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.AnchorX != 100 || e0.AnchorY != 200 {
		t.Errorf("event 0 anchor: (%v,%v)", e0.AnchorX, e0.AnchorY)
	}

	e1 := received[1]
	if e1.Kind != gesturepad.GestureTapUndo || e1.Phase != gesturepad.PhaseEnded {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink gesturepad.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	GestureEventType.Subscribe(world, func(w donburi.World, e gesturepad.GestureEvent) {
		count1++
	})
	GestureEventType.Subscribe(world, func(w donburi.World, e gesturepad.GestureEvent) {
		count2++
	})

	sink.EmitGesture(gesturepad.GestureEvent{Kind: gesturepad.GesturePan, Phase: gesturepad.PhaseChanged})
	GestureEventType.ProcessEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
