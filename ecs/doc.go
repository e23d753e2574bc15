// Package ecs provides ECS adapters for gesturepad's gesture event stream.
//
// The primary adapter is [NewDonburiSink], which bridges gesture events
// (pinch, rotate, pan, undo/redo taps) into a [Donburi] world as typed
// events. Subscribe to [GestureEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	pad.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
