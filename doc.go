// Package gesturepad implements direct manipulation of a 2D surface with
// multi-touch gestures for [Ebitengine].
//
// Gesturepad maintains two independent state slices: an accumulated affine
// transform for a manipulable surface (pinch to scale, twist to rotate,
// drag to pan), and a strip of visibility indicators driven by undo/redo
// taps (two fingers to undo, three to redo). Gesture recognition, the
// admission policy between gestures, rendering, and a windowed run loop
// are all included.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg := gesturepad.DefaultConfig()
//	pad := gesturepad.NewController(cfg)
//	gesturepad.Run(pad, cfg)
//
// For full control, implement [ebiten.Game] yourself and feed the
// controller one frame of touches at a time:
//
//	type Game struct{ pad *gesturepad.Controller }
//
//	func (g *Game) Update() error {
//		g.pad.Advance(readTouches())
//		return nil
//	}
//
// # State model
//
// [Surface] holds the accumulated transform. Each gesture callback
// composes an anchor-relative increment onto it; the total scale is
// clamped to [Surface.MinScale, Surface.MaxScale] ([DefaultMinScale],
// [DefaultMaxScale] unless configured). [IndicatorStrip] holds the
// saturating undo/redo counter: element i is visible iff the counter
// exceeds i.
//
// Recognition follows a fixed admission policy (see
// [CanRecognizeSimultaneously]): pinch, rotate, and pan recognize
// together within one touch sequence, while the discrete taps fire only
// after every continuous gesture has failed for that sequence.
//
// Gesturepad is single-threaded: all state mutation happens on the game
// loop in response to [Controller.Advance].
//
// [Ebitengine]: https://ebitengine.org
package gesturepad
