package gesturepad

import "math"

// Synthetic touch injection. Injected frames are consumed one per Advance
// call, taking the identical path through the recognizer as real touches,
// so scripted demos and tests exercise the full gesture pipeline.

// Synthetic touch IDs start high so they never collide with platform IDs.
const syntheticTouchBase = 1 << 20

// tapSpread is the horizontal distance between synthetic tap fingers.
const tapSpread = 40.0

// InjectFrame queues one frame of touches. An empty call queues a frame
// with no touches, which ends the current synthetic sequence.
func (c *Controller) InjectFrame(touches ...TouchPoint) {
	c.injectQueue = append(c.injectQueue, touches)
}

// PendingInjected returns the number of queued synthetic frames.
func (c *Controller) PendingInjected() int {
	return len(c.injectQueue)
}

// InjectTap queues a discrete tap with the given finger count centered at
// (x, y): two held frames followed by a release frame. Two fingers map to
// undo, three to redo.
func (c *Controller) InjectTap(fingers int, x, y float64) {
	if fingers < 1 {
		fingers = 1
	}
	frame := make([]TouchPoint, fingers)
	offset := -tapSpread * float64(fingers-1) / 2
	for i := range frame {
		frame[i] = TouchPoint{
			ID: syntheticTouchBase + int64(i),
			X:  x + offset + tapSpread*float64(i),
			Y:  y,
		}
	}
	c.InjectFrame(frame...)
	c.InjectFrame(frame...)
	c.InjectFrame()
}

// InjectPinch queues a two-finger pinch about anchor: the fingers sit
// fromSpread apart on the first frame and move linearly to toSpread apart
// over the given number of frames, then release. Minimum frames is 2.
func (c *Controller) InjectPinch(anchor Vec2, fromSpread, toSpread float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		half := (fromSpread + (toSpread-fromSpread)*t) / 2
		c.InjectFrame(
			TouchPoint{ID: syntheticTouchBase, X: anchor.X - half, Y: anchor.Y},
			TouchPoint{ID: syntheticTouchBase + 1, X: anchor.X + half, Y: anchor.Y},
		)
	}
	c.InjectFrame()
}

// InjectRotate queues a two-finger twist about anchor: the fingers sit on
// opposite ends of a diameter of the given radius and sweep from
// fromAngle to toAngle (radians) over the given number of frames, then
// release. Minimum frames is 2.
func (c *Controller) InjectRotate(anchor Vec2, fromAngle, toAngle, radius float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		a := fromAngle + (toAngle-fromAngle)*t
		sin, cos := math.Sincos(a)
		c.InjectFrame(
			TouchPoint{ID: syntheticTouchBase, X: anchor.X - radius*cos, Y: anchor.Y - radius*sin},
			TouchPoint{ID: syntheticTouchBase + 1, X: anchor.X + radius*cos, Y: anchor.Y + radius*sin},
		)
	}
	c.InjectFrame()
}

// InjectPan queues a one-finger drag from one point to another over the
// given number of frames, then release. Minimum frames is 2.
func (c *Controller) InjectPan(from, to Vec2, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		c.InjectFrame(TouchPoint{
			ID: syntheticTouchBase,
			X:  from.X + (to.X-from.X)*t,
			Y:  from.Y + (to.Y-from.Y)*t,
		})
	}
	c.InjectFrame()
}
