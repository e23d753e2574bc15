package gesturepad

// Gesture admission policy. The recognizer consults these predicates; they
// are pure functions over gesture kinds with no recognizer state, so the
// policy can be inspected and tested on its own.

// admissiblePairs marks which distinct gesture kinds may recognize within
// the same touch sequence. The three continuous gestures are mutually
// admissible, so one multi-touch sequence can pinch, rotate, and pan at
// once. The discrete taps pair with nothing.
var admissiblePairs = [5][5]bool{
	GesturePinch:  {GestureRotate: true, GesturePan: true},
	GestureRotate: {GesturePinch: true, GesturePan: true},
	GesturePan:    {GesturePinch: true, GestureRotate: true},
}

// CanRecognizeSimultaneously reports whether gestures a and b may both
// recognize within the same touch sequence. A gesture is trivially
// simultaneous with itself.
func CanRecognizeSimultaneously(a, b GestureKind) bool {
	if a == b {
		return true
	}
	if int(a) >= len(admissiblePairs) || int(b) >= len(admissiblePairs) {
		return false
	}
	return admissiblePairs[a][b]
}

// RequiresFailureOf reports whether gesture a must wait for gesture b to
// definitively fail before a may fire. Only the discrete taps wait, and
// they wait on every continuous gesture.
func RequiresFailureOf(a, b GestureKind) bool {
	return !a.Continuous() && b.Continuous()
}

// continuousKinds lists the gestures a tap must outwait, in a fixed order
// for deterministic iteration.
var continuousKinds = [3]GestureKind{GesturePinch, GestureRotate, GesturePan}
