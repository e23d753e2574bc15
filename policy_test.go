package gesturepad

import "testing"

var allKinds = []GestureKind{
	GesturePinch, GestureRotate, GesturePan, GestureTapUndo, GestureTapRedo,
}

func TestContinuousKinds(t *testing.T) {
	for _, k := range []GestureKind{GesturePinch, GestureRotate, GesturePan} {
		if !k.Continuous() {
			t.Errorf("%v should be continuous", k)
		}
	}
	for _, k := range []GestureKind{GestureTapUndo, GestureTapRedo} {
		if k.Continuous() {
			t.Errorf("%v should be discrete", k)
		}
	}
}

func TestContinuousGesturesRunSimultaneously(t *testing.T) {
	continuous := []GestureKind{GesturePinch, GestureRotate, GesturePan}
	for _, a := range continuous {
		for _, b := range continuous {
			if !CanRecognizeSimultaneously(a, b) {
				t.Errorf("CanRecognizeSimultaneously(%v, %v) = false, want true", a, b)
			}
		}
	}
}

func TestTapsNeverRunSimultaneously(t *testing.T) {
	for _, tap := range []GestureKind{GestureTapUndo, GestureTapRedo} {
		for _, other := range allKinds {
			if tap == other {
				continue
			}
			if CanRecognizeSimultaneously(tap, other) {
				t.Errorf("CanRecognizeSimultaneously(%v, %v) = true, want false", tap, other)
			}
		}
	}
}

func TestSimultaneitySymmetric(t *testing.T) {
	for _, a := range allKinds {
		for _, b := range allKinds {
			if CanRecognizeSimultaneously(a, b) != CanRecognizeSimultaneously(b, a) {
				t.Errorf("asymmetric for (%v, %v)", a, b)
			}
		}
	}
}

func TestSimultaneityReflexive(t *testing.T) {
	for _, k := range allKinds {
		if !CanRecognizeSimultaneously(k, k) {
			t.Errorf("CanRecognizeSimultaneously(%v, %v) = false, want true", k, k)
		}
	}
}

func TestTapsWaitForContinuousFailure(t *testing.T) {
	continuous := []GestureKind{GesturePinch, GestureRotate, GesturePan}
	for _, tap := range []GestureKind{GestureTapUndo, GestureTapRedo} {
		for _, c := range continuous {
			if !RequiresFailureOf(tap, c) {
				t.Errorf("RequiresFailureOf(%v, %v) = false, want true", tap, c)
			}
			if RequiresFailureOf(c, tap) {
				t.Errorf("RequiresFailureOf(%v, %v) = true, want false", c, tap)
			}
		}
	}
}

func TestContinuousNeverWait(t *testing.T) {
	continuous := []GestureKind{GesturePinch, GestureRotate, GesturePan}
	for _, a := range continuous {
		for _, b := range continuous {
			if RequiresFailureOf(a, b) {
				t.Errorf("RequiresFailureOf(%v, %v) = true, want false", a, b)
			}
		}
	}
}

func TestGestureKindStrings(t *testing.T) {
	for _, k := range allKinds {
		if k.String() == "" || k.String() == "unknown" {
			t.Errorf("kind %d has no name", k)
		}
	}
}
