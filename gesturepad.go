package gesturepad

// Vec2 is a 2D vector used for positions, anchors, and deltas throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Size is a viewport size in pixels.
type Size struct {
	Width, Height float64
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

// GestureKind identifies one of the five recognizers.
type GestureKind uint8

const (
	GesturePinch   GestureKind = iota // continuous two-finger scale
	GestureRotate                     // continuous two-finger rotation
	GesturePan                        // continuous one-or-more-finger drag
	GestureTapUndo                    // discrete two-finger tap
	GestureTapRedo                    // discrete three-finger tap
)

// Continuous reports whether the gesture recognizes over a span of frames
// rather than firing once at sequence end.
func (k GestureKind) Continuous() bool {
	return k == GesturePinch || k == GestureRotate || k == GesturePan
}

// String returns the gesture name for logs and test failures.
func (k GestureKind) String() string {
	switch k {
	case GesturePinch:
		return "pinch"
	case GestureRotate:
		return "rotate"
	case GesturePan:
		return "pan"
	case GestureTapUndo:
		return "tap-undo"
	case GestureTapRedo:
		return "tap-redo"
	default:
		return "unknown"
	}
}

// GesturePhase is the lifecycle phase a recognizer reports with an event.
type GesturePhase uint8

const (
	PhasePossible GesturePhase = iota // touch sequence active, nothing recognized yet
	PhaseBegan                        // continuous gesture crossed the dead zone
	PhaseChanged                      // continuous gesture emitted a delta
	PhaseEnded                        // sequence finished with the gesture recognized
	PhaseFailed                       // sequence finished without recognition
)

// String returns the phase name.
func (p GesturePhase) String() string {
	switch p {
	case PhasePossible:
		return "possible"
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// TouchPoint is one touch sample for a single frame. ID is the platform
// touch identifier and stays stable for the lifetime of the touch.
type TouchPoint struct {
	ID   int64
	X, Y float64
}

// GestureEvent carries recognized gesture data for external consumers
// (see [Controller.SetEventSink] and the ecs submodule).
type GestureEvent struct {
	Kind  GestureKind
	Phase GesturePhase
	// Anchor fields (valid for pinch and rotate)
	AnchorX float64
	AnchorY float64
	// Factor is the since-last-frame scale ratio (valid for pinch)
	Factor float64
	// Delta is the since-last-frame rotation in radians (valid for rotate)
	Delta float64
	// DeltaX/DeltaY is the since-last-frame translation (valid for pan)
	DeltaX float64
	DeltaY float64
	// X/Y is the tap location (valid for tap-undo and tap-redo)
	X float64
	Y float64
}

// EventSink receives every recognized gesture after the controller has
// applied it. Optional ECS integration hangs off this interface.
type EventSink interface {
	EmitGesture(event GestureEvent)
}
