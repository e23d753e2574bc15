package gesturepad

import "math"

// --- Constants ---

const (
	maxTouches       = 10
	defaultDeadZone  = 4.0 // pixels
	defaultTapFrames = 18  // ~300ms at 60 TPS
)

// --- Gesture callback contexts ---

// PinchContext carries one frame of pinch data. Factor is the ratio of the
// current to the previous finger distance; the recognizer resets its own
// tracking each frame, so consumers compose the factor directly.
type PinchContext struct {
	AnchorX, AnchorY float64
	Factor           float64
}

// RotateContext carries one frame of rotation data. Delta is the change of
// the inter-finger angle since the previous frame, in radians.
type RotateContext struct {
	AnchorX, AnchorY float64
	Delta            float64
}

// PanContext carries one frame of pan data: centroid movement since the
// previous frame.
type PanContext struct {
	DeltaX, DeltaY float64
}

// TapContext carries a recognized discrete tap. Phase is always PhaseEnded:
// taps fire once, on completion of the touch sequence.
type TapContext struct {
	Kind GestureKind // GestureTapUndo or GestureTapRedo
	X, Y float64     // centroid of the sequence's last frame
}

func (t TapContext) Phase() GesturePhase { return PhaseEnded }

// --- Per-touch state ---

type touchState struct {
	active bool
	id     int64
	startX float64
	startY float64
	x, y   float64
}

// --- Handler registry ---

type pinchHandler struct {
	id uint32
	fn func(PinchContext)
}

type rotateHandler struct {
	id uint32
	fn func(RotateContext)
}

type panHandler struct {
	id uint32
	fn func(PanContext)
}

type tapHandler struct {
	id uint32
	fn func(TapContext)
}

type handlerEvent uint8

const (
	eventPinch handlerEvent = iota
	eventRotate
	eventPan
	eventTap
)

type handlerRegistry struct {
	pinch  []pinchHandler
	rotate []rotateHandler
	pan    []panHandler
	tap    []tapHandler
	nextID uint32
}

// CallbackHandle allows removing a registered gesture callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event handlerEvent
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case eventPinch:
		h.reg.pinch = removePinchHandler(h.reg.pinch, h.id)
	case eventRotate:
		h.reg.rotate = removeRotateHandler(h.reg.rotate, h.id)
	case eventPan:
		h.reg.pan = removePanHandler(h.reg.pan, h.id)
	case eventTap:
		h.reg.tap = removeTapHandler(h.reg.tap, h.id)
	}
}

func removePinchHandler(s []pinchHandler, id uint32) []pinchHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pinchHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeRotateHandler(s []rotateHandler, id uint32) []rotateHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = rotateHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removePanHandler(s []panHandler, id uint32) []panHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = panHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeTapHandler(s []tapHandler, id uint32) []tapHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = tapHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Recognizer ---

// Recognizer turns per-frame touch samples into gesture callbacks. It is
// frame-driven and has no platform dependency: feed it one Advance call
// per frame with whatever touches are currently down (real or synthetic).
//
// Within one touch sequence (first finger down to last finger up) the
// three continuous gestures recognize together once cumulative movement
// crosses the dead zone, per the admission policy. If the sequence ends
// without any of them beginning — and quickly enough — a two- or
// three-finger tap fires instead.
type Recognizer struct {
	deadZone  float64
	tapFrames int

	handlers handlerRegistry

	touches [maxTouches]touchState

	seqActive bool
	seqFrames int
	maxCount  int
	began     bool // continuous gestures crossed the dead zone

	pairValid bool
	pairSlot0 int
	pairSlot1 int
	prevDist  float64
	prevAngle float64

	prevCentroid Vec2
	prevCount    int

	lastX, lastY float64
}

// NewRecognizer creates a Recognizer with the default dead zone and tap
// window.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		deadZone:  defaultDeadZone,
		tapFrames: defaultTapFrames,
	}
}

// SetDeadZone sets the movement in pixels before continuous gestures begin
// (and beyond which taps fail).
func (r *Recognizer) SetDeadZone(pixels float64) {
	if pixels > 0 {
		r.deadZone = pixels
	}
}

// SetTapFrames sets the maximum touch-sequence length, in frames, for a
// tap to recognize.
func (r *Recognizer) SetTapFrames(frames int) {
	if frames > 0 {
		r.tapFrames = frames
	}
}

// OnPinch registers a callback for pinch deltas.
func (r *Recognizer) OnPinch(fn func(PinchContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.pinch = append(r.handlers.pinch, pinchHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: eventPinch}
}

// OnRotate registers a callback for rotation deltas.
func (r *Recognizer) OnRotate(fn func(RotateContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.rotate = append(r.handlers.rotate, rotateHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: eventRotate}
}

// OnPan registers a callback for pan deltas.
func (r *Recognizer) OnPan(fn func(PanContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.pan = append(r.handlers.pan, panHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: eventPan}
}

// OnTap registers a callback for discrete taps. The context's Kind
// distinguishes the two-finger (undo) from the three-finger (redo) tap.
func (r *Recognizer) OnTap(fn func(TapContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.tap = append(r.handlers.tap, tapHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: eventTap}
}

// Advance processes one frame of touches. Touches absent from the slice
// are treated as lifted.
func (r *Recognizer) Advance(points []TouchPoint) {
	var seen [maxTouches]bool
	for _, p := range points {
		slot := r.touchSlot(p.ID)
		if slot < 0 {
			continue
		}
		seen[slot] = true
		ts := &r.touches[slot]
		if !ts.active {
			ts.active = true
			ts.id = p.ID
			ts.startX = p.X
			ts.startY = p.Y
		}
		ts.x = p.X
		ts.y = p.Y
	}
	for i := range r.touches {
		if r.touches[i].active && !seen[i] {
			r.touches[i] = touchState{}
		}
	}

	count := r.activeCount()

	if count > 0 && !r.seqActive {
		r.beginSequence()
	}
	if !r.seqActive {
		return
	}
	if count == 0 {
		r.endSequence()
		return
	}

	r.seqFrames++
	if count > r.maxCount {
		r.maxCount = count
	}

	cx, cy := r.centroid()
	r.lastX, r.lastY = cx, cy

	if !r.began && r.maxMovement() > r.deadZone {
		r.began = true
	}

	r.trackPan(count, cx, cy)
	r.trackPair(count)

	r.prevCentroid = Vec2{X: cx, Y: cy}
	r.prevCount = count
}

// touchSlot maps a platform touch ID to a stable slot, allocating a free
// one for new touches. Returns -1 when all slots are taken.
func (r *Recognizer) touchSlot(id int64) int {
	for i := range r.touches {
		if r.touches[i].active && r.touches[i].id == id {
			return i
		}
	}
	for i := range r.touches {
		if !r.touches[i].active {
			return i
		}
	}
	return -1
}

func (r *Recognizer) activeCount() int {
	count := 0
	for i := range r.touches {
		if r.touches[i].active {
			count++
		}
	}
	return count
}

func (r *Recognizer) centroid() (float64, float64) {
	var sx, sy float64
	n := 0
	for i := range r.touches {
		if r.touches[i].active {
			sx += r.touches[i].x
			sy += r.touches[i].y
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return sx / float64(n), sy / float64(n)
}

// maxMovement returns the largest distance any active touch has traveled
// from its starting position.
func (r *Recognizer) maxMovement() float64 {
	max := 0.0
	for i := range r.touches {
		ts := &r.touches[i]
		if !ts.active {
			continue
		}
		d := math.Hypot(ts.x-ts.startX, ts.y-ts.startY)
		if d > max {
			max = d
		}
	}
	return max
}

func (r *Recognizer) beginSequence() {
	r.seqActive = true
	r.seqFrames = 0
	r.maxCount = 0
	r.began = false
	r.pairValid = false
	r.prevCount = 0
}

// endSequence closes a touch sequence. A tap fires only if every
// continuous gesture has failed (never began) and the sequence stayed
// within the tap window — the admission policy's exclusivity rule.
func (r *Recognizer) endSequence() {
	if r.seqFrames <= r.tapFrames {
		var kind GestureKind
		recognized := true
		switch r.maxCount {
		case 2:
			kind = GestureTapUndo
		case 3:
			kind = GestureTapRedo
		default:
			recognized = false
		}
		if recognized && r.continuousFailed(kind) {
			ctx := TapContext{Kind: kind, X: r.lastX, Y: r.lastY}
			for _, h := range r.handlers.tap {
				h.fn(ctx)
			}
		}
	}
	r.seqActive = false
	r.began = false
	r.pairValid = false
	r.maxCount = 0
	r.seqFrames = 0
	r.prevCount = 0
}

// continuousFailed reports whether every continuous gesture the given kind
// must outwait has failed for this sequence.
func (r *Recognizer) continuousFailed(kind GestureKind) bool {
	for _, c := range continuousKinds {
		if RequiresFailureOf(kind, c) && r.began {
			return false
		}
	}
	return true
}

// trackPan emits centroid movement. The baseline is tracked every frame so
// the first emitted delta after the dead zone covers a single frame; no
// delta is emitted across a change in finger count, since the centroid
// jumps when a finger is added or removed.
func (r *Recognizer) trackPan(count int, cx, cy float64) {
	if !r.began || r.prevCount != count || r.prevCount == 0 {
		return
	}
	dx := cx - r.prevCentroid.X
	dy := cy - r.prevCentroid.Y
	if dx == 0 && dy == 0 {
		return
	}
	ctx := PanContext{DeltaX: dx, DeltaY: dy}
	for _, h := range r.handlers.pan {
		h.fn(ctx)
	}
}

// trackPair tracks distance and angle between the first two touches,
// emitting pinch and rotate deltas once the sequence has begun. The
// baseline resets whenever the pair of slots changes.
func (r *Recognizer) trackPair(count int) {
	if count < 2 {
		r.pairValid = false
		return
	}

	s0, s1 := -1, -1
	for i := range r.touches {
		if !r.touches[i].active {
			continue
		}
		if s0 < 0 {
			s0 = i
		} else {
			s1 = i
			break
		}
	}

	t0 := &r.touches[s0]
	t1 := &r.touches[s1]
	dx := t1.x - t0.x
	dy := t1.y - t0.y
	dist := math.Hypot(dx, dy)
	angle := math.Atan2(dy, dx)
	anchorX := (t0.x + t1.x) / 2
	anchorY := (t0.y + t1.y) / 2

	if !r.pairValid || r.pairSlot0 != s0 || r.pairSlot1 != s1 {
		r.pairValid = true
		r.pairSlot0 = s0
		r.pairSlot1 = s1
		r.prevDist = dist
		r.prevAngle = angle
		return
	}

	if r.began {
		if r.prevDist > 0 && dist > 0 && dist != r.prevDist {
			ctx := PinchContext{AnchorX: anchorX, AnchorY: anchorY, Factor: dist / r.prevDist}
			for _, h := range r.handlers.pinch {
				h.fn(ctx)
			}
		}
		if delta := normalizeAngle(angle - r.prevAngle); delta != 0 {
			ctx := RotateContext{AnchorX: anchorX, AnchorY: anchorY, Delta: delta}
			for _, h := range r.handlers.rotate {
				h.fn(ctx)
			}
		}
	}

	r.prevDist = dist
	r.prevAngle = angle
}

// normalizeAngle wraps an angle difference into (-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
