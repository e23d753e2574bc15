package gesturepad

// TransformListener receives the accumulated matrix and gesture scale
// after every surface mutation. The rendering collaborator draws from
// these pushed values and never reads state back.
type TransformListener func(matrix [6]float64, scale float64)

// Controller owns the two state slices — the manipulable surface's
// transform and the indicator strip — and wires a Recognizer's callbacks
// into them. All mutation happens on the game loop through Advance (or
// the direct apply methods, which desktop input emulation uses).
type Controller struct {
	surface *Surface
	strip   *IndicatorStrip
	rec     *Recognizer

	viewport    Size
	sink        EventSink
	onTransform TransformListener

	injectQueue [][]TouchPoint
}

// NewController creates a fully wired controller from a Config. Zero
// config fields fall back to defaults.
func NewController(cfg Config) *Controller {
	cfg.applyDefaults()

	surface := NewSurface()
	surface.MinScale = cfg.MinScale
	surface.MaxScale = cfg.MaxScale

	c := &Controller{
		surface: surface,
		strip:   NewIndicatorStrip(cfg.Indicators),
		rec:     NewRecognizer(),
	}
	c.rec.SetDeadZone(cfg.DeadZone)
	c.rec.SetTapFrames(cfg.TapFrames)

	c.rec.OnPinch(func(ctx PinchContext) {
		c.Pinch(Vec2{X: ctx.AnchorX, Y: ctx.AnchorY}, ctx.Factor)
	})
	c.rec.OnRotate(func(ctx RotateContext) {
		c.Rotate(Vec2{X: ctx.AnchorX, Y: ctx.AnchorY}, ctx.Delta)
	})
	c.rec.OnPan(func(ctx PanContext) {
		c.Pan(ctx.DeltaX, ctx.DeltaY)
	})
	c.rec.OnTap(func(ctx TapContext) {
		switch ctx.Kind {
		case GestureTapUndo:
			c.strip.Undo(PhaseEnded)
			c.emit(GestureEvent{Kind: GestureTapUndo, Phase: PhaseEnded, X: ctx.X, Y: ctx.Y})
		case GestureTapRedo:
			c.strip.Redo(PhaseEnded)
			c.emit(GestureEvent{Kind: GestureTapRedo, Phase: PhaseEnded, X: ctx.X, Y: ctx.Y})
		}
	})

	return c
}

// Surface returns the transform accumulator.
func (c *Controller) Surface() *Surface {
	return c.surface
}

// Indicators returns the indicator strip.
func (c *Controller) Indicators() *IndicatorStrip {
	return c.strip
}

// Recognizer returns the gesture recognizer, for tuning or extra
// callbacks.
func (c *Controller) Recognizer() *Recognizer {
	return c.rec
}

// SetTransformListener registers the callback notified after every
// transform mutation. At most one listener is held; nil clears it.
func (c *Controller) SetTransformListener(fn TransformListener) {
	c.onTransform = fn
}

// SetEventSink sets the optional gesture event bridge (see the ecs
// submodule).
func (c *Controller) SetEventSink(sink EventSink) {
	c.sink = sink
}

// Viewport returns the size passed to the last Resize call.
func (c *Controller) Viewport() Size {
	return c.viewport
}

// Advance feeds one frame of touches through the recognizer. Pending
// injected frames (see InjectFrame) take precedence over real input, one
// frame per call.
func (c *Controller) Advance(touches []TouchPoint) {
	if len(c.injectQueue) > 0 {
		frame := c.injectQueue[0]
		copy(c.injectQueue, c.injectQueue[1:])
		c.injectQueue[len(c.injectQueue)-1] = nil
		c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]
		c.rec.Advance(frame)
		return
	}
	c.rec.Advance(touches)
}

// Resize recomputes the surface placement for a new viewport size,
// discarding any accumulated manipulation. Call when the viewport first
// appears and on every size change.
func (c *Controller) Resize(size Size) {
	c.viewport = size
	c.surface.ResetForViewport(size)
	c.notifyTransform()
}

// --- Direct gesture application ---
//
// These are the same entry points the recognizer callbacks use; desktop
// emulation (mouse wheel, key bindings) and tests call them directly.

// Pinch applies a since-last-call scale factor about anchor.
func (c *Controller) Pinch(anchor Vec2, factor float64) {
	c.surface.Rescale(anchor, factor)
	c.notifyTransform()
	c.emit(GestureEvent{
		Kind: GesturePinch, Phase: PhaseChanged,
		AnchorX: anchor.X, AnchorY: anchor.Y, Factor: factor,
	})
}

// Rotate applies a since-last-call rotation delta about anchor.
func (c *Controller) Rotate(anchor Vec2, radians float64) {
	c.surface.Rotate(anchor, radians)
	c.notifyTransform()
	c.emit(GestureEvent{
		Kind: GestureRotate, Phase: PhaseChanged,
		AnchorX: anchor.X, AnchorY: anchor.Y, Delta: radians,
	})
}

// Pan applies a since-last-call translation delta.
func (c *Controller) Pan(dx, dy float64) {
	c.surface.Translate(dx, dy)
	c.notifyTransform()
	c.emit(GestureEvent{
		Kind: GesturePan, Phase: PhaseChanged,
		DeltaX: dx, DeltaY: dy,
	})
}

// Undo applies a completed undo tap: hides the highest visible indicator.
// Saturates silently when nothing is left to hide.
func (c *Controller) Undo() {
	c.strip.Undo(PhaseEnded)
	c.emit(GestureEvent{Kind: GestureTapUndo, Phase: PhaseEnded})
}

// Redo applies a completed redo tap: reveals the lowest hidden indicator.
// Saturates silently when everything is visible.
func (c *Controller) Redo() {
	c.strip.Redo(PhaseEnded)
	c.emit(GestureEvent{Kind: GestureTapRedo, Phase: PhaseEnded})
}

func (c *Controller) notifyTransform() {
	if c.onTransform != nil {
		c.onTransform(c.surface.Matrix(), c.surface.Scale())
	}
}

func (c *Controller) emit(event GestureEvent) {
	if c.sink != nil {
		c.sink.EmitGesture(event)
	}
}
