package gesturepad

// DefaultIndicatorCount is the number of indicator elements when the
// configuration doesn't say otherwise.
const DefaultIndicatorCount = 5

// IndicatorStrip tracks a saturating counter over N ordered indicator
// elements. The counter starts at N (everything visible); undo hides the
// highest visible element, redo reveals the lowest hidden one. Element i
// is visible iff the counter exceeds i.
//
// The elements are an explicit ordered collection addressed by index;
// there is no tag-based lookup. A change callback pushes visibility out
// to the rendering collaborator, which never needs to read state back.
type IndicatorStrip struct {
	visible  []bool
	count    int
	onChange func(index int, visible bool)
}

// NewIndicatorStrip creates a strip of n elements, all visible.
// n < 1 falls back to DefaultIndicatorCount.
func NewIndicatorStrip(n int) *IndicatorStrip {
	if n < 1 {
		n = DefaultIndicatorCount
	}
	visible := make([]bool, n)
	for i := range visible {
		visible[i] = true
	}
	return &IndicatorStrip{visible: visible, count: n}
}

// Len returns the number of indicator elements.
func (s *IndicatorStrip) Len() int {
	return len(s.visible)
}

// Count returns the current counter value, in [0, Len].
func (s *IndicatorStrip) Count() int {
	return s.count
}

// Visible reports whether element i is visible. Out-of-range indices
// report false.
func (s *IndicatorStrip) Visible(i int) bool {
	if i < 0 || i >= len(s.visible) {
		return false
	}
	return s.visible[i]
}

// SetOnChange registers a callback fired whenever an element's visibility
// flips. At most one callback is held; nil clears it.
func (s *IndicatorStrip) SetOnChange(fn func(index int, visible bool)) {
	s.onChange = fn
}

// Undo decrements the counter and hides the element at the new counter
// value. Fires only on PhaseEnded; saturates silently at zero.
func (s *IndicatorStrip) Undo(phase GesturePhase) {
	if phase != PhaseEnded {
		return
	}
	if s.count == 0 {
		return
	}
	s.count--
	s.visible[s.count] = false
	if s.onChange != nil {
		s.onChange(s.count, false)
	}
}

// Redo shows the element at the current counter value, then increments
// the counter. Fires only on PhaseEnded; saturates silently at Len.
//
// Note the asymmetry with Undo (decrement-then-hide vs show-then-
// increment); both preserve "element i visible iff counter > i".
func (s *IndicatorStrip) Redo(phase GesturePhase) {
	if phase != PhaseEnded {
		return
	}
	if s.count == len(s.visible) {
		return
	}
	s.visible[s.count] = true
	if s.onChange != nil {
		s.onChange(s.count, true)
	}
	s.count++
}
