package gesturepad

// CanvasWidth is the logical width of the manipulable canvas. A viewport
// reset scales the canvas by viewportWidth/CanvasWidth so the canvas spans
// the viewport regardless of screen size.
const CanvasWidth = 1024.0

// Default bounds for the accumulated gesture scale.
const (
	DefaultMinScale = 0.125
	DefaultMaxScale = 8.0
)

// Surface accumulates the transform of the manipulable surface. Every
// gesture composes an anchor-relative increment onto the matrix; the
// increment is applied to points first, so the anchor is interpreted in
// the surface's own (pre-existing) coordinate space.
//
// The accumulated gesture scale is tracked as an explicit scalar beside
// the matrix rather than extracted from the matrix's basis vectors, so
// the clamp stays exact no matter how rotations interleave with scales.
type Surface struct {
	// MinScale and MaxScale bound the accumulated gesture scale.
	// Zero values are replaced by DefaultMinScale/DefaultMaxScale
	// at construction.
	MinScale float64
	MaxScale float64

	matrix [6]float64
	scale  float64 // accumulated gesture scale, always within bounds
}

// NewSurface creates a Surface at the identity transform with default
// scale bounds.
func NewSurface() *Surface {
	return &Surface{
		MinScale: DefaultMinScale,
		MaxScale: DefaultMaxScale,
		matrix:   identityTransform,
		scale:    1.0,
	}
}

// Matrix returns the accumulated transform as [a, b, c, d, tx, ty].
func (s *Surface) Matrix() [6]float64 {
	return s.matrix
}

// Scale returns the accumulated gesture scale. Always within
// [MinScale, MaxScale].
func (s *Surface) Scale() float64 {
	return s.scale
}

// Rescale composes a uniform scale about anchor onto the surface. The
// factor is a since-last-call ratio (1.0 means no change); callers reset
// their own tracking after each call. The factor actually applied is
// reduced so the accumulated scale never leaves [MinScale, MaxScale]:
// once a bound is hit, further pinching in the same direction is a no-op
// until the gesture reverses. Non-positive factors are ignored.
func (s *Surface) Rescale(anchor Vec2, factor float64) {
	if factor <= 0 {
		return
	}
	desired := clamp(factor*s.scale, s.MinScale, s.MaxScale)
	applied := desired / s.scale
	if applied == 1.0 {
		return
	}
	s.matrix = multiplyAffine(s.matrix, scaleAbout(anchor, applied))
	s.scale = desired
}

// Rotate composes a rotation about anchor onto the surface. The delta is
// a since-last-call angle in radians. Rotation is unbounded.
func (s *Surface) Rotate(anchor Vec2, radians float64) {
	if radians == 0 {
		return
	}
	s.matrix = multiplyAffine(s.matrix, rotateAbout(anchor, radians))
}

// Translate composes a translation onto the surface. The delta is a
// since-last-call movement. Translation is unbounded.
func (s *Surface) Translate(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	s.matrix = multiplyAffine(s.matrix, translation(dx, dy))
}

// ResetForViewport recomputes the transform from scratch for a viewport of
// the given size: uniform scale by size.Width/CanvasWidth, then translate
// to the viewport center. Any accumulated manipulation is discarded and
// the gesture scale returns to 1.0. Call whenever the viewport appears or
// changes size.
func (s *Surface) ResetForViewport(size Size) {
	base := size.Width / CanvasWidth
	s.matrix = [6]float64{base, 0, 0, base, size.Width / 2, size.Height / 2}
	s.scale = 1.0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
