package gesturepad

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- multiplyAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0.5, -0.5, 2, 10, 20}
	id := identityTransform
	assertMatrix(t, "id*m", multiplyAffine(id, m), m)
	assertMatrix(t, "m*id", multiplyAffine(m, id), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 3}
	got := multiplyAffine(a, b)
	assertMatrix(t, "translations", got, [6]float64{1, 0, 0, 1, 15, 23})
}

func TestMultiplyAffineOrder(t *testing.T) {
	// outer∘inner: the inner matrix applies to the point first.
	scale := [6]float64{2, 0, 0, 2, 0, 0}
	shift := [6]float64{1, 0, 0, 1, 10, 0}

	// Scale then shift: (1,0) → (2,0) → (12,0).
	x, y := transformPoint(multiplyAffine(shift, scale), 1, 0)
	assertNear(t, "scale-then-shift.x", x, 12)
	assertNear(t, "scale-then-shift.y", y, 0)

	// Shift then scale: (1,0) → (11,0) → (22,0).
	x, y = transformPoint(multiplyAffine(scale, shift), 1, 0)
	assertNear(t, "shift-then-scale.x", x, 22)
	assertNear(t, "shift-then-scale.y", y, 0)
}

// --- invertAffine ---

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0, 0, 2, 10, 20}
	inv := invertAffine(m)
	assertMatrix(t, "m*inv=id", multiplyAffine(m, inv), identityTransform)
}

func TestInvertAffineComplex(t *testing.T) {
	sin, cos := math.Sincos(0.7)
	m := [6]float64{2 * cos, 2 * sin, -1.5 * sin, 1.5 * cos, 42, -17}
	inv := invertAffine(m)
	assertMatrix(t, "m*inv=id", multiplyAffine(m, inv), identityTransform)
}

func TestInvertAffineSingular(t *testing.T) {
	m := [6]float64{0, 0, 0, 0, 5, 5}
	assertMatrix(t, "singular", invertAffine(m), identityTransform)
}

// --- anchored increments ---

func TestScaleAboutFixesAnchor(t *testing.T) {
	anchor := Vec2{X: 120, Y: -45}
	m := scaleAbout(anchor, 3)

	x, y := transformPoint(m, anchor.X, anchor.Y)
	assertNear(t, "anchor.x", x, anchor.X)
	assertNear(t, "anchor.y", y, anchor.Y)

	// A point 10 to the right of the anchor moves to 30 to the right.
	x, y = transformPoint(m, anchor.X+10, anchor.Y)
	assertNear(t, "offset.x", x, anchor.X+30)
	assertNear(t, "offset.y", y, anchor.Y)
}

func TestRotateAboutFixesAnchor(t *testing.T) {
	anchor := Vec2{X: 50, Y: 80}
	m := rotateAbout(anchor, math.Pi/2)

	x, y := transformPoint(m, anchor.X, anchor.Y)
	assertNear(t, "anchor.x", x, anchor.X)
	assertNear(t, "anchor.y", y, anchor.Y)

	// (anchor.X+10, anchor.Y) rotates 90° to (anchor.X, anchor.Y+10).
	x, y = transformPoint(m, anchor.X+10, anchor.Y)
	assertNear(t, "rotated.x", x, anchor.X)
	assertNear(t, "rotated.y", y, anchor.Y+10)
}

func TestRotateAboutOrigin(t *testing.T) {
	m := rotateAbout(Vec2{}, math.Pi/2)
	// cos=0, sin=1 → a=0, b=1, c=-1, d=0, no translation.
	assertMatrix(t, "rot90", m, [6]float64{0, 1, -1, 0, 0, 0})
}

func TestTranslation(t *testing.T) {
	m := translation(7, -3)
	x, y := transformPoint(m, 1, 1)
	assertNear(t, "x", x, 8)
	assertNear(t, "y", y, -2)
}

// --- benchmarks ---

func BenchmarkMultiplyAffine(b *testing.B) {
	b.ReportAllocs()
	m := [6]float64{2, 0.5, -0.5, 2, 10, 20}
	n := [6]float64{1.1, 0, 0, 1.1, -3, 4}
	for i := 0; i < b.N; i++ {
		m = multiplyAffine(m, n)
	}
	_ = m
}

func BenchmarkInvertAffine(b *testing.B) {
	b.ReportAllocs()
	m := [6]float64{2, 0.5, -0.5, 2, 10, 20}
	var inv [6]float64
	for i := 0; i < b.N; i++ {
		inv = invertAffine(m)
	}
	_ = inv
}
