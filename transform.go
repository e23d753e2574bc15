package gesturepad

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = outer * inner,
// i.e. the inner transform is applied to a point first.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(outer, inner [6]float64) [6]float64 {
	return [6]float64{
		outer[0]*inner[0] + outer[2]*inner[1],
		outer[1]*inner[0] + outer[3]*inner[1],
		outer[0]*inner[2] + outer[2]*inner[3],
		outer[1]*inner[2] + outer[3]*inner[3],
		outer[0]*inner[4] + outer[2]*inner[5] + outer[4],
		outer[1]*inner[4] + outer[3]*inner[5] + outer[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// --- Anchor-relative increments ---
//
// Each builder returns Translate(anchor) * Op * Translate(-anchor): the
// point is carried to the anchor's origin, transformed, and carried back,
// so the anchor itself is a fixed point of the increment.

// scaleAbout builds a uniform scale by factor about anchor.
func scaleAbout(anchor Vec2, factor float64) [6]float64 {
	return [6]float64{
		factor, 0, 0, factor,
		anchor.X * (1 - factor),
		anchor.Y * (1 - factor),
	}
}

// rotateAbout builds a rotation by radians about anchor.
func rotateAbout(anchor Vec2, radians float64) [6]float64 {
	sin, cos := math.Sincos(radians)
	return [6]float64{
		cos, sin, -sin, cos,
		anchor.X - cos*anchor.X + sin*anchor.Y,
		anchor.Y - sin*anchor.X - cos*anchor.Y,
	}
}

// translation builds a pure translation.
func translation(dx, dy float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, dx, dy}
}
