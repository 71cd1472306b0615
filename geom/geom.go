// Package geom provides the scalar vector, line, and plane primitives that
// the plane-splitting engine is built on. Vec3 is a thin alias over
// mgl64.Vec3 so callers get the full mathgl API (Dot, Cross, Add, Sub, Mul,
// Len, Normalize, ...) for free.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the 3D vector type shared across the engine.
type Vec3 = mgl64.Vec3

// Epsilon is the default numerical tolerance for near-equality checks
// involving scalars derived from geometric computations. All "is this
// approximately zero" tests in this module and in package split use this
// value unless a wider, explicitly documented tolerance is called for (see
// Plane coplanarity checks in package split).
const Epsilon = 1e-5

// IsZero reports whether x is within Epsilon of zero.
func IsZero(x float64) bool {
	return math.Abs(x) < Epsilon
}

// Vec3ApproxEqual reports whether a and b are equal within Epsilon on every
// component.
func Vec3ApproxEqual(a, b Vec3) bool {
	return math.Abs(a[0]-b[0]) < Epsilon &&
		math.Abs(a[1]-b[1]) < Epsilon &&
		math.Abs(a[2]-b[2]) < Epsilon
}
