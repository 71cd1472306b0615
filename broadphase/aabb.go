// Package broadphase narrows O(n^2) pairwise polygon checks down to the
// candidate pairs whose bounding volumes actually overlap.
package broadphase

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// FromPoints returns the AABB enclosing points. Panics if points is empty.
func FromPoints(points []mgl64.Vec3) AABB {
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = componentMin(min, p)
		max = componentMax(max, p)
	}
	return AABB{Min: min, Max: max}
}

func componentMin(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Min(a.X(), b.X()), math.Min(a.Y(), b.Y()), math.Min(a.Z(), b.Z())}
}

func componentMax(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Max(a.X(), b.X()), math.Max(a.Y(), b.Y()), math.Max(a.Z(), b.Z())}
}

// Overlaps reports whether a and other overlap on all three axes.
func (a AABB) Overlaps(other AABB) bool {
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}
