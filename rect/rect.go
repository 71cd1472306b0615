package rect

import (
	"github.com/akmonengine/planesplit/geom"
	"github.com/akmonengine/planesplit/split"
	"github.com/go-gl/mathgl/mgl64"
)

// Rectangle is a flat quad centered on the local origin, lying in the local
// XY plane with its normal along local +Z before any Transform is applied.
type Rectangle struct {
	Width, Height float64
}

// Build places r by transform and tags the resulting polygon with anchor.
// Vertices are wound counter-clockwise around the local +Z axis, matching
// split.Polygon's winding convention once transform.Rotation is applied.
func Build[A comparable](r Rectangle, transform Transform, anchor A) split.Polygon[A] {
	hw, hh := r.Width/2, r.Height/2

	local := [4]mgl64.Vec3{
		{-hw, -hh, 0},
		{hw, -hh, 0},
		{hw, hh, 0},
		{-hw, hh, 0},
	}

	var points [4]geom.Vec3
	for i, p := range local {
		points[i] = transform.Apply(p)
	}

	normal := transform.ApplyDirection(mgl64.Vec3{0, 0, 1}).Normalize()
	offset := -normal.Dot(points[0])

	return split.Polygon[A]{
		Points: points,
		Plane:  geom.Plane{Normal: normal, Offset: offset},
		Anchor: anchor,
	}
}
