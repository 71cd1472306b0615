// Package rect builds split.Polygon values from rectangles placed in world
// space by a position/rotation transform, the "Polygon constructors" helper
// the engine itself assumes callers have but doesn't provide.
package rect

import "github.com/go-gl/mathgl/mgl64"

// Transform is a rigid-body placement: a rotation applied about the local
// origin, followed by a translation.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Identity returns the transform that leaves points unmoved.
func Identity() Transform {
	return Transform{Position: mgl64.Vec3{0, 0, 0}, Rotation: mgl64.QuatIdent()}
}

// Apply maps a point from local space into world space.
func (t Transform) Apply(point mgl64.Vec3) mgl64.Vec3 {
	return t.Position.Add(t.Rotation.Rotate(point))
}

// ApplyDirection maps a direction (not a point) from local space into world
// space: rotation only, no translation.
func (t Transform) ApplyDirection(dir mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Rotate(dir)
}
