package split

import "github.com/akmonengine/planesplit/geom"

type gridAxis struct {
	normal geom.Vec3
	u, v   geom.Vec3
}

var gridAxes = [3]gridAxis{
	{normal: geom.Vec3{1, 0, 0}, u: geom.Vec3{0, 1, 0}, v: geom.Vec3{0, 0, 1}},
	{normal: geom.Vec3{0, 1, 0}, u: geom.Vec3{0, 0, 1}, v: geom.Vec3{1, 0, 0}},
	{normal: geom.Vec3{0, 0, 1}, u: geom.Vec3{1, 0, 0}, v: geom.Vec3{0, 1, 0}},
}

// MakeGrid generates 3*count^2 axis-aligned 1-by-count rectangles: for each
// of the three axes, count integer offsets along that axis each carry count
// rectangles that together tile a count-by-count square in the tangent
// plane. Anchors are a flat index over the generated polygons, in
// generation order (axis, then offset, then band).
//
// This is the fixture used by the grid scenarios (see the _test.go files in
// this package and in package bsp): solving it with NaiveSplitter or
// bsp.Splitter is expected to produce count + count^2 + count^3 fragments.
func MakeGrid(count int) []Polygon[int] {
	n := float64(count)
	polys := make([]Polygon[int], 0, 3*count*count)
	anchor := 0

	for _, axis := range gridAxes {
		for i := 0; i < count; i++ {
			offset := float64(i)
			for j := 0; j < count; j++ {
				band := float64(j)

				base := axis.normal.Mul(offset)
				p0 := base.Add(axis.u.Mul(band))
				p1 := base.Add(axis.u.Mul(band + 1))
				p2 := p1.Add(axis.v.Mul(n))
				p3 := p0.Add(axis.v.Mul(n))

				polys = append(polys, Polygon[int]{
					Points: [4]geom.Vec3{p0, p1, p2, p3},
					Plane:  geom.Plane{Normal: axis.normal, Offset: -offset},
					Anchor: anchor,
				})
				anchor++
			}
		}
	}

	return polys
}
