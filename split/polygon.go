// Package split implements the plane-splitting and depth-ordering engine:
// convex quadrilateral polygons embedded in a shared coordinate space are
// fragmented against each other's planes so that the result is a set of
// mutually non-intersecting pieces, each traceable back to the polygon that
// produced it via an opaque anchor tag.
package split

import (
	"fmt"

	"github.com/akmonengine/planesplit/geom"
	"github.com/akmonengine/planesplit/metrics"
)

// Polygon is a convex, planar quadrilateral: four vertices lying on Plane,
// tagged with a caller-chosen anchor used to correlate output fragments with
// whatever the caller considers the polygon's source (a layer id, say).
//
// A Polygon may represent a triangle by duplicating its fourth vertex; see
// IsValid.
type Polygon[A comparable] struct {
	Points [4]geom.Vec3
	Plane  geom.Plane
	Anchor A
}

// IsValid checks the three invariants a Polygon must satisfy: every vertex
// lies on Plane, the four vertices wind consistently around Plane.Normal,
// and (trivially) there are exactly four points, the last two of which may
// coincide to encode a triangle.
func (p Polygon[A]) IsValid() bool {
	for _, pt := range p.Points {
		if !geom.IsZero(p.Plane.SignedDistanceTo(pt)) {
			return false
		}
	}

	for i := 0; i < 4; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%4]
		c := p.Points[(i+2)%4]
		edge1 := b.Sub(a)
		edge2 := c.Sub(b)
		cross := edge1.Cross(edge2)
		if cross.Dot(cross) < geom.Epsilon {
			// A zero cross product at this vertex is fine if it's the
			// duplicated-vertex case of a triangle; only a genuinely
			// inconsistent winding direction is invalid.
			continue
		}
		if cross.Dot(p.Plane.Normal) < 0 {
			return false
		}
	}

	return true
}

// SignedDistanceTo returns the signed distance from point to p's plane.
func (p Polygon[A]) SignedDistanceTo(point geom.Vec3) float64 {
	return p.Plane.SignedDistanceTo(point)
}

// AreOutside reports whether every point in points lies strictly on one side
// of p's plane.
func (p Polygon[A]) AreOutside(points []geom.Vec3) bool {
	return p.Plane.AreOutside(points)
}

// ProjectOn projects p's four vertices onto axis, returning their dot
// products as a LineProjection.
func (p Polygon[A]) ProjectOn(axis geom.Vec3) geom.LineProjection {
	return geom.LineProjection{Markers: [4]float64{
		axis.Dot(p.Points[0]),
		axis.Dot(p.Points[1]),
		axis.Dot(p.Points[2]),
		axis.Dot(p.Points[3]),
	}}
}

// Intersect computes the line where p and other's planes meet, confirming
// that both polygons actually straddle it. It returns false when:
//   - either polygon lies entirely outside the other's plane;
//   - the planes are (near-)parallel;
//   - the polygons' projections onto the intersection direction don't
//     overlap with positive measure (a separating axis exists).
func (p Polygon[A]) Intersect(other Polygon[A]) (geom.Line, bool) {
	if p.AreOutside(other.Points[:]) || other.AreOutside(p.Points[:]) {
		return geom.Line{}, false
	}

	line, ok := p.Plane.Intersect(other.Plane)
	if !ok {
		return geom.Line{}, false
	}

	selfProj := p.ProjectOn(line.Dir)
	otherProj := other.ProjectOn(line.Dir)
	if !selfProj.Intersect(otherProj) {
		return geom.Line{}, false
	}

	return line, true
}

// Split divides p by line, which must be coplanar with p (line.Dir
// perpendicular to p.Plane.Normal, and line.Origin on p.Plane). On that
// precondition failing, or on any numerically degenerate edge-cut count,
// Split returns (nil, nil) and leaves p unmodified.
//
// On success, p is mutated in place to become one of the resulting
// fragments, and up to two further fragments are returned. All fragments
// inherit p's original Plane and Anchor.
func (p *Polygon[A]) Split(line geom.Line) (extra1, extra2 *Polygon[A]) {
	if !geom.IsZero(p.Plane.Normal.Dot(line.Dir)) || !geom.IsZero(p.Plane.SignedDistanceTo(line.Origin)) {
		return nil, nil
	}

	if line.Dir.Dot(line.Dir) < geom.Epsilon {
		return nil, nil
	}
	dirUnit := line.Dir.Normalize()

	var cuts [4]*geom.Vec3
	var cutPoints [4]geom.Vec3
	for i := 0; i < 4; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%4]

		edge := b.Sub(a)
		edgeProj := edge.Dot(dirUnit)
		pb := edge.Sub(dirUnit.Mul(edgeProj))
		if pb.Dot(pb) <= geom.Epsilon {
			continue
		}

		toOrigin := line.Origin.Sub(a)
		originProj := toOrigin.Dot(dirUnit)
		pr := toOrigin.Sub(dirUnit.Mul(originProj))

		t := pr.Dot(pb) / pb.Dot(pb)
		if t > 0 && t < 1 {
			cutPoints[i] = a.Add(edge.Mul(t))
			cuts[i] = &cutPoints[i]
		}
	}

	first := -1
	second := -1
	for i, c := range cuts {
		if c == nil {
			continue
		}
		if first == -1 {
			first = i
		} else {
			second = i
			break
		}
	}
	if first == -1 || second == -1 {
		return nil, nil
	}
	metrics.RecordSplit()

	a, b := *cuts[first], *cuts[second]
	gap := second - first

	switch gap {
	case 2:
		otherPoints := p.Points
		otherPoints[first] = a
		otherPoints[(first+3)%4] = b
		p.Points[first+1] = a
		p.Points[first+2] = b

		other := *p
		other.Points = otherPoints
		return &other, nil

	case 1:
		xpoints := [4]geom.Vec3{
			b,
			p.Points[(first+2)%4],
			p.Points[(first+3)%4],
			p.Points[first],
		}
		ypoints := [4]geom.Vec3{p.Points[first], a, b, b}
		p.Points = [4]geom.Vec3{a, p.Points[first+1], b, b}

		x := *p
		x.Points = xpoints
		y := *p
		y.Points = ypoints
		return &x, &y

	case 3:
		xpoints := [4]geom.Vec3{
			p.Points[first+1],
			p.Points[(first+2)%4],
			p.Points[(first+3)%4],
			b,
		}
		ypoints := [4]geom.Vec3{a, p.Points[first+1], b, b}
		p.Points = [4]geom.Vec3{p.Points[first], a, b, b}

		x := *p
		x.Points = xpoints
		y := *p
		y.Points = ypoints
		return &x, &y

	default:
		panic(fmt.Sprintf("split: unreachable edge gap %d (first=%d second=%d)", gap, first, second))
	}
}
