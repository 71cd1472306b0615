package split

import (
	"github.com/akmonengine/planesplit/geom"
	"github.com/akmonengine/planesplit/splitlog"
)

// PlaneCut is the result of classifying one polygon against another's plane.
type PlaneCut[A comparable] struct {
	// Sibling holds the other polygon when it is coplanar with the base
	// (nil otherwise).
	Sibling *Polygon[A]
	// Front and Back hold the sub-polygons in front of / behind the base
	// plane (empty, not nil, when Sibling is set).
	Front []Polygon[A]
	Back  []Polygon[A]
}

// IsSibling reports whether the classification resolved to Sibling.
func (c PlaneCut[A]) IsSibling() bool {
	return c.Sibling != nil
}

// Cut classifies poly relative to base's plane (base is interpreted purely
// as a plane here, not as a bounded quad): coplanar ("Sibling"), entirely to
// one side ("Outside", folded into Front/Back), or pierced by base's plane
// ("Cut", in which case poly is split and each fragment is assigned to
// Front or Back by the sign of its summed signed distance to base's plane).
func Cut[A comparable](base, poly Polygon[A]) PlaneCut[A] {
	splitlog.Debug("cutting anchor", "anchor", poly.Anchor, "base_anchor", base.Anchor)
	splitlog.Trace("base plane", "plane", base.Plane)

	line, ok := base.Plane.Intersect(poly.Plane)

	switch {
	case !ok:
		// Parallel planes: widen the coplanarity check beyond a single
		// epsilon, since two independently-normalized planes drift.
		ndot := base.Plane.Normal.Dot(poly.Plane.Normal)
		dist := base.Plane.Offset - ndot*poly.Plane.Offset
		if isWideZero(dist) {
			splitlog.Debug("coplanar", "dist", dist)
			p := poly
			return PlaneCut[A]{Sibling: &p, Front: []Polygon[A]{}, Back: []Polygon[A]{}}
		}
		splitlog.Debug("normals aligned", "ndot", ndot)
		return sidedCut(base, poly, dist)

	case base.Plane.AreOutside(poly.Points[:]):
		// Planes intersect, but poly lies entirely on one side of base's
		// plane (are_outside is itself subject to floating point
		// precision, so this branch is only reached once the strict
		// parallel-check above has failed).
		dist := base.Plane.SignedDistanceSumTo(poly.Points[:])
		splitlog.Debug("outside", "dist", dist)
		return sidedCut(base, poly, dist)

	default:
		splitlog.Debug("cut across", "line", line)
		return straddlingCut(base, poly, line)
	}
}

// isWideZero uses a tolerance wider than geom.Epsilon for coplanarity
// decisions between two independently normalized planes, per spec's
// guidance in §4.1: a single epsilon is too tight once normal drift is
// taken into account.
func isWideZero(x float64) bool {
	const wideFactor = 4
	return x > -wideFactor*geom.Epsilon && x < wideFactor*geom.Epsilon
}

func sidedCut[A comparable](base, poly Polygon[A], dist float64) PlaneCut[A] {
	if dist > 0 {
		return PlaneCut[A]{Front: []Polygon[A]{poly}, Back: []Polygon[A]{}}
	}
	return PlaneCut[A]{Front: []Polygon[A]{}, Back: []Polygon[A]{poly}}
}

func straddlingCut[A comparable](base, poly Polygon[A], line geom.Line) PlaneCut[A] {
	front := make([]Polygon[A], 0, 2)
	back := make([]Polygon[A], 0, 2)

	p := poly
	extra1, extra2 := p.Split(line)

	classify := func(sub Polygon[A]) {
		if isEmpty(sub) {
			return
		}
		dist := base.Plane.SignedDistanceSumTo(sub.Points[:])
		// Tie-break: only a strictly positive summed distance goes to the
		// front; a fragment whose summed distance is zero goes to the back.
		// This keeps the BSP traversal total; it only matters for edge cases.
		if dist > 0 {
			splitlog.Trace("fragment to front", "dist", dist)
			front = append(front, sub)
		} else {
			splitlog.Trace("fragment to back", "dist", dist)
			back = append(back, sub)
		}
	}

	classify(p)
	if extra1 != nil {
		classify(*extra1)
	}
	if extra2 != nil {
		classify(*extra2)
	}

	return PlaneCut[A]{Front: front, Back: back}
}

// isEmpty reports whether a split produced a degenerate (zero-area)
// sub-polygon, which Split itself never returns directly but which can
// arise from the triangle-as-quad encoding collapsing further. In practice
// this is a defensive check against a fully duplicated point set.
func isEmpty[A comparable](p Polygon[A]) bool {
	return geom.Vec3ApproxEqual(p.Points[0], p.Points[1]) &&
		geom.Vec3ApproxEqual(p.Points[1], p.Points[2]) &&
		geom.Vec3ApproxEqual(p.Points[2], p.Points[3])
}
