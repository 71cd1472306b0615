package split

import "github.com/akmonengine/planesplit/geom"

// Splitter is the abstraction both NaiveSplitter and bsp.Splitter
// implement: accumulate polygons, then produce the split fragments for a
// given view. bsp.Splitter returns them in back-to-front order;
// NaiveSplitter ignores view and returns them in no particular order.
type Splitter[A comparable] interface {
	// Reset drops any retained state.
	Reset()
	// Add incorporates a polygon. bsp.Splitter must support this
	// incrementally; NaiveSplitter may buffer and defer the actual work
	// until Sort is called.
	Add(poly Polygon[A])
	// Sort produces the output fragments; view should point toward the
	// camera. The returned slice is owned by the splitter and is
	// invalidated by the next Reset/Add/Sort/Solve call.
	Sort(view geom.Vec3) []Polygon[A]
	// Solve is reset + add each + sort.
	Solve(input []Polygon[A], view geom.Vec3) []Polygon[A]
}
