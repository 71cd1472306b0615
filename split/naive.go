package split

import (
	"math"

	"github.com/akmonengine/planesplit/broadphase"
	"github.com/akmonengine/planesplit/geom"
	"github.com/akmonengine/planesplit/metrics"
)

type naiveWorkItem[A comparable] struct {
	poly  Polygon[A]
	start int
}

// NaiveSplitter drives pairwise piercing checks to a fixed point, producing
// a set of mutually non-intersecting fragments. Worst case O(n^2) in the
// number of final fragments; a broadphase.Grid narrows each candidate's
// comparisons down to the fragments sharing its cells, and an AABB.Overlaps
// check on each of those turns the rest of the misses into a handful of
// float compares instead of a full plane intersection.
//
// Results depend on input order; ties are broken by preserving that order.
type NaiveSplitter[A comparable] struct {
	result []Polygon[A]
	boxes  []broadphase.AABB
	queue  []naiveWorkItem[A]
	grid   *broadphase.Grid
}

// NewNaiveSplitter returns an empty NaiveSplitter.
func NewNaiveSplitter[A comparable]() *NaiveSplitter[A] {
	return &NaiveSplitter[A]{}
}

func (s *NaiveSplitter[A]) Reset() {
	s.result = s.result[:0]
	s.boxes = s.boxes[:0]
	s.queue = s.queue[:0]
}

// Add buffers poly for processing at the next Sort/Solve call.
func (s *NaiveSplitter[A]) Add(poly Polygon[A]) {
	s.queue = append(s.queue, naiveWorkItem[A]{poly: poly, start: 0})
}

// Sort drains the work queue, driving every pending polygon to a fixed
// point against the accumulated result, then returns the fragments. view is
// accepted to satisfy the Splitter interface but unused: the naive splitter
// does not produce an ordering, only a non-intersecting fragment set.
func (s *NaiveSplitter[A]) Sort(_ geom.Vec3) []Polygon[A] {
	for len(s.queue) > 0 {
		item := s.queue[0]
		s.queue = s.queue[1:]
		s.process(item)
	}
	return s.result
}

// cellSizeFor picks a grid cell size proportional to box's own extent, the
// usual spatial-hash rule of thumb: cells sized to the query object keep the
// candidate list short without tuning a fixed size per scene.
func cellSizeFor(box broadphase.AABB) float64 {
	extent := box.Max.Sub(box.Min)
	size := math.Max(extent.X(), math.Max(extent.Y(), extent.Z()))
	if size < geom.Epsilon {
		size = 1
	}
	return size
}

func (s *NaiveSplitter[A]) process(item naiveWorkItem[A]) {
	p := item.poly
	pBox := broadphase.FromPoints(p.Points[:])

	candidates := len(s.result) - item.start
	s.grid = broadphase.NewGrid(cellSizeFor(pBox), candidates+1)
	for i := item.start; i < len(s.result); i++ {
		s.grid.Insert(i, s.boxes[i])
	}

	for _, i := range s.grid.Query(pBox) {
		if !pBox.Overlaps(s.boxes[i]) {
			// Sharing a grid cell doesn't guarantee the boxes themselves
			// overlap; confirm before paying for the real plane math.
			continue
		}

		e := s.result[i]
		line, ok := p.Intersect(e)
		if !ok {
			continue
		}

		eExtra1, eExtra2 := e.Split(line)
		s.result[i] = e
		s.boxes[i] = broadphase.FromPoints(e.Points[:])
		if eExtra1 != nil {
			s.result = append(s.result, *eExtra1)
			s.boxes = append(s.boxes, broadphase.FromPoints(eExtra1.Points[:]))
			metrics.RecordFragment()
		}
		if eExtra2 != nil {
			s.result = append(s.result, *eExtra2)
			s.boxes = append(s.boxes, broadphase.FromPoints(eExtra2.Points[:]))
			metrics.RecordFragment()
		}

		pExtra1, pExtra2 := p.Split(line)
		next := i + 1
		s.queue = append(s.queue, naiveWorkItem[A]{poly: p, start: next})
		if pExtra1 != nil {
			s.queue = append(s.queue, naiveWorkItem[A]{poly: *pExtra1, start: next})
		}
		if pExtra2 != nil {
			s.queue = append(s.queue, naiveWorkItem[A]{poly: *pExtra2, start: next})
		}
		return
	}

	s.result = append(s.result, p)
	s.boxes = append(s.boxes, pBox)
	metrics.RecordFragment()
}

// Solve is Reset + Add(each of input) + Sort(view).
func (s *NaiveSplitter[A]) Solve(input []Polygon[A], view geom.Vec3) []Polygon[A] {
	s.Reset()
	for _, p := range input {
		s.Add(p)
	}
	return s.Sort(view)
}

var _ Splitter[int] = (*NaiveSplitter[int])(nil)
