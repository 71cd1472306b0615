package split

import (
	"testing"

	"github.com/akmonengine/planesplit/geom"
)

func TestNaiveSplitterGrid(t *testing.T) {
	const count = 2
	polys := MakeGrid(count)
	if len(polys) != 3*count*count {
		t.Fatalf("MakeGrid(%d) produced %d polygons, want %d", count, len(polys), 3*count*count)
	}

	splitter := NewNaiveSplitter[int]()
	out := splitter.Solve(polys, geom.Vec3{1, 1, 1})

	want := count + count*count + count*count*count
	if len(out) != want {
		t.Errorf("NaiveSplitter produced %d fragments, want %d", len(out), want)
	}
}

func TestNaiveSplitterNonIntersecting(t *testing.T) {
	a := unitSquareXY(0)
	b := unitSquareXY(1)
	for i := range b.Points {
		b.Points[i] = b.Points[i].Add(geom.Vec3{5, 0, 0})
	}

	splitter := NewNaiveSplitter[int]()
	out := splitter.Solve([]Polygon[int]{a, b}, geom.Vec3{0, 0, 1})
	if len(out) != 2 {
		t.Fatalf("disjoint polygons should pass through unsplit, got %d fragments", len(out))
	}
}

func TestNaiveSplitterPiercing(t *testing.T) {
	a := unitSquareXY(0)
	b := Polygon[int]{
		Points: [4]geom.Vec3{
			{0.5, -1, -1},
			{0.5, -1, 1},
			{0.5, 2, 1},
			{0.5, 2, -1},
		},
		Plane:  geom.Plane{Normal: geom.Vec3{-1, 0, 0}, Offset: 0.5},
		Anchor: 1,
	}

	splitter := NewNaiveSplitter[int]()
	out := splitter.Solve([]Polygon[int]{a, b}, geom.Vec3{0, 0, 1})

	if len(out) <= 2 {
		t.Fatalf("piercing polygons should produce more than 2 fragments, got %d", len(out))
	}
	for _, f := range out {
		if !f.IsValid() {
			t.Errorf("fragment with anchor %v is not a valid polygon", f.Anchor)
		}
	}
}
