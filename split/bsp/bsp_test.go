package bsp

import (
	"math"
	"testing"

	"github.com/akmonengine/planesplit/geom"
	"github.com/akmonengine/planesplit/rect"
	"github.com/akmonengine/planesplit/split"
	"github.com/go-gl/mathgl/mgl64"
)

func unitSquareXY(anchor int) split.Polygon[int] {
	return split.Polygon[int]{
		Points: [4]geom.Vec3{
			{0, 0, 0},
			{1, 0, 0},
			{1, 1, 0},
			{0, 1, 0},
		},
		Plane:  geom.Plane{Normal: geom.Vec3{0, 0, 1}, Offset: 0},
		Anchor: anchor,
	}
}

func TestSplitterGrid(t *testing.T) {
	const count = 2
	polys := split.MakeGrid(count)

	s := New[int]()
	out := s.Solve(polys, geom.Vec3{1, 1, 1})

	want := count + count*count + count*count*count
	if len(out) != want {
		t.Errorf("BSP splitter produced %d fragments, want %d", len(out), want)
	}
}

func TestSplitterOrdersBackToFront(t *testing.T) {
	// Three parallel unit squares stacked along Z at z=0,1,2 (anchors
	// 0,1,2). view points from the scene toward the camera, so a camera
	// sitting further along +Z makes z=2 the nearest plane and z=0 the
	// farthest; a back-to-front traversal should emit anchor 0 first and
	// anchor 2 last.
	z0 := unitSquareXY(0)
	z1 := unitSquareXY(1)
	z1.Plane.Offset = -1
	for i := range z1.Points {
		z1.Points[i] = z1.Points[i].Add(geom.Vec3{0, 0, 1})
	}
	z2 := unitSquareXY(2)
	z2.Plane.Offset = -2
	for i := range z2.Points {
		z2.Points[i] = z2.Points[i].Add(geom.Vec3{0, 0, 2})
	}

	s := New[int]()
	out := s.Solve([]split.Polygon[int]{z0, z1, z2}, geom.Vec3{0, 0, 1})

	if len(out) != 3 {
		t.Fatalf("expected 3 fragments (parallel planes never split each other), got %d", len(out))
	}
	got := [3]int{out[0].Anchor, out[1].Anchor, out[2].Anchor}
	want := [3]int{0, 1, 2}
	if got != want {
		t.Errorf("back-to-front order = %v, want %v", got, want)
	}
}

func TestSplitterThreeRotatedRectangles(t *testing.T) {
	plate := rect.Rectangle{Width: 20, Height: 20}
	yAxis := mgl64.Vec3{0, 1, 0}

	left := rect.Build(plate, rect.Transform{Rotation: mgl64.QuatRotate(-math.Pi/4, yAxis)}, 0)
	middle := rect.Build(plate, rect.Transform{Rotation: mgl64.QuatIdent()}, 1)
	right := rect.Build(plate, rect.Transform{Rotation: mgl64.QuatRotate(math.Pi/4, yAxis)}, 2)

	s := New[int]()
	out := s.Solve([]split.Polygon[int]{left, middle, right}, geom.Vec3{0, 0, -1})

	got := make([]int, len(out))
	for i, p := range out {
		got[i] = p.Anchor
	}

	want := []int{2, 1, 0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("anchor sequence = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("anchor sequence = %v, want %v", got, want)
		}
	}
}
