package scene

import "testing"

func TestPolygonsBuildsOneRectPerEntry(t *testing.T) {
	s := &Scene{
		View: Vec3{X: 0, Y: 0, Z: 1},
		Rects: []Rect{
			{Position: Vec3{X: 0, Y: 0, Z: 0}, Axis: Vec3{}, Degrees: 0, Width: 2, Height: 2, Anchor: 0},
			{Position: Vec3{X: 5, Y: 0, Z: 0}, Axis: Vec3{Y: 1}, Degrees: 90, Width: 2, Height: 2, Anchor: 1},
		},
	}

	polys := s.Polygons()
	if len(polys) != 2 {
		t.Fatalf("Polygons() returned %d polygons, want 2", len(polys))
	}
	for i, p := range polys {
		if !p.IsValid() {
			t.Errorf("polygon %d is not a valid Polygon", i)
		}
		if p.Anchor != i {
			t.Errorf("polygon %d has anchor %v, want %d", i, p.Anchor, i)
		}
	}
}

func TestVec3GeomConversion(t *testing.T) {
	v := Vec3{X: 1, Y: 2, Z: 3}
	g := v.Geom()
	if g.X() != 1 || g.Y() != 2 || g.Z() != 3 {
		t.Errorf("Geom() = %v, want (1,2,3)", g)
	}
}
