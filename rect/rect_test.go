package rect

import (
	"math"
	"testing"

	"github.com/akmonengine/planesplit/geom"
	"github.com/go-gl/mathgl/mgl64"
)

func TestBuildIdentity(t *testing.T) {
	p := Build(Rectangle{Width: 2, Height: 4}, Identity(), 5)

	if p.Anchor != 5 {
		t.Errorf("Anchor = %v, want 5", p.Anchor)
	}
	if !geom.Vec3ApproxEqual(p.Plane.Normal, geom.Vec3{0, 0, 1}) {
		t.Errorf("Normal = %v, want {0,0,1}", p.Plane.Normal)
	}
	if !p.IsValid() {
		t.Error("built rectangle should be a valid polygon")
	}

	want := [4]geom.Vec3{{-1, -2, 0}, {1, -2, 0}, {1, 2, 0}, {-1, 2, 0}}
	for i := range want {
		if !geom.Vec3ApproxEqual(p.Points[i], want[i]) {
			t.Errorf("Points[%d] = %v, want %v", i, p.Points[i], want[i])
		}
	}
}

func TestBuildTranslated(t *testing.T) {
	tr := Transform{Position: mgl64.Vec3{3, 0, 0}, Rotation: mgl64.QuatIdent()}
	p := Build(Rectangle{Width: 2, Height: 2}, tr, 0)

	if !p.IsValid() {
		t.Error("translated rectangle should be a valid polygon")
	}
	if got := p.Plane.SignedDistanceTo(mgl64.Vec3{3, 0, 0}); !geom.IsZero(got) {
		t.Errorf("plane should pass through the translated center, distance = %v", got)
	}
}

func TestBuildRotated(t *testing.T) {
	tr := Transform{Rotation: mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})}
	p := Build(Rectangle{Width: 2, Height: 2}, tr, 0)

	if !p.IsValid() {
		t.Error("rotated rectangle should remain a valid polygon")
	}
	if !geom.Vec3ApproxEqual(p.Plane.Normal, geom.Vec3{1, 0, 0}) {
		t.Errorf("a +90deg rotation about Y should turn the +Z normal into +X, got %v", p.Plane.Normal)
	}
}
