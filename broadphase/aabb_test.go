package broadphase

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAABBOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b AABB
		want bool
	}{
		{
			name: "separated on X",
			a:    AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			b:    AABB{Min: mgl64.Vec3{2, 0, 0}, Max: mgl64.Vec3{3, 1, 1}},
			want: false,
		},
		{
			name: "touching at a face",
			a:    AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			b:    AABB{Min: mgl64.Vec3{1, 0, 0}, Max: mgl64.Vec3{2, 1, 1}},
			want: true,
		},
		{
			name: "overlapping",
			a:    AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			b:    AABB{Min: mgl64.Vec3{0.5, 0.5, 0.5}, Max: mgl64.Vec3{1.5, 1.5, 1.5}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps (symmetry) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromPoints(t *testing.T) {
	points := []mgl64.Vec3{{1, -2, 3}, {-1, 5, 0}, {0, 0, 4}}
	box := FromPoints(points)

	want := AABB{Min: mgl64.Vec3{-1, -2, 0}, Max: mgl64.Vec3{1, 5, 4}}
	if box != want {
		t.Errorf("FromPoints = %+v, want %+v", box, want)
	}
}
