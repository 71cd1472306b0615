// Package scene decodes the YAML scene files consumed by cmd/splitdump: a
// view direction plus a list of rectangles to place and feed into a
// split.Splitter.
package scene

import (
	"fmt"
	"math"
	"os"

	"github.com/akmonengine/planesplit/geom"
	"github.com/akmonengine/planesplit/rect"
	"github.com/akmonengine/planesplit/split"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

type (
	// Scene is the top-level YAML document: a camera view direction and the
	// rectangles to place in it.
	Scene struct {
		View  Vec3   `yaml:"view"`
		Rects []Rect `yaml:"rects"`
	}

	// Rect places one rectangle in world space.
	Rect struct {
		Position Vec3    `yaml:"position"`
		Axis     Vec3    `yaml:"axis"`
		Degrees  float64 `yaml:"degrees"`
		Width    float64 `yaml:"width"`
		Height   float64 `yaml:"height"`
		Anchor   int     `yaml:"anchor"`
	}

	// Vec3 is the YAML-friendly mirror of geom.Vec3.
	Vec3 struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
		Z float64 `yaml:"z"`
	}
)

// Geom converts v to the engine's vector type.
func (v Vec3) Geom() geom.Vec3 {
	return geom.Vec3{v.X, v.Y, v.Z}
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer f.Close()

	var s Scene
	if err := yaml.NewDecoder(f).Decode(&s); err != nil {
		return nil, fmt.Errorf("scene: decode %s: %w", path, err)
	}
	return &s, nil
}

// Polygons builds the split.Polygon set described by the scene, anchored by
// each rect's Anchor field.
func (s *Scene) Polygons() []split.Polygon[int] {
	polys := make([]split.Polygon[int], 0, len(s.Rects))
	for _, r := range s.Rects {
		axis := r.Axis.Geom()
		if axis.Dot(axis) < geom.Epsilon {
			axis = geom.Vec3{0, 0, 1}
		}

		transform := rect.Transform{
			Position: r.Position.Geom(),
			Rotation: mgl64.QuatRotate(r.Degrees*math.Pi/180, axis.Normalize()),
		}

		polys = append(polys, rect.Build(rect.Rectangle{Width: r.Width, Height: r.Height}, transform, r.Anchor))
	}
	return polys
}
