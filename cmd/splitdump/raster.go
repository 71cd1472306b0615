package main

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/akmonengine/planesplit/geom"
	"github.com/akmonengine/planesplit/split"
	"golang.org/x/image/draw"
)

const (
	baseSize  = 256
	finalSize = 1024
)

// writePNG rasterizes the back-to-front ordered fragments onto a small
// canvas (painter's algorithm: later fragments overdraw earlier ones, which
// is exactly what a correct ordering should look like from the given view),
// then upsamples it for readability.
func writePNG(path string, ordered []split.Polygon[int], view geom.Vec3) error {
	u, v := basis(view)

	base := image.NewRGBA(image.Rect(0, 0, baseSize, baseSize))
	for _, p := range ordered {
		fillQuad(base, project(p, u, v), anchorColor(p.Anchor))
	}

	final := image.NewRGBA(image.Rect(0, 0, finalSize, finalSize))
	draw.BiLinear.Scale(final, final.Bounds(), base, base.Bounds(), draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, final)
}

// basis picks two vectors spanning the plane perpendicular to view.
func basis(view geom.Vec3) (u, v geom.Vec3) {
	up := geom.Vec3{0, 1, 0}
	if view.Cross(up).Dot(view.Cross(up)) < geom.Epsilon {
		up = geom.Vec3{1, 0, 0}
	}
	u = view.Cross(up).Normalize()
	v = view.Cross(u).Normalize()
	return u, v
}

func project(p split.Polygon[int], u, v geom.Vec3) [4]image.Point {
	const scale = baseSize / 8.0
	const origin = baseSize / 2.0

	var out [4]image.Point
	for i, pt := range p.Points {
		out[i] = image.Point{
			X: int(origin + pt.Dot(u)*scale),
			Y: int(origin - pt.Dot(v)*scale),
		}
	}
	return out
}

func anchorColor(anchor int) color.RGBA {
	h := uint32(anchor)*2654435761 + 1
	return color.RGBA{R: uint8(h), G: uint8(h >> 8), B: uint8(h >> 16), A: 255}
}

// fillQuad fills the convex quadrilateral corners by scanning its bounding
// box and testing each pixel against the four edges. Fine for a debug tool
// at this resolution.
func fillQuad(img *image.RGBA, corners [4]image.Point, col color.RGBA) {
	minX, minY, maxX, maxY := corners[0].X, corners[0].Y, corners[0].X, corners[0].Y
	for _, c := range corners[1:] {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
		maxX = max(maxX, c.X)
		maxY = max(maxY, c.Y)
	}

	bounds := img.Bounds()
	minX, minY = max(minX, bounds.Min.X), max(minY, bounds.Min.Y)
	maxX, maxY = min(maxX, bounds.Max.X-1), min(maxY, bounds.Max.Y-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if insideQuad(corners, x, y) {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

func insideQuad(corners [4]image.Point, x, y int) bool {
	sign := 0
	for i := 0; i < 4; i++ {
		a, b := corners[i], corners[(i+1)%4]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		switch {
		case cross > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}
