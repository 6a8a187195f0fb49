package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ingyamilmolinar/chaikin/core/geom"
)

/* ------------------------------------------------------------------
   cache 1×1 images per colour; a line is a stretched, rotated pixel
   ------------------------------------------------------------------ */

var pixelCache = map[string]*ebiten.Image{}

func colorKey(c color.Color) string {
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("%d_%d_%d_%d", r, g, b, a)
}

func pixel(c color.Color) *ebiten.Image {
	k := colorKey(c)
	if img, ok := pixelCache[k]; ok {
		return img
	}
	img := ebiten.NewImage(1, 1)
	img.Fill(c)
	pixelCache[k] = img
	return img
}

var lineOpt ebiten.DrawImageOptions

// drawLine draws a straight segment in screen coordinates. Defined as a
// variable so tests can capture segments instead of rasterizing.
var drawLine = func(dst *ebiten.Image, a, b geom.Point, col color.Color, thick float64) {
	if thick <= 0 {
		thick = 1
	}
	length := math.Hypot(b.X-a.X, b.Y-a.Y)
	angle := math.Atan2(b.Y-a.Y, b.X-a.X)

	// reset GeoM in place (no new allocation)
	lineOpt.GeoM.Reset()
	lineOpt.GeoM.Scale(length, thick)
	lineOpt.GeoM.Rotate(angle)
	lineOpt.GeoM.Translate(a.X, a.Y)

	dst.DrawImage(pixel(col), &lineOpt)
}

// drawPolyline connects pts with consecutive segments, plus last→first when
// closed. Fewer than two points draw nothing.
func drawPolyline(dst *ebiten.Image, pts []geom.Point, closed bool, col color.Color, thick float64) {
	if len(pts) < 2 {
		return
	}
	for i := 0; i+1 < len(pts); i++ {
		drawLine(dst, pts[i], pts[i+1], col, thick)
	}
	if closed {
		drawLine(dst, pts[len(pts)-1], pts[0], col, thick)
	}
}

// drawMarker renders one control point: a bright ring with a dark centre.
// Overridable in tests.
var drawMarker = func(dst *ebiten.Image, p geom.Point) {
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), markerOuterR, colMarker, true)
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), markerInnerR, colMarkerCore, true)
}
