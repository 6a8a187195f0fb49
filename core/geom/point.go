// Package geom holds the 2D primitives the curve editor works in: an
// immutable point value and the squared-distance helper every radius test
// is phrased in.
package geom

import (
	"fmt"
	"math"
)

// Point is a 2D value in canvas coordinates. It has no identity beyond
// value equality.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Lerp linearly interpolates between p and o.
func (p Point) Lerp(o Point, t float64) Point {
	return Point{
		X: p.X + (o.X-p.X)*t,
		Y: p.Y + (o.Y-p.Y)*t,
	}
}

// Clamp limits both coordinates to the rectangle [0,w] x [0,h].
func (p Point) Clamp(w, h float64) Point {
	return Point{
		X: math.Min(math.Max(p.X, 0), w),
		Y: math.Min(math.Max(p.Y, 0), h),
	}
}

// Dist2 returns the squared euclidean distance between a and b. Hit tests
// and closedness checks compare against squared radii, so no hot path ever
// takes a square root.
func Dist2(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
