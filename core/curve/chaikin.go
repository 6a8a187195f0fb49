// Package curve implements Chaikin corner-cutting subdivision over point
// sequences, together with the closed-polygon detection and the precomputed
// level cache the editor renders from.
package curve

import "github.com/ingyamilmolinar/chaikin/core/geom"

const (
	// MaxSteps is the deepest refinement level a cache holds; levels run
	// 0 through MaxSteps inclusive.
	MaxSteps = 7

	// ClickRadius is the mouse hit-test radius and, deliberately, also the
	// first/last proximity threshold for closedness detection: dragging the
	// last point onto the first is how the user closes a shape.
	ClickRadius = 10.0
)

// Step applies one corner-cutting pass. Every edge (p0, p1) is replaced by
// the two points at 1/4 and 3/4 along it; the 0.75/0.25 split is the
// scheme's one algorithmic parameter and is not configurable.
//
// Open sequences keep their endpoints, and an open two-point sequence is
// returned unchanged since a straight segment is already its own limit
// curve. Closed sequences are treated as cyclic with no privileged start
// index. Fewer than two points cannot be refined and pass through as-is.
func Step(points []geom.Point, closed bool) []geom.Point {
	n := len(points)
	if n < 2 {
		return points
	}

	if closed {
		out := make([]geom.Point, 0, 2*n)
		for i := 0; i < n; i++ {
			p0, p1 := points[i], points[(i+1)%n]
			out = append(out, p0.Lerp(p1, 0.25), p0.Lerp(p1, 0.75))
		}
		return out
	}

	if n == 2 {
		return points
	}
	out := make([]geom.Point, 0, 2*n)
	out = append(out, points[0])
	for i := 0; i < n-1; i++ {
		p0, p1 := points[i], points[i+1]
		out = append(out, p0.Lerp(p1, 0.25), p0.Lerp(p1, 0.75))
	}
	return append(out, points[n-1])
}
