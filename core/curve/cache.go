package curve

import "github.com/ingyamilmolinar/chaikin/core/geom"

// Closed reports whether a raw control sequence should be treated as a
// closed polygon: at least three points with the first and last within
// ClickRadius of each other.
func Closed(points []geom.Point) bool {
	if len(points) < 3 {
		return false
	}
	return geom.Dist2(points[0], points[len(points)-1]) <= ClickRadius*ClickRadius
}

// DetectAndNormalize decides whether base forms a closed polygon and strips
// an accidental duplicate closing point before subdivision, so a closed
// polygon of n vertices is not double-counted as n+1. The hint is overridden
// whenever the proximity test fires; a previously computed flag is never
// trusted. Running it on its own output changes nothing.
func DetectAndNormalize(base []geom.Point, hint bool) ([]geom.Point, bool) {
	closed := hint || Closed(base)
	if closed && len(base) >= 2 &&
		geom.Dist2(base[0], base[len(base)-1]) <= ClickRadius*ClickRadius {
		return base[:len(base)-1], closed
	}
	return base, closed
}

// BuildCache precomputes every refinement level for base: level 0 is the
// normalized control sequence, level k the k-th subdivision of it.
// Closedness is always auto-detected (hint=false); the editor exposes no
// explicit-closed mode.
//
// The whole cache is rebuilt from scratch on every structural edit. At tens
// of control points and MaxSteps+1 levels that is cheaper than incremental
// bookkeeping would ever pay for, so don't add any.
func BuildCache(base []geom.Point, maxSteps int) [][]geom.Point {
	normalized, closed := DetectAndNormalize(base, false)

	levels := make([][]geom.Point, 0, maxSteps+1)
	cur := make([]geom.Point, len(normalized))
	copy(cur, normalized)
	levels = append(levels, cur)
	for k := 1; k <= maxSteps; k++ {
		cur = Step(cur, closed)
		levels = append(levels, cur)
	}
	return levels
}
