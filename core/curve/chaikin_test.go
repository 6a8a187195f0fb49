package curve

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ingyamilmolinar/chaikin/core/geom"
)

func TestStepOpenCutsCorners(t *testing.T) {
	in := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10)}
	got := Step(in, false)
	want := []geom.Point{
		geom.Pt(0, 0),
		geom.Pt(2.5, 0), geom.Pt(7.5, 0),
		geom.Pt(10, 2.5), geom.Pt(10, 7.5),
		geom.Pt(10, 10),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("open step mismatch (-want +got):\n%s", diff)
	}
}

func TestStepOpenPreservesEndpoints(t *testing.T) {
	pts := []geom.Point{
		geom.Pt(0, 0), geom.Pt(200, 40), geom.Pt(300, 500), geom.Pt(90, 700), geom.Pt(700, 100),
	}
	first, last := pts[0], pts[len(pts)-1]
	for level := 1; level <= MaxSteps; level++ {
		pts = Step(pts, false)
		if pts[0] != first || pts[len(pts)-1] != last {
			t.Fatalf("level %d: endpoints %v..%v, want %v..%v",
				level, pts[0], pts[len(pts)-1], first, last)
		}
	}
}

func TestStepOpenLength(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)}
	for level := 1; level <= 4; level++ {
		n := len(pts)
		pts = Step(pts, false)
		if len(pts) != 2*(n-1)+2 {
			t.Fatalf("level %d: got %d points, want %d", level, len(pts), 2*(n-1)+2)
		}
	}
}

func TestStepTwoPointsUnchanged(t *testing.T) {
	in := []geom.Point{geom.Pt(0, 0), geom.Pt(50, 50)}
	got := Step(in, false)
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("two-point segment changed (-want +got):\n%s", diff)
	}
}

func TestStepDegenerate(t *testing.T) {
	for _, in := range [][]geom.Point{nil, {}, {geom.Pt(3, 4)}} {
		for _, closed := range []bool{false, true} {
			got := Step(in, closed)
			if len(got) != len(in) {
				t.Errorf("Step(%v, %t): got %d points, want %d", in, closed, len(got), len(in))
			}
		}
	}
}

func TestStepClosedDoubles(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(50, 86.6)}
	for level := 1; level <= 5; level++ {
		n := len(pts)
		pts = Step(pts, true)
		if len(pts) != 2*n {
			t.Fatalf("level %d: got %d points, want %d", level, len(pts), 2*n)
		}
	}
}

// The cyclic rule has no privileged start index: rotating the input rotates
// the output but produces the same set of points.
func TestStepClosedRotationInvariant(t *testing.T) {
	pts := []geom.Point{
		geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(120, 80), geom.Pt(50, 140), geom.Pt(-20, 70),
	}
	rotated := append(pts[1:len(pts):len(pts)], pts[0])

	a := Step(pts, true)
	b := Step(rotated, true)

	sortPoints(a)
	sortPoints(b)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("rotated input produced a different point set (-orig +rotated):\n%s", diff)
	}
}

func sortPoints(pts []geom.Point) {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
}
