package geom

import "testing"

func TestDist2(t *testing.T) {
	if d := Dist2(Pt(0, 10), Pt(0, 5)); d != 25 {
		t.Errorf("got %v, want 25", d)
	}
	if d := Dist2(Pt(-11, 1), Pt(-7, -2)); d != 25 {
		t.Errorf("got %v, want 25", d)
	}
	if d := Dist2(Pt(3, 4), Pt(3, 4)); d != 0 {
		t.Errorf("got %v, want 0", d)
	}
}

func TestLerp(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)
	if got := a.Lerp(b, 0.25); got != Pt(2.5, 0) {
		t.Errorf("got %v, want (2.5, 0)", got)
	}
	if got := a.Lerp(b, 0.75); got != Pt(7.5, 0) {
		t.Errorf("got %v, want (7.5, 0)", got)
	}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("got %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("got %v, want %v", got, b)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in   Point
		want Point
	}{
		{Pt(500, 400), Pt(500, 400)},
		{Pt(-50, 400), Pt(0, 400)},
		{Pt(2000, -1), Pt(1024, 0)},
		{Pt(1024, 860), Pt(1024, 860)},
	}
	for _, tt := range tests {
		if got := tt.in.Clamp(1024, 860); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
