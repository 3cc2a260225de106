package geometry

import (
	"math"
	"testing"
)

func TestAffineIdentity(t *testing.T) {
	p := Pt(3.5, -2)
	if got := Identity().TransformPoint(p); got != p {
		t.Errorf("Identity().TransformPoint(%v) = %v", p, got)
	}
}

func TestAffineTranslateScale(t *testing.T) {
	p := Pt(1, 2)
	if got := Translate(10, -5).TransformPoint(p); got != Pt(11, -3) {
		t.Errorf("Translate = %v, want (11,-3)", got)
	}
	if got := Scale(2, 3).TransformPoint(p); got != Pt(2, 6) {
		t.Errorf("Scale = %v, want (2,6)", got)
	}
}

func TestAffineRotate(t *testing.T) {
	got := Rotate(math.Pi / 2).TransformPoint(Pt(1, 0))
	if !pointNear(got, Pt(0, 1)) {
		t.Errorf("Rotate(pi/2) of (1,0) = %v, want (0,1)", got)
	}
}

func TestAffineMultiplyOrder(t *testing.T) {
	// Multiply applies the right-hand transform first: scale then
	// translate is not translate then scale.
	p := Pt(1, 1)
	scaleThenTranslate := Translate(10, 0).Multiply(Scale(2, 2))
	if got := scaleThenTranslate.TransformPoint(p); got != Pt(12, 2) {
		t.Errorf("translate*scale = %v, want (12,2)", got)
	}
	translateThenScale := Scale(2, 2).Multiply(Translate(10, 0))
	if got := translateThenScale.TransformPoint(p); got != Pt(22, 2) {
		t.Errorf("scale*translate = %v, want (22,2)", got)
	}
}

func TestAffineTransformVector(t *testing.T) {
	m := Translate(100, 100).Multiply(Rotate(math.Pi))
	got := m.TransformVector(Pt(1, 0))
	if !pointNear(got, Pt(-1, 0)) {
		t.Errorf("TransformVector ignores translation: got %v, want (-1,0)", got)
	}
}

func TestAffineTransformPoints(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)}
	out := Scale(2, 2).TransformPoints(pts)
	if len(out) != len(pts) {
		t.Fatalf("TransformPoints returned %d points, want %d", len(out), len(pts))
	}
	if out[1] != Pt(2, 0) || out[2] != Pt(0, 2) {
		t.Errorf("TransformPoints = %v", out)
	}
	if pts[1] != Pt(1, 0) {
		t.Errorf("TransformPoints modified its input: %v", pts)
	}
}

func TestAffineInvert(t *testing.T) {
	m := Translate(3, -7).Multiply(Rotate(0.4)).Multiply(Scale(2, 5))
	p := Pt(1.25, -9)
	back := m.Invert().TransformPoint(m.TransformPoint(p))
	if !pointNear(back, p) {
		t.Errorf("Invert round trip = %v, want %v", back, p)
	}

	// Singular transforms fall back to identity.
	if got := Scale(0, 0).Invert(); got != Identity() {
		t.Errorf("Invert of singular = %v, want identity", got)
	}
}
