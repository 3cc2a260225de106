// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package geometry

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func pointNear(p, q Point) bool {
	return near(p.X, q.X) && near(p.Y, q.Y)
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, -2)

	if got := p.Add(q); got != Pt(4, 2) {
		t.Errorf("Add = %v, want (4,2)", got)
	}
	if got := p.Sub(q); got != Pt(2, 6) {
		t.Errorf("Sub = %v, want (2,6)", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v, want (6,8)", got)
	}
	if got := p.Div(2); got != Pt(1.5, 2) {
		t.Errorf("Div = %v, want (1.5,2)", got)
	}
	if got := p.Dot(q); got != -5 {
		t.Errorf("Dot = %v, want -5", got)
	}
	if got := p.Cross(q); got != -10 {
		t.Errorf("Cross = %v, want -10", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := p.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared = %v, want 25", got)
	}
	if got := p.Distance(Pt(0, 0)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPointNormalize(t *testing.T) {
	n := Pt(3, 4).Normalize()
	if !pointNear(n, Pt(0.6, 0.8)) {
		t.Errorf("Normalize = %v, want (0.6,0.8)", n)
	}
	if got := Pt(0, 0).Normalize(); got != Pt(0, 0) {
		t.Errorf("Normalize zero = %v, want (0,0)", got)
	}
}

func TestPointRotate(t *testing.T) {
	tests := []struct {
		name  string
		p     Point
		angle float64
		want  Point
	}{
		{"quarter turn", Pt(1, 0), math.Pi / 2, Pt(0, 1)},
		{"half turn", Pt(1, 0), math.Pi, Pt(-1, 0)},
		{"negative quarter", Pt(0, 1), -math.Pi / 2, Pt(1, 0)},
		{"origin fixed", Pt(0, 0), 1.234, Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Rotate(tt.angle)
			if !pointNear(got, tt.want) {
				t.Errorf("Rotate(%v, %v) = %v, want %v", tt.p, tt.angle, got, tt.want)
			}
		})
	}
}

func TestPointLerp(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(10, -4)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp t=0 = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp t=1 = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); !pointNear(got, Pt(5, -2)) {
		t.Errorf("Lerp t=0.5 = %v, want (5,-2)", got)
	}
}

func TestPolar(t *testing.T) {
	tests := []struct {
		name  string
		dist  float64
		theta float64
		want  Point
	}{
		{"east", 2, 0, Pt(2, 0)},
		{"north", 3, math.Pi / 2, Pt(0, 3)},
		{"west", 1, math.Pi, Pt(-1, 0)},
		{"southwest", math.Sqrt2, -3 * math.Pi / 4, Pt(-1, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Polar(tt.dist, tt.theta)
			if !pointNear(got, tt.want) {
				t.Errorf("Polar(%v, %v) = %v, want %v", tt.dist, tt.theta, got, tt.want)
			}
		})
	}
}
