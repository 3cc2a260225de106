// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package airfoil

import (
	"errors"
	"math"
	"testing"

	"github.com/pdiddy/ribforge/internal/geometry"
	"github.com/pdiddy/ribforge/pkg/types"
)

// wedge builds a straight-surfaced profile with upper slope +k and
// lower slope -k, so linear interpolation reproduces it exactly.
func wedge(name string, k float64) *Profile {
	return &Profile{
		Name: name,
		Points: []geometry.Point{
			geometry.Pt(1, k),
			geometry.Pt(0.5, k/2),
			geometry.Pt(0, 0),
			geometry.Pt(0.5, -k/2),
			geometry.Pt(1, -k),
		},
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := wedge("a", 0.1)
	b := wedge("b", 0.2)

	tests := []struct {
		name  string
		ratio float64
		slope float64
	}{
		{"ratio 0 keeps the primary", 0, 0.1},
		{"ratio 1 yields the partner", 1, 0.2},
		{"midpoint averages", 0.5, 0.15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Blend(a, b, tt.ratio)
			if err != nil {
				t.Fatalf("Blend: %v", err)
			}
			if len(got.Points) != 2*blendStations-1 {
				t.Fatalf("got %d points, want %d", len(got.Points), 2*blendStations-1)
			}

			// Every upper point must sit on y = slope*x, every lower
			// point on y = -slope*x.
			le := geometry.LeadingEdgeIndex(got.Points)
			for i, p := range got.Points {
				want := tt.slope * p.X
				if i > le {
					want = -want
				}
				if math.Abs(p.Y-want) > 1e-9 {
					t.Fatalf("point %d = %v, want y=%v", i, p, want)
				}
			}
		})
	}
}

func TestBlendShape(t *testing.T) {
	got, err := Blend(wedge("a", 0.1), wedge("b", 0.2), 0.25)
	if err != nil {
		t.Fatalf("Blend: %v", err)
	}

	if got.Name != "a+b" {
		t.Errorf("name = %q, want a+b", got.Name)
	}
	if got.Checksum != "" {
		t.Errorf("derived profile has checksum %q, want none", got.Checksum)
	}
	first := got.Points[0]
	last := got.Points[len(got.Points)-1]
	if first.X != 1 || last.X != 1 {
		t.Errorf("outline does not span the chord: first %v last %v", first, last)
	}
	le := geometry.LeadingEdgeIndex(got.Points)
	if got.Points[le] != geometry.Pt(0, 0) {
		t.Errorf("leading edge = %v, want origin", got.Points[le])
	}
}

func TestBlendRatioOutOfRange(t *testing.T) {
	a := wedge("a", 0.1)
	b := wedge("b", 0.2)
	for _, ratio := range []float64{-0.1, 1.1} {
		_, err := Blend(a, b, ratio)
		if err == nil {
			t.Fatalf("Blend ratio %v: expected error", ratio)
		}
		if !errors.Is(err, types.ErrConfig) {
			t.Errorf("Blend ratio %v: error = %v, want ErrConfig", ratio, err)
		}
	}
}
