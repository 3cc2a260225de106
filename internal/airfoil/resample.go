package airfoil

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/pdiddy/ribforge/internal/geometry"
	"github.com/pdiddy/ribforge/pkg/types"
)

// Resample redraws the profile with n points per surface using
// monotone cubic interpolation, which never overshoots the source
// coordinates. Stations are cosine-spaced, clustering points at the
// leading and trailing edges where the curvature lives. The result has
// 2n-1 points.
func Resample(p *Profile, n int) (*Profile, error) {
	if n < 4 {
		return nil, fmt.Errorf("%w: resample count %d too small, need at least 4 per surface", types.ErrConfig, n)
	}

	upper, err := sampleCubic(geometry.Reverse(p.Upper()), n)
	if err != nil {
		return nil, fmt.Errorf("%w: %s upper surface: %v", types.ErrFormat, p.Name, err)
	}
	lower, err := sampleCubic(p.Lower(), n)
	if err != nil {
		return nil, fmt.Errorf("%w: %s lower surface: %v", types.ErrFormat, p.Name, err)
	}

	points := make([]geometry.Point, 0, 2*n-1)
	points = append(points, geometry.Reverse(upper)...)
	points = append(points, lower[1:]...)

	return &Profile{
		Name:        p.Name,
		DisplayName: p.DisplayName,
		Points:      points,
	}, nil
}

// sampleCubic fits a Fritsch-Butland monotone cubic through the surface
// and evaluates it at n cosine-spaced stations over the surface span.
func sampleCubic(surface []geometry.Point, n int) ([]geometry.Point, error) {
	xs := make([]float64, len(surface))
	ys := make([]float64, len(surface))
	for i, p := range surface {
		xs[i] = p.X
		ys[i] = p.Y
	}

	var fb interp.FritschButland
	if err := fb.Fit(xs, ys); err != nil {
		return nil, err
	}

	theta := make([]float64, n)
	floats.Span(theta, 0, math.Pi)

	x0 := xs[0]
	span := xs[len(xs)-1] - x0
	out := make([]geometry.Point, n)
	for i, th := range theta {
		x := x0 + span*(1-math.Cos(th))/2
		out[i] = geometry.Pt(x, fb.Predict(x))
	}
	// The first and last stations are the exact surface endpoints.
	out[0] = surface[0]
	out[n-1] = surface[len(surface)-1]
	return out, nil
}
