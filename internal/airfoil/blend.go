// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package airfoil

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/pdiddy/ribforge/internal/geometry"
	"github.com/pdiddy/ribforge/pkg/types"
)

// blendStations is the per-surface sample count used when two profiles
// are interpolated onto a common chord grid.
const blendStations = 90

// Blend interpolates between two profiles surface by surface. Both are
// resampled linearly onto the same chord stations, then the surface
// heights are mixed: t=0 returns the primary shape, t=1 the partner.
// The result has 2*blendStations-1 points.
func Blend(primary, partner *Profile, t float64) (*Profile, error) {
	if t < 0 || t > 1 {
		return nil, fmt.Errorf("%w: blend ratio %g outside [0,1]", types.ErrConfig, t)
	}

	qx := make([]float64, blendStations)
	floats.Span(qx, 0, 1)

	surfaces := [][]geometry.Point{
		geometry.Reverse(primary.Upper()),
		geometry.Reverse(partner.Upper()),
		primary.Lower(),
		partner.Lower(),
	}
	sampled := make([][]float64, len(surfaces))
	for i, surface := range surfaces {
		ys, err := sampleLinear(surface, qx)
		if err != nil {
			name := primary.Name
			if i == 1 || i == 3 {
				name = partner.Name
			}
			return nil, fmt.Errorf("%w: %s: %v", types.ErrFormat, name, err)
		}
		sampled[i] = ys
	}

	upperY := make([]float64, blendStations)
	lowerY := make([]float64, blendStations)
	for i := range qx {
		upperY[i] = (1-t)*sampled[0][i] + t*sampled[1][i]
		lowerY[i] = (1-t)*sampled[2][i] + t*sampled[3][i]
	}

	points := make([]geometry.Point, 0, 2*blendStations-1)
	for i := blendStations - 1; i >= 0; i-- {
		points = append(points, geometry.Pt(qx[i], upperY[i]))
	}
	for i := 1; i < blendStations; i++ {
		points = append(points, geometry.Pt(qx[i], lowerY[i]))
	}

	return &Profile{
		Name:        fmt.Sprintf("%s+%s", primary.Name, partner.Name),
		DisplayName: fmt.Sprintf("%s / %s blend %.2f", primary.Name, partner.Name, t),
		Points:      points,
	}, nil
}

// sampleLinear evaluates a surface at the given stations with piecewise
// linear interpolation. The surface must be ordered by increasing X;
// stations beyond the surface span take the nearest endpoint value.
func sampleLinear(surface []geometry.Point, stations []float64) ([]float64, error) {
	xs := make([]float64, len(surface))
	ys := make([]float64, len(surface))
	for i, p := range surface {
		xs[i] = p.X
		ys[i] = p.Y
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, err
	}

	out := make([]float64, len(stations))
	for i, x := range stations {
		out[i] = pl.Predict(x)
	}
	return out, nil
}
