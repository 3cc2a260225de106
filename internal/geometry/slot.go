// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package geometry

import (
	"fmt"
	"math"

	"github.com/pdiddy/ribforge/pkg/types"
)

// StringerDims holds the cross-section of a T-section stringer: the
// tangential bar lies along the outline, the normal bar points into the
// section.
type StringerDims struct {
	TanThickness  float64
	TanWidth      float64
	NormThickness float64
	NormWidth     float64
}

// StringerSlot builds the T-shaped cutout for a stringer crossing the
// surface at x. The surface points must be ordered left to right
// (increasing X); upper selects which way the slot opens into the
// section. The returned nodes form an open polyline from one surface
// shoulder around the T to the other; the closing edge along the
// surface is left to the outline itself.
func StringerSlot(surface []Point, x float64, upper bool, dims StringerDims) ([]Point, error) {
	var left, right Point
	haveLeft, haveRight := false, false
	for _, p := range surface {
		if p.X < x {
			left = p
			haveLeft = true
		}
		if p.X > x {
			right = p
			haveRight = true
			break
		}
	}
	if !haveLeft || !haveRight {
		return nil, fmt.Errorf("%w: stringer at x=%.3f outside surface span", types.ErrConfig, x)
	}

	t := (x - left.X) / (right.X - left.X)
	pinned := left.Lerp(right, t)
	theta := math.Atan2(right.Y-left.Y, right.X-left.X)

	u := -1.0
	if upper {
		u = 1.0
	}

	moves := []Point{
		Polar(dims.TanWidth/2, theta+math.Pi),
		Polar(dims.TanThickness, theta-u*math.Pi/2),
		Polar((dims.TanWidth-dims.NormThickness)/2, theta),
		Polar(dims.NormWidth, theta-u*math.Pi/2),
		Polar(dims.NormThickness, theta),
		Polar(dims.NormWidth, theta+u*math.Pi/2),
		Polar((dims.TanWidth-dims.NormThickness)/2, theta),
		Polar(dims.TanThickness, theta+u*math.Pi/2),
	}

	nodes := make([]Point, 0, len(moves))
	cur := pinned
	for _, m := range moves {
		cur = cur.Add(m)
		nodes = append(nodes, cur)
	}
	return nodes, nil
}
