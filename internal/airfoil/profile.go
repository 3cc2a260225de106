// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package airfoil loads normalized airfoil coordinate files and derives
// new profiles from them by blending and resampling.
// Implements: prd002-airfoils (R1-R5);
//
//	docs/ARCHITECTURE § Airfoils.
package airfoil

import (
	"math"

	"github.com/pdiddy/ribforge/internal/geometry"
)

// Profile is a normalized airfoil: unit chord, Selig point order. The
// slice runs from the trailing edge forward along the upper surface to
// the leading edge, then back along the lower surface.
type Profile struct {
	// Name is the reference name ribs use, the file stem (e.g. "dae11").
	Name string

	// DisplayName is the title line from the coordinate file.
	DisplayName string

	// Points is the outline in Selig order.
	Points []geometry.Point

	// Checksum is the hex SHA-256 of the source file. Empty for derived
	// profiles.
	Checksum string
}

// Upper returns the upper surface, trailing edge to leading edge. The
// result aliases Points.
func (p *Profile) Upper() []geometry.Point {
	return geometry.Upper(p.Points)
}

// Lower returns the lower surface, leading edge to trailing edge. The
// result aliases Points.
func (p *Profile) Lower() []geometry.Point {
	return geometry.Lower(p.Points)
}

// Thickness returns the maximum thickness as a chord fraction and the
// station where it occurs, sampling at the upper surface points.
func (p *Profile) Thickness() (max, atX float64) {
	lower := p.Lower()
	for _, pt := range p.Upper() {
		t := pt.Y - geometry.InterpY(lower, pt.X)
		if t > max {
			max = t
			atX = pt.X
		}
	}
	return max, atX
}

// Camber returns the maximum mid-camber offset as a chord fraction and
// the station where it occurs. The sign follows the camber direction.
func (p *Profile) Camber() (max, atX float64) {
	lower := p.Lower()
	for _, pt := range p.Upper() {
		c := (pt.Y + geometry.InterpY(lower, pt.X)) / 2
		if math.Abs(c) > math.Abs(max) {
			max = c
			atX = pt.X
		}
	}
	return max, atX
}
