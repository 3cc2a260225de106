// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the ribforge pipeline.
// Implements: prd001-plan (Plan, RibSet, RibSpec, R1-R3);
//
//	prd003-geometry (GeometrySettings, R1.1-R1.6);
//	prd004-dxf-output (Units, R4.1);
//	prd005-catalog (CatalogConfig, R1.2).
//
// See docs/ARCHITECTURE.md § Pipeline Interface, § Data Structures.
package types

import "sort"

// Units identifies the drawing unit recorded in generated DXF headers.
// Per prd004-dxf-output R4.1.
type Units string

const (
	// UnitsNone omits the $INSUNITS header variable entirely.
	UnitsNone Units = ""

	UnitsMillimeters Units = "mm"
	UnitsInches      Units = "in"
)

// InsUnits returns the DXF $INSUNITS code for the unit, or zero when no
// header should be written.
func (u Units) InsUnits() int {
	switch u {
	case UnitsMillimeters:
		return 4
	case UnitsInches:
		return 1
	default:
		return 0
	}
}

// GeometrySettings holds the drawing parameters shared by every rib in a
// plan: sheeting and cap offsets, stringer slot dimensions, and the
// optional outline resampling count.
// Per prd003-geometry R2.1-R2.4.
type GeometrySettings struct {
	// PlankThickness is the leading-edge sheeting thickness. The outline
	// between the plank ends is offset inward by this amount. Zero
	// disables the planked region.
	PlankThickness float64 `json:"plank_thickness" yaml:"plank_thickness"`

	// RibcapThickness is the cap strip thickness applied to the
	// unplanked outline aft of the plank ends.
	RibcapThickness float64 `json:"ribcap_thickness" yaml:"ribcap_thickness"`

	// TanStringerThickness and TanStringerWidth size the tangential bar
	// of a stringer slot.
	TanStringerThickness float64 `json:"tan_stringer_thickness" yaml:"tan_stringer_thickness"`
	TanStringerWidth     float64 `json:"tan_stringer_width" yaml:"tan_stringer_width"`

	// NormStringerThickness and NormStringerWidth size the normal bar of
	// a stringer slot.
	NormStringerThickness float64 `json:"norm_stringer_thickness" yaml:"norm_stringer_thickness"`
	NormStringerWidth     float64 `json:"norm_stringer_width" yaml:"norm_stringer_width"`

	// ResamplePoints is the per-surface point count used when outlines
	// are resampled before scaling. Zero or negative disables resampling
	// and the source coordinates pass through unchanged.
	ResamplePoints int `json:"resample_points" yaml:"resample_points"`
}

// HasSheeting reports whether any inward offset outline should be built.
func (g GeometrySettings) HasSheeting() bool {
	return g.PlankThickness > 0 || g.RibcapThickness > 0
}

// RibSet names one group of ribs sourced from a single rib table.
type RibSet struct {
	// Name is the set name from the plan (e.g. "main-wing").
	Name string `json:"name" yaml:"name"`

	// Source is the rib table path as written in the plan.
	Source string `json:"source" yaml:"source"`

	// Ribs lists the parsed rib rows in table order.
	Ribs []RibSpec `json:"ribs" yaml:"ribs"`
}

// Plan is a fully parsed build plan: directories, units, shared geometry
// settings, and the rib sets with their rib rows.
// Per prd001-plan R1.1-R1.4.
type Plan struct {
	// Source is the plan file path it was loaded from.
	Source string `json:"source" yaml:"source"`

	// AirfoilDir is the directory containing airfoil coordinate files,
	// resolved relative to the plan file.
	AirfoilDir string `json:"airfoil_dir" yaml:"airfoil_dir"`

	// OutputDir is the base directory for generated DXF files, resolved
	// relative to the plan file.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Units is the drawing unit for DXF headers.
	Units Units `json:"units" yaml:"units"`

	// Geometry holds the shared drawing parameters.
	Geometry GeometrySettings `json:"geometry" yaml:"geometry"`

	// Sets lists the rib sets in plan order.
	Sets []RibSet `json:"sets" yaml:"sets"`
}

// RibCount returns the total number of ribs across all sets.
func (p *Plan) RibCount() int {
	n := 0
	for _, s := range p.Sets {
		n += len(s.Ribs)
	}
	return n
}

// AirfoilNames returns the sorted set of airfoil names referenced by any
// rib in the plan, primaries and blend partners alike.
func (p *Plan) AirfoilNames() []string {
	seen := make(map[string]bool)
	for _, s := range p.Sets {
		for _, r := range s.Ribs {
			seen[r.Airfoil] = true
			if r.Blended() {
				seen[r.BlendAirfoil] = true
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
