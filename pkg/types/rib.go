// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// HoleSpec places one round spar hole on the rib: a chord-fraction
// position and a hole diameter in drawing units.
// Per prd001-plan R3.4.
type HoleSpec struct {
	// Position is the chord-wise location as a fraction of the chord,
	// in [0, 1].
	Position float64 `json:"position" yaml:"position"`

	// Diameter is the hole diameter in drawing units.
	Diameter float64 `json:"diameter" yaml:"diameter"`
}

// RearSparSpec places a rear spar hole relative to the first spar hole.
// Per prd001-plan R3.5.
type RearSparSpec struct {
	// Distance is the straight-line distance from the first spar hole
	// center, in drawing units.
	Distance float64 `json:"distance" yaml:"distance"`

	// Angle is measured in degrees from the aft chord direction,
	// positive toward the lower surface.
	Angle float64 `json:"angle" yaml:"angle"`

	// Diameter is the rear spar hole diameter in drawing units.
	Diameter float64 `json:"diameter" yaml:"diameter"`
}

// RibSpec holds one rib row from a rib table: the airfoil reference,
// scaling and rotation parameters, and the optional structural features.
// Per prd001-plan R3.1-R3.8.
type RibSpec struct {
	// Name is the rib name, unique within its set (e.g. "R01").
	Name string `json:"name" yaml:"name"`

	// Airfoil names the primary airfoil file, without extension.
	Airfoil string `json:"airfoil" yaml:"airfoil"`

	// BlendAirfoil optionally names a second airfoil to interpolate
	// toward. Empty means the primary profile is used as-is.
	BlendAirfoil string `json:"blend_airfoil,omitempty" yaml:"blend_airfoil,omitempty"`

	// BlendRatio is the interpolation weight in [0, 1]: 0 keeps the
	// primary profile, 1 yields the blend partner.
	BlendRatio float64 `json:"blend_ratio,omitempty" yaml:"blend_ratio,omitempty"`

	// Chord is the rib chord length in drawing units. Must be positive.
	Chord float64 `json:"chord" yaml:"chord"`

	// Incidence is the rib setting angle in degrees, positive nose-up.
	// The drawn outline is rotated so the jig datum stays horizontal.
	Incidence float64 `json:"incidence" yaml:"incidence"`

	// SparHoles lists round spar holes along the chord. The first entry
	// is the main spar and anchors the datum lines and the rear spar.
	SparHoles []HoleSpec `json:"spar_holes,omitempty" yaml:"spar_holes,omitempty"`

	// RearSpar optionally places a rear spar hole. Requires at least one
	// entry in SparHoles.
	RearSpar *RearSparSpec `json:"rear_spar,omitempty" yaml:"rear_spar,omitempty"`

	// BracingPosition places a pair of bracing holes on the line from
	// the main spar to the rear spar, at this fraction and its mirror
	// from either end. Exactly 0.5 yields a single centered hole. Zero
	// disables bracing. Requires RearSpar.
	BracingPosition float64 `json:"bracing_position,omitempty" yaml:"bracing_position,omitempty"`

	// UpperPlankEnd and LowerPlankEnd are the chord fractions where
	// leading-edge sheeting ends on each surface.
	UpperPlankEnd float64 `json:"upper_plank_end,omitempty" yaml:"upper_plank_end,omitempty"`
	LowerPlankEnd float64 `json:"lower_plank_end,omitempty" yaml:"lower_plank_end,omitempty"`

	// Stringers lists stringer slot positions as signed chord fractions:
	// positive values sit on the upper surface, negative on the lower.
	Stringers []float64 `json:"stringers,omitempty" yaml:"stringers,omitempty"`
}

// Blended reports whether the rib interpolates between two airfoils.
func (r *RibSpec) Blended() bool { return r.BlendAirfoil != "" }

// AirfoilNames returns the airfoil names the rib references, primary
// first.
func (r *RibSpec) AirfoilNames() []string {
	if r.Blended() {
		return []string{r.Airfoil, r.BlendAirfoil}
	}
	return []string{r.Airfoil}
}
