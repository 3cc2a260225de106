// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package geometry

import (
	"fmt"
	"math"

	"github.com/pdiddy/ribforge/pkg/types"
)

// Circle is a round hole: center and radius in drawing units.
type Circle struct {
	Center Point
	Radius float64
}

// Rib holds every drawable element of one finished rib, in final
// drawing coordinates. The leading edge sits at the origin and the
// outline is rotated nose-up by the rib incidence, so the jig datum
// lines stay axis-aligned.
// Per prd003-geometry R1.1-R1.4.
type Rib struct {
	// Outline is the scaled and rotated airfoil outline, Selig order.
	Outline []Point

	// Chordline runs from the leading edge to the trailing edge.
	Chordline []Point

	// Sheeting is the outline offset inward for planking and cap
	// strips. Nil when the plan defines no sheeting thicknesses.
	Sheeting []Point

	// Slots holds one open polyline per stringer cutout.
	Slots [][]Point

	// Holes lists spar, rear spar, and bracing holes in that order.
	Holes []Circle

	// Datums holds the jig marker lines: horizontal and vertical pairs
	// through the main spar and rear spar centers.
	Datums [][]Point
}

// Build constructs the rib drawing for one rib row. The profile is a
// normalized airfoil outline in Selig order with unit chord; blending
// and resampling happen before this point. Build scales by the chord,
// places sheeting offsets, slots, and holes in the chord frame, then
// rotates everything about the leading edge by the negated incidence.
//
// The transform stage is pointwise: the outline keeps exactly
// len(profile) points.
func Build(spec types.RibSpec, profile []Point, settings types.GeometrySettings) (*Rib, error) {
	if len(profile) < 3 {
		return nil, fmt.Errorf("%w: airfoil %q has only %d points", types.ErrFormat, spec.Airfoil, len(profile))
	}
	if spec.Chord <= 0 {
		return nil, fmt.Errorf("%w: rib %q: chord must be positive, got %g", types.ErrConfig, spec.Name, spec.Chord)
	}

	scaled := Scale(spec.Chord, spec.Chord).TransformPoints(profile)
	le := LeadingEdgeIndex(scaled)
	upper := scaled[:le+1]
	lower := scaled[le:]

	rib := &Rib{
		Outline:   scaled,
		Chordline: []Point{Pt(0, 0), Pt(spec.Chord, 0)},
	}

	if settings.HasSheeting() {
		rib.Sheeting = sheetingOutline(scaled, upper, lower, spec, settings)
	}

	if len(spec.Stringers) > 0 {
		slots, err := stringerSlots(spec, rib.Sheeting, scaled, settings)
		if err != nil {
			return nil, err
		}
		rib.Slots = slots
	}

	// Spar holes sit on the mid-camber line: halfway between the upper
	// and lower surface at the hole station.
	upperLR := Reverse(upper)
	var mainCenter Point
	var mainThickness float64
	for i, h := range spec.SparHoles {
		x := h.Position * spec.Chord
		yU := InterpY(upperLR, x)
		yL := InterpY(lower, x)
		c := Pt(x, (yU+yL)/2)
		if i == 0 {
			mainCenter = c
			mainThickness = yU - yL
		}
		rib.Holes = append(rib.Holes, Circle{Center: c, Radius: h.Diameter / 2})
	}

	var rearCenter Point
	hasRear := spec.RearSpar != nil
	if hasRear {
		if len(spec.SparHoles) == 0 {
			return nil, fmt.Errorf("%w: rib %q: rear spar requires a spar hole to anchor to", types.ErrConfig, spec.Name)
		}
		theta := -spec.RearSpar.Angle * math.Pi / 180
		rearCenter = mainCenter.Add(Polar(spec.RearSpar.Distance, theta))
		rib.Holes = append(rib.Holes, Circle{Center: rearCenter, Radius: spec.RearSpar.Diameter / 2})
	}

	if spec.BracingPosition != 0 {
		if !hasRear {
			return nil, fmt.Errorf("%w: rib %q: bracing holes require a rear spar", types.ErrConfig, spec.Name)
		}
		r := spec.RearSpar.Diameter / 2
		rib.Holes = append(rib.Holes, Circle{
			Center: mainCenter.Lerp(rearCenter, spec.BracingPosition),
			Radius: r,
		})
		if spec.BracingPosition != 0.5 {
			rib.Holes = append(rib.Holes, Circle{
				Center: mainCenter.Lerp(rearCenter, 1-spec.BracingPosition),
				Radius: r,
			})
		}
	}

	if spec.Incidence != 0 {
		rot := Rotate(-spec.Incidence * math.Pi / 180)
		rib.Outline = rot.TransformPoints(rib.Outline)
		rib.Chordline = rot.TransformPoints(rib.Chordline)
		if rib.Sheeting != nil {
			rib.Sheeting = rot.TransformPoints(rib.Sheeting)
		}
		for i := range rib.Slots {
			rib.Slots[i] = rot.TransformPoints(rib.Slots[i])
		}
		for i := range rib.Holes {
			rib.Holes[i].Center = rot.TransformPoint(rib.Holes[i].Center)
		}
		mainCenter = rot.TransformPoint(mainCenter)
		rearCenter = rot.TransformPoint(rearCenter)
	}

	if len(spec.SparHoles) > 0 {
		pos := spec.SparHoles[0].Position
		left := mainCenter.Add(Pt(-1.2*pos*spec.Chord, 0))
		right := left.Add(Pt(1.2*spec.Chord, 0))
		rib.Datums = append(rib.Datums,
			[]Point{left, right},
			[]Point{
				mainCenter.Add(Pt(0, mainThickness)),
				mainCenter.Add(Pt(0, -mainThickness)),
			},
		)
	}
	if hasRear {
		d := spec.RearSpar.Diameter
		rib.Datums = append(rib.Datums,
			[]Point{rearCenter.Add(Pt(-d, 0)), rearCenter.Add(Pt(d, 0))},
			[]Point{rearCenter.Add(Pt(0, d)), rearCenter.Add(Pt(0, -d))},
		)
	}

	return rib, nil
}

// sheetingOutline offsets the outline inward: ribcap thickness on the
// open structure aft of the plank ends, plank thickness on the sheeted
// leading edge region between them. The seam points are kept in both
// segments, so the outline shows the real step where sheeting meets the
// cap strip.
func sheetingOutline(scaled, upper, lower []Point, spec types.RibSpec, g types.GeometrySettings) []Point {
	upperEnd := spec.Chord * spec.UpperPlankEnd
	upperIdx := 0
	for _, p := range upper {
		if p.X > upperEnd {
			upperIdx++
		}
	}
	if upperIdx >= len(upper) {
		upperIdx = len(upper) - 1
	}
	upperCapped := Offset(upper[:upperIdx+1], g.RibcapThickness)

	lowerEnd := spec.Chord * spec.LowerPlankEnd
	aft := 0
	for _, p := range lower {
		if p.X > lowerEnd {
			aft++
		}
	}
	start := len(lower) - aft - 1
	if start < 0 {
		start = 0
	}
	lowerCapped := Offset(lower[start:], g.RibcapThickness)

	end := len(scaled) - aft
	if end < upperIdx {
		end = upperIdx
	}
	frontPlanked := Offset(scaled[upperIdx:end], g.PlankThickness)

	out := make([]Point, 0, len(upperCapped)+len(frontPlanked)+len(lowerCapped))
	out = append(out, upperCapped...)
	out = append(out, frontPlanked...)
	out = append(out, lowerCapped...)
	return out
}

// stringerSlots builds the stringer cutouts. Slots sit on the sheeting
// outline when one exists, otherwise on the bare airfoil outline.
func stringerSlots(spec types.RibSpec, sheeting, outline []Point, g types.GeometrySettings) ([][]Point, error) {
	src := sheeting
	if src == nil {
		src = outline
	}
	le := LeadingEdgeIndex(src)
	upperLR := Reverse(src[:le+1])
	lowerLR := src[le:]

	dims := StringerDims{
		TanThickness:  g.TanStringerThickness,
		TanWidth:      g.TanStringerWidth,
		NormThickness: g.NormStringerThickness,
		NormWidth:     g.NormStringerWidth,
	}

	slots := make([][]Point, 0, len(spec.Stringers))
	for _, pos := range spec.Stringers {
		surface := lowerLR
		onUpper := pos > 0
		if onUpper {
			surface = upperLR
		}
		nodes, err := StringerSlot(surface, math.Abs(pos)*spec.Chord, onUpper, dims)
		if err != nil {
			return nil, fmt.Errorf("rib %q: %w", spec.Name, err)
		}
		slots = append(slots, nodes)
	}
	return slots, nil
}
