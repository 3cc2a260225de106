// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package geometry

import "math"

// Offset returns the polyline shifted by dist to the left of the
// direction of travel. Negative dist shifts right. For a Selig-ordered
// outline (trailing edge, upper surface, leading edge, lower surface) a
// positive dist moves the line into the section.
//
// Interior points use the central difference of their neighbors for the
// local direction; the endpoints use the single adjacent segment. Sharp
// corners are not mitered, matching the tolerance of hand-built ribs.
func Offset(points []Point, dist float64) []Point {
	if len(points) < 2 {
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}

	out := make([]Point, len(points))

	theta := angle(points[0], points[1]) + math.Pi/2
	out[0] = points[0].Add(Polar(dist, theta))

	for i := 1; i < len(points)-1; i++ {
		theta = angle(points[i-1], points[i+1]) + math.Pi/2
		out[i] = points[i].Add(Polar(dist, theta))
	}

	n := len(points)
	theta = angle(points[n-2], points[n-1]) + math.Pi/2
	out[n-1] = points[n-1].Add(Polar(dist, theta))

	return out
}

// angle returns the direction from a to b in radians.
func angle(a, b Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}
