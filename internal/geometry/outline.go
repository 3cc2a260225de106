// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package geometry

// Airfoil outlines follow the Selig point order throughout: the slice
// starts at the trailing edge, runs forward along the upper surface to
// the leading edge, then back along the lower surface to the trailing
// edge.

// LeadingEdgeIndex returns the index of the leading edge point, the
// first point with minimal X.
func LeadingEdgeIndex(points []Point) int {
	idx := 0
	for i, p := range points {
		if p.X < points[idx].X {
			idx = i
		}
	}
	return idx
}

// Upper returns the upper surface: trailing edge to leading edge,
// inclusive. The result aliases points.
func Upper(points []Point) []Point {
	return points[:LeadingEdgeIndex(points)+1]
}

// Lower returns the lower surface: leading edge to trailing edge,
// inclusive. The result aliases points.
func Lower(points []Point) []Point {
	return points[LeadingEdgeIndex(points):]
}

// Reverse returns a new slice with the points in reverse order.
func Reverse(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

// InterpY linearly interpolates the Y value of a polyline at the given
// X. The points must be ordered by non-decreasing X. Outside the span
// the nearest endpoint Y is returned.
func InterpY(points []Point, x float64) float64 {
	if len(points) == 0 {
		return 0
	}
	if x <= points[0].X {
		return points[0].Y
	}
	last := points[len(points)-1]
	if x >= last.X {
		return last.Y
	}
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		if x > b.X {
			continue
		}
		if b.X == a.X {
			return b.Y
		}
		t := (x - a.X) / (b.X - a.X)
		return a.Y + t*(b.Y-a.Y)
	}
	return last.Y
}
