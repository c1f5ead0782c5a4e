package geodesy

import "math"

// Rectangle is an angular extent on the ellipsoid bounded by two meridians and
// two parallels, in radians. East may be numerically smaller than West when
// the rectangle crosses the antimeridian.
type Rectangle struct {
	West  float64
	South float64
	East  float64
	North float64
}

// RectangleFromDegrees is a convenience constructor for callers and tests that
// think in degrees.
func RectangleFromDegrees(west, south, east, north float64) Rectangle {
	const d2r = math.Pi / 180
	return Rectangle{West: west * d2r, South: south * d2r, East: east * d2r, North: north * d2r}
}

// Width returns the angular width, accounting for antimeridian crossing.
func (r Rectangle) Width() float64 {
	east := r.East
	if east < r.West {
		east += 2 * math.Pi
	}
	return east - r.West
}

// Height returns the angular height.
func (r Rectangle) Height() float64 {
	return r.North - r.South
}

// Center returns the cartographic center of the rectangle at height zero.
func (r Rectangle) Center() Cartographic {
	east := r.East
	if east < r.West {
		east += 2 * math.Pi
	}
	return Cartographic{
		Longitude: negativePiToPi((r.West + east) * 0.5),
		Latitude:  (r.South + r.North) * 0.5,
	}
}

// negativePiToPi wraps an angle to the range [-pi, pi].
func negativePiToPi(a float64) float64 {
	if a >= -math.Pi && a <= math.Pi {
		return a
	}
	x := math.Mod(a, 2*math.Pi)
	if x < -math.Pi {
		x += 2 * math.Pi
	} else if x > math.Pi {
		x -= 2 * math.Pi
	}
	return x
}
