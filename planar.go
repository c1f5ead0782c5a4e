package groundshadow

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/soypat/groundshadow/geodesy"
)

// computeRectangleBounds finds a conservative axis-aligned footprint of r in
// the local east-north-up frame at the rectangle center and returns its
// southwest corner with the east and north vectors spanning it, all in
// ellipsoid-fixed coordinates.
//
// Corner positions alone under-bound the footprint: the ellipsoid bulges
// between corners, pushing edge points outward once flattened into the tangent
// plane. Sampling the four edge midpoints as well keeps the bound conservative.
func computeRectangleBounds(r geodesy.Rectangle, e geodesy.Ellipsoid, height float64) (southWest, eastward, northward mgl64.Vec3) {
	center := r.Center()
	center.Height = height
	enu := e.EastNorthUpToFixedFrame(e.ToCartesian(center))
	inv := enu.Inv()

	// Sample layout over the rectangle:
	//  NW NC NE
	//  WC    EC
	//  SW SC SE
	samples := [8]geodesy.Cartographic{
		{Longitude: r.West, Latitude: r.South},
		{Longitude: r.West, Latitude: r.North},
		{Longitude: r.East, Latitude: r.North},
		{Longitude: r.East, Latitude: r.South},
		{Longitude: center.Longitude, Latitude: r.South},
		{Longitude: r.West, Latitude: center.Latitude},
		{Longitude: center.Longitude, Latitude: r.North},
		{Longitude: r.East, Latitude: center.Latitude},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range samples {
		samples[i].Height = height
		local := inv.Mul4x1(e.ToCartesian(samples[i]).Vec4(1))
		// Drop the up component: the shader reconstructs distances in the
		// tangent plane only.
		minX = math.Min(minX, local[0])
		maxX = math.Max(maxX, local[0])
		minY = math.Min(minY, local[1])
		maxY = math.Max(maxY, local[1])
	}

	southWest = enu.Mul4x1(mgl64.Vec4{minX, minY, 0, 1}).Vec3()
	southEast := enu.Mul4x1(mgl64.Vec4{maxX, minY, 0, 1}).Vec3()
	northWest := enu.Mul4x1(mgl64.Vec4{minX, maxY, 0, 1}).Vec3()
	eastward = southEast.Sub(southWest)
	northward = northWest.Sub(southWest)
	return southWest, eastward, northward
}
