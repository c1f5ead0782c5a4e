package geodesy

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MapProjection flattens the ellipsoid into a plane for 2D and Columbus-View
// rendering. Projected x grows with longitude and projected y with latitude;
// z carries the height through unchanged.
type MapProjection interface {
	Project(c Cartographic) mgl64.Vec3
}

// GeographicProjection is the equirectangular projection: angular coordinates
// scaled by the ellipsoid's maximum radius.
type GeographicProjection struct {
	semimajor float64
}

// NewGeographicProjection returns an equirectangular projection over e.
func NewGeographicProjection(e Ellipsoid) GeographicProjection {
	return GeographicProjection{semimajor: e.maximumRadius}
}

func (p GeographicProjection) Project(c Cartographic) mgl64.Vec3 {
	return mgl64.Vec3{c.Longitude * p.semimajor, c.Latitude * p.semimajor, c.Height}
}

// WebMercatorMaximumLatitude is the latitude at which the spherical web
// mercator projection's square extent cuts off, ~85.05 degrees.
const WebMercatorMaximumLatitude = 1.4844222297453324

// WebMercatorProjection is the spherical web mercator projection used by most
// tiled imagery services. Latitudes beyond WebMercatorMaximumLatitude clamp.
type WebMercatorProjection struct {
	semimajor float64
}

// NewWebMercatorProjection returns a web mercator projection over e.
func NewWebMercatorProjection(e Ellipsoid) WebMercatorProjection {
	return WebMercatorProjection{semimajor: e.maximumRadius}
}

func (p WebMercatorProjection) Project(c Cartographic) mgl64.Vec3 {
	lat := c.Latitude
	if lat > WebMercatorMaximumLatitude {
		lat = WebMercatorMaximumLatitude
	} else if lat < -WebMercatorMaximumLatitude {
		lat = -WebMercatorMaximumLatitude
	}
	y := math.Log(math.Tan(math.Pi/4 + lat/2))
	return mgl64.Vec3{c.Longitude * p.semimajor, y * p.semimajor, c.Height}
}
