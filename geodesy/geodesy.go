// Package geodesy implements the planetary math primitives consumed by the
// groundshadow attribute builders: an ellipsoid model with cartographic to
// cartesian conversion, local east-north-up frame construction, angular
// rectangles and plane map projections. All math is float64; precision is
// reduced to float32 only at the attribute-encoding boundary.
package geodesy

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Cartographic is an angular position relative to an ellipsoid.
type Cartographic struct {
	Longitude float64 // radians
	Latitude  float64 // radians
	Height    float64 // meters above the ellipsoid surface
}

// Ellipsoid is a quadric surface defined by three orthogonal semi-axes
// aligned with the x, y and z axes of a body-fixed frame.
type Ellipsoid struct {
	radii               mgl64.Vec3
	radiiSquared        mgl64.Vec3
	oneOverRadiiSquared mgl64.Vec3
	maximumRadius       float64
}

// NewEllipsoid returns an ellipsoid with the given semi-axis lengths in meters.
// Panics if any radius is negative or zero.
func NewEllipsoid(x, y, z float64) Ellipsoid {
	if x <= 0 || y <= 0 || z <= 0 {
		panic("geodesy: ellipsoid radii must be positive")
	}
	return Ellipsoid{
		radii:               mgl64.Vec3{x, y, z},
		radiiSquared:        mgl64.Vec3{x * x, y * y, z * z},
		oneOverRadiiSquared: mgl64.Vec3{1 / (x * x), 1 / (y * y), 1 / (z * z)},
		maximumRadius:       math.Max(x, math.Max(y, z)),
	}
}

// WGS84 returns the World Geodetic System 1984 reference ellipsoid.
func WGS84() Ellipsoid {
	return NewEllipsoid(6378137, 6378137, 6356752.3142451793)
}

// UnitSphere returns a sphere of radius 1, useful for tests and
// scale-independent math.
func UnitSphere() Ellipsoid {
	return NewEllipsoid(1, 1, 1)
}

// Radii returns the semi-axis lengths.
func (e Ellipsoid) Radii() mgl64.Vec3 { return e.radii }

// MaximumRadius returns the largest semi-axis length. It is zero for the
// zero-value Ellipsoid, which is how entry points detect an uninitialized
// argument.
func (e Ellipsoid) MaximumRadius() float64 { return e.maximumRadius }

// GeodeticSurfaceNormalCartographic returns the unit normal of the ellipsoid
// surface at the given cartographic position.
func (e Ellipsoid) GeodeticSurfaceNormalCartographic(c Cartographic) mgl64.Vec3 {
	coslat := math.Cos(c.Latitude)
	return mgl64.Vec3{
		coslat * math.Cos(c.Longitude),
		coslat * math.Sin(c.Longitude),
		math.Sin(c.Latitude),
	}
}

// GeodeticSurfaceNormal returns the unit normal of the ellipsoid surface at
// the surface point nearest to p.
func (e Ellipsoid) GeodeticSurfaceNormal(p mgl64.Vec3) mgl64.Vec3 {
	n := mgl64.Vec3{
		p[0] * e.oneOverRadiiSquared[0],
		p[1] * e.oneOverRadiiSquared[1],
		p[2] * e.oneOverRadiiSquared[2],
	}
	return n.Normalize()
}

// ToCartesian converts a cartographic position to body-fixed cartesian
// coordinates.
func (e Ellipsoid) ToCartesian(c Cartographic) mgl64.Vec3 {
	n := e.GeodeticSurfaceNormalCartographic(c)
	k := mgl64.Vec3{
		e.radiiSquared[0] * n[0],
		e.radiiSquared[1] * n[1],
		e.radiiSquared[2] * n[2],
	}
	gamma := math.Sqrt(n.Dot(k))
	k = k.Mul(1 / gamma)
	return k.Add(n.Mul(c.Height))
}
