package groundshadow

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/soypat/groundshadow/geodesy"
)

// Footprints wider or taller than this angular span (1 degree) encode
// spherical extents instead of planar distance-to-plane attributes, which
// grow numerically unstable over large spans.
const maxAngleForPlanarExtents = math.Pi / 180

// Outward padding applied to spherical extents, absorbing the float mismatch
// between attribute encoding here and per-fragment recomputation in the
// shader. Without it, fragments on the footprint edge cull intermittently.
const sphericalExtentPadding = 1e-5

// ShouldUseSphericalCoordinates reports whether a footprint covering r must
// encode spherical extents rather than planar ones. The comparison is
// strictly exclusive: a rectangle of exactly 1 degree still encodes planar.
func ShouldUseSphericalCoordinates(r geodesy.Rectangle) bool {
	return math.Max(r.Width(), r.Height()) > maxAngleForPlanarExtents
}

func validateBuilderArgs(e geodesy.Ellipsoid, proj geodesy.MapProjection) {
	if e.MaximumRadius() == 0 {
		panic("groundshadow: uninitialized ellipsoid")
	}
	if proj == nil {
		panic("groundshadow: nil map projection")
	}
}

// PlanarTextureCoordinateAttributes computes the per-instance attributes for
// a footprint small enough for planar texture coordinate reconstruction:
// the double-single encoded southwest corner of the local east-north-up
// footprint with the eastward and northward vectors spanning it, the rotated
// texture frame bookkeeping, and the shared 2D/Columbus-View planes.
//
// bounding is the possibly-rotated extent actually textured; geometry is the
// unrotated source rectangle. height extrudes the shadow volume footprint.
// stRotation rotates texture coordinates and rotation the geometry, both in
// radians counterclockwise.
func PlanarTextureCoordinateAttributes(bounding, geometry geodesy.Rectangle, e geodesy.Ellipsoid, proj geodesy.MapProjection, height, stRotation, rotation float64) Attributes {
	validateBuilderArgs(e, proj)
	southWest, eastward, northward := computeRectangleBounds(bounding, e, height)

	attrs := make(Attributes, 8)
	swxHi, swxLo := EncodeDoubleSingle(southWest[0])
	swyHi, swyLo := EncodeDoubleSingle(southWest[1])
	swzHi, swzLo := EncodeDoubleSingle(southWest[2])
	attrs[AttrSouthWestHigh] = Attribute{
		Components: 3,
		Value:      []float32{swxHi, swyHi, swzHi},
	}
	attrs[AttrSouthWestLow] = Attribute{
		Components: 3,
		Value:      []float32{swxLo, swyLo, swzLo},
	}
	// Eastward and northward are differences of nearby points. Their
	// magnitude is footprint-sized, well within single precision.
	attrs[AttrEastward] = Attribute{
		Components: 3,
		Value:      []float32{float32(eastward[0]), float32(eastward[1]), float32(eastward[2])},
	}
	attrs[AttrNorthward] = Attribute{
		Components: 3,
		Value:      []float32{float32(northward[0]), float32(northward[1]), float32(northward[2])},
	}
	addTextureCoordinateRotationAttributes(attrs, bounding, geometry, stRotation, rotation)
	add2DTextureCoordinateAttributes(attrs, bounding, proj)
	return attrs
}

// SphericalExtentsAttributes computes the per-instance attributes for a
// footprint too large for planar reconstruction: padded spherical extents
// plus the same rotated texture frame bookkeeping and 2D planes as the
// planar path.
func SphericalExtentsAttributes(bounding, geometry geodesy.Rectangle, e geodesy.Ellipsoid, proj geodesy.MapProjection, stRotation, rotation float64) Attributes {
	validateBuilderArgs(e, proj)
	south, west := latLongToSpherical(bounding.South, bounding.West, e)
	north, east := latLongToSpherical(bounding.North, bounding.East, e)

	// Expand every bound outward so edge fragments never fall just outside
	// the encoded range.
	south -= sphericalExtentPadding
	west -= sphericalExtentPadding
	north += sphericalExtentPadding
	east += sphericalExtentPadding

	attrs := make(Attributes, 5)
	attrs[AttrSphericalExtents] = Attribute{
		Components: 4,
		Value:      []float32{south, west, 1 / (north - south), 1 / (east - west)},
	}
	addTextureCoordinateRotationAttributes(attrs, bounding, geometry, stRotation, rotation)
	add2DTextureCoordinateAttributes(attrs, bounding, proj)
	return attrs
}

// latLongToSpherical converts an angular position on the ellipsoid into the
// spherical latitude/longitude pair the fragment shader computes from the
// interpolated world position. Cartographic and spherical coordinates differ
// on an ellipsoid, and the shader's fast atan2 differs from the exact one, so
// the attribute side must run the identical conversion.
func latLongToSpherical(latitude, longitude float64, e geodesy.Ellipsoid) (sphereLat, sphereLon float32) {
	p := e.ToCartesian(geodesy.Cartographic{Longitude: longitude, Latitude: latitude})
	x, y, z := float32(p[0]), float32(p[1]), float32(p[2])
	magXY := math32.Sqrt(x*x + y*y)
	return FastApproximateAtan2(magXY, z), FastApproximateAtan2(x, y)
}

// add2DTextureCoordinateAttributes stores the projected footprint corners for
// 2D/Columbus-View rendering. The projected rectangle is axis aligned, so of
// the three projected corners only four scalars are distinct: southwest.x,
// southwest.y, northwest.y and southeast.x, each double-single encoded.
func add2DTextureCoordinateAttributes(attrs Attributes, r geodesy.Rectangle, proj geodesy.MapProjection) {
	southWest := proj.Project(geodesy.Cartographic{Longitude: r.West, Latitude: r.South})
	northWest := proj.Project(geodesy.Cartographic{Longitude: r.West, Latitude: r.North})
	southEast := proj.Project(geodesy.Cartographic{Longitude: r.East, Latitude: r.South})

	swxHi, swxLo := EncodeDoubleSingle(southWest[0])
	swyHi, swyLo := EncodeDoubleSingle(southWest[1])
	nwyHi, nwyLo := EncodeDoubleSingle(northWest[1])
	sexHi, sexLo := EncodeDoubleSingle(southEast[0])
	attrs[AttrPlanes2DHigh] = Attribute{
		Components: 4,
		Value:      []float32{swxHi, swyHi, nwyHi, sexHi},
	}
	attrs[AttrPlanes2DLow] = Attribute{
		Components: 4,
		Value:      []float32{swxLo, swyLo, nwyLo, sexLo},
	}
}

var planarAttributeNames = [...]string{
	AttrSouthWestHigh, AttrSouthWestLow, AttrEastward, AttrNorthward,
	AttrUMaxVmax, AttrUVMinAndExtents, AttrPlanes2DHigh, AttrPlanes2DLow,
}

var sphericalAttributeNames = [...]string{
	AttrSphericalExtents,
	AttrUMaxVmax, AttrUVMinAndExtents, AttrPlanes2DHigh, AttrPlanes2DLow,
}

// HasAttributesForPlanarTextureCoordinates reports whether attrs carries the
// complete planar attribute set, shared 2D attributes included. Callers use
// it to pick which shader variant an instance's precomputed attributes can
// feed.
func HasAttributesForPlanarTextureCoordinates(attrs Attributes) bool {
	for _, name := range planarAttributeNames {
		if _, ok := attrs[name]; !ok {
			return false
		}
	}
	return true
}

// HasAttributesForSphericalExtents reports whether attrs carries the complete
// spherical attribute set, shared 2D attributes included.
func HasAttributesForSphericalExtents(attrs Attributes) bool {
	for _, name := range sphericalAttributeNames {
		if _, ok := attrs[name]; !ok {
			return false
		}
	}
	return true
}
