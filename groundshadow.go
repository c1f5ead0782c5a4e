// Package groundshadow computes shader feature flags and compact per-instance
// numeric attributes for terrain-draped geometry rendered with a shadow-volume
// technique.
//
// The package has two independent components composed by one façade:
//
//   - ShaderDependencyTracker derives, from a material's shader source text,
//     the closure of shading quantities the vertex stage must compute and
//     thread to the fragment stage.
//   - The texture coordinate attribute builders (PlanarTextureCoordinateAttributes,
//     SphericalExtentsAttributes) encode a rectangular footprint on an
//     ellipsoid into a fixed set of float vectors from which a fragment shader
//     reconstructs its normalized position within the footprint.
//
// ShadowVolumeAppearance composes both: built once per appearance, it emits
// the preprocessor feature defines for each of the {color, pick} x
// {3D, 2D/Columbus-View} shader variants.
//
// Nothing here touches the GPU. Shader source bodies, their compilation, and
// the upload of the produced attributes belong to the caller.
package groundshadow

import "math"

// Attribute is a per-instance geometry attribute value: a fixed
// component-count float vector shared by every vertex of an instance.
type Attribute struct {
	// Components is the number of floats per attribute (2, 3 or 4).
	Components int
	// Value holds exactly Components floats.
	Value []float32
}

// Attributes maps attribute names to their per-instance values.
type Attributes map[string]Attribute

// Names of the attributes produced by the texture coordinate builders. The
// consuming vertex shader declares inputs under these exact names.
const (
	AttrUMaxVmax         = "uMaxVmax"
	AttrUVMinAndExtents  = "uvMinAndExtents"
	AttrSouthWestHigh    = "southWest_HIGH"
	AttrSouthWestLow     = "southWest_LOW"
	AttrEastward         = "eastward"
	AttrNorthward        = "northward"
	AttrPlanes2DHigh     = "planes2D_HIGH"
	AttrPlanes2DLow      = "planes2D_LOW"
	AttrSphericalExtents = "sphericalExtents"
)

// EncodeDoubleSingle splits a float64 into a high/low float32 pair that
// together preserve precision beyond single-float range. The split is at a
// fixed 2^16 boundary so that high is exactly representable and low carries
// the sub-65536 remainder: decoding is float64(high) + float64(low).
func EncodeDoubleSingle(v float64) (high, low float32) {
	var h float64
	if v >= 0 {
		h = math.Floor(v/65536) * 65536
	} else {
		h = -math.Floor(-v/65536) * 65536
	}
	return float32(h), float32(v - h)
}
