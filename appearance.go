package groundshadow

import (
	"math"
	"strconv"
	"strings"

	"github.com/soypat/groundshadow/geodesy"
)

// Feature tokens emitted as preprocessor defines for the shadow volume shader
// library. Emission order within a ShaderSource is fixed so generated sources
// are byte-stable for a given appearance.
const (
	FeatureSpherical           = "SPHERICAL"
	FeatureRequiresEC          = "REQUIRES_EC"
	FeatureRequiresWC          = "REQUIRES_WC"
	FeatureTextureCoordinates  = "TEXTURE_COORDINATES"
	FeatureCullFragments       = "CULL_FRAGMENTS"
	FeatureNormalEC            = "NORMAL_EC"
	FeaturePerInstanceColor    = "PER_INSTANCE_COLOR"
	FeatureUsesNormalEC        = "USES_NORMAL_EC"
	FeatureUsesPositionToEyeEC = "USES_POSITION_TO_EYE_EC"
	FeatureUsesTangentToEye    = "USES_TANGENT_TO_EYE"
	FeatureUsesST              = "USES_ST"
	FeatureFlat                = "FLAT"
	FeaturePick                = "PICK"
	FeatureColumbusView2D      = "COLUMBUS_VIEW_2D"
)

// Valued defines carrying the double-single encoded projected x coordinate of
// the antimeridian, used by the 2D vertex shader to unfold geometry that
// crosses it.
const (
	defineEastMostXHigh = "EAST_MOST_X_HIGH"
	defineEastMostXLow  = "EAST_MOST_X_LOW"
	defineWestMostXHigh = "WEST_MOST_X_HIGH"
	defineWestMostXLow  = "WEST_MOST_X_LOW"
)

// ShadowVolumeAppearance derives, once per appearance, everything needed to
// assemble the four shader variants ({color, pick} x {3D, 2D/Columbus-View})
// of a ground primitive: a dependency tracker per variant and the feature
// defines that follow from it. Immutable after construction.
type ShadowVolumeAppearance struct {
	extentsCulling bool
	planarExtents  bool
	appearance     Appearance
	color          ShaderDependencyTracker
	pick           ShaderDependencyTracker
}

// NewShadowVolumeAppearance scans the appearance once and returns the façade.
//
// extentsCulling enables per-fragment discard of fragments outside the
// footprint; it seeds texture coordinate requirements in both variants.
// planarExtents selects the planar attribute encoding over the spherical one
// and must agree with which attribute builder the instances were run through.
func NewShadowVolumeAppearance(extentsCulling, planarExtents bool, appearance Appearance) *ShadowVolumeAppearance {
	if appearance == nil {
		panic("groundshadow: nil appearance")
	}
	sva := &ShadowVolumeAppearance{
		extentsCulling: extentsCulling,
		planarExtents:  planarExtents,
		appearance:     appearance,
	}
	if extentsCulling {
		sva.color.RequireTextureCoordinates()
		sva.pick.RequireTextureCoordinates()
	}
	if !appearance.Flat() {
		sva.color.RequireEyeCoordinates()
	}
	if mat := appearance.Material(); mat == nil {
		// Dedicated shader with no material to scan. Lighting is the only
		// possible dependency.
		if !appearance.Flat() {
			sva.color.RequireNormalEyeCoordinates()
		}
	} else {
		usage := MaterialSourceScanner{}.Scan(mat.ShaderSource() + "\n" + appearance.FragmentShaderSource())
		if usage.NormalEC {
			sva.color.UseNormalEC()
		}
		if usage.PositionToEyeEC {
			sva.color.UsePositionToEyeEC()
		}
		if usage.TangentToEyeMatrix {
			sva.color.UseTangentToEyeMatrix()
		}
		if usage.ST {
			sva.color.UseST()
		}
	}
	// The pick variant never inspects material text: pick shading does not
	// depend on appearance beyond culling.
	return sva
}

// PlanarExtents reports whether instances carry planar rather than spherical
// extent attributes.
func (sva *ShadowVolumeAppearance) PlanarExtents() bool { return sva.planarExtents }

// sphericalMode reports whether the fragment shader reconstructs texture
// coordinates with spherical math for the given render target. A flattened
// 2D/Columbus-View target always uses the projected planes.
func (sva *ShadowVolumeAppearance) sphericalMode(columbusView2D bool) bool {
	return !sva.planarExtents && !columbusView2D
}

// CreateFragmentShaderSource returns the defines and source list for the color
// pass fragment shader. body is the shadow volume fragment shader body,
// supplied by the caller.
func (sva *ShadowVolumeAppearance) CreateFragmentShaderSource(columbusView2D bool, body string) ShaderSource {
	t := &sva.color
	var defines []string
	if sva.sphericalMode(columbusView2D) {
		defines = append(defines, FeatureSpherical)
	}
	if t.RequiresEyeCoordinates() {
		defines = append(defines, FeatureRequiresEC)
	}
	if t.RequiresWorldCoordinates() {
		defines = append(defines, FeatureRequiresWC)
	}
	if t.RequiresTextureCoordinates() {
		defines = append(defines, FeatureTextureCoordinates)
	}
	if sva.extentsCulling {
		defines = append(defines, FeatureCullFragments)
	}
	if t.RequiresNormalEyeCoordinates() {
		defines = append(defines, FeatureNormalEC)
	}
	sources := []string{body}
	if mat := sva.appearance.Material(); mat == nil {
		defines = append(defines, FeaturePerInstanceColor)
	} else {
		// Gate the material input variables the generated body references.
		if t.UsesNormalEC() {
			defines = append(defines, FeatureUsesNormalEC)
		}
		if t.UsesPositionToEyeEC() {
			defines = append(defines, FeatureUsesPositionToEyeEC)
		}
		if t.UsesTangentToEyeMatrix() {
			defines = append(defines, FeatureUsesTangentToEye)
		}
		if t.UsesST() {
			defines = append(defines, FeatureUsesST)
		}
		sources = []string{mat.ShaderSource(), body}
	}
	if sva.appearance.Flat() {
		defines = append(defines, FeatureFlat)
	}
	return ShaderSource{Defines: defines, Sources: sources}
}

// CreatePickFragmentShaderSource returns the defines and source list for the
// pick pass fragment shader. The pick color arrives as a varying.
func (sva *ShadowVolumeAppearance) CreatePickFragmentShaderSource(columbusView2D bool, body string) ShaderSource {
	t := &sva.pick
	defines := []string{FeaturePick}
	if sva.sphericalMode(columbusView2D) {
		defines = append(defines, FeatureSpherical)
	}
	if t.RequiresTextureCoordinates() {
		defines = append(defines, FeatureTextureCoordinates)
	}
	if sva.extentsCulling {
		defines = append(defines, FeatureCullFragments)
	}
	return ShaderSource{
		Defines:            defines,
		Sources:            []string{body},
		PickColorQualifier: "varying",
	}
}

// CreateVertexShaderSource returns the defines and source list for a vertex
// shader variant. defines are caller extras prepended verbatim. Passing a
// non-nil projection selects the flattened 2D/Columbus-View variant and adds
// the antimeridian location defines computed through it.
func (sva *ShadowVolumeAppearance) CreateVertexShaderSource(defines []string, body string, isPick bool, proj geodesy.MapProjection) ShaderSource {
	all := append([]string(nil), defines...)
	columbusView2D := proj != nil
	if columbusView2D {
		all = appendAntimeridianDefines(all, proj)
		all = append(all, FeatureColumbusView2D)
	}
	if sva.sphericalMode(columbusView2D) {
		all = append(all, FeatureSpherical)
	}
	t := &sva.color
	if isPick {
		t = &sva.pick
		all = append(all, FeaturePick)
	}
	if t.RequiresTextureCoordinates() {
		all = append(all, FeatureTextureCoordinates)
	}
	if sva.extentsCulling {
		all = append(all, FeatureCullFragments)
	}
	if !isPick {
		if sva.appearance.Material() == nil {
			all = append(all, FeaturePerInstanceColor)
		}
		if sva.appearance.Flat() {
			all = append(all, FeatureFlat)
		}
	}
	return ShaderSource{Defines: all, Sources: []string{body}}
}

func appendAntimeridianDefines(defines []string, proj geodesy.MapProjection) []string {
	east := proj.Project(geodesy.Cartographic{Longitude: math.Pi})
	west := proj.Project(geodesy.Cartographic{Longitude: -math.Pi})
	ehi, elo := EncodeDoubleSingle(east[0])
	whi, wlo := EncodeDoubleSingle(west[0])
	return append(defines,
		defineEastMostXHigh+" "+glslFloat(ehi),
		defineEastMostXLow+" "+glslFloat(elo),
		defineWestMostXHigh+" "+glslFloat(whi),
		defineWestMostXLow+" "+glslFloat(wlo),
	)
}

// glslFloat formats v as a GLSL float literal.
func glslFloat(v float32) string {
	s := strconv.FormatFloat(float64(v), 'g', -1, 32)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
