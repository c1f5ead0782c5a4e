package groundshadow

import "strings"

// Material exposes the fragment shader source implementing a surface material.
type Material interface {
	// ShaderSource returns the material's shader source text.
	ShaderSource() string
}

// Appearance describes how geometry is shaded.
type Appearance interface {
	// Material returns the appearance's material, or nil when the appearance
	// carries its own dedicated shader (the per-instance-color path).
	Material() Material
	// FragmentShaderSource returns the appearance's fragment shader body.
	FragmentShaderSource() string
	// Flat reports whether shading skips lighting entirely.
	Flat() bool
}

// PerInstanceColorAppearance shades geometry with a color carried as a vertex
// attribute instead of a material. It has no material source to scan: its
// shading requirements follow from the FlatShading flag alone.
type PerInstanceColorAppearance struct {
	// Source is the dedicated fragment shader body.
	Source string
	// FlatShading skips lighting when set.
	FlatShading bool
}

func (a PerInstanceColorAppearance) Material() Material           { return nil }
func (a PerInstanceColorAppearance) FragmentShaderSource() string { return a.Source }
func (a PerInstanceColorAppearance) Flat() bool                   { return a.FlatShading }

// MaterialAppearance shades geometry with an arbitrary material.
type MaterialAppearance struct {
	Mat Material
	// Source is the fragment shader body that calls into the material.
	Source      string
	FlatShading bool
}

func (a MaterialAppearance) Material() Material           { return a.Mat }
func (a MaterialAppearance) FragmentShaderSource() string { return a.Source }
func (a MaterialAppearance) Flat() bool                   { return a.FlatShading }

// Accessor tokens whose appearance in material source marks a material input
// as used. A shader that builds the default material also reads the normal.
const (
	tokenNormalEC        = "materialInput.normalEC"
	tokenPositionToEyeEC = "materialInput.positionToEyeEC"
	tokenTangentToEye    = "materialInput.tangentToEyeMatrix"
	tokenST              = "materialInput.st"
	tokenDefaultMaterial = "getDefaultMaterial"
)

// MaterialSourceScanner infers material input usage from shader source text.
//
// The scan is a plain substring search, not a parse: a token occurring in a
// comment or inside a longer identifier still counts as used. That errs on
// the side of computing too much rather than producing a shader that reads an
// undefined input.
type MaterialSourceScanner struct{}

// Scan reports which material inputs the given source text references.
func (MaterialSourceScanner) Scan(source string) UsageFlags {
	return UsageFlags{
		NormalEC: strings.Contains(source, tokenNormalEC) ||
			strings.Contains(source, tokenDefaultMaterial),
		PositionToEyeEC:    strings.Contains(source, tokenPositionToEyeEC),
		TangentToEyeMatrix: strings.Contains(source, tokenTangentToEye),
		ST:                 strings.Contains(source, tokenST),
	}
}
