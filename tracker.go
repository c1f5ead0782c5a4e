package groundshadow

// UsageFlags records which material input accessors a fragment shader samples.
type UsageFlags struct {
	// NormalEC: the eye-space surface normal.
	NormalEC bool
	// PositionToEyeEC: the eye-space fragment-to-eye vector.
	PositionToEyeEC bool
	// TangentToEyeMatrix: the eye-space tangent frame, used by bump and
	// normal mapped materials.
	TangentToEyeMatrix bool
	// ST: the material texture coordinates.
	ST bool
}

// Requirements is the closed set of quantities the vertex stage must compute
// and hand to the fragment stage for one shader variant.
type Requirements struct {
	EyeCoordinates       bool
	WorldCoordinates     bool
	NormalEyeCoordinates bool
	TextureCoordinates   bool
}

// merge ors o into r.
func (r *Requirements) merge(o Requirements) {
	r.EyeCoordinates = r.EyeCoordinates || o.EyeCoordinates
	r.WorldCoordinates = r.WorldCoordinates || o.WorldCoordinates
	r.NormalEyeCoordinates = r.NormalEyeCoordinates || o.NormalEyeCoordinates
	r.TextureCoordinates = r.TextureCoordinates || o.TextureCoordinates
}

// Implication table for requirement flags. Each requirement pulls in the
// requirements of everything below it:
//
//	textureCoordinates => worldCoordinates => eyeCoordinates
//	normalEyeCoordinates => eyeCoordinates
var (
	reqEyeCoordinates       = Requirements{EyeCoordinates: true}
	reqWorldCoordinates     = Requirements{WorldCoordinates: true, EyeCoordinates: true}
	reqNormalEyeCoordinates = Requirements{NormalEyeCoordinates: true, EyeCoordinates: true}
	reqTextureCoordinates   = Requirements{TextureCoordinates: true, WorldCoordinates: true, EyeCoordinates: true}
)

// CloseRequirements maps material input usage to the full set of quantities
// the vertex stage must supply. The closure is a pure function of u: flags
// only accumulate, so the result is independent of the order in which usage
// was discovered.
func CloseRequirements(u UsageFlags) (r Requirements) {
	if u.NormalEC {
		r.merge(reqNormalEyeCoordinates)
	}
	if u.PositionToEyeEC {
		r.merge(reqEyeCoordinates)
	}
	if u.TangentToEyeMatrix {
		// The tangent frame is built from the world-space position and the
		// eye-space normal.
		r.merge(reqWorldCoordinates)
		r.merge(reqNormalEyeCoordinates)
	}
	if u.ST {
		r.merge(reqTextureCoordinates)
	}
	return r
}

// ShaderDependencyTracker accumulates the shading requirements of one shader
// variant (the color pass and the pick pass each get their own). Every flag is
// monotone: once set it never reverts, and setting a usage flag can only add
// requirements. The zero value is ready to use.
type ShaderDependencyTracker struct {
	usage UsageFlags
	req   Requirements
}

// UseNormalEC records that the material samples the eye-space normal.
func (t *ShaderDependencyTracker) UseNormalEC() {
	t.usage.NormalEC = true
	t.req.merge(CloseRequirements(t.usage))
}

// UsePositionToEyeEC records that the material samples the fragment-to-eye vector.
func (t *ShaderDependencyTracker) UsePositionToEyeEC() {
	t.usage.PositionToEyeEC = true
	t.req.merge(CloseRequirements(t.usage))
}

// UseTangentToEyeMatrix records that the material samples the tangent frame.
func (t *ShaderDependencyTracker) UseTangentToEyeMatrix() {
	t.usage.TangentToEyeMatrix = true
	t.req.merge(CloseRequirements(t.usage))
}

// UseST records that the material samples texture coordinates.
func (t *ShaderDependencyTracker) UseST() {
	t.usage.ST = true
	t.req.merge(CloseRequirements(t.usage))
}

// RequireEyeCoordinates forces the eye-coordinates requirement without any
// material usage, e.g. for lit per-instance-color shading.
func (t *ShaderDependencyTracker) RequireEyeCoordinates() {
	t.req.merge(reqEyeCoordinates)
}

// RequireNormalEyeCoordinates forces the eye-space-normal requirement.
func (t *ShaderDependencyTracker) RequireNormalEyeCoordinates() {
	t.req.merge(reqNormalEyeCoordinates)
}

// RequireTextureCoordinates forces the texture-coordinates requirement, e.g.
// for fragment extent culling in shaders with no material at all.
func (t *ShaderDependencyTracker) RequireTextureCoordinates() {
	t.req.merge(reqTextureCoordinates)
}

func (t *ShaderDependencyTracker) UsesNormalEC() bool           { return t.usage.NormalEC }
func (t *ShaderDependencyTracker) UsesPositionToEyeEC() bool    { return t.usage.PositionToEyeEC }
func (t *ShaderDependencyTracker) UsesTangentToEyeMatrix() bool { return t.usage.TangentToEyeMatrix }
func (t *ShaderDependencyTracker) UsesST() bool                 { return t.usage.ST }

func (t *ShaderDependencyTracker) RequiresEyeCoordinates() bool   { return t.req.EyeCoordinates }
func (t *ShaderDependencyTracker) RequiresWorldCoordinates() bool { return t.req.WorldCoordinates }
func (t *ShaderDependencyTracker) RequiresNormalEyeCoordinates() bool {
	return t.req.NormalEyeCoordinates
}
func (t *ShaderDependencyTracker) RequiresTextureCoordinates() bool {
	return t.req.TextureCoordinates
}
