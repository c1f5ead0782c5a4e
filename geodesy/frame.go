package geodesy

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Below this fraction of the maximum radius the origin is considered to lie on
// the polar axis and the east direction is no longer derivable from it.
const polarEpsilon = 1e-14

// EastNorthUpToFixedFrame returns the transform from a local east-north-up
// frame centered at origin to the ellipsoid's body-fixed frame. The matrix
// columns are the east, north and up unit vectors followed by origin as the
// translation.
func (e Ellipsoid) EastNorthUpToFixedFrame(origin mgl64.Vec3) mgl64.Mat4 {
	up := e.GeodeticSurfaceNormal(origin)
	var east mgl64.Vec3
	if math.Hypot(origin[0], origin[1]) < polarEpsilon*e.maximumRadius {
		// Origin sits on the polar axis. Pick the conventional frame there so
		// callers get a deterministic answer instead of a NaN basis.
		east = mgl64.Vec3{0, 1, 0}
	} else {
		east = mgl64.Vec3{-origin[1], origin[0], 0}.Normalize()
	}
	north := up.Cross(east)
	return mgl64.Mat4{
		east[0], east[1], east[2], 0,
		north[0], north[1], north[2], 0,
		up[0], up[1], up[2], 0,
		origin[0], origin[1], origin[2], 1,
	}
}
