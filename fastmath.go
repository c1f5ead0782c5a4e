package groundshadow

import "github.com/chewxy/math32"

// fastApproximateAtan evaluates atan for x in [-1, 1] with the cubic
// approximation used by the consuming fragment shader. Maximum error ~0.0015
// radians.
func fastApproximateAtan(x float32) float32 {
	return x * (-0.1784*math32.Abs(x) - 0.0663*x*x + 1.0301)
}

// FastApproximateAtan2 computes atan2(y, x) with the same range reduction and
// polynomial the consuming fragment shader uses. Algorithmic parity with the
// shader matters more than accuracy here: spherical extent attributes encoded
// with this function must match the shader's per-fragment recomputation, or
// fragments near the footprint edge cull incorrectly.
//
// The result is NaN when x and y are both zero.
func FastApproximateAtan2(x, y float32) float32 {
	// Range-reduce to opposite/adjacent in [0, 1].
	opposite := math32.Abs(y)
	adjacent := math32.Abs(x)
	if opposite > adjacent {
		opposite, adjacent = adjacent, opposite
	}
	r := fastApproximateAtan(opposite / adjacent)
	if math32.Abs(y) > math32.Abs(x) {
		r = math32.Pi/2 - r
	}
	if x < 0 {
		r = math32.Pi - r
	}
	if y < 0 {
		r = -r
	}
	return r
}
