package groundshadow

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/groundshadow/geodesy"
)

// textureCoordinateRotationPoints returns three corners of the texture frame
// in normalized bounding-rectangle coordinates: the minimum corner, the
// max-Y corner and the max-X corner. The fourth corner is derivable from
// these three and is never stored.
//
// The geometry rectangle's half extents form an axis-aligned box around its
// center. Rotating that box by (rotation - stRotation) expresses it in the
// desired texture frame; the axis-aligned bound of the rotated corners is the
// texture-space box. Three of its corners rotated back by stRotation land in
// the east-north frame, where they normalize against the bounding rectangle.
// The corner selection is load-bearing: the consuming shader derives u from
// the max-X corner and v from the max-Y corner, so swapping them silently
// swaps the texture axes.
func textureCoordinateRotationPoints(bounding, geometry geodesy.Rectangle, stRotation, rotation float64) (minXY, maxY, maxX ms2.Vec) {
	if stRotation == 0 {
		// Texture frame aligned with east-north: normalized coordinates are
		// the bounding-rectangle-relative coordinates themselves.
		return ms2.Vec{X: 0, Y: 0}, ms2.Vec{X: 0, Y: 1}, ms2.Vec{X: 1, Y: 0}
	}

	halfWidth := float32(geometry.Width()) * 0.5
	halfHeight := float32(geometry.Height()) * 0.5
	toDesired := ms2.RotationMat2(float32(rotation - stRotation))
	corners := [4]ms2.Vec{
		{X: -halfWidth, Y: -halfHeight},
		{X: -halfWidth, Y: halfHeight},
		{X: halfWidth, Y: -halfHeight},
		{X: halfWidth, Y: halfHeight},
	}
	const largenum = 1e20
	boxMin := ms2.Vec{X: largenum, Y: largenum}
	boxMax := ms2.Vec{X: -largenum, Y: -largenum}
	for i := range corners {
		rotated := ms2.MulMatVec(toDesired, corners[i])
		boxMin = ms2.MinElem(boxMin, rotated)
		boxMax = ms2.MaxElem(boxMax, rotated)
	}

	// The (maxX, maxY) corner is skipped on purpose; see doc comment.
	pts := [3]ms2.Vec{
		boxMin,
		{X: boxMin.X, Y: boxMax.Y},
		{X: boxMax.X, Y: boxMin.Y},
	}
	back := ms2.RotationMat2(float32(stRotation))
	center := geometry.Center()
	for i := range pts {
		p := ms2.MulMatVec(back, pts[i])
		// Remap into [0,1] against the bounding rectangle. Absolute angular
		// positions are reduced in float64 so the small normalized result
		// is not dominated by float32 roundoff of radian-scale values.
		u := (center.Longitude + float64(p.X) - bounding.West) / bounding.Width()
		v := (center.Latitude + float64(p.Y) - bounding.South) / bounding.Height()
		pts[i] = ms2.Vec{X: float32(u), Y: float32(v)}
	}
	return pts[0], pts[1], pts[2]
}

// pointLineDistance returns the perpendicular distance from p to the infinite
// line through a and b.
func pointLineDistance(p, a, b ms2.Vec) float32 {
	ab := ms2.Sub(b, a)
	ap := ms2.Sub(p, a)
	return math32.Abs(ab.X*ap.Y-ab.Y*ap.X) / ms2.Norm(ab)
}

// addTextureCoordinateRotationAttributes stores the rotated-texture-frame
// bookkeeping. uMaxVmax packs the max-Y and max-X corners; uvMinAndExtents
// packs the minimum corner with the inverse perpendicular distances between
// the corners, which are the inverse texture-space extents. The fragment
// shader recovers normalized coordinates from two point-to-line distances
// even when the texture frame is rotated relative to the geometry.
func addTextureCoordinateRotationAttributes(attrs Attributes, bounding, geometry geodesy.Rectangle, stRotation, rotation float64) {
	minXY, maxY, maxX := textureCoordinateRotationPoints(bounding, geometry, stRotation, rotation)
	attrs[AttrUMaxVmax] = Attribute{
		Components: 4,
		Value:      []float32{maxY.X, maxY.Y, maxX.X, maxX.Y},
	}
	inverseExtentX := 1 / pointLineDistance(maxX, minXY, maxY)
	inverseExtentY := 1 / pointLineDistance(maxY, minXY, maxX)
	attrs[AttrUVMinAndExtents] = Attribute{
		Components: 4,
		Value:      []float32{minXY.X, minXY.Y, inverseExtentX, inverseExtentY},
	}
}
