package geodesy_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/soypat/groundshadow/geodesy"
)

const wgs84Semimajor = 6378137.0

func vecNear(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() < tol
}

func TestToCartesian(t *testing.T) {
	e := geodesy.WGS84()
	tests := []struct {
		name string
		c    geodesy.Cartographic
		want mgl64.Vec3
	}{
		{"prime meridian equator", geodesy.Cartographic{}, mgl64.Vec3{wgs84Semimajor, 0, 0}},
		{"90 east equator", geodesy.Cartographic{Longitude: math.Pi / 2}, mgl64.Vec3{0, wgs84Semimajor, 0}},
		{"north pole", geodesy.Cartographic{Latitude: math.Pi / 2}, mgl64.Vec3{0, 0, 6356752.3142451793}},
		{"equator with height", geodesy.Cartographic{Height: 1000}, mgl64.Vec3{wgs84Semimajor + 1000, 0, 0}},
	}
	for _, tc := range tests {
		got := e.ToCartesian(tc.c)
		if !vecNear(got, tc.want, 1e-6) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestGeodeticSurfaceNormalRoundTrip(t *testing.T) {
	e := geodesy.WGS84()
	c := geodesy.Cartographic{Longitude: 0.4, Latitude: -0.7}
	fromCarto := e.GeodeticSurfaceNormalCartographic(c)
	fromCartesian := e.GeodeticSurfaceNormal(e.ToCartesian(c))
	if !vecNear(fromCarto, fromCartesian, 1e-12) {
		t.Errorf("normals disagree: %v vs %v", fromCarto, fromCartesian)
	}
	if math.Abs(fromCarto.Len()-1) > 1e-12 {
		t.Errorf("normal not unit length: %v", fromCarto.Len())
	}
}

func TestEastNorthUpToFixedFrame(t *testing.T) {
	e := geodesy.WGS84()
	origin := e.ToCartesian(geodesy.Cartographic{})
	m := e.EastNorthUpToFixedFrame(origin)

	east := mgl64.Vec3{m[0], m[1], m[2]}
	north := mgl64.Vec3{m[4], m[5], m[6]}
	up := mgl64.Vec3{m[8], m[9], m[10]}
	if !vecNear(east, mgl64.Vec3{0, 1, 0}, 1e-12) {
		t.Errorf("east basis: got %v", east)
	}
	if !vecNear(north, mgl64.Vec3{0, 0, 1}, 1e-12) {
		t.Errorf("north basis: got %v", north)
	}
	if !vecNear(up, mgl64.Vec3{1, 0, 0}, 1e-12) {
		t.Errorf("up basis: got %v", up)
	}
	if !vecNear(mgl64.Vec3{m[12], m[13], m[14]}, origin, 1e-6) {
		t.Errorf("translation: got %v, want %v", mgl64.Vec3{m[12], m[13], m[14]}, origin)
	}

	// Frame round trip: local origin maps back to the frame origin.
	back := m.Inv().Mul4x1(origin.Vec4(1))
	if back.Vec3().Len() > 1e-6 {
		t.Errorf("inverse frame: origin maps to %v, want zero", back.Vec3())
	}
}

func TestEastNorthUpToFixedFramePole(t *testing.T) {
	e := geodesy.WGS84()
	m := e.EastNorthUpToFixedFrame(e.ToCartesian(geodesy.Cartographic{Latitude: math.Pi / 2}))
	east := mgl64.Vec3{m[0], m[1], m[2]}
	up := mgl64.Vec3{m[8], m[9], m[10]}
	if !vecNear(east, mgl64.Vec3{0, 1, 0}, 1e-12) {
		t.Errorf("polar east basis: got %v", east)
	}
	if !vecNear(up, mgl64.Vec3{0, 0, 1}, 1e-12) {
		t.Errorf("polar up basis: got %v", up)
	}
	for i, v := range m {
		if math.IsNaN(v) {
			t.Fatalf("NaN at matrix element %d", i)
		}
	}
}

func TestRectangle(t *testing.T) {
	r := geodesy.RectangleFromDegrees(-10, 20, 30, 40)
	const d2r = math.Pi / 180
	if got, want := r.Width(), 40*d2r; math.Abs(got-want) > 1e-12 {
		t.Errorf("width: got %v, want %v", got, want)
	}
	if got, want := r.Height(), 20*d2r; math.Abs(got-want) > 1e-12 {
		t.Errorf("height: got %v, want %v", got, want)
	}
	c := r.Center()
	if math.Abs(c.Longitude-10*d2r) > 1e-12 || math.Abs(c.Latitude-30*d2r) > 1e-12 {
		t.Errorf("center: got %v", c)
	}
}

func TestRectangleAntimeridian(t *testing.T) {
	r := geodesy.RectangleFromDegrees(170, -5, -170, 5)
	const d2r = math.Pi / 180
	if got, want := r.Width(), 20*d2r; math.Abs(got-want) > 1e-12 {
		t.Errorf("width across antimeridian: got %v, want %v", got, want)
	}
	c := r.Center()
	if math.Abs(math.Abs(c.Longitude)-math.Pi) > 1e-12 {
		t.Errorf("center longitude across antimeridian: got %v, want +/-pi", c.Longitude)
	}
}

func TestGeographicProjection(t *testing.T) {
	p := geodesy.NewGeographicProjection(geodesy.WGS84())
	got := p.Project(geodesy.Cartographic{Longitude: math.Pi / 2, Latitude: -math.Pi / 4, Height: 12})
	want := mgl64.Vec3{math.Pi / 2 * wgs84Semimajor, -math.Pi / 4 * wgs84Semimajor, 12}
	if !vecNear(got, want, 1e-6) {
		t.Errorf("project: got %v, want %v", got, want)
	}
}

func TestWebMercatorProjection(t *testing.T) {
	p := geodesy.NewWebMercatorProjection(geodesy.WGS84())
	if got := p.Project(geodesy.Cartographic{}).Y(); got != 0 {
		t.Errorf("equator y: got %v, want 0", got)
	}
	// Latitudes past the cutoff clamp to the square extent.
	top := p.Project(geodesy.Cartographic{Latitude: math.Pi / 2}).Y()
	cut := p.Project(geodesy.Cartographic{Latitude: geodesy.WebMercatorMaximumLatitude}).Y()
	if top != cut {
		t.Errorf("clamping: pole projects to %v, cutoff to %v", top, cut)
	}
}

func TestNewEllipsoidPanicsOnNonPositiveRadius(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero radius")
		}
	}()
	geodesy.NewEllipsoid(1, 0, 1)
}
