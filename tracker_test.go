package groundshadow_test

import (
	"testing"

	"github.com/soypat/groundshadow"
)

func TestCloseRequirements(t *testing.T) {
	tests := []struct {
		name  string
		usage groundshadow.UsageFlags
		want  groundshadow.Requirements
	}{
		{
			name: "nothing used",
		},
		{
			name:  "normal",
			usage: groundshadow.UsageFlags{NormalEC: true},
			want:  groundshadow.Requirements{NormalEyeCoordinates: true, EyeCoordinates: true},
		},
		{
			name:  "position to eye",
			usage: groundshadow.UsageFlags{PositionToEyeEC: true},
			want:  groundshadow.Requirements{EyeCoordinates: true},
		},
		{
			name:  "tangent frame",
			usage: groundshadow.UsageFlags{TangentToEyeMatrix: true},
			want: groundshadow.Requirements{
				WorldCoordinates:     true,
				NormalEyeCoordinates: true,
				EyeCoordinates:       true,
			},
		},
		{
			name:  "texture coordinates",
			usage: groundshadow.UsageFlags{ST: true},
			want: groundshadow.Requirements{
				TextureCoordinates: true,
				WorldCoordinates:   true,
				EyeCoordinates:     true,
			},
		},
		{
			name: "everything",
			usage: groundshadow.UsageFlags{
				NormalEC:           true,
				PositionToEyeEC:    true,
				TangentToEyeMatrix: true,
				ST:                 true,
			},
			want: groundshadow.Requirements{
				TextureCoordinates:   true,
				WorldCoordinates:     true,
				NormalEyeCoordinates: true,
				EyeCoordinates:       true,
			},
		},
	}
	for _, tc := range tests {
		if got := groundshadow.CloseRequirements(tc.usage); got != tc.want {
			t.Errorf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func trackerState(tr *groundshadow.ShaderDependencyTracker) [8]bool {
	return [8]bool{
		tr.RequiresEyeCoordinates(),
		tr.RequiresWorldCoordinates(),
		tr.RequiresNormalEyeCoordinates(),
		tr.RequiresTextureCoordinates(),
		tr.UsesNormalEC(),
		tr.UsesPositionToEyeEC(),
		tr.UsesTangentToEyeMatrix(),
		tr.UsesST(),
	}
}

func permutations(n int) [][]int {
	if n == 1 {
		return [][]int{{0}}
	}
	var perms [][]int
	for _, sub := range permutations(n - 1) {
		for i := 0; i <= len(sub); i++ {
			p := make([]int, 0, n)
			p = append(p, sub[:i]...)
			p = append(p, n-1)
			p = append(p, sub[i:]...)
			perms = append(perms, p)
		}
	}
	return perms
}

// Final state must not depend on the order usage flags were discovered in, and
// repeating a write must change nothing.
func TestTrackerOrderIndependence(t *testing.T) {
	setters := []func(*groundshadow.ShaderDependencyTracker){
		(*groundshadow.ShaderDependencyTracker).UseNormalEC,
		(*groundshadow.ShaderDependencyTracker).UsePositionToEyeEC,
		(*groundshadow.ShaderDependencyTracker).UseTangentToEyeMatrix,
		(*groundshadow.ShaderDependencyTracker).UseST,
	}
	var reference groundshadow.ShaderDependencyTracker
	for _, set := range setters {
		set(&reference)
	}
	want := trackerState(&reference)

	for _, perm := range permutations(len(setters)) {
		var tr groundshadow.ShaderDependencyTracker
		for _, i := range perm {
			setters[i](&tr)
		}
		if got := trackerState(&tr); got != want {
			t.Fatalf("order %v: got %v, want %v", perm, got, want)
		}
		// Idempotence: a second pass must be a no-op.
		for _, i := range perm {
			setters[i](&tr)
		}
		if got := trackerState(&tr); got != want {
			t.Fatalf("order %v repeated: got %v, want %v", perm, got, want)
		}
	}
}

// Once true, a flag never reverts as more usage accumulates.
func TestTrackerMonotonic(t *testing.T) {
	var tr groundshadow.ShaderDependencyTracker
	tr.UsePositionToEyeEC()
	if !tr.RequiresEyeCoordinates() {
		t.Fatal("positionToEyeEC must require eye coordinates")
	}
	prev := trackerState(&tr)
	steps := []func(*groundshadow.ShaderDependencyTracker){
		(*groundshadow.ShaderDependencyTracker).UseST,
		(*groundshadow.ShaderDependencyTracker).RequireNormalEyeCoordinates,
		(*groundshadow.ShaderDependencyTracker).UseTangentToEyeMatrix,
		(*groundshadow.ShaderDependencyTracker).RequireTextureCoordinates,
		(*groundshadow.ShaderDependencyTracker).UseNormalEC,
	}
	for n, step := range steps {
		step(&tr)
		got := trackerState(&tr)
		for i := range got {
			if prev[i] && !got[i] {
				t.Fatalf("step %d: flag %d reverted from true to false", n, i)
			}
		}
		prev = got
	}
}

func TestTrackerImplications(t *testing.T) {
	var tangent groundshadow.ShaderDependencyTracker
	tangent.UseTangentToEyeMatrix()
	if !tangent.RequiresWorldCoordinates() || !tangent.RequiresNormalEyeCoordinates() || !tangent.RequiresEyeCoordinates() {
		t.Error("tangentToEyeMatrix must imply world, normal-eye and eye coordinates")
	}
	if tangent.RequiresTextureCoordinates() {
		t.Error("tangentToEyeMatrix must not imply texture coordinates")
	}

	var st groundshadow.ShaderDependencyTracker
	st.UseST()
	if !st.RequiresTextureCoordinates() || !st.RequiresWorldCoordinates() || !st.RequiresEyeCoordinates() {
		t.Error("st must imply texture, world and eye coordinates")
	}
	if st.RequiresNormalEyeCoordinates() {
		t.Error("st must not imply normal eye coordinates")
	}

	var req groundshadow.ShaderDependencyTracker
	req.RequireTextureCoordinates()
	if !req.RequiresWorldCoordinates() || !req.RequiresEyeCoordinates() {
		t.Error("texture coordinate requirement must pull in world and eye coordinates")
	}
	if req.UsesST() {
		t.Error("requirement-tier write must not set usage flags")
	}
}
