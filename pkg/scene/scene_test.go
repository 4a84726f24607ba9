package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

func TestGeometryIndicesInRange(t *testing.T) {
	testCases := []struct {
		name      string
		geom      Geometry
		vertices  int
		triangles int
	}{
		{"floor", Floor(), 4, 2},
		{"cube", Cube(), 24, 12},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if len(tc.geom.Vertices)%FloatsPerVertex != 0 {
				t.Fatalf("vertex data length %d is not a multiple of %d", len(tc.geom.Vertices), FloatsPerVertex)
			}
			if tc.geom.VertexCount() != tc.vertices {
				t.Fatalf("expected %d vertices, got %d", tc.vertices, tc.geom.VertexCount())
			}
			if len(tc.geom.Indices) != tc.triangles*3 {
				t.Fatalf("expected %d indices, got %d", tc.triangles*3, len(tc.geom.Indices))
			}
			for i, idx := range tc.geom.Indices {
				if int(idx) >= tc.geom.VertexCount() {
					t.Fatalf("index %d = %d out of range", i, idx)
				}
			}
		})
	}
}

func TestFloorIsFlatAndFacesUp(t *testing.T) {
	g := Floor()
	for v := 0; v < g.VertexCount(); v++ {
		base := v * FloatsPerVertex
		if g.Vertices[base+1] != 0 {
			t.Errorf("vertex %d: y = %v, expected 0", v, g.Vertices[base+1])
		}
		n := mgl32.Vec3{g.Vertices[base+3], g.Vertices[base+4], g.Vertices[base+5]}
		if n != (mgl32.Vec3{0, 1, 0}) {
			t.Errorf("vertex %d: normal %v, expected up", v, n)
		}
		for _, c := range []float32{g.Vertices[base], g.Vertices[base+2]} {
			if c != FloorHalfSize && c != -FloorHalfSize {
				t.Errorf("vertex %d: corner coordinate %v", v, c)
			}
		}
	}
}

func TestPlayerModel(t *testing.T) {
	m := PlayerModel(mgl64.Vec3{2, 1, -3})

	testCases := []struct {
		name string
		in   mgl32.Vec3
		want mgl32.Vec3
	}{
		{"centre", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 0.5, -3}},
		{"bottom sits on floor", mgl32.Vec3{0.5, -0.5, 0.5}, mgl32.Vec3{2.25, 0, -2.75}},
		{"top reaches eye height", mgl32.Vec3{-0.5, 0.5, -0.5}, mgl32.Vec3{1.75, 1, -3.25}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := mgl32.TransformCoordinate(tc.in, m)
			if !got.ApproxEqualThreshold(tc.want, 1e-6) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
