// Package scene describes what gets drawn each frame as plain vertex data and
// transforms, leaving all GPU work to the render package.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// FloatsPerVertex is the interleaved layout: position (3) then normal (3).
const FloatsPerVertex = 6

// FloorHalfSize is half the edge length of the square ground plane.
const FloorHalfSize = 50.0

// Colours and lighting
var (
	ClearColor  = mgl32.Vec4{0.1, 0.1, 0.15, 0.0} // night sky
	FloorColor  = mgl32.Vec3{0.5, 0.5, 0.5}
	PlayerColor = mgl32.Vec3{0.0, 0.0, 0.8}
	LightPos    = mgl32.Vec3{0.0, 20.0, 0.0} // ceiling light above the centre
	LightColor  = mgl32.Vec3{1.0, 1.0, 1.0}
)

// Geometry is an indexed triangle list.
type Geometry struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of interleaved vertices.
func (g Geometry) VertexCount() int {
	return len(g.Vertices) / FloatsPerVertex
}

// Floor returns the ground quad on y=0, facing up.
func Floor() Geometry {
	const h = FloorHalfSize
	return Geometry{
		Vertices: []float32{
			-h, 0, -h, 0, 1, 0,
			-h, 0, h, 0, 1, 0,
			h, 0, h, 0, 1, 0,
			h, 0, -h, 0, 1, 0,
		},
		Indices: []uint32{
			0, 1, 2, 2, 3, 0,
		},
	}
}

// Cube returns a unit cube centred on the origin with per-face normals.
func Cube() Geometry {
	vertices := []float32{
		// Front face
		-0.5, -0.5, 0.5, 0.0, 0.0, 1.0,
		0.5, -0.5, 0.5, 0.0, 0.0, 1.0,
		0.5, 0.5, 0.5, 0.0, 0.0, 1.0,
		-0.5, 0.5, 0.5, 0.0, 0.0, 1.0,

		// Back face
		-0.5, -0.5, -0.5, 0.0, 0.0, -1.0,
		-0.5, 0.5, -0.5, 0.0, 0.0, -1.0,
		0.5, 0.5, -0.5, 0.0, 0.0, -1.0,
		0.5, -0.5, -0.5, 0.0, 0.0, -1.0,

		// Top face
		-0.5, 0.5, -0.5, 0.0, 1.0, 0.0,
		-0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
		0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
		0.5, 0.5, -0.5, 0.0, 1.0, 0.0,

		// Bottom face
		-0.5, -0.5, -0.5, 0.0, -1.0, 0.0,
		0.5, -0.5, -0.5, 0.0, -1.0, 0.0,
		0.5, -0.5, 0.5, 0.0, -1.0, 0.0,
		-0.5, -0.5, 0.5, 0.0, -1.0, 0.0,

		// Right face
		0.5, -0.5, -0.5, 1.0, 0.0, 0.0,
		0.5, 0.5, -0.5, 1.0, 0.0, 0.0,
		0.5, 0.5, 0.5, 1.0, 0.0, 0.0,
		0.5, -0.5, 0.5, 1.0, 0.0, 0.0,

		// Left face
		-0.5, -0.5, -0.5, -1.0, 0.0, 0.0,
		-0.5, -0.5, 0.5, -1.0, 0.0, 0.0,
		-0.5, 0.5, 0.5, -1.0, 0.0, 0.0,
		-0.5, 0.5, -0.5, -1.0, 0.0, 0.0,
	}

	indices := []uint32{
		0, 1, 2, 2, 3, 0, // Front face
		4, 5, 6, 6, 7, 4, // Back face
		8, 9, 10, 10, 11, 8, // Top face
		12, 13, 14, 14, 15, 12, // Bottom face
		16, 17, 18, 18, 19, 16, // Right face
		20, 21, 22, 22, 23, 20, // Left face
	}

	return Geometry{Vertices: vertices, Indices: indices}
}

// PlayerModel places the player cube under the eye anchor: a 0.5 x 1 x 0.5
// box centred at half the anchor height, so it stands on the floor.
func PlayerModel(position mgl64.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(float32(position[0]), float32(position[1]/2), float32(position[2]))
	return t.Mul4(mgl32.Scale3D(0.5, 1.0, 0.5))
}

// FloorModel is the floor's model matrix; its vertices are already in world space.
var FloorModel = mgl32.Ident4()
