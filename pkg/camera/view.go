package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Orbit places the third person eye behind and above the player.
type Orbit struct {
	Distance     float64
	HeightOffset float64
}

// DefaultOrbit keeps the eye 5 units back and 1.5 units up.
var DefaultOrbit = Orbit{Distance: DefaultDistance, HeightOffset: DefaultHeightOffset}

// ViewVectors is everything a look-at view transform needs.
type ViewVectors struct {
	Eye    mgl64.Vec3
	LookAt mgl64.Vec3
	Up     mgl64.Vec3
}

// DeriveViewVectors returns the view vectors using DefaultOrbit.
func (s State) DeriveViewVectors() ViewVectors {
	return s.DeriveViewVectorsWith(DefaultOrbit)
}

// DeriveViewVectorsWith returns the view vectors for the current mode.
//
// First person looks from the player along yaw and pitch. Third person orbits
// the eye behind the player on yaw alone and always looks straight at the
// player, so pitch has no effect there.
func (s State) DeriveViewVectorsWith(o Orbit) ViewVectors {
	ry := mgl64.DegToRad(s.Yaw)
	rp := mgl64.DegToRad(s.Pitch)
	p := s.Position

	if s.Mode == ThirdPerson {
		return ViewVectors{
			Eye: mgl64.Vec3{
				p[0] - math.Sin(ry)*o.Distance,
				p[1] + o.HeightOffset,
				p[2] + math.Cos(ry)*o.Distance,
			},
			LookAt: p,
			Up:     WorldUp,
		}
	}

	dir := mgl64.Vec3{
		math.Sin(ry) * math.Cos(rp),
		math.Sin(rp),
		-math.Cos(ry) * math.Cos(rp),
	}
	return ViewVectors{
		Eye:    p,
		LookAt: p.Add(dir),
		Up:     WorldUp,
	}
}

// ViewMatrix returns the current view matrix using DefaultOrbit
func (s State) ViewMatrix() mgl32.Mat4 {
	return s.ViewMatrixWith(DefaultOrbit)
}

// ViewMatrixWith builds the look-at matrix in double precision and narrows it
// for the shader.
func (s State) ViewMatrixWith(o Orbit) mgl32.Mat4 {
	v := s.DeriveViewVectorsWith(o)
	return toMat4(mgl64.LookAtV(v.Eye, v.LookAt, v.Up))
}

// Projection returns a perspective matrix for the given window size. A zero
// height is treated as one so a minimised window never divides by zero.
func Projection(fovDeg float64, width, height int, near, far float64) mgl32.Mat4 {
	if height <= 0 {
		height = 1
	}
	if width <= 0 {
		width = 1
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(float32(fovDeg)), aspect, float32(near), float32(far))
}

func toMat4(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i := range m {
		out[i] = float32(m[i])
	}
	return out
}

// Vec3f narrows a double precision vector for uniforms.
func Vec3f(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
