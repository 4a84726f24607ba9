package camera

import "github.com/go-gl/mathgl/mgl64"

// Camera constants
const (
	// Input defaults
	DefaultMoveSpeed        = 0.5
	DefaultMouseSensitivity = 0.1

	// Default orientation
	DefaultYaw   = 0.0
	DefaultPitch = 0.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0

	// Third person orbit
	DefaultDistance     = 5.0
	DefaultHeightOffset = 1.5

	// Projection
	DefaultFOV  = 60.0
	DefaultNear = 0.1
	DefaultFar  = 1000.0
)

// DefaultPosition is where the player starts, at head height.
var DefaultPosition = mgl64.Vec3{0, 1, 5}

// WorldUp is the up vector handed to every view transform.
var WorldUp = mgl64.Vec3{0, 1, 0}
