package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Key is a discrete input the model understands.
type Key uint8

const (
	KeyNone Key = iota
	KeyForward
	KeyBackward
	KeyStrafeLeft
	KeyStrafeRight
	KeyToggleView
	KeyJump
	KeyQuit
)

// Escape is the ASCII code the host sends for the escape key.
const Escape rune = 27

func (k Key) String() string {
	switch k {
	case KeyForward:
		return "forward"
	case KeyBackward:
		return "backward"
	case KeyStrafeLeft:
		return "strafe-left"
	case KeyStrafeRight:
		return "strafe-right"
	case KeyToggleView:
		return "toggle-view"
	case KeyJump:
		return "jump"
	case KeyQuit:
		return "quit"
	default:
		return "none"
	}
}

// KeyFromCode maps an ASCII key code (WASD, Q, space, escape) to a Key.
// Letters match in either case. Unmapped codes return KeyNone.
func KeyFromCode(code rune) Key {
	switch code {
	case 'w', 'W':
		return KeyForward
	case 's', 'S':
		return KeyBackward
	case 'a', 'A':
		return KeyStrafeLeft
	case 'd', 'D':
		return KeyStrafeRight
	case 'q', 'Q':
		return KeyToggleView
	case ' ':
		return KeyJump
	case Escape:
		return KeyQuit
	default:
		return KeyNone
	}
}

// Signal tells the host what to do after a key was applied.
type Signal uint8

const (
	SignalNone Signal = iota
	SignalRedraw
	SignalQuit
)

// ApplyPointerDelta turns a pointer offset from the window centre into yaw and
// pitch. Moving the pointer up (negative dy) looks up. The returned bool
// reports whether the frame needs a redraw; a zero or non-finite delta leaves
// the state untouched and reports false.
func (s State) ApplyPointerDelta(dx, dy, sensitivity float64) (State, bool) {
	if dx == 0 && dy == 0 {
		return s, false
	}
	if !finite(dx, dy, sensitivity) {
		return s, false
	}

	yaw := s.Yaw + dx*sensitivity
	pitch := s.Pitch - dy*sensitivity
	if !finite(yaw, pitch) {
		return s, false
	}

	s.Yaw = yaw
	s.Pitch = clampPitch(pitch)
	return s, true
}

// ApplyMovementKey applies one key press. Movement is relative to yaw only, so
// looking up or down never changes walking direction or speed.
func (s State) ApplyMovementKey(key Key, speed float64) (State, Signal) {
	switch key {
	case KeyForward, KeyBackward, KeyStrafeLeft, KeyStrafeRight:
		if !finite(speed) {
			return s, SignalNone
		}
		pos := s.Position.Add(moveDelta(key, s.Yaw, speed))
		if !finite(pos[0], pos[1], pos[2]) {
			return s, SignalNone
		}
		s.Position = pos
		return s, SignalRedraw
	case KeyToggleView:
		s.Mode = s.Mode.Toggle()
		return s, SignalRedraw
	case KeyJump:
		// No vertical motion yet; the key is reserved.
		return s, SignalRedraw
	case KeyQuit:
		return s, SignalQuit
	default:
		return s, SignalNone
	}
}

// moveDelta is the ground-plane translation for a movement key at the given yaw.
func moveDelta(key Key, yaw, speed float64) mgl64.Vec3 {
	ry := mgl64.DegToRad(yaw)
	sin, cos := math.Sin(ry), math.Cos(ry)

	switch key {
	case KeyForward:
		return mgl64.Vec3{sin * speed, 0, -cos * speed}
	case KeyBackward:
		return mgl64.Vec3{-sin * speed, 0, cos * speed}
	case KeyStrafeRight:
		return mgl64.Vec3{cos * speed, 0, sin * speed}
	case KeyStrafeLeft:
		return mgl64.Vec3{-cos * speed, 0, -sin * speed}
	}
	return mgl64.Vec3{}
}
