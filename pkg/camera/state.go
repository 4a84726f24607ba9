// Package camera holds the player's camera and movement model: yaw/pitch
// orientation driven by pointer deltas, yaw-relative ground movement driven by
// keys, and the eye/look-at vectors for first and third person views.
//
// State is a plain value. Every update returns a new State, so the package
// keeps no globals and needs no locking.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ViewMode selects how the eye and look-at target are derived.
type ViewMode uint8

const (
	FirstPerson ViewMode = iota
	ThirdPerson
)

func (m ViewMode) String() string {
	switch m {
	case FirstPerson:
		return "first-person"
	case ThirdPerson:
		return "third-person"
	default:
		return "unknown"
	}
}

// Toggle returns the other view mode.
func (m ViewMode) Toggle() ViewMode {
	if m == ThirdPerson {
		return FirstPerson
	}
	return ThirdPerson
}

// State is the player position plus camera orientation.
type State struct {
	Position mgl64.Vec3
	Yaw      float64 // degrees, unbounded
	Pitch    float64 // degrees, within [MinPitch, MaxPitch]
	Mode     ViewMode
}

// New returns the start-of-run state: (0,1,5), facing -Z, first person.
func New() State {
	return State{
		Position: DefaultPosition,
		Yaw:      DefaultYaw,
		Pitch:    DefaultPitch,
		Mode:     FirstPerson,
	}
}

// clampPitch keeps the camera from flipping over at the poles.
func clampPitch(pitch float64) float64 {
	if pitch > MaxPitch {
		return MaxPitch
	}
	if pitch < MinPitch {
		return MinPitch
	}
	return pitch
}

func finite(v ...float64) bool {
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
