// Package game runs one player session: it feeds host input into the camera
// model and hands the renderer a snapshot of what to draw.
//
// A Session is not safe for concurrent use. The host calls it from the
// thread that owns the window, in the order events arrive.
package game

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leterax/gem-heist/internal/config"
	"github.com/leterax/gem-heist/pkg/camera"
	"github.com/leterax/gem-heist/pkg/scene"
)

// Frame is everything the renderer needs for one frame.
type Frame struct {
	View        mgl32.Mat4
	Projection  mgl32.Mat4
	Eye         mgl32.Vec3
	DrawPlayer  bool
	PlayerModel mgl32.Mat4
	ClearColor  mgl32.Vec4
	LightPos    mgl32.Vec3
}

// Session owns the camera state for the lifetime of the process.
type Session struct {
	state    camera.State
	settings config.Settings
	pointer  *camera.Pointer
	dirty    bool
	quit     bool
}

// NewSession starts a session at the default camera state.
func NewSession(settings config.Settings) *Session {
	return &Session{
		state:    camera.New(),
		settings: settings,
		pointer:  camera.NewPointer(settings.Window.Width, settings.Window.Height),
		dirty:    true,
	}
}

// State returns the current camera state.
func (s *Session) State() camera.State {
	return s.state
}

// Settings returns the settings in effect.
func (s *Session) Settings() config.Settings {
	return s.settings
}

// Position returns where the player anchor is.
func (s *Session) Position() mgl64.Vec3 {
	return s.state.Position
}

// Mode returns the active view mode.
func (s *Session) Mode() camera.ViewMode {
	return s.state.Mode
}

// PointerCenter returns the point the pointer gets warped back to.
func (s *Session) PointerCenter() (x, y int) {
	return s.pointer.Center()
}

// HandlePointer applies an absolute pointer position. When warp is true the
// host must move the pointer back to (warpX, warpY).
func (s *Session) HandlePointer(x, y int) (warpX, warpY int, warp bool) {
	dx, dy, warp := s.pointer.Delta(x, y)
	if !warp {
		return 0, 0, false
	}

	var changed bool
	s.state, changed = s.state.ApplyPointerDelta(float64(dx), float64(dy), s.settings.Input.MouseSensitivity)
	if changed {
		s.dirty = true
	}

	warpX, warpY = s.pointer.Center()
	return warpX, warpY, true
}

// HandleKey applies an ASCII key code and reports whether the host should quit.
func (s *Session) HandleKey(code rune) (quit bool) {
	key := camera.KeyFromCode(code)
	if key == camera.KeyNone {
		return false
	}

	prev := s.state.Mode
	var sig camera.Signal
	s.state, sig = s.state.ApplyMovementKey(key, s.settings.Input.MoveSpeed)

	switch sig {
	case camera.SignalQuit:
		s.quit = true
		return true
	case camera.SignalRedraw:
		s.dirty = true
	}
	if s.state.Mode != prev {
		log.Printf("camera: switched to %s view", s.state.Mode)
	}
	return false
}

// Quit reports whether a quit key was pressed.
func (s *Session) Quit() bool {
	return s.quit
}

// Resize records a new window size for pointer centring and projection.
// Non-positive sizes (a minimised window) are ignored.
func (s *Session) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.pointer.Resize(width, height)
	s.dirty = true
}

// Tick is the idle callback; it always asks for a redraw.
func (s *Session) Tick() {
	s.dirty = true
}

// ApplySettings swaps in reloaded settings. The window size is owned by the
// window once it exists, so only input and camera settings are taken.
func (s *Session) ApplySettings(next config.Settings) {
	next.Window = s.settings.Window
	s.settings = next
	s.dirty = true
	log.Printf("settings: move_speed=%v mouse_sensitivity=%v fov=%v distance=%v",
		next.Input.MoveSpeed, next.Input.MouseSensitivity, next.Camera.FOV, next.Camera.Distance)
}

// Dirty reports whether a redraw is pending.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Frame snapshots the scene and clears the pending redraw.
func (s *Session) Frame() Frame {
	s.dirty = false

	cam := s.settings.Camera
	orbit := s.settings.Orbit()
	width, height := s.pointer.Size()
	view := s.state.DeriveViewVectorsWith(orbit)

	f := Frame{
		View:       s.state.ViewMatrixWith(orbit),
		Projection: camera.Projection(cam.FOV, width, height, cam.Near, cam.Far),
		Eye:        camera.Vec3f(view.Eye),
		DrawPlayer: s.state.Mode == camera.ThirdPerson,
		ClearColor: scene.ClearColor,
		LightPos:   scene.LightPos,
	}
	if f.DrawPlayer {
		f.PlayerModel = scene.PlayerModel(s.state.Position)
	}
	return f
}
