// Package config loads the demo's tunables from an optional YAML file and
// keeps them in sync with the file while the demo runs.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/leterax/gem-heist/pkg/camera"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid settings")

// Settings is the full set of tunables.
type Settings struct {
	Window WindowSettings `yaml:"window"`
	Input  InputSettings  `yaml:"input"`
	Camera CameraSettings `yaml:"camera"`
}

type WindowSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type InputSettings struct {
	MoveSpeed        float64 `yaml:"move_speed"`
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
}

type CameraSettings struct {
	FOV          float64 `yaml:"fov"`
	Near         float64 `yaml:"near"`
	Far          float64 `yaml:"far"`
	Distance     float64 `yaml:"distance"`
	HeightOffset float64 `yaml:"height_offset"`
}

// Default returns the settings the demo runs with when no file is given.
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  1000,
			Height: 600,
			Title:  "GEM Heist",
			VSync:  true,
		},
		Input: InputSettings{
			MoveSpeed:        camera.DefaultMoveSpeed,
			MouseSensitivity: camera.DefaultMouseSensitivity,
		},
		Camera: CameraSettings{
			FOV:          camera.DefaultFOV,
			Near:         camera.DefaultNear,
			Far:          camera.DefaultFar,
			Distance:     camera.DefaultDistance,
			HeightOffset: camera.DefaultHeightOffset,
		},
	}
}

// Orbit returns the third person orbit described by the settings.
func (s Settings) Orbit() camera.Orbit {
	return camera.Orbit{Distance: s.Camera.Distance, HeightOffset: s.Camera.HeightOffset}
}

// Validate reports the first field that cannot be used.
func (s Settings) Validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, s.Window.Width, s.Window.Height)
	case !positive(s.Input.MoveSpeed):
		return fmt.Errorf("%w: input.move_speed %v", ErrInvalid, s.Input.MoveSpeed)
	case !positive(s.Input.MouseSensitivity):
		return fmt.Errorf("%w: input.mouse_sensitivity %v", ErrInvalid, s.Input.MouseSensitivity)
	case !positive(s.Camera.FOV) || s.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera.fov %v", ErrInvalid, s.Camera.FOV)
	case !positive(s.Camera.Near):
		return fmt.Errorf("%w: camera.near %v", ErrInvalid, s.Camera.Near)
	case !positive(s.Camera.Far) || s.Camera.Far <= s.Camera.Near:
		return fmt.Errorf("%w: camera.far %v (near %v)", ErrInvalid, s.Camera.Far, s.Camera.Near)
	case math.IsNaN(s.Camera.Distance) || math.IsInf(s.Camera.Distance, 0) || s.Camera.Distance < 0:
		return fmt.Errorf("%w: camera.distance %v", ErrInvalid, s.Camera.Distance)
	case math.IsNaN(s.Camera.HeightOffset) || math.IsInf(s.Camera.HeightOffset, 0):
		return fmt.Errorf("%w: camera.height_offset %v", ErrInvalid, s.Camera.HeightOffset)
	}
	return nil
}

func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}

// Parse decodes YAML on top of the defaults, so a file only needs the fields
// it changes.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("config: %w", err)
	}
	return s, nil
}

// Load reads and parses a settings file.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
