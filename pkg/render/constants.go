package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/gem-heist/pkg/camera"
)

// noKey is returned for keys that have no ASCII code the game understands.
const noKey rune = -1

// AmbientStrength keeps faces turned away from the ceiling light visible.
const AmbientStrength = 0.2

// keyCode turns a GLFW key into the ASCII code the game session expects.
// GLFW reports letters as their upper-case ASCII value.
func keyCode(key glfw.Key) rune {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return rune(key-glfw.KeyA) + 'a'
	case key == glfw.KeySpace:
		return ' '
	case key == glfw.KeyEscape:
		return camera.Escape
	default:
		return noKey
	}
}
