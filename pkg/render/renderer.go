package render

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/gem-heist/internal/config"
	"github.com/leterax/gem-heist/internal/openglhelper"
	"github.com/leterax/gem-heist/pkg/game"
	"github.com/leterax/gem-heist/pkg/scene"
)

//go:embed shaders/vert.glsl
var vertexShaderSource string

//go:embed shaders/frag.glsl
var fragmentShaderSource string

// Renderer owns the window and drives the game session from GLFW callbacks
type Renderer struct {
	window  *openglhelper.Window
	session *game.Session
	watcher *config.Watcher

	shader *openglhelper.Shader
	floor  *openglhelper.Mesh
	player *openglhelper.Mesh

	isClosed bool
}

// NewRenderer opens the window and uploads the scene. The watcher may be nil
// when settings are not being hot reloaded.
func NewRenderer(session *game.Session, watcher *config.Watcher) (*Renderer, error) {
	ws := session.Settings().Window
	window, err := openglhelper.NewWindow(ws.Width, ws.Height, ws.Title, ws.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	shader, err := openglhelper.NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}

	floor := scene.Floor()
	cube := scene.Cube()

	r := &Renderer{
		window:  window,
		session: session,
		watcher: watcher,
		shader:  shader,
		floor:   openglhelper.NewMesh(floor.Vertices, floor.Indices),
		player:  openglhelper.NewMesh(cube.Vertices, cube.Indices),
	}

	// Set up callbacks
	glfwWindow := window.GLFWWindow()
	glfwWindow.SetKeyCallback(r.keyCallback)
	glfwWindow.SetCursorPosCallback(r.cursorPosCallback)
	glfwWindow.SetSizeCallback(r.sizeCallback)
	glfwWindow.SetFramebufferSizeCallback(r.framebufferSizeCallback)

	window.SetPointerLocked(true)
	cx, cy := session.PointerCenter()
	window.WarpPointer(cx, cy)

	return r, nil
}

// Run starts the main loop and returns once the window closes or a quit key
// is pressed
func (r *Renderer) Run() {
	defer r.Cleanup()

	for !r.window.ShouldClose() {
		r.pollSettings()

		// GLUT-style idle: every pass through the loop asks for a redraw
		r.session.Tick()
		if r.session.Dirty() {
			r.render()
			r.window.SwapBuffers()
		}

		r.window.PollEvents()
	}
	log.Printf("shutting down")
}

// pollSettings applies hot-reloaded settings without blocking the frame
func (r *Renderer) pollSettings() {
	if r.watcher == nil {
		return
	}

	select {
	case s, ok := <-r.watcher.Settings:
		if ok {
			r.session.ApplySettings(s)
		}
	case err, ok := <-r.watcher.Errors:
		if ok {
			log.Printf("settings reload rejected: %v", err)
		}
	default:
	}
}

// render draws the floor and, in third person, the player
func (r *Renderer) render() {
	frame := r.session.Frame()

	r.window.Clear(frame.ClearColor)

	r.shader.Use()
	r.shader.SetMat4("view", frame.View)
	r.shader.SetMat4("projection", frame.Projection)
	r.shader.SetVec3("viewPos", frame.Eye)
	r.shader.SetVec3("lightPos", frame.LightPos)
	r.shader.SetVec3("lightColor", scene.LightColor)
	r.shader.SetFloat("ambientStrength", AmbientStrength)

	r.shader.SetMat4("model", scene.FloorModel)
	r.shader.SetVec3("objectColor", scene.FloorColor)
	r.floor.Draw()

	if frame.DrawPlayer {
		r.shader.SetMat4("model", frame.PlayerModel)
		r.shader.SetVec3("objectColor", scene.PlayerColor)
		r.player.Draw()
	}
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	if r.isClosed {
		return
	}
	r.isClosed = true

	r.floor.Delete()
	r.player.Delete()
	r.shader.Delete()

	gl.UseProgram(0)
	r.window.Close()
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	// Held keys repeat, matching keyboard auto-repeat movement
	if action != glfw.Press && action != glfw.Repeat {
		return
	}

	code := keyCode(key)
	if code == noKey {
		return
	}
	if r.session.HandleKey(code) {
		r.window.SetShouldClose(true)
	}
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if !r.window.IsPointerLocked() {
		return
	}
	if x, y, warp := r.session.HandlePointer(int(xpos), int(ypos)); warp {
		r.window.WarpPointer(x, y)
	}
}

func (r *Renderer) sizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
	r.session.Resize(width, height)
	log.Printf("window resized to %dx%d", width, height)
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnFramebufferResize(width, height)
}
