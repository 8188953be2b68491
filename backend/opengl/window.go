package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Option configures the window opened by Open.
type Option func(*windowConfig)

type windowConfig struct {
	vsync         bool
	closeOnEscape bool
	clearColor    [4]float32
}

func defaultWindowConfig() windowConfig {
	return windowConfig{clearColor: [4]float32{0, 0, 0, 1}}
}

// WithVSync syncs buffer swaps to the display refresh. Off by default.
func WithVSync(on bool) Option {
	return func(c *windowConfig) { c.vsync = on }
}

// WithCloseOnEscape makes the Escape key close the window.
func WithCloseOnEscape(on bool) Option {
	return func(c *windowConfig) { c.closeOnEscape = on }
}

// WithClearColor sets the color the frame is cleared to before the image is drawn.
func WithClearColor(r, g, b, a float32) Option {
	return func(c *windowConfig) { c.clearColor = [4]float32{r, g, b, a} }
}

// openWindow initializes GLFW, creates a window with a current OpenGL 4.1
// core context and loads the GL function pointers.
// GLFW must run on the main thread; callers lock it with runtime.LockOSThread.
func openWindow(width, height int, title string, cfg windowConfig) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	if cfg.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	fbw, fbh := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))

	window.SetFramebufferSizeCallback(framebufferSizeCallback)
	if cfg.closeOnEscape {
		window.SetKeyCallback(closeOnEscapeCallback)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return window, nil
}

func framebufferSizeCallback(w *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func closeOnEscapeCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if isCloseKey(key, action) {
		w.SetShouldClose(true)
	}
}

// isCloseKey reports whether a key event should close the window.
func isCloseKey(key glfw.Key, action glfw.Action) bool {
	return key == glfw.KeyEscape && action == glfw.Press
}
