package openglhelper

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gl-modeling-tool/modeler/pkg/input"
)

// EventHandler receives the input events GLFW dispatches during PollEvents.
type EventHandler interface {
	HandleKey(key input.Key, action input.Action)
	HandleCursor(xpos, ypos float64)
	HandleScroll(xoffset, yoffset float64)
}

// Window handles GLFW window creation and management
type Window struct {
	glfwWindow    *glfw.Window
	width         int
	height        int
	title         string
	mouseCaptured bool
	vsync         bool
	logger        *slog.Logger
}

// NewWindow creates a new GLFW window with OpenGL context
func NewWindow(width, height int, title string, vsync bool, logger *slog.Logger) (*Window, error) {
	if logger == nil {
		logger = slog.Default()
	}

	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	logger.Debug("initialized GLFW", "version", glfw.GetVersionString())

	// Configure GLFW
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	// Create window
	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1) // Enable vsync
	} else {
		glfw.SwapInterval(0) // Disable vsync
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		glfwWindow.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("created window",
		"title", title,
		"opengl", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	// Configure global OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	// The framebuffer can differ from the window size on HiDPI displays
	fbWidth, fbHeight := glfwWindow.GetFramebufferSize()

	w := &Window{
		glfwWindow: glfwWindow,
		title:      title,
		vsync:      vsync,
		logger:     logger,
	}
	w.OnResize(fbWidth, fbHeight)
	glfwWindow.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.OnResize(width, height)
	})

	return w, nil
}

// SetEventHandler routes key, cursor and scroll callbacks to h.
func (w *Window) SetEventHandler(h EventHandler) {
	w.glfwWindow.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		h.HandleKey(input.Key(key), input.Action(action))
	})
	w.glfwWindow.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		h.HandleCursor(xpos, ypos)
	})
	w.glfwWindow.SetScrollCallback(func(_ *glfw.Window, xoffset, yoffset float64) {
		h.HandleScroll(xoffset, yoffset)
	})
}

// Clear clears the screen
func (w *Window) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// SetShouldClose requests or cancels closing the window
func (w *Window) SetShouldClose(value bool) {
	w.glfwWindow.SetShouldClose(value)
}

// Time returns seconds since GLFW was initialized
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// Close releases all resources
func (w *Window) Close() {
	w.glfwWindow.Destroy()
	glfw.Terminate()
	w.logger.Debug("terminated GLFW")
}

// Size returns the framebuffer dimensions
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// OnResize is called when the framebuffer is resized
func (w *Window) OnResize(width, height int) {
	w.width = width
	w.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	w.logger.Debug("framebuffer resized", "width", width, "height", height)
}

// SetMouseCaptured captures or releases the mouse cursor
func (w *Window) SetMouseCaptured(captured bool) {
	w.mouseCaptured = captured

	if captured {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// IsMouseCaptured returns whether the mouse is currently captured
func (w *Window) IsMouseCaptured() bool {
	return w.mouseCaptured
}
