package render

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gl-modeling-tool/modeler/pkg/input"
)

// ErrNotRunning is returned by Run when setup never completed.
var ErrNotRunning = errors.New("renderer is not running")

// Surface is the window the renderer draws into and receives events from.
type Surface interface {
	ShouldClose() bool
	SetShouldClose(value bool)
	PollEvents()
	SwapBuffers()
	Clear(color mgl32.Vec4)
	Size() (width, height int)
	Time() float64
	SetMouseCaptured(captured bool)
	IsMouseCaptured() bool
	Close()
}

// Program is a compiled shader program with a matrix uniform.
type Program interface {
	Use()
	EditMatrix4(name string, mat mgl32.Mat4)
	Delete()
}

// Geometry is a static shape uploaded once and drawn every frame.
type Geometry interface {
	Init() error
	Draw()
	Delete()
}

// State is the lifecycle phase of the renderer.
type State int

const (
	Initializing State = iota
	Running
	ShuttingDown
	Stopped
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Running:
		return "running"
	case ShuttingDown:
		return "shutting down"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Options tunes a Renderer. Zero fields fall back to the package defaults.
type Options struct {
	CameraPosition *mgl32.Vec3
	MoveSpeed      float32
	Sensitivity    float32
	ModelSpeed     float32
	ClearColor     mgl32.Vec4
	Logger         *slog.Logger
}

// Renderer owns everything the frame loop touches: the window, shader,
// shape, camera, input state and the accumulated model matrix.
type Renderer struct {
	surface  Surface
	program  Program
	geometry Geometry
	camera   *Camera
	input    *input.State
	logger   *slog.Logger

	model      mgl32.Mat4
	modelSpeed float32
	clearColor mgl32.Vec4

	// Timing
	lastFrameTime float64
	deltaTime     float32
	frames        uint64

	state State
}

// NewRenderer uploads the geometry, activates the shader and returns a
// renderer ready to Run. On error nothing is left running and the caller
// still owns surface, program and geometry.
func NewRenderer(surface Surface, program Program, geometry Geometry, opts Options) (*Renderer, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	position := DefaultCameraPosition
	if opts.CameraPosition != nil {
		position = *opts.CameraPosition
	}
	camera := NewCamera(position)
	if opts.MoveSpeed > 0 {
		camera.SetMoveSpeed(opts.MoveSpeed)
	}
	if opts.Sensitivity > 0 {
		camera.SetSensitivity(opts.Sensitivity)
	}

	modelSpeed := opts.ModelSpeed
	if modelSpeed <= 0 {
		modelSpeed = DefaultModelSpeed
	}

	width, height := surface.Size()
	r := &Renderer{
		surface:    surface,
		program:    program,
		geometry:   geometry,
		camera:     camera,
		input:      input.NewState(float64(width)/2, float64(height)/2),
		logger:     logger,
		model:      mgl32.Ident4(),
		modelSpeed: modelSpeed,
		clearColor: opts.ClearColor,
		state:      Initializing,
	}

	if err := geometry.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize geometry: %w", err)
	}
	program.Use()

	r.lastFrameTime = surface.Time()
	r.state = Running
	logger.Info("renderer ready",
		"width", width,
		"height", height,
		"camera", position,
		"captured", surface.IsMouseCaptured())

	return r, nil
}

// Run drives the frame loop until the window is asked to close, then
// releases every owned resource.
func (r *Renderer) Run() error {
	if r.state != Running {
		return fmt.Errorf("%w: state is %s", ErrNotRunning, r.state)
	}

	for !r.surface.ShouldClose() {
		r.Frame()
	}

	r.Shutdown()
	return nil
}

// Frame runs one iteration of the loop: timing, input, transforms, draw, present.
func (r *Renderer) Frame() {
	// Calculate delta time
	currentTime := r.surface.Time()
	r.deltaTime = float32(currentTime - r.lastFrameTime)
	r.lastFrameTime = currentTime

	r.surface.PollEvents()
	r.doMovement()

	r.surface.Clear(r.clearColor)

	r.doModelTranslation()
	width, height := r.surface.Size()
	view := r.camera.ViewMatrix()
	projection := Projection(r.camera.Zoom(), width, height)
	mvp := ComposeMVP(r.model, view, projection)

	r.program.EditMatrix4(MVPUniform, mvp)
	r.geometry.Draw()

	r.surface.SwapBuffers()
	r.frames++
}

// Shutdown releases the geometry, shader and window. Later calls do nothing.
func (r *Renderer) Shutdown() {
	if r.state == ShuttingDown || r.state == Stopped {
		return
	}
	r.state = ShuttingDown
	r.logger.Debug("renderer shutting down", "frames", r.frames)

	r.geometry.Delete()
	r.program.Delete()
	r.surface.Close()

	r.state = Stopped
	r.logger.Info("renderer stopped", "frames", r.frames)
}

// doMovement flies the camera from the WASD keys
func (r *Renderer) doMovement() {
	if r.input.Pressed(input.KeyW) {
		r.camera.ProcessMovement(Forward, r.deltaTime)
	}
	if r.input.Pressed(input.KeyS) {
		r.camera.ProcessMovement(Backward, r.deltaTime)
	}
	if r.input.Pressed(input.KeyA) {
		r.camera.ProcessMovement(Left, r.deltaTime)
	}
	if r.input.Pressed(input.KeyD) {
		r.camera.ProcessMovement(Right, r.deltaTime)
	}
}

// doModelTranslation nudges the shape from the arrow keys
func (r *Renderer) doModelTranslation() {
	if r.input.Pressed(input.KeyUp) {
		CalculateTranslation(DirectionUp, &r.model, r.deltaTime, r.modelSpeed)
	}
	if r.input.Pressed(input.KeyDown) {
		CalculateTranslation(DirectionDown, &r.model, r.deltaTime, r.modelSpeed)
	}
	if r.input.Pressed(input.KeyLeft) {
		CalculateTranslation(DirectionLeft, &r.model, r.deltaTime, r.modelSpeed)
	}
	if r.input.Pressed(input.KeyRight) {
		CalculateTranslation(DirectionRight, &r.model, r.deltaTime, r.modelSpeed)
	}
}

// HandleKey records a key event. Escape asks the window to close and C
// toggles cursor capture.
func (r *Renderer) HandleKey(key input.Key, action input.Action) {
	if key == input.KeyEscape && action == input.Press {
		r.surface.SetShouldClose(true)
	}

	if key == input.KeyC && action == input.Press {
		captured := !r.surface.IsMouseCaptured()
		r.surface.SetMouseCaptured(captured)
		r.input.ResetMouse()
		if !captured {
			r.input.ReleaseAll()
		}
		r.logger.Debug("cursor capture toggled", "captured", captured)
		return
	}

	r.input.SetKey(key, action)
}

// HandleCursor turns the camera by the cursor movement since the last sample.
func (r *Renderer) HandleCursor(xpos, ypos float64) {
	if !r.surface.IsMouseCaptured() {
		return
	}
	xoffset, yoffset := r.input.CursorDelta(xpos, ypos)
	r.camera.ProcessLook(xoffset, yoffset)
}

// HandleScroll zooms the camera by the vertical scroll offset.
func (r *Renderer) HandleScroll(_, yoffset float64) {
	r.camera.ProcessZoom(float32(yoffset))
}

// Camera returns the renderer's camera
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// Input returns the key and cursor state
func (r *Renderer) Input() *input.State {
	return r.input
}

// Model returns the accumulated model matrix
func (r *Renderer) Model() mgl32.Mat4 {
	return r.model
}

// DeltaTime returns the duration of the last frame in seconds
func (r *Renderer) DeltaTime() float32 {
	return r.deltaTime
}

// Frames returns how many frames have been presented
func (r *Renderer) Frames() uint64 {
	return r.frames
}

// State returns the lifecycle phase
func (r *Renderer) State() State {
	return r.state
}
