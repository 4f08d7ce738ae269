package render

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gl-modeling-tool/modeler/pkg/input"
)

// mockSurface is a window driven by a scripted clock. Each PollEvents call
// runs the next queued event batch, the way GLFW dispatches callbacks.
type mockSurface struct {
	width, height int
	clock         []float64
	tick          int
	shouldClose   bool
	captured      bool
	events        []func()
	polls         int
	swaps         int
	clears        int
	closed        int
	maxFrames     int
}

func (s *mockSurface) ShouldClose() bool {
	return s.shouldClose || (s.maxFrames > 0 && s.swaps >= s.maxFrames)
}
func (s *mockSurface) SetShouldClose(value bool) { s.shouldClose = value }
func (s *mockSurface) PollEvents() {
	s.polls++
	if len(s.events) > 0 {
		next := s.events[0]
		s.events = s.events[1:]
		if next != nil {
			next()
		}
	}
}
func (s *mockSurface) SwapBuffers()            { s.swaps++ }
func (s *mockSurface) Clear(mgl32.Vec4)        { s.clears++ }
func (s *mockSurface) Size() (int, int)        { return s.width, s.height }
func (s *mockSurface) SetMouseCaptured(c bool) { s.captured = c }
func (s *mockSurface) IsMouseCaptured() bool   { return s.captured }
func (s *mockSurface) Close()                  { s.closed++ }
func (s *mockSurface) Time() float64 {
	if len(s.clock) == 0 {
		return 0
	}
	if s.tick >= len(s.clock) {
		return s.clock[len(s.clock)-1]
	}
	now := s.clock[s.tick]
	s.tick++
	return now
}

type mockProgram struct {
	used     int
	deleted  int
	uniforms map[string]mgl32.Mat4
	uploads  int
}

func (p *mockProgram) Use() { p.used++ }
func (p *mockProgram) EditMatrix4(name string, mat mgl32.Mat4) {
	if p.uniforms == nil {
		p.uniforms = make(map[string]mgl32.Mat4)
	}
	p.uniforms[name] = mat
	p.uploads++
}
func (p *mockProgram) Delete() { p.deleted++ }

type mockGeometry struct {
	initErr error
	inits   int
	draws   int
	deleted int
}

func (g *mockGeometry) Init() error { g.inits++; return g.initErr }
func (g *mockGeometry) Draw()       { g.draws++ }
func (g *mockGeometry) Delete()     { g.deleted++ }

func newTestRenderer(t *testing.T, surface *mockSurface) (*Renderer, *mockProgram, *mockGeometry) {
	t.Helper()
	program := &mockProgram{}
	geometry := &mockGeometry{}
	r, err := NewRenderer(surface, program, geometry, Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return r, program, geometry
}

func TestNewRenderer_Setup(t *testing.T) {
	surface := &mockSurface{width: 800, height: 600, captured: true}
	r, program, geometry := newTestRenderer(t, surface)

	assert.Equal(t, Running, r.State())
	assert.Equal(t, 1, geometry.inits)
	assert.Equal(t, 1, program.used)
	assert.Equal(t, mgl32.Ident4(), r.Model())
	assert.Equal(t, DefaultCameraPosition, r.Camera().Position())

	x, y := r.Input().LastCursor()
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 300.0, y)
}

func TestNewRenderer_Options(t *testing.T) {
	pos := mgl32.Vec3{0, 0, -10}
	r, err := NewRenderer(&mockSurface{width: 10, height: 10}, &mockProgram{}, &mockGeometry{}, Options{
		CameraPosition: &pos,
		MoveSpeed:      3,
		Sensitivity:    0.5,
		ModelSpeed:     4,
	})
	require.NoError(t, err)

	assert.Equal(t, pos, r.Camera().Position())
	assert.Equal(t, float32(3), r.Camera().MoveSpeed())
	assert.Equal(t, float32(0.5), r.Camera().Sensitivity())
	assert.Equal(t, float32(4), r.modelSpeed)
}

func TestNewRenderer_GeometryFailure(t *testing.T) {
	boom := errors.New("no vertex array")
	program := &mockProgram{}
	r, err := NewRenderer(&mockSurface{width: 10, height: 10}, program, &mockGeometry{initErr: boom}, Options{})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, r)
	assert.Zero(t, program.used, "shader must not be activated after a failed setup")
}

func TestRenderer_RunWithoutSetup(t *testing.T) {
	r := &Renderer{state: Initializing}

	err := r.Run()
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestRenderer_FrameUploadsMVP(t *testing.T) {
	surface := &mockSurface{width: 800, height: 600, clock: []float64{0, 0.5}}
	r, program, geometry := newTestRenderer(t, surface)

	r.Frame()

	assert.InDelta(t, 0.5, r.DeltaTime(), 1e-9)
	assert.Equal(t, 1, surface.polls)
	assert.Equal(t, 1, surface.clears)
	assert.Equal(t, 1, surface.swaps)
	assert.Equal(t, 1, geometry.draws)
	assert.Equal(t, uint64(1), r.Frames())

	expected := ComposeMVP(mgl32.Ident4(), r.Camera().ViewMatrix(), Projection(DefaultZoom, 800, 600))
	require.Contains(t, program.uniforms, MVPUniform)
	assert.True(t, expected.ApproxEqual(program.uniforms[MVPUniform]))
}

func TestRenderer_FrameAppliesHeldKeys(t *testing.T) {
	surface := &mockSurface{width: 800, height: 600, clock: []float64{0, 1, 3}}
	r, _, _ := newTestRenderer(t, surface)

	surface.events = []func(){
		func() {
			r.HandleKey(input.KeyW, input.Press)
			r.HandleKey(input.KeyUp, input.Press)
		},
		func() {
			r.HandleKey(input.KeyW, input.Release)
			r.HandleKey(input.KeyUp, input.Release)
			r.HandleKey(input.KeyRight, input.Press)
		},
	}

	// 1s of forward flight and upward translation
	r.Frame()
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 3 - DefaultMoveSpeed}, r.Camera().Position(), 1e-4)
	assertVec3InDelta(t, mgl32.Vec3{0, DefaultModelSpeed, 0}, r.Model().Col(3).Vec3(), 1e-4)

	// 2s of translation to the right only
	r.Frame()
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 3 - DefaultMoveSpeed}, r.Camera().Position(), 1e-4)
	assertVec3InDelta(t, mgl32.Vec3{2 * DefaultModelSpeed, DefaultModelSpeed, 0}, r.Model().Col(3).Vec3(), 1e-4)
}

func TestRenderer_EscapeClosesLoop(t *testing.T) {
	surface := &mockSurface{width: 800, height: 600, clock: []float64{0, 0.1, 0.2, 0.3}}
	r, program, geometry := newTestRenderer(t, surface)

	surface.events = []func(){
		nil,
		func() { r.HandleKey(input.KeyEscape, input.Press) },
	}

	require.NoError(t, r.Run())

	// The frame that saw Escape still completes, then the loop ends
	assert.Equal(t, 2, surface.swaps)
	assert.Equal(t, Stopped, r.State())
	assert.Equal(t, 1, geometry.deleted)
	assert.Equal(t, 1, program.deleted)
	assert.Equal(t, 1, surface.closed)

	r.Shutdown()
	assert.Equal(t, 1, surface.closed, "shutdown releases resources once")
	assert.ErrorIs(t, r.Run(), ErrNotRunning)
}

func TestRenderer_RunUntilWindowClosed(t *testing.T) {
	surface := &mockSurface{width: 800, height: 600, maxFrames: 5}
	r, _, geometry := newTestRenderer(t, surface)

	require.NoError(t, r.Run())
	assert.Equal(t, 5, geometry.draws)
	assert.Equal(t, Stopped, r.State())
}

func TestRenderer_HandleCursor(t *testing.T) {
	surface := &mockSurface{width: 800, height: 600, captured: true}
	r, _, _ := newTestRenderer(t, surface)

	// First sample after capture produces no rotation
	r.HandleCursor(1200, 900)
	yaw, pitch := r.Camera().Orientation()
	assert.Equal(t, float32(DefaultYaw), yaw)
	assert.Equal(t, float32(DefaultPitch), pitch)

	r.HandleCursor(1210, 880)
	yaw, pitch = r.Camera().Orientation()
	assert.InDelta(t, DefaultYaw+10*DefaultSensitivity, yaw, epsilon)
	assert.InDelta(t, 20*DefaultSensitivity, pitch, epsilon)
}

func TestRenderer_CursorIgnoredWhenReleased(t *testing.T) {
	surface := &mockSurface{width: 800, height: 600, captured: false}
	r, _, _ := newTestRenderer(t, surface)

	r.HandleCursor(0, 0)
	r.HandleCursor(500, 500)

	yaw, pitch := r.Camera().Orientation()
	assert.Equal(t, float32(DefaultYaw), yaw)
	assert.Equal(t, float32(DefaultPitch), pitch)
}

func TestRenderer_ToggleCapture(t *testing.T) {
	surface := &mockSurface{width: 800, height: 600, captured: true}
	r, _, _ := newTestRenderer(t, surface)

	r.HandleKey(input.KeyW, input.Press)
	r.HandleCursor(10, 10)

	r.HandleKey(input.KeyC, input.Press)
	assert.False(t, surface.captured)
	assert.False(t, r.Input().Pressed(input.KeyW), "held keys are dropped with the cursor")

	r.HandleKey(input.KeyC, input.Release)
	r.HandleKey(input.KeyC, input.Press)
	assert.True(t, surface.captured)

	// Recapturing re-arms first-mouse suppression
	r.HandleCursor(700, 700)
	yaw, _ := r.Camera().Orientation()
	assert.Equal(t, float32(DefaultYaw), yaw)
}

func TestRenderer_HandleScroll(t *testing.T) {
	surface := &mockSurface{width: 800, height: 600}
	r, _, _ := newTestRenderer(t, surface)

	r.HandleScroll(0, 5)
	assert.Equal(t, float32(40), r.Camera().Zoom())

	r.HandleScroll(3, -100)
	assert.Equal(t, float32(MaxZoom), r.Camera().Zoom())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "initializing", Initializing.String())
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "shutting down", ShuttingDown.String())
	assert.Equal(t, "stopped", Stopped.String())
	assert.Equal(t, "unknown", State(99).String())
}
