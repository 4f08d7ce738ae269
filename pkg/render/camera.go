package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraMovement is a direction the camera can fly in.
type CameraMovement int

const (
	Forward CameraMovement = iota
	Backward
	Left
	Right
)

func (m CameraMovement) String() string {
	switch m {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Camera implements a free-fly 3D camera
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	// Euler angles in degrees
	yaw   float32
	pitch float32

	// Camera options
	zoom        float32
	moveSpeed   float32
	sensitivity float32
}

// NewCamera creates a new camera with sensible defaults
func NewCamera(position mgl32.Vec3) *Camera {
	camera := &Camera{
		position:    position,
		worldUp:     WorldUp,
		front:       mgl32.Vec3{0, 0, -1}, // Looking along negative Z
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		zoom:        DefaultZoom,
		moveSpeed:   DefaultMoveSpeed,
		sensitivity: DefaultSensitivity,
	}

	camera.updateCameraVectors()

	return camera
}

// updateCameraVectors recalculates camera vectors based on Euler angles
func (c *Camera) updateCameraVectors() {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.front = front.Normalize()

	// Re-calculate right and up vectors
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// ViewMatrix returns the look-at matrix for the current position and orientation
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns the current camera orientation (yaw, pitch)
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// SetRotation sets the camera rotation angles
func (c *Camera) SetRotation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = mgl32.Clamp(pitch, MinPitch, MaxPitch)

	c.updateCameraVectors()
}

// Zoom returns the vertical field of view in degrees
func (c *Camera) Zoom() float32 {
	return c.zoom
}

// SetMoveSpeed sets how many units per second the camera flies
func (c *Camera) SetMoveSpeed(speed float32) {
	c.moveSpeed = speed
}

// MoveSpeed returns the fly speed in units per second
func (c *Camera) MoveSpeed() float32 {
	return c.moveSpeed
}

// SetSensitivity sets the degrees of rotation per pixel of cursor movement
func (c *Camera) SetSensitivity(sensitivity float32) {
	c.sensitivity = sensitivity
}

// Sensitivity returns the degrees of rotation per pixel of cursor movement
func (c *Camera) Sensitivity() float32 {
	return c.sensitivity
}

// FrontVector returns the camera's front direction vector
func (c *Camera) FrontVector() mgl32.Vec3 {
	return c.front
}

// RightVector returns the camera's right direction vector
func (c *Camera) RightVector() mgl32.Vec3 {
	return c.right
}

// UpVector returns the camera's up direction vector
func (c *Camera) UpVector() mgl32.Vec3 {
	return c.up
}

// ProcessMovement moves the camera along its front or right vector.
// There are no bounds; the camera can fly arbitrarily far.
func (c *Camera) ProcessMovement(direction CameraMovement, deltaTime float32) {
	velocity := c.moveSpeed * deltaTime

	switch direction {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	}
}

// ProcessLook turns the camera by a cursor offset in pixels
func (c *Camera) ProcessLook(xoffset, yoffset float32) {
	xoffset *= c.sensitivity
	yoffset *= c.sensitivity

	c.yaw += xoffset
	c.pitch += yoffset

	// Constrain pitch so the view never flips over the pole
	c.pitch = mgl32.Clamp(c.pitch, MinPitch, MaxPitch)

	c.updateCameraVectors()
}

// ProcessZoom narrows or widens the field of view by a scroll offset
func (c *Camera) ProcessZoom(yoffset float32) {
	c.zoom = mgl32.Clamp(c.zoom-yoffset, MinZoom, MaxZoom)
}
