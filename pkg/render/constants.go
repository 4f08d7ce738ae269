package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera constants
const (
	// Movement speeds
	DefaultMoveSpeed   = 6.0
	DefaultSensitivity = 0.25

	// Default orientation
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0

	// Field of view
	DefaultZoom = 45.0
	MinZoom     = 1.0
	MaxZoom     = 45.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0
)

// Model constants
const (
	// DefaultModelSpeed is how far the shape travels per second of held arrow key.
	DefaultModelSpeed = 1.5
)

// Projection constants
const (
	NearPlane = 0.1
	FarPlane  = 1000.0
)

// MVPUniform is the shader uniform the combined transform is uploaded to.
const MVPUniform = "mvp"

var (
	// DefaultCameraPosition places the camera a few units in front of the origin.
	DefaultCameraPosition = mgl32.Vec3{0, 0, 3}

	// WorldUp is the Y-up axis shared by every camera.
	WorldUp = mgl32.Vec3{0, 1, 0}
)
