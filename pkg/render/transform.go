package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Direction is an axis the rendered shape can be nudged along.
type Direction int

const (
	DirectionUp Direction = iota + 1
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// Axis returns the unit vector for d, or the zero vector for an unknown direction.
func (d Direction) Axis() mgl32.Vec3 {
	switch d {
	case DirectionUp:
		return mgl32.Vec3{0, 1, 0}
	case DirectionDown:
		return mgl32.Vec3{0, -1, 0}
	case DirectionLeft:
		return mgl32.Vec3{-1, 0, 0}
	case DirectionRight:
		return mgl32.Vec3{1, 0, 0}
	default:
		return mgl32.Vec3{}
	}
}

// CalculateTranslation moves model along direction by deltaTime*speed.
// The translation is post-multiplied, so it happens in the model's local
// space: M' = M * T.
func CalculateTranslation(direction Direction, model *mgl32.Mat4, deltaTime, speed float32) {
	axis := direction.Axis()
	if axis.Len() == 0 {
		return
	}

	offset := axis.Mul(deltaTime * speed)
	*model = model.Mul4(mgl32.Translate3D(offset.X(), offset.Y(), offset.Z()))
}

// Projection builds a perspective projection for a field of view in degrees.
func Projection(zoom float32, width, height int) mgl32.Mat4 {
	if height <= 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(zoom), aspect, NearPlane, FarPlane)
}

// ComposeMVP returns projection * view * model.
func ComposeMVP(model, view, projection mgl32.Mat4) mgl32.Mat4 {
	return projection.Mul4(view).Mul4(model)
}
