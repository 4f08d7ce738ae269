// Package shapes builds the vertex data for the built-in primitives.
//
// Vertices are interleaved as position (x, y, z) followed by colour (r, g, b)
// and every shape is indexed as a triangle list centred on the origin.
package shapes

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/chewxy/math32"
)

// FloatsPerVertex is the stride of Shape.Vertices in float32 units.
const FloatsPerVertex = 6

// Shape names accepted by ByName.
const (
	NameCube     = "cube"
	NameTriangle = "triangle"
	NamePolygon  = "polygon"
)

// DefaultPolygonSides is used when a polygon is requested without a side count.
const DefaultPolygonSides = 6

var (
	ErrUnknownShape = errors.New("unknown shape")
	ErrTooFewSides  = errors.New("polygon needs at least 3 sides")
)

// Shape is CPU-side mesh data ready for upload.
type Shape struct {
	Name     string
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices in the shape.
func (s Shape) VertexCount() int {
	return len(s.Vertices) / FloatsPerVertex
}

// Names lists the shapes ByName understands.
func Names() []string {
	names := []string{NameCube, NameTriangle, NamePolygon}
	sort.Strings(names)
	return names
}

// ByName returns the named primitive. sides only applies to polygons.
func ByName(name string, sides int) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameCube:
		return Cube(), nil
	case NameTriangle:
		return Triangle(), nil
	case NamePolygon:
		if sides == 0 {
			sides = DefaultPolygonSides
		}
		return Polygon(sides, 1)
	default:
		return Shape{}, fmt.Errorf("%w %q (want one of %s)", ErrUnknownShape, name, strings.Join(Names(), ", "))
	}
}

// Triangle returns a single RGB triangle in the XY plane.
func Triangle() Shape {
	return Shape{
		Name: NameTriangle,
		Vertices: []float32{
			-0.5, -0.5, 0.0, 1.0, 0.0, 0.0, // Bottom-left
			0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // Bottom-right
			0.0, 0.5, 0.0, 0.0, 0.0, 1.0, // Top
		},
		Indices: []uint32{0, 1, 2},
	}
}

// Polygon returns a regular polygon in the XY plane, fanned around a white centre vertex.
func Polygon(sides int, radius float32) (Shape, error) {
	if sides < 3 {
		return Shape{}, fmt.Errorf("%w: got %d", ErrTooFewSides, sides)
	}

	vertices := make([]float32, 0, (sides+1)*FloatsPerVertex)
	vertices = append(vertices, 0, 0, 0, 1, 1, 1)

	step := 2 * math32.Pi / float32(sides)
	for i := 0; i < sides; i++ {
		angle := math32.Pi/2 + float32(i)*step // first vertex points up
		x := radius * math32.Cos(angle)
		y := radius * math32.Sin(angle)
		r, g, b := hueToRGB(float32(i) / float32(sides))
		vertices = append(vertices, x, y, 0, r, g, b)
	}

	indices := make([]uint32, 0, sides*3)
	for i := 0; i < sides; i++ {
		next := (i+1)%sides + 1
		indices = append(indices, 0, uint32(i+1), uint32(next))
	}

	return Shape{Name: NamePolygon, Vertices: vertices, Indices: indices}, nil
}

// Cube returns a unit cube with one colour per face.
func Cube() Shape {
	faces := []struct {
		corners [4][3]float32
		color   [3]float32
	}{
		// Front face
		{[4][3]float32{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}, [3]float32{1, 0, 0}},
		// Back face
		{[4][3]float32{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}, [3]float32{0, 1, 0}},
		// Left face
		{[4][3]float32{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}, [3]float32{0, 0, 1}},
		// Right face
		{[4][3]float32{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}, [3]float32{1, 1, 0}},
		// Top face
		{[4][3]float32{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}, [3]float32{0, 1, 1}},
		// Bottom face
		{[4][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}, [3]float32{1, 0, 1}},
	}

	vertices := make([]float32, 0, len(faces)*4*FloatsPerVertex)
	indices := make([]uint32, 0, len(faces)*6)
	for f, face := range faces {
		for _, c := range face.corners {
			vertices = append(vertices, c[0], c[1], c[2], face.color[0], face.color[1], face.color[2])
		}

		// Counter-clockwise when seen from outside
		base := uint32(f * 4)
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return Shape{Name: NameCube, Vertices: vertices, Indices: indices}
}

// hueToRGB maps h in [0, 1) onto the fully saturated colour wheel.
func hueToRGB(h float32) (r, g, b float32) {
	h6 := h * 6
	x := 1 - math32.Abs(math32.Mod(h6, 2)-1)
	switch int(h6) {
	case 0:
		return 1, x, 0
	case 1:
		return x, 1, 0
	case 2:
		return 0, 1, x
	case 3:
		return 0, x, 1
	case 4:
		return x, 0, 1
	default:
		return 1, 0, x
	}
}
