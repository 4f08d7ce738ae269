package openglhelper

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/google/uuid"

	"github.com/gl-modeling-tool/modeler/internal/shapes"
)

// Mesh is a static indexed shape. The vertex data lives on the CPU until
// Init uploads it; Draw must not be called before that.
type Mesh struct {
	ID   string
	Name string

	vao      *VertexArrayObject
	vbo      *BufferObject
	ebo      *BufferObject
	indices  []uint32
	vertices []float32
	logger   *slog.Logger
}

// NewMesh wraps shape data for upload
func NewMesh(shape shapes.Shape, logger *slog.Logger) *Mesh {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mesh{
		ID:       uuid.NewString(),
		Name:     shape.Name,
		indices:  shape.Indices,
		vertices: shape.Vertices,
		logger:   logger,
	}
}

// NewShape builds the named built-in shape
func NewShape(name string, sides int, logger *slog.Logger) (*Mesh, error) {
	shape, err := shapes.ByName(name, sides)
	if err != nil {
		return nil, err
	}
	return NewMesh(shape, logger), nil
}

// Init uploads the vertex and index data and records the attribute layout
func (m *Mesh) Init() error {
	if m.vao != nil {
		return fmt.Errorf("mesh %s already initialized", m.ID)
	}
	if len(m.vertices) == 0 || len(m.indices) == 0 {
		return errors.New("mesh has no vertex data")
	}

	m.vao = NewVAO()
	m.vao.Bind()

	m.vbo = NewVBO(m.vertices, StaticDraw)
	m.ebo = NewEBO(m.indices, StaticDraw)

	stride := int32(shapes.FloatsPerVertex * 4)
	// Position attribute (3 floats)
	m.vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, stride, 0)
	// Color attribute (3 floats)
	m.vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, stride, 3*4)

	// Unbind VAO
	m.vao.Unbind()

	m.logger.Debug("uploaded mesh",
		"id", m.ID,
		"shape", m.Name,
		"vertices", len(m.vertices)/shapes.FloatsPerVertex,
		"indices", len(m.indices))

	return nil
}

// Draw renders the mesh with the currently bound program
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, int32(len(m.indices)), gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	if m.vao == nil {
		return
	}
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
	m.vao = nil
	m.logger.Debug("deleted mesh", "id", m.ID, "shape", m.Name)
}
