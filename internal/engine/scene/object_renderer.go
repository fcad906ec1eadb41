package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/wobble/internal/engine/mesh"
	"github.com/Faultbox/wobble/internal/engine/shader"
	"github.com/Faultbox/wobble/internal/engine/texture"
	"github.com/Faultbox/wobble/pkg/math"
)

// ObjectRenderer owns the GPU buffers of one mesh and draws it with a
// shared program and a shared diffuse/specular texture pair.
type ObjectRenderer struct {
	Name string

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	program  *shader.Program
	diffuse  *texture.Texture
	specular *texture.Texture

	// Attribute locations, parallel to mesh.Layout
	locations []uint32
}

// NewObjectRenderer validates m and uploads it. An invalid mesh returns a
// *mesh.InvalidGeometryError before any GPU object is created.
func NewObjectRenderer(name string, m *mesh.Mesh, program *shader.Program, diffuse, specular *texture.Texture) (*ObjectRenderer, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("object %s: %w", name, err)
	}

	locations := make([]uint32, len(mesh.Layout))
	for i, attr := range mesh.Layout {
		loc, err := program.AttribLocation(attr.Name)
		if err != nil {
			return nil, fmt.Errorf("object %s: %w", name, err)
		}
		locations[i] = loc
	}

	o := &ObjectRenderer{
		Name:       name,
		indexCount: int32(len(m.Indices)),
		program:    program,
		diffuse:    diffuse,
		specular:   specular,
		locations:  locations,
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)

	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// The element binding is VAO state, so it stays attached after unbinding.
	gl.GenBuffers(1, &o.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, o.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	o.ConfigureAttributes()

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return o, nil
}

// Bind makes this object's vertex array current.
func (o *ObjectRenderer) Bind() {
	gl.BindVertexArray(o.vao)
}

// ConfigureAttributes declares the interleaved position/normal/uv layout on
// this object's vertex array. Repeating it re-declares the same state.
func (o *ObjectRenderer) ConfigureAttributes() {
	o.Bind()
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	for i, attr := range mesh.Layout {
		loc := o.locations[i]
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointer(loc, attr.Size, gl.FLOAT, false, mesh.Stride, gl.PtrOffset(int(attr.ByteOffset())))
	}
}

// ApplyTextures binds the diffuse map to unit 0 and the specular map to unit 1.
func (o *ObjectRenderer) ApplyTextures() {
	o.diffuse.Use(DiffuseUnit)
	o.specular.Use(SpecularUnit)
}

// SetModelTransform writes the "model" uniform of the shared program. Every
// object using the program sees the new value, so it must be followed by
// this object's draw call before any other object updates it.
func (o *ObjectRenderer) SetModelTransform(model math.Mat4) {
	o.program.SetMat4("model", model)
}

// Draw renders the object with the given model transform. Binding, texture
// setup and the uniform write happen here, immediately before the draw call.
func (o *ObjectRenderer) Draw(model math.Mat4) {
	o.Bind()
	o.ApplyTextures()
	o.SetModelTransform(model)
	o.ConfigureAttributes()
	gl.DrawElements(gl.TRIANGLES, o.indexCount, gl.UNSIGNED_INT, nil)
}

// IndexCount returns the number of indices drawn per call.
func (o *ObjectRenderer) IndexCount() int {
	return int(o.indexCount)
}

// Close deletes the vertex array and both buffers. Textures and the program
// are shared and belong to the scene.
func (o *ObjectRenderer) Close() {
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
		o.vao = 0
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
		o.vbo = 0
	}
	if o.ebo != 0 {
		gl.DeleteBuffers(1, &o.ebo)
		o.ebo = 0
	}
}
