// Package mesh holds interleaved triangle meshes and their vertex layout.
package mesh

import (
	"fmt"

	"github.com/Faultbox/wobble/pkg/math"
)

// FloatsPerVertex is the interleaved vertex size: position, normal, uv.
const FloatsPerVertex = 8

// Stride is the vertex size in bytes.
const Stride = FloatsPerVertex * 4

// Attribute describes one component of the interleaved vertex.
type Attribute struct {
	Name   string // Shader input name
	Size   int32  // Float count
	Offset int    // Offset in floats from the vertex start
}

// ByteOffset returns the attribute offset in bytes.
func (a Attribute) ByteOffset() uintptr {
	return uintptr(a.Offset * 4)
}

// Layout is the fixed vertex layout shared by every mesh.
var Layout = []Attribute{
	{Name: "aPos", Size: 3, Offset: 0},
	{Name: "aNormal", Size: 3, Offset: 3},
	{Name: "aTexCoords", Size: 2, Offset: 6},
}

// Vertex is one decoded vertex record.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       [2]float32
}

// Mesh is an indexed triangle list over interleaved vertices.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// InvalidGeometryError reports a mesh that cannot be drawn safely.
type InvalidGeometryError struct {
	Reason      string
	Index       int    // Position in Indices, -1 when not about an index
	Value       uint32 // Offending index value
	VertexCount int
}

func (e *InvalidGeometryError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid geometry: index %d at position %d out of range (%d vertices)",
			e.Value, e.Index, e.VertexCount)
	}
	return "invalid geometry: " + e.Reason
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// Vertex decodes vertex i using Layout.
func (m *Mesh) Vertex(i int) Vertex {
	v := m.Vertices[i*FloatsPerVertex : (i+1)*FloatsPerVertex]
	return Vertex{
		Position: math.Vec3{X: v[0], Y: v[1], Z: v[2]},
		Normal:   math.Vec3{X: v[3], Y: v[4], Z: v[5]},
		UV:       [2]float32{v[6], v[7]},
	}
}

// Validate checks that the mesh is a non-empty triangle list whose indices
// all reference existing vertices.
func (m *Mesh) Validate() error {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return &InvalidGeometryError{Reason: "empty mesh", Index: -1}
	}
	if len(m.Vertices)%FloatsPerVertex != 0 {
		return &InvalidGeometryError{
			Reason: fmt.Sprintf("vertex data length %d is not a multiple of %d", len(m.Vertices), FloatsPerVertex),
			Index:  -1,
		}
	}
	if len(m.Indices)%3 != 0 {
		return &InvalidGeometryError{
			Reason: fmt.Sprintf("index count %d is not a multiple of 3", len(m.Indices)),
			Index:  -1,
		}
	}

	n := m.VertexCount()
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return &InvalidGeometryError{Reason: "index out of range", Index: i, Value: idx, VertexCount: n}
		}
	}
	return nil
}
