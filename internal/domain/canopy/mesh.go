package canopy

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/canopyforge/canopyforge/pkg/errors"
)

// Mesh is a triangulated surface: a vertex buffer whose insertion order is
// the vertex index, and a face buffer of counter-consistent index triples.
// A Mesh is created once by Assemble, transformed at most once by
// ApplySpillHole, and then treated as immutable.
type Mesh struct {
	Vertices []r3.Vec
	Faces    [][3]int
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// FaceCount returns the number of triangles.
func (m *Mesh) FaceCount() int { return len(m.Faces) }

// Validate checks that every face references only valid vertex indices.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for fi, f := range m.Faces {
		for _, v := range f {
			if v < 0 || v >= n {
				return errors.New(errors.ErrCodeMeshInconsistent, "face references invalid vertex").
					WithDetailf("face=%d vertex=%d vertices=%d", fi, v, n)
			}
		}
	}
	return nil
}
