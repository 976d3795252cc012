package export

import (
	"os"

	"github.com/unixpickle/model3d/model3d"

	"github.com/canopyforge/canopyforge/internal/domain/canopy"
	"github.com/canopyforge/canopyforge/pkg/errors"
)

// WriteSTL serializes the mesh to a binary STL file at path.  The mesh must
// already be validated; the conversion trusts the face indices.
func WriteSTL(mesh *canopy.Mesh, path string) error {
	return atomicWrite(path, func(f *os.File) error {
		return model3d.WriteSTL(f, Triangles(mesh))
	})
}

// Triangles converts the index-buffer mesh into the triangle-soup form the
// STL writer consumes.  Vertex sharing is lost by design; STL has no vertex
// buffer.
func Triangles(mesh *canopy.Mesh) []*model3d.Triangle {
	tris := make([]*model3d.Triangle, 0, len(mesh.Faces))
	for _, face := range mesh.Faces {
		tri := &model3d.Triangle{}
		for i, vi := range face {
			v := mesh.Vertices[vi]
			tri[i] = model3d.XYZ(v.X, v.Y, v.Z)
		}
		tris = append(tris, tri)
	}
	return tris
}

// ReadSTLFaceCount re-reads an exported STL and returns its triangle count.
// Used to verify export integrity without loading a full mesh structure.
func ReadSTLFaceCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrCodeFileReadFailed, "cannot open mesh file").
			WithDetail("path=" + path)
	}
	defer f.Close()

	tris, err := model3d.ReadSTL(f)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrCodeFileReadFailed, "cannot parse mesh file").
			WithDetail("path=" + path)
	}
	return len(tris), nil
}
