package export

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unixpickle/model3d/model3d"

	"github.com/canopyforge/canopyforge/internal/domain/canopy"
)

func TestTriangles(t *testing.T) {
	mesh := canopy.Assemble(1.0, 4, 5, 5, 1.0)
	tris := Triangles(mesh)

	require.Len(t, tris, mesh.FaceCount())
	for fi, f := range mesh.Faces {
		for i, vi := range f {
			v := mesh.Vertices[vi]
			assert.Equal(t, model3d.XYZ(v.X, v.Y, v.Z), tris[fi][i])
		}
	}
}

func TestWriteSTL_RoundTrip(t *testing.T) {
	mesh := canopy.Assemble(1.0, 8, 20, 10, 1.0)
	path := filepath.Join(t.TempDir(), "canopy.stl")

	require.NoError(t, WriteSTL(mesh, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	tris, err := model3d.ReadSTL(f)
	require.NoError(t, err)

	// The face buffer survives exactly; STL stores three vertices per face,
	// so the re-read vertex count is 3x the face count.
	require.Len(t, tris, mesh.FaceCount())
	assert.Equal(t, 3*mesh.FaceCount(), 3*len(tris))

	// Per-face vertex coordinates survive within STL's float32 precision.
	for fi, f := range mesh.Faces {
		for i, vi := range f {
			want := mesh.Vertices[vi]
			got := tris[fi][i]
			assert.InDelta(t, want.X, got.X, 1e-6)
			assert.InDelta(t, want.Y, got.Y, 1e-6)
			assert.InDelta(t, want.Z, got.Z, 1e-6)
		}
	}
}

func TestWriteSTL_FilteredMesh(t *testing.T) {
	mesh := canopy.Assemble(1.0, 12, 30, 15, 1.0)
	filtered, err := canopy.ApplySpillHole(mesh, 0.2)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "vented.stl")
	require.NoError(t, WriteSTL(filtered, path))

	count, err := ReadSTLFaceCount(path)
	require.NoError(t, err)
	assert.Equal(t, filtered.FaceCount(), count)
	assert.Less(t, count, mesh.FaceCount())
}

func TestReadSTLFaceCount_MissingFile(t *testing.T) {
	_, err := ReadSTLFaceCount(filepath.Join(t.TempDir(), "absent.stl"))
	require.Error(t, err)
}

func TestWriteSTL_GeometryIntact(t *testing.T) {
	// All exported triangles of an uninflated canopy lie on the sphere.
	mesh := canopy.Assemble(1.0, 6, 12, 8, 1.0)
	path := filepath.Join(t.TempDir(), "sphere.stl")
	require.NoError(t, WriteSTL(mesh, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	tris, err := model3d.ReadSTL(f)
	require.NoError(t, err)

	for _, tri := range tris {
		for _, v := range tri {
			r := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
			assert.InDelta(t, 1.0, r, 1e-6)
		}
	}
}
