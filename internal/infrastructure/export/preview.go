package export

import (
	"math"
	"os"
	"path/filepath"

	"github.com/tidwall/pinhole"

	"github.com/canopyforge/canopyforge/internal/domain/canopy"
	"github.com/canopyforge/canopyforge/pkg/errors"
)

// previewSize is the pixel width and height of the preview image.
const previewSize = 750

// WritePreview renders a rotated wireframe projection of the mesh to a PNG
// at path.  Each undirected triangle edge is drawn once.
func WritePreview(mesh *canopy.Mesh, path string) error {
	p := pinhole.New()
	p.Begin()

	type edge struct{ a, b int }
	seen := make(map[edge]struct{}, 3*len(mesh.Faces)/2)
	drawEdge := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		if _, ok := seen[edge{a, b}]; ok {
			return
		}
		seen[edge{a, b}] = struct{}{}
		va, vb := mesh.Vertices[a], mesh.Vertices[b]
		p.DrawLine(va.X, va.Y, va.Z, vb.X, vb.Y, vb.Z)
	}
	for _, f := range mesh.Faces {
		drawEdge(f[0], f[1])
		drawEdge(f[1], f[2])
		drawEdge(f[2], f[0])
	}
	p.End()

	// Fit the canopy into pinhole's unit viewing cube and tilt it so the
	// spill hole and gore seams are both visible.
	var maxNorm float64
	for _, v := range mesh.Vertices {
		if n := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z); n > maxNorm {
			maxNorm = n
		}
	}
	if maxNorm > 0 {
		s := 0.8 / maxNorm
		p.Scale(s, s, s)
	}
	p.Rotate(math.Pi/3, 0, math.Pi/8)

	// pinhole only writes directly to a path, so render to a temp name and
	// rename into place to keep the atomic discipline.
	tmpPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
	if err := p.SavePNG(tmpPath, previewSize, previewSize, pinhole.DefaultImageOptions); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, errors.ErrCodeFileWriteFailed, "failed to write preview image").
			WithDetail("path=" + path)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, errors.ErrCodeFileWriteFailed, "failed to finalize preview image").
			WithDetail("path=" + path)
	}
	return nil
}
