package canopy

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/canopyforge/canopyforge/pkg/errors"
)

// removedVertex is the sentinel in the old→new index remap table.
const removedVertex = -1

// ApplySpillHole excises the apex vent from an assembled mesh.  A vertex
// survives when its planar distance from the polar axis exceeds
// spillDiameter/2; a face survives when all three of its vertices do.
// Surviving vertices are re-indexed contiguously from 0 and every surviving
// face is remapped, so the result never contains a dangling index.
//
// spillDiameter ≤ 0 returns the input mesh unchanged.  A spill hole wide
// enough to leave no vertices at all yields ErrCodeDegenerateGeometry rather
// than an empty mesh.
//
// The cut is a hard spatial filter: the resulting hole edge is jagged at grid
// resolution, which is acceptable for the manufacturing use of the mesh.
func ApplySpillHole(mesh *Mesh, spillDiameter float64) (*Mesh, error) {
	if spillDiameter <= 0 {
		return mesh, nil
	}

	spillRadius := spillDiameter / 2

	remap := make([]int, len(mesh.Vertices))
	kept := make([]r3.Vec, 0, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		if math.Hypot(v.X, v.Y) > spillRadius {
			remap[i] = len(kept)
			kept = append(kept, v)
		} else {
			remap[i] = removedVertex
		}
	}

	if len(kept) == 0 {
		return nil, errors.DegenerateGeometry("spill hole removes the entire canopy surface").
			WithDetailf("spill_diameter=%g m", spillDiameter)
	}

	faces := make([][3]int, 0, len(mesh.Faces))
	for _, f := range mesh.Faces {
		a, b, c := remap[f[0]], remap[f[1]], remap[f[2]]
		if a == removedVertex || b == removedVertex || c == removedVertex {
			continue
		}
		faces = append(faces, [3]int{a, b, c})
	}

	return &Mesh{Vertices: kept, Faces: faces}, nil
}
