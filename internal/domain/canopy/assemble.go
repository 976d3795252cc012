package canopy

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Assemble builds the full canopy surface by replicating one gore's patch
// around the polar axis.  For gore g the patch is rotated about z by
// g·2π/gores and its points appended to the global vertex buffer; faces are
// emitted per grid cell as two triangles (a,b,c) and (b,d,c) offset by the
// gore's running vertex base.
//
// Adjacent gores are geometrically coincident along their seams but share no
// vertices; each gore is an independently rotated copy.  This keeps vertex
// indexing trivially regular and matches how the panels are manufactured, so
// the seams are intentionally left unwelded.
//
// Resulting counts: gores·phiSteps·thetaSteps vertices and
// gores·2·(phiSteps-1)·(thetaSteps-1) faces.
func Assemble(radius float64, gores, phiSteps, thetaSteps int, inflation float64) *Mesh {
	mesh := &Mesh{
		Vertices: make([]r3.Vec, 0, gores*phiSteps*thetaSteps),
		Faces:    make([][3]int, 0, gores*2*(phiSteps-1)*(thetaSteps-1)),
	}

	patch := GeneratePatch(radius, gores, phiSteps, thetaSteps, inflation)

	for g := 0; g < gores; g++ {
		angle := float64(g) * 2 * math.Pi / float64(gores)
		sinA, cosA := math.Sincos(angle)

		base := len(mesh.Vertices)
		for _, p := range patch.Points {
			mesh.Vertices = append(mesh.Vertices, r3.Vec{
				X: p.X*cosA - p.Y*sinA,
				Y: p.X*sinA + p.Y*cosA,
				Z: p.Z,
			})
		}

		for i := 0; i < phiSteps-1; i++ {
			for j := 0; j < thetaSteps-1; j++ {
				a := base + i*thetaSteps + j
				b := a + 1
				c := base + (i+1)*thetaSteps + j
				d := c + 1
				mesh.Faces = append(mesh.Faces, [3]int{a, b, c}, [3]int{b, d, c})
			}
		}
	}

	return mesh
}
