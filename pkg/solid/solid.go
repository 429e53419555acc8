package solid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Status describes the health of a solid. Operations on a solid with a
// non-NoError status propagate the status instead of computing geometry.
type Status int

const (
	NoError Status = iota
	NonFiniteVertex
	NotManifold
	VertexOutOfBounds
	InvalidConstruction
	ResultTooLarge
)

// String returns the canonical status name, as reported by the status()
// script query.
func (s Status) String() string {
	switch s {
	case NoError:
		return "NoError"
	case NonFiniteVertex:
		return "NonFiniteVertex"
	case NotManifold:
		return "NotManifold"
	case VertexOutOfBounds:
		return "VertexOutOfBounds"
	case InvalidConstruction:
		return "InvalidConstruction"
	case ResultTooLarge:
		return "ResultTooLarge"
	}
	return "Unknown"
}

// DefaultTolerance is the tolerance assigned to new solids.
const DefaultTolerance = 1e-9

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max r3.Vec
}

// Solid is an immutable closed triangle mesh with a status and a tolerance.
// The zero value is not useful; construct via primitives, FromMesh or Empty.
type Solid struct {
	mesh      Mesh
	status    Status
	tolerance float64
}

// Empty returns a solid with no geometry and NoError status.
func Empty() *Solid {
	return &Solid{tolerance: DefaultTolerance}
}

// errorSolid returns an empty solid carrying the given status.
func errorSolid(st Status) *Solid {
	return &Solid{status: st, tolerance: DefaultTolerance}
}

// FromMesh builds a solid from an indexed triangle mesh. The mesh must have
// finite vertices, in-bounds indices and form a closed 2-manifold; otherwise
// the returned solid is empty with the corresponding status.
func FromMesh(m Mesh) *Solid {
	if st := m.validate(); st != NoError {
		return errorSolid(st)
	}
	return &Solid{mesh: m.clone(), tolerance: DefaultTolerance}
}

// fromMeshUnchecked wraps a mesh known to be well-formed (kernel-internal
// constructions) without re-validating.
func fromMeshUnchecked(m Mesh, tol float64) *Solid {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	return &Solid{mesh: m, tolerance: tol}
}

// Status reports the kernel-recorded error state of this solid.
func (s *Solid) Status() Status { return s.status }

// IsEmpty reports whether the solid has no triangles.
func (s *Solid) IsEmpty() bool { return len(s.mesh.Tris) == 0 }

// Tolerance returns the solid's simplification tolerance.
func (s *Solid) Tolerance() float64 { return s.tolerance }

// SetTolerance returns a copy of the solid with the given tolerance.
// Non-positive or non-finite values leave the tolerance unchanged.
func (s *Solid) SetTolerance(tol float64) *Solid {
	out := *s
	if tol > 0 && !math.IsInf(tol, 0) && !math.IsNaN(tol) {
		out.tolerance = tol
	}
	return &out
}

// Mesh returns a copy of the solid's triangle mesh.
func (s *Solid) Mesh() Mesh { return s.mesh.clone() }

// NumVertices returns the vertex count.
func (s *Solid) NumVertices() int { return len(s.mesh.Verts) }

// NumTriangles returns the triangle count.
func (s *Solid) NumTriangles() int { return len(s.mesh.Tris) }

// NumEdges returns the undirected edge count. For a closed manifold mesh
// every edge is shared by exactly two triangles.
func (s *Solid) NumEdges() int { return len(s.mesh.Tris) * 3 / 2 }

// Genus returns the topological genus, summed over connected components:
// for each component, g = 1 - (V - E + F)/2.
func (s *Solid) Genus() int {
	if s.IsEmpty() {
		return 0
	}
	labels, n := s.mesh.components()
	if n == 1 {
		chi := s.NumVertices() - s.NumEdges() + s.NumTriangles()
		return 1 - chi/2
	}
	vertComp := make([]int, len(s.mesh.Verts))
	for i := range vertComp {
		vertComp[i] = -1
	}
	verts := make([]int, n)
	tris := make([]int, n)
	for i, t := range s.mesh.Tris {
		c := labels[i]
		tris[c]++
		for _, v := range t {
			if vertComp[v] == -1 {
				vertComp[v] = c
				verts[c]++
			}
		}
	}
	genus := 0
	for c := 0; c < n; c++ {
		chi := verts[c] - tris[c]*3/2 + tris[c]
		genus += 1 - chi/2
	}
	return genus
}

// Volume returns the enclosed volume.
func (s *Solid) Volume() float64 { return s.mesh.volume() }

// SurfaceArea returns the total triangle area.
func (s *Solid) SurfaceArea() float64 { return s.mesh.surfaceArea() }

// BoundingBox returns the axis-aligned bounds. An empty solid yields the
// zero box.
func (s *Solid) BoundingBox() Box { return s.mesh.boundingBox() }
