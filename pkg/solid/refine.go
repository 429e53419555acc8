package solid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// maxRefineTriangles caps refinement output; exceeding it yields a
// ResultTooLarge solid.
const maxRefineTriangles = 1 << 22

// Refine splits every edge into n pieces, turning each triangle into n^2
// coplanar triangles. n < 1 yields an InvalidConstruction solid.
func (s *Solid) Refine(n int) *Solid {
	if s.status != NoError {
		return errorSolid(s.status)
	}
	if n < 1 {
		return errorSolid(InvalidConstruction)
	}
	if n == 1 || s.IsEmpty() {
		return s.clone()
	}
	if len(s.mesh.Tris)*n*n > maxRefineTriangles {
		return errorSolid(ResultTooLarge)
	}
	b := newMeshBuilder()
	for _, t := range s.mesh.Tris {
		a, c, d := s.mesh.Verts[t[0]], s.mesh.Verts[t[1]], s.mesh.Verts[t[2]]
		// Barycentric lattice point: row i away from a, j steps toward d.
		at := func(i, j int) r3.Vec {
			fa := float64(n-i) / float64(n)
			fc := float64(i-j) / float64(n)
			fd := float64(j) / float64(n)
			return r3.Add(r3.Add(r3.Scale(fa, a), r3.Scale(fc, c)), r3.Scale(fd, d))
		}
		for i := 0; i < n; i++ {
			for j := 0; j <= i; j++ {
				b.triangle(at(i, j), at(i+1, j), at(i+1, j+1))
				if j < i {
					b.triangle(at(i, j), at(i+1, j+1), at(i, j+1))
				}
			}
		}
	}
	return fromMeshUnchecked(b.mesh, s.tolerance)
}

// RefineToLength refines until no edge is longer than length.
func (s *Solid) RefineToLength(length float64) *Solid {
	if s.status != NoError {
		return errorSolid(s.status)
	}
	if !isFinite(length) || length <= 0 {
		return errorSolid(InvalidConstruction)
	}
	var longest float64
	for _, t := range s.mesh.Tris {
		a, b, c := s.mesh.Verts[t[0]], s.mesh.Verts[t[1]], s.mesh.Verts[t[2]]
		longest = math.Max(longest, r3.Norm(r3.Sub(b, a)))
		longest = math.Max(longest, r3.Norm(r3.Sub(c, b)))
		longest = math.Max(longest, r3.Norm(r3.Sub(a, c)))
	}
	if longest <= length {
		return s.clone()
	}
	return s.Refine(int(math.Ceil(longest / length)))
}

// Simplify welds vertices closer than tolerance and drops collapsed
// triangles. A non-positive tolerance uses the solid's own tolerance.
func (s *Solid) Simplify(tolerance float64) *Solid {
	if s.status != NoError {
		return errorSolid(s.status)
	}
	if tolerance <= 0 || !isFinite(tolerance) {
		tolerance = s.tolerance
	}
	b := newMeshBuilder()
	b.scale = 1 / tolerance
	for _, t := range s.mesh.Tris {
		b.triangle(s.mesh.Verts[t[0]], s.mesh.Verts[t[1]], s.mesh.Verts[t[2]])
	}
	return fromMeshUnchecked(b.mesh, s.tolerance)
}
