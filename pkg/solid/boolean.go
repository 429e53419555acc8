package solid

import "strings"

// Op selects a boolean operation.
type Op int

const (
	OpAdd Op = iota
	OpSubtract
	OpIntersect
)

// ParseOp maps an operation name to an Op. Accepted names (case
// insensitive): add/union, subtract/difference, intersect/intersection.
func ParseOp(name string) (Op, bool) {
	switch strings.ToLower(name) {
	case "add", "union":
		return OpAdd, true
	case "subtract", "difference":
		return OpSubtract, true
	case "intersect", "intersection":
		return OpIntersect, true
	}
	return 0, false
}

// OpFromIndex maps the numeric op encoding 0/1/2 to an Op.
func OpFromIndex(i int) (Op, bool) {
	if i < 0 || i > 2 {
		return 0, false
	}
	return Op(i), true
}

// Boolean combines two solids with the given operation. Operands carrying
// an error status propagate it; the kernel never panics on degenerate
// input.
func (s *Solid) Boolean(other *Solid, op Op) *Solid {
	if s.status != NoError {
		return errorSolid(s.status)
	}
	if other.status != NoError {
		return errorSolid(other.status)
	}
	switch op {
	case OpAdd:
		if s.IsEmpty() {
			return other.clone()
		}
		if other.IsEmpty() {
			return s.clone()
		}
		return s.combine(other, bspUnion)
	case OpSubtract:
		if s.IsEmpty() || other.IsEmpty() {
			return s.clone()
		}
		return s.combine(other, bspSubtract)
	case OpIntersect:
		if s.IsEmpty() || other.IsEmpty() {
			return Empty()
		}
		if !boxesOverlap(s.BoundingBox(), other.BoundingBox()) {
			return Empty()
		}
		return s.combine(other, bspIntersect)
	}
	return errorSolid(InvalidConstruction)
}

func (s *Solid) combine(other *Solid, f func(a, b []bspPolygon) []bspPolygon) *Solid {
	polys := f(meshToPolygons(s.mesh), meshToPolygons(other.mesh))
	mesh := polygonsToMesh(polys)
	out := fromMeshUnchecked(mesh, minTol(s.tolerance, other.tolerance))
	return out
}

func (s *Solid) clone() *Solid {
	out := *s
	out.mesh = s.mesh.clone()
	return &out
}

func minTol(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func boxesOverlap(a, b Box) bool {
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y &&
		a.Min.Z <= b.Max.Z && b.Min.Z <= a.Max.Z
}

// Union returns the union of the operands, folding left to right.
func Union(solids ...*Solid) *Solid { return BatchBoolean(OpAdd, solids) }

// Difference subtracts every subsequent operand from the first.
func Difference(solids ...*Solid) *Solid { return BatchBoolean(OpSubtract, solids) }

// Intersect intersects all operands.
func Intersect(solids ...*Solid) *Solid { return BatchBoolean(OpIntersect, solids) }

// BatchBoolean folds op over the operand list. An empty list yields an
// InvalidConstruction solid; a single operand is returned as-is.
func BatchBoolean(op Op, solids []*Solid) *Solid {
	if len(solids) == 0 {
		return errorSolid(InvalidConstruction)
	}
	result := solids[0]
	for _, next := range solids[1:] {
		result = result.Boolean(next, op)
	}
	return result.clone()
}

// Compose merges solids into one without evaluating boolean overlap. The
// operands are expected to be disjoint.
func Compose(solids ...*Solid) *Solid {
	mesh := Mesh{}
	tol := DefaultTolerance
	for _, s := range solids {
		if s.status != NoError {
			return errorSolid(s.status)
		}
		offset := len(mesh.Verts)
		mesh.Verts = append(mesh.Verts, s.mesh.Verts...)
		for _, t := range s.mesh.Tris {
			mesh.Tris = append(mesh.Tris, [3]int{t[0] + offset, t[1] + offset, t[2] + offset})
		}
		tol = minTol(tol, s.tolerance)
	}
	return fromMeshUnchecked(mesh, tol)
}

// Decompose splits the solid into its topologically connected components.
func (s *Solid) Decompose() []*Solid {
	if s.status != NoError {
		return []*Solid{errorSolid(s.status)}
	}
	labels, count := s.mesh.components()
	if count <= 1 {
		return []*Solid{s.clone()}
	}
	out := make([]*Solid, count)
	for id := 0; id < count; id++ {
		b := newMeshBuilder()
		for i, t := range s.mesh.Tris {
			if labels[i] != id {
				continue
			}
			b.triangle(s.mesh.Verts[t[0]], s.mesh.Verts[t[1]], s.mesh.Verts[t[2]])
		}
		out[id] = fromMeshUnchecked(b.mesh, s.tolerance)
	}
	return out
}
