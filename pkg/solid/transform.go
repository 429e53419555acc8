package solid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mat3x4 is an affine transform: three rows of [x y z translation].
type Mat3x4 [3][4]float64

// Identity returns the identity transform.
func Identity() Mat3x4 {
	return Mat3x4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}
}

func (m Mat3x4) apply(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3],
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3],
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3],
	}
}

// det returns the determinant of the linear part. Negative means the
// transform flips orientation and triangle winding must be reversed.
func (m Mat3x4) det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func (m Mat3x4) finite() bool {
	for _, row := range m {
		for _, f := range row {
			if !isFinite(f) {
				return false
			}
		}
	}
	return true
}

// Transform applies an arbitrary affine transform.
func (s *Solid) Transform(m Mat3x4) *Solid {
	if s.status != NoError {
		return errorSolid(s.status)
	}
	if !m.finite() {
		return errorSolid(NonFiniteVertex)
	}
	mesh := s.mesh.clone()
	for i, v := range mesh.Verts {
		mesh.Verts[i] = m.apply(v)
	}
	if m.det() < 0 {
		for i, t := range mesh.Tris {
			mesh.Tris[i] = [3]int{t[0], t[2], t[1]}
		}
	}
	return fromMeshUnchecked(mesh, s.tolerance)
}

// Translate moves the solid by the given offset.
func (s *Solid) Translate(offset r3.Vec) *Solid {
	m := Identity()
	m[0][3], m[1][3], m[2][3] = offset.X, offset.Y, offset.Z
	return s.Transform(m)
}

// Scale scales the solid per axis. Negative factors mirror; a zero factor
// yields an InvalidConstruction solid.
func (s *Solid) Scale(factor r3.Vec) *Solid {
	if factor.X == 0 || factor.Y == 0 || factor.Z == 0 {
		return errorSolid(InvalidConstruction)
	}
	m := Mat3x4{}
	m[0][0], m[1][1], m[2][2] = factor.X, factor.Y, factor.Z
	return s.Transform(m)
}

// Rotate rotates the solid by the given Euler angles in degrees, applied
// about X, then Y, then Z.
func (s *Solid) Rotate(xDeg, yDeg, zDeg float64) *Solid {
	return s.Transform(rotationMatrix(xDeg, yDeg, zDeg))
}

func rotationMatrix(xDeg, yDeg, zDeg float64) Mat3x4 {
	sx, cx := math.Sincos(xDeg * math.Pi / 180)
	sy, cy := math.Sincos(yDeg * math.Pi / 180)
	sz, cz := math.Sincos(zDeg * math.Pi / 180)
	// Rz * Ry * Rx
	return Mat3x4{
		{cz * cy, cz*sy*sx - sz*cx, cz*sy*cx + sz*sx, 0},
		{sz * cy, sz*sy*sx + cz*cx, sz*sy*cx - cz*sx, 0},
		{-sy, cy * sx, cy * cx, 0},
	}
}

// Mirror reflects the solid across the plane through the origin with the
// given normal. A zero normal yields an InvalidConstruction solid.
func (s *Solid) Mirror(normal r3.Vec) *Solid {
	if s.status != NoError {
		return errorSolid(s.status)
	}
	n := r3.Norm(normal)
	if !isFinite(n) || n == 0 {
		return errorSolid(InvalidConstruction)
	}
	u := r3.Scale(1/n, normal)
	// Householder reflection I - 2uu^T.
	m := Mat3x4{
		{1 - 2*u.X*u.X, -2 * u.X * u.Y, -2 * u.X * u.Z, 0},
		{-2 * u.Y * u.X, 1 - 2*u.Y*u.Y, -2 * u.Y * u.Z, 0},
		{-2 * u.Z * u.X, -2 * u.Z * u.Y, 1 - 2*u.Z*u.Z, 0},
	}
	return s.Transform(m)
}

// TrimByPlane cuts away everything on the negative side of the plane
// dot(v, normal) = offset, capping the cut. The normal need not be unit
// length; a zero normal yields an InvalidConstruction solid.
func (s *Solid) TrimByPlane(normal r3.Vec, offset float64) *Solid {
	if s.status != NoError {
		return errorSolid(s.status)
	}
	n := r3.Norm(normal)
	if !isFinite(n) || n == 0 || !isFinite(offset) {
		return errorSolid(InvalidConstruction)
	}
	if s.IsEmpty() {
		return Empty()
	}
	u := r3.Scale(1/n, normal)
	off := offset / n
	// Intersect with a large box whose bottom face lies on the plane.
	box := s.BoundingBox()
	diag := r3.Norm(r3.Sub(box.Max, box.Min))
	l := 4*diag + 4*math.Abs(off) + 1
	half := Cube(r3.Vec{X: l, Y: l, Z: l}, true).
		Translate(r3.Vec{Z: l / 2}).
		Transform(basisTo(u)).
		Translate(r3.Scale(off, u))
	return s.Boolean(half, OpIntersect)
}

// basisTo returns a rotation taking +Z to the unit vector u.
func basisTo(u r3.Vec) Mat3x4 {
	ref := r3.Vec{X: 1}
	if math.Abs(u.X) > 0.9 {
		ref = r3.Vec{Y: 1}
	}
	a := r3.Unit(r3.Cross(u, ref))
	b := r3.Cross(u, a)
	return Mat3x4{
		{a.X, b.X, u.X, 0},
		{a.Y, b.Y, u.Y, 0},
		{a.Z, b.Z, u.Z, 0},
	}
}
