package solid

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func near(t *testing.T, got, want, tol float64, what string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (tol %v)", what, got, want, tol)
	}
}

func TestCube(t *testing.T) {
	c := Cube(r3.Vec{X: 2, Y: 2, Z: 2}, true)
	if c.Status() != NoError {
		t.Fatalf("Status() = %v", c.Status())
	}
	near(t, c.Volume(), 8, 1e-9, "Volume()")
	near(t, c.SurfaceArea(), 24, 1e-9, "SurfaceArea()")
	if n := c.NumVertices(); n != 8 {
		t.Errorf("NumVertices() = %d, want 8", n)
	}
	if n := c.NumTriangles(); n != 12 {
		t.Errorf("NumTriangles() = %d, want 12", n)
	}
	if n := c.NumEdges(); n != 18 {
		t.Errorf("NumEdges() = %d, want 18", n)
	}
	if g := c.Genus(); g != 0 {
		t.Errorf("Genus() = %d, want 0", g)
	}
	box := c.BoundingBox()
	near(t, box.Min.X, -1, 1e-12, "BoundingBox().Min.X")
	near(t, box.Max.Z, 1, 1e-12, "BoundingBox().Max.Z")
}

func TestCubeInvalid(t *testing.T) {
	tests := []struct {
		name string
		size r3.Vec
	}{
		{"zero", r3.Vec{}},
		{"negative", r3.Vec{X: -1, Y: 1, Z: 1}},
		{"nan", r3.Vec{X: math.NaN(), Y: 1, Z: 1}},
		{"inf", r3.Vec{X: 1, Y: math.Inf(1), Z: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Cube(tt.size, false)
			if c.Status() != InvalidConstruction {
				t.Errorf("Status() = %v, want InvalidConstruction", c.Status())
			}
			if !c.IsEmpty() {
				t.Error("IsEmpty() = false")
			}
		})
	}
}

func TestSphereVolume(t *testing.T) {
	s := Sphere(2)
	if s.Status() != NoError {
		t.Fatalf("Status() = %v", s.Status())
	}
	want := 4.0 / 3.0 * math.Pi * 8
	near(t, s.Volume(), want, want*0.05, "Volume()")
	if g := s.Genus(); g != 0 {
		t.Errorf("Genus() = %d, want 0", g)
	}
}

func TestTetrahedron(t *testing.T) {
	near(t, Tetrahedron().Volume(), 8.0/3.0, 1e-9, "Volume()")
}

func TestCylinderVolume(t *testing.T) {
	c := Cylinder(2, 1, 1, false)
	want := math.Pi * 2
	near(t, c.Volume(), want, want*0.02, "Volume()")

	cone := Cylinder(3, 1, 0, false)
	wantCone := math.Pi * 3 / 3
	near(t, cone.Volume(), wantCone, wantCone*0.02, "cone Volume()")
}

func TestUnionDisjoint(t *testing.T) {
	a := Cube(r3.Vec{X: 1, Y: 1, Z: 1}, false)
	b := Cube(r3.Vec{X: 1, Y: 1, Z: 1}, false).Translate(r3.Vec{X: 3})
	u := Union(a, b)
	if u.Status() != NoError {
		t.Fatalf("Status() = %v", u.Status())
	}
	near(t, u.Volume(), 2, 1e-6, "Volume()")
}

func TestUnionOverlap(t *testing.T) {
	a := Cube(r3.Vec{X: 1, Y: 1, Z: 1}, false)
	b := a.Translate(r3.Vec{X: 0.5})
	near(t, Union(a, b).Volume(), 1.5, 1e-6, "Volume()")
}

func TestDifference(t *testing.T) {
	a := Cube(r3.Vec{X: 1, Y: 1, Z: 1}, false)
	b := Cube(r3.Vec{X: 1, Y: 1, Z: 1}, false).Translate(r3.Vec{X: 0.5})
	near(t, Difference(a, b).Volume(), 0.5, 1e-6, "Volume()")
}

func TestIntersect(t *testing.T) {
	a := Cube(r3.Vec{X: 1, Y: 1, Z: 1}, false)
	b := a.Translate(r3.Vec{X: 0.25})
	near(t, Intersect(a, b).Volume(), 0.75, 1e-6, "Volume()")

	far := a.Translate(r3.Vec{X: 10})
	if got := Intersect(a, far); !got.IsEmpty() {
		t.Errorf("disjoint Intersect not empty, volume %v", got.Volume())
	}
}

func TestBatchBoolean(t *testing.T) {
	if st := BatchBoolean(OpAdd, nil).Status(); st != InvalidConstruction {
		t.Errorf("empty BatchBoolean Status() = %v", st)
	}
	a := Cube(r3.Vec{X: 1, Y: 1, Z: 1}, false)
	b := a.Translate(r3.Vec{X: 2})
	c := a.Translate(r3.Vec{X: 4})
	near(t, BatchBoolean(OpAdd, []*Solid{a, b, c}).Volume(), 3, 1e-6, "Volume()")
}

func TestStatusPropagation(t *testing.T) {
	bad := Cube(r3.Vec{}, false)
	good := Cube(r3.Vec{X: 1, Y: 1, Z: 1}, false)
	if st := good.Boolean(bad, OpAdd).Status(); st != InvalidConstruction {
		t.Errorf("Status() = %v, want InvalidConstruction", st)
	}
	if st := bad.Translate(r3.Vec{X: 1}).Status(); st != InvalidConstruction {
		t.Errorf("transform of error solid Status() = %v", st)
	}
}

func TestTransforms(t *testing.T) {
	c := Cube(r3.Vec{X: 1, Y: 2, Z: 3}, false)
	near(t, c.Translate(r3.Vec{X: 5, Y: -1, Z: 2}).Volume(), 6, 1e-9, "translated Volume()")
	near(t, c.Scale(r3.Vec{X: 2, Y: 2, Z: 2}).Volume(), 48, 1e-9, "scaled Volume()")
	near(t, c.Rotate(30, 45, 60).Volume(), 6, 1e-9, "rotated Volume()")
	near(t, c.Mirror(r3.Vec{X: 1}).Volume(), 6, 1e-9, "mirrored Volume()")
	near(t, c.Scale(r3.Vec{X: -1, Y: 1, Z: 1}).Volume(), 6, 1e-9, "negative scale Volume()")

	if st := c.Scale(r3.Vec{X: 0, Y: 1, Z: 1}).Status(); st != InvalidConstruction {
		t.Errorf("zero scale Status() = %v", st)
	}
	if st := c.Mirror(r3.Vec{}).Status(); st != InvalidConstruction {
		t.Errorf("zero-normal Mirror Status() = %v", st)
	}
}

func TestTrimByPlane(t *testing.T) {
	c := Cube(r3.Vec{X: 1, Y: 1, Z: 1}, false)
	half := c.TrimByPlane(r3.Vec{Z: 1}, 0.5)
	if half.Status() != NoError {
		t.Fatalf("Status() = %v", half.Status())
	}
	near(t, half.Volume(), 0.5, 1e-6, "Volume()")
	near(t, half.BoundingBox().Min.Z, 0.5, 1e-6, "Min.Z")

	// Unnormalized oblique normal through the cube center: the plane
	// x + y = 1 splits the unit cube exactly in half.
	oblique := c.TrimByPlane(r3.Vec{X: 2, Y: 2}, 2)
	if oblique.Status() != NoError {
		t.Fatalf("oblique Status() = %v", oblique.Status())
	}
	near(t, oblique.Volume(), 0.5, 1e-6, "oblique Volume()")

	if st := c.TrimByPlane(r3.Vec{}, 0).Status(); st != InvalidConstruction {
		t.Errorf("zero-normal Status() = %v", st)
	}
}

func TestRefine(t *testing.T) {
	c := Cube(r3.Vec{X: 1, Y: 1, Z: 1}, false)
	r := c.Refine(3)
	if r.Status() != NoError {
		t.Fatalf("Status() = %v", r.Status())
	}
	if got, want := r.NumTriangles(), 12*9; got != want {
		t.Errorf("NumTriangles() = %d, want %d", got, want)
	}
	near(t, r.Volume(), 1, 1e-9, "Volume()")
	near(t, r.SurfaceArea(), 6, 1e-9, "SurfaceArea()")

	if st := c.Refine(0).Status(); st != InvalidConstruction {
		t.Errorf("Refine(0) Status() = %v", st)
	}
}

func TestRefineToLength(t *testing.T) {
	c := Cube(r3.Vec{X: 1, Y: 1, Z: 1}, false)
	r := c.RefineToLength(0.5)
	if r.NumTriangles() <= c.NumTriangles() {
		t.Errorf("RefineToLength did not subdivide: %d triangles", r.NumTriangles())
	}
	near(t, r.Volume(), 1, 1e-9, "Volume()")
}

func TestComposeDecompose(t *testing.T) {
	a := Cube(r3.Vec{X: 1, Y: 1, Z: 1}, false)
	b := a.Translate(r3.Vec{X: 5})
	combo := Compose(a, b)
	near(t, combo.Volume(), 2, 1e-9, "Volume()")
	parts := combo.Decompose()
	if len(parts) != 2 {
		t.Fatalf("Decompose() returned %d parts, want 2", len(parts))
	}
	for i, p := range parts {
		near(t, p.Volume(), 1, 1e-6, "part Volume()")
		if p.Status() != NoError {
			t.Errorf("part %d Status() = %v", i, p.Status())
		}
	}

	// Genus sums per component: disjoint genus-0 solids stay genus 0.
	if g := combo.Genus(); g != 0 {
		t.Errorf("two-component Genus() = %d, want 0", g)
	}
	three := Compose(combo, a.Translate(r3.Vec{X: 10}))
	if g := three.Genus(); g != 0 {
		t.Errorf("three-component Genus() = %d, want 0", g)
	}
}

func TestExtrude(t *testing.T) {
	square := Polygons{{{0, 0}, {2, 0}, {2, 2}, {0, 2}}}
	s := Extrude(square, 3, 0, 0, [2]float64{1, 1})
	if s.Status() != NoError {
		t.Fatalf("Status() = %v", s.Status())
	}
	near(t, s.Volume(), 12, 1e-9, "Volume()")

	apex := Extrude(square, 3, 4, 0, [2]float64{0, 0})
	near(t, apex.Volume(), 4, 1e-6, "apex Volume()")

	if st := Extrude(square, -1, 0, 0, [2]float64{1, 1}).Status(); st != InvalidConstruction {
		t.Errorf("negative height Status() = %v", st)
	}
	if st := Extrude(Polygons{{{0, 0}, {1, 1}}}, 1, 0, 0, [2]float64{1, 1}).Status(); st != InvalidConstruction {
		t.Errorf("two-point loop Status() = %v", st)
	}
}

func TestRevolve(t *testing.T) {
	annulus := Polygons{{{1, 0}, {2, 0}, {2, 1}, {1, 1}}}
	s := Revolve(annulus, 0, 360)
	if s.Status() != NoError {
		t.Fatalf("Status() = %v", s.Status())
	}
	want := math.Pi * (4 - 1) * 1
	near(t, s.Volume(), want, want*0.02, "Volume()")

	halfTurn := Revolve(annulus, 0, 180)
	near(t, halfTurn.Volume(), want/2, want*0.02, "half Volume()")

	if st := Revolve(annulus, 0, 0).Status(); st != InvalidConstruction {
		t.Errorf("zero degrees Status() = %v", st)
	}
}

func TestSimplify(t *testing.T) {
	c := Cube(r3.Vec{X: 1, Y: 1, Z: 1}, false).Refine(2)
	s := c.Simplify(1e-6)
	near(t, s.Volume(), 1, 1e-6, "Volume()")
}

func TestSetTolerance(t *testing.T) {
	c := Cube(r3.Vec{X: 1, Y: 1, Z: 1}, false)
	if got := c.SetTolerance(1e-3).Tolerance(); got != 1e-3 {
		t.Errorf("Tolerance() = %v, want 1e-3", got)
	}
	if got := c.SetTolerance(-1).Tolerance(); got != DefaultTolerance {
		t.Errorf("Tolerance() after invalid set = %v", got)
	}
	// SetTolerance must not mutate the receiver.
	if got := c.Tolerance(); got != DefaultTolerance {
		t.Errorf("receiver Tolerance() = %v", got)
	}
}

func TestFromMeshValidation(t *testing.T) {
	open := Mesh{
		Verts: []r3.Vec{{}, {X: 1}, {Y: 1}},
		Tris:  [][3]int{{0, 1, 2}},
	}
	if st := FromMesh(open).Status(); st != NotManifold {
		t.Errorf("open mesh Status() = %v, want NotManifold", st)
	}
	oob := Mesh{
		Verts: []r3.Vec{{}, {X: 1}, {Y: 1}},
		Tris:  [][3]int{{0, 1, 7}},
	}
	if st := FromMesh(oob).Status(); st != VertexOutOfBounds {
		t.Errorf("out-of-bounds Status() = %v, want VertexOutOfBounds", st)
	}
	nan := Mesh{
		Verts: []r3.Vec{{X: math.NaN()}},
	}
	if st := FromMesh(nan).Status(); st != NonFiniteVertex {
		t.Errorf("nan Status() = %v, want NonFiniteVertex", st)
	}
}
