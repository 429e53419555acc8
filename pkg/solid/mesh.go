package solid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is an indexed triangle mesh. Triangles wind counter-clockwise when
// viewed from outside the enclosed volume.
type Mesh struct {
	Verts []r3.Vec
	Tris  [][3]int
}

func (m Mesh) clone() Mesh {
	out := Mesh{
		Verts: make([]r3.Vec, len(m.Verts)),
		Tris:  make([][3]int, len(m.Tris)),
	}
	copy(out.Verts, m.Verts)
	copy(out.Tris, m.Tris)
	return out
}

// validate checks finiteness, index bounds and closed-manifold topology.
func (m Mesh) validate() Status {
	for _, v := range m.Verts {
		if !isFinite(v.X) || !isFinite(v.Y) || !isFinite(v.Z) {
			return NonFiniteVertex
		}
	}
	n := len(m.Verts)
	edges := make(map[[2]int]int, len(m.Tris)*3)
	for _, t := range m.Tris {
		for i := 0; i < 3; i++ {
			if t[i] < 0 || t[i] >= n {
				return VertexOutOfBounds
			}
		}
		if t[0] == t[1] || t[1] == t[2] || t[2] == t[0] {
			return NotManifold
		}
		edges[[2]int{t[0], t[1]}]++
		edges[[2]int{t[1], t[2]}]++
		edges[[2]int{t[2], t[0]}]++
	}
	// Closed 2-manifold: each directed edge appears once and is paired
	// with its reverse.
	for e, c := range edges {
		if c != 1 || edges[[2]int{e[1], e[0]}] != 1 {
			return NotManifold
		}
	}
	return NoError
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// volume is the sum of signed tetrahedron volumes against the origin.
func (m Mesh) volume() float64 {
	var sum float64
	for _, t := range m.Tris {
		a, b, c := m.Verts[t[0]], m.Verts[t[1]], m.Verts[t[2]]
		sum += r3.Dot(a, r3.Cross(b, c))
	}
	return sum / 6
}

func (m Mesh) surfaceArea() float64 {
	var sum float64
	for _, t := range m.Tris {
		a, b, c := m.Verts[t[0]], m.Verts[t[1]], m.Verts[t[2]]
		sum += r3.Norm(r3.Cross(r3.Sub(b, a), r3.Sub(c, a))) / 2
	}
	return sum
}

func (m Mesh) boundingBox() Box {
	if len(m.Verts) == 0 {
		return Box{}
	}
	box := Box{Min: m.Verts[0], Max: m.Verts[0]}
	for _, v := range m.Verts[1:] {
		box.Min.X = math.Min(box.Min.X, v.X)
		box.Min.Y = math.Min(box.Min.Y, v.Y)
		box.Min.Z = math.Min(box.Min.Z, v.Z)
		box.Max.X = math.Max(box.Max.X, v.X)
		box.Max.Y = math.Max(box.Max.Y, v.Y)
		box.Max.Z = math.Max(box.Max.Z, v.Z)
	}
	return box
}

// meshBuilder accumulates triangles, welding vertices that quantize to the
// same grid cell. Keeps subdivision and BSP output watertight.
type meshBuilder struct {
	mesh  Mesh
	index map[[3]int64]int
	scale float64
}

func newMeshBuilder() *meshBuilder {
	return &meshBuilder{
		index: make(map[[3]int64]int),
		scale: 1e7,
	}
}

func (b *meshBuilder) vertex(v r3.Vec) int {
	key := [3]int64{
		int64(math.Round(v.X * b.scale)),
		int64(math.Round(v.Y * b.scale)),
		int64(math.Round(v.Z * b.scale)),
	}
	if i, ok := b.index[key]; ok {
		return i
	}
	i := len(b.mesh.Verts)
	b.mesh.Verts = append(b.mesh.Verts, v)
	b.index[key] = i
	return i
}

func (b *meshBuilder) triangle(a, c, d r3.Vec) {
	ia, ic, id := b.vertex(a), b.vertex(c), b.vertex(d)
	if ia == ic || ic == id || id == ia {
		return // collapsed by welding
	}
	b.mesh.Tris = append(b.mesh.Tris, [3]int{ia, ic, id})
}

// components labels each triangle with a connected-component id based on
// shared vertices, returning the labels and the component count.
func (m Mesh) components() ([]int, int) {
	parent := make([]int, len(m.Verts))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	for _, t := range m.Tris {
		union(t[0], t[1])
		union(t[1], t[2])
	}
	labels := make([]int, len(m.Tris))
	ids := make(map[int]int)
	for i, t := range m.Tris {
		root := find(t[0])
		id, ok := ids[root]
		if !ok {
			id = len(ids)
			ids[root] = id
		}
		labels[i] = id
	}
	return labels, len(ids)
}
