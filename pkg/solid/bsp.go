package solid

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// BSP clipper for mesh booleans. Polygons start as the mesh triangles and
// stay convex under plane splits, so emitting them back as triangle fans is
// safe.

const planeEpsilon = 1e-7

type bspPlane struct {
	n r3.Vec
	w float64
}

func planeFrom(a, b, c r3.Vec) (bspPlane, bool) {
	n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	l := r3.Norm(n)
	if l < 1e-30 {
		return bspPlane{}, false
	}
	n = r3.Scale(1/l, n)
	return bspPlane{n: n, w: r3.Dot(n, a)}, true
}

func (p bspPlane) flip() bspPlane {
	return bspPlane{n: r3.Scale(-1, p.n), w: -p.w}
}

type bspPolygon struct {
	verts []r3.Vec
	plane bspPlane
}

func (poly bspPolygon) flip() bspPolygon {
	out := bspPolygon{verts: make([]r3.Vec, len(poly.verts)), plane: poly.plane.flip()}
	for i, v := range poly.verts {
		out.verts[len(poly.verts)-1-i] = v
	}
	return out
}

const (
	sideCoplanar = 0
	sideFront    = 1
	sideBack     = 2
	sideSpanning = 3
)

// split classifies polygon against p and appends it to the matching lists.
func (p bspPlane) split(poly bspPolygon, coplanarFront, coplanarBack, front, back *[]bspPolygon) {
	polyType := 0
	types := make([]int, len(poly.verts))
	for i, v := range poly.verts {
		t := r3.Dot(p.n, v) - p.w
		side := sideCoplanar
		if t < -planeEpsilon {
			side = sideBack
		} else if t > planeEpsilon {
			side = sideFront
		}
		polyType |= side
		types[i] = side
	}
	switch polyType {
	case sideCoplanar:
		if r3.Dot(p.n, poly.plane.n) > 0 {
			*coplanarFront = append(*coplanarFront, poly)
		} else {
			*coplanarBack = append(*coplanarBack, poly)
		}
	case sideFront:
		*front = append(*front, poly)
	case sideBack:
		*back = append(*back, poly)
	case sideSpanning:
		var f, b []r3.Vec
		n := len(poly.verts)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			ti, tj := types[i], types[j]
			vi, vj := poly.verts[i], poly.verts[j]
			if ti != sideBack {
				f = append(f, vi)
			}
			if ti != sideFront {
				b = append(b, vi)
			}
			if (ti | tj) == sideSpanning {
				t := (p.w - r3.Dot(p.n, vi)) / r3.Dot(p.n, r3.Sub(vj, vi))
				v := r3.Add(vi, r3.Scale(t, r3.Sub(vj, vi)))
				f = append(f, v)
				b = append(b, v)
			}
		}
		if len(f) >= 3 {
			*front = append(*front, bspPolygon{verts: f, plane: poly.plane})
		}
		if len(b) >= 3 {
			*back = append(*back, bspPolygon{verts: b, plane: poly.plane})
		}
	}
}

type bspNode struct {
	plane *bspPlane
	front *bspNode
	back  *bspNode
	polys []bspPolygon
}

func newBSPNode(polys []bspPolygon) *bspNode {
	n := &bspNode{}
	if len(polys) > 0 {
		n.build(polys)
	}
	return n
}

func (n *bspNode) invert() {
	for i := range n.polys {
		n.polys[i] = n.polys[i].flip()
	}
	if n.plane != nil {
		p := n.plane.flip()
		n.plane = &p
	}
	if n.front != nil {
		n.front.invert()
	}
	if n.back != nil {
		n.back.invert()
	}
	n.front, n.back = n.back, n.front
}

// clipPolygons removes from polys everything inside this BSP tree.
func (n *bspNode) clipPolygons(polys []bspPolygon) []bspPolygon {
	if n.plane == nil {
		out := make([]bspPolygon, len(polys))
		copy(out, polys)
		return out
	}
	var front, back []bspPolygon
	for _, poly := range polys {
		n.plane.split(poly, &front, &back, &front, &back)
	}
	if n.front != nil {
		front = n.front.clipPolygons(front)
	}
	if n.back != nil {
		back = n.back.clipPolygons(back)
	} else {
		back = nil
	}
	return append(front, back...)
}

// clipTo removes all polygons in this tree that are inside other.
func (n *bspNode) clipTo(other *bspNode) {
	n.polys = other.clipPolygons(n.polys)
	if n.front != nil {
		n.front.clipTo(other)
	}
	if n.back != nil {
		n.back.clipTo(other)
	}
}

func (n *bspNode) allPolygons() []bspPolygon {
	out := append([]bspPolygon(nil), n.polys...)
	if n.front != nil {
		out = append(out, n.front.allPolygons()...)
	}
	if n.back != nil {
		out = append(out, n.back.allPolygons()...)
	}
	return out
}

func (n *bspNode) build(polys []bspPolygon) {
	if len(polys) == 0 {
		return
	}
	if n.plane == nil {
		p := polys[0].plane
		n.plane = &p
	}
	var front, back []bspPolygon
	for _, poly := range polys {
		n.plane.split(poly, &n.polys, &n.polys, &front, &back)
	}
	if len(front) > 0 {
		if n.front == nil {
			n.front = &bspNode{}
		}
		n.front.build(front)
	}
	if len(back) > 0 {
		if n.back == nil {
			n.back = &bspNode{}
		}
		n.back.build(back)
	}
}

func meshToPolygons(m Mesh) []bspPolygon {
	polys := make([]bspPolygon, 0, len(m.Tris))
	for _, t := range m.Tris {
		a, b, c := m.Verts[t[0]], m.Verts[t[1]], m.Verts[t[2]]
		plane, ok := planeFrom(a, b, c)
		if !ok {
			continue // degenerate sliver
		}
		polys = append(polys, bspPolygon{verts: []r3.Vec{a, b, c}, plane: plane})
	}
	return polys
}

func polygonsToMesh(polys []bspPolygon) Mesh {
	b := newMeshBuilder()
	for _, poly := range polys {
		for i := 2; i < len(poly.verts); i++ {
			b.triangle(poly.verts[0], poly.verts[i-1], poly.verts[i])
		}
	}
	return b.mesh
}

func bspUnion(a, b []bspPolygon) []bspPolygon {
	na, nb := newBSPNode(a), newBSPNode(b)
	na.clipTo(nb)
	nb.clipTo(na)
	nb.invert()
	nb.clipTo(na)
	nb.invert()
	na.build(nb.allPolygons())
	return na.allPolygons()
}

func bspSubtract(a, b []bspPolygon) []bspPolygon {
	na, nb := newBSPNode(a), newBSPNode(b)
	na.invert()
	na.clipTo(nb)
	nb.clipTo(na)
	nb.invert()
	nb.clipTo(na)
	nb.invert()
	na.build(nb.allPolygons())
	na.invert()
	return na.allPolygons()
}

func bspIntersect(a, b []bspPolygon) []bspPolygon {
	na, nb := newBSPNode(a), newBSPNode(b)
	na.invert()
	nb.clipTo(na)
	nb.invert()
	na.clipTo(nb)
	nb.clipTo(na)
	na.build(nb.allPolygons())
	na.invert()
	return na.allPolygons()
}
