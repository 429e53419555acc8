package solid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// defaultSegments is the circular segment count used by curved primitives.
const defaultSegments = 32

// Cube returns an axis-aligned box of the given size with its minimum
// corner at the origin, or centered on the origin when center is true.
// Non-positive or non-finite dimensions yield an InvalidConstruction solid.
func Cube(size r3.Vec, center bool) *Solid {
	if !isFinite(size.X) || !isFinite(size.Y) || !isFinite(size.Z) ||
		size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return errorSolid(InvalidConstruction)
	}
	var lo, hi r3.Vec
	if center {
		lo = r3.Scale(-0.5, size)
		hi = r3.Scale(0.5, size)
	} else {
		hi = size
	}
	verts := []r3.Vec{
		{X: lo.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: hi.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z},
	}
	tris := [][3]int{
		{0, 2, 1}, {0, 3, 2}, // bottom (z = lo)
		{4, 5, 6}, {4, 6, 7}, // top (z = hi)
		{0, 1, 5}, {0, 5, 4}, // y = lo
		{2, 3, 7}, {2, 7, 6}, // y = hi
		{1, 2, 6}, {1, 6, 5}, // x = hi
		{3, 0, 4}, {3, 4, 7}, // x = lo
	}
	return fromMeshUnchecked(Mesh{Verts: verts, Tris: tris}, 0)
}

// Sphere returns a latitude/longitude sphere centered on the origin.
func Sphere(radius float64) *Solid {
	return sphereSeg(radius, defaultSegments)
}

func sphereSeg(radius float64, seg int) *Solid {
	if !isFinite(radius) || radius <= 0 {
		return errorSolid(InvalidConstruction)
	}
	if seg < 4 {
		seg = 4
	}
	rings := seg / 2
	b := newMeshBuilder()
	at := func(i, j int) r3.Vec {
		// i in [0, rings] from south pole to north pole, j around.
		phi := math.Pi*float64(i)/float64(rings) - math.Pi/2
		theta := 2 * math.Pi * float64(j) / float64(seg)
		return r3.Vec{
			X: radius * math.Cos(phi) * math.Cos(theta),
			Y: radius * math.Cos(phi) * math.Sin(theta),
			Z: radius * math.Sin(phi),
		}
	}
	for i := 0; i < rings; i++ {
		for j := 0; j < seg; j++ {
			p00 := at(i, j)
			p10 := at(i+1, j)
			p01 := at(i, j+1)
			p11 := at(i+1, j+1)
			if i > 0 {
				b.triangle(p00, p01, p10)
			}
			if i < rings-1 {
				b.triangle(p01, p11, p10)
			}
		}
	}
	return fromMeshUnchecked(b.mesh, 0)
}

// Cylinder returns a (possibly tapered) cylinder of the given height along
// +Z with base radius radiusLow and top radius radiusHigh. The base sits on
// the XY plane unless center is true. radiusHigh may be zero for a cone.
func Cylinder(height, radiusLow, radiusHigh float64, center bool) *Solid {
	if !isFinite(height) || !isFinite(radiusLow) || !isFinite(radiusHigh) ||
		height <= 0 || radiusLow <= 0 || radiusHigh < 0 {
		return errorSolid(InvalidConstruction)
	}
	z0 := 0.0
	if center {
		z0 = -height / 2
	}
	z1 := z0 + height
	seg := defaultSegments
	b := newMeshBuilder()
	ring := func(r, z float64, j int) r3.Vec {
		theta := 2 * math.Pi * float64(j) / float64(seg)
		return r3.Vec{X: r * math.Cos(theta), Y: r * math.Sin(theta), Z: z}
	}
	bottomCenter := r3.Vec{Z: z0}
	topCenter := r3.Vec{Z: z1}
	apex := radiusHigh == 0
	for j := 0; j < seg; j++ {
		b0 := ring(radiusLow, z0, j)
		b1 := ring(radiusLow, z0, j+1)
		// Bottom cap winds clockwise seen from above (outward is -Z).
		b.triangle(bottomCenter, b1, b0)
		if apex {
			b.triangle(b0, b1, topCenter)
			continue
		}
		t0 := ring(radiusHigh, z1, j)
		t1 := ring(radiusHigh, z1, j+1)
		b.triangle(b0, b1, t1)
		b.triangle(b0, t1, t0)
		b.triangle(topCenter, t0, t1)
	}
	return fromMeshUnchecked(b.mesh, 0)
}

// Tetrahedron returns the canonical tetrahedron inscribed in the cube
// [-1,1]^3.
func Tetrahedron() *Solid {
	verts := []r3.Vec{
		{X: -1, Y: -1, Z: 1},
		{X: -1, Y: 1, Z: -1},
		{X: 1, Y: -1, Z: -1},
		{X: 1, Y: 1, Z: 1},
	}
	tris := [][3]int{
		{2, 0, 1},
		{0, 3, 1},
		{2, 3, 0},
		{3, 2, 1},
	}
	return fromMeshUnchecked(Mesh{Verts: verts, Tris: tris}, 0)
}
