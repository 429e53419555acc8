package solid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Loop is a closed 2D contour of [x y] points.
type Loop [][2]float64

// Polygons is a set of contours. Loops are triangulated independently;
// holes are not subtracted.
type Polygons []Loop

func (l Loop) signedArea() float64 {
	var sum float64
	for i, p := range l {
		q := l[(i+1)%len(l)]
		sum += p[0]*q[1] - q[0]*p[1]
	}
	return sum / 2
}

// ccw returns the loop with counter-clockwise winding.
func (l Loop) ccw() Loop {
	if l.signedArea() >= 0 {
		return l
	}
	out := make(Loop, len(l))
	for i, p := range l {
		out[len(l)-1-i] = p
	}
	return out
}

func (p Polygons) valid() bool {
	for _, loop := range p {
		if len(loop) < 3 {
			return false
		}
		for _, pt := range loop {
			if !isFinite(pt[0]) || !isFinite(pt[1]) {
				return false
			}
		}
	}
	return len(p) > 0
}

// earClip triangulates a simple CCW loop, returning index triples.
func earClip(loop Loop) [][3]int {
	n := len(loop)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	cross2 := func(a, b, c [2]float64) float64 {
		return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
	}
	inTriangle := func(p, a, b, c [2]float64) bool {
		d1 := cross2(a, b, p)
		d2 := cross2(b, c, p)
		d3 := cross2(c, a, p)
		return d1 >= 0 && d2 >= 0 && d3 >= 0
	}
	var tris [][3]int
	for len(idx) > 3 {
		clipped := false
		for i := 0; i < len(idx); i++ {
			ia := idx[(i+len(idx)-1)%len(idx)]
			ib := idx[i]
			ic := idx[(i+1)%len(idx)]
			a, b, c := loop[ia], loop[ib], loop[ic]
			if cross2(a, b, c) <= 0 {
				continue // reflex vertex
			}
			ear := true
			for _, j := range idx {
				if j == ia || j == ib || j == ic {
					continue
				}
				if inTriangle(loop[j], a, b, c) {
					ear = false
					break
				}
			}
			if !ear {
				continue
			}
			tris = append(tris, [3]int{ia, ib, ic})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Degenerate input; fall back to a fan so extrusion still
			// produces something diagnosable.
			for i := 1; i < len(idx)-1; i++ {
				tris = append(tris, [3]int{idx[0], idx[i], idx[i+1]})
			}
			return tris
		}
	}
	tris = append(tris, [3]int{idx[0], idx[1], idx[2]})
	return tris
}

// Extrude lifts 2D polygons into a solid of the given height along +Z.
// divisions adds intermediate slices, twistDegrees rotates the top relative
// to the bottom, and scaleTop scales the top cross-section per axis;
// scaleTop of {0,0} produces an apex.
func Extrude(polys Polygons, height float64, divisions int, twistDegrees float64, scaleTop [2]float64) *Solid {
	if !polys.valid() || !isFinite(height) || height <= 0 ||
		!isFinite(twistDegrees) || !isFinite(scaleTop[0]) || !isFinite(scaleTop[1]) ||
		scaleTop[0] < 0 || scaleTop[1] < 0 {
		return errorSolid(InvalidConstruction)
	}
	apex := scaleTop[0] == 0 && scaleTop[1] == 0
	if (scaleTop[0] == 0) != (scaleTop[1] == 0) {
		return errorSolid(InvalidConstruction)
	}
	steps := divisions
	if steps < 1 {
		steps = 1
	}
	b := newMeshBuilder()
	for _, rawLoop := range polys {
		loop := rawLoop.ccw()
		at := func(step, i int) r3.Vec {
			f := float64(step) / float64(steps)
			sx := 1 + (scaleTop[0]-1)*f
			sy := 1 + (scaleTop[1]-1)*f
			sin, cos := math.Sincos(twistDegrees * math.Pi / 180 * f)
			x := loop[i][0] * sx
			y := loop[i][1] * sy
			return r3.Vec{X: x*cos - y*sin, Y: x*sin + y*cos, Z: height * f}
		}
		// Bottom cap faces -Z.
		for _, t := range earClip(loop) {
			b.triangle(at(0, t[0]), at(0, t[2]), at(0, t[1]))
		}
		for step := 0; step < steps; step++ {
			for i := range loop {
				j := (i + 1) % len(loop)
				l0, l1 := at(step, i), at(step, j)
				u0, u1 := at(step+1, i), at(step+1, j)
				b.triangle(l0, l1, u1)
				b.triangle(l0, u1, u0)
			}
		}
		if !apex {
			for _, t := range earClip(loop) {
				b.triangle(at(steps, t[0]), at(steps, t[1]), at(steps, t[2]))
			}
		}
	}
	return fromMeshUnchecked(b.mesh, 0)
}

// Revolve sweeps 2D polygons around the Z axis: a profile point [x y] maps
// to radius x and height y. Negative radii are clamped to the axis.
// segments <= 2 selects the default resolution; degrees in (0, 360].
func Revolve(polys Polygons, segments int, degrees float64) *Solid {
	if !polys.valid() || !isFinite(degrees) || degrees <= 0 || degrees > 360 {
		return errorSolid(InvalidConstruction)
	}
	if segments <= 2 {
		segments = defaultSegments
	}
	full := degrees == 360
	b := newMeshBuilder()
	point := func(p [2]float64, theta float64) r3.Vec {
		x := math.Max(p[0], 0)
		sin, cos := math.Sincos(theta)
		return r3.Vec{X: x * cos, Y: x * sin, Z: p[1]}
	}
	for _, rawLoop := range polys {
		loop := rawLoop.ccw()
		for seg := 0; seg < segments; seg++ {
			t0 := degrees * math.Pi / 180 * float64(seg) / float64(segments)
			t1 := degrees * math.Pi / 180 * float64(seg+1) / float64(segments)
			for i := range loop {
				j := (i + 1) % len(loop)
				p0 := point(loop[i], t0)
				p1 := point(loop[i], t1)
				q0 := point(loop[j], t0)
				q1 := point(loop[j], t1)
				b.triangle(p0, p1, q1)
				b.triangle(p0, q1, q0)
			}
		}
		if !full {
			end := degrees * math.Pi / 180
			// Start cap faces -theta, end cap faces +theta.
			for _, t := range earClip(loop) {
				b.triangle(point(loop[t[0]], 0), point(loop[t[1]], 0), point(loop[t[2]], 0))
				b.triangle(point(loop[t[0]], end), point(loop[t[2]], end), point(loop[t[1]], end))
			}
		}
	}
	return fromMeshUnchecked(b.mesh, 0)
}
