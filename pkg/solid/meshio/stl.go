// Package meshio reads and writes triangle meshes for the solid kernel.
// Binary STL is the export format of the viewer pipeline; msgpack records
// are the compact interchange encoding used by stores and caches.
package meshio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/yacineMTB/dingcad-sub001/pkg/solid"
)

// ErrFormat is returned when input bytes are not a parseable mesh.
var ErrFormat = errors.New("meshio: malformed mesh data")

// WriteBinarySTL writes the mesh as binary STL. Facet normals are computed
// from winding.
func WriteBinarySTL(w io.Writer, m solid.Mesh) error {
	var header [80]byte
	copy(header[:], "dingcad binary stl")
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m.Tris))); err != nil {
		return err
	}
	buf := make([]byte, 50)
	for _, t := range m.Tris {
		a, b, c := m.Verts[t[0]], m.Verts[t[1]], m.Verts[t[2]]
		n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
		if l := r3.Norm(n); l > 0 {
			n = r3.Scale(1/l, n)
		}
		putVec(buf[0:], n)
		putVec(buf[12:], a)
		putVec(buf[24:], b)
		putVec(buf[36:], c)
		buf[48], buf[49] = 0, 0
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func putVec(b []byte, v r3.Vec) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(v.Z)))
}

// ReadBinarySTL parses binary STL, welding vertices shared between facets.
func ReadBinarySTL(r io.Reader) (solid.Mesh, error) {
	var header [80]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return solid.Mesh{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return solid.Mesh{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	const maxTriangles = 1 << 24
	if count > maxTriangles {
		return solid.Mesh{}, fmt.Errorf("%w: %d facets", ErrFormat, count)
	}
	var mesh solid.Mesh
	index := make(map[[3]int64]int)
	weld := func(v r3.Vec) int {
		key := [3]int64{
			int64(math.Round(v.X * 1e7)),
			int64(math.Round(v.Y * 1e7)),
			int64(math.Round(v.Z * 1e7)),
		}
		if i, ok := index[key]; ok {
			return i
		}
		i := len(mesh.Verts)
		mesh.Verts = append(mesh.Verts, v)
		index[key] = i
		return i
	}
	buf := make([]byte, 50)
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return solid.Mesh{}, fmt.Errorf("%w: facet %d: %v", ErrFormat, i, err)
		}
		a := weld(getVec(buf[12:]))
		b := weld(getVec(buf[24:]))
		c := weld(getVec(buf[36:]))
		if a == b || b == c || c == a {
			continue // degenerate facet
		}
		mesh.Tris = append(mesh.Tris, [3]int{a, b, c})
	}
	return mesh, nil
}

func getVec(b []byte) r3.Vec {
	return r3.Vec{
		X: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[0:]))),
		Y: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))),
		Z: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))),
	}
}
