package meshio

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/yacineMTB/dingcad-sub001/pkg/solid"
)

// meshRecord is the msgpack wire shape for a mesh.
type meshRecord struct {
	Verts [][3]float64 `msgpack:"verts"`
	Tris  [][3]int     `msgpack:"tris"`
}

// MarshalMesh encodes a mesh as a msgpack record.
func MarshalMesh(m solid.Mesh) ([]byte, error) {
	rec := meshRecord{
		Verts: make([][3]float64, len(m.Verts)),
		Tris:  make([][3]int, len(m.Tris)),
	}
	for i, v := range m.Verts {
		rec.Verts[i] = [3]float64{v.X, v.Y, v.Z}
	}
	copy(rec.Tris, m.Tris)
	return msgpack.Marshal(&rec)
}

// UnmarshalMesh decodes a msgpack mesh record.
func UnmarshalMesh(data []byte) (solid.Mesh, error) {
	var rec meshRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return solid.Mesh{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	mesh := solid.Mesh{
		Verts: make([]r3.Vec, len(rec.Verts)),
		Tris:  rec.Tris,
	}
	for i, v := range rec.Verts {
		mesh.Verts[i] = r3.Vec{X: v[0], Y: v[1], Z: v[2]}
	}
	return mesh, nil
}
