package meshio

import (
	"bytes"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/yacineMTB/dingcad-sub001/pkg/solid"
)

func TestSTLRoundTrip(t *testing.T) {
	cube := solid.Cube(r3.Vec{X: 1, Y: 2, Z: 3}, true)
	var buf bytes.Buffer
	if err := WriteBinarySTL(&buf, cube.Mesh()); err != nil {
		t.Fatalf("WriteBinarySTL: %v", err)
	}
	if want := 84 + 50*cube.NumTriangles(); buf.Len() != want {
		t.Errorf("encoded size = %d, want %d", buf.Len(), want)
	}

	mesh, err := ReadBinarySTL(&buf)
	if err != nil {
		t.Fatalf("ReadBinarySTL: %v", err)
	}
	back := solid.FromMesh(mesh)
	if back.Status() != solid.NoError {
		t.Fatalf("re-imported Status() = %v", back.Status())
	}
	if math.Abs(back.Volume()-6) > 1e-4 {
		t.Errorf("re-imported Volume() = %v, want 6", back.Volume())
	}
}

func TestReadBinarySTLTruncated(t *testing.T) {
	if _, err := ReadBinarySTL(bytes.NewReader([]byte("short"))); err == nil {
		t.Fatal("expected error for truncated input")
	}
}

func TestMeshRecordRoundTrip(t *testing.T) {
	tet := solid.Tetrahedron()
	data, err := MarshalMesh(tet.Mesh())
	if err != nil {
		t.Fatalf("MarshalMesh: %v", err)
	}
	mesh, err := UnmarshalMesh(data)
	if err != nil {
		t.Fatalf("UnmarshalMesh: %v", err)
	}
	back := solid.FromMesh(mesh)
	if math.Abs(back.Volume()-tet.Volume()) > 1e-12 {
		t.Errorf("Volume() = %v, want %v", back.Volume(), tet.Volume())
	}
}

func TestUnmarshalMeshGarbage(t *testing.T) {
	if _, err := UnmarshalMesh([]byte{0xc1, 0x00}); err == nil {
		t.Fatal("expected error for garbage input")
	}
}
