// Package solid is a value-semantic constructive solid geometry kernel.
//
// A Solid is an immutable triangle mesh. Every operation returns a new
// *Solid and never mutates its operands, so any number of handles may alias
// the same underlying geometry. Geometric failures are not reported as Go
// errors: the resulting solid carries a Status (see Solid.Status) and is
// otherwise empty, which lets a long chain of operations run to completion
// and be diagnosed afterwards.
//
// Booleans are evaluated with a BSP clipper. Meshes are expected to be
// closed 2-manifolds; FromMesh flags anything else.
package solid
