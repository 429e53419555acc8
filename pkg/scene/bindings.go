package scene

import (
	lua "github.com/yuin/gopher-lua"
)

// bind registers the kernel operation set and the module resolver in the
// context's global environment. The operation surface and argument shapes
// mirror the viewer's script API: primitives take option tables, booleans
// are n-ary, vectors are 3-element arrays.
func (c *Context) bind() {
	registerSolidType(c.L)
	c.L.SetGlobal("require", c.L.NewFunction(c.res.require))
	for _, b := range []struct {
		name string
		fn   lua.LGFunction
	}{
		// primitives
		{"cube", c.builtinCube},
		{"sphere", c.builtinSphere},
		{"cylinder", c.builtinCylinder},
		{"tetrahedron", c.builtinTetrahedron},
		// booleans
		{"union", c.builtinUnion},
		{"difference", c.builtinDifference},
		{"intersection", c.builtinIntersection},
		{"boolean", c.builtinBoolean},
		{"batchBoolean", c.builtinBatchBoolean},
		{"compose", c.builtinCompose},
		{"decompose", c.builtinDecompose},
		// transforms
		{"translate", c.builtinTranslate},
		{"rotate", c.builtinRotate},
		{"scale", c.builtinScale},
		{"mirror", c.builtinMirror},
		{"transform", c.builtinTransform},
		{"trimByPlane", c.builtinTrimByPlane},
		// refinement
		{"refine", c.builtinRefine},
		{"refineToLength", c.builtinRefineToLength},
		{"simplify", c.builtinSimplify},
		{"setTolerance", c.builtinSetTolerance},
		{"getTolerance", c.builtinGetTolerance},
		// 2D lift and mesh import
		{"extrude", c.builtinExtrude},
		{"revolve", c.builtinRevolve},
		{"loadMesh", c.builtinLoadMesh},
		// queries
		{"volume", c.builtinVolume},
		{"surfaceArea", c.builtinSurfaceArea},
		{"boundingBox", c.builtinBoundingBox},
		{"numTriangles", c.builtinNumTriangles},
		{"numVertices", c.builtinNumVertices},
		{"numEdges", c.builtinNumEdges},
		{"genus", c.builtinGenus},
		{"isEmpty", c.builtinIsEmpty},
		{"status", c.builtinStatus},
	} {
		c.L.SetGlobal(b.name, c.L.NewFunction(b.fn))
	}
}
