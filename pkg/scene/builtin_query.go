package scene

import (
	lua "github.com/yuin/gopher-lua"
	"gonum.org/v1/gonum/spatial/r3"
)

func (c *Context) builtinVolume(L *lua.LState) int {
	L.Push(lua.LNumber(c.checkSolid(1).Volume()))
	return 1
}

func (c *Context) builtinSurfaceArea(L *lua.LState) int {
	L.Push(lua.LNumber(c.checkSolid(1).SurfaceArea()))
	return 1
}

// builtinBoundingBox returns {min = {x, y, z}, max = {x, y, z}}.
func (c *Context) builtinBoundingBox(L *lua.LState) int {
	box := c.checkSolid(1).BoundingBox()
	out := L.NewTable()
	out.RawSetString("min", vecTable(L, box.Min))
	out.RawSetString("max", vecTable(L, box.Max))
	L.Push(out)
	return 1
}

func vecTable(L *lua.LState, v r3.Vec) *lua.LTable {
	t := L.NewTable()
	t.RawSetInt(1, lua.LNumber(v.X))
	t.RawSetInt(2, lua.LNumber(v.Y))
	t.RawSetInt(3, lua.LNumber(v.Z))
	return t
}

func (c *Context) builtinNumTriangles(L *lua.LState) int {
	L.Push(lua.LNumber(c.checkSolid(1).NumTriangles()))
	return 1
}

func (c *Context) builtinNumVertices(L *lua.LState) int {
	L.Push(lua.LNumber(c.checkSolid(1).NumVertices()))
	return 1
}

func (c *Context) builtinNumEdges(L *lua.LState) int {
	L.Push(lua.LNumber(c.checkSolid(1).NumEdges()))
	return 1
}

func (c *Context) builtinGenus(L *lua.LState) int {
	L.Push(lua.LNumber(c.checkSolid(1).Genus()))
	return 1
}

func (c *Context) builtinIsEmpty(L *lua.LState) int {
	L.Push(lua.LBool(c.checkSolid(1).IsEmpty()))
	return 1
}

// builtinStatus returns the kernel status name, "NoError" for a healthy
// solid. Geometric failures are reported here, never thrown.
func (c *Context) builtinStatus(L *lua.LState) int {
	L.Push(lua.LString(c.checkSolid(1).Status().String()))
	return 1
}
