package scene

import (
	lua "github.com/yuin/gopher-lua"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/yacineMTB/dingcad-sub001/pkg/solid"
)

// builtinTranslate implements translate(s, {x, y, z}).
func (c *Context) builtinTranslate(L *lua.LState) int {
	s := c.checkSolid(1)
	offset := c.vec3Arg(2, "translate: offset")
	L.Push(c.wrap(s.Translate(offset)))
	return 1
}

// builtinRotate implements rotate(s, {xDeg, yDeg, zDeg}), applied about X,
// then Y, then Z.
func (c *Context) builtinRotate(L *lua.LState) int {
	s := c.checkSolid(1)
	deg := c.vec3Arg(2, "rotate: degrees")
	L.Push(c.wrap(s.Rotate(deg.X, deg.Y, deg.Z)))
	return 1
}

// builtinScale implements scale(s, {x, y, z}) or scale(s, factor).
func (c *Context) builtinScale(L *lua.LState) int {
	s := c.checkSolid(1)
	if f, ok := luaFloat(L.Get(2)); ok {
		if !finite(f) {
			c.raise(ErrValidation, "scale: factor must be finite")
		}
		L.Push(c.wrap(s.Scale(r3.Vec{X: f, Y: f, Z: f})))
		return 1
	}
	factor := c.vec3Arg(2, "scale: factor")
	L.Push(c.wrap(s.Scale(factor)))
	return 1
}

// builtinMirror implements mirror(s, {nx, ny, nz}).
func (c *Context) builtinMirror(L *lua.LState) int {
	s := c.checkSolid(1)
	normal := c.vec3Arg(2, "mirror: normal")
	L.Push(c.wrap(s.Mirror(normal)))
	return 1
}

// builtinTransform implements transform(s, {12 numbers}): three rows of an
// affine matrix, row-major.
func (c *Context) builtinTransform(L *lua.LState) int {
	s := c.checkSolid(1)
	tbl, ok := L.Get(2).(*lua.LTable)
	if !ok || tbl.Len() != 12 {
		c.raise(ErrTypeMismatch, "transform: expected an array of 12 numbers")
	}
	var m solid.Mat3x4
	for i := 0; i < 12; i++ {
		f, ok := luaFloat(tbl.RawGetInt(i + 1))
		if !ok {
			c.raise(ErrTypeMismatch, "transform: expected an array of 12 numbers")
		}
		if !finite(f) {
			c.raise(ErrValidation, "transform: entry %d is not finite", i+1)
		}
		m[i/4][i%4] = f
	}
	L.Push(c.wrap(s.Transform(m)))
	return 1
}

// builtinTrimByPlane implements trimByPlane(s, {nx, ny, nz}, offset),
// keeping the side of the plane the normal points toward.
func (c *Context) builtinTrimByPlane(L *lua.LState) int {
	s := c.checkSolid(1)
	normal := c.vec3Arg(2, "trimByPlane: normal")
	offset, ok := luaFloat(L.Get(3))
	if !ok {
		c.raise(ErrTypeMismatch, "trimByPlane: offset must be a number")
	}
	if !finite(offset) {
		c.raise(ErrValidation, "trimByPlane: offset must be finite")
	}
	if normal.X == 0 && normal.Y == 0 && normal.Z == 0 {
		c.raise(ErrValidation, "trimByPlane: normal must not be zero")
	}
	L.Push(c.wrap(s.TrimByPlane(normal, offset)))
	return 1
}
