package scene

import (
	"math"

	lua "github.com/yuin/gopher-lua"
)

// builtinRefine implements refine(s, n): split every edge into n pieces.
func (c *Context) builtinRefine(L *lua.LState) int {
	s := c.checkSolid(1)
	f, ok := luaFloat(L.Get(2))
	if !ok {
		c.raise(ErrTypeMismatch, "refine: n must be a number")
	}
	if !finite(f) || f != math.Trunc(f) || f < 1 {
		c.raise(ErrValidation, "refine: n must be a positive integer")
	}
	L.Push(c.wrap(s.Refine(int(f))))
	return 1
}

// builtinRefineToLength implements refineToLength(s, length).
func (c *Context) builtinRefineToLength(L *lua.LState) int {
	s := c.checkSolid(1)
	length, ok := luaFloat(L.Get(2))
	if !ok {
		c.raise(ErrTypeMismatch, "refineToLength: length must be a number")
	}
	if !finite(length) || length <= 0 {
		c.raise(ErrValidation, "refineToLength: length must be positive")
	}
	L.Push(c.wrap(s.RefineToLength(length)))
	return 1
}

// builtinSimplify implements simplify(s[, tolerance]); without a tolerance
// the solid's own tolerance is used.
func (c *Context) builtinSimplify(L *lua.LState) int {
	s := c.checkSolid(1)
	tol := 0.0
	if L.GetTop() >= 2 {
		f, ok := luaFloat(L.Get(2))
		if !ok {
			c.raise(ErrTypeMismatch, "simplify: tolerance must be a number")
		}
		if !finite(f) || f <= 0 {
			c.raise(ErrValidation, "simplify: tolerance must be positive")
		}
		tol = f
	}
	L.Push(c.wrap(s.Simplify(tol)))
	return 1
}

// builtinSetTolerance implements setTolerance(s, tolerance).
func (c *Context) builtinSetTolerance(L *lua.LState) int {
	s := c.checkSolid(1)
	tol, ok := luaFloat(L.Get(2))
	if !ok {
		c.raise(ErrTypeMismatch, "setTolerance: tolerance must be a number")
	}
	if !finite(tol) || tol <= 0 {
		c.raise(ErrValidation, "setTolerance: tolerance must be positive")
	}
	L.Push(c.wrap(s.SetTolerance(tol)))
	return 1
}

func (c *Context) builtinGetTolerance(L *lua.LState) int {
	s := c.checkSolid(1)
	L.Push(lua.LNumber(s.Tolerance()))
	return 1
}
