package scene

import (
	"math"

	lua "github.com/yuin/gopher-lua"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/yacineMTB/dingcad-sub001/pkg/solid"
)

// Argument extraction with validation. Everything here raises a
// script-visible error on bad input and never forwards it to the kernel.

func luaFloat(v lua.LValue) (float64, bool) {
	n, ok := v.(lua.LNumber)
	return float64(n), ok
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// optsTable returns argument n as an option table, nil when absent.
func (c *Context) optsTable(n int) *lua.LTable {
	v := c.L.Get(n)
	if v == lua.LNil {
		return nil
	}
	tbl, ok := v.(*lua.LTable)
	if !ok {
		c.raise(ErrTypeMismatch, "argument #%d: options must be a table, got %s", n, v.Type().String())
	}
	return tbl
}

// numField reads a finite number field, defaulting when absent.
func (c *Context) numField(tbl *lua.LTable, name string, def float64, what string) float64 {
	if tbl == nil {
		return def
	}
	v := tbl.RawGetString(name)
	if v == lua.LNil {
		return def
	}
	f, ok := luaFloat(v)
	if !ok {
		c.raise(ErrTypeMismatch, "%s: %s must be a number, got %s", what, name, v.Type().String())
	}
	if !finite(f) {
		c.raise(ErrValidation, "%s: %s must be finite", what, name)
	}
	return f
}

// intField reads a non-negative integer field.
func (c *Context) intField(tbl *lua.LTable, name string, def int, what string) int {
	f := c.numField(tbl, name, float64(def), what)
	if f != math.Trunc(f) || f < 0 {
		c.raise(ErrValidation, "%s: %s must be a non-negative integer", what, name)
	}
	return int(f)
}

func (c *Context) boolField(tbl *lua.LTable, name string, def bool) bool {
	if tbl == nil {
		return def
	}
	v := tbl.RawGetString(name)
	if v == lua.LNil {
		return def
	}
	return lua.LVAsBool(v)
}

// vec3From converts a 3-element array of finite numbers.
func (c *Context) vec3From(v lua.LValue, what string) r3.Vec {
	tbl, ok := v.(*lua.LTable)
	if !ok || tbl.Len() != 3 {
		c.raise(ErrTypeMismatch, "%s: expected an array of three numbers", what)
	}
	var out [3]float64
	for i := 0; i < 3; i++ {
		f, ok := luaFloat(tbl.RawGetInt(i + 1))
		if !ok {
			c.raise(ErrTypeMismatch, "%s: expected an array of three numbers", what)
		}
		if !finite(f) {
			c.raise(ErrValidation, "%s: entry %d is not finite", what, i+1)
		}
		out[i] = f
	}
	return r3.Vec{X: out[0], Y: out[1], Z: out[2]}
}

// vec3Field reads a vec3 option field, defaulting when absent.
func (c *Context) vec3Field(tbl *lua.LTable, name string, def r3.Vec, what string) r3.Vec {
	if tbl == nil {
		return def
	}
	v := tbl.RawGetString(name)
	if v == lua.LNil {
		return def
	}
	return c.vec3From(v, what)
}

// vec3Arg converts positional argument n.
func (c *Context) vec3Arg(n int, what string) r3.Vec {
	return c.vec3From(c.L.Get(n), what)
}

// vec2From converts a 2-element array of finite numbers.
func (c *Context) vec2From(v lua.LValue, what string) [2]float64 {
	tbl, ok := v.(*lua.LTable)
	if !ok || tbl.Len() != 2 {
		c.raise(ErrValidation, "%s: expected a [x, y] pair", what)
	}
	var out [2]float64
	for i := 0; i < 2; i++ {
		f, ok := luaFloat(tbl.RawGetInt(i + 1))
		if !ok {
			c.raise(ErrValidation, "%s: expected a [x, y] pair", what)
		}
		if !finite(f) {
			c.raise(ErrValidation, "%s: entry %d is not finite", what, i+1)
		}
		out[i] = f
	}
	return out
}

// polygonsArg converts argument n, an array of loops of [x, y] points.
func (c *Context) polygonsArg(n int, what string) solid.Polygons {
	v := c.L.Get(n)
	outer, ok := v.(*lua.LTable)
	if !ok {
		c.raise(ErrTypeMismatch, "%s: polygons must be an array of loops", what)
	}
	polys := make(solid.Polygons, 0, outer.Len())
	for i := 1; i <= outer.Len(); i++ {
		loopVal, ok := outer.RawGetInt(i).(*lua.LTable)
		if !ok {
			c.raise(ErrTypeMismatch, "%s: each loop must be an array of [x, y] points", what)
		}
		loop := make(solid.Loop, 0, loopVal.Len())
		for j := 1; j <= loopVal.Len(); j++ {
			loop = append(loop, c.vec2From(loopVal.RawGetInt(j), what))
		}
		if len(loop) < 3 {
			c.raise(ErrValidation, "%s: loop %d needs at least three points", what, i)
		}
		polys = append(polys, loop)
	}
	if len(polys) == 0 {
		c.raise(ErrValidation, "%s: polygons must not be empty", what)
	}
	return polys
}

// collectSolids gathers the operands of an n-ary operation starting at
// argument from: either a single array of handles or handle varargs.
func (c *Context) collectSolids(from int, what string) []*solid.Solid {
	top := c.L.GetTop()
	if top < from {
		c.raise(ErrValidation, "%s: expected at least one solid", what)
	}
	if top == from {
		if tbl, ok := c.L.Get(from).(*lua.LTable); ok {
			out := make([]*solid.Solid, 0, tbl.Len())
			for i := 1; i <= tbl.Len(); i++ {
				s, ok := asSolid(tbl.RawGetInt(i))
				if !ok {
					c.raise(ErrTypeMismatch, "%s: entry %d is not a solid handle", what, i)
				}
				out = append(out, s)
			}
			if len(out) == 0 {
				c.raise(ErrValidation, "%s: operand list must not be empty", what)
			}
			return out
		}
	}
	out := make([]*solid.Solid, 0, top-from+1)
	for n := from; n <= top; n++ {
		out = append(out, c.checkSolid(n))
	}
	return out
}

// opArg reads a boolean op selector: a name or the index 0/1/2.
func (c *Context) opArg(n int) solid.Op {
	v := c.L.Get(n)
	switch v := v.(type) {
	case lua.LString:
		op, ok := solid.ParseOp(string(v))
		if !ok {
			c.raise(ErrValidation, "unknown boolean op: %s", string(v))
		}
		return op
	case lua.LNumber:
		op, ok := solid.OpFromIndex(int(v))
		if !ok {
			c.raise(ErrValidation, "boolean op index must be 0, 1 or 2")
		}
		return op
	}
	c.raise(ErrTypeMismatch, "op must be a string or number, got %s", v.Type().String())
	return 0
}
