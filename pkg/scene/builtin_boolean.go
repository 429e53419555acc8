package scene

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/yacineMTB/dingcad-sub001/pkg/solid"
)

// nary runs an n-ary boolean over the collected operands. A kernel-flagged
// geometric failure still yields a handle; scripts inspect it via status().
func (c *Context) nary(L *lua.LState, op solid.Op, what string) int {
	operands := c.collectSolids(1, what)
	if len(operands) < 2 {
		c.raise(ErrValidation, "%s: requires at least two solids", what)
	}
	L.Push(c.wrap(solid.BatchBoolean(op, operands)))
	return 1
}

func (c *Context) builtinUnion(L *lua.LState) int {
	return c.nary(L, solid.OpAdd, "union")
}

func (c *Context) builtinDifference(L *lua.LState) int {
	return c.nary(L, solid.OpSubtract, "difference")
}

func (c *Context) builtinIntersection(L *lua.LState) int {
	return c.nary(L, solid.OpIntersect, "intersection")
}

// builtinBoolean implements boolean(a, b, op) with op a name or index.
func (c *Context) builtinBoolean(L *lua.LState) int {
	a := c.checkSolid(1)
	b := c.checkSolid(2)
	op := c.opArg(3)
	L.Push(c.wrap(a.Boolean(b, op)))
	return 1
}

// builtinBatchBoolean implements batchBoolean(op, solids...).
func (c *Context) builtinBatchBoolean(L *lua.LState) int {
	op := c.opArg(1)
	operands := c.collectSolids(2, "batchBoolean")
	L.Push(c.wrap(solid.BatchBoolean(op, operands)))
	return 1
}

// builtinCompose merges disjoint solids without boolean evaluation.
func (c *Context) builtinCompose(L *lua.LState) int {
	operands := c.collectSolids(1, "compose")
	L.Push(c.wrap(solid.Compose(operands...)))
	return 1
}

// builtinDecompose splits a solid into its connected components, returned
// as an array.
func (c *Context) builtinDecompose(L *lua.LState) int {
	s := c.checkSolid(1)
	parts := s.Decompose()
	out := L.NewTable()
	for i, p := range parts {
		out.RawSetInt(i+1, c.wrap(p))
	}
	L.Push(out)
	return 1
}
