package scene

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/yacineMTB/dingcad-sub001/pkg/solid"
)

// solidTypeName keys the shared metatable that tags solid handles.
const solidTypeName = "solid"

func registerSolidType(L *lua.LState) {
	mt := L.NewTypeMetatable(solidTypeName)
	L.SetField(mt, "__tostring", L.NewFunction(solidToString))
	// Lock the metatable so scripts cannot forge or retag handles.
	L.SetField(mt, "__metatable", lua.LString(solidTypeName))
}

func solidToString(L *lua.LState) int {
	ud := L.CheckUserData(1)
	s, ok := ud.Value.(*solid.Solid)
	if !ok {
		L.Push(lua.LString("solid(?)"))
		return 1
	}
	L.Push(lua.LString(fmt.Sprintf("solid(%s, triangles=%d)", s.Status(), s.NumTriangles())))
	return 1
}

// wrap boxes a kernel solid as a script-visible handle. The handle keeps
// the solid reachable for as long as script code references it.
func (c *Context) wrap(s *solid.Solid) *lua.LUserData {
	ud := c.L.NewUserData()
	ud.Value = s
	c.L.SetMetatable(ud, c.L.GetTypeMetatable(solidTypeName))
	c.handles++
	return ud
}

// asSolid unwraps a script value into a kernel solid, reporting whether the
// value actually is a handle.
func asSolid(v lua.LValue) (*solid.Solid, bool) {
	ud, ok := v.(*lua.LUserData)
	if !ok {
		return nil, false
	}
	s, ok := ud.Value.(*solid.Solid)
	return s, ok
}

// checkSolid unwraps argument n or raises a type mismatch.
func (c *Context) checkSolid(n int) *solid.Solid {
	v := c.L.Get(n)
	s, ok := asSolid(v)
	if !ok {
		c.raise(ErrTypeMismatch, "argument #%d: expected a solid handle, got %s", n, v.Type().String())
	}
	return s
}
