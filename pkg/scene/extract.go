package scene

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/yacineMTB/dingcad-sub001/pkg/solid"
)

// exportName is the designated export every scene module must produce.
const exportName = "scene"

// extract locates the designated export in the module's return value and
// promotes its solid out of the context. After promotion the solid is
// owned by the caller; Close does not touch it.
func (c *Context) extract(ret lua.LValue) (*solid.Solid, error) {
	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return nil, &Diagnostic{
			Kind:    ErrMissingExport,
			Message: "scene module must return a table with a '" + exportName + "' field",
		}
	}
	v := tbl.RawGetString(exportName)
	if v == lua.LNil {
		return nil, &Diagnostic{
			Kind:    ErrMissingExport,
			Message: "scene module must export '" + exportName + "'",
		}
	}
	s, ok := asSolid(v)
	if !ok {
		return nil, &Diagnostic{
			Kind:    ErrTypeMismatch,
			Message: "exported '" + exportName + "' is not a solid (got " + v.Type().String() + ")",
		}
	}
	return s, nil
}
