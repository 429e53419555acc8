package scene

import (
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/yacineMTB/dingcad-sub001/pkg/solid"
	"github.com/yacineMTB/dingcad-sub001/pkg/solid/meshio"
)

// builtinExtrude implements extrude(polygons, {height, divisions,
// twistDegrees, scaleTop}). scaleTop is a number or a [x, y] pair; {0, 0}
// produces an apex.
func (c *Context) builtinExtrude(L *lua.LState) int {
	polys := c.polygonsArg(1, "extrude")
	opts := c.optsTable(2)
	height := c.numField(opts, "height", 1, "extrude")
	divisions := c.intField(opts, "divisions", 0, "extrude")
	twist := c.numField(opts, "twistDegrees", 0, "extrude")
	scaleTop := [2]float64{1, 1}
	if opts != nil {
		if v := opts.RawGetString("scaleTop"); v != lua.LNil {
			if f, ok := luaFloat(v); ok {
				if !finite(f) {
					c.raise(ErrValidation, "extrude: scaleTop must be finite")
				}
				scaleTop = [2]float64{f, f}
			} else {
				scaleTop = c.vec2From(v, "extrude: scaleTop")
			}
		}
	}
	if height <= 0 {
		c.raise(ErrValidation, "extrude: height must be positive")
	}
	if scaleTop[0] < 0 || scaleTop[1] < 0 {
		c.raise(ErrValidation, "extrude: scaleTop must not be negative")
	}
	L.Push(c.wrap(solid.Extrude(polys, height, divisions, twist, scaleTop)))
	return 1
}

// builtinRevolve implements revolve(polygons, {segments, degrees}).
func (c *Context) builtinRevolve(L *lua.LState) int {
	polys := c.polygonsArg(1, "revolve")
	opts := c.optsTable(2)
	segments := c.intField(opts, "segments", 0, "revolve")
	degrees := c.numField(opts, "degrees", 360, "revolve")
	if degrees <= 0 || degrees > 360 {
		c.raise(ErrValidation, "revolve: degrees must be in (0, 360]")
	}
	L.Push(c.wrap(solid.Revolve(polys, segments, degrees)))
	return 1
}

// builtinLoadMesh implements loadMesh(path): reads a binary STL from the
// configured mesh directory. A missing or malformed file yields an EMPTY
// solid rather than an error, so the rest of the scene keeps loading; the
// failure is logged.
func (c *Context) builtinLoadMesh(L *lua.LState) int {
	path := L.CheckString(1)
	mesh, err := c.readMesh(path)
	if err != nil {
		c.logger.Error("unable to load mesh", "path", path, "error", err)
		L.Push(c.wrap(solid.Empty()))
		return 1
	}
	s := solid.FromMesh(mesh)
	if s.Status() != solid.NoError {
		c.logger.Warn("loaded mesh is not a closed manifold", "path", path, "status", s.Status().String())
	}
	L.Push(c.wrap(s))
	return 1
}

func (c *Context) readMesh(path string) (solid.Mesh, error) {
	if c.meshDir == "" {
		return solid.Mesh{}, os.ErrNotExist
	}
	clean := filepath.Clean(filepath.FromSlash(path))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return solid.Mesh{}, os.ErrNotExist
	}
	f, err := os.Open(filepath.Join(c.meshDir, clean))
	if err != nil {
		return solid.Mesh{}, err
	}
	defer f.Close()
	return meshio.ReadBinarySTL(f)
}
