package scene

import (
	lua "github.com/yuin/gopher-lua"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/yacineMTB/dingcad-sub001/pkg/solid"
)

// builtinCube implements cube{size = {x, y, z}, center = bool}.
func (c *Context) builtinCube(L *lua.LState) int {
	opts := c.optsTable(1)
	size := c.vec3Field(opts, "size", r3.Vec{X: 1, Y: 1, Z: 1}, "cube: size")
	center := c.boolField(opts, "center", false)
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		c.raise(ErrValidation, "cube: size must be positive")
	}
	L.Push(c.wrap(solid.Cube(size, center)))
	return 1
}

// builtinSphere implements sphere{radius = r}.
func (c *Context) builtinSphere(L *lua.LState) int {
	opts := c.optsTable(1)
	radius := c.numField(opts, "radius", 1, "sphere")
	if radius <= 0 {
		c.raise(ErrValidation, "sphere: radius must be positive")
	}
	L.Push(c.wrap(solid.Sphere(radius)))
	return 1
}

// builtinCylinder implements
// cylinder{height, radius, radiusTop, center}. radiusTop defaults to
// radius; zero makes a cone.
func (c *Context) builtinCylinder(L *lua.LState) int {
	opts := c.optsTable(1)
	height := c.numField(opts, "height", 1, "cylinder")
	radius := c.numField(opts, "radius", 0.5, "cylinder")
	radiusTop := c.numField(opts, "radiusTop", radius, "cylinder")
	center := c.boolField(opts, "center", false)
	if height <= 0 {
		c.raise(ErrValidation, "cylinder: height must be positive")
	}
	if radius <= 0 {
		c.raise(ErrValidation, "cylinder: radius must be positive")
	}
	if radiusTop < 0 {
		c.raise(ErrValidation, "cylinder: radiusTop must not be negative")
	}
	L.Push(c.wrap(solid.Cylinder(height, radius, radiusTop, center)))
	return 1
}

func (c *Context) builtinTetrahedron(L *lua.LState) int {
	L.Push(c.wrap(solid.Tetrahedron()))
	return 1
}
