package scene

import (
	"bytes"
	"log/slog"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"

	"github.com/yacineMTB/dingcad-sub001/pkg/scene/source"
	"github.com/yacineMTB/dingcad-sub001/pkg/solid"
)

type phase int

const (
	phaseBound phase = iota
	phaseEvaluated
	phaseClosed
)

// defaultModuleName is used when the caller supplies no module name.
const defaultModuleName = "scene.lua"

// Context is one isolated evaluation environment for a single scene load.
// It is single-use: Evaluate may be called once, Close must be called
// exactly once, and nothing is valid after Close. Contexts are not safe for
// concurrent use; scene loads are strictly serial.
type Context struct {
	L       *lua.LState
	logger  *slog.Logger
	src     source.Source
	meshDir string
	res     *resolver

	phase      phase
	raisedKind error // precise kind recorded by raise() before unwinding
	handles    int   // solids wrapped into this context, for observability
}

// Option configures a Context.
type Option func(*Context)

// WithSource sets the backing source modules are resolved from.
func WithSource(src source.Source) Option {
	return func(c *Context) { c.src = src }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMeshDir sets the directory loadMesh() reads mesh files from.
// Unset disables mesh loading.
func WithMeshDir(dir string) Option {
	return func(c *Context) { c.meshDir = dir }
}

// NewContext creates a fresh evaluation environment with the kernel
// operation set bound as globals.
func NewContext(opts ...Option) *Context {
	c := &Context{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	c.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSandboxLibs(c.L)
	c.res = newResolver(c)
	c.bind()
	return c
}

// openSandboxLibs opens the pure standard libraries and strips the
// filesystem escapes base leaves behind.
func openSandboxLibs(L *lua.LState) {
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			panic(err)
		}
	}
	for _, name := range []string{"dofile", "loadfile", "package"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// Evaluate compiles and runs the scene module, resolving nested requires
// on demand, and extracts the designated "scene" export. On success the
// returned solid is owned by the caller and survives Close. On failure the
// error is a *Diagnostic.
func (c *Context) Evaluate(src []byte, moduleName string) (*solid.Solid, error) {
	switch c.phase {
	case phaseClosed:
		return nil, ErrClosed
	case phaseEvaluated:
		return nil, ErrEvaluated
	}
	c.phase = phaseEvaluated
	if moduleName == "" {
		moduleName = defaultModuleName
	}
	proto, err := compileChunk(src, moduleName)
	if err != nil {
		return nil, c.capture(err, ErrCompile)
	}
	c.res.setTop(moduleName, src)
	c.res.pushModule(moduleName)
	defer c.res.popModule()

	c.L.Push(c.L.NewFunctionFromProto(proto))
	if err := c.L.PCall(0, 1, nil); err != nil {
		return nil, c.capture(err, ErrRuntime)
	}
	ret := c.L.Get(-1)
	c.L.Pop(1)
	return c.extract(ret)
}

// Close tears down the evaluation environment. Every solid still rooted
// only in this context becomes unreachable; the extracted scene solid is
// unaffected. Safe to call more than once.
func (c *Context) Close() {
	if c.phase == phaseClosed {
		return
	}
	c.phase = phaseClosed
	c.res.reset()
	c.L.Close()
}

// Handles reports how many solids were wrapped into this context.
func (c *Context) Handles() int { return c.handles }

func compileChunk(src []byte, name string) (*lua.FunctionProto, error) {
	chunk, err := parse.Parse(bytes.NewReader(src), name)
	if err != nil {
		return nil, err
	}
	return lua.Compile(chunk, name)
}

// Load evaluates one scene in a fresh context, tearing the context down on
// every path.
func Load(src []byte, moduleName string, opts ...Option) (*solid.Solid, error) {
	c := NewContext(opts...)
	defer c.Close()
	return c.Evaluate(src, moduleName)
}
