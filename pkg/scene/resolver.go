package scene

import (
	"errors"
	"path"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/yacineMTB/dingcad-sub001/pkg/scene/source"
)

// resolver satisfies require() calls for one context. Compiled modules and
// their results are memoized per resolver, so a module imported
// transitively more than once runs its top-level code exactly once, and no
// cache entry survives the context.
type resolver struct {
	c      *Context
	topKey string
	topSrc []byte

	protos  map[string]*lua.FunctionProto
	loaded  map[string]lua.LValue
	loading map[string]bool
	stack   []string // module names currently executing, innermost last
}

func newResolver(c *Context) *resolver {
	return &resolver{
		c:       c,
		protos:  make(map[string]*lua.FunctionProto),
		loaded:  make(map[string]lua.LValue),
		loading: make(map[string]bool),
	}
}

// setTop registers the inline top-level buffer so the scene module itself
// can be required by its own name.
func (r *resolver) setTop(name string, src []byte) {
	r.topKey = path.Clean(name)
	r.topSrc = src
}

func (r *resolver) pushModule(name string) {
	key := path.Clean(name)
	r.loading[key] = true
	r.stack = append(r.stack, key)
}

func (r *resolver) popModule() {
	key := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	delete(r.loading, key)
}

func (r *resolver) currentDir() string {
	if len(r.stack) == 0 {
		return "."
	}
	return path.Dir(r.stack[len(r.stack)-1])
}

func (r *resolver) reset() {
	r.protos = nil
	r.loaded = nil
	r.loading = nil
	r.stack = nil
	r.topSrc = nil
}

// normalizeSpecifier maps an import specifier to a canonical module key.
// Relative specifiers resolve against the requesting module's directory; a
// missing .lua extension is appended.
func normalizeSpecifier(spec, fromDir string) string {
	p := spec
	if !strings.HasSuffix(p, ".lua") {
		p += ".lua"
	}
	if strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../") {
		return path.Join(fromDir, p)
	}
	return path.Clean(p)
}

// require implements the script-visible require(specifier) builtin.
func (r *resolver) require(L *lua.LState) int {
	spec := L.CheckString(1)
	if spec == "" {
		r.c.raise(ErrResolve, "require: module specifier is required")
	}
	key := normalizeSpecifier(spec, r.currentDir())

	if v, ok := r.loaded[key]; ok {
		L.Push(v)
		return 1
	}
	if r.loading[key] {
		r.c.raise(ErrResolve, "cyclic module dependency: %s -> %s",
			strings.Join(r.stack, " -> "), key)
	}

	proto, ok := r.protos[key]
	if !ok {
		src := r.lookup(spec, key)
		var err error
		proto, err = compileChunk(src, key)
		if err != nil {
			r.c.raise(ErrCompile, "compile %s: %v", key, err)
		}
		r.protos[key] = proto
	}

	r.pushModule(key)
	defer r.popModule()

	L.Push(L.NewFunctionFromProto(proto))
	// Unprotected on purpose: failures unwind to the top-level PCall so
	// the whole load fails as one unit.
	L.Call(0, 1)
	ret := L.Get(-1)
	L.Pop(1)
	if ret == lua.LNil {
		ret = L.NewTable()
	}
	r.loaded[key] = ret
	L.Push(ret)
	return 1
}

// lookup fetches module source: the inline top-level buffer wins, then the
// configured source chain. A miss is raised as a resolution error naming
// the original specifier.
func (r *resolver) lookup(spec, key string) []byte {
	if key == r.topKey && r.topSrc != nil {
		return r.topSrc
	}
	if r.c.src == nil {
		r.c.raise(ErrResolve, "module not found: '%s'", spec)
	}
	src, err := r.c.src.Lookup(key)
	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			r.c.raise(ErrResolve, "module not found: '%s'", spec)
		}
		r.c.raise(ErrResolve, "resolve '%s': %v", spec, err)
	}
	return src
}
