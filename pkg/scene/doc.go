// Package scene evaluates user-authored modeling scripts against the solid
// kernel and extracts one rooted solid per scene.
//
// Each load runs in a fresh Context: an isolated Lua state with the kernel
// operation set bound as globals and a require() implementation resolving
// modules from configurable backing sources. A context is single-use; the
// module cache, the handle table and every value created during evaluation
// die with it. The one exception is the extracted scene solid, whose
// ownership is promoted to the caller and which stays valid after Close.
//
// Basic usage:
//
//	s, err := scene.Load(src, "scene.lua", scene.WithSource(chain))
//	if err != nil {
//		var d *scene.Diagnostic
//		errors.As(err, &d) // one normalized shape for every failure
//	}
//
// Scene scripts return a table whose "scene" field holds the result:
//
//	local body = cube{size = {20, 20, 10}, center = true}
//	local bore = cylinder{height = 30, radius = 4, center = true}
//	return { scene = difference(body, bore) }
//
// Evaluation is single-threaded and run-to-completion: there is no
// suspension point inside a load and no mid-evaluation cancellation. A
// caller that must abandon a stuck script discards the whole Context.
package scene
