// Package source provides the backing stores a scene evaluation resolves
// script modules from. A Source maps a slash-separated module path to source
// bytes; Chain cascades lookups through several sources in priority order.
package source

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotFound is returned when no source can supply the requested path.
var ErrNotFound = errors.New("source: module not found")

// Source supplies module source text by path.
type Source interface {
	// Lookup returns the source bytes for a module path, or ErrNotFound.
	Lookup(path string) ([]byte, error)
}

// Memory is a map-backed Source, safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	modules map[string][]byte
}

// NewMemory creates an in-memory source seeded with the given modules.
func NewMemory(modules map[string]string) *Memory {
	m := &Memory{modules: make(map[string][]byte, len(modules))}
	for path, src := range modules {
		m.modules[path] = []byte(src)
	}
	return m
}

// Put adds or replaces a module.
func (m *Memory) Put(path string, src []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modules[path] = append([]byte(nil), src...)
}

// Lookup implements Source.
func (m *Memory) Lookup(path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	src, ok := m.modules[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return append([]byte(nil), src...), nil
}

// List returns all module paths in sorted order.
func (m *Memory) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, 0, len(m.modules))
	for p := range m.modules {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Chain looks up each source in order and returns the first hit. Lookup
// fails with ErrNotFound only after every source missed.
type Chain []Source

// Lookup implements Source.
func (c Chain) Lookup(path string) ([]byte, error) {
	for _, s := range c {
		src, err := s.Lookup(path)
		if err == nil {
			return src, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
}
