package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryLookup(t *testing.T) {
	m := NewMemory(map[string]string{"lib/a.lua": "return 1"})
	src, err := m.Lookup("lib/a.lua")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if string(src) != "return 1" {
		t.Errorf("Lookup = %q", src)
	}
	if _, err := m.Lookup("lib/b.lua"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing module error = %v, want ErrNotFound", err)
	}
}

func TestDirLookup(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "lib"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "lib", "gears.lua"), []byte("return 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	d := NewDir(dir)
	src, err := d.Lookup("lib/gears.lua")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if string(src) != "return 2" {
		t.Errorf("Lookup = %q", src)
	}
	if _, err := d.Lookup("lib/missing.lua"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing module error = %v, want ErrNotFound", err)
	}
	// Escaping the root is a miss, not a disclosure.
	if _, err := d.Lookup("../secret.lua"); !errors.Is(err, ErrNotFound) {
		t.Errorf("escape error = %v, want ErrNotFound", err)
	}
}

func TestChainOrder(t *testing.T) {
	first := NewMemory(map[string]string{"a.lua": "first"})
	second := NewMemory(map[string]string{"a.lua": "second", "b.lua": "only"})
	chain := Chain{first, second}

	src, err := chain.Lookup("a.lua")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if string(src) != "first" {
		t.Errorf("chain returned %q, want first hit", src)
	}
	if src, _ := chain.Lookup("b.lua"); string(src) != "only" {
		t.Errorf("fallthrough returned %q", src)
	}
	if _, err := chain.Lookup("c.lua"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing module error = %v, want ErrNotFound", err)
	}
}

func TestBadgerRoundTrip(t *testing.T) {
	b, err := OpenBadger(BadgerOptions{InMemory: true})
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}
	defer b.Close()

	if err := b.Put("lib/wheel.lua", []byte("return 3")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	src, err := b.Lookup("lib/wheel.lua")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if string(src) != "return 3" {
		t.Errorf("Lookup = %q", src)
	}

	paths, err := b.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(paths) != 1 || paths[0] != "lib/wheel.lua" {
		t.Errorf("List = %v", paths)
	}

	if _, err := b.Lookup("lib/axle.lua"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing module error = %v, want ErrNotFound", err)
	}
	if err := b.Delete("lib/wheel.lua"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := b.Lookup("lib/wheel.lua"); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted module error = %v, want ErrNotFound", err)
	}
}
