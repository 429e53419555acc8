package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadExplicit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dingcad.yaml")
	data := []byte("roots:\n  - ./lib\n  - ./shared\nlibrary: ./dingcad.db\nmeshDir: ./meshes\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Roots) != 2 || cfg.Roots[0] != "./lib" {
		t.Errorf("Roots = %v", cfg.Roots)
	}
	if cfg.Library != "./dingcad.db" {
		t.Errorf("Library = %q", cfg.Library)
	}
	if cfg.MeshDir != "./meshes" {
		t.Errorf("MeshDir = %q", cfg.MeshDir)
	}
}

func TestLoadMissingExplicitFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dingcad.yaml")
	if err := os.WriteFile(path, []byte("roots: {nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
