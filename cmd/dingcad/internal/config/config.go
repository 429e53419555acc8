// Package config loads the dingcad CLI configuration.
//
// Configuration lives in a single YAML file, by default ./dingcad.yaml:
//
//	roots:
//	  - ./lib          # directories scripts resolve modules from, in order
//	library: ./dingcad.db  # badger module library (optional)
//	meshDir: ./meshes      # directory loadMesh() reads from (optional)
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// DefaultPath is where Load looks when no explicit path is given.
const DefaultPath = "dingcad.yaml"

// Config holds the CLI configuration.
type Config struct {
	// Roots are directories module lookups cascade through, in order.
	Roots []string `yaml:"roots"`

	// Library is the path of the badger-backed module library. Empty
	// disables the library source.
	Library string `yaml:"library"`

	// MeshDir is the directory loadMesh() reads mesh files from.
	MeshDir string `yaml:"meshDir"`
}

// Load reads the configuration from path. An empty path means DefaultPath;
// a missing default file yields an empty configuration, while a missing
// explicit file is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}
