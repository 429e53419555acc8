package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Dir serves modules from a filesystem directory. Module paths use forward
// slashes and must stay inside the root.
type Dir struct {
	root string
}

// NewDir creates a directory-backed source rooted at root.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Lookup implements Source.
func (d *Dir) Lookup(path string) ([]byte, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || filepath.IsAbs(clean) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	data, err := os.ReadFile(filepath.Join(d.root, clean))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("source: read %s: %w", path, err)
	}
	return data, nil
}
