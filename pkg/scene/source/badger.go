package source

import (
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

// modulePrefix namespaces module keys inside the shared database.
const modulePrefix = "mod:"

// Badger is a Source backed by a BadgerDB script library. It doubles as a
// writable store so the CLI can manage a local module library.
type Badger struct {
	db *badger.DB
}

// BadgerOptions configures the library database.
type BadgerOptions struct {
	// Dir is the database directory. Required unless InMemory is set.
	Dir string

	// InMemory runs badger without disk persistence, for tests.
	InMemory bool
}

// OpenBadger opens (creating if needed) a badger-backed module library.
func OpenBadger(opts BadgerOptions) (*Badger, error) {
	if !opts.InMemory && opts.Dir == "" {
		return nil, errors.New("source: BadgerOptions.Dir is required for on-disk mode")
	}
	dbOpts := badger.DefaultOptions(opts.Dir).WithLogger(nil)
	if opts.InMemory {
		dbOpts = dbOpts.WithInMemory(true)
	}
	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, fmt.Errorf("source: open library: %w", err)
	}
	return &Badger{db: db}, nil
}

// Lookup implements Source.
func (b *Badger) Lookup(path string) ([]byte, error) {
	var src []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(modulePrefix + path))
		if err != nil {
			return err
		}
		src, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("source: lookup %s: %w", path, err)
	}
	return src, nil
}

// Put stores module source under the given path.
func (b *Badger) Put(path string, src []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(modulePrefix+path), src)
	})
	if err != nil {
		return fmt.Errorf("source: store %s: %w", path, err)
	}
	return nil
}

// Delete removes a module. Deleting a missing module is not an error.
func (b *Badger) Delete(path string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(modulePrefix + path))
	})
	if err != nil {
		return fmt.Errorf("source: delete %s: %w", path, err)
	}
	return nil
}

// List returns all stored module paths in key order.
func (b *Badger) List() ([]string, error) {
	var paths []string
	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(modulePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			paths = append(paths, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("source: list: %w", err)
	}
	return paths, nil
}

// Close releases the database.
func (b *Badger) Close() error {
	return b.db.Close()
}
