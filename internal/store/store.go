// Package store persists the whole application state as one JSON document.
// Load returns an empty default document when the file is absent or
// unreadable as JSON; Save rewrites the document wholesale. There is no
// locking: concurrent writers race read-modify-write and the last save wins
// (single-user assumption).
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/praxis/internal/logger"
)

// StateFileName is the document file name inside the data directory.
const StateFileName = "state.json"

// ErrNotFound marks an entity missing from the document. Services wrap it
// with entity detail; the HTTP layer maps it to 404.
var ErrNotFound = errors.New("not found")

// StoreError wraps a filesystem failure during load or save.
type StoreError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store reads and writes the state document at a fixed path.
type Store struct {
	path string
}

// New creates a Store backed by <dataDir>/state.json.
func New(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, StateFileName)}
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

// Load reads the whole document. A missing file yields an empty default
// document, and so does a corrupt one (with a warning): callers cannot
// distinguish a fresh install from a damaged file at this layer.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDocument(), nil
		}
		return nil, &StoreError{Op: "read", Path: s.path, Err: err}
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		logger.Warn("state file unreadable, starting from empty document", "path", s.path, "err", err)
		return NewDocument(), nil
	}
	doc.normalize()
	return doc, nil
}

// Save rewrites the whole document. It writes to a temp file in the same
// directory and renames it over the state file.
func (s *Store) Save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &StoreError{Op: "encode", Path: s.path, Err: err}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return &StoreError{Op: "mkdir", Path: dir, Err: err}
	}

	tmp, err := os.CreateTemp(dir, StateFileName+".tmp-*")
	if err != nil {
		return &StoreError{Op: "create", Path: dir, Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &StoreError{Op: "write", Path: tmpPath, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &StoreError{Op: "close", Path: tmpPath, Err: err}
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return &StoreError{Op: "rename", Path: s.path, Err: err}
	}
	return nil
}

// Reset deletes the state file. Missing file is not an error.
func (s *Store) Reset() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return &StoreError{Op: "remove", Path: s.path, Err: err}
	}
	return nil
}
