package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"manox/internal/domain"
)

// File persists the cart as a single JSON document ({"items":[...]})
// at a fixed path, read whole and written whole. Cart sizes are tens
// of items, so the wholesale overwrite is cheap.
type File struct {
	path string
}

// NewFile builds a file-backed store. The parent directory is created
// on first save.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Load(_ context.Context) (*domain.Cart, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	return &cart, nil
}

func (f *File) Save(_ context.Context, state domain.Cart) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &PersistenceError{Op: "save", Err: err}
		}
	}
	// Write to a sibling temp file and rename so a crash mid-write
	// cannot leave a truncated cart behind.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}
