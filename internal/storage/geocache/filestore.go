package geocache

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps the cache blob in a single local JSON file, the
// default when no redis address is configured.
type FileStore struct{ path string }

func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

func (f *FileStore) Load(_ context.Context) ([]byte, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return b, err
}

func (f *FileStore) Save(_ context.Context, b []byte) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(f.path, b, 0o644)
}

func (f *FileStore) Delete(_ context.Context) error {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
