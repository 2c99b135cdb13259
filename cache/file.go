package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const fileExt = ".json"

// FileStore persists each key as one file under a directory, standing in
// for the device-local storage of the mobile client. Writes go through a
// temporary file and rename, so a value is either the old one or the new
// one, never a torn mix.
type FileStore struct {
	dir string
}

// NewFileStore creates (if needed) the directory and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("cache: directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the backing directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// path maps a key to its file. Keys are query-escaped so any key round-trips
// through a safe filename.
func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, url.QueryEscape(key)+fileExt)
}

// Get retrieves a value from the store.
func (s *FileStore) Get(key string) (string, bool) {
	data, err := os.ReadFile(s.path(key)) // #nosec G304 - path is derived from the store directory
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set stores a value, replacing any previous one atomically.
func (s *FileStore) Set(key, value string) error {
	tmp, err := os.CreateTemp(s.dir, "entry-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing entry: %w", err)
	}
	return nil
}

// Delete removes a key. Removing a missing key is not an error.
func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("deleting entry: %w", err)
	}
	return nil
}

// DeleteAll removes several keys, attempting every key.
func (s *FileStore) DeleteAll(keys []string) error {
	var firstErr error
	for _, key := range keys {
		if err := s.Delete(key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Keys returns all keys currently in the store.
func (s *FileStore) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing cache directory: %w", err)
	}

	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		key, err := url.QueryUnescape(strings.TrimSuffix(name, fileExt))
		if err != nil {
			// Not one of ours; skip.
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// Verify FileStore implements KeyedStore
var _ KeyedStore = (*FileStore)(nil)
