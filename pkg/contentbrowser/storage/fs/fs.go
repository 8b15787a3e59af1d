package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tendant/content-browser/pkg/contentbrowser"
)

// Store is a filesystem implementation of the contentbrowser.Store
// interface. Keys map to paths under the base directory; this is where the
// generated site lands for local browsing.
type Store struct {
	baseDir string
}

// Config options for the filesystem store
type Config struct {
	BaseDir string // Base directory for generated output
}

// New creates a new filesystem store
func New(config Config) (*Store, error) {
	if config.BaseDir == "" {
		return nil, errors.New("base directory is required")
	}

	if err := os.MkdirAll(config.BaseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	return &Store{baseDir: config.BaseDir}, nil
}

// BaseDir returns the directory the store writes into.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Put writes an object under the base directory. The content type is
// ignored; on the filesystem it follows from the file extension.
func (s *Store) Put(ctx context.Context, key, contentType string, data []byte) error {
	path := filepath.Join(s.baseDir, key)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Get reads an object back from the filesystem
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, key))
	if os.IsNotExist(err) {
		return nil, contentbrowser.ErrObjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// Delete deletes an object
func (s *Store) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(s.baseDir, key))
	if os.IsNotExist(err) {
		return contentbrowser.ErrObjectNotFound
	}
	return err
}

// List returns the keys of all files under the base directory
func (s *Store) List(ctx context.Context) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(s.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.baseDir, path)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return keys, nil
}
