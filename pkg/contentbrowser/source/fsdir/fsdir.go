// Package fsdir discovers content in a directory layout where each item
// lives in its own subfolder containing a file named "content". The folder
// name is the item identifier.
package fsdir

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/tendant/content-browser/pkg/contentbrowser"
)

// ContentFileName is the expected file name inside each item folder
const ContentFileName = "content"

// Source walks a content root directory
type Source struct {
	root string
}

// Config holds configuration for the directory source
type Config struct {
	Root string // Directory containing one subfolder per item
}

// New creates a directory source rooted at config.Root
func New(config Config) (*Source, error) {
	if config.Root == "" {
		return nil, errors.New("content root is required")
	}
	info, err := os.Stat(config.Root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.New("content root is not a directory")
	}
	return &Source{root: config.Root}, nil
}

// Root returns the content root directory
func (s *Source) Root() string {
	return s.root
}

// Walk calls fn once per item folder, in sorted order. Folders without a
// content file are skipped; unreadable content files are reported through
// the readErr argument so the caller decides how to count them.
func (s *Source) Walk(ctx context.Context, fn contentbrowser.WalkFunc) error {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !entry.IsDir() {
			continue
		}

		contentPath := filepath.Join(s.root, entry.Name(), ContentFileName)
		if _, err := os.Stat(contentPath); os.IsNotExist(err) {
			continue
		}

		raw, readErr := os.ReadFile(contentPath)
		if err := fn(entry.Name(), raw, readErr); err != nil {
			return err
		}
	}
	return nil
}
