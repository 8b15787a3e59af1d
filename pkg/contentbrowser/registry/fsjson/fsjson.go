// Package fsjson persists the link registry as a single JSON file on disk.
//
// The file is read fresh on every operation and rewritten atomically via a
// temp file, so several short-lived processes can share one registry without
// stepping on each other's writes mid-rename.
package fsjson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tendant/content-browser/pkg/contentbrowser"
)

// Registry stores links in a JSON file
type Registry struct {
	mu   sync.Mutex
	path string
}

// Config holds configuration for the JSON file registry
type Config struct {
	Path string // Path to the registry file, e.g. ~/notes.json
}

// New creates a registry backed by the JSON file at config.Path
func New(config Config) (*Registry, error) {
	if config.Path == "" {
		return nil, errors.New("registry path is required")
	}
	if err := os.MkdirAll(filepath.Dir(config.Path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create registry directory: %w", err)
	}
	return &Registry{path: config.Path}, nil
}

// Path returns the registry file path
func (r *Registry) Path() string {
	return r.path
}

func (r *Registry) load() ([]*contentbrowser.Link, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	var links []*contentbrowser.Link
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, fmt.Errorf("failed to parse registry file: %w", err)
	}
	return links, nil
}

func (r *Registry) save(links []*contentbrowser.Link) error {
	data, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode registry: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace registry file: %w", err)
	}
	return nil
}

func (r *Registry) Add(ctx context.Context, link *contentbrowser.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	links, err := r.load()
	if err != nil {
		return err
	}
	links = append(links, link)
	return r.save(links)
}

func (r *Registry) List(ctx context.Context) ([]*contentbrowser.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

func (r *Registry) FindByPath(ctx context.Context, path string) (*contentbrowser.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	links, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, link := range links {
		if link.Path == path {
			return link, nil
		}
	}
	return nil, contentbrowser.ErrLinkNotFound
}

func (r *Registry) Remove(ctx context.Context, match string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	links, err := r.load()
	if err != nil {
		return 0, err
	}

	needle := strings.ToLower(match)
	kept := links[:0]
	removed := 0
	for _, link := range links {
		if strings.Contains(strings.ToLower(link.Title), needle) ||
			strings.Contains(strings.ToLower(link.Path), needle) {
			removed++
			continue
		}
		kept = append(kept, link)
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, r.save(kept)
}
