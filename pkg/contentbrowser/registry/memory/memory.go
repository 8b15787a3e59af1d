// Package memory provides an in-memory link registry for testing and development.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/tendant/content-browser/pkg/contentbrowser"
)

// Registry keeps links in memory. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	links []*contentbrowser.Link
}

// New creates a new in-memory registry
func New() *Registry {
	return &Registry{}
}

func (r *Registry) Add(ctx context.Context, link *contentbrowser.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *link
	r.links = append(r.links, &copied)
	return nil
}

func (r *Registry) List(ctx context.Context) ([]*contentbrowser.Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	links := make([]*contentbrowser.Link, 0, len(r.links))
	for _, link := range r.links {
		copied := *link
		links = append(links, &copied)
	}
	return links, nil
}

func (r *Registry) FindByPath(ctx context.Context, path string) (*contentbrowser.Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, link := range r.links {
		if link.Path == path {
			copied := *link
			return &copied, nil
		}
	}
	return nil, contentbrowser.ErrLinkNotFound
}

func (r *Registry) Remove(ctx context.Context, match string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	needle := strings.ToLower(match)
	kept := r.links[:0]
	removed := 0
	for _, link := range r.links {
		if strings.Contains(strings.ToLower(link.Title), needle) ||
			strings.Contains(strings.ToLower(link.Path), needle) {
			removed++
			continue
		}
		kept = append(kept, link)
	}
	r.links = kept
	return removed, nil
}
