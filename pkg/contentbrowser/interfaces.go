package contentbrowser

import (
	"context"
	"time"
)

// Store defines the interface for blob stores holding generated site output
type Store interface {
	// Put writes an object under the given key with the given content type
	Put(ctx context.Context, key, contentType string, data []byte) error

	// Get reads an object back
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete deletes an object
	Delete(ctx context.Context, key string) error

	// List returns the keys of all stored objects
	List(ctx context.Context) ([]string, error)
}

// Registry defines the interface for link registry persistence.
// The registry is append-mostly: Add appends, Remove exists for manual
// cleanup, nothing is ever updated in place.
type Registry interface {
	// Add appends a link to the registry
	Add(ctx context.Context, link *Link) error

	// List returns all registered links
	List(ctx context.Context) ([]*Link, error)

	// FindByPath returns the link registered under the given path
	FindByPath(ctx context.Context, path string) (*Link, error)

	// Remove deletes links whose title or path contains the match string
	// and returns how many were removed
	Remove(ctx context.Context, match string) (int, error)
}

// WalkFunc receives one content blob from a Source. readErr is non-nil when
// the blob could not be read; the walk continues either way so that one bad
// item never aborts the rest.
type WalkFunc func(id string, raw []byte, readErr error) error

// Source enumerates content blobs to classify and publish. Discovery is the
// source's concern; the pipeline only sees (identifier, bytes) pairs.
type Source interface {
	Walk(ctx context.Context, fn WalkFunc) error
}

// SourceFunc adapts a plain function into a Source
type SourceFunc func(ctx context.Context, fn WalkFunc) error

func (f SourceFunc) Walk(ctx context.Context, fn WalkFunc) error {
	return f(ctx, fn)
}

// Assembler embeds rendered fragments into complete documents. The library
// ships a default implementation under the site subpackage; callers with
// their own page chrome supply their own.
type Assembler interface {
	// ContentPage wraps one item's fragment in a full HTML document
	ContentPage(item *ContentItem, fragment string) string

	// IndexPage renders the card-grid index for all items
	IndexPage(items []*ContentItem, generatedAt time.Time) string

	// LinkIndexPage renders the link registry index
	LinkIndexPage(links []*Link, generatedAt time.Time) string

	// Stylesheet returns the CSS asset written alongside the pages
	Stylesheet() string
}

// EventSink defines the interface for build and registry event handling
type EventSink interface {
	// ItemClassified is fired after an item has been derived
	ItemClassified(ctx context.Context, item *ContentItem) error

	// PageWritten is fired after an item's page has been stored
	PageWritten(ctx context.Context, itemID, key string) error

	// LinkAdded is fired when a link is registered
	LinkAdded(ctx context.Context, link *Link) error

	// LinkRemoved is fired when links are removed
	LinkRemoved(ctx context.Context, match string, count int) error
}
