package contentbrowser

import (
	"context"
)

// Service defines the main interface for the content-browser library
type Service interface {
	// Site operations
	BuildSite(ctx context.Context, src Source) (*BuildResult, error)

	// Link registry operations
	AddLink(ctx context.Context, req AddLinkRequest) (*Link, error)
	ListLinks(ctx context.Context) ([]*Link, error)
	RemoveLinks(ctx context.Context, match string) (int, error)
	RegenerateLinkIndex(ctx context.Context) error

	// Blob store operations
	RegisterStore(name string, store Store)
	GetStore(name string) (Store, error)
}
