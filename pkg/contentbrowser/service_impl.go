package contentbrowser

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// service implements the Service interface
type service struct {
	stores       map[string]Store
	defaultStore string
	registry     Registry
	assembler    Assembler
	eventSink    EventSink
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithStore adds a named blob store for generated output
func WithStore(name string, store Store) Option {
	return func(s *service) {
		if s.stores == nil {
			s.stores = make(map[string]Store)
		}
		s.stores[name] = store
	}
}

// WithDefaultStore selects which named store the build writes to
func WithDefaultStore(name string) Option {
	return func(s *service) {
		s.defaultStore = name
	}
}

// WithRegistry sets the link registry for the service
func WithRegistry(registry Registry) Option {
	return func(s *service) {
		s.registry = registry
	}
}

// WithAssembler sets the page assembler for the service
func WithAssembler(assembler Assembler) Option {
	return func(s *service) {
		s.assembler = assembler
	}
}

// WithEventSink sets the event sink for the service
func WithEventSink(sink EventSink) Option {
	return func(s *service) {
		s.eventSink = sink
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		stores:       make(map[string]Store),
		defaultStore: "default",
	}

	for _, option := range options {
		option(s)
	}

	if len(s.stores) == 0 {
		return nil, fmt.Errorf("at least one store is required")
	}
	if _, ok := s.stores[s.defaultStore]; !ok {
		// With a single store the default follows it.
		if len(s.stores) == 1 {
			for name := range s.stores {
				s.defaultStore = name
			}
		} else {
			return nil, fmt.Errorf("default store %q not registered", s.defaultStore)
		}
	}

	return s, nil
}

// Site operations

func (s *service) BuildSite(ctx context.Context, src Source) (*BuildResult, error) {
	if s.assembler == nil {
		return nil, ErrAssemblerNotConfigured
	}

	store := s.stores[s.defaultStore]
	result := &BuildResult{}
	var items []*ContentItem

	err := src.Walk(ctx, func(id string, raw []byte, readErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if readErr != nil {
			result.Failed++
			result.FailedIDs = append(result.FailedIDs, id)
			return nil
		}

		item := DeriveItem(id, raw)

		if s.eventSink != nil {
			// Best-effort; a failing sink never fails the build.
			_ = s.eventSink.ItemClassified(ctx, item)
		}

		key := id + ".html"
		page := s.assembler.ContentPage(item, RenderFragment(item))
		if err := store.Put(ctx, key, "text/html; charset=utf-8", []byte(page)); err != nil {
			result.Failed++
			result.FailedIDs = append(result.FailedIDs, id)
			return nil
		}

		if s.eventSink != nil {
			_ = s.eventSink.PageWritten(ctx, id, key)
		}

		items = append(items, item)
		result.Generated++
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("source walk failed: %w", err)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})

	now := time.Now().UTC()

	index := s.assembler.IndexPage(items, now)
	if err := store.Put(ctx, "index.html", "text/html; charset=utf-8", []byte(index)); err != nil {
		return result, &StoreError{Store: s.defaultStore, Key: "index.html", Op: "put", Err: err}
	}

	styles := s.assembler.Stylesheet()
	if err := store.Put(ctx, "styles.css", "text/css; charset=utf-8", []byte(styles)); err != nil {
		return result, &StoreError{Store: s.defaultStore, Key: "styles.css", Op: "put", Err: err}
	}

	manifest, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return result, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := store.Put(ctx, "manifest.json", "application/json", manifest); err != nil {
		return result, &StoreError{Store: s.defaultStore, Key: "manifest.json", Op: "put", Err: err}
	}

	return result, nil
}

// Link registry operations

func (s *service) AddLink(ctx context.Context, req AddLinkRequest) (*Link, error) {
	if s.registry == nil {
		return nil, ErrRegistryNotConfigured
	}

	if existing, err := s.registry.FindByPath(ctx, req.Path); err == nil {
		return existing, ErrLinkExists
	}

	title := req.Title
	if title == "" && len(req.HTML) > 0 {
		title = ExtractHTMLTitle(decodeLossy(req.HTML))
	}
	if title == "" {
		title = fileStem(req.Path)
	}

	link := &Link{
		ID:      uuid.New(),
		Title:   title,
		Path:    req.Path,
		AddedAt: time.Now().UTC(),
	}

	if err := s.registry.Add(ctx, link); err != nil {
		return nil, &LinkError{Path: req.Path, Op: "add", Err: err}
	}

	if s.eventSink != nil {
		_ = s.eventSink.LinkAdded(ctx, link)
	}

	if err := s.RegenerateLinkIndex(ctx); err != nil {
		return nil, err
	}

	return link, nil
}

func (s *service) ListLinks(ctx context.Context) ([]*Link, error) {
	if s.registry == nil {
		return nil, ErrRegistryNotConfigured
	}

	links, err := s.registry.List(ctx)
	if err != nil {
		return nil, err
	}

	// Newest first, matching the index page.
	sort.Slice(links, func(i, j int) bool {
		return links[i].AddedAt.After(links[j].AddedAt)
	})
	return links, nil
}

func (s *service) RemoveLinks(ctx context.Context, match string) (int, error) {
	if s.registry == nil {
		return 0, ErrRegistryNotConfigured
	}

	removed, err := s.registry.Remove(ctx, match)
	if err != nil {
		return 0, &LinkError{Path: match, Op: "remove", Err: err}
	}
	if removed == 0 {
		return 0, ErrLinkNotFound
	}

	if s.eventSink != nil {
		_ = s.eventSink.LinkRemoved(ctx, match, removed)
	}

	if err := s.RegenerateLinkIndex(ctx); err != nil {
		return removed, err
	}

	return removed, nil
}

func (s *service) RegenerateLinkIndex(ctx context.Context) error {
	if s.registry == nil {
		return ErrRegistryNotConfigured
	}
	if s.assembler == nil {
		return ErrAssemblerNotConfigured
	}

	links, err := s.registry.List(ctx)
	if err != nil {
		return &LinkError{Op: "list", Err: err}
	}

	sort.Slice(links, func(i, j int) bool {
		return links[i].AddedAt.After(links[j].AddedAt)
	})

	page := s.assembler.LinkIndexPage(links, time.Now().UTC())
	store := s.stores[s.defaultStore]
	if err := store.Put(ctx, "index.html", "text/html; charset=utf-8", []byte(page)); err != nil {
		return &StoreError{Store: s.defaultStore, Key: "index.html", Op: "put", Err: err}
	}

	return nil
}

// Blob store operations

func (s *service) RegisterStore(name string, store Store) {
	s.stores[name] = store
}

func (s *service) GetStore(name string) (Store, error) {
	store, exists := s.stores[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, name)
	}
	return store, nil
}

// Helper methods

// fileStem returns the base name of a path without its extension.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
