package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/tendant/content-browser/pkg/contentbrowser"
)

// Store is an in-memory implementation of the contentbrowser.Store
// interface, used in tests and dry runs.
type Store struct {
	mu           sync.RWMutex
	objects      map[string][]byte
	contentTypes map[string]string
}

// New creates a new in-memory store
func New() *Store {
	return &Store{
		objects:      make(map[string][]byte),
		contentTypes: make(map[string]string),
	}
}

// Put writes an object directly to memory
func (s *Store) Put(ctx context.Context, key, contentType string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Copy to avoid external modifications
	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[key] = buf
	s.contentTypes[key] = contentType
	return nil
}

// Get reads an object back from memory
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, exists := s.objects[key]
	if !exists {
		return nil, contentbrowser.ErrObjectNotFound
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, nil
}

// ContentType returns the content type recorded for a key
func (s *Store) ContentType(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ct, exists := s.contentTypes[key]
	return ct, exists
}

// Delete deletes an object
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.objects[key]; !exists {
		return contentbrowser.ErrObjectNotFound
	}
	delete(s.objects, key)
	delete(s.contentTypes, key)
	return nil
}

// List returns all stored keys, sorted
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.objects))
	for key := range s.objects {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}
