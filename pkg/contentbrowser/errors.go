package contentbrowser

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrStoreNotFound indicates a named blob store was not found
	ErrStoreNotFound = errors.New("store not found")

	// ErrObjectNotFound indicates an object was not found in a store
	ErrObjectNotFound = errors.New("object not found")

	// ErrRegistryNotConfigured indicates the service has no registry wired
	ErrRegistryNotConfigured = errors.New("registry not configured")

	// ErrAssemblerNotConfigured indicates the service has no page assembler wired
	ErrAssemblerNotConfigured = errors.New("assembler not configured")

	// ErrLinkExists indicates a link with the same path is already registered
	ErrLinkExists = errors.New("link already registered")

	// ErrLinkNotFound indicates no registered link matched
	ErrLinkNotFound = errors.New("link not found")
)

// ItemError represents an error processing a single content item.
// A build records item errors per identifier and continues with the
// remaining items.
type ItemError struct {
	ID  string
	Op  string
	Err error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item operation %s failed for %s: %v", e.Op, e.ID, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// LinkError represents an error related to registry operations
type LinkError struct {
	Path string
	Op   string
	Err  error
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("registry operation %s failed for %s: %v", e.Op, e.Path, e.Err)
}

func (e *LinkError) Unwrap() error {
	return e.Err
}

// StoreError represents an error related to blob store operations
type StoreError struct {
	Store string
	Key   string
	Op    string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store operation %s failed for key %s on store %s: %v", e.Op, e.Key, e.Store, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
