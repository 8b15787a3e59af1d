package contentbrowser

import (
	"time"

	"github.com/google/uuid"
)

// ContentType is the domain type for the broad content category.
type ContentType string

// Content type constants (typed).
const (
	TypeImage    ContentType = "image"
	TypeHTML     ContentType = "html"
	TypeMarkdown ContentType = "markdown"
	TypeCode     ContentType = "code"
	TypeJSON     ContentType = "json"
	TypeXML      ContentType = "xml"
	TypeText     ContentType = "text"
	TypeBinary   ContentType = "binary"
)

// Subtype is the specific format within a content type.
type Subtype string

// Subtype constants (typed).
const (
	SubtypeJPEG       Subtype = "jpeg"
	SubtypePNG        Subtype = "png"
	SubtypeGIF        Subtype = "gif"
	SubtypeWebP       Subtype = "webp"
	SubtypeHTML       Subtype = "html"
	SubtypeMarkdown   Subtype = "markdown"
	SubtypeReact      Subtype = "react"
	SubtypeJavaScript Subtype = "javascript"
	SubtypePython     Subtype = "python"
	SubtypeCSS        Subtype = "css"
	SubtypeJSON       Subtype = "json"
	SubtypeXML        Subtype = "xml"
	SubtypeText       Subtype = "text"
	SubtypeUnknown    Subtype = "unknown"
)

// ContentItem represents one classified content blob.
//
// An item is constructed once per input blob via DeriveItem, fully derived
// in a single pass, then handed to the renderer; it is not mutated after
// derivation. Raw is owned by the caller and must not be modified while the
// item is in use.
type ContentItem struct {
	ID          string      `json:"id"`
	Raw         []byte      `json:"-"`
	Type        ContentType `json:"type"`
	Subtype     Subtype     `json:"subtype"`
	Description string      `json:"description"`
	Preview     string      `json:"preview"`
}

// Link represents one registered named link in the registry.
type Link struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Path    string    `json:"path"`
	AddedAt time.Time `json:"added"`
}

// BuildResult contains statistics about a site build.
type BuildResult struct {
	// Generated is the number of items whose pages were written.
	Generated int

	// Failed is the number of items that failed processing.
	Failed int

	// FailedIDs contains the identifiers of items that failed.
	FailedIDs []string
}
