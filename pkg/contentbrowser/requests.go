package contentbrowser

// Request/Response DTOs

// AddLinkRequest contains parameters for registering a named link.
//
// Title is optional: when empty, the title is extracted from the first
// <title> element of HTML (if provided) and falls back to the file stem of
// Path. HTML carries the raw bytes of the linked document and is only used
// for title extraction, never stored.
type AddLinkRequest struct {
	Path  string
	Title string
	HTML  []byte
}
