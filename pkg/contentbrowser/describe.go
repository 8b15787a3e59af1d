package contentbrowser

import (
	"fmt"
	"regexp"
	"strings"
)

// typeKey indexes the description table.
type typeKey struct {
	Type    ContentType
	Subtype Subtype
}

// descriptions maps each known (type, subtype) pair to its base label.
// Pairs absent from the table fall back to defaultDescription.
var descriptions = map[typeKey]string{
	{TypeImage, SubtypeJPEG}:        "JPEG Image",
	{TypeImage, SubtypePNG}:         "PNG Image",
	{TypeImage, SubtypeGIF}:         "GIF Image",
	{TypeImage, SubtypeWebP}:        "WebP Image",
	{TypeHTML, SubtypeHTML}:         "HTML Document",
	{TypeMarkdown, SubtypeMarkdown}: "Markdown Article",
	{TypeCode, SubtypeReact}:        "React Component",
	{TypeCode, SubtypeJavaScript}:   "JavaScript Code",
	{TypeCode, SubtypePython}:       "Python Script",
	{TypeCode, SubtypeCSS}:          "CSS Stylesheet",
	{TypeJSON, SubtypeJSON}:         "JSON Data",
	{TypeXML, SubtypeXML}:           "XML Document",
	{TypeText, SubtypeText}:         "Text Document",
	{TypeBinary, SubtypeUnknown}:    "Binary File",
}

const defaultDescription = "Unknown Document"

var (
	mdHeadingRe  = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	htmlTitleRe  = regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)
	reactConstRe = regexp.MustCompile(`const\s+(\w+)\s*=`)
	pythonDefRe  = regexp.MustCompile(`def\s+(\w+)\s*\(`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
)

// Describe derives a human-readable label for a classified blob.
//
// The base label comes from the description table; type-specific overrides
// then try to extract something better from the text (markdown heading,
// HTML title, component or function name). Extraction failure silently
// falls back to the table label.
func Describe(ctype ContentType, subtype Subtype, text string) string {
	base, ok := descriptions[typeKey{ctype, subtype}]
	if !ok {
		base = defaultDescription
	}

	switch ctype {
	case TypeMarkdown:
		if m := mdHeadingRe.FindStringSubmatch(text); m != nil {
			return fmt.Sprintf("Article: %s", leadingChars(m[1], 60))
		}
	case TypeHTML:
		if m := htmlTitleRe.FindStringSubmatch(text); m != nil {
			return fmt.Sprintf("HTML Page: %s", leadingChars(m[1], 60))
		}
		lower := strings.ToLower(text)
		if strings.Contains(lower, "form") {
			return "HTML Form/Widget"
		}
		if strings.Contains(lower, "canvas") {
			return "HTML Canvas Visualization"
		}
	case TypeCode:
		switch subtype {
		case SubtypeReact:
			if m := reactConstRe.FindStringSubmatch(text); m != nil {
				return fmt.Sprintf("React: %s Component", m[1])
			}
			return "React Component"
		case SubtypePython:
			if m := pythonDefRe.FindStringSubmatch(text); m != nil {
				return fmt.Sprintf("Python: %s() function", m[1])
			}
			return "Python Script"
		}
	}

	return base
}

// PreviewMaxLength is the character budget for card previews.
const PreviewMaxLength = 150

// Preview derives a truncated single-line preview for card display.
// Images get a literal placeholder; everything else is whitespace-collapsed
// and cut to PreviewMaxLength characters with a "..." suffix.
func Preview(text string, ctype ContentType) string {
	if ctype == TypeImage {
		return "[Image Preview]"
	}

	collapsed := strings.TrimSpace(spaceRunRe.ReplaceAllString(text, " "))
	runes := []rune(collapsed)
	if len(runes) > PreviewMaxLength {
		return string(runes[:PreviewMaxLength]) + "..."
	}
	if collapsed == "" {
		return "[No text preview available]"
	}
	return collapsed
}

// ExtractHTMLTitle returns the contents of the first <title> element, or ""
// when the document has none.
func ExtractHTMLTitle(text string) string {
	if m := htmlTitleRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// DeriveItem constructs a fully derived ContentItem from one content blob.
// Derivation never fails: classification always yields a pair and the
// description/preview extractors fall back to defaults.
func DeriveItem(id string, raw []byte) *ContentItem {
	ctype, subtype := Classify(raw)

	text := ""
	if ctype != TypeImage {
		text = decodeLossy(raw)
	}

	return &ContentItem{
		ID:          id,
		Raw:         raw,
		Type:        ctype,
		Subtype:     subtype,
		Description: Describe(ctype, subtype, text),
		Preview:     Preview(text, ctype),
	}
}
