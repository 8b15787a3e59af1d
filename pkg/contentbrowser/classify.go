package contentbrowser

import (
	"encoding/json"
	"strings"
)

// classifyRule is one (predicate, result) pair in the text heuristic
// cascade. Rules are evaluated top-to-bottom and the first match wins, so
// their order is part of the classification contract.
type classifyRule struct {
	Name    string
	Match   func(text string) bool
	Type    ContentType
	Subtype Subtype
}

// textRules orders heuristics by specificity: structural markers like
// "<html" before looser textual cues. The rules over-approximate on
// purpose; see the package documentation.
var textRules = []classifyRule{
	{
		Name: "html",
		Match: func(text string) bool {
			lower := strings.ToLower(text)
			return strings.Contains(lower, "<html") || strings.Contains(lower, "<!doctype html")
		},
		Type:    TypeHTML,
		Subtype: SubtypeHTML,
	},
	{
		Name: "markdown",
		Match: func(text string) bool {
			head := leadingChars(text, 500)
			return strings.HasPrefix(strings.TrimSpace(text), "#") ||
				strings.Contains(head, "## ") ||
				strings.Contains(head, "**")
		},
		Type:    TypeMarkdown,
		Subtype: SubtypeMarkdown,
	},
	{
		Name: "react",
		Match: func(text string) bool {
			return hasJavaScriptMarkers(text) &&
				(strings.Contains(text, "React") || strings.Contains(text, "Component"))
		},
		Type:    TypeCode,
		Subtype: SubtypeReact,
	},
	{
		Name:    "javascript",
		Match:   hasJavaScriptMarkers,
		Type:    TypeCode,
		Subtype: SubtypeJavaScript,
	},
	{
		Name: "python",
		Match: func(text string) bool {
			if !strings.Contains(text, "def ") &&
				!strings.Contains(text, "import ") &&
				!strings.Contains(text, "class ") {
				return false
			}
			return strings.Contains(text, "print(") || strings.Contains(text, "def ")
		},
		Type:    TypeCode,
		Subtype: SubtypePython,
	},
	{
		Name: "css",
		Match: func(text string) bool {
			return strings.Contains(text, "{") &&
				(strings.Contains(text, "color:") ||
					strings.Contains(text, "display:") ||
					strings.Contains(text, "margin:"))
		},
		Type:    TypeCode,
		Subtype: SubtypeCSS,
	},
	{
		Name: "json",
		Match: func(text string) bool {
			stripped := strings.TrimSpace(text)
			if !strings.HasPrefix(stripped, "{") && !strings.HasPrefix(stripped, "[") {
				return false
			}
			return json.Valid([]byte(stripped))
		},
		Type:    TypeJSON,
		Subtype: SubtypeJSON,
	},
	{
		Name: "xml",
		Match: func(text string) bool {
			return strings.HasPrefix(strings.TrimSpace(text), "<?xml")
		},
		Type:    TypeXML,
		Subtype: SubtypeXML,
	},
}

func hasJavaScriptMarkers(text string) bool {
	return strings.Contains(text, "const ") ||
		strings.Contains(text, "function ") ||
		strings.Contains(text, "=>") ||
		strings.Contains(text, "import ")
}

// leadingChars returns the first n characters (runes) of text.
func leadingChars(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}

// Classify assigns exactly one (type, subtype) pair to a content blob.
//
// Image signatures are checked first; everything else is decoded as UTF-8
// with invalid sequences dropped and run through the ordered text rules.
// Non-empty input that decodes to nothing at all is binary/unknown. The
// default is text/text.
func Classify(raw []byte) (ContentType, Subtype) {
	if subtype, ok := DetectImage(raw); ok {
		return TypeImage, subtype
	}

	text := decodeLossy(raw)
	if len(raw) > 0 && text == "" {
		return TypeBinary, SubtypeUnknown
	}

	for _, rule := range textRules {
		if rule.Match(text) {
			return rule.Type, rule.Subtype
		}
	}

	return TypeText, SubtypeText
}
