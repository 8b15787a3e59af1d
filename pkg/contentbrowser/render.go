package contentbrowser

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html"
)

// htmlSourceExcerptLength caps the escaped HTML source excerpt shown above
// the inline preview.
const htmlSourceExcerptLength = 5000

// RenderFragment produces a self-contained HTML fragment for one classified
// item. It dispatches on the item's type and never fails: malformed JSON
// falls back to a raw code block, unknown types render as preformatted
// text. The fragment is embedded by an external page template; writing it
// anywhere is the caller's responsibility.
func RenderFragment(item *ContentItem) string {
	switch item.Type {
	case TypeImage:
		encoded := base64.StdEncoding.EncodeToString(item.Raw)
		return fmt.Sprintf(
			`<img src="data:image/%s;base64,%s" alt="%s" style="max-width: 100%%; height: auto;">`,
			item.Subtype, encoded, html.EscapeString(item.Description))

	case TypeHTML:
		text := decodeLossy(item.Raw)
		escaped := html.EscapeString(text)
		excerpt := escaped
		ellipsis := ""
		if len([]rune(escaped)) > htmlSourceExcerptLength {
			excerpt = leadingChars(escaped, htmlSourceExcerptLength)
			ellipsis = "..."
		}
		return fmt.Sprintf(`<div class="html-preview">
            <h3>HTML Source:</h3>
            <pre><code>%s%s</code></pre>
            <h3>HTML Preview:</h3>
            <iframe srcdoc="%s" sandbox style="width: 100%%; height: 600px; border: 1px solid #ddd;"></iframe>
        </div>`, excerpt, ellipsis, html.EscapeString(text))

	case TypeMarkdown:
		return RenderMarkdown(decodeLossy(item.Raw))

	case TypeCode:
		return fmt.Sprintf(`<pre><code class="language-%s">%s</code></pre>`,
			item.Subtype, html.EscapeString(decodeLossy(item.Raw)))

	case TypeJSON:
		text := decodeLossy(item.Raw)
		if formatted, err := reindentJSON(text); err == nil {
			return fmt.Sprintf(`<pre><code class="language-json">%s</code></pre>`,
				html.EscapeString(formatted))
		}
		return fmt.Sprintf(`<pre><code>%s</code></pre>`, html.EscapeString(text))

	default:
		return fmt.Sprintf(`<pre>%s</pre>`, html.EscapeString(decodeLossy(item.Raw)))
	}
}

// reindentJSON re-serializes a JSON document with 2-space indentation for
// stable formatting.
func reindentJSON(text string) (string, error) {
	var parsed interface{}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return "", err
	}
	formatted, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return "", err
	}
	return string(formatted), nil
}
