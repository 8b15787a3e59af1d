package contentbrowser

import (
	"html"
	"regexp"
	"strings"
)

// Heading patterns are applied longest prefix first: "#### " must be
// rewritten before "### " and so on, or the shorter prefix would match
// inside the longer one. This ordering is load-bearing.
var (
	h4Re = regexp.MustCompile(`#### (.+)`)
	h3Re = regexp.MustCompile(`### (.+)`)
	h2Re = regexp.MustCompile(`## (.+)`)
	h1Re = regexp.MustCompile(`# (.+)`)

	boldItalicRe = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	boldRe       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe     = regexp.MustCompile(`\*(.+?)\*`)
)

// RenderMarkdown converts a constrained Markdown subset to HTML.
//
// The input is HTML-escaped first so literal angle brackets in the source
// never become tags; every later substitution operates on the escaped
// buffer. This is a regex-substitution renderer, not a block-structured
// parser: nested or malformed Markdown produces best-effort output, which
// is a documented limitation.
func RenderMarkdown(markdown string) string {
	out := html.EscapeString(markdown)

	out = h4Re.ReplaceAllString(out, "<h4>$1</h4>")
	out = h3Re.ReplaceAllString(out, "<h3>$1</h3>")
	out = h2Re.ReplaceAllString(out, "<h2>$1</h2>")
	out = h1Re.ReplaceAllString(out, "<h1>$1</h1>")

	out = boldItalicRe.ReplaceAllString(out, "<strong><em>$1</em></strong>")
	out = boldRe.ReplaceAllString(out, "<strong>$1</strong>")
	out = italicRe.ReplaceAllString(out, "<em>$1</em>")

	out = strings.ReplaceAll(out, "\n\n", "</p><p>")
	out = strings.ReplaceAll(out, "\n", "<br>")

	return "<p>" + out + "</p>"
}
