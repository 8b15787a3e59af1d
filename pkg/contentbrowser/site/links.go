package site

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/tendant/content-browser/pkg/contentbrowser"
)

// LinkIndexPage renders the link registry as a table of title, location,
// and date added, newest first, with a stats header. The page is fully
// self-contained so it stays readable even when styles.css is missing.
func (a *Assembler) LinkIndexPage(links []*contentbrowser.Link, generatedAt time.Time) string {
	var rows strings.Builder
	if len(links) == 0 {
		rows.WriteString(`<tr><td colspan="3" class="empty-state">No links yet. Add your first link to get started.</td></tr>`)
	}
	for _, link := range links {
		fmt.Fprintf(&rows, `<tr>
    <td><a href="file://%s" class="note-link">%s</a></td>
    <td><code class="note-path">%s</code></td>
    <td><span class="note-date">%s</span></td>
  </tr>
`,
			html.EscapeString(link.Path),
			html.EscapeString(link.Title),
			html.EscapeString(link.Path),
			link.AddedAt.Format("2006-01-02"))
	}

	lastUpdated := "Never"
	if len(links) > 0 {
		// List is newest-first.
		lastUpdated = links[0].AddedAt.Format("2006-01-02")
		if lastUpdated == generatedAt.Format("2006-01-02") {
			lastUpdated = "Today"
		}
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Link Index</title>
    <link rel="stylesheet" href="styles.css">
</head>
<body>
    <div class="container">
        <header class="site-header">
            <h1>Link Index</h1>
            <p class="subtitle">Your personal collection of linked documents</p>
        </header>

        <section class="stats-bar">
            <div class="stat-item">
                <span class="stat-value">%d</span>
                <span class="stat-label">Total Links</span>
            </div>
            <div class="stat-item">
                <span class="stat-value">%s</span>
                <span class="stat-label">Last Updated</span>
            </div>
        </section>

        <main>
            <table class="link-table">
                <thead><tr><th>Title</th><th>Location</th><th>Added</th></tr></thead>
                <tbody>
%s                </tbody>
            </table>
        </main>

        <footer class="site-footer">
            <p>Updated %s</p>
        </footer>
    </div>
</body>
</html>`,
		len(links), lastUpdated, rows.String(),
		generatedAt.Format("2006-01-02 15:04"))
}
