// Package site provides the default page assembler: it wraps rendered
// content fragments in a full document shell, builds the card-grid index
// with client-side search and type filters, and renders the link registry
// index. All pages reference the styles.css asset written next to them.
package site

import (
	"fmt"
	"html"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/tendant/content-browser/pkg/contentbrowser"
)

// highlightCDN is the highlight.js version pinned in page headers.
const highlightCDN = "https://cdnjs.cloudflare.com/ajax/libs/highlight.js/11.9.0"

// Assembler is the default contentbrowser.Assembler implementation.
type Assembler struct{}

// New creates a default site assembler
func New() *Assembler {
	return &Assembler{}
}

// ContentPage wraps one item's fragment in a complete HTML document with
// breadcrumb navigation, type badges, and syntax highlighting includes.
func (a *Assembler) ContentPage(item *contentbrowser.ContentItem, fragment string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s - Content Viewer</title>
    <link rel="stylesheet" href="styles.css">
    <link rel="stylesheet" href="%s/styles/github.min.css">
    <script src="%s/highlight.min.js"></script>
    <script src="%s/languages/javascript.min.js"></script>
    <script src="%s/languages/python.min.js"></script>
    <script src="%s/languages/css.min.js"></script>
    <script src="%s/languages/json.min.js"></script>
</head>
<body>
    <div class="container">
        <nav class="breadcrumb">
            <a href="index.html">&larr; Back to All Content</a>
        </nav>

        <header class="content-header">
            <h1>%s</h1>
            <div class="meta">
                <span class="badge type-%s">%s</span>
                <span class="badge subtype-%s">%s</span>
                <span class="description">%s</span>
            </div>
        </header>

        <main class="content-display">
            %s
        </main>
    </div>

    <script>
        document.addEventListener('DOMContentLoaded', function() {
            document.querySelectorAll('pre code').forEach((block) => {
                hljs.highlightBlock(block);
            });
        });
    </script>
</body>
</html>`,
		html.EscapeString(item.ID),
		highlightCDN, highlightCDN, highlightCDN, highlightCDN, highlightCDN, highlightCDN,
		html.EscapeString(item.ID),
		item.Type, strings.ToUpper(string(item.Type)),
		item.Subtype, item.Subtype,
		html.EscapeString(item.Description),
		fragment)
}

// IndexPage renders the card-grid index. Cards carry data-type attributes
// driving the client-side filter buttons; search matches title and preview
// text only, so filtering stays pure UI glue over the derived fields.
func (a *Assembler) IndexPage(items []*contentbrowser.ContentItem, generatedAt time.Time) string {
	var cards strings.Builder
	for _, item := range items {
		cards.WriteString(itemCard(item))
		cards.WriteString("\n")
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Content Browser - %d Items</title>
    <link rel="stylesheet" href="styles.css">
</head>
<body>
    <div class="container">
        <header class="site-header">
            <h1>Content Browser</h1>
            <p class="subtitle">Browse %d content files</p>
        </header>

        <section class="filters">
            <div class="search-box">
                <input type="text" id="searchInput" placeholder="Search by description..." autocomplete="off">
            </div>
            <div class="filter-buttons">
                %s
            </div>
        </section>

        <main class="card-grid">
            %s
        </main>

        <footer class="site-footer">
            <p>Generated on %s</p>
        </footer>
    </div>

    <script>
        // Search functionality
        const searchInput = document.getElementById('searchInput');
        const cards = document.querySelectorAll('.card');

        searchInput.addEventListener('input', function(e) {
            const query = e.target.value.toLowerCase();
            cards.forEach(card => {
                const title = card.querySelector('.card-title').textContent.toLowerCase();
                const preview = card.querySelector('.card-preview').textContent.toLowerCase();
                if (title.includes(query) || preview.includes(query)) {
                    card.style.display = '';
                } else {
                    card.style.display = 'none';
                }
            });
        });

        // Filter functionality
        const filterBtns = document.querySelectorAll('.filter-btn');
        filterBtns.forEach(btn => {
            btn.addEventListener('click', function() {
                filterBtns.forEach(b => b.classList.remove('active'));
                this.classList.add('active');

                const filter = this.getAttribute('data-filter');
                cards.forEach(card => {
                    if (filter === 'all' || card.getAttribute('data-type') === filter) {
                        card.style.display = '';
                    } else {
                        card.style.display = 'none';
                    }
                });
            });
        });
    </script>
</body>
</html>`,
		len(items), len(items),
		filterButtons(items),
		cards.String(),
		generatedAt.Format("2006-01-02 15:04:05"))
}

// Stylesheet returns the CSS asset written alongside the generated pages.
func (a *Assembler) Stylesheet() string {
	return stylesheet
}

func itemCard(item *contentbrowser.ContentItem) string {
	return fmt.Sprintf(`<article class="card type-%s" data-type="%s" data-subtype="%s">
            <a href="%s.html" class="card-link">
                <div class="card-header">
                    <span class="card-id">%s</span>
                    <span class="card-type">%s</span>
                </div>
                <div class="card-body">
                    <h3 class="card-title">%s</h3>
                    <p class="card-preview">%s</p>
                </div>
                <div class="card-footer">
                    <span class="badge">%s</span>
                    <span class="view-link">View &rarr;</span>
                </div>
            </a>
        </article>`,
		item.Type, item.Type, item.Subtype,
		item.ID,
		html.EscapeString(shortID(item.ID)),
		strings.ToUpper(string(item.Type)),
		html.EscapeString(truncate(item.Description, 80)),
		html.EscapeString(truncate(item.Preview, 120)),
		item.Subtype)
}

// filterButtons builds one button per content type present, plus All,
// each labeled with its item count.
func filterButtons(items []*contentbrowser.ContentItem) string {
	counts := make(map[contentbrowser.ContentType]int)
	for _, item := range items {
		counts[item.Type]++
	}

	types := maps.Keys(counts)
	slices.Sort(types)

	var b strings.Builder
	fmt.Fprintf(&b, `<button class="filter-btn active" data-filter="all">All (%d)</button>`, len(items))
	for _, t := range types {
		fmt.Fprintf(&b, "\n                <button class=\"filter-btn\" data-filter=%q>%s (%d)</button>",
			t, strings.ToUpper(string(t)), counts[t])
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8] + "..."
	}
	return id
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
