package site

// stylesheet is the static CSS asset for generated sites.
const stylesheet = `/* Content Browser Styles */

:root {
    --primary-color: #2563eb;
    --secondary-color: #64748b;
    --background-color: #f8fafc;
    --card-background: #ffffff;
    --text-color: #1e293b;
    --border-color: #e2e8f0;
    --shadow: 0 1px 3px rgba(0, 0, 0, 0.1);
    --shadow-hover: 0 4px 12px rgba(0, 0, 0, 0.15);
}

* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
    background-color: var(--background-color);
    color: var(--text-color);
    line-height: 1.6;
}

.container {
    max-width: 1400px;
    margin: 0 auto;
    padding: 2rem;
}

/* Header */
.site-header {
    text-align: center;
    margin-bottom: 2rem;
    padding: 2rem 0;
}

.site-header h1 {
    font-size: 2.5rem;
    color: var(--primary-color);
    margin-bottom: 0.5rem;
}

.subtitle {
    color: var(--secondary-color);
    font-size: 1.1rem;
}

/* Filters */
.filters {
    margin-bottom: 2rem;
}

.search-box {
    margin-bottom: 1rem;
}

.search-box input {
    width: 100%;
    max-width: 500px;
    padding: 0.75rem 1rem;
    font-size: 1rem;
    border: 2px solid var(--border-color);
    border-radius: 8px;
    outline: none;
    transition: border-color 0.2s;
}

.search-box input:focus {
    border-color: var(--primary-color);
}

.filter-buttons {
    display: flex;
    flex-wrap: wrap;
    gap: 0.5rem;
}

.filter-btn {
    padding: 0.5rem 1rem;
    border: 1px solid var(--border-color);
    background: white;
    border-radius: 20px;
    cursor: pointer;
    font-size: 0.9rem;
    transition: all 0.2s;
}

.filter-btn:hover {
    background: var(--background-color);
}

.filter-btn.active {
    background: var(--primary-color);
    color: white;
    border-color: var(--primary-color);
}

/* Card Grid */
.card-grid {
    display: grid;
    grid-template-columns: repeat(auto-fill, minmax(320px, 1fr));
    gap: 1.5rem;
}

/* Cards */
.card {
    background: var(--card-background);
    border-radius: 12px;
    box-shadow: var(--shadow);
    transition: all 0.2s ease;
    overflow: hidden;
}

.card:hover {
    transform: translateY(-2px);
    box-shadow: var(--shadow-hover);
}

.card-link {
    display: block;
    text-decoration: none;
    color: inherit;
    padding: 1.25rem;
}

.card-header {
    display: flex;
    justify-content: space-between;
    align-items: center;
    margin-bottom: 0.75rem;
}

.card-id {
    font-family: monospace;
    font-size: 0.85rem;
    color: var(--secondary-color);
}

.card-type {
    font-size: 0.75rem;
    font-weight: 600;
    text-transform: uppercase;
    padding: 0.25rem 0.5rem;
    border-radius: 4px;
    background: #e0e7ff;
    color: #4338ca;
}

.type-image .card-type {
    background: #fce7f3;
    color: #be185d;
}

.type-html .card-type {
    background: #fed7aa;
    color: #c2410c;
}

.type-code .card-type {
    background: #d1fae5;
    color: #047857;
}

.type-markdown .card-type {
    background: #e0e7ff;
    color: #4338ca;
}

.type-text .card-type {
    background: #f3f4f6;
    color: #374151;
}

.card-title {
    font-size: 1rem;
    font-weight: 600;
    margin-bottom: 0.5rem;
    color: var(--text-color);
    line-height: 1.4;
}

.card-preview {
    font-size: 0.9rem;
    color: var(--secondary-color);
    line-height: 1.5;
    margin-bottom: 1rem;
    display: -webkit-box;
    -webkit-line-clamp: 3;
    -webkit-box-orient: vertical;
    overflow: hidden;
}

.card-footer {
    display: flex;
    justify-content: space-between;
    align-items: center;
    padding-top: 0.75rem;
    border-top: 1px solid var(--border-color);
}

.badge {
    font-size: 0.8rem;
    padding: 0.25rem 0.5rem;
    background: var(--background-color);
    border-radius: 4px;
    color: var(--secondary-color);
}

.view-link {
    font-size: 0.9rem;
    color: var(--primary-color);
    font-weight: 500;
}

/* Footer */
.site-footer {
    text-align: center;
    margin-top: 3rem;
    padding: 2rem 0;
    color: var(--secondary-color);
    font-size: 0.9rem;
}

/* Individual Page Styles */
.breadcrumb {
    margin-bottom: 1.5rem;
}

.breadcrumb a {
    color: var(--primary-color);
    text-decoration: none;
    font-weight: 500;
}

.breadcrumb a:hover {
    text-decoration: underline;
}

.content-header {
    background: white;
    padding: 1.5rem;
    border-radius: 12px;
    margin-bottom: 1.5rem;
    box-shadow: var(--shadow);
}

.content-header h1 {
    font-size: 1.5rem;
    margin-bottom: 0.75rem;
    word-break: break-all;
}

.meta {
    display: flex;
    flex-wrap: wrap;
    gap: 0.5rem;
    align-items: center;
}

.meta .badge {
    font-size: 0.85rem;
    padding: 0.35rem 0.75rem;
    background: #e0e7ff;
    color: #4338ca;
    border-radius: 20px;
}

.meta .description {
    color: var(--secondary-color);
    font-size: 0.9rem;
}

.content-display {
    background: white;
    padding: 2rem;
    border-radius: 12px;
    box-shadow: var(--shadow);
    overflow-x: auto;
}

.content-display pre {
    background: #f8fafc;
    padding: 1rem;
    border-radius: 8px;
    overflow-x: auto;
    font-size: 0.9rem;
    line-height: 1.5;
}

.content-display code {
    font-family: 'Consolas', 'Monaco', 'Courier New', monospace;
}

.content-display h1, .content-display h2, .content-display h3 {
    margin: 1.5rem 0 0.75rem;
}

.content-display p {
    margin-bottom: 1rem;
}

.content-display img {
    max-width: 100%;
    height: auto;
    border-radius: 8px;
}

.html-preview {
    margin-top: 1rem;
}

.html-preview h3 {
    margin: 1rem 0 0.5rem;
    font-size: 1.1rem;
}

/* Link Index */
.stats-bar {
    display: flex;
    gap: 2rem;
    justify-content: center;
    margin-bottom: 2rem;
}

.stat-item {
    background: var(--card-background);
    padding: 1rem 2rem;
    border-radius: 12px;
    box-shadow: var(--shadow);
    text-align: center;
}

.stat-value {
    display: block;
    font-size: 1.5rem;
    font-weight: 600;
    color: var(--primary-color);
}

.stat-label {
    font-size: 0.85rem;
    color: var(--secondary-color);
}

.link-table {
    width: 100%;
    border-collapse: collapse;
    background: var(--card-background);
    border-radius: 12px;
    box-shadow: var(--shadow);
    overflow: hidden;
}

.link-table th, .link-table td {
    padding: 0.75rem 1rem;
    text-align: left;
    border-bottom: 1px solid var(--border-color);
}

.link-table th {
    background: var(--background-color);
    font-size: 0.85rem;
    text-transform: uppercase;
    color: var(--secondary-color);
}

.note-link {
    color: var(--primary-color);
    text-decoration: none;
    font-weight: 500;
}

.note-link:hover {
    text-decoration: underline;
}

.note-path {
    font-family: monospace;
    font-size: 0.85rem;
    color: var(--secondary-color);
}

.note-date {
    font-size: 0.9rem;
    color: var(--secondary-color);
    white-space: nowrap;
}

.empty-state {
    text-align: center;
    padding: 3rem 1rem;
    color: var(--secondary-color);
}

/* Responsive */
@media (max-width: 768px) {
    .container {
        padding: 1rem;
    }

    .site-header h1 {
        font-size: 1.75rem;
    }

    .card-grid {
        grid-template-columns: 1fr;
    }

    .filter-buttons {
        justify-content: center;
    }

    .content-display {
        padding: 1rem;
    }
}
`
