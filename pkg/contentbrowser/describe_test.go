package contentbrowser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/content-browser/pkg/contentbrowser"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name    string
		ctype   contentbrowser.ContentType
		subtype contentbrowser.Subtype
		text    string
		want    string
	}{
		{
			name:    "markdown with heading",
			ctype:   contentbrowser.TypeMarkdown,
			subtype: contentbrowser.SubtypeMarkdown,
			text:    "# Hello World\nbody text",
			want:    "Article: Hello World",
		},
		{
			name:    "markdown without heading",
			ctype:   contentbrowser.TypeMarkdown,
			subtype: contentbrowser.SubtypeMarkdown,
			text:    "prose with **bold** but no heading",
			want:    "Markdown Article",
		},
		{
			name:    "html with title",
			ctype:   contentbrowser.TypeHTML,
			subtype: contentbrowser.SubtypeHTML,
			text:    "<html><head><title>My Page</title></head></html>",
			want:    "HTML Page: My Page",
		},
		{
			name:    "html form fallback",
			ctype:   contentbrowser.TypeHTML,
			subtype: contentbrowser.SubtypeHTML,
			text:    "<html><body><form action=\"/submit\"></form></body></html>",
			want:    "HTML Form/Widget",
		},
		{
			name:    "html canvas fallback",
			ctype:   contentbrowser.TypeHTML,
			subtype: contentbrowser.SubtypeHTML,
			text:    "<html><body><canvas id=\"chart\"></canvas></body></html>",
			want:    "HTML Canvas Visualization",
		},
		{
			name:    "html without title or markers",
			ctype:   contentbrowser.TypeHTML,
			subtype: contentbrowser.SubtypeHTML,
			text:    "<html><body>plain</body></html>",
			want:    "HTML Document",
		},
		{
			name:    "react with named const",
			ctype:   contentbrowser.TypeCode,
			subtype: contentbrowser.SubtypeReact,
			text:    "const Dashboard = () => {}",
			want:    "React: Dashboard Component",
		},
		{
			name:    "react without named const",
			ctype:   contentbrowser.TypeCode,
			subtype: contentbrowser.SubtypeReact,
			text:    "class App extends React.Component {}",
			want:    "React Component",
		},
		{
			name:    "python with function",
			ctype:   contentbrowser.TypeCode,
			subtype: contentbrowser.SubtypePython,
			text:    "def process_data(rows):\n    pass",
			want:    "Python: process_data() function",
		},
		{
			name:    "javascript base label",
			ctype:   contentbrowser.TypeCode,
			subtype: contentbrowser.SubtypeJavaScript,
			text:    "function f() {}",
			want:    "JavaScript Code",
		},
		{
			name:    "binary file",
			ctype:   contentbrowser.TypeBinary,
			subtype: contentbrowser.SubtypeUnknown,
			text:    "",
			want:    "Binary File",
		},
		{
			name:    "unknown pair falls back",
			ctype:   contentbrowser.ContentType("video"),
			subtype: contentbrowser.Subtype("mp4"),
			text:    "",
			want:    "Unknown Document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contentbrowser.Describe(tt.ctype, tt.subtype, tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescribeTruncatesLongHeading(t *testing.T) {
	heading := strings.Repeat("x", 100)
	got := contentbrowser.Describe(contentbrowser.TypeMarkdown, contentbrowser.SubtypeMarkdown, "# "+heading)
	assert.Equal(t, "Article: "+strings.Repeat("x", 60), got)
}

func TestPreview(t *testing.T) {
	t.Run("image placeholder", func(t *testing.T) {
		got := contentbrowser.Preview("ignored", contentbrowser.TypeImage)
		assert.Equal(t, "[Image Preview]", got)
	})

	t.Run("short text unchanged", func(t *testing.T) {
		got := contentbrowser.Preview("short text", contentbrowser.TypeText)
		assert.Equal(t, "short text", got)
	})

	t.Run("whitespace collapsed", func(t *testing.T) {
		got := contentbrowser.Preview("a\n\n  b\t\tc", contentbrowser.TypeText)
		assert.Equal(t, "a b c", got)
	})

	t.Run("long text truncated with ellipsis", func(t *testing.T) {
		got := contentbrowser.Preview(strings.Repeat("a", 500), contentbrowser.TypeText)
		assert.Len(t, got, contentbrowser.PreviewMaxLength+3)
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("empty text placeholder", func(t *testing.T) {
		got := contentbrowser.Preview("   \n  ", contentbrowser.TypeText)
		assert.Equal(t, "[No text preview available]", got)
	})
}

func TestExtractHTMLTitle(t *testing.T) {
	assert.Equal(t, "My Page", contentbrowser.ExtractHTMLTitle("<title>My Page</title>"))
	assert.Equal(t, "Spaced", contentbrowser.ExtractHTMLTitle("<TITLE>  Spaced  </TITLE>"))
	assert.Equal(t, "", contentbrowser.ExtractHTMLTitle("<html>no title here</html>"))
}

func TestDeriveItem(t *testing.T) {
	item := contentbrowser.DeriveItem("item-1", []byte("# Welcome\n\nHello there."))
	require.NotNil(t, item)

	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, contentbrowser.TypeMarkdown, item.Type)
	assert.Equal(t, contentbrowser.SubtypeMarkdown, item.Subtype)
	assert.Equal(t, "Article: Welcome", item.Description)
	assert.Equal(t, "# Welcome Hello there.", item.Preview)
}

func TestDeriveItemImage(t *testing.T) {
	item := contentbrowser.DeriveItem("pic", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A})
	require.NotNil(t, item)

	assert.Equal(t, contentbrowser.TypeImage, item.Type)
	assert.Equal(t, "PNG Image", item.Description)
	assert.Equal(t, "[Image Preview]", item.Preview)
}
