package contentbrowser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tendant/content-browser/pkg/contentbrowser"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		raw         []byte
		wantType    contentbrowser.ContentType
		wantSubtype contentbrowser.Subtype
	}{
		{
			name:        "jpeg image",
			raw:         []byte{0xFF, 0xD8, 0xFF, 0xE0},
			wantType:    contentbrowser.TypeImage,
			wantSubtype: contentbrowser.SubtypeJPEG,
		},
		{
			name:        "html document",
			raw:         []byte("<!DOCTYPE html><html><body>hi</body></html>"),
			wantType:    contentbrowser.TypeHTML,
			wantSubtype: contentbrowser.SubtypeHTML,
		},
		{
			name:        "html tag uppercase",
			raw:         []byte("<HTML><body></body></HTML>"),
			wantType:    contentbrowser.TypeHTML,
			wantSubtype: contentbrowser.SubtypeHTML,
		},
		{
			name:        "markdown leading heading",
			raw:         []byte("# Title\n\nSome prose."),
			wantType:    contentbrowser.TypeMarkdown,
			wantSubtype: contentbrowser.SubtypeMarkdown,
		},
		{
			name:        "markdown bold marker in head",
			raw:         []byte("Some prose with **emphasis** early on."),
			wantType:    contentbrowser.TypeMarkdown,
			wantSubtype: contentbrowser.SubtypeMarkdown,
		},
		{
			name:        "react component",
			raw:         []byte("const App = () => { return <div/>; };\nexport default App; // React"),
			wantType:    contentbrowser.TypeCode,
			wantSubtype: contentbrowser.SubtypeReact,
		},
		{
			name:        "javascript code",
			raw:         []byte("function add(a, b) { return a + b; }"),
			wantType:    contentbrowser.TypeCode,
			wantSubtype: contentbrowser.SubtypeJavaScript,
		},
		{
			name:        "python script",
			raw:         []byte("def main():\n    print('hello')\n"),
			wantType:    contentbrowser.TypeCode,
			wantSubtype: contentbrowser.SubtypePython,
		},
		{
			name:        "css stylesheet",
			raw:         []byte("body { margin: 0; display: flex; }"),
			wantType:    contentbrowser.TypeCode,
			wantSubtype: contentbrowser.SubtypeCSS,
		},
		{
			name:        "json object",
			raw:         []byte(`{"key": "value", "count": 3}`),
			wantType:    contentbrowser.TypeJSON,
			wantSubtype: contentbrowser.SubtypeJSON,
		},
		{
			name:        "json array",
			raw:         []byte(`[1, 2, 3]`),
			wantType:    contentbrowser.TypeJSON,
			wantSubtype: contentbrowser.SubtypeJSON,
		},
		{
			name:        "malformed json falls through",
			raw:         []byte(`{not json at all`),
			wantType:    contentbrowser.TypeText,
			wantSubtype: contentbrowser.SubtypeText,
		},
		{
			name:        "xml declaration",
			raw:         []byte("<?xml version=\"1.0\"?><root/>"),
			wantType:    contentbrowser.TypeXML,
			wantSubtype: contentbrowser.SubtypeXML,
		},
		{
			name:        "plain text default",
			raw:         []byte("just some ordinary prose with nothing special"),
			wantType:    contentbrowser.TypeText,
			wantSubtype: contentbrowser.SubtypeText,
		},
		{
			name:        "empty input is text",
			raw:         []byte{},
			wantType:    contentbrowser.TypeText,
			wantSubtype: contentbrowser.SubtypeText,
		},
		{
			name:        "undecodable bytes are binary",
			raw:         []byte{0x80, 0x81, 0x82, 0xFE},
			wantType:    contentbrowser.TypeBinary,
			wantSubtype: contentbrowser.SubtypeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctype, subtype := contentbrowser.Classify(tt.raw)
			assert.Equal(t, tt.wantType, ctype)
			assert.Equal(t, tt.wantSubtype, subtype)
		})
	}
}

func TestClassifyRuleOrder(t *testing.T) {
	// The html rule outranks markdown: a document containing both an <html>
	// tag and a leading heading is html.
	ctype, subtype := contentbrowser.Classify([]byte("# heading\n<html><body></body></html>"))
	assert.Equal(t, contentbrowser.TypeHTML, ctype)
	assert.Equal(t, contentbrowser.SubtypeHTML, subtype)

	// The react rule outranks plain javascript when React markers appear.
	ctype, subtype = contentbrowser.Classify([]byte("const x = 1; // uses React hooks"))
	assert.Equal(t, contentbrowser.TypeCode, ctype)
	assert.Equal(t, contentbrowser.SubtypeReact, subtype)
}
