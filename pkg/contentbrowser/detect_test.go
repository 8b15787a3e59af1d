package contentbrowser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tendant/content-browser/pkg/contentbrowser"
)

func TestDetectImage(t *testing.T) {
	tests := []struct {
		name        string
		raw         []byte
		wantSubtype contentbrowser.Subtype
		wantMatch   bool
	}{
		{
			name:        "jpeg signature",
			raw:         []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10},
			wantSubtype: contentbrowser.SubtypeJPEG,
			wantMatch:   true,
		},
		{
			name:        "png signature",
			raw:         []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A},
			wantSubtype: contentbrowser.SubtypePNG,
			wantMatch:   true,
		},
		{
			name:        "gif signature",
			raw:         []byte("GIF89a\x01\x00"),
			wantSubtype: contentbrowser.SubtypeGIF,
			wantMatch:   true,
		},
		{
			name:        "webp signature",
			raw:         []byte("RIFF\x24\x00\x00\x00WEBPVP8 "),
			wantSubtype: contentbrowser.SubtypeWebP,
			wantMatch:   true,
		},
		{
			name:      "riff without webp marker",
			raw:       []byte("RIFF\x24\x00\x00\x00WAVEfmt "),
			wantMatch: false,
		},
		{
			name:      "webp marker without riff container",
			raw:       []byte("XXXX\x24\x00\x00\x00WEBPVP8 "),
			wantMatch: false,
		},
		{
			name:      "plain text",
			raw:       []byte("hello world"),
			wantMatch: false,
		},
		{
			name:      "empty input",
			raw:       nil,
			wantMatch: false,
		},
		{
			name:      "truncated signature",
			raw:       []byte{0xFF, 0xD8},
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtype, ok := contentbrowser.DetectImage(tt.raw)
			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				assert.Equal(t, tt.wantSubtype, subtype)
			}
		})
	}
}

func TestDetectImageIgnoresTrailingContent(t *testing.T) {
	// Signature detection only looks at the magic bytes; trailing text,
	// even text that looks like another type, must not change the result.
	raw := append([]byte{0x89, 0x50, 0x4E, 0x47}, []byte("<html><body>not really html</body></html>")...)

	subtype, ok := contentbrowser.DetectImage(raw)
	assert.True(t, ok)
	assert.Equal(t, contentbrowser.SubtypePNG, subtype)
}
