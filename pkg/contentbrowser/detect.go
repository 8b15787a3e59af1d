package contentbrowser

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// magicSignature defines a binary image signature
type magicSignature struct {
	Subtype Subtype
	Offset  int    // Offset from start of blob
	Magic   []byte // Magic bytes to match at Offset
	Prefix  []byte // Optional container prefix required at offset 0
}

// imageSignatures contains the recognized image signatures.
// Checked in order, first match wins.
var imageSignatures = []magicSignature{
	{Subtype: SubtypeJPEG, Offset: 0, Magic: []byte{0xFF, 0xD8, 0xFF}},
	{Subtype: SubtypePNG, Offset: 0, Magic: []byte{0x89, 0x50, 0x4E, 0x47}},
	{Subtype: SubtypeGIF, Offset: 0, Magic: []byte("GIF8")},
	{Subtype: SubtypeWebP, Offset: 8, Magic: []byte("WEBP"), Prefix: []byte("RIFF")},
}

func (s magicSignature) matches(raw []byte) bool {
	if len(raw) < s.Offset+len(s.Magic) {
		return false
	}
	if s.Prefix != nil && !bytes.HasPrefix(raw, s.Prefix) {
		return false
	}
	return bytes.Equal(raw[s.Offset:s.Offset+len(s.Magic)], s.Magic)
}

// DetectImage inspects leading bytes for a recognized image signature.
// It returns the image subtype and true on a match, regardless of any
// trailing content.
func DetectImage(raw []byte) (Subtype, bool) {
	for _, sig := range imageSignatures {
		if sig.matches(raw) {
			return sig.Subtype, true
		}
	}
	return "", false
}

// decodeLossy decodes raw bytes as UTF-8, dropping invalid sequences.
// It never fails; undecodable input yields an empty string.
func decodeLossy(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRune(raw[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		b.WriteRune(r)
		i += size
	}
	return b.String()
}
