package tiff

import (
	"bytes"
	"strings"
)

// Character code prefixes of encoded strings such as UserComment.
var (
	encodingJIS     = []byte{'J', 'I', 'S', 0, 0, 0, 0, 0}
	encodingUnicode = []byte{'U', 'N', 'I', 'C', 'O', 'D', 'E', 0}
)

// rawBytes returns the tag's value as bytes whatever its integer width.
func (t *Tag) rawBytes() []byte {
	if t.Type == DTAscii {
		return []byte(t.strVal)
	}
	b := make([]byte, 0, len(t.intVals))
	for _, v := range t.intVals {
		b = append(b, byte(v))
	}
	return b
}

func filterPrintable(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if c >= 32 {
			sb.WriteRune(rune(c))
		}
	}
	return sb.String()
}

// FilteredASCII renders a byte or string value with control characters
// removed. Version tags such as ExifVersion use it.
func FilteredASCII(t *Tag) string {
	return filterPrintable(t.rawBytes())
}

// EncodedString renders a value that starts with an 8 byte character code,
// as UserComment does.
func EncodedString(t *Tag) string {
	b := t.rawBytes()
	if len(b) < 8 {
		return filterPrintable(b)
	}
	code, rest := b[:8], b[8:]
	switch {
	case bytes.Equal(code, encodingUnicode):
		var sb strings.Builder
		for _, c := range rest {
			if c >= 0x20 && c < 0x7F {
				sb.WriteByte(c)
			}
		}
		return sb.String()
	case bytes.Equal(code, encodingJIS):
		return "JIS String Value"
	}
	// ASCII and undefined codes
	return filterPrintable(rest)
}
