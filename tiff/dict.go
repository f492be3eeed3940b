package tiff

import (
	"fmt"
	"strings"
)

// TagDef names a tag within one kind of directory and optionally says how
// its values are rendered for display.
type TagDef struct {
	Name string
	Rule ValueRule
}

// ValueRule turns the decoded values of a tag into display text. The only
// implementations are Lookup, TextLookup and Callback.
type ValueRule interface {
	render(t *Tag) string
}

// Lookup renders each value through a table of names. Values without a name
// are rendered as themselves and the pieces are concatenated.
type Lookup map[int64]string

func (l Lookup) render(t *Tag) string {
	if t.Type == DTAscii {
		return t.strVal
	}
	var sb strings.Builder
	for i := 0; i < t.Len(); i++ {
		if t.Type.Category() == IntVal || t.Type == DTUndefined {
			if name, ok := l[t.intVals[i]]; ok {
				sb.WriteString(name)
				continue
			}
		}
		sb.WriteString(t.valueString(i))
	}
	return sb.String()
}

// TextLookup names a whole value vector, keyed by its elements joined with
// single spaces.
type TextLookup map[string]string

func (l TextLookup) render(t *Tag) string {
	parts := make([]string, t.Len())
	for i := range parts {
		parts[i] = t.valueString(i)
	}
	if name, ok := l[strings.Join(parts, " ")]; ok {
		return name
	}
	return "[" + t.listString(t.Len(), ", ") + "]"
}

// Callback computes the display text from the tag itself.
type Callback func(t *Tag) string

func (c Callback) render(t *Tag) string {
	return c(t)
}

// Dict maps tag ids to their definitions for one kind of directory.
type Dict map[uint16]TagDef

// Def returns the definition of id. Unknown ids get a synthesized
// "Tag 0xNNNN" name and no rule.
func (d Dict) Def(id uint16) TagDef {
	if def, ok := d[id]; ok {
		return def
	}
	return TagDef{Name: fmt.Sprintf("Tag 0x%04X", id)}
}

// TagMap holds decoded tags keyed by "<directory> <tag name>". The keys
// JPEGThumbnail and TIFFThumbnail hold raw thumbnail bytes.
type TagMap map[string]*Tag

// MergeAbsent copies every tag of src whose key is not yet present in m.
func (m TagMap) MergeAbsent(src TagMap) {
	for k, t := range src {
		if _, ok := m[k]; !ok {
			m[k] = t
		}
	}
}
