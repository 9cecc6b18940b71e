package resource

import (
	"bytes"
	"encoding/json"
)

// Document is one output file: a path relative to the output root, using
// forward slashes, and the value serialized into it.
type Document struct {
	Path string
	Body any
}

// MoveLearnEntry is one element of a move-learn-item registry file.
type MoveLearnEntry struct {
	MoveName string `json:"moveName"`
	MoveType string `json:"moveType,omitempty"`
}

// ItemModel is an item model definition.
type ItemModel struct {
	Parent   string        `json:"parent"`
	Textures ModelTextures `json:"textures"`
}

// ModelTextures holds the texture layers of an item model.
type ModelTextures struct {
	Layer0 string `json:"layer0"`
}

// TagList is an item tag file.
type TagList struct {
	Replace bool     `json:"replace"`
	Values  []string `json:"values"`
}

// LangEntry is a single translation key and its text.
type LangEntry struct {
	Key   string
	Value string
}

// LangFile is a localization map that keeps keys in insertion order when
// serialized. Setting an existing key updates its value in place.
type LangFile struct {
	entries []LangEntry
	index   map[string]int
}

// NewLangFile returns an empty LangFile.
func NewLangFile() *LangFile {
	return &LangFile{index: make(map[string]int)}
}

// Set adds or updates a key.
func (l *LangFile) Set(key, value string) {
	if i, ok := l.index[key]; ok {
		l.entries[i].Value = value
		return
	}
	l.index[key] = len(l.entries)
	l.entries = append(l.entries, LangEntry{Key: key, Value: value})
}

// Get returns the value for key.
func (l *LangFile) Get(key string) (string, bool) {
	i, ok := l.index[key]
	if !ok {
		return "", false
	}
	return l.entries[i].Value, true
}

// Len returns the number of keys.
func (l *LangFile) Len() int { return len(l.entries) }

// Entries returns the entries in insertion order.
func (l *LangFile) Entries() []LangEntry {
	out := make([]LangEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// MarshalJSON writes the entries as a JSON object in insertion order.
func (l *LangFile) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, e := range l.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(e.Key); err != nil {
			return nil, err
		}
		trimNewline(&buf)
		buf.WriteByte(':')
		if err := enc.Encode(e.Value); err != nil {
			return nil, err
		}
		trimNewline(&buf)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// trimNewline drops the newline json.Encoder appends after each value.
func trimNewline(buf *bytes.Buffer) {
	if n := buf.Len(); n > 0 && buf.Bytes()[n-1] == '\n' {
		buf.Truncate(n - 1)
	}
}
