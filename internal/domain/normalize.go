package domain

import (
	"strings"
)

// moveNameFolds replaces the few non-ASCII characters that occur in move
// names. Only these are folded; any other rune is kept as is.
var moveNameFolds = strings.NewReplacer(
	"é", "e",
	"’", "",
	"♂", "m",
	"♀", "f",
)

// NormalizeMoveName derives the move identifier from a display name:
//   - converts to lowercase
//   - folds é, ’, ♂ and ♀
//   - removes spaces and the characters ' - . : ( ) ! ? ,
//
// "10,000,000 Volt Thunderbolt" becomes "10000000voltthunderbolt" and
// "Nidoran♂" becomes "nidoranm". The result is stable under re-normalization.
func NormalizeMoveName(name string) string {
	name = strings.ToLower(name)
	name = moveNameFolds.Replace(name)

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if isMoveNameSeparator(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isMoveNameSeparator(r rune) bool {
	switch r {
	case ' ', '\'', '-', '.', ':', '(', ')', '!', '?', ',':
		return true
	}
	return false
}

// NormalizeGroupKey lowercases a type or category value for use in tag file
// names and texture paths.
func NormalizeGroupKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsResourceName reports whether s can be used as one segment of a resource
// location: non-empty, only a-z, 0-9, '_', '-' and '.', no "..", and not ".".
// Slashes are rejected because the value ends up inside file names.
func IsResourceName(s string) bool {
	if s == "" || s == "." || strings.Contains(s, "..") {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
		default:
			return false
		}
	}
	return true
}
