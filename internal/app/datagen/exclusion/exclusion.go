// Package exclusion removes unwanted moves from a move table before resources
// are generated. A Set combines named lists of display names with identifier
// prefixes; a record is excluded when either matches.
package exclusion

import (
	"slices"
	"strings"

	"github.com/antzucaro/matchr"
	"golang.org/x/text/unicode/norm"

	"github.com/Dragomordor/SimpleTMs/internal/domain"
)

// suggestionThreshold is the minimum Jaro-Winkler similarity for a display
// name to be offered as the likely target of an unmatched entry.
const suggestionThreshold = 0.9

type namedList struct {
	name    string
	entries []string
	members map[string]struct{}
}

// Set is a collection of exclusion lists and identifier prefixes.
// The zero value is not usable; use New or Builtin.
type Set struct {
	lists    []namedList
	prefixes []string
}

// Excluded is a record removed by Filter together with the reason.
type Excluded struct {
	Record domain.MoveRecord
	// Reason is "list:<name>" or "prefix:<prefix>".
	Reason string
}

// Miss is an exclusion list entry that matched no record.
type Miss struct {
	List       string
	Entry      string
	Suggestion string // closest display name, empty if none is close enough
	Score      float64
}

// New returns an empty set.
func New() *Set {
	return &Set{}
}

// AddList adds a named list of display names. A list with the same name is
// replaced.
func (s *Set) AddList(name string, names []string) {
	l := namedList{
		name:    name,
		members: make(map[string]struct{}, len(names)),
	}
	for _, n := range names {
		n = canonicalName(n)
		if n == "" {
			continue
		}
		if _, dup := l.members[n]; dup {
			continue
		}
		l.members[n] = struct{}{}
		l.entries = append(l.entries, n)
	}

	for i := range s.lists {
		if s.lists[i].name == name {
			s.lists[i] = l
			return
		}
	}
	s.lists = append(s.lists, l)
}

// AddPrefixes adds identifier prefixes. Prefixes are normalized like move
// names, so "Hidden Power" and "hiddenpower" are equivalent.
func (s *Set) AddPrefixes(prefixes ...string) {
	for _, p := range prefixes {
		p = domain.NormalizeMoveName(p)
		if p == "" || slices.Contains(s.prefixes, p) {
			continue
		}
		s.prefixes = append(s.prefixes, p)
	}
}

// Merge copies the lists and prefixes of other into s. Lists in other replace
// lists of the same name in s.
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	for _, l := range other.lists {
		s.AddList(l.name, l.entries)
	}
	s.AddPrefixes(other.prefixes...)
}

// ListNames returns the names of the lists in insertion order.
func (s *Set) ListNames() []string {
	names := make([]string, len(s.lists))
	for i, l := range s.lists {
		names[i] = l.name
	}
	return names
}

// Prefixes returns the identifier prefixes.
func (s *Set) Prefixes() []string {
	return slices.Clone(s.prefixes)
}

// Len returns the total number of list entries.
func (s *Set) Len() int {
	n := 0
	for _, l := range s.lists {
		n += len(l.entries)
	}
	return n
}

// Match reports whether r is excluded and why.
func (s *Set) Match(r domain.MoveRecord) (string, bool) {
	name := canonicalName(r.DisplayName)
	for _, l := range s.lists {
		if _, ok := l.members[name]; ok {
			return "list:" + l.name, true
		}
	}
	for _, p := range s.prefixes {
		if strings.HasPrefix(r.Identifier, p) {
			return "prefix:" + p, true
		}
	}
	return "", false
}

// Filter splits records into kept and excluded, preserving order.
func (s *Set) Filter(records []domain.MoveRecord) ([]domain.MoveRecord, []Excluded) {
	kept := make([]domain.MoveRecord, 0, len(records))
	var excluded []Excluded
	for _, r := range records {
		if reason, ok := s.Match(r); ok {
			excluded = append(excluded, Excluded{Record: r, Reason: reason})
			continue
		}
		kept = append(kept, r)
	}
	return kept, excluded
}

// Unmatched returns the list entries that match no record in records. Each
// miss carries the most similar display name when one scores at least
// suggestionThreshold.
func (s *Set) Unmatched(records []domain.MoveRecord) []Miss {
	present := make(map[string]struct{}, len(records))
	names := make([]string, 0, len(records))
	for _, r := range records {
		n := canonicalName(r.DisplayName)
		if _, dup := present[n]; dup {
			continue
		}
		present[n] = struct{}{}
		names = append(names, n)
	}

	var misses []Miss
	for _, l := range s.lists {
		for _, entry := range l.entries {
			if _, ok := present[entry]; ok {
				continue
			}
			m := Miss{List: l.name, Entry: entry}
			m.Suggestion, m.Score = closest(entry, names)
			misses = append(misses, m)
		}
	}
	return misses
}

// closest returns the name most similar to entry, or "" when no candidate
// reaches suggestionThreshold.
func closest(entry string, candidates []string) (string, float64) {
	target := strings.ToLower(entry)
	best, bestScore := "", 0.0
	for _, c := range candidates {
		score := matchr.JaroWinkler(target, strings.ToLower(c), false)
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	if bestScore < suggestionThreshold {
		return "", bestScore
	}
	return best, bestScore
}

func canonicalName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
