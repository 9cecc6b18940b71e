package exclusion

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// File is the on-disk form of an exclusion set.
//
// Example:
//
//	lists:
//	  signature_moves:
//	    - "Spectral Thief"
//	    - "Dark Void"
//	  removed:
//	    - "Struggle"
//	prefixes:
//	  - hiddenpower
type File struct {
	Lists    map[string][]string `yaml:"lists"`
	Prefixes []string            `yaml:"prefixes"`
}

// LoadFile reads and parses an exclusions YAML file from disk.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("exclusion: open %q: %w", path, err)
	}
	defer f.Close()

	ef, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("exclusion: parse %q: %w", path, err)
	}
	return ef, nil
}

// LoadFromReader parses exclusions YAML from r. Unknown keys are rejected.
// An empty document yields an empty File.
func LoadFromReader(r io.Reader) (*File, error) {
	var ef File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ef); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("exclusion: decode yaml: %w", err)
	}
	return &ef, nil
}

// Set converts the file into a Set. Lists are added in name order.
func (f *File) Set() *Set {
	s := New()
	names := make([]string, 0, len(f.Lists))
	for name := range f.Lists {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s.AddList(name, f.Lists[name])
	}
	s.AddPrefixes(f.Prefixes...)
	return s
}
