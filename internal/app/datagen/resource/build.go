// Package resource projects filtered move records onto the JSON resources the
// mod loads: the move-learn-item registry, the localization file, item models
// and item tags.
package resource

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
	"strconv"

	"github.com/Dragomordor/SimpleTMs/internal/domain"
)

// LabelStyle selects how item display names are written in the lang file.
type LabelStyle string

const (
	// LabelStatic writes "TM: Accelerock".
	LabelStatic LabelStyle = "static"
	// LabelNumbered writes "TM-3: Accelerock", numbering moves from 1 in
	// emission order.
	LabelNumbered LabelStyle = "numbered"
)

func (s LabelStyle) IsValid() bool {
	switch s {
	case LabelStatic, LabelNumbered:
		return true
	}
	return false
}

// DuplicatePolicy decides what happens when two records share an identifier.
type DuplicatePolicy string

const (
	// DuplicateFail aborts the build with a DuplicateIdentifierError.
	DuplicateFail DuplicatePolicy = "fail"
	// DuplicateOverwrite keeps the position of the first record and the data
	// of the last one, matching what repeated file writes would produce.
	DuplicateOverwrite DuplicatePolicy = "overwrite"
)

func (p DuplicatePolicy) IsValid() bool {
	switch p {
	case DuplicateFail, DuplicateOverwrite:
		return true
	}
	return false
}

const (
	generatedParent      = "item/generated"
	blankGeneratedParent = "minecraft:item/generated"
	blankTexture         = "blank"
)

// Options controls the projection.
type Options struct {
	Namespace     string
	MoveSetName   string
	CustomSetName string // empty disables the custom sibling file
	IncludeType   bool
	LabelStyle    LabelStyle
	StaticLang    bool
	Sort          bool
	Duplicates    DuplicatePolicy
}

// Bundle holds every projected document of one generation run.
type Bundle struct {
	opts Options

	// Records are the records in emission order after sorting and
	// duplicate handling.
	Records []domain.MoveRecord
	MoveSet []MoveLearnEntry
	Lang    *LangFile
	Models  map[string]ItemModel
	Tags    map[string]TagList

	// Collisions lists the identifiers merged under DuplicateOverwrite.
	Collisions []*domain.DuplicateIdentifierError
}

// Build projects records onto resource documents.
func Build(records []domain.MoveRecord, opts Options) (*Bundle, error) {
	if opts.Namespace == "" {
		return nil, fmt.Errorf("build resources: %w", domain.NewValidationError("namespace", "required"))
	}
	if opts.LabelStyle == "" {
		opts.LabelStyle = LabelStatic
	}
	if opts.Duplicates == "" {
		opts.Duplicates = DuplicateFail
	}

	ordered := slices.Clone(records)
	if opts.Sort {
		slices.SortStableFunc(ordered, func(a, b domain.MoveRecord) int {
			return cmp.Compare(a.Identifier, b.Identifier)
		})
	}

	for _, r := range ordered {
		if r.Identifier == domain.BlankIdentifier {
			return nil, fmt.Errorf("build resources: %w", &domain.DuplicateIdentifierError{
				Identifier: r.Identifier,
				First:      domain.MoveRecord{Identifier: domain.BlankIdentifier, DisplayName: "blank item"},
				Second:     r,
			})
		}
	}

	unique, collisions, err := dedupe(ordered, opts.Duplicates)
	if err != nil {
		return nil, fmt.Errorf("build resources: %w", err)
	}

	b := &Bundle{
		opts:       opts,
		Records:    unique,
		MoveSet:    make([]MoveLearnEntry, 0, len(unique)),
		Lang:       NewLangFile(),
		Models:     make(map[string]ItemModel, 2*len(unique)+2),
		Tags:       make(map[string]TagList),
		Collisions: collisions,
	}

	if opts.StaticLang {
		b.addStaticLang()
	}
	b.addBlankModels()

	for _, kind := range domain.ItemKinds {
		b.Tags[AllItemsTag(kind)] = TagList{Values: []string{}}
	}

	for i, r := range unique {
		entry := MoveLearnEntry{MoveName: r.Identifier}
		if opts.IncludeType {
			entry.MoveType = r.Type
		}
		b.MoveSet = append(b.MoveSet, entry)

		for _, kind := range domain.ItemKinds {
			item := kind.ItemName(r.Identifier)
			b.Lang.Set(LangKey(opts.Namespace, item), b.label(kind, i+1, r.DisplayName))
			b.Models[item] = ItemModel{
				Parent:   generatedParent,
				Textures: ModelTextures{Layer0: TexturePath(opts.Namespace, kind, r.Type)},
			}

			id := ItemID(opts.Namespace, item)
			b.appendTag(AllItemsTag(kind), id)
			b.appendTag(TypeTag(r.Type, kind), id)
			if r.HasCategory() {
				b.appendTag(CategoryTag(r.Category, kind), id)
			}
		}
	}

	return b, nil
}

// dedupe enforces identifier uniqueness according to policy.
func dedupe(records []domain.MoveRecord, policy DuplicatePolicy) ([]domain.MoveRecord, []*domain.DuplicateIdentifierError, error) {
	out := make([]domain.MoveRecord, 0, len(records))
	pos := make(map[string]int, len(records))
	var collisions []*domain.DuplicateIdentifierError

	for _, r := range records {
		i, seen := pos[r.Identifier]
		if !seen {
			pos[r.Identifier] = len(out)
			out = append(out, r)
			continue
		}
		dup := &domain.DuplicateIdentifierError{Identifier: r.Identifier, First: out[i], Second: r}
		if policy != DuplicateOverwrite {
			return nil, nil, dup
		}
		collisions = append(collisions, dup)
		out[i] = r
	}
	return out, collisions, nil
}

func (b *Bundle) label(kind domain.ItemKind, n int, displayName string) string {
	if b.opts.LabelStyle == LabelNumbered {
		return kind.Label() + "-" + strconv.Itoa(n) + ": " + displayName
	}
	return kind.Label() + ": " + displayName
}

func (b *Bundle) addStaticLang() {
	ns := b.opts.Namespace
	b.Lang.Set(LangKey(ns, domain.ItemKindTM.BlankItemName()), "Blank TM")
	b.Lang.Set(LangKey(ns, domain.ItemKindTR.BlankItemName()), "Blank TR")
	b.Lang.Set(ItemGroupLangKey(ns, AllItemsTag(domain.ItemKindTM)), "TM's")
	b.Lang.Set(ItemGroupLangKey(ns, AllItemsTag(domain.ItemKindTR)), "TR's")
}

func (b *Bundle) addBlankModels() {
	for _, kind := range domain.ItemKinds {
		b.Models[kind.BlankItemName()] = ItemModel{
			Parent:   blankGeneratedParent,
			Textures: ModelTextures{Layer0: TexturePath(b.opts.Namespace, kind, blankTexture)},
		}
	}
}

func (b *Bundle) appendTag(name, id string) {
	t := b.Tags[name]
	t.Values = append(t.Values, id)
	b.Tags[name] = t
}

// Documents returns every output document: the move set, the custom sibling,
// the lang file, then models and tags in name order.
func (b *Bundle) Documents() []Document {
	ns := b.opts.Namespace
	docs := make([]Document, 0, 3+len(b.Models)+len(b.Tags))

	docs = append(docs, Document{Path: MoveSetPath(ns, b.opts.MoveSetName), Body: b.MoveSet})
	if b.opts.CustomSetName != "" {
		docs = append(docs, Document{Path: MoveSetPath(ns, b.opts.CustomSetName), Body: []MoveLearnEntry{}})
	}
	docs = append(docs, Document{Path: LangPath(ns), Body: b.Lang})

	for _, name := range sortedKeys(b.Models) {
		docs = append(docs, Document{Path: ModelPath(ns, name), Body: b.Models[name]})
	}
	for _, name := range sortedKeys(b.Tags) {
		docs = append(docs, Document{Path: TagPath(ns, name), Body: b.Tags[name]})
	}
	return docs
}

// TagNames returns the tag names in sorted order.
func (b *Bundle) TagNames() []string {
	return sortedKeys(b.Tags)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
