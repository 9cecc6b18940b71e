package domain

// MoveRecord is one row of the move table after loading. Identifier is the
// normalized slug used in item names, file names and resource keys.
type MoveRecord struct {
	Identifier  string
	DisplayName string
	Type        string
	Category    string

	// Pass-through metadata; empty when the column is absent.
	Generation string
	PP         string
	Power      string
	Accuracy   string

	// Line is the 1-based line of the row in the source CSV.
	Line int
}

// HasCategory reports whether the record carries category data.
func (m MoveRecord) HasCategory() bool { return m.Category != "" }

// ItemKind distinguishes the two move-learn items generated per move.
type ItemKind string

const (
	ItemKindTM ItemKind = "tm"
	ItemKindTR ItemKind = "tr"
)

// ItemKinds lists the kinds in emission order.
var ItemKinds = []ItemKind{ItemKindTM, ItemKindTR}

func (k ItemKind) String() string { return string(k) }

func (k ItemKind) IsValid() bool {
	switch k {
	case ItemKindTM, ItemKindTR:
		return true
	}
	return false
}

// Label returns the upper-case label shown in item names ("TM" or "TR").
func (k ItemKind) Label() string {
	switch k {
	case ItemKindTM:
		return "TM"
	case ItemKindTR:
		return "TR"
	}
	return ""
}

// ItemName returns the registry path of the item teaching the given move,
// e.g. "tm_accelerock".
func (k ItemKind) ItemName(identifier string) string {
	return string(k) + "_" + identifier
}

// BlankIdentifier names the blank items. No move may normalize to it.
const BlankIdentifier = "blank"

// BlankItemName returns the registry path of the blank item of this kind.
func (k ItemKind) BlankItemName() string {
	return k.ItemName(BlankIdentifier)
}
