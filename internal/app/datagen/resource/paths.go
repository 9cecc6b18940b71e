package resource

import (
	"path"

	"github.com/Dragomordor/SimpleTMs/internal/domain"
)

const langFileName = "en_us.json"

// MoveSetPath is the path of a move-learn-item registry file.
func MoveSetPath(namespace, setName string) string {
	return path.Join(namespace, "movelearnitems", setName+".json")
}

// LangPath is the path of the English localization file.
func LangPath(namespace string) string {
	return path.Join("assets", namespace, "lang", langFileName)
}

// ModelPath is the path of an item model file.
func ModelPath(namespace, itemName string) string {
	return path.Join("assets", namespace, "models", "item", itemName+".json")
}

// TagPath is the path of an item tag file.
func TagPath(namespace, tagName string) string {
	return path.Join("data", namespace, "tags", "item", tagName+".json")
}

// AllItemsTag names the tag holding every item of a kind, e.g. "tm_items".
func AllItemsTag(kind domain.ItemKind) string {
	return kind.String() + "_items"
}

// TypeTag names the per-type tag, e.g. "type_rock_tm".
func TypeTag(moveType string, kind domain.ItemKind) string {
	return "type_" + domain.NormalizeGroupKey(moveType) + "_" + kind.String()
}

// CategoryTag names the per-category tag, e.g. "category_physical_tm".
func CategoryTag(category string, kind domain.ItemKind) string {
	return "category_" + domain.NormalizeGroupKey(category) + "_" + kind.String()
}

// ItemID qualifies an item name with the namespace, e.g. "simpletms:tm_absorb".
func ItemID(namespace, itemName string) string {
	return namespace + ":" + itemName
}

// LangKey is the translation key of an item, e.g. "item.simpletms.tm_absorb".
func LangKey(namespace, itemName string) string {
	return "item." + namespace + "." + itemName
}

// ItemGroupLangKey is the translation key of a creative tab.
func ItemGroupLangKey(namespace, group string) string {
	return "itemGroup." + namespace + "." + group
}

// TexturePath is the texture reference of a typed item, e.g.
// "simpletms:item/tm/rock".
func TexturePath(namespace string, kind domain.ItemKind, moveType string) string {
	return namespace + ":item/" + kind.String() + "/" + domain.NormalizeGroupKey(moveType)
}
