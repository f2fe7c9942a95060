package loader

import (
	"github.com/nathoo/adventure/document"
	"github.com/nathoo/adventure/types"
)

// DecodeLocation materializes a Location from a document subtree. The
// identifier comes from the map key the subtree was declared under, never
// from the subtree itself. Decoding always succeeds for a present subtree;
// missing or mismatched fields keep their zero values, and bounded lists
// truncate silently.
func DecodeLocation(node *document.Node, id string) (types.Location, bool) {
	if node == nil {
		return types.Location{}, false
	}

	loc := types.Location{
		ID:             clip(id, types.MaxIDLength),
		Title:          clip(node.Str("title"), types.MaxShortText),
		Description:    clip(node.Str("description"), types.MaxLongText),
		Image:          clip(node.Str("image"), types.MaxShortText),
		FirstVisitText: clip(node.Str("first_visit_text"), types.MaxLongText),
		Visited:        node.Bool("visited"),
	}

	node.Obj("exits").Each(func(direction string, target *document.Node) {
		if len(loc.Exits) >= types.MaxExits {
			return
		}
		t, ok := target.AsStr()
		if !ok {
			return
		}
		loc.Exits = append(loc.Exits, types.Exit{
			Direction: clip(direction, types.MaxIDLength),
			Target:    clip(t, types.MaxIDLength),
		})
	})

	for _, entry := range node.Seq("items") {
		if len(loc.Items) >= types.MaxLocationItems {
			break
		}
		if itemID, ok := entry.AsStr(); ok {
			loc.Items = append(loc.Items, clip(itemID, types.MaxIDLength))
		}
	}

	loc.FlagsRequired = decodeFlags(node.Obj("flags_required"))
	loc.FlagsSet = decodeFlags(node.Obj("flags_set"))

	return loc, true
}

// DecodeItem materializes a catalog item from a document subtree, with the
// same tolerant-defaulting policy as DecodeLocation.
func DecodeItem(node *document.Node, id string) (types.Item, bool) {
	if node == nil {
		return types.Item{}, false
	}

	return types.Item{
		ID:          clip(id, types.MaxIDLength),
		Name:        clip(node.Str("name"), types.MaxShortText),
		Description: clip(node.Str("description"), types.MaxLongText),
		Takeable:    node.Bool("takeable"),
		Useable:     node.Bool("useable"),
		UseText:     clip(node.Str("use_text"), types.MaxLongText),
	}, true
}

// decodeFlags reads a name→bool mapping into an ordered flag list,
// skipping non-boolean values and truncating at the namespace cap.
func decodeFlags(node *document.Node) []types.Flag {
	var flags []types.Flag
	node.Each(func(name string, value *document.Node) {
		if len(flags) >= types.MaxFlags {
			return
		}
		v, ok := value.AsBool()
		if !ok {
			return
		}
		flags = append(flags, types.Flag{Name: clip(name, types.MaxIDLength), Value: v})
	})
	return flags
}

// clip truncates s to at most max runes. Clipping by rune keeps truncated
// strings valid UTF-8.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
