package engine

import (
	"errors"

	"github.com/nathoo/adventure/types"
)

// Inventory failure kinds.
var (
	ErrInventoryFull  = errors.New("inventory is full")
	ErrAlreadyCarried = errors.New("item already in inventory")
	ErrNotCarried     = errors.New("item not in inventory")
)

// HasItem reports whether the player carries the given item identifier.
func HasItem(w *types.World, id string) bool {
	for _, have := range w.Player.Inventory {
		if have == id {
			return true
		}
	}
	return false
}

// AddItem appends an item identifier to the player's inventory. It fails
// when the inventory is at capacity or the identifier is already present.
// The identifier is not checked against the catalog — the catalog is
// descriptive metadata, not a referential boundary.
func AddItem(w *types.World, id string) error {
	if len(w.Player.Inventory) >= types.MaxInventoryItems {
		return ErrInventoryFull
	}
	if HasItem(w, id) {
		return ErrAlreadyCarried
	}
	w.Player.Inventory = append(w.Player.Inventory, id)
	return nil
}

// RemoveItem removes an item identifier from the player's inventory,
// preserving the relative order of the remaining entries.
func RemoveItem(w *types.World, id string) error {
	for i, have := range w.Player.Inventory {
		if have == id {
			w.Player.Inventory = append(w.Player.Inventory[:i], w.Player.Inventory[i+1:]...)
			return nil
		}
	}
	return ErrNotCarried
}
