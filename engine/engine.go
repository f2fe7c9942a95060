// Package engine implements the operations that query and mutate a loaded
// World: location lookup, directional movement, inventory, flags, and the
// requirement gate. Every operation takes the World explicitly; there is
// no package-level state. Failure kinds are reported as sentinel errors.
// All operations are synchronous, deterministic, and free of I/O.
package engine

import (
	"errors"
	"strings"

	"github.com/nathoo/adventure/types"
)

// Movement failure kinds. These are data conditions reported to the
// caller, never panics: a world with a dangling exit still plays.
var (
	// ErrNoCurrentLocation means the player's location identifier does not
	// resolve to any location.
	ErrNoCurrentLocation = errors.New("no current location")
	// ErrNoExit means the current location has no exit in the requested
	// direction.
	ErrNoExit = errors.New("no exit in that direction")
	// ErrDanglingExit means the matched exit's target identifier does not
	// resolve; the player stays where they are.
	ErrDanglingExit = errors.New("exit target does not exist")
)

// Location returns the location with the given identifier, or nil.
// Matching is a linear, case-sensitive scan in document order; first match
// wins.
func Location(w *types.World, id string) *types.Location {
	for i := range w.Locations {
		if w.Locations[i].ID == id {
			return &w.Locations[i]
		}
	}
	return nil
}

// CurrentLocation returns the location the player is in, or nil when the
// player's location identifier is unknown.
func CurrentLocation(w *types.World) *types.Location {
	return Location(w, w.Player.CurrentLocation)
}

// Item returns the catalog entry with the given identifier, or nil.
func Item(w *types.World, id string) *types.Item {
	for i := range w.Items {
		if w.Items[i].ID == id {
			return &w.Items[i]
		}
	}
	return nil
}

// Move walks the player through the exit matching direction. Direction
// matching is case-insensitive against the current location's exits in
// stored order; the first match wins. On success the player's location is
// updated and the target is marked visited. On any failure the player
// stays put.
func Move(w *types.World, direction string) error {
	current := CurrentLocation(w)
	if current == nil {
		return ErrNoCurrentLocation
	}

	for i := range current.Exits {
		if !strings.EqualFold(current.Exits[i].Direction, direction) {
			continue
		}
		target := Location(w, current.Exits[i].Target)
		if target == nil {
			return ErrDanglingExit
		}
		w.Player.CurrentLocation = target.ID
		target.Visited = true
		return nil
	}

	return ErrNoExit
}
