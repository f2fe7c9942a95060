package engine

import "github.com/nathoo/adventure/types"

// Flags live in two independent namespaces: player-scoped and game-scoped.
// Each is a flat, ordered list with first-match-wins lookup, capped at
// types.MaxFlags entries.

// Flag returns the value of a named flag, checking the player namespace
// first, then the game namespace. An absent flag reads as false, which is
// indistinguishable from an explicit false.
func Flag(w *types.World, name string) bool {
	for _, f := range w.Player.Flags {
		if f.Name == name {
			return f.Value
		}
	}
	for _, f := range w.GameFlags {
		if f.Name == name {
			return f.Value
		}
	}
	return false
}

// SetFlag updates a named flag. An existing player-namespace entry is
// updated in place; otherwise an existing game-namespace entry is updated
// in place; otherwise a new entry is created in the player namespace.
// New flags are never created in the game namespace: game flags exist
// only if the world document declared them. At capacity the set is a
// silent no-op.
func SetFlag(w *types.World, name string, value bool) {
	for i := range w.Player.Flags {
		if w.Player.Flags[i].Name == name {
			w.Player.Flags[i].Value = value
			return
		}
	}
	for i := range w.GameFlags {
		if w.GameFlags[i].Name == name {
			w.GameFlags[i].Value = value
			return
		}
	}
	if len(w.Player.Flags) < types.MaxFlags {
		w.Player.Flags = append(w.Player.Flags, types.Flag{Name: name, Value: value})
	}
}

// RequirementsMet reports whether every required flag on the location
// matches the current flag state. A location with no requirements is
// always accessible. The check is advisory: Move never calls it, callers
// decide whether to enforce it before entry.
func RequirementsMet(w *types.World, loc *types.Location) bool {
	if loc == nil {
		return true
	}
	for _, req := range loc.FlagsRequired {
		if Flag(w, req.Name) != req.Value {
			return false
		}
	}
	return true
}
