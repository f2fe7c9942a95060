// Package types defines the shared data structures for the adventure engine.
// This package contains only type definitions and capacity constants, no
// logic and no methods.
package types

// Capacity limits shared with the .advgpt document schema. Decoders truncate
// silently at these bounds; they never reject.
const (
	MaxExits          = 8    // exits per location
	MaxLocationItems  = 32   // item refs per location
	MaxLocations      = 256  // locations per world
	MaxInventoryItems = 64   // catalog entries, and player inventory slots
	MaxFlags          = 128  // flags per namespace (player, game)
	MaxIDLength       = 64   // identifier strings, in runes
	MaxShortText      = 256  // titles, names, image refs
	MaxLongText       = 1024 // descriptions, first-visit and use text
)

// Intent is the parsed representation of a player command.
type Intent struct {
	Verb   string
	Object string // optional
}

// Exit is a directed edge from a location to another location's identifier.
// Target is a bare identifier, resolved at traversal time; it may dangle.
type Exit struct {
	Direction string
	Target    string
}

// Flag is a named boolean switch.
type Flag struct {
	Name  string
	Value bool
}

// Location is a navigable node in the world.
type Location struct {
	ID             string // assigned from the document's map key
	Title          string
	Description    string
	Image          string
	FirstVisitText string
	Visited        bool

	Exits []Exit
	Items []string // item identifiers present here

	// Access gate: every pair must match the current flag state for the
	// location to be considered accessible.
	FlagsRequired []Flag
	// Declared in the schema but never applied automatically.
	FlagsSet []Flag
}

// Item is a catalog entry. References to it (location item lists, player
// inventory) are bare identifier strings; the catalog is the single source
// of truth for item metadata.
type Item struct {
	ID          string
	Name        string
	Description string
	Takeable    bool
	Useable     bool
	UseText     string
}

// Meta holds free-text world metadata.
type Meta struct {
	Title       string
	Author      string
	Description string
	Version     string
}

// Player holds the player's mutable state.
type Player struct {
	CurrentLocation string
	Inventory       []string // item identifiers, no duplicates
	Flags           []Flag   // player-scoped namespace
}

// World is the complete in-memory game state: the aggregate root owning all
// locations, the item catalog, the game-scoped flags, and the player.
// Locations and items keep document order; lookups are linear scans.
type World struct {
	Meta          Meta
	StartLocation string

	Locations []Location
	Items     []Item
	GameFlags []Flag // game-scoped namespace

	Player Player
}

// Result is the output of a single turn.
type Result struct {
	Output []string
	Quit   bool // player asked to leave the game
}
