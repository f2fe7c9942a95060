package loader

import (
	"fmt"

	"github.com/nathoo/adventure/types"
	lua "github.com/yuin/gopher-lua"
)

// The Lua front-end lets authors write world content as declarative tables
// instead of JSON. The file runs once in a sandboxed VM that only collects
// definitions; the VM is discarded before the World is returned, so there
// is no scripting at runtime.

// rawDef holds an id-keyed definition table before compilation.
type rawDef struct {
	id    string
	table *lua.LTable
}

// luaCollector accumulates definitions in execution order.
type luaCollector struct {
	meta      *lua.LTable
	start     string
	locations []rawDef
	items     []rawDef
	gameFlags *lua.LTable
	player    *lua.LTable
}

// LoadLua executes a declarative Lua world file and builds the World.
func LoadLua(path string) (*types.World, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &luaCollector{}
	registerWorldAPI(L, coll)

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("executing %s: %w", path, err)
	}

	return coll.build(), nil
}

// registerWorldAPI installs the declarative constructors as globals.
func registerWorldAPI(L *lua.LState, coll *luaCollector) {
	// Meta { title = "...", author = "...", ... }
	L.SetGlobal("Meta", L.NewFunction(func(L *lua.LState) int {
		coll.meta = L.CheckTable(1)
		return 0
	}))

	// StartAt "location_id"
	L.SetGlobal("StartAt", L.NewFunction(func(L *lua.LState) int {
		coll.start = L.CheckString(1)
		return 0
	}))

	// Location "id" { ... } — curried: Location("id") returns a function
	// that takes the definition table.
	L.SetGlobal("Location", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.locations = append(coll.locations, rawDef{id: id, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))

	// Item "id" { ... } — curried.
	L.SetGlobal("Item", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.items = append(coll.items, rawDef{id: id, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))

	// GameFlags { flag_name = true, ... }
	L.SetGlobal("GameFlags", L.NewFunction(func(L *lua.LState) int {
		coll.gameFlags = L.CheckTable(1)
		return 0
	}))

	// Player { current_location = "...", inventory = {...}, flags = {...} }
	L.SetGlobal("Player", L.NewFunction(func(L *lua.LState) int {
		coll.player = L.CheckTable(1)
		return 0
	}))
}

// build compiles the collected tables into a World, applying the same
// capacity and truncation rules as the document loader.
func (c *luaCollector) build() *types.World {
	world := &types.World{}

	if c.meta != nil {
		world.Meta = types.Meta{
			Title:       clip(getString(c.meta, "title"), types.MaxShortText),
			Author:      clip(getString(c.meta, "author"), types.MaxShortText),
			Description: clip(getString(c.meta, "description"), types.MaxLongText),
			Version:     clip(getString(c.meta, "version"), types.MaxShortText),
		}
	}
	world.StartLocation = clip(c.start, types.MaxIDLength)

	for _, raw := range c.locations {
		if len(world.Locations) >= types.MaxLocations {
			break
		}
		world.Locations = append(world.Locations, compileLocation(raw))
	}

	for _, raw := range c.items {
		if len(world.Items) >= types.MaxInventoryItems {
			break
		}
		world.Items = append(world.Items, types.Item{
			ID:          clip(raw.id, types.MaxIDLength),
			Name:        clip(getString(raw.table, "name"), types.MaxShortText),
			Description: clip(getString(raw.table, "description"), types.MaxLongText),
			Takeable:    getBool(raw.table, "takeable"),
			Useable:     getBool(raw.table, "useable"),
			UseText:     clip(getString(raw.table, "use_text"), types.MaxLongText),
		})
	}

	world.GameFlags = tableToFlags(c.gameFlags)

	if c.player != nil {
		if cur := getString(c.player, "current_location"); cur != "" {
			world.Player.CurrentLocation = clip(cur, types.MaxIDLength)
		} else {
			world.Player.CurrentLocation = world.StartLocation
		}
		if inv := getTable(c.player, "inventory"); inv != nil {
			for i := 1; i <= inv.MaxN(); i++ {
				if len(world.Player.Inventory) >= types.MaxInventoryItems {
					break
				}
				if s, ok := inv.RawGetInt(i).(lua.LString); ok {
					world.Player.Inventory = append(world.Player.Inventory, clip(string(s), types.MaxIDLength))
				}
			}
		}
		world.Player.Flags = tableToFlags(getTable(c.player, "flags"))
	} else {
		world.Player.CurrentLocation = world.StartLocation
	}

	return world
}

func compileLocation(raw rawDef) types.Location {
	tbl := raw.table
	loc := types.Location{
		ID:             clip(raw.id, types.MaxIDLength),
		Title:          clip(getString(tbl, "title"), types.MaxShortText),
		Description:    clip(getString(tbl, "description"), types.MaxLongText),
		Image:          clip(getString(tbl, "image"), types.MaxShortText),
		FirstVisitText: clip(getString(tbl, "first_visit_text"), types.MaxLongText),
		Visited:        getBool(tbl, "visited"),
	}

	if exits := getTable(tbl, "exits"); exits != nil {
		exits.ForEach(func(k, v lua.LValue) {
			if len(loc.Exits) >= types.MaxExits {
				return
			}
			dir, ok := k.(lua.LString)
			if !ok {
				return
			}
			target, ok := v.(lua.LString)
			if !ok {
				return
			}
			loc.Exits = append(loc.Exits, types.Exit{
				Direction: clip(string(dir), types.MaxIDLength),
				Target:    clip(string(target), types.MaxIDLength),
			})
		})
	}

	if items := getTable(tbl, "items"); items != nil {
		for i := 1; i <= items.MaxN(); i++ {
			if len(loc.Items) >= types.MaxLocationItems {
				break
			}
			if s, ok := items.RawGetInt(i).(lua.LString); ok {
				loc.Items = append(loc.Items, clip(string(s), types.MaxIDLength))
			}
		}
	}

	loc.FlagsRequired = tableToFlags(getTable(tbl, "flags_required"))
	loc.FlagsSet = tableToFlags(getTable(tbl, "flags_set"))

	return loc
}

// tableToFlags converts a Lua table of name → bool into a flag list,
// skipping non-boolean values and truncating at the namespace cap.
func tableToFlags(tbl *lua.LTable) []types.Flag {
	if tbl == nil {
		return nil
	}
	var flags []types.Flag
	tbl.ForEach(func(k, v lua.LValue) {
		if len(flags) >= types.MaxFlags {
			return
		}
		name, ok := k.(lua.LString)
		if !ok {
			return
		}
		value, ok := v.(lua.LBool)
		if !ok {
			return
		}
		flags = append(flags, types.Flag{Name: clip(string(name), types.MaxIDLength), Value: bool(value)})
	})
	return flags
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or false if missing.
func getBool(tbl *lua.LTable, key string) bool {
	if b, ok := tbl.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return false
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// openSafeLibs opens only the side-effect-free subset of the Lua standard
// libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that could reach outside the VM.
func sandbox(L *lua.LState) {
	for _, name := range []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage", "print",
	} {
		L.SetGlobal(name, lua.LNil)
	}
}
