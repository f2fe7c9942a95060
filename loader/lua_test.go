package loader

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleLuaGame = `
Meta {
	title = "Cave of Trials",
	author = "Nadia",
	version = "0.1.0",
}

StartAt "start"

Location "start" {
	title = "Trailhead",
	description = "A worn path leads north into the dark.",
	exits = { north = "cave" },
	items = { "lantern" },
}

Location "cave" {
	title = "Cave Mouth",
	first_visit_text = "Your footsteps echo.",
	flags_required = { has_light = true },
}

Item "lantern" {
	name = "Brass Lantern",
	takeable = true,
	useable = true,
	use_text = "The lantern sputters to life.",
}

GameFlags { cave_sealed = false }

Player {
	inventory = { "map" },
	flags = { brave = true },
}
`

func writeLua(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.lua")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLua_FullWorld(t *testing.T) {
	world, err := Load(writeLua(t, sampleLuaGame))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if world.Meta.Title != "Cave of Trials" {
		t.Errorf("title: got %q", world.Meta.Title)
	}
	if world.StartLocation != "start" {
		t.Errorf("start: got %q", world.StartLocation)
	}
	if len(world.Locations) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(world.Locations))
	}
	if world.Locations[0].ID != "start" || world.Locations[1].ID != "cave" {
		t.Errorf("declaration order not kept: %q, %q",
			world.Locations[0].ID, world.Locations[1].ID)
	}
	if len(world.Locations[0].Exits) != 1 || world.Locations[0].Exits[0].Target != "cave" {
		t.Errorf("exits: got %+v", world.Locations[0].Exits)
	}
	if len(world.Items) != 1 || !world.Items[0].Takeable {
		t.Errorf("items: got %+v", world.Items)
	}
	if len(world.Locations[1].FlagsRequired) != 1 {
		t.Errorf("flags_required: got %+v", world.Locations[1].FlagsRequired)
	}
}

func TestLoadLua_PlayerDefaultsToStart(t *testing.T) {
	world, err := Load(writeLua(t, sampleLuaGame))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if world.Player.CurrentLocation != "start" {
		t.Errorf("expected player at start, got %q", world.Player.CurrentLocation)
	}
	if len(world.Player.Flags) != 1 || world.Player.Flags[0].Name != "brave" {
		t.Errorf("player flags: got %+v", world.Player.Flags)
	}
}

func TestLoadLua_NoPlayerSection(t *testing.T) {
	world, err := Load(writeLua(t, `StartAt "hall"`+"\n"+`Location "hall" {}`))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if world.Player.CurrentLocation != "hall" {
		t.Errorf("expected player at hall, got %q", world.Player.CurrentLocation)
	}
}

func TestLoadLua_SyntaxErrorFails(t *testing.T) {
	if _, err := Load(writeLua(t, `Location "broken" {`)); err == nil {
		t.Fatal("expected error for broken Lua")
	}
}

func TestLoadLua_SandboxBlocksFileAccess(t *testing.T) {
	if _, err := Load(writeLua(t, `dofile("/etc/passwd")`)); err == nil {
		t.Fatal("expected sandboxed VM to reject dofile")
	}
}
