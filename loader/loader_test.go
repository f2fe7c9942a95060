package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nathoo/adventure/types"
)

const sampleGame = `{
  "meta": {
    "title": "Cave of Trials",
    "author": "Nadia",
    "description": "A short test world.",
    "version": "0.1.0"
  },
  "start_location": "start",
  "locations": {
    "start": {
      "title": "Trailhead",
      "description": "A worn path leads north into the dark.",
      "exits": {"north": "cave"},
      "items": ["lantern"]
    },
    "cave": {
      "title": "Cave Mouth",
      "description": "Cold air drifts out of the stone.",
      "first_visit_text": "Your footsteps echo as you enter for the first time.",
      "flags_required": {"has_light": true}
    }
  },
  "inventory_items": {
    "lantern": {
      "name": "Brass Lantern",
      "description": "Dented but serviceable.",
      "takeable": true,
      "useable": true,
      "use_text": "The lantern sputters to life."
    }
  },
  "game_flags": {"cave_sealed": false},
  "player": {
    "inventory": ["map"]
  }
}`

func TestLoadBytes_FullDocument(t *testing.T) {
	world, err := LoadBytes([]byte(sampleGame))
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
		t.Errorf("location order: got %q, %q", world.Locations[0].ID, world.Locations[1].ID)
	}
	if len(world.Items) != 1 || world.Items[0].ID != "lantern" {
		t.Errorf("items: got %+v", world.Items)
	}
	if len(world.GameFlags) != 1 || world.GameFlags[0].Name != "cave_sealed" || world.GameFlags[0].Value {
		t.Errorf("game flags: got %+v", world.GameFlags)
	}
}

func TestLoadBytes_InvalidSyntaxFails(t *testing.T) {
	if _, err := LoadBytes([]byte(`{"locations": `)); err == nil {
		t.Fatal("expected error for invalid document")
	}
}

func TestLoadBytes_PlayerWithoutLocationDefaultsToStart(t *testing.T) {
	world, err := LoadBytes([]byte(sampleGame))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if world.Player.CurrentLocation != "start" {
		t.Errorf("expected player at start, got %q", world.Player.CurrentLocation)
	}
	if len(world.Player.Inventory) != 1 || world.Player.Inventory[0] != "map" {
		t.Errorf("inventory: got %v", world.Player.Inventory)
	}
}

func TestLoadBytes_MissingPlayerSectionDefaultsToStart(t *testing.T) {
	world, err := LoadBytes([]byte(`{"start_location": "hall"}`))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if world.Player.CurrentLocation != "hall" {
		t.Errorf("expected player at hall, got %q", world.Player.CurrentLocation)
	}
	if len(world.Player.Inventory) != 0 {
		t.Errorf("expected empty inventory, got %v", world.Player.Inventory)
	}
}

func TestLoadBytes_EmptyDocumentYieldsEmptyWorld(t *testing.T) {
	world, err := LoadBytes([]byte(`{}`))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(world.Locations) != 0 || len(world.Items) != 0 {
		t.Errorf("expected empty world, got %d locations, %d items",
			len(world.Locations), len(world.Items))
	}
	if world.Player.CurrentLocation != "" {
		t.Errorf("expected empty player location, got %q", world.Player.CurrentLocation)
	}
}

func TestLoadBytes_LocationCapTruncatesInDocumentOrder(t *testing.T) {
	var b strings.Builder
	b.WriteString(`{"locations": {`)
	for i := 0; i < 300; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `"loc%03d": {"title": "Room %d"}`, i, i)
	}
	b.WriteString(`}}`)

	world, err := LoadBytes([]byte(b.String()))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(world.Locations) != types.MaxLocations {
		t.Fatalf("expected %d locations, got %d", types.MaxLocations, len(world.Locations))
	}
	if world.Locations[0].ID != "loc000" {
		t.Errorf("first location: got %q", world.Locations[0].ID)
	}
	if last := world.Locations[types.MaxLocations-1].ID; last != "loc255" {
		t.Errorf("last location: got %q", last)
	}
}

func TestLoad_FileNotFoundFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_ReadsJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	if err := os.WriteFile(path, []byte(sampleGame), 0o644); err != nil {
		t.Fatal(err)
	}

	world, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if world.Meta.Title != "Cave of Trials" {
		t.Errorf("title: got %q", world.Meta.Title)
	}
}
