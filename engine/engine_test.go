package engine

import (
	"errors"
	"testing"

	"github.com/nathoo/adventure/types"
)

func testWorld() *types.World {
	return &types.World{
		Meta:          types.Meta{Title: "Test World"},
		StartLocation: "start",
		Locations: []types.Location{
			{
				ID:          "start",
				Title:       "Trailhead",
				Description: "A worn path leads north into the dark.",
				Exits: []types.Exit{
					{Direction: "North", Target: "cave"},
					{Direction: "east", Target: "ghost"},
				},
				Items: []string{"lantern"},
			},
			{
				ID:             "cave",
				Title:          "Cave Mouth",
				Description:    "Cold air drifts out of the stone.",
				FirstVisitText: "Your footsteps echo as you enter for the first time.",
			},
		},
		Items: []types.Item{
			{ID: "lantern", Name: "Brass Lantern", Description: "Dented but serviceable.",
				Takeable: true, Useable: true, UseText: "The lantern sputters to life."},
			{ID: "anvil", Name: "Iron Anvil", Description: "Far too heavy."},
		},
		Player: types.Player{CurrentLocation: "start"},
	}
}

func TestLocation_FindsById(t *testing.T) {
	w := testWorld()

	loc := Location(w, "cave")
	if loc == nil || loc.Title != "Cave Mouth" {
		t.Fatalf("expected cave, got %+v", loc)
	}
}

func TestLocation_MatchIsCaseSensitive(t *testing.T) {
	w := testWorld()

	if Location(w, "Cave") != nil {
		t.Error("lookup should be case-sensitive")
	}
}

func TestLocation_MissingIsNil(t *testing.T) {
	w := testWorld()

	if Location(w, "nowhere") != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestCurrentLocation_FollowsPlayer(t *testing.T) {
	w := testWorld()

	loc := CurrentLocation(w)
	if loc == nil || loc.ID != "start" {
		t.Fatalf("expected start, got %+v", loc)
	}
}

func TestCurrentLocation_UnknownIdIsNil(t *testing.T) {
	w := testWorld()
	w.Player.CurrentLocation = "limbo"

	if CurrentLocation(w) != nil {
		t.Error("expected nil for unknown player location")
	}
}

func TestMove_CaseInsensitiveDirection(t *testing.T) {
	w := testWorld()

	// Exit stored as "North", command arrives as "north".
	if err := Move(w, "north"); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if w.Player.CurrentLocation != "cave" {
		t.Errorf("expected player in cave, got %q", w.Player.CurrentLocation)
	}
}

func TestMove_MarksTargetVisited(t *testing.T) {
	w := testWorld()

	if err := Move(w, "NORTH"); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if !Location(w, "cave").Visited {
		t.Error("target should be marked visited")
	}
}

func TestMove_NoExitLeavesStateUnchanged(t *testing.T) {
	w := testWorld()

	err := Move(w, "west")
	if !errors.Is(err, ErrNoExit) {
		t.Fatalf("expected ErrNoExit, got %v", err)
	}
	if w.Player.CurrentLocation != "start" {
		t.Errorf("player moved to %q", w.Player.CurrentLocation)
	}
	if Location(w, "cave").Visited {
		t.Error("no location should be marked visited")
	}
}

func TestMove_DanglingExitReportedDistinctly(t *testing.T) {
	w := testWorld()

	err := Move(w, "east")
	if !errors.Is(err, ErrDanglingExit) {
		t.Fatalf("expected ErrDanglingExit, got %v", err)
	}
	if w.Player.CurrentLocation != "start" {
		t.Errorf("player advanced to nonexistent location %q", w.Player.CurrentLocation)
	}
}

func TestMove_NoCurrentLocation(t *testing.T) {
	w := testWorld()
	w.Player.CurrentLocation = "limbo"

	if err := Move(w, "north"); !errors.Is(err, ErrNoCurrentLocation) {
		t.Fatalf("expected ErrNoCurrentLocation, got %v", err)
	}
}

func TestMove_DuplicateDirectionFirstWins(t *testing.T) {
	w := testWorld()
	w.Locations[0].Exits = []types.Exit{
		{Direction: "down", Target: "cave"},
		{Direction: "Down", Target: "ghost"},
	}

	if err := Move(w, "down"); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if w.Player.CurrentLocation != "cave" {
		t.Errorf("expected first exit in storage order to win, got %q", w.Player.CurrentLocation)
	}
}

func TestItem_CatalogLookup(t *testing.T) {
	w := testWorld()

	if item := Item(w, "lantern"); item == nil || item.Name != "Brass Lantern" {
		t.Fatalf("expected lantern, got %+v", item)
	}
	if Item(w, "phantom") != nil {
		t.Error("expected nil for unknown item")
	}
}
