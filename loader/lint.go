package loader

import (
	"fmt"

	"github.com/nathoo/adventure/types"
)

// Lint checks a loaded World for referential problems the loader
// tolerates: dangling exit targets, item references missing from the
// catalog, an unknown start location. The result is advisory. A world
// with warnings still plays; the engine reports dangling references when
// they are actually followed.
func Lint(world *types.World) []string {
	var warnings []string

	locs := map[string]bool{}
	for _, loc := range world.Locations {
		locs[loc.ID] = true
	}
	items := map[string]bool{}
	for _, item := range world.Items {
		items[item.ID] = true
	}

	if world.StartLocation == "" {
		warnings = append(warnings, "start_location is not set")
	} else if !locs[world.StartLocation] {
		warnings = append(warnings, fmt.Sprintf(
			"start_location %q does not match any location", world.StartLocation))
	}

	for _, loc := range world.Locations {
		for _, exit := range loc.Exits {
			if !locs[exit.Target] {
				warnings = append(warnings, fmt.Sprintf(
					"location %q exit %q points to unknown location %q",
					loc.ID, exit.Direction, exit.Target))
			}
		}
		for _, itemID := range loc.Items {
			if !items[itemID] {
				warnings = append(warnings, fmt.Sprintf(
					"location %q lists item %q missing from the catalog", loc.ID, itemID))
			}
		}
	}

	if world.Player.CurrentLocation != "" && !locs[world.Player.CurrentLocation] {
		warnings = append(warnings, fmt.Sprintf(
			"player location %q does not match any location", world.Player.CurrentLocation))
	}
	for _, itemID := range world.Player.Inventory {
		if !items[itemID] {
			warnings = append(warnings, fmt.Sprintf(
				"player inventory item %q missing from the catalog", itemID))
		}
	}

	return warnings
}
