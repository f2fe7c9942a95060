package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nathoo/adventure/engine/parser"
	"github.com/nathoo/adventure/types"
)

// Step processes one player command against the World and returns the
// text to show. Step is the layer that enforces the advisory requirement
// gate: it checks a target location's required flags before moving, which
// the core Move deliberately does not.
func Step(w *types.World, input string) types.Result {
	intent := parser.Parse(input)

	switch intent.Verb {
	case "":
		return say("What do you want to do?")
	case "go":
		return stepGo(w, intent.Object)
	case "look":
		return stepLook(w)
	case "examine":
		return stepExamine(w, intent.Object)
	case "take":
		return stepTake(w, intent.Object)
	case "drop":
		return stepDrop(w, intent.Object)
	case "use":
		return stepUse(w, intent.Object)
	case "inventory":
		return stepInventory(w)
	case "wait":
		return say("Time passes.")
	case "help":
		return stepHelp()
	case "quit":
		return types.Result{Output: []string{"Goodbye."}, Quit: true}
	default:
		return say(fmt.Sprintf("You don't know how to %q.", intent.Verb))
	}
}

func stepGo(w *types.World, direction string) types.Result {
	if direction == "" {
		return say("Go where?")
	}

	// Pre-resolve the exit target: the requirement gate is checked here,
	// before entry, and first-visit text has to be captured before Move
	// marks the target visited.
	var firstVisit string
	if current := CurrentLocation(w); current != nil {
		for i := range current.Exits {
			if !strings.EqualFold(current.Exits[i].Direction, direction) {
				continue
			}
			if target := Location(w, current.Exits[i].Target); target != nil {
				if !RequirementsMet(w, target) {
					return say(fmt.Sprintf("Something bars the way %s.", direction))
				}
				if !target.Visited {
					firstVisit = target.FirstVisitText
				}
			}
			break
		}
	}

	switch err := Move(w, direction); {
	case errors.Is(err, ErrNoCurrentLocation):
		return say("You are nowhere you recognize.")
	case errors.Is(err, ErrNoExit):
		return say(fmt.Sprintf("You can't go %s from here.", direction))
	case errors.Is(err, ErrDanglingExit):
		return say(fmt.Sprintf("The way %s leads nowhere.", direction))
	}

	result := say(fmt.Sprintf("You go %s.", direction))
	if firstVisit != "" {
		result.Output = append(result.Output, firstVisit)
	}
	result.Output = append(result.Output, Describe(w)...)
	return result
}

func stepLook(w *types.World) types.Result {
	return types.Result{Output: Describe(w)}
}

func stepExamine(w *types.World, object string) types.Result {
	if object == "" {
		return stepLook(w)
	}

	id, item := resolveItem(w, object)
	if id == "" {
		return say(fmt.Sprintf("You see no %s here.", object))
	}
	if item == nil || item.Description == "" {
		return say("You see nothing special about it.")
	}
	return say(item.Description)
}

func stepTake(w *types.World, object string) types.Result {
	if object == "" {
		return say("Take what?")
	}

	current := CurrentLocation(w)
	if current == nil {
		return say("You are nowhere you recognize.")
	}

	id, item := resolveItemIn(w, current.Items, object)
	if id == "" {
		return say(fmt.Sprintf("There is no %s here.", object))
	}
	if item == nil || !item.Takeable {
		return say("You can't take that.")
	}

	switch err := AddItem(w, id); {
	case errors.Is(err, ErrInventoryFull):
		return say("Your hands are full.")
	case errors.Is(err, ErrAlreadyCarried):
		return say("You already have that.")
	}

	removeFromList(&current.Items, id)
	return say(fmt.Sprintf("You take the %s.", displayName(item, id)))
}

func stepDrop(w *types.World, object string) types.Result {
	if object == "" {
		return say("Drop what?")
	}

	id, item := resolveItemIn(w, w.Player.Inventory, object)
	if id == "" {
		return say("You don't have that.")
	}

	current := CurrentLocation(w)
	if current == nil {
		return say("You are nowhere you recognize.")
	}
	if len(current.Items) >= types.MaxLocationItems {
		return say("There is no room to put that down.")
	}

	if err := RemoveItem(w, id); err != nil {
		return say("You don't have that.")
	}
	current.Items = append(current.Items, id)
	return say(fmt.Sprintf("You drop the %s.", displayName(item, id)))
}

func stepUse(w *types.World, object string) types.Result {
	if object == "" {
		return say("Use what?")
	}

	id, item := resolveItemIn(w, w.Player.Inventory, object)
	if id == "" {
		return say("You don't have that.")
	}
	if item == nil || !item.Useable {
		return say("You can't use that.")
	}
	if item.UseText == "" {
		return say("Nothing happens.")
	}
	return say(item.UseText)
}

func stepHelp() types.Result {
	return say(
		"Commands: look (l), examine <thing> (x), go <direction>,",
		"take <item>, drop <item>, use <item>, inventory (i),",
		"wait (z), help, quit (q).",
		"Directions can be typed bare: n, s, e, w, up, down.",
	)
}

func stepInventory(w *types.World) types.Result {
	if len(w.Player.Inventory) == 0 {
		return say("You are carrying nothing.")
	}
	names := make([]string, 0, len(w.Player.Inventory))
	for _, id := range w.Player.Inventory {
		names = append(names, displayName(Item(w, id), id))
	}
	return say("You are carrying: " + strings.Join(names, ", ") + ".")
}

// Describe produces the standard location description: title, description,
// visible items, exits.
func Describe(w *types.World) []string {
	loc := CurrentLocation(w)
	if loc == nil {
		return []string{"You are somewhere unknown."}
	}

	var output []string
	if loc.Title != "" {
		output = append(output, loc.Title)
	}
	if loc.Description != "" {
		output = append(output, loc.Description)
	}

	if len(loc.Items) > 0 {
		names := make([]string, 0, len(loc.Items))
		for _, id := range loc.Items {
			names = append(names, displayName(Item(w, id), id))
		}
		output = append(output, "You see: "+strings.Join(names, ", ")+".")
	}

	if len(loc.Exits) > 0 {
		dirs := make([]string, 0, len(loc.Exits))
		for _, exit := range loc.Exits {
			dirs = append(dirs, exit.Direction)
		}
		output = append(output, "Exits: "+strings.Join(dirs, ", ")+".")
	}

	return output
}

// resolveItem finds an item by identifier or display name among the
// current location's items and the player's inventory.
func resolveItem(w *types.World, object string) (string, *types.Item) {
	if current := CurrentLocation(w); current != nil {
		if id, item := resolveItemIn(w, current.Items, object); id != "" {
			return id, item
		}
	}
	return resolveItemIn(w, w.Player.Inventory, object)
}

// resolveItemIn matches object against a list of item identifiers, by
// identifier first, then by catalog display name, case-insensitively.
func resolveItemIn(w *types.World, ids []string, object string) (string, *types.Item) {
	for _, id := range ids {
		if strings.EqualFold(id, object) {
			return id, Item(w, id)
		}
	}
	for _, id := range ids {
		if item := Item(w, id); item != nil && strings.EqualFold(item.Name, object) {
			return id, item
		}
	}
	return "", nil
}

// removeFromList deletes the first occurrence of id, preserving order.
func removeFromList(ids *[]string, id string) {
	for i, have := range *ids {
		if have == id {
			*ids = append((*ids)[:i], (*ids)[i+1:]...)
			return
		}
	}
}

// displayName prefers the catalog name, falling back to the identifier.
func displayName(item *types.Item, id string) string {
	if item != nil && item.Name != "" {
		return item.Name
	}
	return id
}

func say(lines ...string) types.Result {
	return types.Result{Output: lines}
}
