// Package loader materializes a World from a declarative game document.
// Input is either a JSON/YAML document (the .advgpt schema) or a
// declarative Lua file; both produce the same World. Loading is tolerant
// by policy: only unreadable input or invalid syntax fails, everything
// else degrades to defaults and silent truncation.
package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/nathoo/adventure/document"
	"github.com/nathoo/adventure/types"
)

// Load reads a game file and builds the World. Files ending in .lua go
// through the Lua front-end; everything else is parsed as a JSON/YAML
// document.
func Load(path string) (*types.World, error) {
	if strings.HasSuffix(path, ".lua") {
		return LoadLua(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading game file: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes parses document bytes and builds the World.
func LoadBytes(data []byte) (*types.World, error) {
	doc, err := document.Parse(data)
	if err != nil {
		return nil, err
	}
	return LoadDocument(doc), nil
}

// LoadDocument builds a World from an already-parsed document. Every
// section is optional; a nil or empty document yields an empty World.
func LoadDocument(doc *document.Node) *types.World {
	world := &types.World{}

	if meta := doc.Obj("meta"); meta != nil {
		world.Meta = types.Meta{
			Title:       clip(meta.Str("title"), types.MaxShortText),
			Author:      clip(meta.Str("author"), types.MaxShortText),
			Description: clip(meta.Str("description"), types.MaxLongText),
			Version:     clip(meta.Str("version"), types.MaxShortText),
		}
	}

	world.StartLocation = clip(doc.Str("start_location"), types.MaxIDLength)

	doc.Obj("locations").Each(func(id string, sub *document.Node) {
		if len(world.Locations) >= types.MaxLocations {
			return
		}
		if loc, ok := DecodeLocation(sub, id); ok {
			world.Locations = append(world.Locations, loc)
		}
	})

	doc.Obj("inventory_items").Each(func(id string, sub *document.Node) {
		if len(world.Items) >= types.MaxInventoryItems {
			return
		}
		if item, ok := DecodeItem(sub, id); ok {
			world.Items = append(world.Items, item)
		}
	})

	world.GameFlags = decodeFlags(doc.Obj("game_flags"))

	if player := doc.Obj("player"); player != nil {
		if cur := player.Str("current_location"); cur != "" {
			world.Player.CurrentLocation = clip(cur, types.MaxIDLength)
		} else {
			world.Player.CurrentLocation = world.StartLocation
		}
		for _, entry := range player.Seq("inventory") {
			if len(world.Player.Inventory) >= types.MaxInventoryItems {
				break
			}
			if id, ok := entry.AsStr(); ok {
				world.Player.Inventory = append(world.Player.Inventory, clip(id, types.MaxIDLength))
			}
		}
		world.Player.Flags = decodeFlags(player.Obj("flags"))
	} else {
		world.Player.CurrentLocation = world.StartLocation
	}

	return world
}
