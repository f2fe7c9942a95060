// Package parser converts command strings into Intent structs.
// Intentionally dumb: no NLP, just alias tables and word splitting.
package parser

import (
	"strings"

	"github.com/nathoo/adventure/types"
)

var directionExpansions = map[string]string{
	"n":  "north",
	"s":  "south",
	"e":  "east",
	"w":  "west",
	"ne": "northeast",
	"nw": "northwest",
	"se": "southeast",
	"sw": "southwest",
	"u":  "up",
	"d":  "down",
}

// Full direction names that are standalone shortcuts for "go <dir>".
var directionNames = map[string]bool{
	"north": true, "south": true, "east": true, "west": true,
	"northeast": true, "northwest": true, "southeast": true, "southwest": true,
	"up": true, "down": true,
}

var verbAliases = map[string]string{
	// Look / Examine
	"l":       "look",
	"x":       "examine",
	"inspect": "examine",
	"check":   "examine",
	"study":   "examine",
	"read":    "examine",

	// Movement
	"walk":   "go",
	"run":    "go",
	"move":   "go",
	"head":   "go",
	"enter":  "go",
	"travel": "go",

	// Take / Get
	"get":   "take",
	"grab":  "take",
	"carry": "take",

	// Drop
	"discard": "drop",

	// Use
	"light":    "use",
	"activate": "use",

	// Miscellaneous
	"inv":  "inventory",
	"i":    "inventory",
	"z":    "wait",
	"exit": "quit",
	"q":    "quit",
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true,
}

// Parse converts a raw command string into an Intent.
func Parse(input string) types.Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Intent{}
	}

	words := strings.Fields(strings.ToLower(input))

	// Direction shortcut: bare "n", "south", etc. → go <direction>
	if len(words) == 1 {
		if dir, ok := directionExpansions[words[0]]; ok {
			return types.Intent{Verb: "go", Object: dir}
		}
		if directionNames[words[0]] {
			return types.Intent{Verb: "go", Object: words[0]}
		}
	}

	words = expandMultiWordVerbs(words)

	if alias, ok := verbAliases[words[0]]; ok {
		words[0] = alias
	}

	verb := words[0]
	object := strings.Join(stripArticles(words[1:]), " ")

	// "go n" and friends: expand the direction shorthand too.
	if verb == "go" {
		if dir, ok := directionExpansions[object]; ok {
			object = dir
		}
	}

	return types.Intent{Verb: verb, Object: object}
}

// expandMultiWordVerbs handles "look at", "pick up", "put down".
func expandMultiWordVerbs(words []string) []string {
	if len(words) < 2 {
		return words
	}

	switch words[0] {
	case "look":
		if words[1] == "at" || words[1] == "in" || words[1] == "under" {
			return append([]string{"examine"}, words[2:]...)
		}
	case "pick":
		if words[1] == "up" {
			return append([]string{"take"}, words[2:]...)
		}
	case "put":
		if words[1] == "down" {
			return append([]string{"drop"}, words[2:]...)
		}
	}

	return words
}

// stripArticles removes "the", "a", "an" from the word list.
func stripArticles(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !articles[w] {
			result = append(result, w)
		}
	}
	return result
}
