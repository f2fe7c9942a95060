// Adventure is a data-driven engine for text adventures.
// Usage: adventure [--version] [--plain] [--check] [--script <file>] <game_file>
package main

import (
	"fmt"
	"os"

	"github.com/nathoo/adventure/cli"
	"github.com/nathoo/adventure/loader"
	"github.com/nathoo/adventure/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	check := false
	var gameFile string
	var scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("adventure %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--check":
			check = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		default:
			if gameFile == "" {
				gameFile = args[i]
			}
		}
	}

	if gameFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: adventure [--version] [--plain] [--check] [--script <file>] <game_file>\n")
		os.Exit(1)
	}

	// Load game content (JSON/YAML document or Lua declaration).
	world, err := loader.Load(gameFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game: %v\n", err)
		os.Exit(1)
	}

	// Consistency warnings go to stderr so they never mix with game output.
	warnings := loader.Lint(world)
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}
	if check {
		if len(warnings) > 0 {
			os.Exit(1)
		}
		fmt.Printf("%s: ok\n", gameFile)
		return
	}

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(world)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		cli.New(world).Run()
		return
	}

	if err := tui.Run(world); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
