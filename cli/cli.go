// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the adventure engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/adventure/engine"
	"github.com/nathoo/adventure/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	World     *types.World
	In        io.Reader
	Out       io.Writer
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
	turns     int
}

// New creates a CLI driving the given world.
func New(w *types.World) *CLI {
	return &CLI{
		World: w,
		In:    os.Stdin,
		Out:   os.Stdout,
	}
}

// Run starts the game loop. It shows the game header, describes the
// starting location, then loops: prompt → input → dispatch → output.
func (c *CLI) Run() {
	if c.World.Meta.Title != "" {
		c.printLine(c.World.Meta.Title)
		if c.World.Meta.Author != "" {
			c.printLine("by " + c.World.Meta.Author)
		}
		c.printLine("")
	}
	if c.World.Meta.Description != "" {
		c.printLine(c.World.Meta.Description)
		c.printLine("")
	}

	c.printLines(engine.Describe(c.World))

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last game command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		result := engine.Step(c.World, input)
		c.turns++
		c.printLines(result.Output)
		if result.Quit {
			return
		}
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	switch strings.Fields(input)[0] {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", input))
	}

	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /quit         — Exit game",
		"  /help         — Show this help",
		"  /state        — Debug: dump current state",
		"",
		"Game commands:",
		"  look (l)            — Describe the location",
		"  examine <thing> (x) — Look closely at something",
		"  go/walk <dir>       — Move (or just type n/s/e/w/u/d)",
		"  take/get <item>     — Pick something up",
		"  drop <item>         — Put something down",
		"  use <item>          — Use something you carry",
		"  inventory (i)       — Check what you're carrying",
		"  wait (z)            — Let time pass",
		"  again (g)           — Repeat your last command",
		"  quit (q)            — Leave the game",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	w := c.World
	c.printSystem(fmt.Sprintf("Turn: %d", c.turns))
	c.printSystem(fmt.Sprintf("Location: %s", w.Player.CurrentLocation))
	c.printSystem(fmt.Sprintf("Inventory: %v", w.Player.Inventory))
	if len(w.Player.Flags) > 0 {
		c.printSystem(fmt.Sprintf("Player flags: %v", flagPairs(w.Player.Flags)))
	}
	if len(w.GameFlags) > 0 {
		c.printSystem(fmt.Sprintf("Game flags: %v", flagPairs(w.GameFlags)))
	}
}

func flagPairs(flags []types.Flag) []string {
	pairs := make([]string, 0, len(flags))
	for _, f := range flags {
		pairs = append(pairs, fmt.Sprintf("%s=%t", f.Name, f.Value))
	}
	return pairs
}

func (c *CLI) printLines(lines []string) {
	for _, line := range lines {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
