package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/adventure/engine"
)

// locationDisplayName prefers the authored title, deriving one from the
// identifier when absent: "cave_mouth" -> "Cave Mouth".
func (m Model) locationDisplayName() string {
	loc := engine.CurrentLocation(m.world)
	if loc == nil {
		return m.world.Player.CurrentLocation
	}
	if loc.Title != "" {
		return loc.Title
	}
	words := strings.Split(loc.ID, "_")
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// renderStatusBar produces a full-width inverted status line showing
// current location, exits, inventory, and turn count.
func (m Model) renderStatusBar() string {
	var dirs []string
	if loc := engine.CurrentLocation(m.world); loc != nil {
		for _, exit := range loc.Exits {
			dirs = append(dirs, exit.Direction)
		}
	}

	left := fmt.Sprintf(" %s | Exits: %s", m.locationDisplayName(), strings.Join(dirs, ","))
	right := fmt.Sprintf("T:%d ", m.turns)

	// Show inventory item names if they fit, otherwise just the count.
	if invCount := len(m.world.Player.Inventory); invCount > 0 {
		names := make([]string, 0, invCount)
		for _, id := range m.world.Player.Inventory {
			name := id
			if item := engine.Item(m.world, id); item != nil && item.Name != "" {
				name = item.Name
			}
			names = append(names, name)
		}
		candidate := fmt.Sprintf("Inv: %s | T:%d ", strings.Join(names, ", "), m.turns)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | T:%d ", invCount, m.turns)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
