package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing
// current room, exits, inventory, and turn count.
func (m Model) renderStatusBar() string {
	s := m.engine.State

	var dirs []string
	for _, d := range m.engine.Graph.ExitDirections(s.Location) {
		dirs = append(dirs, d.String())
	}
	exitStr := strings.Join(dirs, ",")

	left := fmt.Sprintf(" %s | Exits: %s", s.Location, exitStr)
	right := fmt.Sprintf("T:%d ", s.TurnCount)

	// Show inventory items if they fit, otherwise just count.
	if len(s.Inventory) > 0 {
		invStr := strings.Join(s.Inventory, ", ")
		candidate := fmt.Sprintf("Inv: %s | T:%d ", invStr, s.TurnCount)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | T:%d ", len(s.Inventory), s.TurnCount)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
