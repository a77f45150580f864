package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing the
// current turn, active conversation count, and run state.
func (m Model) renderStatusBar() string {
	state := "running"
	if m.paused {
		state = "paused"
	}

	left := fmt.Sprintf(" palaver | turn %d | talks %d | %s",
		m.world.CurrentTurn(), m.orch.ActiveCount(), state)
	right := "space pause · n step · q quit "

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
