package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jalvik/palaver/types"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleTurnTag = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleSpeaker = lipgloss.NewStyle().
			Bold(true)

	styleNeutral = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleFriendly = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	styleWary = lipgloss.NewStyle().
			Foreground(lipgloss.Color("221"))

	styleHostile = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	styleTopic = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// toneStyle maps an utterance tone to its line style.
func toneStyle(t types.Tone) lipgloss.Style {
	switch t {
	case types.ToneFriendly:
		return styleFriendly
	case types.ToneWary:
		return styleWary
	case types.ToneHostile:
		return styleHostile
	default:
		return styleNeutral
	}
}
