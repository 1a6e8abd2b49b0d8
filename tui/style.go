package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/buffetcore/types"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleStatusAlert = lipgloss.NewStyle().
				Background(lipgloss.Color("52")).
				Foreground(lipgloss.Color("231")).
				Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleHunt = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	styleFail = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleFood = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222"))

	styleShop = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81"))

	styleCraft = lipgloss.NewStyle().
			Foreground(lipgloss.Color("177"))

	styleLevelUp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("213")).
			Bold(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleAvatar = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	styleAvatarCaption = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				Italic(true)
)

// styleForKind picks the log style for an activity kind. Lines without a
// kind are plain narrative.
func styleForKind(kind types.ActionKind) lipgloss.Style {
	switch kind {
	case types.ActionHunt:
		return styleHunt
	case types.ActionFailHunt:
		return styleFail
	case types.ActionCook, types.ActionEat, types.ActionEatSpecial, types.ActionConsumeOrgan:
		return styleFood
	case types.ActionUnlock, types.ActionHire, types.ActionUpgradeMinion:
		return styleShop
	case types.ActionCraft:
		return styleCraft
	case types.ActionLevelUp:
		return styleLevelUp
	default:
		return styleNarrative
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
