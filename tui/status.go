package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/nathoo/buffetcore/engine/state"
	"github.com/nathoo/buffetcore/types"
)

// renderStatusBar produces a full-width status line: vitals and the reward
// countdown on the left, the workforce and its output on the right.
func (m Model) renderStatusBar() string {
	s := m.engine.Snapshot()
	defs := m.engine.Defs()
	rates := m.engine.Rates()

	left := fmt.Sprintf(" HP %d/%d | Coins %s | Meat %d | Meals %d | %s",
		int(s.HP), int(s.MaxHP), humanize.Comma(int64(s.Coins)), s.RawMeat, s.Meals,
		rewardText(m.engine.RewardRemaining()))

	hunters := state.RoleCount(&s, defs, types.RoleHunter)
	leeches := state.RoleCount(&s, defs, types.RoleLeech)
	right := fmt.Sprintf("Hunters %d Leeches %d | %.1f meat/s %.1f meals/s ",
		hunters, leeches, rates.Hunter, rates.Chef)
	if lipgloss.Width(left)+lipgloss.Width(right)+2 > m.width {
		right = fmt.Sprintf("H%d L%d ", hunters, leeches)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	style := styleStatusBar
	if state.Incapacitated(&s) {
		style = styleStatusAlert
	}
	return style.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func rewardText(left time.Duration) string {
	if left <= 0 {
		return "Reward ready!"
	}
	return "Reward " + formatCountdown(left.Seconds())
}

// formatCountdown renders seconds as m:ss, rounding up.
func formatCountdown(seconds float64) string {
	total := int(seconds + 0.999)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
