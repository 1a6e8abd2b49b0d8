package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/buffetcore/engine/events"
	"github.com/nathoo/buffetcore/types"
)

// mood is Bob's current expression.
type mood int

const (
	moodIdle mood = iota
	moodHappy
	moodHurt
	moodFainted
	moodCooking
	moodEating
	moodCrafting
	moodRich
	moodBoss
)

var moodFaces = map[mood]string{
	moodIdle:     "(o_o)",
	moodHappy:    "(^o^)",
	moodHurt:     "(>_<)",
	moodFainted:  "(x_x)",
	moodCooking:  "(-_-)",
	moodEating:   "(^~^)",
	moodCrafting: "(o.O)",
	moodRich:     "($_$)",
	moodBoss:     "(B-)",
}

var moodCaptions = map[mood]string{
	moodIdle:     "hungry",
	moodHappy:    "got one!",
	moodHurt:     "ouch",
	moodFainted:  "fainted",
	moodCooking:  "cooking",
	moodEating:   "nom nom",
	moodCrafting: "tinkering",
	moodRich:     "ka-ching",
	moodBoss:     "the boss",
}

// avatarWidth is the horizontal space the avatar panel takes, border included.
const avatarWidth = 16

// moodFor maps a trigger to the expression it causes. Unknown triggers
// leave Bob idle.
func moodFor(trigger string) mood {
	switch trigger {
	case events.HuntSuccess, events.LevelUp:
		return moodHappy
	case events.HuntFail:
		return moodHurt
	case events.Fainted:
		return moodFainted
	case events.Cook:
		return moodCooking
	case events.Eat, events.EatSpecial, events.ConsumeOrgan, events.Feeding:
		return moodEating
	case events.Craft:
		return moodCrafting
	case events.Unlock, events.Reward:
		return moodRich
	case events.Hire, events.UpgradeMinion:
		return moodBoss
	default:
		return moodIdle
	}
}

// moodExpiredMsg ends a mood. Only the expiry matching the latest trigger
// counts, so a new trigger restarts the hold.
type moodExpiredMsg struct{ seq int }

// eventMsg carries a trigger from the engine notifier.
type eventMsg types.Event

// trigger sets Bob's mood from an event and schedules its expiry.
func (m Model) trigger(e types.Event) (Model, tea.Cmd) {
	md := moodFor(e.Type)
	if md == moodIdle {
		return m, nil
	}
	m.mood = md
	m.moodSeq++
	seq := m.moodSeq
	return m, tea.Tick(m.engine.Balance().AvatarHold, func(time.Time) tea.Msg {
		return moodExpiredMsg{seq: seq}
	})
}

// renderAvatar draws Bob with his current expression and cosmetics.
func renderAvatar(md mood, cos types.Cosmetics) string {
	var lines []string
	if cos.Hat {
		lines = append(lines, " _/^\\_")
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, moodFaces[md])

	body := " /| |\\"
	if cos.Bling {
		body = " /|$|\\"
	}
	if cos.Weapon {
		body += "E"
	}
	lines = append(lines, body, "  / \\", styleAvatarCaption.Render(moodCaptions[md]))

	return styleAvatar.Width(avatarWidth - 2).Render(strings.Join(lines, "\n"))
}

// EventFeed is an engine notifier that forwards triggers to the TUI. A full
// feed drops triggers rather than blocking the engine.
type EventFeed struct {
	ch chan types.Event
}

// NewEventFeed creates a feed buffering up to size triggers.
func NewEventFeed(size int) *EventFeed {
	return &EventFeed{ch: make(chan types.Event, size)}
}

// Notify implements events.Notifier.
func (f *EventFeed) Notify(e types.Event) {
	select {
	case f.ch <- e:
	default:
	}
}

// wait blocks for the next trigger.
func (f *EventFeed) wait() tea.Cmd {
	return func() tea.Msg {
		return eventMsg(<-f.ch)
	}
}
