package tui

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/buffetcore/engine"
	"github.com/nathoo/buffetcore/engine/flavor"
	"github.com/nathoo/buffetcore/types"
)

// maxLines bounds the scrollback kept for re-wrapping.
const maxLines = 500

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	kind     types.ActionKind
	isInput  bool // echoed player input
	isSystem bool // hints and meta-command output
}

// keyMap holds the clicker hotkeys. They work while typing.
type keyMap struct {
	Hunt  key.Binding
	Cook  key.Binding
	Eat   key.Binding
	Claim key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Hunt:  key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "hunt")),
		Cook:  key.NewBinding(key.WithKeys("f2"), key.WithHelp("F2", "cook")),
		Eat:   key.NewBinding(key.WithKeys("f3"), key.WithHelp("F3", "eat")),
		Claim: key.NewBinding(key.WithKeys("f4"), key.WithHelp("F4", "claim")),
	}
}

// Model is the Bubble Tea model for the buffet dashboard.
type Model struct {
	engine *engine.Engine
	flavor *flavor.Describer
	feed   *EventFeed // nil: triggers are read from results instead
	keys   keyMap

	viewport viewport.Model
	input    textinput.Model
	recall   *recall

	rawLines  []rawLine
	lastLogID string // newest activity log entry already shown

	mood    mood
	moodSeq int

	width    int
	height   int
	ready    bool
	trace    bool
	quitting bool
}

// gameOutputMsg carries lines that are not part of the activity log.
type gameOutputMsg struct {
	input    string
	lines    []string
	isSystem bool
}

// tickMsg drives one economy tick.
type tickMsg time.Time

// flavorMsg delivers flavor text produced off the update loop.
type flavorMsg struct {
	kind types.ActionKind
	text string
}

// New creates a TUI model wired to the given engine. feed may be nil.
func New(eng *engine.Engine, describer *flavor.Describer, feed *EventFeed) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		engine: eng,
		flavor: describer,
		feed:   feed,
		keys:   defaultKeyMap(),
		input:  ti,
		recall: newRecall(100),
	}
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine, describer *flavor.Describer, feed *EventFeed) error {
	p := tea.NewProgram(New(eng, describer, feed), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// OpenDebugLog routes the standard logger to path and returns it for the
// engine's diagnostics. The TUI owns the terminal, so this is the only
// place debug output can go.
func OpenDebugLog(path string) (*log.Logger, io.Closer, error) {
	f, err := tea.LogToFile(path, "buffet")
	if err != nil {
		return nil, nil, fmt.Errorf("opening debug log: %w", err)
	}
	return log.Default(), f, nil
}

// Init starts the cursor, the intro, the economy clock and the trigger feed.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.intro(), m.tick()}
	if m.feed != nil {
		cmds = append(cmds, m.feed.wait())
	}
	return tea.Batch(cmds...)
}

func (m Model) intro() tea.Cmd {
	return func() tea.Msg {
		return gameOutputMsg{lines: []string{
			"Bob's Weird Buffet",
			"",
			"Bob is hungry. Hunt for meat, cook it, eat it, and hire minions to do it for him.",
			"F1 hunt  F2 cook  F3 eat  F4 claim  |  /help for everything else",
		}}
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.engine.Balance().TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// describe resolves a flavor request off the update loop.
func (m Model) describe(req *types.FlavorRequest) tea.Cmd {
	if req == nil || m.flavor == nil {
		return nil
	}
	kind, context := req.Kind, req.Context
	return func() tea.Msg {
		return flavorMsg{kind: kind, text: m.flavor.Describe(kind, context)}
	}
}

// Update handles messages (keys, resize, ticks, triggers, flavor text).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}
		vpWidth := m.width - avatarWidth
		if vpWidth < 10 {
			vpWidth = 10
		}

		if !m.ready {
			m.viewport = viewport.New(vpWidth, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = vpWidth
			m.viewport.Height = vpHeight
		}
		m.refreshViewport()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Hunt):
			return m.runCommand("hunt", false)
		case key.Matches(msg, m.keys.Cook):
			return m.runCommand("cook", false)
		case key.Matches(msg, m.keys.Eat):
			return m.runCommand("eat", false)
		case key.Matches(msg, m.keys.Claim):
			return m.runCommand("claim", false)
		}

		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.recall.older(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.recall.newer(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case gameOutputMsg:
		m = m.appendOutput(msg)

	case tickMsg:
		res := m.engine.Tick()
		m = m.syncLog()
		if m.feed == nil {
			var cmd tea.Cmd
			m, cmd = m.triggerAll(res.Events)
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.tick())

	case eventMsg:
		var cmd tea.Cmd
		m, cmd = m.trigger(types.Event(msg))
		cmds = append(cmds, cmd, m.feed.wait())

	case moodExpiredMsg:
		if msg.seq == m.moodSeq {
			m.mood = moodIdle
		}

	case flavorMsg:
		m.engine.Narrate(msg.kind, msg.text)
		m = m.syncLog()
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if input == "" {
		return m, nil
	}

	if isAgain(input) {
		last, ok := m.recall.lastOrder()
		if !ok {
			m = m.appendOutput(gameOutputMsg{input: input, lines: []string{"Nothing to repeat."}, isSystem: true})
			return m, nil
		}
		input = last
	}
	m.recall.remember(input)

	if payload, ok := strings.CutPrefix(input, "/drop "); ok && strings.TrimSpace(payload) != "" {
		m.rawLines = append(m.rawLines, rawLine{text: "> " + input, isInput: true})
		return m.showResult(m.engine.Drop(strings.TrimSpace(payload)))
	}

	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m = m.appendOutput(gameOutputMsg{input: input, lines: output, isSystem: true})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	return m.runCommand(input, true)
}

// runCommand sends a game command to the engine and shows what it logged.
// Replies that change nothing are shown without entering the activity log.
func (m Model) runCommand(input string, echo bool) (tea.Model, tea.Cmd) {
	if echo {
		m.rawLines = append(m.rawLines, rawLine{text: "> " + input, isInput: true})
	}

	res := m.engine.Step(input)
	return m.showResult(res)
}

// showResult renders an action result and schedules its follow-ups.
func (m Model) showResult(res types.Result) (Model, tea.Cmd) {
	before := len(m.rawLines)
	m = m.syncLog()
	logged := len(m.rawLines) > before

	var extra []string
	switch {
	case !logged && len(res.Output) > 0:
		extra = res.Output
	case !logged && res.Flavor == nil:
		extra = []string{"Nothing happens."}
	}
	if m.trace {
		extra = append(extra, formatTrace(res)...)
	}
	if len(extra) > 0 {
		m = m.appendOutput(gameOutputMsg{lines: extra, isSystem: true})
	}

	cmds := []tea.Cmd{m.describe(res.Flavor)}
	if m.feed == nil {
		var cmd tea.Cmd
		m, cmd = m.triggerAll(res.Events)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) triggerAll(evts []types.Event) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, e := range evts {
		var cmd tea.Cmd
		m, cmd = m.trigger(e)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// syncLog appends activity log entries newer than the last one shown.
func (m Model) syncLog() Model {
	entries := m.engine.Log()
	start := 0
	if m.lastLogID != "" {
		for i, e := range entries {
			if e.ID == m.lastLogID {
				start = i + 1
				break
			}
		}
	}
	if start >= len(entries) {
		return m
	}
	for _, e := range entries[start:] {
		m.rawLines = append(m.rawLines, rawLine{text: e.Text, kind: e.Kind})
	}
	m.lastLogID = entries[len(entries)-1].ID
	m.trimLines()
	m.refreshViewport()
	return m
}

// appendOutput adds lines to the scrollback and refreshes the viewport.
func (m Model) appendOutput(msg gameOutputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{text: "> " + msg.input, isInput: true})
	}
	for _, line := range msg.lines {
		m.rawLines = append(m.rawLines, rawLine{text: line, isSystem: msg.isSystem})
	}
	m.trimLines()
	m.refreshViewport()
	return m
}

func (m *Model) trimLines() {
	if over := len(m.rawLines) - maxLines; over > 0 {
		m.rawLines = append([]rawLine(nil), m.rawLines[over:]...)
	}
}

// refreshViewport re-wraps and re-styles all raw lines at the current width
// and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.viewport.Width
	if width < 10 {
		width = 10
	}

	styled := make([]string, 0, len(m.rawLines))
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}
		wrapped := wordWrap(rl.text, width)
		switch {
		case rl.isInput:
			styled = append(styled, stylePlayerInput.Render(wrapped))
		case rl.isSystem && strings.HasPrefix(rl.text, "[trace]"):
			styled = append(styled, styleTrace.Render(wrapped))
		case rl.isSystem:
			styled = append(styled, styleSystem.Render(wrapped))
		default:
			styled = append(styled, styleForKind(rl.kind).Render(wrapped))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	lineLen := 0
	for i, word := range strings.Fields(text) {
		wLen := len(word)
		switch {
		case i == 0:
			result.WriteString(word)
			lineLen = wLen
		case lineLen+1+wLen > width:
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		default:
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}
	return result.String()
}

// View renders the layout: log and avatar side by side, then the status
// bar and the input line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	s := m.engine.Snapshot()
	md := m.mood
	if s.HP <= 0 {
		md = moodFainted
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top, m.viewport.View(), renderAvatar(md, s.Cosmetics))
	return top + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

func formatTrace(res types.Result) []string {
	var lines []string
	for _, e := range res.Events {
		lines = append(lines, fmt.Sprintf("[trace] %s %v", e.Type, e.Data))
	}
	if res.Flavor != nil {
		lines = append(lines, fmt.Sprintf("[trace] flavor %s %q", res.Flavor.Kind, res.Flavor.Context))
	}
	return lines
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for command recall).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
