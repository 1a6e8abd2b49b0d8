// Package tui provides the Bubble Tea dashboard for Bob's Weird Buffet:
// status bar, activity log, Bob's avatar and a command line with recall.
package tui

import "strings"

// recall is the command line's memory. Every submitted line can be browsed
// with Up/Down, but only game orders are replayed by "again".
type recall struct {
	lines []recalled
	limit int
	pos   int // browsing index; len(lines) when not browsing
}

type recalled struct {
	text  string
	order bool // a game command, not a /meta command or a repeat
}

func newRecall(limit int) *recall {
	return &recall{lines: make([]recalled, 0, limit), limit: limit}
}

// remember stores a submitted line and stops browsing. Mashing the same
// order keeps a single copy so older lines stay reachable.
func (r *recall) remember(line string) {
	defer r.stopBrowsing()
	if n := len(r.lines); n > 0 && r.lines[n-1].text == line {
		return
	}
	r.lines = append(r.lines, recalled{text: line, order: isOrder(line)})
	if len(r.lines) > r.limit {
		r.lines = r.lines[1:]
	}
}

// lastOrder is the most recent game command, for "again".
func (r *recall) lastOrder() (string, bool) {
	for i := len(r.lines) - 1; i >= 0; i-- {
		if r.lines[i].order {
			return r.lines[i].text, true
		}
	}
	return "", false
}

// older steps back one line, holding at the oldest.
func (r *recall) older() (string, bool) {
	if len(r.lines) == 0 {
		return "", false
	}
	if r.pos > 0 {
		r.pos--
	}
	return r.lines[r.pos].text, true
}

// newer steps forward one line. Stepping past the newest ends browsing.
func (r *recall) newer() (string, bool) {
	if r.pos >= len(r.lines)-1 {
		r.stopBrowsing()
		return "", false
	}
	r.pos++
	return r.lines[r.pos].text, true
}

func (r *recall) stopBrowsing() {
	r.pos = len(r.lines)
}

func isOrder(line string) bool {
	return line != "" && !strings.HasPrefix(line, "/") && !isAgain(line)
}

func isAgain(line string) bool {
	line = strings.ToLower(line)
	return line == "g" || line == "again"
}
