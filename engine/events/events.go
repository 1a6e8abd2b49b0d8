// Package events defines the audio/visual trigger kinds emitted after state
// changes and the fire-and-forget notifier that receives them. Dispatch is
// single pass: notifiers cannot emit further events into the same action.
package events

import (
	"sync"

	"github.com/nathoo/buffetcore/types"
)

// Trigger kinds.
const (
	HuntSuccess   = "hunt_success"
	HuntFail      = "hunt_fail"
	Fainted       = "fainted"
	Cook          = "cook"
	Eat           = "eat"
	Craft         = "craft"
	EatSpecial    = "eat_special"
	ConsumeOrgan  = "consume_organ"
	Unlock        = "unlock"
	Hire          = "hire"
	UpgradeMinion = "upgrade_minion"
	Reward        = "reward"
	LevelUp       = "level_up"
	Feeding       = "feeding"
)

// New builds an event with optional key/value data.
func New(kind string, kv ...any) types.Event {
	data := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			data[k] = kv[i+1]
		}
	}
	return types.Event{Type: kind, Data: data}
}

// Notifier receives triggers. Return values are never consumed.
type Notifier interface {
	Notify(types.Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(types.Event)

// Notify calls f(e).
func (f NotifierFunc) Notify(e types.Event) { f(e) }

// Discard drops every event.
var Discard Notifier = NotifierFunc(func(types.Event) {})

// Multi fans events out to several notifiers in order.
type Multi []Notifier

// Notify forwards e to every notifier.
func (m Multi) Notify(e types.Event) {
	for _, n := range m {
		n.Notify(e)
	}
}

// Dispatch delivers events to n in order. A nil notifier drops them.
func Dispatch(n Notifier, evts []types.Event) {
	if n == nil {
		return
	}
	for _, e := range evts {
		n.Notify(e)
	}
}

// Recorder keeps every event it receives. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []types.Event
}

// Notify records e.
func (r *Recorder) Notify(e types.Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []types.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]types.Event(nil), r.events...)
}

// Types returns the recorded event kinds in order.
func (r *Recorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

// Reset clears the recording.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
