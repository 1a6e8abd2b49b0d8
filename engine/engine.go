// Package engine owns the game state store. Player actions and economy
// ticks both go through it: each one locks the store once, mutates, restores
// invariants and unlocks before any notifier runs.
package engine

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nathoo/buffetcore/config"
	"github.com/nathoo/buffetcore/engine/economy"
	"github.com/nathoo/buffetcore/engine/events"
	"github.com/nathoo/buffetcore/engine/state"
	"github.com/nathoo/buffetcore/types"
)

// Options configures a new Engine. Zero values pick sensible defaults; a
// zero Balance means config.Default().
type Options struct {
	Balance  config.Balance
	Seed     int64 // hunt and drop rolls; 0 seeds from the clock
	Logger   *log.Logger
	Notifier events.Notifier
	Clock    Clock
}

// Engine holds the content tables and the single mutable game state.
type Engine struct {
	mu     sync.Mutex
	defs   *state.Defs
	bal    config.Balance
	state  *types.GameState
	ledger economy.Ledger
	rng    *RNG
	log    []types.LogEntry

	clock    Clock
	logger   *log.Logger
	notifier events.Notifier
}

// New creates an engine with a fresh game state.
func New(defs *state.Defs, opts Options) *Engine {
	switch {
	case opts.Balance == (config.Balance{}):
		opts.Balance = config.Default()
	case opts.Balance.TickInterval <= 0:
		opts.Balance.TickInterval = config.Default().TickInterval
	}
	if opts.Clock == nil {
		opts.Clock = realClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	if opts.Notifier == nil {
		opts.Notifier = events.Discard
	}
	seed := opts.Seed
	if seed == 0 {
		seed = opts.Clock.Now().UnixNano()
	}
	return &Engine{
		defs:     defs,
		bal:      opts.Balance,
		state:    state.NewState(opts.Balance.Start, opts.Clock.Now()),
		rng:      NewRNG(seed),
		clock:    opts.Clock,
		logger:   opts.Logger,
		notifier: opts.Notifier,
	}
}

// Defs returns the content tables.
func (e *Engine) Defs() *state.Defs { return e.defs }

// Balance returns the active configuration.
func (e *Engine) Balance() config.Balance { return e.bal }

// Snapshot returns a deep copy of the game state for rendering.
func (e *Engine) Snapshot() types.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return state.Clone(e.state)
}

// View runs fn with read access to the live state under the store lock.
// fn must not retain or mutate s.
func (e *Engine) View(fn func(s *types.GameState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.state)
}

// Log returns a copy of the activity log, oldest first.
func (e *Engine) Log() []types.LogEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]types.LogEntry(nil), e.log...)
}

// Narrate appends a line to the activity log. Front ends use it to record
// flavor text once it has been produced.
func (e *Engine) Narrate(kind types.ActionKind, text string) types.LogEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.record(kind, text)
}

// record appends to the log ring. Callers hold e.mu.
func (e *Engine) record(kind types.ActionKind, text string) types.LogEntry {
	entry := types.LogEntry{
		ID:   uuid.NewString(),
		Text: text,
		Kind: kind,
		Time: e.clock.Now(),
	}
	e.log = append(e.log, entry)
	if over := len(e.log) - e.bal.LogCapacity; over > 0 {
		e.log = append([]types.LogEntry(nil), e.log[over:]...)
	}
	return entry
}

// RewardRemaining is the cooldown left on the timed coin reward.
func (e *Engine) RewardRemaining() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return state.RewardRemaining(e.state, e.bal.RewardInterval, e.clock.Now())
}

// Rates returns the current per-second production per role.
func (e *Engine) Rates() economy.Rates {
	e.mu.Lock()
	defer e.mu.Unlock()
	return economy.ProductionRates(e.state, e.defs, e.bal.Minions)
}

// Ledger returns the fractional production carried into the next tick.
func (e *Engine) Ledger() economy.Ledger {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger
}

// RNGInfo reports the roll seed and how many rolls have been made.
func (e *Engine) RNGInfo() (seed, position int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Seed(), e.rng.Position()
}

// Tick runs one economy step: minion XP and level-ups, then the conversion
// chain, committed in one update.
func (e *Engine) Tick() types.Result {
	e.mu.Lock()
	var res types.Result

	d := economy.Simulate(e.state, e.defs, &e.ledger, e.rng, e.bal)
	economy.Commit(e.state, d)

	if len(d.LevelUps) > 0 {
		line := economy.LevelUpSummary(d.LevelUps)
		e.record(types.ActionLevelUp, line)
		res.Output = append(res.Output, line)
		res.Events = append(res.Events, events.New(events.LevelUp, "count", len(d.LevelUps)))
	}
	if d.LogDrops {
		line := "Minions found: " + d.Drops.Summary(e.defs)
		e.record(types.ActionHunt, line)
		res.Output = append(res.Output, line)
	}
	if d.Fed() {
		res.Events = append(res.Events, events.New(events.Feeding, "meals", d.Eaten))
	}
	if d.Rates.Active() {
		e.logger.Printf("tick: rates=%+v kills=%d cooked=%d eaten=%d hp=%.1f",
			d.Rates, d.Kills, d.Cooked, d.Eaten, e.state.HP)
	}
	e.mu.Unlock()

	events.Dispatch(e.notifier, res.Events)
	return res
}

// Run ticks the economy every TickInterval until ctx is cancelled. onTick,
// if non-nil, receives each tick's result.
func (e *Engine) Run(ctx context.Context, onTick func(types.Result)) error {
	e.logger.Printf("economy started, interval %s", e.bal.TickInterval)

	ticker := time.NewTicker(e.bal.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.logger.Printf("economy stopped: %v", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			res := e.Tick()
			if onTick != nil {
				onTick(res)
			}
		}
	}
}
