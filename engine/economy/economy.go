// Package economy runs the per-second minion simulation: role aggregation,
// XP and level-ups, fractional ledgers and the ordered conversion chain
// hunting → cooking → feeding → leeching. A tick computes a Delta against a
// read-only view of the state and applies it with a single Commit.
package economy

import (
	"fmt"
	"math"
	"strings"

	"github.com/nathoo/buffetcore/config"
	"github.com/nathoo/buffetcore/engine/loot"
	"github.com/nathoo/buffetcore/engine/state"
	"github.com/nathoo/buffetcore/types"
)

// epsilon absorbs float drift when whole units are taken from a ledger,
// so that ten ticks of 0.1 yield one unit.
const epsilon = 1e-9

// Ledger carries sub-unit production across ticks. It lives with the engine
// and is never part of GameState.
type Ledger struct {
	Meat  float64
	Meals float64
	Kills float64
	Feeds float64
}

// Rates are per-second production totals per role.
type Rates struct {
	Hunter float64
	Chef   float64
	Feeder float64
	Leech  float64
}

// Active reports whether any role produces anything.
func (r Rates) Active() bool {
	return r.Hunter > 0 || r.Chef > 0 || r.Feeder > 0 || r.Leech > 0
}

// LevelUp records one minion that advanced this tick.
type LevelUp struct {
	ID    string
	Name  string
	Level int
}

// Delta is everything a single tick changes.
type Delta struct {
	Rates    Rates
	Roster   map[string]types.MinionState
	LevelUps []LevelUp

	Meat  int // net; negative when cooking eats into stock
	Meals int // net
	Coins int
	HP    float64

	Kills  int
	Cooked int
	Eaten  int
	Drops  loot.Drops

	// LogDrops is set when the automated drop summary should be logged.
	LogDrops bool
}

// Fed reports whether feeders ate anything this tick.
func (d Delta) Fed() bool {
	return d.Eaten > 0
}

// Simulate computes one tick against s without mutating it. The ledger is
// advanced in place.
func Simulate(s *types.GameState, defs *state.Defs, ledger *Ledger, rng loot.Roller, b config.Balance) Delta {
	rates, roster, ups := Aggregate(s, defs, b.Minions)
	d := Delta{Rates: rates, Roster: roster, LevelUps: ups}
	if !rates.Active() {
		return d
	}
	resolve(s, defs, ledger, rng, b, &d)
	return d
}

// Aggregate accrues XP for every owned minion, applies level-ups, and sums
// level-scaled rates into role buckets. Returned roster entries are updated
// copies; s is not touched.
func Aggregate(s *types.GameState, defs *state.Defs, b config.MinionBalance) (Rates, map[string]types.MinionState, []LevelUp) {
	var rates Rates
	roster := map[string]types.MinionState{}
	var ups []LevelUp

	for _, id := range state.OwnedMinions(s, defs) {
		m, _ := defs.Minion(id)
		ms := s.Minions[id]
		if ms.Level < 1 {
			ms.Level = 1
		}

		ms.XP += ms.Count * b.XPPerUnit
		leveled := false
		for b.XPPerLevel > 0 && ms.XP >= ms.Level*b.XPPerLevel {
			ms.XP -= ms.Level * b.XPPerLevel
			ms.Level++
			leveled = true
		}
		if leveled {
			ups = append(ups, LevelUp{ID: id, Name: m.Name, Level: ms.Level})
		}
		roster[id] = ms

		addRate(&rates, m.Role, EffectiveRate(m, ms.Level, b)*float64(ms.Count))
	}
	return rates, roster, ups
}

// EffectiveRate is the base rate scaled by the per-level bonus.
func EffectiveRate(m types.Minion, level int, b config.MinionBalance) float64 {
	return m.Rate * (1 + b.LevelRateBonus*float64(level-1))
}

// ProductionRates sums current role rates for display without accruing XP.
func ProductionRates(s *types.GameState, defs *state.Defs, b config.MinionBalance) Rates {
	var rates Rates
	for _, id := range state.OwnedMinions(s, defs) {
		m, _ := defs.Minion(id)
		ms := s.Minions[id]
		addRate(&rates, m.Role, EffectiveRate(m, max(ms.Level, 1), b)*float64(ms.Count))
	}
	return rates
}

func addRate(r *Rates, role types.Role, v float64) {
	switch role {
	case types.RoleHunter:
		r.Hunter += v
	case types.RoleChef:
		r.Chef += v
	case types.RoleFeeder:
		r.Feeder += v
	case types.RoleLeech:
		r.Leech += v
	}
}

// take removes and returns the whole part of *acc.
func take(acc *float64, limit int) int {
	whole := int(math.Floor(*acc + epsilon))
	if whole > limit {
		whole = limit
	}
	if whole <= 0 {
		return 0
	}
	*acc -= float64(whole)
	if *acc < 0 {
		*acc = 0
	}
	return whole
}

func resolve(s *types.GameState, defs *state.Defs, ledger *Ledger, rng loot.Roller, b config.Balance, d *Delta) {
	r := d.Rates

	// Hunting.
	ledger.Meat += r.Hunter
	d.Meat += take(&ledger.Meat, math.MaxInt)
	ledger.Kills += r.Hunter
	d.Kills = take(&ledger.Kills, math.MaxInt)
	if d.Kills > 0 {
		d.Drops = loot.Roll(defs, rng, d.Kills, b.Loot.ElementChance)
		if !d.Drops.Empty() {
			d.LogDrops = rng.Float64() < b.Loot.LogChance || d.Kills > b.Loot.LogKillThreshold
		}
	}

	// Cooking sees this tick's catch.
	if available := s.RawMeat + d.Meat; r.Chef > 0 && available > 0 {
		ledger.Meals += r.Chef
		cooked := take(&ledger.Meals, available)
		d.Meat -= cooked
		d.Meals += cooked
		d.Cooked = cooked
	}

	// Feeding sees this tick's cooking.
	if available := s.Meals + d.Meals; r.Feeder > 0 && available > 0 {
		ledger.Feeds += r.Feeder
		eats := take(&ledger.Feeds, available)
		d.Meals -= eats
		d.Coins += int(math.Floor(float64(eats*b.CoinsPerMeal) * s.CoinMultiplier))
		d.HP += float64(eats) * b.HPRegenOnEat
		d.Eaten = eats
	}

	// Leeching is free healing.
	d.HP += r.Leech
}

// Commit applies a tick's delta to s in one step and restores invariants.
func Commit(s *types.GameState, d Delta) {
	for id, ms := range d.Roster {
		s.Minions[id] = ms
	}
	s.RawMeat += d.Meat
	s.Meals += d.Meals
	s.Coins += d.Coins
	s.HP += d.HP
	for id, q := range d.Drops.Organs {
		s.Organs[id] += q
	}
	for id, q := range d.Drops.Elements {
		s.Elements[id] += q
	}
	state.Clamp(s)
}

// LevelUpSummary batches level-ups into one line: the first two names and
// an "and N others" suffix.
func LevelUpSummary(ups []LevelUp) string {
	if len(ups) == 0 {
		return ""
	}
	names := make([]string, 0, 2)
	for i := 0; i < len(ups) && i < 2; i++ {
		names = append(names, ups[i].Name)
	}
	msg := strings.Join(names, ", ")
	if len(ups) > 2 {
		msg += fmt.Sprintf(" and %d others", len(ups)-2)
	}
	return msg + " leveled up!"
}
