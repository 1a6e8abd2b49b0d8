// Package state manages the mutable game state, the immutable content
// tables, and the invariants every mutation must preserve.
package state

import (
	"math"
	"sort"
	"time"

	"github.com/nathoo/buffetcore/config"
	"github.com/nathoo/buffetcore/types"
)

// Defs holds the immutable content tables. Slices keep display order;
// the index maps are built once by NewDefs.
type Defs struct {
	Minions    []types.Minion
	Organs     []types.Organ
	Elements   []types.Element
	Craftables []types.CraftableItem
	Upgrades   []types.Upgrade

	minionIdx    map[string]int
	organIdx     map[string]int
	elementIdx   map[string]int
	craftableIdx map[string]int
	upgradeIdx   map[string]int
}

// NewDefs builds content tables with their id indexes. Later duplicates of
// an id shadow earlier ones in lookups.
func NewDefs(minions []types.Minion, organs []types.Organ, elements []types.Element,
	craftables []types.CraftableItem, upgrades []types.Upgrade) *Defs {
	d := &Defs{
		Minions:      minions,
		Organs:       organs,
		Elements:     elements,
		Craftables:   craftables,
		Upgrades:     upgrades,
		minionIdx:    make(map[string]int, len(minions)),
		organIdx:     make(map[string]int, len(organs)),
		elementIdx:   make(map[string]int, len(elements)),
		craftableIdx: make(map[string]int, len(craftables)),
		upgradeIdx:   make(map[string]int, len(upgrades)),
	}
	for i, m := range minions {
		d.minionIdx[m.ID] = i
	}
	for i, o := range organs {
		d.organIdx[o.ID] = i
	}
	for i, e := range elements {
		d.elementIdx[e.ID] = i
	}
	for i, c := range craftables {
		d.craftableIdx[c.ID] = i
	}
	for i, u := range upgrades {
		d.upgradeIdx[u.ID] = i
	}
	return d
}

// Minion looks up a minion definition by id.
func (d *Defs) Minion(id string) (types.Minion, bool) {
	i, ok := d.minionIdx[id]
	if !ok {
		return types.Minion{}, false
	}
	return d.Minions[i], true
}

// Organ looks up an organ definition by id.
func (d *Defs) Organ(id string) (types.Organ, bool) {
	i, ok := d.organIdx[id]
	if !ok {
		return types.Organ{}, false
	}
	return d.Organs[i], true
}

// Element looks up an element definition by id.
func (d *Defs) Element(id string) (types.Element, bool) {
	i, ok := d.elementIdx[id]
	if !ok {
		return types.Element{}, false
	}
	return d.Elements[i], true
}

// Craftable looks up a pantry recipe by id.
func (d *Defs) Craftable(id string) (types.CraftableItem, bool) {
	i, ok := d.craftableIdx[id]
	if !ok {
		return types.CraftableItem{}, false
	}
	return d.Craftables[i], true
}

// Upgrade looks up a shop upgrade by id.
func (d *Defs) Upgrade(id string) (types.Upgrade, bool) {
	i, ok := d.upgradeIdx[id]
	if !ok {
		return types.Upgrade{}, false
	}
	return d.Upgrades[i], true
}

// ItemName returns the display name of an organ, element, craftable or raw
// resource id, falling back to the id itself.
func (d *Defs) ItemName(id string) string {
	if o, ok := d.Organ(id); ok {
		return o.Name
	}
	if e, ok := d.Element(id); ok {
		return e.Name
	}
	if c, ok := d.Craftable(id); ok {
		return c.Name
	}
	switch id {
	case types.IngredientRawMeat:
		return "Raw Meat"
	case types.IngredientMeals:
		return "Meals"
	}
	return id
}

// NewState creates a fresh game state from the starting balance.
func NewState(start config.Start, now time.Time) *types.GameState {
	return &types.GameState{
		HP:             start.HP,
		MaxHP:          start.MaxHP,
		Coins:          start.Coins,
		HuntChance:     start.HuntChance,
		MeatYield:      start.MeatYield,
		CoinMultiplier: start.CoinMultiplier,
		LastRewardTime: now,
		Inventory:      []string{},
		Purchased:      map[string]bool{},
		Minions:        map[string]types.MinionState{},
		Pantry:         map[string]int{},
		Organs:         map[string]int{},
		Elements:       map[string]int{},
	}
}

// Clamp restores the state invariants: HP within [0, MaxHP], hunt chance
// within [0, 1], and no negative resource or stock counts.
func Clamp(s *types.GameState) {
	if s.MaxHP < 0 {
		s.MaxHP = 0
	}
	s.HP = math.Max(0, math.Min(s.MaxHP, s.HP))
	s.HuntChance = math.Max(0, math.Min(1, s.HuntChance))
	if s.RawMeat < 0 {
		s.RawMeat = 0
	}
	if s.Meals < 0 {
		s.Meals = 0
	}
	if s.Coins < 0 {
		s.Coins = 0
	}
	clampCounts(s.Pantry)
	clampCounts(s.Organs)
	clampCounts(s.Elements)
}

func clampCounts(m map[string]int) {
	for k, v := range m {
		if v < 0 {
			m[k] = 0
		}
	}
}

// Incapacitated reports whether the player has fainted.
func Incapacitated(s *types.GameState) bool {
	return s.HP <= 0
}

// Clone returns a deep copy suitable for read-only rendering.
func Clone(s *types.GameState) types.GameState {
	c := *s
	c.Inventory = append([]string(nil), s.Inventory...)
	c.Purchased = make(map[string]bool, len(s.Purchased))
	for k, v := range s.Purchased {
		c.Purchased[k] = v
	}
	c.Minions = make(map[string]types.MinionState, len(s.Minions))
	for k, v := range s.Minions {
		c.Minions[k] = v
	}
	c.Pantry = copyCounts(s.Pantry)
	c.Organs = copyCounts(s.Organs)
	c.Elements = copyCounts(s.Elements)
	return c
}

func copyCounts(m map[string]int) map[string]int {
	c := make(map[string]int, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// UpgradePurchased reports whether the upgrade has already been bought.
func UpgradePurchased(s *types.GameState, id string) bool {
	return s.Purchased[id]
}

// AvailableUpgrades returns the unpurchased upgrades in shop order.
func AvailableUpgrades(s *types.GameState, defs *Defs) []types.Upgrade {
	var out []types.Upgrade
	for _, u := range defs.Upgrades {
		if !s.Purchased[u.ID] {
			out = append(out, u)
		}
	}
	return out
}

// MinionUpgradeCost is floor(base(role) * growth^level).
func MinionUpgradeCost(b config.MinionBalance, role types.Role, level int) int {
	base := b.UpgradeBase.Hunter
	switch role {
	case types.RoleChef:
		base = b.UpgradeBase.Chef
	case types.RoleFeeder:
		base = b.UpgradeBase.Feeder
	case types.RoleLeech:
		base = b.UpgradeBase.Leech
	}
	return int(math.Floor(float64(base) * math.Pow(b.UpgradeGrowth, float64(level))))
}

// RewardRemaining is the time left before the timed reward can be claimed.
func RewardRemaining(s *types.GameState, interval time.Duration, now time.Time) time.Duration {
	remaining := interval - now.Sub(s.LastRewardTime)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RoleCount totals the owned units of every minion with the given role.
func RoleCount(s *types.GameState, defs *Defs, role types.Role) int {
	total := 0
	for id, ms := range s.Minions {
		if m, ok := defs.Minion(id); ok && m.Role == role {
			total += ms.Count
		}
	}
	return total
}

// OwnedMinions returns the ids of minions with at least one unit, in
// content table order.
func OwnedMinions(s *types.GameState, defs *Defs) []string {
	ids := make([]string, 0, len(s.Minions))
	for id, ms := range s.Minions {
		if ms.Count > 0 {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		return defs.minionIdx[ids[i]] < defs.minionIdx[ids[j]]
	})
	return ids
}

// HireableMinions returns up to n minions nobody has hired yet, cheapest
// first. n <= 0 returns all of them.
func HireableMinions(s *types.GameState, defs *Defs, n int) []types.Minion {
	var out []types.Minion
	for _, m := range defs.Minions {
		if s.Minions[m.ID].Count == 0 {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cost < out[j].Cost })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// VisibleUpgrades returns the next n unpurchased upgrades in shop order.
func VisibleUpgrades(s *types.GameState, defs *Defs, n int) []types.Upgrade {
	out := AvailableUpgrades(s, defs)
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
