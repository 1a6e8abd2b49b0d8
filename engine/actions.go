package engine

import (
	"fmt"
	"math"

	"github.com/nathoo/buffetcore/engine/effects"
	"github.com/nathoo/buffetcore/engine/events"
	"github.com/nathoo/buffetcore/engine/loot"
	"github.com/nathoo/buffetcore/engine/state"
	"github.com/nathoo/buffetcore/types"
)

// turn accumulates the result of one action while the store is locked.
type turn struct {
	e   *Engine
	s   *types.GameState
	res types.Result
}

func (t *turn) say(kind types.ActionKind, text string) {
	t.e.record(kind, text)
	t.res.Output = append(t.res.Output, text)
}

func (t *turn) emit(kind string, kv ...any) {
	t.res.Events = append(t.res.Events, events.New(kind, kv...))
}

func (t *turn) describe(kind types.ActionKind, context string) {
	t.res.Flavor = &types.FlavorRequest{Kind: kind, Context: context}
}

// act runs fn as one atomic action. Gated actions are silently refused
// while the player is incapacitated. Precondition failures leave the
// result empty.
func (e *Engine) act(gated bool, fn func(t *turn)) types.Result {
	e.mu.Lock()
	if gated && state.Incapacitated(e.state) {
		e.mu.Unlock()
		return types.Result{}
	}
	t := &turn{e: e, s: e.state}
	fn(t)
	state.Clamp(e.state)
	e.mu.Unlock()

	events.Dispatch(e.notifier, t.res.Events)
	return t.res
}

// Hunt rolls against the hunt chance. Success brings meat and one kill's
// worth of drops; failure costs HP.
func (e *Engine) Hunt() types.Result {
	return e.act(true, func(t *turn) {
		s := t.s
		if e.rng.Chance(s.HuntChance) {
			s.RawMeat += s.MeatYield
			drops := loot.Roll(e.defs, e.rng, 1, e.bal.Loot.ElementChance)
			for id, q := range drops.Organs {
				s.Organs[id] += q
			}
			for id, q := range drops.Elements {
				s.Elements[id] += q
			}
			if !drops.Empty() {
				t.say(types.ActionHunt, drops.Announcement(e.defs))
			}
			t.emit(events.HuntSuccess, "meat", s.MeatYield, "drops", drops.Total())
			t.describe(types.ActionHunt, "")
			return
		}

		s.HP = math.Max(0, s.HP-e.bal.DamageOnFail)
		t.emit(events.HuntFail, "damage", e.bal.DamageOnFail)
		if s.HP == 0 {
			t.say(types.ActionFailHunt, "Bob has fainted! Eat something quick!")
			t.emit(events.Fainted)
		}
		t.describe(types.ActionFailHunt, "")
	})
}

// Cook turns one raw meat into one meal.
func (e *Engine) Cook() types.Result {
	return e.act(true, func(t *turn) {
		if t.s.RawMeat <= 0 {
			return
		}
		t.s.RawMeat--
		t.s.Meals++
		t.emit(events.Cook)
		t.describe(types.ActionCook, "")
	})
}

// Eat consumes a meal for coins and HP.
func (e *Engine) Eat() types.Result {
	return e.act(false, func(t *turn) {
		s := t.s
		if s.Meals <= 0 {
			return
		}
		s.Meals--
		coins := int(math.Floor(float64(e.bal.CoinsPerMeal) * s.CoinMultiplier))
		s.Coins += coins
		s.HP = math.Min(s.MaxHP, s.HP+e.bal.HPRegenOnEat)
		t.emit(events.Eat, "coins", coins)
		t.describe(types.ActionEat, "")
	})
}

// Craft turns ingredients into a pantry item. A shortfall in any
// ingredient makes the whole craft a no-op.
func (e *Engine) Craft(id string) types.Result {
	return e.act(true, func(t *turn) {
		item, ok := e.defs.Craftable(id)
		if !ok || !canAfford(t.s, item.Ingredients) {
			return
		}
		deduct(t.s, item.Ingredients)
		t.s.Pantry[id]++
		t.emit(events.Craft, "item", id)
		t.describe(types.ActionCraft, item.Name)
	})
}

func canAfford(s *types.GameState, ingredients map[string]int) bool {
	for id, q := range ingredients {
		var have int
		switch id {
		case types.IngredientRawMeat:
			have = s.RawMeat
		case types.IngredientMeals:
			have = s.Meals
		default:
			have = s.Organs[id] + s.Elements[id]
		}
		if have < q {
			return false
		}
	}
	return true
}

// deduct removes ingredients, drawing on organ stock before element stock
// when an id names both.
func deduct(s *types.GameState, ingredients map[string]int) {
	for id, q := range ingredients {
		switch id {
		case types.IngredientRawMeat:
			s.RawMeat -= q
		case types.IngredientMeals:
			s.Meals -= q
		default:
			fromOrgans := min(s.Organs[id], q)
			if fromOrgans > 0 {
				s.Organs[id] -= fromOrgans
			}
			if rest := q - fromOrgans; rest > 0 {
				s.Elements[id] -= rest
			}
		}
	}
}

// EatSpecial eats one crafted pantry item and applies its effect.
func (e *Engine) EatSpecial(id string) types.Result {
	return e.act(false, func(t *turn) {
		item, ok := e.defs.Craftable(id)
		if !ok || t.s.Pantry[id] <= 0 {
			return
		}
		t.s.Pantry[id]--
		effects.ApplyItem(t.s, item)
		t.emit(events.EatSpecial, "item", id)
		t.describe(types.ActionEatSpecial, item.Name)
	})
}

// ConsumeOrgan eats one organ from stock and applies its effect.
func (e *Engine) ConsumeOrgan(id string) types.Result {
	return e.act(false, func(t *turn) {
		organ, ok := e.defs.Organ(id)
		if !ok || t.s.Organs[id] <= 0 {
			return
		}
		t.s.Organs[id]--
		effects.ApplyOrgan(t.s, organ)
		t.emit(events.ConsumeOrgan, "organ", id)
		t.describe(types.ActionConsumeOrgan, organ.Name)
	})
}

// BuyUpgrade purchases a shop upgrade once.
func (e *Engine) BuyUpgrade(id string) types.Result {
	return e.act(false, func(t *turn) {
		s := t.s
		u, ok := e.defs.Upgrade(id)
		if !ok || state.UpgradePurchased(s, id) || s.Coins < u.Cost {
			return
		}
		effects.ApplyUpgrade(s, u)
		s.Coins -= u.Cost
		s.Inventory = append(s.Inventory, u.Name)
		s.Purchased[id] = true
		e.logger.Printf("bought %s for %d", id, u.Cost)
		t.emit(events.Unlock, "upgrade", id)
		t.describe(types.ActionUnlock, u.Name)
	})
}

var roleText = map[types.Role]string{
	types.RoleHunter: "Hunting begins.",
	types.RoleChef:   "The kitchen grows.",
	types.RoleLeech:  "Blood flows.",
	types.RoleFeeder: "Feeding time.",
}

// HireMinion adds one unit of a minion to the roster.
func (e *Engine) HireMinion(id string) types.Result {
	return e.act(false, func(t *turn) {
		s := t.s
		m, ok := e.defs.Minion(id)
		if !ok || s.Coins < m.Cost {
			return
		}
		s.Coins -= m.Cost
		ms, exists := s.Minions[id]
		if !exists {
			ms = types.MinionState{Level: 1}
		}
		ms.Count++
		s.Minions[id] = ms
		e.logger.Printf("hired %s (count %d)", id, ms.Count)
		t.say(types.ActionHire, fmt.Sprintf("Hired a %s! %s", m.Name, roleText[m.Role]))
		t.emit(events.Hire, "minion", id)
	})
}

// UpgradeMinion raises an owned minion's level by one. Banked XP carries
// over toward the next, higher threshold.
func (e *Engine) UpgradeMinion(id string) types.Result {
	return e.act(false, func(t *turn) {
		s := t.s
		m, ok := e.defs.Minion(id)
		ms, owned := s.Minions[id]
		if !ok || !owned {
			return
		}
		cost := state.MinionUpgradeCost(e.bal.Minions, m.Role, ms.Level)
		if s.Coins < cost {
			return
		}
		s.Coins -= cost
		ms.Level++
		s.Minions[id] = ms
		t.emit(events.UpgradeMinion, "minion", id, "level", ms.Level)
		t.describe(types.ActionUpgradeMinion, m.Name)
	})
}

// ClaimReward pays the timed coin reward once the cooldown has elapsed and
// restarts the cooldown.
func (e *Engine) ClaimReward() types.Result {
	return e.act(false, func(t *turn) {
		now := e.clock.Now()
		if state.RewardRemaining(t.s, e.bal.RewardInterval, now) > 0 {
			return
		}
		t.s.Coins += e.bal.CoinReward
		t.s.LastRewardTime = now
		t.say(types.ActionUnlock, "Bob found a shiny bag of coins!")
		t.emit(events.Reward, "coins", e.bal.CoinReward)
	})
}
