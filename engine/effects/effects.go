// Package effects implements centralized state mutation for organ, pantry
// item and upgrade effects. Each effect kind is one atomic operation chosen
// by a single exhaustive switch; callers restore invariants afterwards.
package effects

import (
	"math"

	"github.com/nathoo/buffetcore/types"
)

// ApplyOrgan applies an eaten organ. COINS is scaled by the coin multiplier.
// Returns false for an unknown effect kind, leaving state untouched.
func ApplyOrgan(s *types.GameState, o types.Organ) bool {
	switch o.Effect {
	case types.OrganHeal:
		heal(s, o.Value)
	case types.OrganCoins:
		s.Coins += int(math.Floor(o.Value * s.CoinMultiplier))
	case types.OrganBuffMaxHP:
		buffMaxHP(s, o.Value)
	case types.OrganBuffHunt:
		buffHunt(s, o.Value)
	default:
		return false
	}
	return true
}

// ApplyItem applies an eaten pantry item. COIN_WIND adds flat coins.
func ApplyItem(s *types.GameState, c types.CraftableItem) bool {
	switch c.Effect {
	case types.ItemHeal:
		heal(s, c.Value)
	case types.ItemBuffHunt:
		buffHunt(s, c.Value)
	case types.ItemBuffMaxHP:
		buffMaxHP(s, c.Value)
	case types.ItemCoinWind:
		s.Coins += int(math.Floor(c.Value))
	default:
		return false
	}
	return true
}

// ApplyUpgrade applies an upgrade's permanent effect and its cosmetic
// flags. It does not charge or mark the upgrade purchased.
func ApplyUpgrade(s *types.GameState, u types.Upgrade) bool {
	switch u.Kind {
	case types.UpgradeMeat:
		s.MeatYield += int(math.Round(u.Value))
	case types.UpgradeHunt:
		buffHunt(s, u.Value)
	case types.UpgradeHP:
		buffMaxHP(s, u.Value)
	case types.UpgradeCoin:
		s.CoinMultiplier += u.Value
	default:
		return false
	}
	s.Cosmetics.Weapon = s.Cosmetics.Weapon || u.Cosmetics.Weapon
	s.Cosmetics.Hat = s.Cosmetics.Hat || u.Cosmetics.Hat
	s.Cosmetics.Bling = s.Cosmetics.Bling || u.Cosmetics.Bling
	return true
}

func heal(s *types.GameState, v float64) {
	s.HP = math.Min(s.MaxHP, s.HP+v)
}

func buffMaxHP(s *types.GameState, v float64) {
	s.MaxHP += v
	s.HP += v
}

func buffHunt(s *types.GameState, v float64) {
	s.HuntChance = math.Min(1, s.HuntChance+v)
}
