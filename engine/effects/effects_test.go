package effects

import (
	"math"
	"testing"
	"time"

	"github.com/nathoo/buffetcore/config"
	"github.com/nathoo/buffetcore/engine/state"
	"github.com/nathoo/buffetcore/types"
)

func testState() *types.GameState {
	return state.NewState(config.Default().Start, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestApplyOrgan(t *testing.T) {
	tests := []struct {
		name      string
		organ     types.Organ
		hp        float64
		mult      float64
		wantHP    float64
		wantMaxHP float64
		wantCoins int
		wantHunt  float64
	}{
		{"heal capped", types.Organ{Effect: types.OrganHeal, Value: 30}, 90, 1, 100, 100, 0, 0.6},
		{"heal partial", types.Organ{Effect: types.OrganHeal, Value: 10}, 50, 1, 60, 100, 0, 0.6},
		{"coins scaled", types.Organ{Effect: types.OrganCoins, Value: 150}, 100, 2.5, 100, 100, 375, 0.6},
		{"coins floored", types.Organ{Effect: types.OrganCoins, Value: 50}, 100, 1.15, 100, 100, 57, 0.6},
		{"max hp", types.Organ{Effect: types.OrganBuffMaxHP, Value: 2}, 40, 1, 42, 102, 0, 0.6},
		{"hunt", types.Organ{Effect: types.OrganBuffHunt, Value: 0.01}, 100, 1, 100, 100, 0, 0.61},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testState()
			s.HP = tt.hp
			s.CoinMultiplier = tt.mult

			if !ApplyOrgan(s, tt.organ) {
				t.Fatal("ApplyOrgan returned false")
			}
			if s.HP != tt.wantHP || s.MaxHP != tt.wantMaxHP {
				t.Errorf("HP = %v/%v, want %v/%v", s.HP, s.MaxHP, tt.wantHP, tt.wantMaxHP)
			}
			if s.Coins != tt.wantCoins {
				t.Errorf("Coins = %d, want %d", s.Coins, tt.wantCoins)
			}
			if math.Abs(s.HuntChance-tt.wantHunt) > 1e-9 {
				t.Errorf("HuntChance = %v, want %v", s.HuntChance, tt.wantHunt)
			}
		})
	}
}

func TestApplyItem(t *testing.T) {
	s := testState()
	s.HP = 20
	s.CoinMultiplier = 3

	ApplyItem(s, types.CraftableItem{Effect: types.ItemHeal, Value: 50})
	if s.HP != 70 {
		t.Errorf("after heal HP = %v, want 70", s.HP)
	}

	ApplyItem(s, types.CraftableItem{Effect: types.ItemCoinWind, Value: 1500})
	if s.Coins != 1500 {
		t.Errorf("COIN_WIND must ignore the multiplier: Coins = %d, want 1500", s.Coins)
	}

	ApplyItem(s, types.CraftableItem{Effect: types.ItemBuffMaxHP, Value: 200})
	if s.MaxHP != 300 || s.HP != 270 {
		t.Errorf("after max hp buff HP = %v/%v, want 270/300", s.HP, s.MaxHP)
	}

	s.HuntChance = 0.98
	ApplyItem(s, types.CraftableItem{Effect: types.ItemBuffHunt, Value: 0.05})
	if s.HuntChance != 1 {
		t.Errorf("HuntChance = %v, want capped at 1", s.HuntChance)
	}
}

func TestApplyUpgrade(t *testing.T) {
	s := testState()

	ApplyUpgrade(s, types.Upgrade{Kind: types.UpgradeMeat, Value: 1, Cosmetics: types.Cosmetics{Weapon: true}})
	ApplyUpgrade(s, types.Upgrade{Kind: types.UpgradeHunt, Value: 0.15})
	ApplyUpgrade(s, types.Upgrade{Kind: types.UpgradeHP, Value: 50, Cosmetics: types.Cosmetics{Hat: true}})
	ApplyUpgrade(s, types.Upgrade{Kind: types.UpgradeCoin, Value: 1.0})

	if s.MeatYield != 2 {
		t.Errorf("MeatYield = %d, want 2", s.MeatYield)
	}
	if math.Abs(s.HuntChance-0.75) > 1e-9 {
		t.Errorf("HuntChance = %v, want 0.75", s.HuntChance)
	}
	if s.MaxHP != 150 || s.HP != 150 {
		t.Errorf("HP = %v/%v, want 150/150", s.HP, s.MaxHP)
	}
	if s.CoinMultiplier != 2 {
		t.Errorf("CoinMultiplier = %v, want 2", s.CoinMultiplier)
	}
	if !s.Cosmetics.Weapon || !s.Cosmetics.Hat || s.Cosmetics.Bling {
		t.Errorf("Cosmetics = %+v, want weapon+hat", s.Cosmetics)
	}

	// Flags are sticky.
	ApplyUpgrade(s, types.Upgrade{Kind: types.UpgradeCoin, Value: 0.1})
	if !s.Cosmetics.Weapon {
		t.Error("weapon flag cleared by later upgrade")
	}
}

func TestUnknownKinds_NoChange(t *testing.T) {
	s := testState()
	before := *s

	if ApplyOrgan(s, types.Organ{Effect: "EXPLODE", Value: 10}) {
		t.Error("ApplyOrgan accepted unknown effect")
	}
	if ApplyItem(s, types.CraftableItem{Effect: "EXPLODE", Value: 10}) {
		t.Error("ApplyItem accepted unknown effect")
	}
	if ApplyUpgrade(s, types.Upgrade{Kind: "EXPLODE", Value: 10, Cosmetics: types.Cosmetics{Bling: true}}) {
		t.Error("ApplyUpgrade accepted unknown kind")
	}
	if s.HP != before.HP || s.Coins != before.Coins || s.Cosmetics != before.Cosmetics {
		t.Error("unknown effect changed state")
	}
}
