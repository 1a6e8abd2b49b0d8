// Package content provides the buffet's content tables: the fixed organs,
// elements, recipes and starter upgrades, plus the procedurally generated
// minion roster and upgrade catalog.
package content

import (
	"strings"

	"github.com/nathoo/buffetcore/engine/state"
	"github.com/nathoo/buffetcore/types"
)

// Tables is a complete set of content definitions before indexing.
type Tables struct {
	Minions    []types.Minion
	Organs     []types.Organ
	Elements   []types.Element
	Craftables []types.CraftableItem
	Upgrades   []types.Upgrade
}

// Defs indexes the tables for the engine.
func (t Tables) Defs() *state.Defs {
	return state.NewDefs(t.Minions, t.Organs, t.Elements, t.Craftables, t.Upgrades)
}

// Static returns the hand-written tables with no generated minions and only
// the starter upgrades.
func Static() Tables {
	return Tables{
		Organs:     organs(),
		Elements:   elements(),
		Craftables: craftables(),
		Upgrades:   starterUpgrades(),
	}
}

func organs() []types.Organ {
	return []types.Organ{
		{ID: "eyeball", Name: "Eyeball", Chance: 0.25, Description: "It stares back.", Effect: types.OrganHeal, Value: 10},
		{ID: "lung", Name: "Lung", Chance: 0.15, Description: "Still breathing.", Effect: types.OrganHeal, Value: 30},
		{ID: "kidney", Name: "Kidney", Chance: 0.12, Description: "A healthy snack.", Effect: types.OrganCoins, Value: 50},
		{ID: "liver", Name: "Liver", Chance: 0.08, Description: "Full of vitamins.", Effect: types.OrganCoins, Value: 150},
		{ID: "heart", Name: "Heart", Chance: 0.04, Description: "Thump. Thump.", Effect: types.OrganBuffMaxHP, Value: 2},
		{ID: "brain", Name: "Brain", Chance: 0.01, Description: "Knowledge is power.", Effect: types.OrganBuffHunt, Value: 0.01},
	}
}

func elements() []types.Element {
	return []types.Element{
		{ID: "gold", Name: "Gold", Description: "Shiny and heavy."},
		{ID: "iron", Name: "Iron", Description: "Magnetic metal."},
		{ID: "copper", Name: "Copper", Description: "Conducts weird energy."},
		{ID: "rust", Name: "Rust", Description: "Flaky red dust."},
		{ID: "platinum", Name: "Platinum", Description: "Expensive metal."},
		{ID: "kylamonias", Name: "Kylamonias", Description: "A glowing, vibrating isotope."},
	}
}

func craftables() []types.CraftableItem {
	return []types.CraftableItem{
		{
			ID:          "meat_brick",
			Name:        "Meat Brick",
			Ingredients: map[string]int{types.IngredientRawMeat: 25},
			Description: "It's just compressed meat. Very dense. Heals 50 HP.",
			Effect:      types.ItemHeal,
			Value:       50,
			Flavor:      "Heavy.",
		},
		{
			ID:          "seeing_eye_soup",
			Name:        "Seeing Eye Soup",
			Ingredients: map[string]int{types.IngredientMeals: 2, "eyeball": 4},
			Description: "The soup watches you eat it. +5% Hunt Chance.",
			Effect:      types.ItemBuffHunt,
			Value:       0.05,
			Flavor:      "Blink. Blink.",
		},
		{
			ID:          "iron_gut_shake",
			Name:        "Iron Gut Shake",
			Ingredients: map[string]int{types.IngredientRawMeat: 50, "iron": 1},
			Description: "Hardens your insides. +50 Max HP.",
			Effect:      types.ItemBuffMaxHP,
			Value:       50,
			Flavor:      "Tastes like pennies.",
		},
		{
			ID:          "golden_nugget",
			Name:        "Golden Nugget",
			Ingredients: map[string]int{"gold": 1},
			Description: "It's pure gold. Worth 5000 Coins.",
			Effect:      types.ItemCoinWind,
			Value:       5000,
			Flavor:      "We're rich!",
		},
		{
			ID:          "the_abomination",
			Name:        "The Abomination",
			Ingredients: map[string]int{"heart": 1, "lung": 1, "brain": 1, "liver": 1},
			Description: "Why did you make this? +200 Max HP.",
			Effect:      types.ItemBuffMaxHP,
			Value:       200,
			Flavor:      "It's alive...",
		},
		{
			ID:          "golden_liver",
			Name:        "Golden Liver",
			Ingredients: map[string]int{"liver": 1, "gold": 1},
			Description: "Rich food. Instant 1500 Coins.",
			Effect:      types.ItemCoinWind,
			Value:       1500,
			Flavor:      "Metallic aftertaste.",
		},
	}
}

func starterUpgrades() []types.Upgrade {
	return []types.Upgrade{
		newUpgrade("starter_spork", "Rusty Spork", "+1 Meat per hunt.", 50, types.UpgradeMeat, 1),
		newUpgrade("starter_shoes", "Sneaky Shoes", "+15% Hunt Chance.", 150, types.UpgradeHunt, 0.15),
		newUpgrade("starter_stomach", "Iron Stomach", "+50 Max HP.", 300, types.UpgradeHP, 50),
		newUpgrade("starter_pot", "Fancy Cauldron", "+100% Coin Value.", 1000, types.UpgradeCoin, 1.0),
	}
}

func newUpgrade(id, name, desc string, cost int, kind types.UpgradeKind, value float64) types.Upgrade {
	return types.Upgrade{
		ID:          id,
		Name:        name,
		Description: desc,
		Cost:        cost,
		Kind:        kind,
		Value:       value,
		Cosmetics:   CosmeticsFor(name),
	}
}

var (
	weaponWords = []string{"spork", "knife", "axe", "cleaver", "saw"}
	hatWords    = []string{"helmet", "mask", "hood"}
	blingWords  = []string{"golden", "divine", "cosmic"}
)

// CosmeticsFor derives the avatar flags an upgrade name unlocks. Words are
// matched whole, so "Sawdust" is not a weapon.
func CosmeticsFor(name string) types.Cosmetics {
	words := strings.Fields(strings.ToLower(name))
	return types.Cosmetics{
		Weapon: anyWord(words, weaponWords),
		Hat:    anyWord(words, hatWords),
		Bling:  anyWord(words, blingWords),
	}
}

func anyWord(words, set []string) bool {
	for _, w := range words {
		for _, s := range set {
			if w == s {
				return true
			}
		}
	}
	return false
}
