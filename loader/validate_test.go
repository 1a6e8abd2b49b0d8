package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/nathoo/buffetcore/content"
	"github.com/nathoo/buffetcore/types"
)

func validTables() content.Tables {
	t := content.Static()
	t.Minions = []types.Minion{
		{ID: "grub", Name: "Grub", Role: types.RoleHunter, Cost: 50, Rate: 0.2},
	}
	return t
}

func validationErrors(t *testing.T, tables content.Tables) *ValidationError {
	t.Helper()
	err := Validate(tables)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	return ve
}

func assertContains(t *testing.T, strs []string, substr string) {
	t.Helper()
	for _, s := range strs {
		if strings.Contains(s, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got %v", substr, strs)
}

func TestValidate_ValidTables(t *testing.T) {
	if err := Validate(validTables()); err != nil {
		t.Errorf("valid tables failed: %v", err)
	}
	if err := Validate(content.Generate(tinyParams())); err != nil {
		t.Errorf("generated tables failed: %v", err)
	}
}

func TestValidate_UnknownKinds(t *testing.T) {
	tables := validTables()
	tables.Minions[0].Role = "JUGGLER"
	tables.Organs[0].Effect = "EXPLODE"
	tables.Craftables[0].Effect = "LEVITATE"
	tables.Upgrades[0].Kind = "LUCK"

	ve := validationErrors(t, tables)
	assertContains(t, ve.Errors, `unknown role "JUGGLER"`)
	assertContains(t, ve.Errors, `unknown effect "EXPLODE"`)
	assertContains(t, ve.Errors, `unknown effect "LEVITATE"`)
	assertContains(t, ve.Errors, `unknown kind "LUCK"`)
}

func TestValidate_Ranges(t *testing.T) {
	tables := validTables()
	tables.Organs[1].Chance = 1.5
	tables.Minions[0].Cost = -1
	tables.Minions[0].Rate = -0.5
	tables.Upgrades[0].Cost = -10

	ve := validationErrors(t, tables)
	assertContains(t, ve.Errors, "outside [0, 1]")
	assertContains(t, ve.Errors, "negative cost -1")
	assertContains(t, ve.Errors, "negative rate")
	assertContains(t, ve.Errors, "negative cost -10")
}

func TestValidate_DuplicateAndMissing(t *testing.T) {
	tables := validTables()
	tables.Elements = append(tables.Elements, types.Element{ID: "gold", Name: "Fool's Gold"})
	tables.Upgrades = append(tables.Upgrades, types.Upgrade{ID: "nameless", Kind: types.UpgradeHP})

	ve := validationErrors(t, tables)
	assertContains(t, ve.Errors, `duplicate element id "gold"`)
	assertContains(t, ve.Errors, `upgrade "nameless" has no name`)
}

func TestValidate_UndefinedIngredient(t *testing.T) {
	tables := validTables()
	tables.Craftables = append(tables.Craftables, types.CraftableItem{
		ID: "toe_jam", Name: "Toe Jam", Effect: types.ItemHeal,
		Ingredients: map[string]int{"toe": 2, types.IngredientMeals: 0},
	})

	ve := validationErrors(t, tables)
	assertContains(t, ve.Errors, `undefined ingredient "toe"`)
	assertContains(t, ve.Errors, `ingredient "meals" has quantity 0`)
}

func TestValidate_Warnings(t *testing.T) {
	tables := validTables()
	tables.Organs[0].Chance = 0
	tables.Minions[0].Role = "NOPE" // force an error so the warnings come back

	ve := validationErrors(t, tables)
	assertContains(t, ve.Warnings, `organ "eyeball" never drops`)
}

func TestValidate_NegativeValues(t *testing.T) {
	tests := []struct {
		name  string
		tweak func(*content.Tables)
		want  string
	}{
		{"organ buff hunt", func(tb *content.Tables) { tb.Organs[5].Value = -0.5 }, `organ "brain" has negative value -0.5`},
		{"organ heal", func(tb *content.Tables) { tb.Organs[0].Value = -10 }, `organ "eyeball" has negative value -10`},
		{"craftable", func(tb *content.Tables) { tb.Craftables[1].Value = -0.05 }, "has negative value -0.05"},
		{"upgrade hunt", func(tb *content.Tables) {
			tb.Upgrades = append(tb.Upgrades, types.Upgrade{ID: "cursed_boots", Name: "Cursed Boots", Kind: types.UpgradeHunt, Value: -0.5})
		}, `upgrade "cursed_boots" has negative value -0.5`},
		{"upgrade meat", func(tb *content.Tables) {
			tb.Upgrades = append(tb.Upgrades, types.Upgrade{ID: "leaky_sack", Name: "Leaky Sack", Kind: types.UpgradeMeat, Value: -3})
		}, `upgrade "leaky_sack" has negative value -3`},
		{"upgrade coin", func(tb *content.Tables) {
			tb.Upgrades = append(tb.Upgrades, types.Upgrade{ID: "tax_man", Name: "Tax Man", Kind: types.UpgradeCoin, Value: -2})
		}, `upgrade "tax_man" has negative value -2`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables := validTables()
			tt.tweak(&tables)
			ve := validationErrors(t, tables)
			assertContains(t, ve.Errors, tt.want)
		})
	}
}

func TestValidate_MeatUpgradeRoundsToZero(t *testing.T) {
	tables := validTables()
	tables.Upgrades = append(tables.Upgrades, types.Upgrade{ID: "crumb_bag", Name: "Crumb Bag", Kind: types.UpgradeMeat, Value: 0.4})
	tables.Minions[0].Role = "NOPE"

	ve := validationErrors(t, tables)
	assertContains(t, ve.Warnings, `upgrade "crumb_bag" adds no meat per hunt`)
	for _, e := range ve.Errors {
		if strings.Contains(e, "crumb_bag") {
			t.Errorf("rounding meat upgrade should only warn, got error %q", e)
		}
	}
}
