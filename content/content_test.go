package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/buffetcore/config"
	"github.com/nathoo/buffetcore/types"
)

func smallParams(seed int64) config.Content {
	return config.Content{Seed: seed, Hunters: 30, Feeders: 10, Leeches: 5, UpgradesPerKind: 8}
}

func TestStatic_Tables(t *testing.T) {
	st := Static()
	assert.Len(t, st.Organs, 6)
	assert.Len(t, st.Elements, 6)
	assert.Len(t, st.Craftables, 6)
	assert.Len(t, st.Upgrades, 4)
	assert.Empty(t, st.Minions)

	defs := st.Defs()
	for _, c := range st.Craftables {
		for id := range c.Ingredients {
			if id == types.IngredientRawMeat || id == types.IngredientMeals {
				continue
			}
			_, organ := defs.Organ(id)
			_, element := defs.Element(id)
			assert.True(t, organ || element, "%s uses unknown ingredient %q", c.ID, id)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(smallParams(42))
	b := Generate(smallParams(42))
	require.Equal(t, a, b)

	c := Generate(smallParams(43))
	assert.NotEqual(t, a.Minions, c.Minions)
	// Upgrade names do not depend on the seed.
	assert.Equal(t, a.Upgrades, c.Upgrades)
}

func TestGenerate_Counts(t *testing.T) {
	tables := Generate(smallParams(1))
	require.Len(t, tables.Minions, 45)
	assert.Len(t, tables.Upgrades, 4+4*8)

	roles := map[types.Role]int{}
	for _, m := range tables.Minions {
		roles[m.Role]++
	}
	assert.Equal(t, 30, roles[types.RoleHunter]+roles[types.RoleChef])
	assert.Equal(t, 10, roles[types.RoleFeeder])
	assert.Equal(t, 5, roles[types.RoleLeech])
}

func TestGenerate_MinionShape(t *testing.T) {
	tables := Generate(smallParams(7))
	seen := map[string]bool{}

	for _, m := range tables.Minions {
		assert.False(t, seen[m.ID], "duplicate id %s", m.ID)
		seen[m.ID] = true
		assert.Len(t, strings.Fields(m.Name), 4, "name %q", m.Name)
		assert.Positive(t, m.Rate)
		assert.Equal(t, m.Rate, round2(m.Rate))
	}

	first := tables.Minions[0]
	assert.True(t, strings.HasPrefix(first.ID, "minion_0_"))
	assert.Equal(t, 50, first.Cost)
	assert.Equal(t, 57, tables.Minions[1].Cost)

	feeder := tables.Minions[30]
	assert.True(t, strings.HasPrefix(feeder.ID, "feeder_0_"))
	assert.Equal(t, 250, feeder.Cost)
	assert.InDelta(t, 0.075, feeder.Rate, 0.03)

	leech := tables.Minions[40]
	assert.True(t, strings.HasPrefix(leech.ID, "leech_0_"))
	assert.Equal(t, 150, leech.Cost)
	assert.GreaterOrEqual(t, leech.Rate, 1.0)
	assert.Less(t, leech.Rate, 2.01)
}

func TestGenerate_UpgradesSorted(t *testing.T) {
	tables := Generate(smallParams(1))
	ups := tables.Upgrades

	for i := 1; i < len(ups); i++ {
		assert.LessOrEqual(t, ups[i-1].Cost, ups[i].Cost, "%s before %s", ups[i-1].ID, ups[i].ID)
	}
	assert.Equal(t, "starter_spork", ups[0].ID)
	assert.Equal(t, "starter_shoes", ups[1].ID)
	assert.Equal(t, "gen_hp_0", ups[2].ID)

	defs := tables.Defs()
	meat, ok := defs.Upgrade("gen_meat_0")
	require.True(t, ok)
	assert.Equal(t, "Rusty Spork", meat.Name)
	assert.Equal(t, 300, meat.Cost)
	assert.Equal(t, types.UpgradeMeat, meat.Kind)

	hunt, _ := defs.Upgrade("gen_hunt_0")
	assert.Equal(t, "Spiky Net", hunt.Name)
	assert.Equal(t, 240, hunt.Cost)
	assert.Equal(t, "+1.0% Hunt Chance.", hunt.Description)

	coin, _ := defs.Upgrade("gen_coin_0")
	assert.Equal(t, 400, coin.Cost)
	assert.Equal(t, "+10% Coin Value.", coin.Description)
}

func TestCosmeticsFor(t *testing.T) {
	tests := []struct {
		name string
		want types.Cosmetics
	}{
		{"Rusty Spork", types.Cosmetics{Weapon: true}},
		{"Haunted Helmet", types.Cosmetics{Hat: true}},
		{"Golden Chainsaw", types.Cosmetics{Bling: true}},
		{"Cosmic Axe", types.Cosmetics{Weapon: true, Bling: true}},
		{"Sawdust Mask", types.Cosmetics{Hat: true}},
		{"Sneaky Shoes", types.Cosmetics{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CosmeticsFor(tt.name), tt.name)
	}

	tables := Generate(smallParams(1))
	spork, _ := tables.Defs().Upgrade("starter_spork")
	assert.True(t, spork.Cosmetics.Weapon)
	helmet, _ := tables.Defs().Upgrade("gen_hp_4")
	assert.Equal(t, "Haunted Helmet", helmet.Name)
	assert.True(t, helmet.Cosmetics.Hat)
}
