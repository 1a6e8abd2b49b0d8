package content

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/nathoo/buffetcore/config"
	"github.com/nathoo/buffetcore/types"
)

const (
	minionBaseCost = 50
	feederBaseCost = 250
	leechBaseCost  = 150
	rosterGrowth   = 1.15

	upgradeBaseCost = 200
	upgradeGrowth   = 1.3
)

// Generate returns the static tables plus a procedurally generated roster
// and upgrade catalog. The same parameters always produce the same tables.
func Generate(p config.Content) Tables {
	rng := rand.New(rand.NewSource(p.Seed))

	t := Static()
	t.Minions = append(t.Minions, generateMinions(rng, p.Hunters)...)
	t.Minions = append(t.Minions, generateFeeders(rng, p.Feeders)...)
	t.Minions = append(t.Minions, generateLeeches(rng, p.Leeches)...)
	t.Upgrades = append(t.Upgrades, generateUpgrades(p.UpgradesPerKind)...)
	SortUpgrades(t.Upgrades)
	return t
}

// SortUpgrades orders upgrades by cost, keeping ties in insertion order.
func SortUpgrades(ups []types.Upgrade) {
	sort.SliceStable(ups, func(i, j int) bool { return ups[i].Cost < ups[j].Cost })
}

func pick(rng *rand.Rand, words []string) string {
	return words[rng.Intn(len(words))]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func rosterCost(base, i int) int {
	return int(math.Floor(float64(base) * math.Pow(rosterGrowth, float64(i))))
}

// generateMinions builds the hunter and chef roster. Roughly 60% are hunters.
func generateMinions(rng *rand.Rand, n int) []types.Minion {
	out := make([]types.Minion, 0, n)
	for i := 0; i < n; i++ {
		role := types.RoleChef
		if rng.Float64() < 0.6 {
			role = types.RoleHunter
		}
		prefix := pick(rng, minionPrefixes)
		name := pick(rng, minionNames)
		title := pick(rng, minionTitles)
		desc := pick(rng, minionDescriptions)

		var rate float64
		if role == types.RoleHunter {
			rate = 0.1 + float64(i)*0.05 + rng.Float64()*0.1
		} else {
			rate = 0.05 + float64(i)*0.03 + rng.Float64()*0.05
		}

		out = append(out, types.Minion{
			ID:          fmt.Sprintf("minion_%d_%s", i, strings.ToLower(name)),
			Name:        fmt.Sprintf("%s %s %s", prefix, name, title),
			Role:        role,
			Cost:        rosterCost(minionBaseCost, i),
			Rate:        round2(rate),
			Description: desc,
		})
	}
	return out
}

func generateFeeders(rng *rand.Rand, n int) []types.Minion {
	out := make([]types.Minion, 0, n)
	for i := 0; i < n; i++ {
		prefix := pick(rng, minionPrefixes)
		name := pick(rng, minionNames)
		title := pick(rng, feederTitles)
		desc := pick(rng, feederDescriptions)
		rate := 0.05 + float64(i)*0.04 + rng.Float64()*0.05

		out = append(out, types.Minion{
			ID:          fmt.Sprintf("feeder_%d_%s", i, strings.ToLower(name)),
			Name:        fmt.Sprintf("%s %s %s", prefix, name, title),
			Role:        types.RoleFeeder,
			Cost:        rosterCost(feederBaseCost, i),
			Rate:        round2(rate),
			Description: desc,
		})
	}
	return out
}

// generateLeeches builds the healers. Their rate is HP per second.
func generateLeeches(rng *rand.Rand, n int) []types.Minion {
	out := make([]types.Minion, 0, n)
	for i := 0; i < n; i++ {
		prefix := pick(rng, minionPrefixes)
		name := pick(rng, minionNames)
		title := pick(rng, leechTitles)
		desc := pick(rng, leechDescriptions)
		rate := 1 + float64(i)*0.5 + rng.Float64()

		out = append(out, types.Minion{
			ID:          fmt.Sprintf("leech_%d_%s", i, strings.ToLower(name)),
			Name:        fmt.Sprintf("%s %s %s", prefix, name, title),
			Role:        types.RoleLeech,
			Cost:        rosterCost(leechBaseCost, i),
			Rate:        round2(rate),
			Description: desc,
		})
	}
	return out
}

// generateUpgrades builds n upgrades of each kind with costs growing 30% per
// step. Names come from fixed offsets into the word lists, not the RNG.
func generateUpgrades(n int) []types.Upgrade {
	out := make([]types.Upgrade, 0, 4*n)
	adj := func(i int) string { return adjectives[i%len(adjectives)] }

	for i := 0; i < n; i++ {
		base := upgradeBaseCost * math.Pow(upgradeGrowth, float64(i))
		cost := func(scale float64) int { return int(math.Floor(base * scale)) }

		meat := float64(1 + i/3)
		out = append(out, newUpgrade(
			fmt.Sprintf("gen_meat_%d", i),
			adj(i)+" "+meatNouns[i%len(meatNouns)],
			fmt.Sprintf("+%d Meat per hunt.", int(meat)),
			cost(1.5), types.UpgradeMeat, meat))

		hunt := 0.01 + float64(i)*0.002
		out = append(out, newUpgrade(
			fmt.Sprintf("gen_hunt_%d", i),
			adj(i+5)+" "+huntNouns[i%len(huntNouns)],
			fmt.Sprintf("+%.1f%% Hunt Chance.", hunt*100),
			cost(1.2), types.UpgradeHunt, hunt))

		hp := float64(20 + i*10)
		out = append(out, newUpgrade(
			fmt.Sprintf("gen_hp_%d", i),
			adj(i+10)+" "+hpNouns[i%len(hpNouns)],
			fmt.Sprintf("+%d Max HP.", int(hp)),
			cost(0.8), types.UpgradeHP, hp))

		coin := 0.1 + float64(i)*0.05
		out = append(out, newUpgrade(
			fmt.Sprintf("gen_coin_%d", i),
			adj(i+15)+" "+coinNouns[i%len(coinNouns)],
			fmt.Sprintf("+%.0f%% Coin Value.", coin*100),
			cost(2.0), types.UpgradeCoin, coin))
	}
	return out
}
