package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/nathoo/buffetcore/engine/resolve"
	"github.com/nathoo/buffetcore/engine/state"
	"github.com/nathoo/buffetcore/types"
)

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	cmd, _, _ := strings.Cut(input, " ")

	switch cmd {
	case "/quit", "/exit":
		return []string{"Bob waves goodbye with a greasy hand."}, true
	case "/help":
		return cmdHelp(), false
	case "/state":
		return m.cmdState(), false
	case "/shop":
		return m.cmdShop(), false
	case "/minions":
		return m.cmdMinions(), false
	case "/pantry":
		return m.cmdPantry(), false
	case "/drop":
		return []string{`Usage: /drop {"type":"ORGAN","id":"liver"}`}, false
	case "/trace":
		m.trace = !m.trace
		if m.trace {
			return []string{"Trace output enabled."}, false
		}
		return []string{"Trace output disabled."}, false
	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
	}
}

func cmdHelp() []string {
	return []string{
		"System:",
		"  /quit           Exit game",
		"  /help           Show this help",
		"  /state          Bob's vitals, production rates and RNG position",
		"  /shop           Upgrades and minions for sale",
		"  /minions        Hired minions",
		"  /pantry         Pantry, organs, elements and recipes",
		"  /drop <json>    Drop an organ, pantry item or meal onto Bob",
		"  /trace          Toggle event trace output",
		"",
		"Game commands:",
		"  hunt (h)        Go hunting for meat            [F1]",
		"  cook (c)        Turn raw meat into a meal      [F2]",
		"  eat [item] (e)  Eat a meal, pantry item or organ [F3]",
		"  claim           Claim the timed coin reward    [F4]",
		"  craft <item>    Craft a pantry item",
		"  buy <upgrade>   Buy a shop upgrade",
		"  hire <minion>   Hire a minion",
		"  upgrade <minion> Level up a hired minion",
		"  again (g)       Repeat your last command",
		"",
		"Navigation: PgUp/PgDn to scroll, Up/Down for command history",
	}
}

func (m *Model) cmdState() []string {
	s := m.engine.Snapshot()
	r := m.engine.Rates()
	l := m.engine.Ledger()
	seed, pos := m.engine.RNGInfo()

	out := []string{
		fmt.Sprintf("HP %.1f/%.0f  Coins %s  Meat %d  Meals %d", s.HP, s.MaxHP, humanize.Comma(int64(s.Coins)), s.RawMeat, s.Meals),
		fmt.Sprintf("Hunt chance %.0f%%  Meat per hunt %d  Coin multiplier x%.2f", s.HuntChance*100, s.MeatYield, s.CoinMultiplier),
		fmt.Sprintf("Rates/s: hunt %.2f  cook %.2f  feed %.2f  leech %.2f", r.Hunter, r.Chef, r.Feeder, r.Leech),
		fmt.Sprintf("Carried over: meat %.2f  meals %.2f  kills %.2f  feeds %.2f", l.Meat, l.Meals, l.Kills, l.Feeds),
		rewardText(m.engine.RewardRemaining()),
	}
	if len(s.Inventory) > 0 {
		out = append(out, "Inventory: "+strings.Join(s.Inventory, ", "))
	}
	return append(out, fmt.Sprintf("RNG seed %d, position %d", seed, pos))
}

func (m *Model) cmdShop() []string {
	out := []string{"Upgrades:"}
	m.engine.View(func(s *types.GameState) {
		defs := m.engine.Defs()
		for _, u := range state.VisibleUpgrades(s, defs, resolve.ShopWindow) {
			out = append(out, fmt.Sprintf("  %-24s %8s  %s", u.Name, humanize.Comma(int64(u.Cost)), u.Description))
		}
		out = append(out, "Minions:")
		for _, mn := range state.HireableMinions(s, defs, resolve.HireWindow) {
			out = append(out, fmt.Sprintf("  %-24s %8s  %s %.2f/s", mn.Name, humanize.Comma(int64(mn.Cost)), strings.ToLower(string(mn.Role)), mn.Rate))
		}
	})
	return out
}

func (m *Model) cmdMinions() []string {
	var out []string
	bal := m.engine.Balance().Minions
	m.engine.View(func(s *types.GameState) {
		defs := m.engine.Defs()
		for _, id := range state.OwnedMinions(s, defs) {
			mn, _ := defs.Minion(id)
			ms := s.Minions[id]
			out = append(out, fmt.Sprintf("  %-24s x%-3d lv %-3d xp %-5d upgrade %s",
				mn.Name, ms.Count, ms.Level, ms.XP, humanize.Comma(int64(state.MinionUpgradeCost(bal, mn.Role, ms.Level)))))
		}
	})
	if len(out) == 0 {
		return []string{"Bob works alone."}
	}
	return out
}

func (m *Model) cmdPantry() []string {
	s := m.engine.Snapshot()
	defs := m.engine.Defs()

	var out []string
	for _, group := range []struct {
		title  string
		counts map[string]int
	}{
		{"Pantry", s.Pantry},
		{"Organs", s.Organs},
		{"Elements", s.Elements},
	} {
		var parts []string
		for id, n := range group.counts {
			if n > 0 {
				parts = append(parts, fmt.Sprintf("%d %s", n, defs.ItemName(id)))
			}
		}
		if len(parts) > 0 {
			sort.Strings(parts)
			out = append(out, group.title+": "+strings.Join(parts, ", "))
		}
	}

	out = append(out, "Recipes:")
	for _, item := range defs.Craftables {
		ids := make([]string, 0, len(item.Ingredients))
		for id := range item.Ingredients {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = fmt.Sprintf("%d %s", item.Ingredients[id], defs.ItemName(id))
		}
		out = append(out, fmt.Sprintf("  %-22s %s", item.Name, strings.Join(parts, " + ")))
	}
	return out
}
