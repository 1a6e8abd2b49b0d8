// Package cli provides the plain line-mode front end: a prompt loop that
// feeds commands to the engine, meta-command dispatch and output formatting.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/nathoo/buffetcore/engine"
	"github.com/nathoo/buffetcore/engine/flavor"
	"github.com/nathoo/buffetcore/engine/resolve"
	"github.com/nathoo/buffetcore/engine/state"
	"github.com/nathoo/buffetcore/types"
)

const intro = "Welcome to Bob's Weird Buffet. Bob is hungry. Type /help if you are lost."

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	Flavor    *flavor.Describer
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool // echo each input line after the prompt (for script playback)
	AutoTick  bool // run the economy in the background while waiting for input

	mu      sync.Mutex // guards Out; ticks print from another goroutine
	lastCmd string     // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine, describer *flavor.Describer) *CLI {
	return &CLI{
		Engine:   eng,
		Flavor:   describer,
		In:       os.Stdin,
		Out:      os.Stdout,
		AutoTick: true,
	}
}

// Run starts the game loop until /quit, end of input or ctx is cancelled.
func (c *CLI) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if c.AutoTick {
		go c.Engine.Run(ctx, func(res types.Result) {
			c.printResult(res)
		})
	}

	c.printLine(intro)
	c.printStatus()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.In)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		c.print("> ")
		var input string
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			input = strings.TrimSpace(line)
		}
		if input == "" || strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return
			}
			continue
		}

		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		c.showResult(c.Engine.Step(input))
	}
}

// showResult prints an action's output and flavor text.
func (c *CLI) showResult(result types.Result) {
	c.printResult(result)
	c.narrate(result)
	if len(result.Output) == 0 && result.Flavor == nil {
		c.printLine("Nothing happens.")
	}
	if c.Trace {
		c.printTrace(result)
	}
}

// narrate resolves the flavor request, if any, and records it in the log.
func (c *CLI) narrate(result types.Result) {
	if result.Flavor == nil || c.Flavor == nil {
		return
	}
	text := c.Flavor.Describe(result.Flavor.Kind, result.Flavor.Context)
	c.Engine.Narrate(result.Flavor.Kind, text)
	c.printLine(text)
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	switch parts[0] {
	case "/quit", "/exit":
		c.printSystem("Bob waves goodbye with a greasy hand.")
		return true
	case "/help":
		c.cmdHelp()
	case "/state":
		c.cmdState()
	case "/shop":
		c.cmdShop()
	case "/minions":
		c.cmdMinions()
	case "/pantry":
		c.cmdPantry()
	case "/drop":
		payload := strings.TrimSpace(strings.TrimPrefix(input, "/drop"))
		if payload == "" {
			c.printSystem(`Usage: /drop {"type":"ORGAN","id":"liver"}`)
			break
		}
		c.showResult(c.Engine.Drop(payload))
	case "/tick":
		c.printResult(c.Engine.Tick())
	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}
	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", parts[0]))
	}
	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /quit     Exit game",
		"  /help     Show this help",
		"  /state    Show Bob's vitals and production rates",
		"  /shop     Show upgrades and minions for sale",
		"  /minions  Show hired minions",
		"  /pantry   Show pantry, organs, elements and recipes",
		"  /drop     Drop a JSON payload onto Bob, e.g. {\"type\":\"MEAL\"}",
		"  /tick     Advance the economy by one tick",
		"  /trace    Toggle event trace output",
		"",
		"Game commands:",
		"  hunt (h)               Go hunting for meat",
		"  cook (c)               Turn raw meat into a meal",
		"  eat [item] (e)         Eat a meal, a pantry item or an organ",
		"  craft <item>           Craft a pantry item",
		"  buy <upgrade>          Buy a shop upgrade",
		"  hire <minion>          Hire a minion",
		"  upgrade <minion>       Level up a hired minion",
		"  claim                  Claim the timed coin reward",
		"  again (g)              Repeat your last command",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) printStatus() {
	s := c.Engine.Snapshot()
	c.printSystem(fmt.Sprintf("HP %d/%d  Coins %s  Meat %d  Meals %d",
		int(s.HP), int(s.MaxHP), humanize.Comma(int64(s.Coins)), s.RawMeat, s.Meals))
}

func (c *CLI) cmdState() {
	s := c.Engine.Snapshot()
	r := c.Engine.Rates()
	seed, pos := c.Engine.RNGInfo()

	c.printStatus()
	c.printSystem(fmt.Sprintf("Hunt chance %.0f%%  Meat per hunt %d  Coin multiplier x%.2f",
		s.HuntChance*100, s.MeatYield, s.CoinMultiplier))
	c.printSystem(fmt.Sprintf("Rates/s: hunt %.2f  cook %.2f  feed %.2f  leech %.2f",
		r.Hunter, r.Chef, r.Feeder, r.Leech))
	if left := c.Engine.RewardRemaining(); left > 0 {
		c.printSystem(fmt.Sprintf("Reward ready in %s", formatCountdown(left.Seconds())))
	} else {
		c.printSystem("Reward ready! Type claim.")
	}
	if len(s.Inventory) > 0 {
		c.printSystem("Inventory: " + strings.Join(s.Inventory, ", "))
	}
	c.printSystem(fmt.Sprintf("RNG seed %d, position %d", seed, pos))
}

func (c *CLI) cmdShop() {
	var lines []string
	c.Engine.View(func(s *types.GameState) {
		defs := c.Engine.Defs()
		lines = append(lines, "Upgrades:")
		for _, u := range state.VisibleUpgrades(s, defs, resolve.ShopWindow) {
			lines = append(lines, fmt.Sprintf("  %-24s %8s  %s", u.Name, humanize.Comma(int64(u.Cost)), u.Description))
		}
		lines = append(lines, "Minions:")
		for _, m := range state.HireableMinions(s, defs, resolve.HireWindow) {
			lines = append(lines, fmt.Sprintf("  %-24s %8s  %s %.2f/s", m.Name, humanize.Comma(int64(m.Cost)), roleLabel(m.Role), m.Rate))
		}
	})
	for _, l := range lines {
		c.printLine(l)
	}
}

func (c *CLI) cmdMinions() {
	var lines []string
	c.Engine.View(func(s *types.GameState) {
		defs := c.Engine.Defs()
		for _, id := range state.OwnedMinions(s, defs) {
			m, _ := defs.Minion(id)
			ms := s.Minions[id]
			cost := state.MinionUpgradeCost(c.Engine.Balance().Minions, m.Role, ms.Level)
			lines = append(lines, fmt.Sprintf("  %-24s x%-3d lv %-3d xp %-5d %s  upgrade %s",
				m.Name, ms.Count, ms.Level, ms.XP, roleLabel(m.Role), humanize.Comma(int64(cost))))
		}
	})
	if len(lines) == 0 {
		c.printLine("Bob works alone.")
		return
	}
	for _, l := range lines {
		c.printLine(l)
	}
}

func (c *CLI) cmdPantry() {
	s := c.Engine.Snapshot()
	defs := c.Engine.Defs()

	c.printCounts("Pantry", s.Pantry, defs)
	c.printCounts("Organs", s.Organs, defs)
	c.printCounts("Elements", s.Elements, defs)

	c.printLine("Recipes:")
	for _, item := range defs.Craftables {
		c.printLine(fmt.Sprintf("  %-22s %s", item.Name, recipeText(item, defs)))
	}
}

func (c *CLI) printCounts(title string, counts map[string]int, defs *state.Defs) {
	var parts []string
	for id, n := range counts {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, defs.ItemName(id)))
		}
	}
	if len(parts) == 0 {
		return
	}
	sort.Strings(parts)
	c.printLine(title + ": " + strings.Join(parts, ", "))
}

// recipeText lists ingredients in a stable order.
func recipeText(item types.CraftableItem, defs *state.Defs) string {
	ids := make([]string, 0, len(item.Ingredients))
	for id := range item.Ingredients {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d %s", item.Ingredients[id], defs.ItemName(id))
	}
	return strings.Join(parts, " + ")
}

func roleLabel(r types.Role) string {
	switch r {
	case types.RoleHunter:
		return "hunts"
	case types.RoleChef:
		return "cooks"
	case types.RoleFeeder:
		return "feeds"
	case types.RoleLeech:
		return "leeches"
	}
	return strings.ToLower(string(r))
}

// formatCountdown renders seconds as m:ss.
func formatCountdown(seconds float64) string {
	total := int(seconds + 0.999)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func (c *CLI) printTrace(result types.Result) {
	for _, e := range result.Events {
		c.printSystem(fmt.Sprintf("[trace] %s %v", e.Type, e.Data))
	}
	if result.Flavor != nil {
		c.printSystem(fmt.Sprintf("[trace] flavor %s %q", result.Flavor.Kind, result.Flavor.Context))
	}
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
