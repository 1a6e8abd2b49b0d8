// Package types defines the shared data structures for the buffetcore engine.
// It holds type definitions only: no logic and no methods.
package types

import "time"

// Role is the job a minion performs every tick.
type Role string

const (
	RoleHunter Role = "HUNTER"
	RoleChef   Role = "CHEF"
	RoleFeeder Role = "FEEDER"
	RoleLeech  Role = "LEECH"
)

// OrganEffect is what consuming an organ does.
type OrganEffect string

const (
	OrganHeal      OrganEffect = "HEAL"
	OrganCoins     OrganEffect = "COINS"
	OrganBuffMaxHP OrganEffect = "BUFF_MAX_HP"
	OrganBuffHunt  OrganEffect = "BUFF_HUNT"
)

// ItemEffect is what eating a crafted pantry item does.
type ItemEffect string

const (
	ItemHeal      ItemEffect = "HEAL"
	ItemBuffHunt  ItemEffect = "BUFF_HUNT"
	ItemBuffMaxHP ItemEffect = "BUFF_MAX_HP"
	ItemCoinWind  ItemEffect = "COIN_WIND"
)

// UpgradeKind tags the permanent effect of a shop upgrade.
type UpgradeKind string

const (
	UpgradeMeat UpgradeKind = "MEAT"
	UpgradeHunt UpgradeKind = "HUNT"
	UpgradeHP   UpgradeKind = "HP"
	UpgradeCoin UpgradeKind = "COIN"
)

// ActionKind classifies activity log entries and flavor text.
type ActionKind string

const (
	ActionHunt          ActionKind = "HUNT"
	ActionCook          ActionKind = "COOK"
	ActionEat           ActionKind = "EAT"
	ActionFailHunt      ActionKind = "FAIL_HUNT"
	ActionUnlock        ActionKind = "UNLOCK"
	ActionHire          ActionKind = "HIRE"
	ActionUpgradeMinion ActionKind = "UPGRADE_MINION"
	ActionCraft         ActionKind = "CRAFT"
	ActionEatSpecial    ActionKind = "EAT_SPECIAL"
	ActionConsumeOrgan  ActionKind = "CONSUME_ORGAN"
	ActionLevelUp       ActionKind = "LEVEL_UP"
)

// Special ingredient ids that refer to raw resources rather than organs or elements.
const (
	IngredientRawMeat = "rawMeat"
	IngredientMeals   = "meals"
)

// Minion is a hireable automated worker.
type Minion struct {
	ID          string
	Name        string
	Role        Role
	Cost        int
	Rate        float64 // units per second at level 1
	Description string
}

// Organ is a per-kill drop that can be eaten for an effect or used in crafting.
type Organ struct {
	ID          string
	Name        string
	Description string
	Chance      float64 // drop chance per kill, 0.0 to 1.0
	Effect      OrganEffect
	Value       float64
}

// Element is an inert collectible used only as a crafting ingredient.
type Element struct {
	ID          string
	Name        string
	Description string
}

// CraftableItem is a pantry recipe.
type CraftableItem struct {
	ID          string
	Name        string
	Description string
	Flavor      string
	Ingredients map[string]int // rawMeat, meals, organ id or element id → quantity
	Effect      ItemEffect
	Value       float64
}

// Cosmetics are capability flags unlocked by purchased upgrades.
type Cosmetics struct {
	Weapon bool
	Hat    bool
	Bling  bool
}

// Upgrade is a one-time shop purchase with a permanent effect.
type Upgrade struct {
	ID          string
	Name        string
	Description string
	Cost        int
	Kind        UpgradeKind
	Value       float64
	Cosmetics   Cosmetics
}

// MinionState is the runtime roster entry for one minion type.
type MinionState struct {
	Count int
	XP    int
	Level int
}

// GameState is the complete mutable game state.
type GameState struct {
	HP             float64
	MaxHP          float64
	Coins          int
	RawMeat        int
	Meals          int
	HuntChance     float64
	MeatYield      int
	CoinMultiplier float64
	LastRewardTime time.Time
	Inventory      []string
	Cosmetics      Cosmetics
	Purchased      map[string]bool // upgrade id → purchased
	Minions        map[string]MinionState
	Pantry         map[string]int
	Organs         map[string]int
	Elements       map[string]int
}

// Intent is the parsed representation of a player command.
type Intent struct {
	Verb   string
	Object string // optional
}

// Event is a discrete audio/visual trigger emitted after a state change.
type Event struct {
	Type string
	Data map[string]any
}

// FlavorRequest asks the flavor-text collaborator to describe an action.
type FlavorRequest struct {
	Kind    ActionKind
	Context string
}

// Result is the output of a single action or tick.
type Result struct {
	Output []string
	Events []Event
	Flavor *FlavorRequest // nil when the action has no descriptive text
}

// LogEntry is one line of the player-facing activity log.
type LogEntry struct {
	ID   string
	Text string
	Kind ActionKind
	Time time.Time
}
