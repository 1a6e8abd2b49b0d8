// Package config holds the balance constants, starting state and content
// generation parameters. Values come from Default(), optionally overlaid by
// a YAML file and then by environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Balance is the full tunable configuration of a session.
type Balance struct {
	TickInterval   time.Duration `yaml:"tick_interval"`
	RewardInterval time.Duration `yaml:"reward_interval"`
	CoinReward     int           `yaml:"coin_reward"`
	CoinsPerMeal   int           `yaml:"coins_per_meal"`
	HPRegenOnEat   float64       `yaml:"hp_regen_on_eat"`
	DamageOnFail   float64       `yaml:"damage_on_fail"`

	Minions MinionBalance `yaml:"minions"`
	Loot    LootBalance   `yaml:"loot"`
	Start   Start         `yaml:"start"`
	Content Content       `yaml:"content"`

	LogCapacity int           `yaml:"log_capacity"`
	AvatarHold  time.Duration `yaml:"avatar_hold"`
}

// MinionBalance controls XP, leveling and upgrade pricing.
type MinionBalance struct {
	XPPerUnit      int      `yaml:"xp_per_unit"`      // XP per owned unit per tick
	XPPerLevel     int      `yaml:"xp_per_level"`     // level L needs L * XPPerLevel
	LevelRateBonus float64  `yaml:"level_rate_bonus"` // rate bonus per level above 1
	UpgradeGrowth  float64  `yaml:"upgrade_growth"`
	UpgradeBase    RoleCost `yaml:"upgrade_base"`
}

// RoleCost is a per-role base price.
type RoleCost struct {
	Hunter int `yaml:"hunter"`
	Chef   int `yaml:"chef"`
	Feeder int `yaml:"feeder"`
	Leech  int `yaml:"leech"`
}

// LootBalance controls drops from kills.
type LootBalance struct {
	ElementChance    float64 `yaml:"element_chance"`
	LogChance        float64 `yaml:"log_chance"`
	LogKillThreshold int     `yaml:"log_kill_threshold"`
}

// Start is the initial GameState.
type Start struct {
	HP             float64 `yaml:"hp"`
	MaxHP          float64 `yaml:"max_hp"`
	Coins          int     `yaml:"coins"`
	HuntChance     float64 `yaml:"hunt_chance"`
	MeatYield      int     `yaml:"meat_yield"`
	CoinMultiplier float64 `yaml:"coin_multiplier"`
}

// Content parameterizes procedural generation of the content tables.
type Content struct {
	Seed            int64 `yaml:"seed"`
	Hunters         int   `yaml:"hunters"`
	Feeders         int   `yaml:"feeders"`
	Leeches         int   `yaml:"leeches"`
	UpgradesPerKind int   `yaml:"upgrades_per_kind"`
}

// Default returns the stock balance.
func Default() Balance {
	return Balance{
		TickInterval:   time.Second,
		RewardInterval: 10 * time.Minute,
		CoinReward:     100,
		CoinsPerMeal:   25,
		HPRegenOnEat:   15,
		DamageOnFail:   15,
		Minions: MinionBalance{
			XPPerUnit:      10,
			XPPerLevel:     500,
			LevelRateBonus: 0.1,
			UpgradeGrowth:  1.6,
			UpgradeBase:    RoleCost{Hunter: 100, Chef: 80, Feeder: 250, Leech: 300},
		},
		Loot: LootBalance{
			ElementChance:    0.05,
			LogChance:        0.1,
			LogKillThreshold: 10,
		},
		Start: Start{
			HP:             100,
			MaxHP:          100,
			HuntChance:     0.6,
			MeatYield:      1,
			CoinMultiplier: 1.0,
		},
		Content: Content{
			Seed:            1,
			Hunters:         700,
			Feeders:         100,
			Leeches:         50,
			UpgradesPerKind: 25,
		},
		LogCapacity: 50,
		AvatarHold:  1500 * time.Millisecond,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Balance, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ValidationError collects every invalid setting.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Validate checks ranges. It returns nil or a *ValidationError.
func (b Balance) Validate() error {
	ve := &ValidationError{}
	add := func(format string, args ...any) {
		ve.Errors = append(ve.Errors, fmt.Sprintf(format, args...))
	}

	if b.TickInterval <= 0 {
		add("tick_interval must be positive, got %s", b.TickInterval)
	}
	if b.RewardInterval < 0 {
		add("reward_interval must not be negative, got %s", b.RewardInterval)
	}
	if b.Minions.XPPerLevel <= 0 {
		add("minions.xp_per_level must be positive, got %d", b.Minions.XPPerLevel)
	}
	if b.Start.MaxHP <= 0 {
		add("start.max_hp must be positive, got %v", b.Start.MaxHP)
	}
	if b.Start.HP < 0 || b.Start.HP > b.Start.MaxHP {
		add("start.hp must be within [0, max_hp], got %v", b.Start.HP)
	}
	if b.Start.HuntChance < 0 || b.Start.HuntChance > 1 {
		add("start.hunt_chance must be within [0, 1], got %v", b.Start.HuntChance)
	}
	if p := b.Loot.ElementChance; p < 0 || p > 1 {
		add("loot.element_chance must be within [0, 1], got %v", p)
	}
	if p := b.Loot.LogChance; p < 0 || p > 1 {
		add("loot.log_chance must be within [0, 1], got %v", p)
	}
	if b.Content.Hunters < 0 || b.Content.Feeders < 0 || b.Content.Leeches < 0 || b.Content.UpgradesPerKind < 0 {
		add("content sizes must not be negative")
	}
	if b.LogCapacity <= 0 {
		add("log_capacity must be positive, got %d", b.LogCapacity)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
