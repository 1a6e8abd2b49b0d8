package state

import (
	"testing"
	"time"

	"github.com/nathoo/buffetcore/config"
	"github.com/nathoo/buffetcore/types"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func testDefs() *Defs {
	return NewDefs(
		[]types.Minion{
			{ID: "grub", Name: "Grub the Hunter", Role: types.RoleHunter, Cost: 50, Rate: 1},
			{ID: "stew", Name: "Stew the Cook", Role: types.RoleChef, Cost: 60, Rate: 0.5},
			{ID: "spoon", Name: "Spoon the Feeder", Role: types.RoleFeeder, Cost: 250, Rate: 0.5},
			{ID: "tick", Name: "Tick the Leech", Role: types.RoleLeech, Cost: 150, Rate: 2},
			{ID: "claw", Name: "Claw the Hunter", Role: types.RoleHunter, Cost: 70, Rate: 1},
		},
		[]types.Organ{
			{ID: "eyeball", Name: "Eyeball", Chance: 0.25, Effect: types.OrganHeal, Value: 10},
		},
		[]types.Element{
			{ID: "gold", Name: "Gold"},
		},
		[]types.CraftableItem{
			{ID: "meat_brick", Name: "Meat Brick", Ingredients: map[string]int{"rawMeat": 25}, Effect: types.ItemHeal, Value: 50},
		},
		[]types.Upgrade{
			{ID: "spork", Name: "Rusty Spork", Cost: 50, Kind: types.UpgradeMeat, Value: 1},
			{ID: "shoes", Name: "Sneaky Shoes", Cost: 150, Kind: types.UpgradeHunt, Value: 0.15},
		},
	)
}

func TestNewState_FromStart(t *testing.T) {
	s := NewState(config.Default().Start, t0)

	if s.HP != 100 || s.MaxHP != 100 {
		t.Errorf("HP = %v/%v, want 100/100", s.HP, s.MaxHP)
	}
	if s.HuntChance != 0.6 {
		t.Errorf("HuntChance = %v, want 0.6", s.HuntChance)
	}
	if s.MeatYield != 1 || s.CoinMultiplier != 1 {
		t.Errorf("MeatYield/CoinMultiplier = %d/%v, want 1/1", s.MeatYield, s.CoinMultiplier)
	}
	if !s.LastRewardTime.Equal(t0) {
		t.Errorf("LastRewardTime = %v, want %v", s.LastRewardTime, t0)
	}
	if s.Minions == nil || s.Pantry == nil || s.Organs == nil || s.Elements == nil || s.Purchased == nil {
		t.Error("maps must be initialized")
	}
}

func TestDefs_Lookups(t *testing.T) {
	d := testDefs()

	if m, ok := d.Minion("stew"); !ok || m.Role != types.RoleChef {
		t.Errorf("Minion(stew) = %+v, %v", m, ok)
	}
	if _, ok := d.Minion("nobody"); ok {
		t.Error("Minion(nobody) should not be found")
	}
	if o, ok := d.Organ("eyeball"); !ok || o.Name != "Eyeball" {
		t.Errorf("Organ(eyeball) = %+v, %v", o, ok)
	}
	if _, ok := d.Element("gold"); !ok {
		t.Error("Element(gold) not found")
	}
	if _, ok := d.Craftable("meat_brick"); !ok {
		t.Error("Craftable(meat_brick) not found")
	}
	if u, ok := d.Upgrade("shoes"); !ok || u.Cost != 150 {
		t.Errorf("Upgrade(shoes) = %+v, %v", u, ok)
	}
}

func TestDefs_ItemName(t *testing.T) {
	d := testDefs()
	tests := []struct {
		id   string
		want string
	}{
		{"eyeball", "Eyeball"},
		{"gold", "Gold"},
		{"meat_brick", "Meat Brick"},
		{"rawMeat", "Raw Meat"},
		{"meals", "Meals"},
		{"mystery", "mystery"},
	}
	for _, tt := range tests {
		if got := d.ItemName(tt.id); got != tt.want {
			t.Errorf("ItemName(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	s := NewState(config.Default().Start, t0)
	s.HP = 140
	s.RawMeat = -3
	s.Meals = -1
	s.Coins = -20
	s.HuntChance = 1.3
	s.Organs["eyeball"] = -2
	s.Pantry["meat_brick"] = -1
	s.Elements["gold"] = 4

	Clamp(s)

	if s.HP != 100 {
		t.Errorf("HP = %v, want 100", s.HP)
	}
	if s.RawMeat != 0 || s.Meals != 0 || s.Coins != 0 {
		t.Errorf("resources = %d/%d/%d, want all 0", s.RawMeat, s.Meals, s.Coins)
	}
	if s.HuntChance != 1 {
		t.Errorf("HuntChance = %v, want 1", s.HuntChance)
	}
	if s.Organs["eyeball"] != 0 || s.Pantry["meat_brick"] != 0 {
		t.Errorf("negative stock not clamped: %v %v", s.Organs, s.Pantry)
	}
	if s.Elements["gold"] != 4 {
		t.Errorf("positive stock changed: %v", s.Elements)
	}

	s.HP = -5
	Clamp(s)
	if s.HP != 0 {
		t.Errorf("HP = %v, want 0", s.HP)
	}
}

func TestClone_IsDeep(t *testing.T) {
	s := NewState(config.Default().Start, t0)
	s.Inventory = append(s.Inventory, "Rusty Spork")
	s.Minions["grub"] = types.MinionState{Count: 1, Level: 1}
	s.Organs["eyeball"] = 2

	c := Clone(s)
	c.Inventory[0] = "changed"
	c.Minions["grub"] = types.MinionState{Count: 9, Level: 9}
	c.Organs["eyeball"] = 99
	c.Purchased["spork"] = true

	if s.Inventory[0] != "Rusty Spork" {
		t.Error("inventory shared with clone")
	}
	if s.Minions["grub"].Count != 1 {
		t.Error("minions shared with clone")
	}
	if s.Organs["eyeball"] != 2 {
		t.Error("organs shared with clone")
	}
	if s.Purchased["spork"] {
		t.Error("purchased shared with clone")
	}
}

func TestAvailableUpgrades_ExcludesPurchased(t *testing.T) {
	d := testDefs()
	s := NewState(config.Default().Start, t0)
	s.Purchased["spork"] = true

	got := AvailableUpgrades(s, d)
	if len(got) != 1 || got[0].ID != "shoes" {
		t.Errorf("AvailableUpgrades = %+v, want only shoes", got)
	}
	if !UpgradePurchased(s, "spork") || UpgradePurchased(s, "shoes") {
		t.Error("UpgradePurchased mismatch")
	}
}

func TestMinionUpgradeCost(t *testing.T) {
	b := config.Default().Minions
	tests := []struct {
		role  types.Role
		level int
		want  int
	}{
		{types.RoleHunter, 1, 160},
		{types.RoleChef, 1, 128},
		{types.RoleFeeder, 1, 400},
		{types.RoleLeech, 1, 480},
		{types.RoleHunter, 2, 256},
		{types.RoleChef, 3, 327}, // 80 * 4.096 = 327.68
	}
	for _, tt := range tests {
		if got := MinionUpgradeCost(b, tt.role, tt.level); got != tt.want {
			t.Errorf("MinionUpgradeCost(%s, %d) = %d, want %d", tt.role, tt.level, got, tt.want)
		}
	}
}

func TestRewardRemaining(t *testing.T) {
	s := NewState(config.Default().Start, t0)
	interval := 10 * time.Minute

	if got := RewardRemaining(s, interval, t0); got != interval {
		t.Errorf("at start = %v, want %v", got, interval)
	}
	if got := RewardRemaining(s, interval, t0.Add(4*time.Minute)); got != 6*time.Minute {
		t.Errorf("after 4m = %v, want 6m", got)
	}
	if got := RewardRemaining(s, interval, t0.Add(time.Hour)); got != 0 {
		t.Errorf("after 1h = %v, want 0", got)
	}
}

func TestRoleCount_AndOwnedMinions(t *testing.T) {
	d := testDefs()
	s := NewState(config.Default().Start, t0)
	s.Minions["claw"] = types.MinionState{Count: 2, Level: 1}
	s.Minions["grub"] = types.MinionState{Count: 3, Level: 1}
	s.Minions["tick"] = types.MinionState{Count: 1, Level: 1}
	s.Minions["stew"] = types.MinionState{Count: 0, Level: 1}

	if got := RoleCount(s, d, types.RoleHunter); got != 5 {
		t.Errorf("hunters = %d, want 5", got)
	}
	if got := RoleCount(s, d, types.RoleLeech); got != 1 {
		t.Errorf("leeches = %d, want 1", got)
	}

	owned := OwnedMinions(s, d)
	want := []string{"grub", "tick", "claw"}
	if len(owned) != len(want) {
		t.Fatalf("OwnedMinions = %v, want %v", owned, want)
	}
	for i := range want {
		if owned[i] != want[i] {
			t.Errorf("OwnedMinions[%d] = %q, want %q", i, owned[i], want[i])
		}
	}
}

func TestIncapacitated(t *testing.T) {
	s := NewState(config.Default().Start, t0)
	if Incapacitated(s) {
		t.Error("fresh state should not be incapacitated")
	}
	s.HP = 0
	if !Incapacitated(s) {
		t.Error("HP 0 should be incapacitated")
	}
}

func TestHireableMinions_CheapestUnhired(t *testing.T) {
	d := testDefs()
	s := NewState(config.Default().Start, t0)
	s.Minions["grub"] = types.MinionState{Count: 1, Level: 1}

	got := HireableMinions(s, d, 3)
	want := []string{"stew", "claw", "tick"}
	if len(got) != len(want) {
		t.Fatalf("HireableMinions = %+v, want %v", got, want)
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Errorf("HireableMinions[%d] = %q, want %q", i, got[i].ID, want[i])
		}
	}

	if all := HireableMinions(s, d, 0); len(all) != 4 {
		t.Errorf("HireableMinions(0) returned %d, want 4", len(all))
	}
}

func TestVisibleUpgrades_Window(t *testing.T) {
	d := testDefs()
	s := NewState(config.Default().Start, t0)

	if got := VisibleUpgrades(s, d, 1); len(got) != 1 || got[0].ID != "spork" {
		t.Errorf("VisibleUpgrades(1) = %+v, want spork", got)
	}
	s.Purchased["spork"] = true
	if got := VisibleUpgrades(s, d, 3); len(got) != 1 || got[0].ID != "shoes" {
		t.Errorf("VisibleUpgrades(3) = %+v, want shoes", got)
	}
}
