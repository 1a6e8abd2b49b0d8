// Package loader loads Lua content packs into the content tables at
// startup. The Lua VM is discarded after loading; nothing runs in Lua
// during play.
package loader

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/buffetcore/config"
	"github.com/nathoo/buffetcore/content"
	"github.com/nathoo/buffetcore/types"
)

// rawDef holds one declared definition before compilation.
type rawDef struct {
	kind  string
	id    string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getNumber returns a numeric field from a Lua table, or 0 if missing.
func getNumber(tbl *lua.LTable, key string) float64 {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	return int(getNumber(tbl, key))
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// has reports whether a field is set at all.
func has(tbl *lua.LTable, key string) bool {
	return tbl.RawGetString(key) != lua.LNil
}

// tableToIntMap converts a Lua table of name = count pairs.
func tableToIntMap(tbl *lua.LTable) map[string]int {
	if tbl == nil {
		return nil
	}
	m := map[string]int{}
	tbl.ForEach(func(k, v lua.LValue) {
		if ks, ok := k.(lua.LString); ok {
			if n, ok := v.(lua.LNumber); ok {
				m[string(ks)] = int(n)
			}
		}
	})
	return m
}

// compile generates the procedural tables with the pack's parameters and
// merges every declared definition over them in declaration order. An id
// that already exists is replaced in place; a new id is appended.
func compile(coll *collector, base config.Content) (content.Tables, error) {
	params := base
	if coll.generate != nil {
		params = compileGenerate(coll.generate, base)
	}
	t := content.Generate(params)

	for _, raw := range coll.defs {
		switch raw.kind {
		case kindMinion:
			t.Minions = upsert(t.Minions, compileMinion(raw), func(m types.Minion) string { return m.ID })
		case kindOrgan:
			t.Organs = upsert(t.Organs, compileOrgan(raw), func(o types.Organ) string { return o.ID })
		case kindElement:
			t.Elements = upsert(t.Elements, compileElement(raw), func(e types.Element) string { return e.ID })
		case kindCraftable:
			t.Craftables = upsert(t.Craftables, compileCraftable(raw), func(c types.CraftableItem) string { return c.ID })
		case kindUpgrade:
			t.Upgrades = upsert(t.Upgrades, compileUpgrade(raw), func(u types.Upgrade) string { return u.ID })
		default:
			return content.Tables{}, fmt.Errorf("unknown definition kind %q for %s", raw.kind, raw.id)
		}
	}

	content.SortUpgrades(t.Upgrades)
	return t, nil
}

func upsert[T any](list []T, item T, id func(T) string) []T {
	for i := range list {
		if id(list[i]) == id(item) {
			list[i] = item
			return list
		}
	}
	return append(list, item)
}

func compileGenerate(tbl *lua.LTable, base config.Content) config.Content {
	p := base
	if has(tbl, "seed") {
		p.Seed = int64(getNumber(tbl, "seed"))
	}
	if has(tbl, "hunters") {
		p.Hunters = getInt(tbl, "hunters")
	}
	if has(tbl, "feeders") {
		p.Feeders = getInt(tbl, "feeders")
	}
	if has(tbl, "leeches") {
		p.Leeches = getInt(tbl, "leeches")
	}
	if has(tbl, "upgrades_per_kind") {
		p.UpgradesPerKind = getInt(tbl, "upgrades_per_kind")
	}
	return p
}

func compileMinion(raw rawDef) types.Minion {
	tbl := raw.table
	return types.Minion{
		ID:          raw.id,
		Name:        getString(tbl, "name"),
		Role:        types.Role(strings.ToUpper(getString(tbl, "role"))),
		Cost:        getInt(tbl, "cost"),
		Rate:        getNumber(tbl, "rate"),
		Description: getString(tbl, "description"),
	}
}

func compileOrgan(raw rawDef) types.Organ {
	tbl := raw.table
	return types.Organ{
		ID:          raw.id,
		Name:        getString(tbl, "name"),
		Description: getString(tbl, "description"),
		Chance:      getNumber(tbl, "chance"),
		Effect:      types.OrganEffect(strings.ToUpper(getString(tbl, "effect"))),
		Value:       getNumber(tbl, "value"),
	}
}

func compileElement(raw rawDef) types.Element {
	return types.Element{
		ID:          raw.id,
		Name:        getString(raw.table, "name"),
		Description: getString(raw.table, "description"),
	}
}

func compileCraftable(raw rawDef) types.CraftableItem {
	tbl := raw.table
	return types.CraftableItem{
		ID:          raw.id,
		Name:        getString(tbl, "name"),
		Description: getString(tbl, "description"),
		Flavor:      getString(tbl, "flavor"),
		Ingredients: tableToIntMap(getTable(tbl, "ingredients")),
		Effect:      types.ItemEffect(strings.ToUpper(getString(tbl, "effect"))),
		Value:       getNumber(tbl, "value"),
	}
}

// compileUpgrade reads an upgrade. Cosmetic flags not given explicitly are
// derived from the name.
func compileUpgrade(raw rawDef) types.Upgrade {
	tbl := raw.table
	name := getString(tbl, "name")
	cos := content.CosmeticsFor(name)
	cos.Weapon = getBool(tbl, "weapon", cos.Weapon)
	cos.Hat = getBool(tbl, "hat", cos.Hat)
	cos.Bling = getBool(tbl, "bling", cos.Bling)

	return types.Upgrade{
		ID:          raw.id,
		Name:        name,
		Description: getString(tbl, "description"),
		Cost:        getInt(tbl, "cost"),
		Kind:        types.UpgradeKind(strings.ToUpper(getString(tbl, "kind"))),
		Value:       getNumber(tbl, "value"),
		Cosmetics:   cos,
	}
}
