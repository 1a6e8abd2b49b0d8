package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// Definition kinds a content pack can declare.
const (
	kindMinion    = "minion"
	kindOrgan     = "organ"
	kindElement   = "element"
	kindCraftable = "craftable"
	kindUpgrade   = "upgrade"
)

// registerAPI registers the Lua constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Generate { seed = 7, hunters = 100, ... } tunes the procedural tables.
	// A later call replaces an earlier one.
	L.SetGlobal("Generate", L.NewFunction(func(L *lua.LState) int {
		coll.generate = L.CheckTable(1)
		return 0
	}))

	L.SetGlobal("Minion", curried(L, coll, kindMinion))
	L.SetGlobal("Organ", curried(L, coll, kindOrgan))
	L.SetGlobal("Element", curried(L, coll, kindElement))
	L.SetGlobal("Craftable", curried(L, coll, kindCraftable))
	L.SetGlobal("Upgrade", curried(L, coll, kindUpgrade))
}

// curried builds a constructor used as Kind "id" { ... }: the first call
// takes the id and returns a function that takes the table.
func curried(L *lua.LState, coll *collector, kind string) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.defs = append(coll.defs, rawDef{kind: kind, id: id, table: tbl})
			return 0
		}))
		return 1
	})
}
