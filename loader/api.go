package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// rawDef is a curried constructor call: Kind "id" { ... }.
type rawDef struct {
	id    string
	table *lua.LTable
}

// registerAPI registers all Lua constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// World { title = "...", home = "...", ... }
	L.SetGlobal("World", L.NewFunction(func(L *lua.LState) int {
		coll.world = L.CheckTable(1)
		return 0
	}))

	L.SetGlobal("Item", curried(L, "other", &coll.items))
	L.SetGlobal("Weapon", curried(L, "weapon", &coll.items))
	L.SetGlobal("Potion", curried(L, "healing_potion", &coll.items))
	L.SetGlobal("Monster", curried(L, "", &coll.monsters))
	L.SetGlobal("Quest", curried(L, "", &coll.quests))
	L.SetGlobal("Location", curried(L, "", &coll.locations))

	// Drop("item", percentage [, default])
	L.SetGlobal("Drop", L.NewFunction(func(L *lua.LState) int {
		item := L.CheckString(1)
		pct := L.CheckNumber(2)
		isDefault := L.OptBool(3, false)
		tbl := L.NewTable()
		tbl.RawSetString("item", lua.LString(item))
		tbl.RawSetString("chance", pct)
		tbl.RawSetString("default", lua.LBool(isDefault))
		L.Push(tbl)
		return 1
	}))

	// Need("item", quantity)
	L.SetGlobal("Need", L.NewFunction(func(L *lua.LState) int {
		item := L.CheckString(1)
		qty := L.OptNumber(2, 1)
		tbl := L.NewTable()
		tbl.RawSetString("item", lua.LString(item))
		tbl.RawSetString("quantity", qty)
		L.Push(tbl)
		return 1
	}))
}

// curried builds Kind "id" { ... }: the first call takes the ID and returns
// a function taking the body table. A non-empty category is stamped onto
// the table so Item, Weapon and Potion share one collection.
func curried(L *lua.LState, category string, into *[]rawDef) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			if category != "" {
				tbl.RawSetString("category", lua.LString(category))
			}
			*into = append(*into, rawDef{id: id, table: tbl})
			return 0
		}))
		return 1
	})
}
