// Package loader loads Lua world files into a world catalog at start-up.
// The Lua VM is discarded after loading: zero Lua at runtime.
package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/superadventure/engine/world"
	"github.com/nathoo/superadventure/types"
)

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

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// arrayTables returns the table elements of an array-style Lua table.
func arrayTables(tbl *lua.LTable) []*lua.LTable {
	if tbl == nil {
		return nil
	}
	var out []*lua.LTable
	for i := 1; i <= tbl.MaxN(); i++ {
		if t, ok := tbl.RawGetInt(i).(*lua.LTable); ok {
			out = append(out, t)
		}
	}
	return out
}

var directions = map[string]types.Direction{
	"north": types.North,
	"east":  types.East,
	"south": types.South,
	"west":  types.West,
}

// compile converts all collected Lua data into a catalog.
func compile(coll *collector) (*world.Catalog, error) {
	if coll.world == nil {
		return nil, fmt.Errorf("no World{} definition found")
	}
	cat := world.New(compileMeta(coll.world))

	for _, raw := range coll.items {
		if _, dup := cat.Items[raw.id]; dup {
			return nil, fmt.Errorf("duplicate item %q", raw.id)
		}
		cat.Items[raw.id] = compileItem(raw)
	}

	for _, raw := range coll.monsters {
		if _, dup := cat.Monsters[raw.id]; dup {
			return nil, fmt.Errorf("duplicate monster %q", raw.id)
		}
		cat.Monsters[raw.id] = compileMonster(raw)
	}

	for _, raw := range coll.quests {
		if _, dup := cat.Quests[raw.id]; dup {
			return nil, fmt.Errorf("duplicate quest %q", raw.id)
		}
		cat.Quests[raw.id] = compileQuest(raw)
	}

	for _, raw := range coll.locations {
		if _, dup := cat.Locations[raw.id]; dup {
			return nil, fmt.Errorf("duplicate location %q", raw.id)
		}
		loc, err := compileLocation(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling location %s: %w", raw.id, err)
		}
		cat.AddLocation(loc)
	}

	return cat, nil
}

func compileMeta(tbl *lua.LTable) world.Meta {
	return world.Meta{
		Title:         getString(tbl, "title"),
		Author:        getString(tbl, "author"),
		Version:       getString(tbl, "version"),
		Intro:         getString(tbl, "intro"),
		Home:          getString(tbl, "home"),
		StarterWeapon: getString(tbl, "starter_weapon"),
		StarterPotion: getString(tbl, "starter_potion"),
	}
}

func compileItem(raw rawDef) types.Item {
	tbl := raw.table
	item := types.Item{
		ID:         raw.id,
		Name:       getString(tbl, "name"),
		NamePlural: getString(tbl, "plural"),
		Category:   types.ItemCategory(getString(tbl, "category")),
	}
	if item.NamePlural == "" {
		item.NamePlural = item.Name + "s"
	}
	switch item.Category {
	case types.CategoryWeapon:
		item.Weapon = &types.WeaponStats{
			MinDamage: getInt(tbl, "min_damage"),
			MaxDamage: getInt(tbl, "max_damage"),
		}
	case types.CategoryHealingPotion:
		item.Potion = &types.PotionStats{HealAmount: getInt(tbl, "heal")}
	}
	return item
}

func compileMonster(raw rawDef) types.MonsterTemplate {
	tbl := raw.table
	m := types.MonsterTemplate{
		ID:               raw.id,
		Name:             getString(tbl, "name"),
		MaxDamage:        getInt(tbl, "max_damage"),
		RewardExperience: getInt(tbl, "experience"),
		RewardGold:       getInt(tbl, "gold"),
		MaxHitPoints:     getInt(tbl, "hit_points"),
	}
	for _, d := range arrayTables(getTable(tbl, "loot")) {
		m.Loot = append(m.Loot, types.LootEntry{
			ItemID:         getString(d, "item"),
			DropPercentage: getInt(d, "chance"),
			IsDefault:      getBool(d, "default", false),
		})
	}
	return m
}

func compileQuest(raw rawDef) types.Quest {
	tbl := raw.table
	q := types.Quest{
		ID:               raw.id,
		Name:             getString(tbl, "name"),
		Description:      getString(tbl, "description"),
		RewardExperience: getInt(tbl, "experience"),
		RewardGold:       getInt(tbl, "gold"),
		RewardItem:       getString(tbl, "reward"),
	}
	for _, n := range arrayTables(getTable(tbl, "needs")) {
		q.CompletionItems = append(q.CompletionItems, types.ItemCount{
			ItemID:   getString(n, "item"),
			Quantity: getInt(n, "quantity"),
		})
	}
	return q
}

func compileLocation(raw rawDef) (types.Location, error) {
	tbl := raw.table
	loc := types.Location{
		ID:           raw.id,
		Name:         getString(tbl, "name"),
		Description:  getString(tbl, "description"),
		Exits:        map[types.Direction]string{},
		RequiredItem: getString(tbl, "requires"),
		Quest:        getString(tbl, "quest"),
		Monster:      getString(tbl, "monster"),
	}
	var err error
	if exits := getTable(tbl, "exits"); exits != nil {
		exits.ForEach(func(k, v lua.LValue) {
			dir, ok := directions[k.String()]
			if !ok {
				err = fmt.Errorf("unknown exit direction %q", k.String())
				return
			}
			target, ok := v.(lua.LString)
			if !ok {
				err = fmt.Errorf("exit %q must name a location", k.String())
				return
			}
			loc.Exits[dir] = string(target)
		})
	}
	return loc, err
}
