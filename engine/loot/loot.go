// Package loot rolls monster drops from a loot table.
package loot

import "github.com/nathoo/superadventure/types"

// Roller produces uniform integers in the inclusive range [min, max].
type Roller interface {
	Between(min, max int) int
}

// Roll rolls each entry once: the item drops when 1d100 ≤ DropPercentage.
// If nothing drops, every default entry is granted instead.
// Each granted item has quantity 1.
func Roll(table []types.LootEntry, r Roller) []types.ItemCount {
	var drops []types.ItemCount
	for _, entry := range table {
		if r.Between(1, 100) <= entry.DropPercentage {
			drops = append(drops, types.ItemCount{ItemID: entry.ItemID, Quantity: 1})
		}
	}
	if len(drops) > 0 {
		return drops
	}
	for _, entry := range table {
		if entry.IsDefault {
			drops = append(drops, types.ItemCount{ItemID: entry.ItemID, Quantity: 1})
		}
	}
	return drops
}
