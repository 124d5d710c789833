package loader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/superadventure/engine/world"
	"github.com/nathoo/superadventure/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

func (e *ValidationError) errorf(format string, args ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

func (e *ValidationError) warnf(format string, args ...any) {
	e.Warnings = append(e.Warnings, fmt.Sprintf(format, args...))
}

// validate checks the catalog for referential integrity and consistency.
// Messages are sorted so output is stable across map iteration.
func validate(cat *world.Catalog) *ValidationError {
	ve := &ValidationError{}

	validateMeta(cat, ve)
	for _, id := range sortedKeys(cat.Items) {
		validateItem(cat.Items[id], ve)
	}
	for _, id := range sortedKeys(cat.Monsters) {
		validateMonster(cat, cat.Monsters[id], ve)
	}
	for _, id := range sortedKeys(cat.Quests) {
		validateQuest(cat, cat.Quests[id], ve)
	}
	for _, loc := range cat.AllLocations() {
		validateLocation(cat, loc, ve)
	}
	warnUnreachable(cat, ve)
	warnUnused(cat, ve)

	sort.Strings(ve.Errors)
	sort.Strings(ve.Warnings)
	return ve
}

func validateMeta(cat *world.Catalog, ve *ValidationError) {
	m := cat.Meta
	if m.Title == "" {
		ve.errorf("World.title is required")
	}
	if m.Home == "" {
		ve.errorf("World.home is required")
	} else if _, ok := cat.Locations[m.Home]; !ok {
		ve.errorf("home location %q not found in defined locations", m.Home)
	}
	if m.StarterWeapon != "" {
		if it, ok := cat.Items[m.StarterWeapon]; !ok {
			ve.errorf("starter weapon %q is not a defined item", m.StarterWeapon)
		} else if it.Category != types.CategoryWeapon {
			ve.errorf("starter weapon %q is not a weapon", m.StarterWeapon)
		}
	}
	if m.StarterPotion != "" {
		if it, ok := cat.Items[m.StarterPotion]; !ok {
			ve.errorf("starter potion %q is not a defined item", m.StarterPotion)
		} else if it.Category != types.CategoryHealingPotion {
			ve.errorf("starter potion %q is not a healing potion", m.StarterPotion)
		}
	}
}

func validateItem(it types.Item, ve *ValidationError) {
	if it.Name == "" {
		ve.errorf("item %q has no name", it.ID)
	}
	if w := it.Weapon; w != nil {
		if w.MinDamage < 0 {
			ve.errorf("weapon %q has negative min_damage %d", it.ID, w.MinDamage)
		}
		if w.MinDamage > w.MaxDamage {
			ve.errorf("weapon %q min_damage %d exceeds max_damage %d", it.ID, w.MinDamage, w.MaxDamage)
		}
	}
	if p := it.Potion; p != nil && p.HealAmount <= 0 {
		ve.errorf("potion %q must heal a positive amount", it.ID)
	}
}

func validateMonster(cat *world.Catalog, m types.MonsterTemplate, ve *ValidationError) {
	if m.Name == "" {
		ve.errorf("monster %q has no name", m.ID)
	}
	if m.MaxHitPoints <= 0 {
		ve.errorf("monster %q must have positive hit_points", m.ID)
	}
	if m.MaxDamage < 1 {
		ve.warnf("monster %q max_damage %d is below 1; it will always deal 1", m.ID, m.MaxDamage)
	}
	hasDefault := false
	for _, entry := range m.Loot {
		if _, ok := cat.Items[entry.ItemID]; !ok {
			ve.errorf("monster %q drops undefined item %q", m.ID, entry.ItemID)
		}
		if entry.DropPercentage < 0 || entry.DropPercentage > 100 {
			ve.errorf("monster %q drop chance %d for %q outside 0-100", m.ID, entry.DropPercentage, entry.ItemID)
		}
		hasDefault = hasDefault || entry.IsDefault
	}
	if len(m.Loot) > 0 && !hasDefault {
		ve.errorf("monster %q loot table has no default entry", m.ID)
	}
}

func validateQuest(cat *world.Catalog, q types.Quest, ve *ValidationError) {
	if q.Name == "" {
		ve.errorf("quest %q has no name", q.ID)
	}
	if len(q.CompletionItems) == 0 {
		ve.warnf("quest %q needs no items and completes on the second visit", q.ID)
	}
	for _, need := range q.CompletionItems {
		if _, ok := cat.Items[need.ItemID]; !ok {
			ve.errorf("quest %q needs undefined item %q", q.ID, need.ItemID)
		}
		if need.Quantity < 1 {
			ve.errorf("quest %q needs non-positive quantity of %q", q.ID, need.ItemID)
		}
	}
	if q.RewardItem != "" {
		if _, ok := cat.Items[q.RewardItem]; !ok {
			ve.errorf("quest %q rewards undefined item %q", q.ID, q.RewardItem)
		}
	}
}

func validateLocation(cat *world.Catalog, loc types.Location, ve *ValidationError) {
	if loc.Name == "" {
		ve.errorf("location %q has no name", loc.ID)
	}
	for dir, target := range loc.Exits {
		if _, ok := cat.Locations[target]; !ok {
			ve.errorf("location %q exit %q points to undefined location %q", loc.ID, dir, target)
		}
	}
	if loc.RequiredItem != "" {
		if _, ok := cat.Items[loc.RequiredItem]; !ok {
			ve.errorf("location %q requires undefined item %q", loc.ID, loc.RequiredItem)
		}
		if loc.ID == cat.Meta.Home {
			ve.errorf("home location %q cannot require an item", loc.ID)
		}
	}
	if loc.Quest != "" {
		if _, ok := cat.Quests[loc.Quest]; !ok {
			ve.errorf("location %q offers undefined quest %q", loc.ID, loc.Quest)
		}
	}
	if loc.Monster != "" {
		if _, ok := cat.Monsters[loc.Monster]; !ok {
			ve.errorf("location %q has undefined monster %q", loc.ID, loc.Monster)
		}
	}
}

// warnUnreachable reports locations with no path from home.
func warnUnreachable(cat *world.Catalog, ve *ValidationError) {
	if _, ok := cat.Locations[cat.Meta.Home]; !ok {
		return
	}
	seen := map[string]bool{cat.Meta.Home: true}
	queue := []string{cat.Meta.Home}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range cat.Locations[id].Exits {
			if _, ok := cat.Locations[next]; ok && !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	for _, loc := range cat.AllLocations() {
		if !seen[loc.ID] {
			ve.warnf("location %q is unreachable from home", loc.ID)
		}
	}
}

// warnUnused reports quests and monsters no location refers to.
func warnUnused(cat *world.Catalog, ve *ValidationError) {
	quests := map[string]bool{}
	monsters := map[string]bool{}
	for _, loc := range cat.Locations {
		quests[loc.Quest] = true
		monsters[loc.Monster] = true
	}
	for _, id := range sortedKeys(cat.Quests) {
		if !quests[id] {
			ve.warnf("quest %q is not offered at any location", id)
		}
	}
	for _, id := range sortedKeys(cat.Monsters) {
		if !monsters[id] {
			ve.warnf("monster %q does not live at any location", id)
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
