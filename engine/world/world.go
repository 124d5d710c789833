// Package world holds the immutable catalog of locations, items, monsters
// and quests shared by every game session.
package world

import (
	"fmt"

	"github.com/nathoo/superadventure/types"
)

// Meta holds world metadata and the designated starting configuration.
type Meta struct {
	Title         string
	Author        string
	Version       string
	Intro         string
	Home          string // location ID players start and respawn in
	StarterWeapon string
	StarterPotion string
}

// Catalog holds the read-only game definitions loaded from world files.
type Catalog struct {
	Meta      Meta
	Items     map[string]types.Item
	Monsters  map[string]types.MonsterTemplate
	Quests    map[string]types.Quest
	Locations map[string]types.Location

	// LocationOrder preserves definition order for enumeration.
	LocationOrder []string
}

// UnknownIDError is the panic value raised when a lookup names an ID the
// catalog does not define. Well-formed world data never triggers it.
type UnknownIDError struct {
	Kind string
	ID   string
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("world: unknown %s %q", e.Kind, e.ID)
}

// New creates an empty catalog.
func New(meta Meta) *Catalog {
	return &Catalog{
		Meta:      meta,
		Items:     map[string]types.Item{},
		Monsters:  map[string]types.MonsterTemplate{},
		Quests:    map[string]types.Quest{},
		Locations: map[string]types.Location{},
	}
}

// AddLocation registers a location, keeping definition order.
func (c *Catalog) AddLocation(loc types.Location) {
	if _, exists := c.Locations[loc.ID]; !exists {
		c.LocationOrder = append(c.LocationOrder, loc.ID)
	}
	c.Locations[loc.ID] = loc
}

// Item returns the item with the given ID, panicking if it does not exist.
func (c *Catalog) Item(id string) types.Item {
	it, ok := c.Items[id]
	if !ok {
		panic(&UnknownIDError{Kind: "item", ID: id})
	}
	return it
}

// Location returns the location with the given ID, panicking if it does not exist.
func (c *Catalog) Location(id string) types.Location {
	loc, ok := c.Locations[id]
	if !ok {
		panic(&UnknownIDError{Kind: "location", ID: id})
	}
	return loc
}

// Monster returns the monster template with the given ID, panicking if it does not exist.
func (c *Catalog) Monster(id string) types.MonsterTemplate {
	m, ok := c.Monsters[id]
	if !ok {
		panic(&UnknownIDError{Kind: "monster", ID: id})
	}
	return m
}

// Quest returns the quest with the given ID, panicking if it does not exist.
func (c *Catalog) Quest(id string) types.Quest {
	q, ok := c.Quests[id]
	if !ok {
		panic(&UnknownIDError{Kind: "quest", ID: id})
	}
	return q
}

// LookupItem returns the item and whether it exists.
func (c *Catalog) LookupItem(id string) (types.Item, bool) {
	it, ok := c.Items[id]
	return it, ok
}

// LookupLocation returns the location and whether it exists.
func (c *Catalog) LookupLocation(id string) (types.Location, bool) {
	loc, ok := c.Locations[id]
	return loc, ok
}

// LookupQuest returns the quest and whether it exists.
func (c *Catalog) LookupQuest(id string) (types.Quest, bool) {
	q, ok := c.Quests[id]
	return q, ok
}

// AllLocations returns every location in definition order.
func (c *Catalog) AllLocations() []types.Location {
	out := make([]types.Location, 0, len(c.LocationOrder))
	for _, id := range c.LocationOrder {
		out = append(out, c.Locations[id])
	}
	return out
}

// EntryItems returns the set of item IDs that some location requires to enter.
func (c *Catalog) EntryItems() map[string]bool {
	set := map[string]bool{}
	for _, loc := range c.Locations {
		if loc.RequiredItem != "" {
			set[loc.RequiredItem] = true
		}
	}
	return set
}

// Spawn creates a live monster from a template. The loot table is cloned
// so the encounter never aliases catalog data.
func Spawn(t types.MonsterTemplate) *types.Monster {
	loot := make([]types.LootEntry, len(t.Loot))
	copy(loot, t.Loot)
	return &types.Monster{
		TemplateID:       t.ID,
		Name:             t.Name,
		MaxDamage:        t.MaxDamage,
		RewardExperience: t.RewardExperience,
		RewardGold:       t.RewardGold,
		HitPoints:        t.MaxHitPoints,
		MaxHitPoints:     t.MaxHitPoints,
		Loot:             loot,
	}
}
