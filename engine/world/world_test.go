package world

import (
	"errors"
	"testing"

	"github.com/nathoo/superadventure/types"
)

func testCatalog() *Catalog {
	c := New(Meta{Title: "Test", Home: "home"})
	c.Items["pass"] = types.Item{ID: "pass", Name: "Pass", NamePlural: "Passes", Category: types.CategoryOther}
	c.Items["fang"] = types.Item{ID: "fang", Name: "Fang", NamePlural: "Fangs", Category: types.CategoryOther}
	c.Monsters["rat"] = types.MonsterTemplate{
		ID: "rat", Name: "Rat", MaxDamage: 3, MaxHitPoints: 4,
		Loot: []types.LootEntry{{ItemID: "fang", DropPercentage: 50, IsDefault: true}},
	}
	c.AddLocation(types.Location{ID: "home", Name: "Home"})
	c.AddLocation(types.Location{ID: "gate", Name: "Gate", RequiredItem: "pass"})
	c.AddLocation(types.Location{ID: "yard", Name: "Yard", RequiredItem: "pass"})
	return c
}

func TestAllLocations_DefinitionOrder(t *testing.T) {
	c := testCatalog()
	locs := c.AllLocations()
	if len(locs) != 3 {
		t.Fatalf("expected 3 locations, got %d", len(locs))
	}
	want := []string{"home", "gate", "yard"}
	for i, loc := range locs {
		if loc.ID != want[i] {
			t.Errorf("location %d = %q, want %q", i, loc.ID, want[i])
		}
	}
}

func TestAddLocation_ReplaceKeepsOrder(t *testing.T) {
	c := testCatalog()
	c.AddLocation(types.Location{ID: "home", Name: "Cottage"})
	if len(c.LocationOrder) != 3 {
		t.Fatalf("expected order length 3, got %d", len(c.LocationOrder))
	}
	if c.Location("home").Name != "Cottage" {
		t.Errorf("expected replaced name, got %q", c.Location("home").Name)
	}
}

func TestEntryItems(t *testing.T) {
	c := testCatalog()
	set := c.EntryItems()
	if len(set) != 1 || !set["pass"] {
		t.Errorf("expected {pass}, got %v", set)
	}
}

func TestItem_UnknownPanics(t *testing.T) {
	c := testCatalog()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %v", r)
		}
		var unknown *UnknownIDError
		if !errors.As(err, &unknown) {
			t.Fatalf("expected *UnknownIDError, got %T", err)
		}
		if unknown.Kind != "item" || unknown.ID != "missing" {
			t.Errorf("unexpected error fields: %+v", unknown)
		}
	}()
	c.Item("missing")
}

func TestLookup_NoPanic(t *testing.T) {
	c := testCatalog()
	if _, ok := c.LookupItem("missing"); ok {
		t.Error("expected missing item lookup to fail")
	}
	if _, ok := c.LookupLocation("gate"); !ok {
		t.Error("expected gate lookup to succeed")
	}
}

func TestSpawn_ClonesLootTable(t *testing.T) {
	c := testCatalog()
	tmpl := c.Monster("rat")
	m := Spawn(tmpl)

	if m.HitPoints != 4 || m.MaxHitPoints != 4 {
		t.Errorf("expected 4/4 hit points, got %d/%d", m.HitPoints, m.MaxHitPoints)
	}
	m.Loot[0].DropPercentage = 100
	m.HitPoints = 1

	if c.Monster("rat").Loot[0].DropPercentage != 50 {
		t.Error("mutating the live loot table changed the catalog template")
	}
	if c.Monster("rat").MaxHitPoints != 4 {
		t.Error("template hit points changed")
	}
}
