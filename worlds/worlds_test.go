package worlds_test

import (
	"io/fs"
	"testing"

	"github.com/nathoo/superadventure/engine"
	"github.com/nathoo/superadventure/loader"
	"github.com/nathoo/superadventure/types"
	"github.com/nathoo/superadventure/worlds"
)

func TestClassicFiles(t *testing.T) {
	names, err := fs.Glob(worlds.Classic(), "*.lua")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(names) != 5 {
		t.Fatalf("expected 5 world files, got %v", names)
	}
}

func TestClassicPlaythrough(t *testing.T) {
	cat, err := loader.LoadFS(worlds.Classic())
	if err != nil {
		t.Fatalf("load classic: %v", err)
	}

	eng := engine.New(cat, engine.WithSeed(7))
	res := eng.Start()
	if res.Outcome != types.OutcomeMoved || eng.Player().LocationID != "home" {
		t.Fatalf("start: outcome %s at %s", res.Outcome, eng.Player().LocationID)
	}
	p := eng.Player()
	if p.Inventory.QuantityOf("rusty_sword") != 1 || p.Inventory.QuantityOf("healing_potion") != 1 {
		t.Fatalf("starter items missing: %v", p.Inventory.Entries())
	}

	if res := eng.Step("north"); res.Outcome != types.OutcomeMoved {
		t.Fatalf("north: %s", res.Outcome)
	}
	if res := eng.Step("e"); res.Outcome != types.OutcomeBlocked {
		t.Fatalf("guard post without pass: %s", res.Outcome)
	}
	if eng.Player().LocationID != "town_square" {
		t.Fatalf("blocked move changed location to %s", eng.Player().LocationID)
	}

	res = eng.Step("n")
	if !p.Quests.HasQuest("clear_alchemist_garden") {
		t.Fatal("entering the hut should hand out its quest")
	}
	offered := false
	for _, e := range res.Events {
		if e.Type == types.EventQuestOffered && e.QuestID == "clear_alchemist_garden" {
			offered = true
		}
	}
	if !offered {
		t.Fatalf("no quest offer in %+v", res.Events)
	}

	eng.Step("n")
	if !eng.InCombat() || eng.Encounter().TemplateID != "rat" {
		t.Fatalf("expected a rat in the garden, got %+v", eng.Encounter())
	}
}
