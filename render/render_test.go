package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/superadventure/engine/world"
	"github.com/nathoo/superadventure/loader"
	"github.com/nathoo/superadventure/types"
	"github.com/nathoo/superadventure/worlds"
)

func classic(t *testing.T) *world.Catalog {
	t.Helper()
	cat, err := loader.LoadFS(worlds.Classic())
	require.NoError(t, err)
	return cat
}

func TestCount_SingularAndPlural(t *testing.T) {
	r := New(classic(t))
	assert.Equal(t, "1 Rat tail", r.Count(types.ItemCount{ItemID: "rat_tail", Quantity: 1}))
	assert.Equal(t, "3 Rat tails", r.Count(types.ItemCount{ItemID: "rat_tail", Quantity: 3}))
	assert.Equal(t, "2 Pieces of fur", r.Count(types.ItemCount{ItemID: "piece_of_fur", Quantity: 2}))
	assert.Equal(t, "4 mystery", r.Count(types.ItemCount{ItemID: "mystery", Quantity: 4}))
}

func TestGold(t *testing.T) {
	assert.Equal(t, "1 piece of gold", Gold(1))
	assert.Equal(t, "10 pieces of gold", Gold(10))
	assert.Equal(t, "0 pieces of gold", Gold(0))
}

func TestExits(t *testing.T) {
	r := New(classic(t))
	assert.Equal(t, "Exits: North, East, South, West", r.Exits([]types.Direction{types.North, types.East, types.South, types.West}))
	assert.Equal(t, "There is no way out.", r.Exits(nil))
}

func TestEvent_Lines(t *testing.T) {
	r := New(classic(t))

	tests := []struct {
		name string
		ev   types.Event
		want []string
	}{
		{
			name: "location",
			ev:   types.Event{Type: types.EventLocationDescribed, LocationID: "home", Exits: []types.Direction{types.North}},
			want: []string{"", "Home", "Your house. You really need to clean up the place.", "Exits: North"},
		},
		{
			name: "blocked",
			ev:   types.Event{Type: types.EventMoveBlocked, LocationID: "guard_post", ItemID: "adventurer_pass"},
			want: []string{"You must have a/an Adventurer pass to enter this location."},
		},
		{
			name: "quest offered",
			ev: types.Event{Type: types.EventQuestOffered, QuestID: "clear_alchemist_garden",
				Items: []types.ItemCount{{ItemID: "rat_tail", Quantity: 3}}},
			want: []string{
				"You receive the «Clear the alchemist's garden» quest.",
				"Kill rats in the alchemist's garden and bring back 3 rat tails. You will receive a healing potion and 10 gold pieces.",
				"To complete it, return with:",
				"3 Rat tails",
				"",
			},
		},
		{
			name: "quest completed",
			ev: types.Event{Type: types.EventQuestCompleted, QuestID: "clear_alchemist_garden",
				Experience: 20, Gold: 10, ItemID: "healing_potion"},
			want: []string{
				"You complete the «Clear the alchemist's garden» quest.",
				"You receive:",
				"20 experience points",
				"10 gold",
				"Healing potion",
				"",
			},
		},
		{
			name: "monster sighted",
			ev:   types.Event{Type: types.EventMonsterSighted, MonsterID: "rat"},
			want: []string{"You see a Rat."},
		},
		{
			name: "hit",
			ev:   types.Event{Type: types.EventDamageDealt, MonsterID: "rat", Amount: 4},
			want: []string{"You hit the Rat for 4 points."},
		},
		{
			name: "defeated one gold",
			ev:   types.Event{Type: types.EventMonsterDefeated, MonsterID: "snake", Experience: 3, Gold: 1},
			want: []string{"", "You defeated the Snake.", "You receive 3 experience points.", "You get 1 piece of gold."},
		},
		{
			name: "loot",
			ev: types.Event{Type: types.EventLootReceived, MonsterID: "rat",
				Items: []types.ItemCount{{ItemID: "rat_tail", Quantity: 1}, {ItemID: "piece_of_fur", Quantity: 1}}},
			want: []string{"You loot 1 Rat tail", "You loot 1 Piece of fur"},
		},
		{
			name: "potion",
			ev:   types.Event{Type: types.EventPotionDrunk, ItemID: "healing_potion", Amount: 5},
			want: []string{"You drink a Healing potion that replenishes 5 hit points."},
		},
		{
			name: "player hit",
			ev:   types.Event{Type: types.EventPlayerDamaged, MonsterID: "giant_spider", Amount: 12},
			want: []string{"The Giant spider did 12 points of damage."},
		},
		{
			name: "died",
			ev:   types.Event{Type: types.EventPlayerDied, MonsterID: "giant_spider"},
			want: []string{"The Giant spider killed you.", ""},
		},
		{
			name: "inventory",
			ev: types.Event{Type: types.EventInventoryListed, ItemID: "rusty_sword",
				Items: []types.ItemCount{{ItemID: "rusty_sword", Quantity: 1}, {ItemID: "healing_potion", Quantity: 2}}},
			want: []string{"You are carrying:", "  1 Rusty sword (equipped)", "  2 Healing potions"},
		},
		{
			name: "empty quests",
			ev:   types.Event{Type: types.EventQuestsListed},
			want: []string{"You have no quests."},
		},
		{
			name: "quests",
			ev: types.Event{Type: types.EventQuestsListed, Quests: []types.PlayerQuest{
				{QuestID: "clear_farmers_field", Completed: true},
			}},
			want: []string{"Quests:", "  Clear the farmer's field  Done? Yes"},
		},
		{
			name: "saved",
			ev:   types.Event{Type: types.EventPlayerSaved, Slot: "quicksave"},
			want: []string{"You saved the game."},
		},
		{
			name: "refused",
			ev:   types.Event{Type: types.EventRefused, Reason: types.ReasonNotWeapon, Object: "healing_potion"},
			want: []string{"The Healing potion is not a weapon."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Event(tt.ev))
		})
	}
}

func TestRefusal_EveryReasonHasText(t *testing.T) {
	r := New(classic(t))
	reasons := []types.Reason{
		types.ReasonNoExit, types.ReasonNoWeapon, types.ReasonNoPotion, types.ReasonNoMonster,
		types.ReasonNotOwned, types.ReasonNotWeapon, types.ReasonNotPotion, types.ReasonAmbiguous,
		types.ReasonUnknownCommand, types.ReasonSaveInCombat, types.ReasonEmptyCommand,
	}
	for _, reason := range reasons {
		if got := r.Refusal(reason, "x"); got == "" || got == "You can't do that." {
			t.Errorf("reason %s has no specific text: %q", reason, got)
		}
	}
	assert.Equal(t, "You cannot go that way.", r.Refusal(types.ReasonNoExit, "up"))
	assert.Equal(t, "Go where?", r.Refusal(types.ReasonNoExit, ""))
}

func TestResult_ConcatenatesEvents(t *testing.T) {
	r := New(classic(t))
	res := types.Result{Events: []types.Event{
		{Type: types.EventDamageDealt, MonsterID: "rat", Amount: 1},
		{Type: types.EventPlayerDamaged, MonsterID: "rat", Amount: 2},
	}}
	assert.Equal(t, []string{"You hit the Rat for 1 points.", "The Rat did 2 points of damage."}, r.Result(res))
}
