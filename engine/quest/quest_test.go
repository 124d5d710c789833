package quest

import (
	"testing"

	"github.com/nathoo/superadventure/engine/inventory"
	"github.com/nathoo/superadventure/types"
)

func gardenQuest() types.Quest {
	return types.Quest{
		ID:   "garden",
		Name: "Clear the garden",
		CompletionItems: []types.ItemCount{
			{ItemID: "rat_tail", Quantity: 3},
			{ItemID: "fur", Quantity: 1},
		},
	}
}

func TestAccept_Idempotent(t *testing.T) {
	tr := NewTracker()
	if !tr.Accept("garden") {
		t.Fatal("first accept should report a new quest")
	}
	if tr.Accept("garden") {
		t.Fatal("second accept should report an existing quest")
	}
	if n := len(tr.List()); n != 1 {
		t.Errorf("expected 1 quest entry, got %d", n)
	}
	if tr.IsCompleted("garden") {
		t.Error("new quest should be incomplete")
	}
}

func TestMarkCompleted(t *testing.T) {
	tr := NewTracker()
	tr.Accept("garden")
	tr.MarkCompleted("garden")
	if !tr.IsCompleted("garden") {
		t.Error("expected garden completed")
	}

	// Accepting again never reverts completion.
	tr.Accept("garden")
	if !tr.IsCompleted("garden") {
		t.Error("re-accept reverted completion")
	}
}

func TestMarkCompleted_UnknownIsNoop(t *testing.T) {
	tr := NewTracker()
	tr.MarkCompleted("field")
	if tr.HasQuest("field") {
		t.Error("marking an unknown quest should not add it")
	}
}

func TestNewTracker_Dedupes(t *testing.T) {
	tr := NewTracker(
		types.PlayerQuest{QuestID: "garden"},
		types.PlayerQuest{QuestID: "garden", Completed: true},
		types.PlayerQuest{QuestID: "field"},
	)
	list := tr.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 quests, got %v", list)
	}
	if !tr.IsCompleted("garden") {
		t.Error("completed duplicate should win")
	}
}

func TestHasAllCompletionItems(t *testing.T) {
	q := gardenQuest()
	inv := inventory.New(types.ItemCount{ItemID: "rat_tail", Quantity: 2})

	if HasAllCompletionItems(q, inv) {
		t.Fatal("should be missing items")
	}
	inv.AddOne("rat_tail")
	if HasAllCompletionItems(q, inv) {
		t.Fatal("should still be missing fur")
	}
	inv.AddOne("fur")
	if !HasAllCompletionItems(q, inv) {
		t.Fatal("should have all items")
	}
}

func TestConsumeCompletionItems_ExactQuantities(t *testing.T) {
	q := gardenQuest()
	inv := inventory.New(
		types.ItemCount{ItemID: "rat_tail", Quantity: 5},
		types.ItemCount{ItemID: "fur", Quantity: 1},
		types.ItemCount{ItemID: "sword", Quantity: 1},
	)
	ConsumeCompletionItems(q, inv)

	if got := inv.QuantityOf("rat_tail"); got != 2 {
		t.Errorf("rat_tail = %d, want 2", got)
	}
	if got := inv.QuantityOf("fur"); got != 0 {
		t.Errorf("fur = %d, want 0", got)
	}
	if got := inv.QuantityOf("sword"); got != 1 {
		t.Errorf("sword = %d, want 1", got)
	}
}
