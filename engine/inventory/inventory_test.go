package inventory

import (
	"testing"

	"github.com/nathoo/superadventure/types"
)

func TestAdd_CreatesAndIncrements(t *testing.T) {
	l := New()
	l.AddOne("sword")
	l.Add("potion", 3)
	l.AddOne("potion")

	if got := l.QuantityOf("sword"); got != 1 {
		t.Errorf("sword quantity = %d, want 1", got)
	}
	if got := l.QuantityOf("potion"); got != 4 {
		t.Errorf("potion quantity = %d, want 4", got)
	}
	if l.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", l.Len())
	}
}

func TestAdd_IgnoresNonPositive(t *testing.T) {
	l := New()
	l.Add("sword", 0)
	l.Add("sword", -2)
	if l.Len() != 0 {
		t.Errorf("expected no entries, got %v", l.Entries())
	}
}

func TestRemoveQuantity_ClampsAtZero(t *testing.T) {
	l := New(types.ItemCount{ItemID: "fang", Quantity: 2})
	l.RemoveQuantity("fang", 5)

	if got := l.QuantityOf("fang"); got != 0 {
		t.Errorf("fang quantity = %d, want 0", got)
	}
	if l.Has("fang") {
		t.Error("zero-quantity entry should not count as owned")
	}
	if l.Len() != 1 {
		t.Error("zero-quantity entry should be retained")
	}

	// Adding again reuses the retained entry.
	l.AddOne("fang")
	if got := l.QuantityOf("fang"); got != 1 || l.Len() != 1 {
		t.Errorf("expected single entry with quantity 1, got %v", l.Entries())
	}
}

func TestRemoveQuantity_MissingIsNoop(t *testing.T) {
	l := New(types.ItemCount{ItemID: "fang", Quantity: 2})
	l.RemoveQuantity("tail", 1)
	if l.Len() != 1 || l.QuantityOf("fang") != 2 {
		t.Errorf("unexpected ledger %v", l.Entries())
	}
}

func TestNew_MergesAndClamps(t *testing.T) {
	l := New(
		types.ItemCount{ItemID: "a", Quantity: 1},
		types.ItemCount{ItemID: "a", Quantity: 2},
		types.ItemCount{ItemID: "b", Quantity: -4},
	)
	if l.QuantityOf("a") != 3 {
		t.Errorf("a = %d, want 3", l.QuantityOf("a"))
	}
	if l.QuantityOf("b") != 0 {
		t.Errorf("b = %d, want 0", l.QuantityOf("b"))
	}
}

func TestRetainOnly_AdjacentRemovals(t *testing.T) {
	// Consecutive entries to remove are the case where mutate-while-iterating skips one.
	l := New(
		types.ItemCount{ItemID: "tail", Quantity: 1},
		types.ItemCount{ItemID: "fur", Quantity: 2},
		types.ItemCount{ItemID: "pass", Quantity: 1},
		types.ItemCount{ItemID: "fang", Quantity: 3},
		types.ItemCount{ItemID: "silk", Quantity: 1},
	)
	l.RetainOnly(func(e types.ItemCount) bool { return e.ItemID == "pass" })

	entries := l.Entries()
	if len(entries) != 1 || entries[0].ItemID != "pass" {
		t.Errorf("expected only pass to remain, got %v", entries)
	}
}

func TestRetainOnly_KeepAll(t *testing.T) {
	l := New(types.ItemCount{ItemID: "a", Quantity: 1}, types.ItemCount{ItemID: "b", Quantity: 1})
	l.RetainOnly(func(types.ItemCount) bool { return true })
	if l.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", l.Len())
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	l := New(types.ItemCount{ItemID: "a", Quantity: 1})
	entries := l.Entries()
	entries[0].Quantity = 99
	if l.QuantityOf("a") != 1 {
		t.Error("mutating Entries() result changed the ledger")
	}
}
