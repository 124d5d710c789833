// Package quest tracks the quests a player has accepted and evaluates
// delivery requirements against an inventory.
package quest

import "github.com/nathoo/superadventure/types"

// Holdings is the read side of an inventory.
type Holdings interface {
	QuantityOf(itemID string) int
}

// Consumer is an inventory that quest items can be taken from.
type Consumer interface {
	Holdings
	RemoveQuantity(itemID string, qty int)
}

// Tracker is the ordered list of quests a player has accepted.
type Tracker struct {
	quests []types.PlayerQuest
}

// NewTracker creates a tracker from existing entries, dropping duplicates.
// A duplicate that is completed wins over an incomplete one.
func NewTracker(quests ...types.PlayerQuest) *Tracker {
	t := &Tracker{}
	for _, q := range quests {
		if i := t.index(q.QuestID); i >= 0 {
			t.quests[i].Completed = t.quests[i].Completed || q.Completed
			continue
		}
		t.quests = append(t.quests, q)
	}
	return t
}

func (t *Tracker) index(questID string) int {
	for i, q := range t.quests {
		if q.QuestID == questID {
			return i
		}
	}
	return -1
}

// HasQuest reports whether the quest was ever accepted.
func (t *Tracker) HasQuest(questID string) bool {
	return t.index(questID) >= 0
}

// IsCompleted reports whether the quest was accepted and completed.
func (t *Tracker) IsCompleted(questID string) bool {
	i := t.index(questID)
	return i >= 0 && t.quests[i].Completed
}

// Accept records a new incomplete quest. Returns false if it was already accepted.
func (t *Tracker) Accept(questID string) bool {
	if t.HasQuest(questID) {
		return false
	}
	t.quests = append(t.quests, types.PlayerQuest{QuestID: questID})
	return true
}

// MarkCompleted flags an accepted quest as done. Unknown quests are ignored.
func (t *Tracker) MarkCompleted(questID string) {
	if i := t.index(questID); i >= 0 {
		t.quests[i].Completed = true
	}
}

// List returns a copy of the tracked quests in acceptance order.
func (t *Tracker) List() []types.PlayerQuest {
	out := make([]types.PlayerQuest, len(t.quests))
	copy(out, t.quests)
	return out
}

// HasAllCompletionItems reports whether inv holds every item q requires
// in at least the required quantity.
func HasAllCompletionItems(q types.Quest, inv Holdings) bool {
	for _, need := range q.CompletionItems {
		if inv.QuantityOf(need.ItemID) < need.Quantity {
			return false
		}
	}
	return true
}

// ConsumeCompletionItems removes exactly the required quantities from inv.
func ConsumeCompletionItems(q types.Quest, inv Consumer) {
	for _, need := range q.CompletionItems {
		inv.RemoveQuantity(need.ItemID, need.Quantity)
	}
}
