// Package inventory implements the player's item ledger: owned quantities
// keyed by item ID, in acquisition order.
package inventory

import "github.com/nathoo/superadventure/types"

// Ledger maps item IDs to owned quantities. At most one entry exists per
// item; quantities never go negative. Entries that drop to zero are kept.
type Ledger struct {
	entries []types.ItemCount
}

// New creates a ledger seeded with the given entries. Duplicate IDs are
// merged and negative quantities are clamped to zero.
func New(entries ...types.ItemCount) *Ledger {
	l := &Ledger{}
	for _, e := range entries {
		if e.Quantity < 0 {
			e.Quantity = 0
		}
		if i := l.index(e.ItemID); i >= 0 {
			l.entries[i].Quantity += e.Quantity
			continue
		}
		l.entries = append(l.entries, e)
	}
	return l
}

func (l *Ledger) index(itemID string) int {
	for i, e := range l.entries {
		if e.ItemID == itemID {
			return i
		}
	}
	return -1
}

// Add increments the quantity of itemID by qty, creating the entry if needed.
// Non-positive quantities are ignored.
func (l *Ledger) Add(itemID string, qty int) {
	if qty <= 0 {
		return
	}
	if i := l.index(itemID); i >= 0 {
		l.entries[i].Quantity += qty
		return
	}
	l.entries = append(l.entries, types.ItemCount{ItemID: itemID, Quantity: qty})
}

// AddOne adds a single unit of itemID.
func (l *Ledger) AddOne(itemID string) {
	l.Add(itemID, 1)
}

// RemoveQuantity decrements itemID by qty, clamping at zero.
// Missing entries are a no-op.
func (l *Ledger) RemoveQuantity(itemID string, qty int) {
	i := l.index(itemID)
	if i < 0 || qty <= 0 {
		return
	}
	l.entries[i].Quantity -= qty
	if l.entries[i].Quantity < 0 {
		l.entries[i].Quantity = 0
	}
}

// Has reports whether at least one unit of itemID is owned.
func (l *Ledger) Has(itemID string) bool {
	return l.QuantityOf(itemID) > 0
}

// QuantityOf returns the owned quantity of itemID (0 if absent).
func (l *Ledger) QuantityOf(itemID string) int {
	if i := l.index(itemID); i >= 0 {
		return l.entries[i].Quantity
	}
	return 0
}

// RetainOnly removes every entry for which keep returns false.
// The removal set is computed on a snapshot before the live ledger changes.
func (l *Ledger) RetainOnly(keep func(types.ItemCount) bool) {
	snapshot := l.Entries()

	var drop []string
	for _, e := range snapshot {
		if !keep(e) {
			drop = append(drop, e.ItemID)
		}
	}
	for _, id := range drop {
		l.remove(id)
	}
}

func (l *Ledger) remove(itemID string) {
	i := l.index(itemID)
	if i < 0 {
		return
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
}

// Entries returns a copy of the ledger in acquisition order.
func (l *Ledger) Entries() []types.ItemCount {
	out := make([]types.ItemCount, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries, including zero-quantity ones.
func (l *Ledger) Len() int {
	return len(l.entries)
}
