package save

import (
	"context"
	"fmt"

	"github.com/nathoo/superadventure/storage"
)

// DefaultSlot is used when no slot name is given.
const DefaultSlot = "quicksave"

// Slots stores encoded documents in a storage backend.
type Slots struct {
	store storage.Store
	codec Codec
}

// NewSlots pairs a store with a codec.
func NewSlots(store storage.Store, codec Codec) *Slots {
	return &Slots{store: store, codec: codec}
}

// Save encodes and writes d to slot.
func (s *Slots) Save(ctx context.Context, slot string, d *Document) error {
	if slot == "" {
		slot = DefaultSlot
	}
	data, err := s.codec.Marshal(d)
	if err != nil {
		return fmt.Errorf("save: encode %s: %w", slot, err)
	}
	if err := s.store.Save(ctx, slot, data); err != nil {
		return fmt.Errorf("save: write %s: %w", slot, err)
	}
	return nil
}

// Load reads and decodes slot. A missing slot wraps storage.ErrNotFound.
func (s *Slots) Load(ctx context.Context, slot string) (*Document, error) {
	if slot == "" {
		slot = DefaultSlot
	}
	data, err := s.store.Load(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("save: read %s: %w", slot, err)
	}
	d, err := s.codec.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("save: decode %s: %w", slot, err)
	}
	return d, nil
}

// List returns the stored slot names.
func (s *Slots) List(ctx context.Context) ([]string, error) {
	return s.store.List(ctx)
}

// Delete removes a slot.
func (s *Slots) Delete(ctx context.Context, slot string) error {
	return s.store.Delete(ctx, slot)
}
