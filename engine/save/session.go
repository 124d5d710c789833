package save

import (
	"context"
	"errors"

	"github.com/nathoo/superadventure/engine"
	"github.com/nathoo/superadventure/storage"
	"github.com/nathoo/superadventure/types"
)

// Session ties a running engine to its save slots. ID links the saves of
// one game and is replaced on load or new game.
type Session struct {
	Engine *engine.Engine
	Slots  *Slots
	ID     string
}

// Save writes the current game to slot. While a monster is present the
// engine's refusal is returned and nothing is written.
func (s *Session) Save(ctx context.Context, slot string) (types.Result, error) {
	if slot == "" {
		slot = DefaultSlot
	}
	if !s.Engine.CanSave() {
		return s.Engine.RefuseSave(), nil
	}
	d, err := Capture(s.Engine, s.ID)
	if err != nil {
		return types.Result{}, err
	}
	if err := s.Slots.Save(ctx, slot, d); err != nil {
		return types.Result{}, err
	}
	s.ID = d.SessionID
	return s.Engine.Saved(slot), nil
}

// Load restores slot into the engine. On error the running game is left
// untouched.
func (s *Session) Load(ctx context.Context, slot string) (types.Result, error) {
	d, err := s.Slots.Load(ctx, slot)
	if err != nil {
		return types.Result{}, err
	}
	res, err := Apply(s.Engine, d, s.Engine.LevelRule())
	if err != nil {
		return types.Result{}, err
	}
	s.ID = d.SessionID
	return res, nil
}

// LoadOrNew restores slot, or starts a new game when the slot holds no
// save. fresh reports the fallback. Other errors leave the game untouched.
func (s *Session) LoadOrNew(ctx context.Context, slot string) (res types.Result, fresh bool, err error) {
	res, err = s.Load(ctx, slot)
	if errors.Is(err, storage.ErrNotFound) {
		return s.NewGame(), true, nil
	}
	return res, false, err
}

// NewGame starts over with a fresh player and session ID.
func (s *Session) NewGame() types.Result {
	s.ID = ""
	return s.Engine.NewGame()
}
