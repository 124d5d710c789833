package save

import (
	"context"
	"errors"
	"testing"

	"github.com/nathoo/superadventure/engine"
	"github.com/nathoo/superadventure/storage"
	"github.com/nathoo/superadventure/types"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return &Session{Engine: engine.New(testWorld(), engine.WithSeed(3)), Slots: NewSlots(store, JSONCodec{})}
}

func TestSession_SaveLoad(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()
	s.Engine.Player().Gold = 77

	res, err := s.Save(ctx, "")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(res.Events) != 1 || res.Events[0].Type != types.EventPlayerSaved || res.Events[0].Slot != DefaultSlot {
		t.Fatalf("save result = %+v", res)
	}
	id := s.ID
	if id == "" {
		t.Fatal("session ID not minted on first save")
	}

	s.NewGame()
	if s.ID != "" || s.Engine.Player().Gold != 20 {
		t.Fatalf("new game kept state: id=%q gold=%d", s.ID, s.Engine.Player().Gold)
	}

	res, err = s.Load(ctx, DefaultSlot)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.Outcome != types.OutcomeMoved || s.Engine.Player().Gold != 77 || s.ID != id {
		t.Errorf("loaded outcome=%s gold=%d id=%q", res.Outcome, s.Engine.Player().Gold, s.ID)
	}
}

func TestSession_SaveRefusedInCombat(t *testing.T) {
	s := newSession(t)
	s.Engine.MoveTo("den")

	res, err := s.Save(context.Background(), "fight")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if res.Outcome != types.OutcomeRefused {
		t.Fatalf("outcome = %s, want refused", res.Outcome)
	}
	if _, err := s.Slots.Load(context.Background(), "fight"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("refused save wrote a slot: %v", err)
	}
}

func TestSession_LoadMissingKeepsGame(t *testing.T) {
	s := newSession(t)
	s.Engine.Player().Gold = 5

	if _, err := s.Load(context.Background(), "nope"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if s.Engine.Player().Gold != 5 {
		t.Error("failed load changed the running game")
	}
}

func TestSession_LoadOrNew_MissingStartsOver(t *testing.T) {
	s := newSession(t)
	s.ID = "old"
	s.Engine.Player().Gold = 5
	s.Engine.Player().LocationID = "den"

	res, fresh, err := s.LoadOrNew(context.Background(), "nope")
	if err != nil {
		t.Fatalf("LoadOrNew: %v", err)
	}
	if !fresh {
		t.Error("expected fallback to a new game")
	}
	if len(res.Events) == 0 || res.Events[0].Type != types.EventNewGame {
		t.Errorf("events = %+v, want new_game first", res.Events)
	}
	if p := s.Engine.Player(); p.LocationID != "home" || p.Gold == 5 {
		t.Errorf("player not reset: location %s gold %d", p.LocationID, p.Gold)
	}
	if s.ID != "" {
		t.Errorf("session id = %q, want cleared", s.ID)
	}
}

func TestSession_LoadOrNew_CorruptKeepsGame(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := store.Save(ctx, "broken", []byte("{{{")); err != nil {
		t.Fatal(err)
	}
	s := &Session{Engine: engine.New(testWorld(), engine.WithSeed(3)), Slots: NewSlots(store, JSONCodec{})}
	s.Engine.Player().Gold = 5

	_, fresh, err := s.LoadOrNew(ctx, "broken")
	if !errors.Is(err, ErrCorrupt) || fresh {
		t.Fatalf("got fresh=%v err=%v, want ErrCorrupt without fallback", fresh, err)
	}
	if s.Engine.Player().Gold != 5 {
		t.Error("corrupt load changed the running game")
	}
}
