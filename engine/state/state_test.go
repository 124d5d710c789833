package state

import (
	"testing"

	"github.com/nathoo/superadventure/types"
)

func TestNewPlayer_Defaults(t *testing.T) {
	p := NewPlayer("home")
	if p.HitPoints != 10 || p.MaxHitPoints != 10 {
		t.Errorf("hit points = %d/%d, want 10/10", p.HitPoints, p.MaxHitPoints)
	}
	if p.Gold != 20 {
		t.Errorf("gold = %d, want 20", p.Gold)
	}
	if p.Experience != 0 || p.Level != 1 {
		t.Errorf("xp/level = %d/%d, want 0/1", p.Experience, p.Level)
	}
	if p.LocationID != "home" {
		t.Errorf("location = %q, want home", p.LocationID)
	}
	if p.Inventory == nil || p.Quests == nil {
		t.Fatal("inventory and quests must be initialised")
	}
}

func TestDefaultLevelRule(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{-5, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
	}
	for _, tt := range tests {
		if got := DefaultLevelRule(tt.xp); got != tt.want {
			t.Errorf("DefaultLevelRule(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestAddExperience_LevelsUp(t *testing.T) {
	p := NewPlayer("home")
	if gained := p.AddExperience(60, nil); gained != 0 {
		t.Errorf("gained %d levels at 60 xp", gained)
	}
	if gained := p.AddExperience(150, nil); gained != 2 {
		t.Errorf("gained %d levels at 210 xp, want 2", gained)
	}
	if p.Level != 3 {
		t.Errorf("level = %d, want 3", p.Level)
	}
}

func TestAddExperience_NeverDecreases(t *testing.T) {
	p := NewPlayer("home")
	p.AddExperience(50, nil)
	p.AddExperience(-30, nil)
	if p.Experience != 50 {
		t.Errorf("experience = %d, want 50", p.Experience)
	}

	// A rule that would lower the level does not demote the player.
	p.Level = 4
	p.AddExperience(1, func(int) int { return 2 })
	if p.Level != 4 {
		t.Errorf("level = %d, want 4", p.Level)
	}
}

func TestHeal_Clamps(t *testing.T) {
	p := NewPlayer("home")
	p.HitPoints = 7
	if healed := p.Heal(5); healed != 3 {
		t.Errorf("healed = %d, want 3", healed)
	}
	if p.HitPoints != p.MaxHitPoints {
		t.Errorf("hit points = %d, want %d", p.HitPoints, p.MaxHitPoints)
	}
	if healed := p.Heal(5); healed != 0 {
		t.Errorf("healing at max restored %d", healed)
	}
}

func TestTakeDamage_AllowsTransientNegative(t *testing.T) {
	p := NewPlayer("home")
	p.TakeDamage(13)
	if p.HitPoints != -3 {
		t.Errorf("hit points = %d, want -3", p.HitPoints)
	}
	if !p.IsDead() {
		t.Error("expected player dead")
	}
	p.RestoreHitPoints()
	if p.HitPoints != 10 || p.IsDead() {
		t.Errorf("restore failed: %d", p.HitPoints)
	}
}

func TestEnsureDefaults_Idempotent(t *testing.T) {
	p := NewPlayer("home")
	granted := p.EnsureDefaults("sword", "potion")
	if len(granted) != 2 {
		t.Fatalf("expected 2 grants, got %v", granted)
	}
	p.Inventory.Add("potion", 2)

	if granted := p.EnsureDefaults("sword", "potion"); len(granted) != 0 {
		t.Errorf("expected no grants, got %v", granted)
	}
	if p.Inventory.QuantityOf("sword") != 1 || p.Inventory.QuantityOf("potion") != 3 {
		t.Errorf("unexpected inventory %v", p.Inventory.Entries())
	}
}

func TestEnsureDefaults_TopsUpDrainedEntry(t *testing.T) {
	p := NewPlayer("home")
	p.Inventory.AddOne("potion")
	p.Inventory.RemoveQuantity("potion", 1)

	p.EnsureDefaults("potion")
	if got := p.Inventory.QuantityOf("potion"); got != 1 {
		t.Errorf("potion = %d, want 1", got)
	}
	want := []types.ItemCount{{ItemID: "potion", Quantity: 1}}
	if entries := p.Inventory.Entries(); len(entries) != 1 || entries[0] != want[0] {
		t.Errorf("unexpected entries %v", entries)
	}
}
