// Package save converts player state to and from a human-readable save
// document and manages named save slots.
package save

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nathoo/superadventure/engine"
	"github.com/nathoo/superadventure/engine/inventory"
	"github.com/nathoo/superadventure/engine/quest"
	"github.com/nathoo/superadventure/engine/state"
	"github.com/nathoo/superadventure/engine/world"
	"github.com/nathoo/superadventure/types"
)

// ErrCorrupt is returned for documents that cannot be decoded or that do not
// fit the loaded world.
var ErrCorrupt = errors.New("save: corrupt document")

// ErrInCombat is returned when saving while a monster is present.
var ErrInCombat = errors.New("save: cannot save during an encounter")

// Document is the serialized form of a player and the RNG state.
type Document struct {
	Game      string    `json:"game" yaml:"game"`
	Version   string    `json:"version" yaml:"version"`
	SessionID string    `json:"session_id" yaml:"session_id"`
	SavedAt   time.Time `json:"saved_at" yaml:"saved_at"`

	HitPoints    int    `json:"hit_points" yaml:"hit_points"`
	MaxHitPoints int    `json:"max_hit_points" yaml:"max_hit_points"`
	Gold         int    `json:"gold" yaml:"gold"`
	Experience   int    `json:"experience" yaml:"experience"`
	Level        int    `json:"level" yaml:"level"`
	Weapon       string `json:"weapon,omitempty" yaml:"weapon,omitempty"`
	Location     string `json:"location" yaml:"location"`

	Inventory []types.ItemCount   `json:"inventory" yaml:"inventory"`
	Quests    []types.PlayerQuest `json:"quests" yaml:"quests"`

	RNGSeed     int64 `json:"rng_seed" yaml:"rng_seed"`
	RNGPosition int64 `json:"rng_position" yaml:"rng_position"`
}

// Snapshot serializes a player. Hit points are clamped to [0, max] so a
// document never carries a transient negative value.
func Snapshot(p *state.Player) *Document {
	hp := p.HitPoints
	if hp < 0 {
		hp = 0
	}
	if hp > p.MaxHitPoints {
		hp = p.MaxHitPoints
	}
	return &Document{
		HitPoints:    hp,
		MaxHitPoints: p.MaxHitPoints,
		Gold:         p.Gold,
		Experience:   p.Experience,
		Level:        p.Level,
		Weapon:       p.WeaponID,
		Location:     p.LocationID,
		Inventory:    p.Inventory.Entries(),
		Quests:       p.Quests.List(),
	}
}

// Player deserializes the document. The level is recomputed from
// experience with rule (nil means the default rule); the stored level is
// informational only.
func (d *Document) Player(rule state.LevelRule) *state.Player {
	if rule == nil {
		rule = state.DefaultLevelRule
	}
	level := rule(d.Experience)
	return &state.Player{
		HitPoints:    d.HitPoints,
		MaxHitPoints: d.MaxHitPoints,
		Gold:         d.Gold,
		Experience:   d.Experience,
		Level:        level,
		WeaponID:     d.Weapon,
		LocationID:   d.Location,
		Inventory:    inventory.New(d.Inventory...),
		Quests:       quest.NewTracker(d.Quests...),
	}
}

// Validate checks that every reference in the document exists in cat.
func Validate(d *Document, cat *world.Catalog) error {
	var problems []string
	if _, ok := cat.LookupLocation(d.Location); !ok {
		problems = append(problems, fmt.Sprintf("unknown location %q", d.Location))
	}
	if d.Weapon != "" {
		if it, ok := cat.LookupItem(d.Weapon); !ok || it.Category != types.CategoryWeapon {
			problems = append(problems, fmt.Sprintf("unknown weapon %q", d.Weapon))
		}
	}
	for _, e := range d.Inventory {
		if _, ok := cat.LookupItem(e.ItemID); !ok {
			problems = append(problems, fmt.Sprintf("unknown item %q", e.ItemID))
		}
		if e.Quantity < 0 {
			problems = append(problems, fmt.Sprintf("negative quantity for %q", e.ItemID))
		}
	}
	for _, q := range d.Quests {
		if _, ok := cat.LookupQuest(q.QuestID); !ok {
			problems = append(problems, fmt.Sprintf("unknown quest %q", q.QuestID))
		}
	}
	if d.MaxHitPoints <= 0 {
		problems = append(problems, "maximum hit points must be positive")
	}
	if d.HitPoints < 0 || d.HitPoints > d.MaxHitPoints {
		problems = append(problems, fmt.Sprintf("hit points %d outside [0, %d]", d.HitPoints, d.MaxHitPoints))
	}
	if d.Experience < 0 {
		problems = append(problems, fmt.Sprintf("negative experience %d", d.Experience))
	}
	if d.RNGPosition < 0 || d.RNGPosition > engine.MaxPosition {
		problems = append(problems, fmt.Sprintf("rng position %d outside [0, %d]", d.RNGPosition, engine.MaxPosition))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %v", ErrCorrupt, problems)
	}
	return nil
}

// Capture snapshots a running engine, including world identity and RNG
// state. sessionID ties saves of one game together; empty mints a new one.
func Capture(eng *engine.Engine, sessionID string) (*Document, error) {
	if !eng.CanSave() {
		return nil, ErrInCombat
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	d := Snapshot(eng.Player())
	d.Game = eng.World.Meta.Title
	d.Version = eng.World.Meta.Version
	d.SessionID = sessionID
	d.SavedAt = time.Now().UTC()
	d.RNGSeed = eng.RNG.Seed()
	d.RNGPosition = eng.RNG.Position()
	return d, nil
}

// Apply validates d against the engine's world, restores the RNG and
// re-enters the saved location.
func Apply(eng *engine.Engine, d *Document, rule state.LevelRule) (types.Result, error) {
	if err := Validate(d, eng.World); err != nil {
		return types.Result{}, err
	}
	eng.RestoreRNG(d.RNGSeed, d.RNGPosition)
	return eng.Restore(d.Player(rule)), nil
}
