// Package engine provides the Step() orchestrator that wires together
// parsing, resolution, navigation, combat and events into a single turn.
package engine

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/nathoo/superadventure/engine/events"
	"github.com/nathoo/superadventure/engine/parser"
	"github.com/nathoo/superadventure/engine/resolve"
	"github.com/nathoo/superadventure/engine/state"
	"github.com/nathoo/superadventure/engine/world"
	"github.com/nathoo/superadventure/types"
)

// Session is the mutable context of one game: the player and the monster
// currently faced, if any.
type Session struct {
	Player    *state.Player
	Encounter *types.Monster
}

// BaseDamageFunc derives the player's bonus damage from their state.
type BaseDamageFunc func(p *state.Player) int

// DefaultBaseDamage grants one bonus point per level above the first.
func DefaultBaseDamage(p *state.Player) int {
	if p.Level <= 1 {
		return 0
	}
	return p.Level - 1
}

// Engine holds the world catalog and the mutable session.
type Engine struct {
	World   *world.Catalog
	Session Session
	RNG     *RNG

	roller     Roller
	baseDamage BaseDamageFunc
	levelRule  state.LevelRule
	sinks      []events.Sink
	logger     *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed seeds the engine's RNG.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.RNG = NewRNG(seed) }
}

// WithRoller replaces the source of damage and loot rolls.
func WithRoller(r Roller) Option {
	return func(e *Engine) { e.roller = r }
}

// WithBaseDamage replaces the bonus damage rule.
func WithBaseDamage(f BaseDamageFunc) Option {
	return func(e *Engine) { e.baseDamage = f }
}

// WithLevelRule replaces the experience to level rule.
func WithLevelRule(r state.LevelRule) Option {
	return func(e *Engine) { e.levelRule = r }
}

// WithSink registers a presentation sink that receives every emitted event.
func WithSink(s events.Sink) Option {
	return func(e *Engine) { e.sinks = append(e.sinks, s) }
}

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an engine with a fresh player standing at the catalog's home.
// Call Start to describe the opening location.
func New(cat *world.Catalog, opts ...Option) *Engine {
	e := &Engine{
		World:      cat,
		RNG:        NewRNG(0),
		baseDamage: DefaultBaseDamage,
		levelRule:  state.DefaultLevelRule,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Session.Player = e.freshPlayer()
	return e
}

func (e *Engine) freshPlayer() *state.Player {
	p := state.NewPlayer(e.World.Meta.Home)
	p.EnsureDefaults(e.World.Meta.StarterWeapon, e.World.Meta.StarterPotion)
	p.WeaponID = e.World.Meta.StarterWeapon
	return p
}

// Player returns the current player.
func (e *Engine) Player() *state.Player {
	return e.Session.Player
}

// Encounter returns the live monster, or nil outside combat.
func (e *Engine) Encounter() *types.Monster {
	return e.Session.Encounter
}

// InCombat reports whether a monster is present.
func (e *Engine) InCombat() bool {
	return e.Session.Encounter != nil
}

// CanSave reports whether the game may be saved now. Saving is not
// offered while a monster is present.
func (e *Engine) CanSave() bool {
	return !e.InCombat()
}

// LevelRule returns the experience to level rule in use.
func (e *Engine) LevelRule() state.LevelRule {
	return e.levelRule
}

func (e *Engine) rolls() Roller {
	if e.roller != nil {
		return e.roller
	}
	return e.RNG
}

// RestoreRNG re-creates the RNG from seed and advances to the saved position.
func (e *Engine) RestoreRNG(seed int64, position int64) {
	e.RNG = RestoreRNG(seed, position)
}

// Start enters the player's current location as if arriving there, running
// quest evaluation and monster spawn without the entry gate.
func (e *Engine) Start() types.Result {
	loc := e.World.Location(e.Session.Player.LocationID)
	return e.publish(types.Result{Outcome: types.OutcomeMoved, Events: e.arrive(loc)})
}

// Restore replaces the session's player with a loaded one and re-enters the
// saved location.
func (e *Engine) Restore(p *state.Player) types.Result {
	e.Session = Session{Player: p}
	loc := e.World.Location(p.LocationID)
	evts := []types.Event{{Type: types.EventPlayerLoaded, LocationID: p.LocationID}}
	evts = append(evts, e.arrive(loc)...)
	e.logger.Info("player restored", "location", p.LocationID, "level", p.Level)
	return e.publish(types.Result{Outcome: types.OutcomeMoved, Events: evts})
}

// NewGame discards the session and starts over with a default player.
func (e *Engine) NewGame() types.Result {
	e.Session = Session{Player: e.freshPlayer()}
	loc := e.World.Location(e.Session.Player.LocationID)
	evts := []types.Event{{Type: types.EventNewGame, LocationID: loc.ID}}
	evts = append(evts, e.arrive(loc)...)
	e.logger.Info("new game", "home", loc.ID)
	return e.publish(types.Result{Outcome: types.OutcomeMoved, Events: evts})
}

// RefuseSave reports that the game cannot be saved while a monster is
// present.
func (e *Engine) RefuseSave() types.Result {
	return e.publish(refuse(types.ReasonSaveInCombat, ""))
}

// Saved announces a completed save to the sinks.
func (e *Engine) Saved(slot string) types.Result {
	e.logger.Info("game saved", "slot", slot)
	return e.publish(types.Result{
		Outcome: types.OutcomeOK,
		Events:  []types.Event{{Type: types.EventPlayerSaved, Slot: slot, LocationID: e.Session.Player.LocationID}},
	})
}

// Step processes one player command and returns the result.
func (e *Engine) Step(input string) types.Result {
	intent := parser.Parse(input)
	e.logger.Debug("step", "input", input, "verb", intent.Verb, "object", intent.Object)

	switch intent.Verb {
	case "":
		return e.publish(refuse(types.ReasonEmptyCommand, ""))
	case "go":
		if intent.Object == "" {
			return e.publish(refuse(types.ReasonNoExit, ""))
		}
		return e.Move(types.Direction(intent.Object))
	case "look":
		return e.Look()
	case "inventory":
		return e.Inventory()
	case "quests":
		return e.QuestLog()
	case "attack":
		if intent.Object == "" {
			return e.UseWeapon("")
		}
		id, reason := e.resolveOwned(types.CategoryWeapon, intent.Object)
		if reason != "" {
			return e.publish(refuse(reason, intent.Object))
		}
		return e.UseWeapon(id)
	case "drink":
		if intent.Object == "" {
			return e.UsePotion("")
		}
		id, reason := e.resolveOwned(types.CategoryHealingPotion, intent.Object)
		if reason != "" {
			return e.publish(refuse(reason, intent.Object))
		}
		return e.UsePotion(id)
	case "equip":
		id, reason := e.resolveOwned(types.CategoryWeapon, intent.Object)
		if reason != "" {
			return e.publish(refuse(reason, intent.Object))
		}
		return e.Equip(id)
	default:
		return e.publish(refuse(types.ReasonUnknownCommand, intent.Verb))
	}
}

// resolveOwned maps a typed name to an owned item of the given category.
// On failure it reports whether the name matched an owned item of another
// category (wrong kind) or nothing at all.
func (e *Engine) resolveOwned(category types.ItemCategory, name string) (string, types.Reason) {
	owned := e.Session.Player.Inventory.Entries()
	id, err := resolve.OwnedItem(e.World, owned, category, name)
	if err == nil {
		return id, ""
	}
	var amb *resolve.AmbiguityError
	if errors.As(err, &amb) {
		return "", types.ReasonAmbiguous
	}
	if _, anyErr := resolve.OwnedItem(e.World, owned, "", name); anyErr == nil {
		if category == types.CategoryWeapon {
			return "", types.ReasonNotWeapon
		}
		return "", types.ReasonNotPotion
	}
	return "", types.ReasonNotOwned
}

// Look describes the current location and any monster present.
func (e *Engine) Look() types.Result {
	loc := e.World.Location(e.Session.Player.LocationID)
	evts := []types.Event{describe(loc)}
	if m := e.Session.Encounter; m != nil {
		evts = append(evts, types.Event{Type: types.EventMonsterSighted, LocationID: loc.ID, MonsterID: m.TemplateID})
	}
	return e.publish(types.Result{Outcome: types.OutcomeOK, Events: evts})
}

// Inventory lists owned items with positive quantity in ledger order.
func (e *Engine) Inventory() types.Result {
	var items []types.ItemCount
	for _, entry := range e.Session.Player.Inventory.Entries() {
		if entry.Quantity > 0 {
			items = append(items, entry)
		}
	}
	return e.publish(types.Result{
		Outcome: types.OutcomeOK,
		Events:  []types.Event{{Type: types.EventInventoryListed, Items: items, ItemID: e.Session.Player.WeaponID}},
	})
}

// QuestLog lists accepted quests in acceptance order.
func (e *Engine) QuestLog() types.Result {
	return e.publish(types.Result{
		Outcome: types.OutcomeOK,
		Events:  []types.Event{{Type: types.EventQuestsListed, Quests: e.Session.Player.Quests.List()}},
	})
}

// Equip selects the weapon used by default when attacking.
func (e *Engine) Equip(weaponID string) types.Result {
	if reason := e.checkOwned(weaponID, types.CategoryWeapon); reason != "" {
		return e.publish(refuse(reason, weaponID))
	}
	e.Session.Player.WeaponID = weaponID
	return e.publish(types.Result{
		Outcome: types.OutcomeOK,
		Events:  []types.Event{{Type: types.EventWeaponEquipped, ItemID: weaponID}},
	})
}

// checkOwned validates that id names an owned item of the given category.
func (e *Engine) checkOwned(id string, category types.ItemCategory) types.Reason {
	item, ok := e.World.LookupItem(id)
	if !ok || !e.Session.Player.Inventory.Has(id) {
		return types.ReasonNotOwned
	}
	if item.Category != category {
		if category == types.CategoryWeapon {
			return types.ReasonNotWeapon
		}
		return types.ReasonNotPotion
	}
	return ""
}

// publish delivers the result's events to every sink and returns it.
func (e *Engine) publish(res types.Result) types.Result {
	events.Dispatch(res.Events, e.sinks...)
	return res
}

func refuse(reason types.Reason, object string) types.Result {
	return types.Result{
		Outcome: types.OutcomeRefused,
		Events:  []types.Event{{Type: types.EventRefused, Reason: reason, Object: object}},
	}
}
