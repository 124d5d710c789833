package engine

import (
	"github.com/nathoo/superadventure/engine/quest"
	"github.com/nathoo/superadventure/engine/world"
	"github.com/nathoo/superadventure/types"
)

// exitOrder is the fixed order exits are reported in.
var exitOrder = []types.Direction{types.North, types.East, types.South, types.West}

// Move walks through the exit in the given direction.
func (e *Engine) Move(dir types.Direction) types.Result {
	loc := e.World.Location(e.Session.Player.LocationID)
	target, ok := loc.Exits[dir]
	if !ok {
		return e.publish(refuse(types.ReasonNoExit, string(dir)))
	}
	return e.MoveTo(target)
}

// MoveTo moves the player to a location. A location requiring an item the
// player does not own blocks the move and leaves all state untouched.
// Otherwise the move commits, any quest here is offered or completed, and
// the resident monster (if any) is spawned.
func (e *Engine) MoveTo(locationID string) types.Result {
	return e.publish(e.moveTo(locationID))
}

func (e *Engine) moveTo(locationID string) types.Result {
	loc := e.World.Location(locationID)
	p := e.Session.Player

	if loc.RequiredItem != "" && !p.Inventory.Has(loc.RequiredItem) {
		e.logger.Debug("move blocked", "location", loc.ID, "requires", loc.RequiredItem)
		return types.Result{
			Outcome: types.OutcomeBlocked,
			Events: []types.Event{{
				Type:       types.EventMoveBlocked,
				LocationID: loc.ID,
				ItemID:     loc.RequiredItem,
			}},
		}
	}

	return types.Result{Outcome: types.OutcomeMoved, Events: e.arrive(loc)}
}

// arrive commits the player to loc and runs the arrival side effects.
// It never checks the entry gate.
func (e *Engine) arrive(loc types.Location) []types.Event {
	p := e.Session.Player
	p.LocationID = loc.ID
	e.logger.Debug("arrived", "location", loc.ID)

	evts := []types.Event{describe(loc)}

	if loc.Quest != "" {
		evts = append(evts, e.evaluateQuest(loc.Quest)...)
	}

	if loc.Monster != "" {
		m := world.Spawn(e.World.Monster(loc.Monster))
		e.Session.Encounter = m
		e.logger.Debug("monster spawned", "monster", m.TemplateID, "hp", m.HitPoints)
		evts = append(evts, types.Event{
			Type:       types.EventMonsterSighted,
			LocationID: loc.ID,
			MonsterID:  m.TemplateID,
		})
	} else {
		e.Session.Encounter = nil
	}

	return evts
}

// evaluateQuest offers a quest the player has never seen, or completes an
// accepted one when the player carries every completion item.
func (e *Engine) evaluateQuest(questID string) []types.Event {
	q := e.World.Quest(questID)
	p := e.Session.Player

	switch {
	case !p.Quests.HasQuest(q.ID):
		p.Quests.Accept(q.ID)
		needs := make([]types.ItemCount, len(q.CompletionItems))
		copy(needs, q.CompletionItems)
		return []types.Event{{Type: types.EventQuestOffered, QuestID: q.ID, Items: needs}}

	case !p.Quests.IsCompleted(q.ID) && quest.HasAllCompletionItems(q, p.Inventory):
		quest.ConsumeCompletionItems(q, p.Inventory)
		evts := []types.Event{{
			Type:       types.EventQuestCompleted,
			QuestID:    q.ID,
			Experience: q.RewardExperience,
			Gold:       q.RewardGold,
			ItemID:     q.RewardItem,
		}}
		evts = append(evts, e.awardExperience(q.RewardExperience)...)
		p.Gold += q.RewardGold
		if q.RewardItem != "" {
			p.Inventory.AddOne(q.RewardItem)
		}
		p.Quests.MarkCompleted(q.ID)
		e.logger.Info("quest completed", "quest", q.ID, "xp", q.RewardExperience, "gold", q.RewardGold)
		return evts
	}

	return nil
}

// awardExperience routes experience through the level rule and reports a
// level increase.
func (e *Engine) awardExperience(amount int) []types.Event {
	p := e.Session.Player
	if gained := p.AddExperience(amount, e.levelRule); gained > 0 {
		e.logger.Info("level up", "level", p.Level)
		return []types.Event{{Type: types.EventLevelUp, Amount: p.Level}}
	}
	return nil
}

func describe(loc types.Location) types.Event {
	var exits []types.Direction
	for _, d := range exitOrder {
		if _, ok := loc.Exits[d]; ok {
			exits = append(exits, d)
		}
	}
	return types.Event{Type: types.EventLocationDescribed, LocationID: loc.ID, Exits: exits}
}
