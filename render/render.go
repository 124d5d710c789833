// Package render turns engine events into the lines of text shown to the
// player. It is shared by the plain CLI and the TUI.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nathoo/superadventure/engine/world"
	"github.com/nathoo/superadventure/types"
)

// Renderer formats events using catalog names.
type Renderer struct {
	world *world.Catalog
	title cases.Caser
}

// New returns a renderer for the given world.
func New(cat *world.Catalog) *Renderer {
	return &Renderer{world: cat, title: cases.Title(language.English)}
}

// Result renders every event of res in order.
func (r *Renderer) Result(res types.Result) []string {
	var lines []string
	for _, e := range res.Events {
		lines = append(lines, r.Event(e)...)
	}
	return lines
}

// Event renders a single event. Unknown event types render nothing.
func (r *Renderer) Event(e types.Event) []string {
	switch e.Type {
	case types.EventLocationDescribed:
		return r.location(e)
	case types.EventMoveBlocked:
		return []string{fmt.Sprintf("You must have a/an %s to enter this location.", r.itemName(e.ItemID))}
	case types.EventQuestOffered:
		return r.questOffered(e)
	case types.EventQuestCompleted:
		return r.questCompleted(e)
	case types.EventMonsterSighted:
		return []string{fmt.Sprintf("You see a %s.", r.monsterName(e.MonsterID))}
	case types.EventDamageDealt:
		return []string{fmt.Sprintf("You hit the %s for %d points.", r.monsterName(e.MonsterID), e.Amount)}
	case types.EventMonsterDefeated:
		lines := []string{
			"",
			fmt.Sprintf("You defeated the %s.", r.monsterName(e.MonsterID)),
			fmt.Sprintf("You receive %d experience points.", e.Experience),
			fmt.Sprintf("You get %s.", Gold(e.Gold)),
		}
		return lines
	case types.EventLootReceived:
		lines := make([]string, 0, len(e.Items))
		for _, it := range e.Items {
			lines = append(lines, "You loot "+r.Count(it))
		}
		return lines
	case types.EventPotionDrunk:
		return []string{fmt.Sprintf("You drink a %s that replenishes %d hit points.", r.itemName(e.ItemID), e.Amount)}
	case types.EventPlayerDamaged:
		return []string{fmt.Sprintf("The %s did %d points of damage.", r.monsterName(e.MonsterID), e.Amount)}
	case types.EventPlayerDied:
		return []string{fmt.Sprintf("The %s killed you.", r.monsterName(e.MonsterID)), ""}
	case types.EventLevelUp:
		return []string{fmt.Sprintf("You are now level %d.", e.Amount)}
	case types.EventWeaponEquipped:
		return []string{fmt.Sprintf("You ready the %s.", r.itemName(e.ItemID))}
	case types.EventInventoryListed:
		return r.inventory(e)
	case types.EventQuestsListed:
		return r.quests(e)
	case types.EventPlayerSaved:
		return []string{"You saved the game."}
	case types.EventPlayerLoaded:
		return []string{"You loaded the previous game save.", ""}
	case types.EventNewGame:
		return []string{"Starting a new game.", ""}
	case types.EventRefused:
		return []string{r.Refusal(e.Reason, e.Object)}
	}
	return nil
}

// Refusal explains why an action was not carried out.
func (r *Renderer) Refusal(reason types.Reason, object string) string {
	switch reason {
	case types.ReasonNoExit:
		if object == "" {
			return "Go where?"
		}
		return "You cannot go that way."
	case types.ReasonNoWeapon:
		return "You have no weapon to fight with."
	case types.ReasonNoPotion:
		return "You have no potion to drink."
	case types.ReasonNoMonster:
		return "There is nothing here to fight."
	case types.ReasonNotOwned:
		return fmt.Sprintf("You don't have %s.", r.objectName(object))
	case types.ReasonNotWeapon:
		return fmt.Sprintf("The %s is not a weapon.", r.objectName(object))
	case types.ReasonNotPotion:
		return fmt.Sprintf("The %s is not a potion.", r.objectName(object))
	case types.ReasonAmbiguous:
		return fmt.Sprintf("Which %s do you mean?", object)
	case types.ReasonUnknownCommand:
		return fmt.Sprintf("I don't know how to %q.", object)
	case types.ReasonSaveInCombat:
		return "You cannot save while a monster is attacking you."
	case types.ReasonEmptyCommand:
		return "Say something."
	}
	return "You can't do that."
}

// Count renders a quantity with the singular name for 1 and the plural
// name otherwise, e.g. "1 Rat tail" or "3 Rat tails".
func (r *Renderer) Count(c types.ItemCount) string {
	item, ok := r.world.LookupItem(c.ItemID)
	if !ok {
		return fmt.Sprintf("%d %s", c.Quantity, c.ItemID)
	}
	if c.Quantity == 1 {
		return fmt.Sprintf("%d %s", c.Quantity, item.Name)
	}
	return fmt.Sprintf("%d %s", c.Quantity, item.NamePlural)
}

// Gold renders an amount of gold pieces.
func Gold(n int) string {
	if n == 1 {
		return "1 piece of gold"
	}
	return fmt.Sprintf("%d pieces of gold", n)
}

// Exits renders an exit list heading, e.g. "Exits: North, East".
func (r *Renderer) Exits(dirs []types.Direction) string {
	if len(dirs) == 0 {
		return "There is no way out."
	}
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = r.title.String(string(d))
	}
	return "Exits: " + strings.Join(names, ", ")
}

func (r *Renderer) location(e types.Event) []string {
	loc, ok := r.world.LookupLocation(e.LocationID)
	if !ok {
		return nil
	}
	lines := []string{"", loc.Name}
	if loc.Description != "" {
		lines = append(lines, loc.Description)
	}
	return append(lines, r.Exits(e.Exits))
}

func (r *Renderer) questOffered(e types.Event) []string {
	q, ok := r.world.LookupQuest(e.QuestID)
	if !ok {
		return nil
	}
	lines := []string{fmt.Sprintf("You receive the «%s» quest.", q.Name)}
	if q.Description != "" {
		lines = append(lines, q.Description)
	}
	if len(e.Items) > 0 {
		lines = append(lines, "To complete it, return with:")
		for _, need := range e.Items {
			lines = append(lines, r.Count(need))
		}
	}
	return append(lines, "")
}

func (r *Renderer) questCompleted(e types.Event) []string {
	q, ok := r.world.LookupQuest(e.QuestID)
	if !ok {
		return nil
	}
	lines := []string{
		fmt.Sprintf("You complete the «%s» quest.", q.Name),
		"You receive:",
		fmt.Sprintf("%d experience points", e.Experience),
		fmt.Sprintf("%d gold", e.Gold),
	}
	if e.ItemID != "" {
		lines = append(lines, r.itemName(e.ItemID))
	}
	return append(lines, "")
}

func (r *Renderer) inventory(e types.Event) []string {
	if len(e.Items) == 0 {
		return []string{"You are carrying nothing."}
	}
	lines := []string{"You are carrying:"}
	for _, it := range e.Items {
		line := "  " + r.Count(it)
		if it.ItemID == e.ItemID {
			line += " (equipped)"
		}
		lines = append(lines, line)
	}
	return lines
}

func (r *Renderer) quests(e types.Event) []string {
	if len(e.Quests) == 0 {
		return []string{"You have no quests."}
	}
	lines := []string{"Quests:"}
	for _, pq := range e.Quests {
		name := pq.QuestID
		if q, ok := r.world.LookupQuest(pq.QuestID); ok {
			name = q.Name
		}
		done := "No"
		if pq.Completed {
			done = "Yes"
		}
		lines = append(lines, fmt.Sprintf("  %s  Done? %s", name, done))
	}
	return lines
}

func (r *Renderer) itemName(id string) string {
	if item, ok := r.world.LookupItem(id); ok {
		return item.Name
	}
	return id
}

func (r *Renderer) monsterName(id string) string {
	if m, ok := r.world.Monsters[id]; ok {
		return m.Name
	}
	return id
}

// objectName prefers the catalog name when object is an item ID, and
// otherwise echoes what the player typed.
func (r *Renderer) objectName(object string) string {
	if object == "" {
		return "that"
	}
	if item, ok := r.world.LookupItem(object); ok {
		return item.Name
	}
	return object
}
