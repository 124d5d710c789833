package engine

import (
	"github.com/nathoo/superadventure/engine/loot"
	"github.com/nathoo/superadventure/types"
)

// UseWeapon attacks the current monster. An empty weaponID uses the
// equipped weapon, falling back to the first owned weapon.
//
// Turn order is fixed: player hit, then monster retaliation if it survived,
// then the death check.
func (e *Engine) UseWeapon(weaponID string) types.Result {
	m := e.Session.Encounter
	if m == nil {
		return e.publish(refuse(types.ReasonNoMonster, weaponID))
	}
	p := e.Session.Player

	if weaponID == "" {
		weaponID = e.currentWeapon()
		if weaponID == "" {
			return e.publish(refuse(types.ReasonNoWeapon, ""))
		}
	} else if reason := e.checkOwned(weaponID, types.CategoryWeapon); reason != "" {
		return e.publish(refuse(reason, weaponID))
	}
	p.WeaponID = weaponID

	w := e.World.Item(weaponID).Weapon
	damage := e.rolls().Between(w.MinDamage, w.MaxDamage) + e.baseDamage(p)
	m.HitPoints -= damage
	e.logger.Debug("player hit", "monster", m.TemplateID, "weapon", weaponID, "damage", damage, "monster_hp", m.HitPoints)

	evts := []types.Event{{
		Type:      types.EventDamageDealt,
		MonsterID: m.TemplateID,
		ItemID:    weaponID,
		Amount:    damage,
	}}

	if m.HitPoints <= 0 {
		evts = append(evts, e.victory(m)...)
		return e.publish(types.Result{Outcome: types.OutcomeVictory, Events: evts})
	}

	more, dead := e.retaliate(m)
	evts = append(evts, more...)
	if dead {
		return e.publish(types.Result{Outcome: types.OutcomeDefeated, Events: evts})
	}
	return e.publish(types.Result{Outcome: types.OutcomeActive, Events: evts})
}

// UsePotion drinks a potion. An empty potionID drinks the first owned
// potion. One unit is consumed even when healing is capped, and a present
// monster still takes its turn.
func (e *Engine) UsePotion(potionID string) types.Result {
	p := e.Session.Player

	if potionID == "" {
		potionID = e.firstOwned(types.CategoryHealingPotion)
		if potionID == "" {
			return e.publish(refuse(types.ReasonNoPotion, ""))
		}
	} else if reason := e.checkOwned(potionID, types.CategoryHealingPotion); reason != "" {
		return e.publish(refuse(reason, potionID))
	}

	potion := e.World.Item(potionID).Potion
	healed := p.Heal(potion.HealAmount)
	p.Inventory.RemoveQuantity(potionID, 1)

	evts := []types.Event{{Type: types.EventPotionDrunk, ItemID: potionID, Amount: healed}}

	m := e.Session.Encounter
	if m == nil {
		return e.publish(types.Result{Outcome: types.OutcomeOK, Events: evts})
	}

	more, dead := e.retaliate(m)
	evts = append(evts, more...)
	if dead {
		return e.publish(types.Result{Outcome: types.OutcomeDefeated, Events: evts})
	}
	return e.publish(types.Result{Outcome: types.OutcomeActive, Events: evts})
}

// currentWeapon returns the equipped weapon if still owned, otherwise the
// first owned weapon in ledger order.
func (e *Engine) currentWeapon() string {
	p := e.Session.Player
	if p.WeaponID != "" && e.checkOwned(p.WeaponID, types.CategoryWeapon) == "" {
		return p.WeaponID
	}
	return e.firstOwned(types.CategoryWeapon)
}

func (e *Engine) firstOwned(category types.ItemCategory) string {
	for _, entry := range e.Session.Player.Inventory.Entries() {
		if entry.Quantity <= 0 {
			continue
		}
		if item, ok := e.World.LookupItem(entry.ItemID); ok && item.Category == category {
			return item.ID
		}
	}
	return ""
}

// retaliate lets the monster strike back. On a killing blow the death
// reset runs and dead is true.
func (e *Engine) retaliate(m *types.Monster) (evts []types.Event, dead bool) {
	p := e.Session.Player
	damage := e.rolls().Between(1, m.MaxDamage)
	p.TakeDamage(damage)
	e.logger.Debug("monster hit", "monster", m.TemplateID, "damage", damage, "player_hp", p.HitPoints)

	evts = append(evts, types.Event{Type: types.EventPlayerDamaged, MonsterID: m.TemplateID, Amount: damage})
	if !p.IsDead() {
		return evts, false
	}

	evts = append(evts, types.Event{Type: types.EventPlayerDied, MonsterID: m.TemplateID})
	evts = append(evts, e.deathReset()...)
	return evts, true
}

// victory awards experience and gold, rolls loot and ends the encounter.
func (e *Engine) victory(m *types.Monster) []types.Event {
	p := e.Session.Player
	evts := []types.Event{{
		Type:       types.EventMonsterDefeated,
		MonsterID:  m.TemplateID,
		Experience: m.RewardExperience,
		Gold:       m.RewardGold,
	}}
	evts = append(evts, e.awardExperience(m.RewardExperience)...)
	p.Gold += m.RewardGold

	drops := loot.Roll(m.Loot, e.rolls())
	for _, d := range drops {
		p.Inventory.Add(d.ItemID, d.Quantity)
	}
	if len(drops) > 0 {
		evts = append(evts, types.Event{Type: types.EventLootReceived, MonsterID: m.TemplateID, Items: drops})
	}

	e.Session.Encounter = nil
	e.logger.Debug("monster defeated", "monster", m.TemplateID, "drops", len(drops))
	return evts
}

// deathReset keeps only items that open some location, re-grants the
// starter loadout, heals fully and returns the player home. Quest progress,
// experience and gold survive.
func (e *Engine) deathReset() []types.Event {
	p := e.Session.Player
	entry := e.World.EntryItems()
	p.Inventory.RetainOnly(func(c types.ItemCount) bool { return entry[c.ItemID] })
	p.EnsureDefaults(e.World.Meta.StarterWeapon, e.World.Meta.StarterPotion)
	if !p.Inventory.Has(p.WeaponID) {
		p.WeaponID = e.World.Meta.StarterWeapon
	}
	p.RestoreHitPoints()
	e.Session.Encounter = nil
	e.logger.Info("player died", "home", e.World.Meta.Home)

	return e.arrive(e.World.Location(e.World.Meta.Home))
}
