// Package state holds the mutable player state: hit points, progression,
// gold, equipped weapon, location, inventory and quest log.
package state

import (
	"github.com/nathoo/superadventure/engine/inventory"
	"github.com/nathoo/superadventure/engine/quest"
)

// Starting values for a fresh player.
const (
	DefaultHitPoints = 10
	DefaultGold      = 20
)

// LevelRule maps total experience to a level. It must be total,
// deterministic and non-decreasing.
type LevelRule func(experience int) int

// DefaultLevelRule grants one level per 100 experience, starting at 1.
func DefaultLevelRule(experience int) int {
	if experience < 0 {
		experience = 0
	}
	return experience/100 + 1
}

// Player is the aggregate player state owned by a single session.
type Player struct {
	HitPoints    int
	MaxHitPoints int
	Gold         int
	Experience   int
	Level        int
	WeaponID     string // equipped weapon, optional
	LocationID   string

	Inventory *inventory.Ledger
	Quests    *quest.Tracker
}

// NewPlayer creates a fresh player standing at home.
func NewPlayer(home string) *Player {
	return &Player{
		HitPoints:    DefaultHitPoints,
		MaxHitPoints: DefaultHitPoints,
		Gold:         DefaultGold,
		Level:        DefaultLevelRule(0),
		LocationID:   home,
		Inventory:    inventory.New(),
		Quests:       quest.NewTracker(),
	}
}

// AddExperience adds a non-negative amount and recomputes the level.
// Returns the number of levels gained.
func (p *Player) AddExperience(amount int, rule LevelRule) int {
	if amount > 0 {
		p.Experience += amount
	}
	if rule == nil {
		rule = DefaultLevelRule
	}
	before := p.Level
	if lvl := rule(p.Experience); lvl > p.Level {
		p.Level = lvl
	}
	return p.Level - before
}

// Heal restores hit points up to the maximum. Returns the amount actually restored.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := p.HitPoints
	p.HitPoints += amount
	if p.HitPoints > p.MaxHitPoints {
		p.HitPoints = p.MaxHitPoints
	}
	return p.HitPoints - before
}

// TakeDamage subtracts hit points. The result may go to zero or below;
// callers check IsDead and reset.
func (p *Player) TakeDamage(amount int) {
	if amount > 0 {
		p.HitPoints -= amount
	}
}

// IsDead reports whether hit points are exhausted.
func (p *Player) IsDead() bool {
	return p.HitPoints <= 0
}

// RestoreHitPoints sets hit points back to the maximum.
func (p *Player) RestoreHitPoints() {
	p.HitPoints = p.MaxHitPoints
}

// EnsureDefaults grants one unit of each starter item the player does not
// currently own. Items already held in any quantity are left alone.
func (p *Player) EnsureDefaults(itemIDs ...string) []string {
	var granted []string
	for _, id := range itemIDs {
		if id == "" || p.Inventory.Has(id) {
			continue
		}
		p.Inventory.AddOne(id)
		granted = append(granted, id)
	}
	return granted
}
