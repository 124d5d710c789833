// Package types defines the shared data structures for the adventure engine.
// This package contains only type definitions: no logic, no methods.
package types

// ItemCategory tags which variant fields of an Item are meaningful.
type ItemCategory string

const (
	CategoryOther         ItemCategory = "other"
	CategoryWeapon        ItemCategory = "weapon"
	CategoryHealingPotion ItemCategory = "healing_potion"
)

// WeaponStats is the variant payload of a CategoryWeapon item.
type WeaponStats struct {
	MinDamage int
	MaxDamage int
}

// PotionStats is the variant payload of a CategoryHealingPotion item.
type PotionStats struct {
	HealAmount int
}

// Item is an immutable catalog entry. Exactly one of Weapon/Potion is set
// when Category is CategoryWeapon/CategoryHealingPotion; both are nil otherwise.
type Item struct {
	ID         string
	Name       string
	NamePlural string
	Category   ItemCategory
	Weapon     *WeaponStats
	Potion     *PotionStats
}

// ItemCount pairs an item ID with a quantity. Used for ledger entries,
// quest completion requirements, loot grants and event payloads.
type ItemCount struct {
	ItemID   string `json:"item" yaml:"item"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// LootEntry is one row of a monster's loot table.
type LootEntry struct {
	ItemID         string
	DropPercentage int // 0-100
	IsDefault      bool
}

// MonsterTemplate is the catalog definition of a monster.
type MonsterTemplate struct {
	ID               string
	Name             string
	MaxDamage        int
	RewardExperience int
	RewardGold       int
	MaxHitPoints     int
	Loot             []LootEntry
}

// Monster is a live encounter copy of a MonsterTemplate.
type Monster struct {
	TemplateID       string
	Name             string
	MaxDamage        int
	RewardExperience int
	RewardGold       int
	HitPoints        int
	MaxHitPoints     int
	Loot             []LootEntry
}

// Direction names a location exit.
type Direction string

const (
	North Direction = "north"
	East  Direction = "east"
	South Direction = "south"
	West  Direction = "west"
)

// Location is a node of the world graph.
type Location struct {
	ID           string
	Name         string
	Description  string
	Exits        map[Direction]string // direction → location ID
	RequiredItem string               // item needed to enter, optional
	Quest        string               // quest offered here, optional
	Monster      string               // resident monster template, optional
}

// Quest is a delivery quest definition.
type Quest struct {
	ID               string
	Name             string
	Description      string
	CompletionItems  []ItemCount
	RewardExperience int
	RewardGold       int
	RewardItem       string
}

// PlayerQuest records a quest the player has accepted.
type PlayerQuest struct {
	QuestID   string `json:"quest" yaml:"quest"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Intent is the parsed representation of a player command.
type Intent struct {
	Verb   string
	Object string // optional
}

// EventType identifies a presentation event.
type EventType string

const (
	EventLocationDescribed EventType = "location_described"
	EventMoveBlocked       EventType = "move_blocked"
	EventQuestOffered      EventType = "quest_offered"
	EventQuestCompleted    EventType = "quest_completed"
	EventMonsterSighted    EventType = "monster_sighted"
	EventDamageDealt       EventType = "damage_dealt"
	EventMonsterDefeated   EventType = "monster_defeated"
	EventLootReceived      EventType = "loot_received"
	EventPotionDrunk       EventType = "potion_drunk"
	EventPlayerDamaged     EventType = "player_damaged"
	EventPlayerDied        EventType = "player_died"
	EventLevelUp           EventType = "level_up"
	EventWeaponEquipped    EventType = "weapon_equipped"
	EventInventoryListed   EventType = "inventory_listed"
	EventQuestsListed      EventType = "quests_listed"
	EventPlayerSaved       EventType = "player_saved"
	EventPlayerLoaded      EventType = "player_loaded"
	EventNewGame           EventType = "new_game"
	EventRefused           EventType = "refused"
)

// Reason explains an EventRefused.
type Reason string

const (
	ReasonNoExit         Reason = "no_exit"
	ReasonNoWeapon       Reason = "no_weapon"
	ReasonNoPotion       Reason = "no_potion"
	ReasonNoMonster      Reason = "no_monster"
	ReasonNotOwned       Reason = "not_owned"
	ReasonNotWeapon      Reason = "not_weapon"
	ReasonNotPotion      Reason = "not_potion"
	ReasonAmbiguous      Reason = "ambiguous"
	ReasonUnknownCommand Reason = "unknown_command"
	ReasonSaveInCombat   Reason = "save_in_combat"
	ReasonEmptyCommand   Reason = "empty_command"
)

// Event is a structured notification for the presentation layer.
// Only the fields relevant to Type are set.
type Event struct {
	Type       EventType
	LocationID string
	QuestID    string
	MonsterID  string // template ID
	ItemID     string
	Amount     int // damage dealt/taken, hit points healed, new level
	Experience int
	Gold       int
	Items      []ItemCount
	Quests     []PlayerQuest
	Exits      []Direction
	Slot       string
	Reason     Reason
	Object     string // the unresolved input a refusal refers to
}

// Outcome summarises how an action ended.
type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeMoved    Outcome = "moved"
	OutcomeBlocked  Outcome = "blocked"
	OutcomeRefused  Outcome = "refused"
	OutcomeActive   Outcome = "active"
	OutcomeVictory  Outcome = "victory"
	OutcomeDefeated Outcome = "defeated"
)

// Result is the output of a single game step.
type Result struct {
	Outcome Outcome
	Events  []Event
}
