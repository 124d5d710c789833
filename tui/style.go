package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/superadventure/types"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleStatusDanger = lipgloss.NewStyle().
				Background(lipgloss.Color("236")).
				Foreground(lipgloss.Color("196")).
				Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleLocation = lipgloss.NewStyle().
			Bold(true)

	styleQuest = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleReward = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	styleMonster = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	styleHurt = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindLocation
	kindQuest
	kindReward
	kindMonster
	kindHurt
	kindRefusal
	kindSystem
	kindTrace
	kindInput
)

// kindOf maps an event to the style of the lines it renders to.
func kindOf(t types.EventType) lineKind {
	switch t {
	case types.EventLocationDescribed:
		return kindLocation
	case types.EventQuestOffered, types.EventQuestCompleted, types.EventQuestsListed:
		return kindQuest
	case types.EventMonsterDefeated, types.EventLootReceived, types.EventLevelUp:
		return kindReward
	case types.EventMonsterSighted, types.EventDamageDealt:
		return kindMonster
	case types.EventPlayerDamaged, types.EventPlayerDied:
		return kindHurt
	case types.EventRefused, types.EventMoveBlocked:
		return kindRefusal
	case types.EventPlayerSaved, types.EventPlayerLoaded, types.EventNewGame:
		return kindSystem
	default:
		return kindNarrative
	}
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindLocation:
		return styleLocation.Render(line)
	case kindQuest:
		return styleQuest.Render(line)
	case kindReward:
		return styleReward.Render(line)
	case kindMonster:
		return styleMonster.Render(line)
	case kindHurt, kindRefusal:
		return styleHurt.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	case kindInput:
		return stylePlayerInput.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}
