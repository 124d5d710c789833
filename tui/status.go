package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// statusText builds the left and right halves of the status bar: location
// and any monster on the left, player stats on the right.
func (m Model) statusText() (left, right string) {
	p := m.engine.Player()

	name := p.LocationID
	if loc, ok := m.engine.World.LookupLocation(p.LocationID); ok {
		name = loc.Name
	}
	left = " " + name
	if mon := m.engine.Encounter(); mon != nil {
		left += fmt.Sprintf(" | %s %d/%d", mon.Name, mon.HitPoints, mon.MaxHitPoints)
	}

	right = fmt.Sprintf("HP %d/%d | Gold %d | XP %d | Lvl %d ", p.HitPoints, p.MaxHitPoints, p.Gold, p.Experience, p.Level)
	return left, right
}

// renderStatusBar produces a full-width inverted status line. The bar turns
// red when the player is at a quarter of their hit points or less.
func (m Model) renderStatusBar() string {
	left, right := m.statusText()

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	bar := left + strings.Repeat(" ", gap) + right

	p := m.engine.Player()
	style := styleStatusBar
	if p.HitPoints*4 <= p.MaxHitPoints {
		style = styleStatusDanger
	}
	return style.Width(m.width).Render(bar)
}
