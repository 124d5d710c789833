package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/nathoo/superadventure/engine"
	"github.com/nathoo/superadventure/engine/save"
	"github.com/nathoo/superadventure/render"
	"github.com/nathoo/superadventure/types"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text string
	kind lineKind
}

// Model is the Bubble Tea model for the SuperAdventure TUI.
type Model struct {
	engine  *engine.Engine
	session *save.Session
	render  *render.Renderer
	ctx     context.Context

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine // accumulated narrative lines (unstyled, for re-wrapping)

	width    int
	height   int
	ready    bool
	trace    bool
	quitting bool
	lastCmd  string
}

// gameOutputMsg carries output into the Update loop.
type gameOutputMsg struct {
	input string    // echoed player input (empty for intro)
	lines []rawLine // output lines
}

// New creates a TUI model wired to the given engine and save slots.
func New(ctx context.Context, eng *engine.Engine, slots *save.Slots) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		engine:  eng,
		session: &save.Session{Engine: eng, Slots: slots},
		render:  render.New(eng.World),
		ctx:     ctx,
		input:   ti,
		history: NewHistory(100),
	}
}

// Run starts the Bubble Tea program.
func Run(ctx context.Context, eng *engine.Engine, slots *save.Slots) error {
	m := New(ctx, eng, slots)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init returns the initial command that produces the title, intro and the
// starting location.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		meta := m.engine.World.Meta
		title := meta.Title
		if meta.Version != "" {
			title += " v" + meta.Version
		}
		if meta.Author != "" {
			title += " by " + meta.Author
		}
		lines := []rawLine{{text: title, kind: kindLocation}}
		if meta.Intro != "" {
			lines = append(lines, rawLine{}, rawLine{text: meta.Intro})
		}
		lines = append(lines, m.resultLines(m.engine.Start())...)
		return gameOutputMsg{lines: lines}
	}
}

// Update handles messages (key presses, window resize, game output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.ResetCursor()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case gameOutputMsg:
		m = m.appendOutput(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	m.history.Push(input)
	m.history.ResetCursor()

	// Meta-commands.
	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m = m.appendOutput(gameOutputMsg{input: input, lines: output})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	// Handle "again" / "g".
	echo := input
	lower := strings.ToLower(input)
	if lower == "again" || lower == "g" {
		if m.lastCmd == "" {
			m = m.appendOutput(gameOutputMsg{input: echo, lines: systemLines("Nothing to repeat.")})
			return m, nil
		}
		input = m.lastCmd
	} else {
		m.lastCmd = input
	}

	result := m.engine.Step(input)
	output := m.resultLines(result)
	if m.trace {
		output = append(output, m.formatTrace(result)...)
	}
	m = m.appendOutput(gameOutputMsg{input: echo, lines: output})
	return m, nil
}

// resultLines renders each event of result with the style of its type.
func (m Model) resultLines(result types.Result) []rawLine {
	var lines []rawLine
	for _, e := range result.Events {
		kind := kindOf(e.Type)
		for i, text := range m.render.Event(e) {
			k := kind
			// Only the location name line is bold.
			if kind == kindLocation && (text == "" || i > 1) {
				k = kindNarrative
			}
			lines = append(lines, rawLine{text: text, kind: k})
		}
	}
	return lines
}

// appendOutput adds lines to the narrative and refreshes the viewport.
func (m Model) appendOutput(msg gameOutputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{text: "> " + msg.input, kind: kindInput})
	}
	m.rawLines = append(m.rawLines, msg.lines...)

	// Blank line separator between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()

	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current width
// and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	styled := make([]string, 0, len(m.rawLines))
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}
		styled = append(styled, renderLineKind(wordwrap.String(rl.text, width), rl.kind))
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// View renders the full TUI layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

func systemLines(texts ...string) []rawLine {
	lines := make([]rawLine, len(texts))
	for i, t := range texts {
		lines[i] = rawLine{text: "[" + t + "]", kind: kindSystem}
	}
	return lines
}

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]rawLine, bool) {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		return systemLines("Goodbye."), true

	case "/save":
		return m.cmdSave(arg), false

	case "/load":
		return m.cmdLoad(arg), false

	case "/new":
		return m.resultLines(m.session.NewGame()), false

	case "/saves":
		return m.cmdSaves(), false

	case "/help":
		return m.cmdHelp(), false

	case "/state":
		return m.cmdState(), false

	case "/trace":
		m.trace = !m.trace
		if m.trace {
			return systemLines("Trace output enabled."), false
		}
		return systemLines("Trace output disabled."), false

	default:
		return systemLines(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)), false
	}
}

func (m *Model) cmdSave(slot string) []rawLine {
	result, err := m.session.Save(m.ctx, slot)
	if err != nil {
		return systemLines(fmt.Sprintf("Save failed: %v", err))
	}
	return m.resultLines(result)
}

func (m *Model) cmdLoad(slot string) []rawLine {
	result, fresh, err := m.session.LoadOrNew(m.ctx, slot)
	if err != nil {
		return systemLines(fmt.Sprintf("Load failed: %v", err))
	}
	if fresh {
		return append(systemLines("No data saved in that slot. Starting a new game."), m.resultLines(result)...)
	}
	return m.resultLines(result)
}

func (m *Model) cmdSaves() []rawLine {
	slots, err := m.session.Slots.List(m.ctx)
	if err != nil {
		return systemLines(fmt.Sprintf("Listing saves failed: %v", err))
	}
	if len(slots) == 0 {
		return systemLines("No saved games.")
	}
	return systemLines("Saved games: " + strings.Join(slots, ", "))
}

func (m *Model) cmdHelp() []rawLine {
	help := []string{
		"System:",
		"  /save [slot]  Save game (default: quicksave)",
		"  /load [slot]  Load game (default: quicksave)",
		"  /new          Start a new game",
		"  /saves        List saved games",
		"  /quit         Exit game",
		"  /help         Show this help",
		"  /state        Debug: dump current state",
		"  /trace        Toggle debug trace output",
		"",
		"Game commands:",
		"  look (l)                 Describe where you are",
		"  go <dir> / n e s w       Move",
		"  attack [with <weapon>]   Fight the monster here",
		"  drink [<potion>]         Drink a healing potion",
		"  equip <weapon>           Choose your weapon",
		"  inventory (i)            Check what you're carrying",
		"  quests (q)               Show your quest log",
		"  again (g)                Repeat your last command",
		"",
		"Navigation: PgUp/PgDn to scroll, Up/Down for command history",
	}
	lines := make([]rawLine, len(help))
	for i, h := range help {
		lines[i] = rawLine{text: h, kind: kindSystem}
	}
	return lines
}

func (m *Model) cmdState() []rawLine {
	p := m.engine.Player()
	out := []string{
		fmt.Sprintf("Location: %s", p.LocationID),
		fmt.Sprintf("HP: %d/%d  Gold: %d  XP: %d  Level: %d", p.HitPoints, p.MaxHitPoints, p.Gold, p.Experience, p.Level),
		fmt.Sprintf("Weapon: %s", p.WeaponID),
		fmt.Sprintf("Inventory: %v", p.Inventory.Entries()),
		fmt.Sprintf("Quests: %v", p.Quests.List()),
	}
	if mon := m.engine.Encounter(); mon != nil {
		out = append(out, fmt.Sprintf("Encounter: %s %d/%d", mon.TemplateID, mon.HitPoints, mon.MaxHitPoints))
	}
	return systemLines(out...)
}

func (m *Model) formatTrace(result types.Result) []rawLine {
	lines := []rawLine{{text: fmt.Sprintf("[trace] Outcome: %s", result.Outcome), kind: kindTrace}}
	if len(result.Events) > 0 {
		lines = append(lines, rawLine{text: fmt.Sprintf("[trace] Events: %d", len(result.Events)), kind: kindTrace})
		for _, e := range result.Events {
			lines = append(lines, rawLine{text: fmt.Sprintf("[trace]   %s", e.Type), kind: kindTrace})
		}
	}
	return lines
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
