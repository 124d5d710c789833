// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for plain (non-TUI) play.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/superadventure/engine"
	"github.com/nathoo/superadventure/engine/save"
	"github.com/nathoo/superadventure/render"
	"github.com/nathoo/superadventure/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	Session   *save.Session
	Render    *render.Renderer
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine and save slots.
func New(eng *engine.Engine, slots *save.Slots) *CLI {
	return &CLI{
		Engine:  eng,
		Session: &save.Session{Engine: eng, Slots: slots},
		Render:  render.New(eng.World),
		In:      os.Stdin,
		Out:     os.Stdout,
	}
}

// Run starts the game loop. It shows the intro, enters the starting
// location, then loops: prompt → input → dispatch → output.
func (c *CLI) Run(ctx context.Context) {
	if intro := c.Engine.World.Meta.Intro; intro != "" {
		c.printLine(intro)
	}
	c.printResult(c.Engine.Start())

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(ctx, input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last game command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		result := c.Engine.Step(input)
		c.printResult(result)

		if c.Trace {
			c.printTrace(result)
		}
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(ctx context.Context, input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/save":
		c.cmdSave(ctx, arg)

	case "/load":
		c.cmdLoad(ctx, arg)

	case "/new":
		c.printResult(c.Session.NewGame())

	case "/saves":
		c.cmdSaves(ctx)

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdSave(ctx context.Context, slot string) {
	result, err := c.Session.Save(ctx, slot)
	if err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	c.printResult(result)
}

func (c *CLI) cmdLoad(ctx context.Context, slot string) {
	result, fresh, err := c.Session.LoadOrNew(ctx, slot)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}
	if fresh {
		c.printSystem("No data saved in that slot. Starting a new game.")
	}
	c.printResult(result)
}

func (c *CLI) cmdSaves(ctx context.Context) {
	slots, err := c.Session.Slots.List(ctx)
	if err != nil {
		c.printSystem(fmt.Sprintf("Listing saves failed: %v", err))
		return
	}
	if len(slots) == 0 {
		c.printSystem("No saved games.")
		return
	}
	c.printSystem("Saved games: " + strings.Join(slots, ", "))
}

func (c *CLI) cmdHelp() {
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
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	p := c.Engine.Player()
	c.printSystem(fmt.Sprintf("Location: %s", p.LocationID))
	c.printSystem(fmt.Sprintf("HP: %d/%d  Gold: %d  XP: %d  Level: %d", p.HitPoints, p.MaxHitPoints, p.Gold, p.Experience, p.Level))
	c.printSystem(fmt.Sprintf("Weapon: %s", p.WeaponID))
	c.printSystem(fmt.Sprintf("Inventory: %v", p.Inventory.Entries()))
	c.printSystem(fmt.Sprintf("Quests: %v", p.Quests.List()))
	if m := c.Engine.Encounter(); m != nil {
		c.printSystem(fmt.Sprintf("Encounter: %s %d/%d", m.TemplateID, m.HitPoints, m.MaxHitPoints))
	}
	c.printSystem(fmt.Sprintf("RNG: seed %d position %d", c.Engine.RNG.Seed(), c.Engine.RNG.Position()))
}

func (c *CLI) printTrace(result types.Result) {
	c.printSystem(fmt.Sprintf("[trace] Outcome: %s", result.Outcome))
	if len(result.Events) > 0 {
		c.printSystem(fmt.Sprintf("[trace] Events: %d", len(result.Events)))
		for _, e := range result.Events {
			c.printSystem(fmt.Sprintf("[trace]   %s", e.Type))
		}
	}
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range c.Render.Result(result) {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
