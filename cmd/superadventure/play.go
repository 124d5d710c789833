package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nathoo/superadventure/cli"
	"github.com/nathoo/superadventure/config"
	"github.com/nathoo/superadventure/engine"
	"github.com/nathoo/superadventure/engine/events"
	"github.com/nathoo/superadventure/logging"
	"github.com/nathoo/superadventure/storage"
	"github.com/nathoo/superadventure/tui"
)

var (
	flagSeed   int64
	flagPlain  bool
	flagScript string
	flagTrace  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the adventure",
	Long: `Start a game. On a terminal the full-screen interface is used;
with --plain, --script or when output is piped, a line-oriented prompt is used.

Examples:
  superadventure play
  superadventure play --script walkthrough.txt --seed 1`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, then time based)")
	cmd.Flags().BoolVar(&flagPlain, "plain", false, "Use the plain line-oriented interface")
	cmd.Flags().StringVar(&flagScript, "script", "", "Play commands from a file (implies --plain)")
	cmd.Flags().BoolVar(&flagTrace, "trace", false, "Show event trace after each command")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	plain := flagPlain || flagScript != "" || !term.IsTerminal(int(os.Stdout.Fd()))
	logger, closeLog, err := playLogger(cfg, plain)
	if err != nil {
		return err
	}
	defer closeLog.Close()

	cat, err := loadWorld(cfg)
	if err != nil {
		return fmt.Errorf("loading world: %w", err)
	}

	slots, store, err := openSlots(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	seed := flagSeed
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "world", cat.Meta.Title, "seed", seed, "storage", cfg.Storage.Backend)

	eng := engine.New(cat,
		engine.WithSeed(seed),
		engine.WithLogger(logger),
		engine.WithSink(events.LogSink{Logger: logger}),
	)

	if !plain {
		return tui.Run(ctx, eng, slots)
	}

	c := cli.New(eng, slots)
	c.Trace = flagTrace
	if flagScript != "" {
		f, err := os.Open(flagScript)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		c.In = f
		c.EchoInput = true
	}

	meta := cat.Meta
	fmt.Fprintf(c.Out, "%s v%s by %s\n\n", meta.Title, meta.Version, meta.Author)
	c.Run(ctx)
	return nil
}

// playLogger sends logs to stderr in plain mode. The TUI owns the screen,
// so there logs go to the configured file or nowhere.
func playLogger(cfg config.Config, plain bool) (*log.Logger, io.Closer, error) {
	if plain {
		return logging.New(os.Stderr, cfg.LogLevel), nopCloser{}, nil
	}
	if cfg.LogFile == "" {
		return logging.Discard(), nopCloser{}, nil
	}
	path, err := storage.ExpandHome(cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}
	return logging.OpenFile(path, cfg.LogLevel)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
