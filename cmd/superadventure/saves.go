package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List saved games",
	Long: `Show every save slot in the configured storage backend with the
location, level and gold it holds.

Examples:
  superadventure saves
  superadventure saves --storage sqlite
  superadventure saves rm quicksave`,
	Args: cobra.NoArgs,
	RunE: runSaves,
}

var savesRmCmd = &cobra.Command{
	Use:   "rm <slot>",
	Short: "Delete a saved game",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavesRm,
}

func init() {
	savesCmd.AddCommand(savesRmCmd)
}

func runSaves(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	slots, store, err := openSlots(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	names, err := slots.List(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(out, "No saved games.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SLOT", "LOCATION", "LEVEL", "HP", "GOLD", "SAVED")
	for _, name := range names {
		d, err := slots.Load(ctx, name)
		if err != nil {
			t.Row(name, "unreadable", "", "", "", "")
			continue
		}
		t.Row(name, d.Location,
			fmt.Sprint(d.Level),
			fmt.Sprintf("%d/%d", d.HitPoints, d.MaxHitPoints),
			fmt.Sprint(d.Gold),
			d.SavedAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(out, t)
	return nil
}

func runSavesRm(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	slots, store, err := openSlots(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := slots.Delete(ctx, args[0]); err != nil {
		return fmt.Errorf("deleting %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", args[0])
	return nil
}
