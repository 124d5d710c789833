package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/nathoo/superadventure/loader"
	"github.com/nathoo/superadventure/storage"
	"github.com/nathoo/superadventure/worlds"
)

var validateCmd = &cobra.Command{
	Use:   "validate [world_dir]",
	Short: "Check a world for errors and warnings",
	Long: `Compile a world directory and report broken references, bad
numbers and unreachable locations. With no directory the bundled world
is checked.

Examples:
  superadventure validate
  superadventure validate ./worlds/mine`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	var fsys fs.FS = worlds.Classic()
	name := "bundled world"
	if len(args) == 1 {
		dir, err := storage.ExpandHome(args[0])
		if err != nil {
			return err
		}
		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("reading world directory %s: %w", dir, err)
		}
		fsys = os.DirFS(dir)
		name = dir
	}

	out := cmd.OutOrStdout()
	cat, ve, err := loader.Check(fsys)
	if err != nil {
		return err
	}
	if ve != nil {
		for _, w := range ve.Warnings {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
		for _, e := range ve.Errors {
			fmt.Fprintf(out, "error: %s\n", e)
		}
		if len(ve.Errors) > 0 {
			return fmt.Errorf("%s: %d error(s)", name, len(ve.Errors))
		}
	}

	fmt.Fprintf(out, "%s: %q OK (%d locations, %d items, %d monsters, %d quests)\n",
		name, cat.Meta.Title, len(cat.Locations), len(cat.Items), len(cat.Monsters), len(cat.Quests))
	return nil
}
