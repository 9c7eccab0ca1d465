package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finmap-dev/finmap/internal/config"
	"github.com/finmap-dev/finmap/internal/hierarchy"
	"github.com/finmap-dev/finmap/internal/snapshot"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a finmap project with the reference chart",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir)
		},
	}

	return cmd
}

func runInit(dir string) error {
	if err := os.MkdirAll(filepath.Join(dir, "snapshots"), 0o755); err != nil {
		return fmt.Errorf("creating snapshots dir: %w", err)
	}

	// Write finmap.yaml with the reference hierarchy.
	cfg := config.Default()
	if err := config.Save(filepath.Join(dir, "finmap.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the starting leaf snapshot.
	h, err := hierarchy.New(cfg.Definition())
	if err != nil {
		return fmt.Errorf("building hierarchy: %w", err)
	}
	values, err := cfg.LeafValues()
	if err != nil {
		return fmt.Errorf("reading leaf defaults: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "snapshots", "leaves.csv"))
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}
	defer f.Close()

	if err := snapshot.Write(f, h.LeafNames(), values); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
