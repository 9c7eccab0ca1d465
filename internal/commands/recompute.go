package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finmap-dev/finmap/internal/config"
	"github.com/finmap-dev/finmap/internal/engine"
	"github.com/finmap-dev/finmap/internal/hierarchy"
	"github.com/finmap-dev/finmap/internal/snapshot"
)

func newRecomputeCommand() *cobra.Command {
	var configPath string
	var snapshotPath string

	cmd := &cobra.Command{
		Use:   "recompute",
		Short: "Recompute derived totals and weights from a leaf snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecompute(cmd, configPath, snapshotPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "finmap.yaml", "hierarchy config file")
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "snapshots/leaves.csv", "leaf snapshot CSV")

	return cmd
}

func runRecompute(cmd *cobra.Command, configPath, snapshotPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	h, err := hierarchy.New(cfg.Definition())
	if err != nil {
		return fmt.Errorf("building hierarchy: %w", err)
	}

	f, err := os.Open(snapshotPath)
	if err != nil {
		return fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	leaves, err := snapshot.Read(f)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	values, weights, err := engine.Recompute(h, leaves)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-24s %14s %8s\n", "ACCOUNT", "VALUE", "WEIGHT")
	for _, name := range h.DerivedNames() {
		fmt.Fprintf(out, "%-24s %14s %8s\n", name, values[name].StringFixed(2), weights[name].StringFixed(3))
	}
	bal := h.BalancingName()
	fmt.Fprintf(out, "%-24s %14s %8s\n", bal, values[bal].StringFixed(2), weights[bal].StringFixed(3))
	return nil
}
