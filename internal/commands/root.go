package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finmap-dev/finmap/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "finmap",
		Short:   "Interactive financial mind-map engine",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newRecomputeCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
