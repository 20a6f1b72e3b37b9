package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bahikhata-dev/bahikhata/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bahikhata",
		Short:   "GST-aware double-entry books for small Indian businesses",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newLedgerMastersCommand())
	rootCmd.AddCommand(newStockMastersCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newChartCommand())

	return rootCmd
}
