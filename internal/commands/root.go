package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AndreCode112/FinanceMartins/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "findash",
		Short:   "Personal finance dashboard over a data snapshot",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newRemindersCommand())
	rootCmd.AddCommand(newPayCommand())
	rootCmd.AddCommand(newHistoryCommand())

	return rootCmd
}
