package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AndreCode112/FinanceMartins/internal/config"
	"github.com/AndreCode112/FinanceMartins/internal/history"
	"github.com/AndreCode112/FinanceMartins/internal/l10n"
)

func newHistoryCommand() *cobra.Command {
	var configPath string
	var payableID int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the recorded payable status changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if !cfg.History.Enabled {
				return fmt.Errorf("history is disabled in %s", configPath)
			}

			entries, err := history.Read(resolvePath(configPath, cfg.History.Dir))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				if payableID != 0 && e.PayableID != payableID {
					continue
				}
				fmt.Fprintf(out, "%s  #%d %s: %s -> %s (%s)\n",
					l10n.FormatDateTime(e.ChangedAt),
					e.PayableID, e.Title,
					string(e.PrevStatus), string(e.NewStatus),
					e.Source)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "findash.yaml", "config file")
	cmd.Flags().IntVar(&payableID, "payable", 0, "only show changes for one payable id")

	return cmd
}
