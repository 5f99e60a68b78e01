package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/AndreCode112/FinanceMartins/internal/model"
	"github.com/AndreCode112/FinanceMartins/internal/snapshot"
)

func newPayCommand() *cobra.Command {
	var configPath string
	var snapshotPath string
	var note string
	var reopen bool

	cmd := &cobra.Command{
		Use:   "pay <payable-id>",
		Short: "Mark a payable as paid and write the change back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing payable id %q: %w", args[0], err)
			}

			svc, cfg, loadedPath, err := loadDashboard(configPath, snapshotPath)
			if err != nil {
				return err
			}

			p, ok := svc.Payable(id)
			if !ok {
				return fmt.Errorf("payable %d not found", id)
			}

			if reopen {
				p.Status = model.PayablePending
				p.PaymentDate = nil
				p.PaymentNote = ""
			} else {
				paidAt := svc.Today()
				p.Status = model.PayablePaid
				p.PaymentDate = &paidAt
				if note != "" {
					p.PaymentNote = note
				}
			}
			svc.UpsertPayable(p)

			if cfg.History.Enabled {
				if _, err := svc.FlushHistory(resolvePath(configPath, cfg.History.Dir)); err != nil {
					return err
				}
			}
			if err := snapshot.Save(loadedPath, svc.Snapshot()); err != nil {
				return err
			}

			verb := "paga"
			if reopen {
				verb = "reaberta"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Conta #%d %s marcada como %s\n", p.ID, p.Title, verb)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "findash.yaml", "config file")
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "snapshot file (overrides config)")
	cmd.Flags().StringVar(&note, "note", "", "payment note to record")
	cmd.Flags().BoolVar(&reopen, "reopen", false, "reopen the payable instead of paying it")

	return cmd
}
