package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AndreCode112/FinanceMartins/internal/l10n"
)

func newRemindersCommand() *cobra.Command {
	var configPath string
	var snapshotPath string
	var nowFlag string

	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "Print due payables, upcoming events and pending receipts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, _, err := loadDashboard(configPath, snapshotPath)
			if err != nil {
				return err
			}

			now := time.Now()
			if nowFlag != "" {
				now, err = time.ParseInLocation(time.RFC3339, nowFlag, time.Local)
				if err != nil {
					return fmt.Errorf("parsing --now: %w", err)
				}
			}

			out := cmd.OutOrStdout()

			reminders := svc.PayableReminders()
			counts := svc.ReminderCounts()
			fmt.Fprintf(out, "Contas (%d vencidas, %d vencem hoje, %d proximas)\n",
				counts.Overdue, counts.DueToday, counts.Upcoming)
			for _, r := range reminders[:limitOrAll(len(reminders), cfg.Reminders.PayableListLimit)] {
				fmt.Fprintf(out, "  %s - %s (%s)\n",
					r.Payable.Title,
					l10n.FormatCurrency(r.Payable.Amount),
					l10n.RelativeDueText(r.DaysFromToday))
			}

			events := svc.EventReminders(now)
			fmt.Fprintf(out, "Eventos proximos (%d)\n", len(events))
			for _, r := range events[:limitOrAll(len(events), cfg.Reminders.EventListLimit)] {
				marker := ""
				if r.DueNow {
					marker = " [agora]"
				}
				fmt.Fprintf(out, "  %s - %s%s\n",
					r.Event.Title,
					l10n.FormatDateTime(r.Event.StartsAt),
					marker)
			}

			missing := svc.Reconciliation()
			fmt.Fprintf(out, "Parcelas pagas sem comprovante (%d)\n", len(missing))
			for _, p := range missing[:limitOrAll(len(missing), cfg.Reminders.ReconciliationListLimit)] {
				fmt.Fprintf(out, "  %s %d/%d - %s (paga em %s)\n",
					p.Title, p.InstallmentNumber, p.InstallmentTotal,
					l10n.FormatCurrency(p.Amount),
					l10n.FormatOptionalDate(p.PaymentDate))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "findash.yaml", "config file")
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "snapshot file (overrides config)")
	cmd.Flags().StringVar(&nowFlag, "now", "", "reference time for event reminders (RFC3339, defaults to the wall clock)")

	return cmd
}
