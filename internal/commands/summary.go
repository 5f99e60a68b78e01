package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AndreCode112/FinanceMartins/internal/filter"
	"github.com/AndreCode112/FinanceMartins/internal/l10n"
	"github.com/AndreCode112/FinanceMartins/internal/period"
)

func newSummaryCommand() *cobra.Command {
	var configPath string
	var snapshotPath string
	var query string
	var periodName string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, _, err := loadDashboard(configPath, snapshotPath)
			if err != nil {
				return err
			}

			svc.SetTransactionFilters(filter.TransactionFilters{
				Query:  query,
				Period: period.Period(periodName),
			})
			svc.SetPayableFilters(filter.PayableFilters{
				Query:  query,
				Period: period.Period(periodName),
			})
			svc.SetEventFilters(filter.EventFilters{Query: query})

			out := cmd.OutOrStdout()

			tx := svc.TransactionTotals()
			fmt.Fprintf(out, "Transacoes (%d)\n", tx.Count)
			fmt.Fprintf(out, "  Entradas: %s\n", l10n.FormatCurrency(tx.Income))
			fmt.Fprintf(out, "  Saidas:   %s\n", l10n.FormatCurrency(tx.Expense))
			fmt.Fprintf(out, "  Saldo:    %s\n", l10n.FormatCurrency(tx.Balance))

			p := svc.PayableTotals()
			fmt.Fprintf(out, "Contas (%d, %d vencidas)\n", p.EntityCount, p.OverdueEntityCount)
			fmt.Fprintf(out, "  Pendente: %s\n", l10n.FormatCurrency(p.Pending))
			fmt.Fprintf(out, "  Vencida:  %s\n", l10n.FormatCurrency(p.Overdue))
			fmt.Fprintf(out, "  Pago:     %s\n", l10n.FormatCurrency(p.Paid))

			ev := svc.EventTotals()
			fmt.Fprintf(out, "Eventos (%d)\n", ev.Total)
			fmt.Fprintf(out, "  Pendentes:  %d\n", ev.Pending)
			fmt.Fprintf(out, "  Concluidos: %d\n", ev.Completed)
			fmt.Fprintf(out, "  Criticos:   %d\n", ev.Critical)

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "findash.yaml", "config file")
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "snapshot file (overrides config)")
	cmd.Flags().StringVar(&query, "query", "", "free-text filter")
	cmd.Flags().StringVar(&periodName, "period", "", "period filter (today, last7, last30, this_month, next7, overdue)")

	return cmd
}
