// Package l10n holds the pt-BR labels and formatting shared by the search
// blobs and the CLI output.
package l10n

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AndreCode112/FinanceMartins/internal/model"
)

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04"
)

// MonthLabels are the abbreviated pt-BR month names, January first.
var MonthLabels = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

var payableTypeLabels = map[model.PayableType]string{
	model.PayableInvoice:      "Fatura",
	model.PayableSubscription: "Assinatura",
	model.PayableDebt:         "Divida",
	model.PayableInstallment:  "Parcela",
	model.PayableOther:        "Outro",
}

var statusStateLabels = map[model.StatusState]string{
	model.StatePending: "Pendente",
	model.StatePaid:    "Pago",
	model.StateOverdue: "Vencida",
}

var eventStatusLabels = map[model.EventStatus]string{
	model.EventPending:   "Pendente",
	model.EventCompleted: "Concluido",
	model.EventCanceled:  "Cancelado",
}

var eventImportanceLabels = map[model.EventImportance]string{
	model.ImportanceLow:      "Baixa",
	model.ImportanceMedium:   "Media",
	model.ImportanceHigh:     "Alta",
	model.ImportanceCritical: "Critica",
}

// FormatCurrency renders an amount as pt-BR currency: "R$ 1.234,56".
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}

	out := "R$ " + b.String() + "," + fracPart
	if amount.IsNegative() {
		return "-" + out
	}
	return out
}

// FormatDate renders a calendar date as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatOptionalDate renders a date or "-" when absent.
func FormatOptionalDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return FormatDate(*t)
}

// FormatDateTime renders a timestamp as dd/mm/yyyy hh:mm.
func FormatDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

// MonthLabel returns the abbreviated label for a month.
func MonthLabel(m time.Month) string {
	return MonthLabels[int(m)-1]
}

// PayableTypeLabel returns the display label for a payable type, defaulting
// to "Outro".
func PayableTypeLabel(t model.PayableType) string {
	if label, ok := payableTypeLabels[t]; ok {
		return label
	}
	return "Outro"
}

// StatusStateLabel returns the display label for a derived status state.
func StatusStateLabel(s model.StatusState) string {
	if label, ok := statusStateLabels[s]; ok {
		return label
	}
	return "Pendente"
}

// EventStatusLabel returns the display label for an event status.
func EventStatusLabel(s model.EventStatus) string {
	if label, ok := eventStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// EventImportanceLabel returns the display label for an event importance.
func EventImportanceLabel(i model.EventImportance) string {
	if label, ok := eventImportanceLabels[i]; ok {
		return label
	}
	return string(i)
}

// RelativeDueText describes a due date relative to today, in days.
func RelativeDueText(daysFromToday int) string {
	switch {
	case daysFromToday < 0:
		overdueDays := -daysFromToday
		if overdueDays == 1 {
			return "Vencida ha 1 dia"
		}
		return fmt.Sprintf("Vencida ha %d dias", overdueDays)
	case daysFromToday == 0:
		return "Vence hoje"
	case daysFromToday == 1:
		return "Vence amanha"
	default:
		return fmt.Sprintf("Vence em %d dias", daysFromToday)
	}
}
