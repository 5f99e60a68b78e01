// Package search builds the "search blobs" each record type exposes to the
// free-text filter: human labels, pt-BR synonyms, formatted and raw dates,
// and amounts with both decimal separators, so a query can match on any of
// them with natural vocabulary.
package search

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AndreCode112/FinanceMartins/internal/entity"
	"github.com/AndreCode112/FinanceMartins/internal/l10n"
	"github.com/AndreCode112/FinanceMartins/internal/model"
)

const isoDate = "2006-01-02"

var transactionTypeAliases = map[model.TransactionType]string{
	model.TransactionIncome:  "entrada entradas receita receitas ganho ganhos credito creditos income",
	model.TransactionExpense: "saida saidas despesa despesas gasto gastos debito debitos expense",
}

var payableTypeAliases = map[model.PayableType]string{
	model.PayableInvoice:      "fatura cartao boleto invoice",
	model.PayableSubscription: "assinatura recorrente subscription mensalidade",
	model.PayableDebt:         "divida emprestimo debt debito",
	model.PayableInstallment:  "parcela parcelado installment",
	model.PayableOther:        "outro avulso other",
}

func statusAliases(p model.Payable, today time.Time) string {
	switch {
	case p.Status == model.PayablePaid:
		return "pago paga quitado quitada"
	case p.IsOverdue(today):
		return "vencida vencido atrasada atrasado"
	default:
		return "pendente aberto em aberto"
	}
}

func amountTokens(amount decimal.Decimal) []string {
	fixed := amount.StringFixed(2)
	return []string{fixed, strings.ReplaceAll(fixed, ".", ",")}
}

func bankName(b *model.Bank) string {
	if b == nil {
		return "sem banco"
	}
	return b.Name
}

// TransactionBlob concatenates everything a transaction should be findable by.
func TransactionBlob(t model.Transaction) string {
	parts := []string{
		t.Title,
		t.Description,
		bankName(t.Bank),
		string(t.Type),
		transactionTypeAliases[t.Type],
		l10n.FormatDate(t.Date),
		t.Date.Format(isoDate),
		l10n.MonthLabel(t.Date.Month()),
		strconv.Itoa(t.Date.Year()),
	}
	parts = append(parts, amountTokens(t.Amount)...)
	parts = append(parts, l10n.FormatCurrency(t.Amount))
	return strings.Join(parts, " ")
}

// PayableBlob concatenates everything a raw payable should be findable by.
func PayableBlob(p model.Payable, today time.Time) string {
	receiptName := ""
	receiptMarker := "sem comprovante"
	if p.Receipt != nil {
		receiptName = p.Receipt.Filename
		receiptMarker = "comprovante anexado"
	}

	paymentDate := ""
	paymentDateISO := ""
	if p.PaymentDate != nil {
		paymentDate = l10n.FormatDate(*p.PaymentDate)
		paymentDateISO = p.PaymentDate.Format(isoDate)
	}

	installmentText := ""
	if p.InstallmentNumber > 0 || p.InstallmentTotal > 0 {
		installmentText = fmt.Sprintf("%d/%d", p.InstallmentNumber, p.InstallmentTotal)
	}

	parts := []string{
		p.Title,
		p.Description,
		bankName(p.Bank),
		string(p.Type),
		l10n.PayableTypeLabel(p.Type),
		categoryName(p.Category),
		payableTypeAliases[p.Type],
		string(p.Status),
		l10n.StatusStateLabel(p.State(today)),
		statusAliases(p, today),
		installmentText,
		l10n.FormatDate(p.DueDate),
		p.DueDate.Format(isoDate),
		paymentDate,
		paymentDateISO,
		p.PaymentNote,
		receiptName,
		receiptMarker,
	}
	parts = append(parts, amountTokens(p.Amount)...)
	parts = append(parts, l10n.FormatCurrency(p.Amount))
	return strings.Join(parts, " ")
}

// EventBlob concatenates everything a calendar event should be findable by.
func EventBlob(e model.CalendarEvent) string {
	endsAt := ""
	endsAtRaw := ""
	if e.EndsAt != nil {
		endsAt = l10n.FormatDateTime(*e.EndsAt)
		endsAtRaw = e.EndsAt.Format(time.RFC3339)
	}
	return strings.Join([]string{
		e.Title,
		e.CreatorName,
		e.Description,
		e.Location,
		string(e.Status),
		l10n.EventStatusLabel(e.Status),
		string(e.Importance),
		l10n.EventImportanceLabel(e.Importance),
		l10n.FormatDateTime(e.StartsAt),
		e.StartsAt.Format(time.RFC3339),
		endsAt,
		endsAtRaw,
	}, " ")
}

// EntityBlob combines the entity's own fields with every member's blob, so a
// query matching any installment matches its group row.
func EntityBlob(e entity.PayableEntity, today time.Time) string {
	parts := make([]string, 0, len(e.Members)+9)
	for _, member := range e.Members {
		parts = append(parts, PayableBlob(member, today))
	}
	parts = append(parts,
		e.Title,
		e.Description,
		categoryName(e.Category),
		e.InstallmentText,
		l10n.StatusStateLabel(e.StatusState),
		string(e.StatusState),
		bankName(e.Bank),
		l10n.FormatCurrency(e.AmountTotal),
		strings.ReplaceAll(e.AmountTotal.StringFixed(2), ".", ","),
	)
	return strings.Join(parts, " ")
}

func categoryName(c *model.PayableCategory) string {
	if c == nil {
		return ""
	}
	return c.Name
}
