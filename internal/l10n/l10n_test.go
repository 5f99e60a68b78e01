package l10n

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/AndreCode112/FinanceMartins/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"4.5", "R$ 4,50"},
		{"200", "R$ 200,00"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.89", "R$ 1.234.567,89"},
		{"-99.9", "-R$ 99,90"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(dec(tt.in)), "amount %s", tt.in)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "07/03/2025", FormatDate(d))
	assert.Equal(t, "07/03/2025", FormatOptionalDate(&d))
	assert.Equal(t, "-", FormatOptionalDate(nil))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Divida", PayableTypeLabel(model.PayableDebt))
	assert.Equal(t, "Outro", PayableTypeLabel(model.PayableType("mystery")))
	assert.Equal(t, "Vencida", StatusStateLabel(model.StateOverdue))
	assert.Equal(t, "Critica", EventImportanceLabel(model.ImportanceCritical))
	assert.Equal(t, "Concluido", EventStatusLabel(model.EventCompleted))
	assert.Equal(t, "Mar", MonthLabel(time.March))
}

func TestRelativeDueText(t *testing.T) {
	assert.Equal(t, "Vencida ha 1 dia", RelativeDueText(-1))
	assert.Equal(t, "Vencida ha 3 dias", RelativeDueText(-3))
	assert.Equal(t, "Vence hoje", RelativeDueText(0))
	assert.Equal(t, "Vence amanha", RelativeDueText(1))
	assert.Equal(t, "Vence em 5 dias", RelativeDueText(5))
}
