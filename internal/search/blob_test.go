package search

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/AndreCode112/FinanceMartins/internal/entity"
	"github.com/AndreCode112/FinanceMartins/internal/model"
	"github.com/AndreCode112/FinanceMartins/internal/textnorm"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

var today = date(2025, time.March, 15)

func TestTransactionBlob_SynonymsAndAmounts(t *testing.T) {
	tx := model.Transaction{
		ID:     1,
		Title:  "Mercado",
		Bank:   &model.Bank{ID: 1, Name: "Nubank"},
		Type:   model.TransactionExpense,
		Amount: dec("1234.56"),
		Date:   date(2025, time.March, 10),
	}
	blob := TransactionBlob(tx)

	for _, query := range []string{"despesa", "gasto", "saida", "nubank", "1234.56", "1234,56", "10/03/2025", "2025-03-10", "mar", "mercado"} {
		assert.True(t, textnorm.Matches(query, blob), "query %q should match", query)
	}
	assert.False(t, textnorm.Matches("entrada", blob), "income synonyms must not match an expense")
}

func TestPayableBlob_DebtSynonymPlusAmount(t *testing.T) {
	p := model.Payable{
		ID:      1,
		Title:   "Emprestimo Carro",
		Type:    model.PayableDebt,
		Status:  model.PayablePending,
		Amount:  dec("200.00"),
		DueDate: date(2025, time.April, 1),
	}
	blob := PayableBlob(p, today)

	assert.True(t, textnorm.Matches("divida 200", blob), "synonym plus amount token")
	assert.True(t, textnorm.Matches("emprestimo", blob))
	assert.True(t, textnorm.Matches("pendente", blob))
	assert.True(t, textnorm.Matches("sem banco", blob))
	assert.True(t, textnorm.Matches("sem comprovante", blob))
}

func TestPayableBlob_StatusVocabulary(t *testing.T) {
	paymentDate := date(2025, time.March, 1)
	paid := model.Payable{
		ID:          2,
		Title:       "Internet",
		Type:        model.PayableInvoice,
		Status:      model.PayablePaid,
		Amount:      dec("99.90"),
		DueDate:     date(2025, time.February, 28),
		PaymentDate: &paymentDate,
		Receipt:     &model.Receipt{URL: "/r/2", Filename: "comprovante.pdf"},
	}
	blob := PayableBlob(paid, today)
	assert.True(t, textnorm.Matches("quitado", blob))
	assert.True(t, textnorm.Matches("comprovante anexado", blob))
	assert.True(t, textnorm.Matches("01/03/2025", blob), "payment date formatted")

	overdue := model.Payable{
		ID:      3,
		Title:   "Cartao",
		Type:    model.PayableInvoice,
		Status:  model.PayablePending,
		Amount:  dec("50"),
		DueDate: date(2025, time.March, 1),
	}
	assert.True(t, textnorm.Matches("atrasada", PayableBlob(overdue, today)))
}

func TestEventBlob(t *testing.T) {
	e := model.CalendarEvent{
		ID:          1,
		Title:       "Reuniao banco",
		CreatorName: "Andre",
		Location:    "Centro",
		Status:      model.EventPending,
		Importance:  model.ImportanceCritical,
		StartsAt:    time.Date(2025, time.March, 20, 14, 30, 0, 0, time.Local),
	}
	blob := EventBlob(e)
	assert.True(t, textnorm.Matches("critica", blob))
	assert.True(t, textnorm.Matches("pendente", blob))
	assert.True(t, textnorm.Matches("andre centro", blob))
	assert.True(t, textnorm.Matches("20/03/2025", blob))
}

func TestEntityBlob_IncludesMemberBlobs(t *testing.T) {
	members := []model.Payable{
		{
			ID: 1, Title: "Notebook", Type: model.PayableInstallment,
			Status: model.PayablePaid, Amount: dec("500.00"),
			DueDate: date(2025, time.January, 10), PaymentNote: "pago na loja",
			InstallmentNumber: 1, InstallmentTotal: 2, InstallmentGroup: "g1",
		},
		{
			ID: 2, Title: "Notebook", Type: model.PayableInstallment,
			Status: model.PayablePending, Amount: dec("500.00"),
			DueDate: date(2025, time.April, 10), InstallmentNumber: 2,
			InstallmentTotal: 2, InstallmentGroup: "g1",
		},
	}
	entities := entity.Build(members, today)
	blob := EntityBlob(entities[0], today)

	assert.True(t, textnorm.Matches("pago na loja", blob), "member payment note reachable from group row")
	assert.True(t, textnorm.Matches("1/2 pagas", blob))
	assert.True(t, textnorm.Matches("1000,00", blob), "entity total with comma separator")
}
