package bulk

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreCode112/FinanceMartins/internal/entity"
	"github.com/AndreCode112/FinanceMartins/internal/model"
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

func fixture() []model.Payable {
	return []model.Payable{
		{ID: 1, Title: "Notebook", Type: model.PayableInstallment, Status: model.PayablePaid, Amount: dec("100"), DueDate: date(2025, time.February, 10), InstallmentNumber: 1, InstallmentTotal: 2, InstallmentGroup: "g1"},
		{ID: 2, Title: "Notebook", Type: model.PayableInstallment, Status: model.PayablePending, Amount: dec("100"), DueDate: date(2025, time.April, 10), InstallmentNumber: 2, InstallmentTotal: 2, InstallmentGroup: "g1"},
		{ID: 3, Title: "Agua", Type: model.PayableInvoice, Status: model.PayablePending, Amount: dec("80"), DueDate: date(2025, time.March, 20)},
	}
}

func TestResolveTargets_ExpandsGroupsOnce(t *testing.T) {
	entities := entity.Build(fixture(), today)

	// Select everything, including the group twice.
	selected := append(entities, entities...)
	targets := ResolveTargets(selected)

	require.Len(t, targets, 3, "each raw payable exactly once")
	ids := []int{targets[0].ID, targets[1].ID, targets[2].ID}
	assert.Equal(t, []int{3, 1, 2}, ids, "first-seen order: singles precede groups")
}

func TestSummarize(t *testing.T) {
	summary := Summarize(fixture())
	assert.Equal(t, 3, summary.Count)
	assert.True(t, summary.TotalAmount.Equal(dec("280")))
	assert.Equal(t, 1, summary.PaidCount)
	assert.Equal(t, 2, summary.PendingCount)
}

func TestApply_MarkPaid(t *testing.T) {
	targets := fixture()
	result, err := Apply(targets, MarkPaid, today)
	require.NoError(t, err)

	require.Len(t, result.Updated, 2, "already-paid records are untouched")
	for _, p := range result.Updated {
		assert.Equal(t, model.PayablePaid, p.Status)
		require.NotNil(t, p.PaymentDate)
		assert.Equal(t, today, *p.PaymentDate)
	}
	assert.Equal(t, model.PayablePending, targets[1].Status, "input slice not mutated")
}

func TestApply_MarkPending(t *testing.T) {
	paidAt := date(2025, time.February, 11)
	targets := fixture()
	targets[0].PaymentDate = &paidAt
	targets[0].PaymentNote = "pix"

	result, err := Apply(targets, MarkPending, today)
	require.NoError(t, err)

	require.Len(t, result.Updated, 1)
	updated := result.Updated[0]
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, model.PayablePending, updated.Status)
	assert.Nil(t, updated.PaymentDate)
	assert.Empty(t, updated.PaymentNote)
}

func TestApply_Delete(t *testing.T) {
	result, err := Apply(fixture(), Delete, today)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, result.DeletedIDs)
	assert.Empty(t, result.Updated)
}

func TestApply_UnknownAction(t *testing.T) {
	_, err := Apply(fixture(), Action("shuffle"), today)
	assert.Error(t, err)
}
