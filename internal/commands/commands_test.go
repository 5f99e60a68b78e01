package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreCode112/FinanceMartins/internal/config"
	"github.com/AndreCode112/FinanceMartins/internal/history"
	"github.com/AndreCode112/FinanceMartins/internal/model"
)

const testSnapshot = `{
  "today": "2025-03-15",
  "banks": [{"id": 1, "name": "Nubank", "slug": "nubank", "color": "#8A05BE", "icon": "ph-credit-card"}],
  "categories": [],
  "transactions": [
    {"id": 1, "title": "Mercado", "description": "", "bank_id": 1, "type": "expense", "amount": "80.00", "date": "2025-03-14"},
    {"id": 2, "title": "Salario", "description": "", "bank_id": null, "type": "income", "amount": "5000.00", "date": "2025-03-05"}
  ],
  "payables": [
    {
      "id": 10, "title": "Internet", "description": "", "type": "invoice",
      "category_id": null, "bank_id": 1, "status": "pending",
      "amount": "99.90", "due_date": "2025-03-10",
      "payment_date": null, "payment_note": "", "receipt": null,
      "installment_number": 0, "installment_total": 0, "installment_group": "",
      "is_recurring": false
    }
  ],
  "events": []
}`

func writeWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default("snapshot.json")
	require.NoError(t, config.Save(filepath.Join(dir, "findash.yaml"), cfg))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "snapshot.json"), []byte(testSnapshot), 0o644))
	return dir
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	_ = runCommand(t, "init", dir)

	cfg, err := config.Load(filepath.Join(dir, "findash.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)

	_, err = os.Stat(filepath.Join(dir, "data", "snapshot.json"))
	assert.NoError(t, err)
}

func TestSummaryCommand(t *testing.T) {
	dir := writeWorkspace(t)
	out := runCommand(t, "summary", "--config", filepath.Join(dir, "findash.yaml"))

	assert.Contains(t, out, "Entradas: R$ 5.000,00")
	assert.Contains(t, out, "Saidas:   R$ 80,00")
	assert.Contains(t, out, "Saldo:    R$ 4.920,00")
	assert.Contains(t, out, "Contas (1, 1 vencidas)")
	assert.Contains(t, out, "Vencida:  R$ 99,90")
}

func TestSummaryCommand_QueryFilters(t *testing.T) {
	dir := writeWorkspace(t)
	out := runCommand(t, "summary",
		"--config", filepath.Join(dir, "findash.yaml"),
		"--query", "salario")

	assert.Contains(t, out, "Transacoes (1)")
	assert.Contains(t, out, "Entradas: R$ 5.000,00")
	assert.Contains(t, out, "Contas (0, 0 vencidas)")
}

func TestSummaryCommand_SnapshotOverride(t *testing.T) {
	dir := writeWorkspace(t)
	other := filepath.Join(t.TempDir(), "other.json")
	require.NoError(t, os.WriteFile(other, []byte(`{"today": "2025-03-15"}`), 0o644))

	out := runCommand(t, "summary",
		"--config", filepath.Join(dir, "findash.yaml"),
		"--snapshot", other)

	assert.Contains(t, out, "Transacoes (0)")
}

func TestRemindersCommand(t *testing.T) {
	dir := writeWorkspace(t)
	out := runCommand(t, "reminders",
		"--config", filepath.Join(dir, "findash.yaml"),
		"--now", "2025-03-15T09:00:00-03:00")

	assert.Contains(t, out, "1 vencidas")
	assert.Contains(t, out, "Internet - R$ 99,90")
	assert.Contains(t, out, "Vencida ha 5 dias")
}

func TestHistoryCommand(t *testing.T) {
	dir := writeWorkspace(t)
	require.NoError(t, history.Append(dir, []history.Entry{{
		PayableID:  10,
		Title:      "Internet",
		PrevStatus: model.PayablePending,
		NewStatus:  model.PayablePaid,
		Source:     history.SourceManual,
		ChangedAt:  time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC),
	}}))

	out := runCommand(t, "history", "--config", filepath.Join(dir, "findash.yaml"))
	assert.Contains(t, out, "#10 Internet: pending -> paid (manual)")

	out = runCommand(t, "history", "--config", filepath.Join(dir, "findash.yaml"), "--payable", "99")
	assert.NotContains(t, out, "Internet")
}

func TestPayCommand_PersistsSnapshotAndHistory(t *testing.T) {
	dir := writeWorkspace(t)
	cfgPath := filepath.Join(dir, "findash.yaml")

	out := runCommand(t, "pay", "10", "--config", cfgPath, "--note", "pix")
	assert.Contains(t, out, "Conta #10 Internet marcada como paga")

	out = runCommand(t, "history", "--config", cfgPath)
	assert.Contains(t, out, "#10 Internet: pending -> paid (manual)")

	out = runCommand(t, "summary", "--config", cfgPath)
	assert.Contains(t, out, "Contas (1, 0 vencidas)")
	assert.Contains(t, out, "Pago:     R$ 99,90")
}

func TestPayCommand_Reopen(t *testing.T) {
	dir := writeWorkspace(t)
	cfgPath := filepath.Join(dir, "findash.yaml")

	_ = runCommand(t, "pay", "10", "--config", cfgPath)
	_ = runCommand(t, "pay", "10", "--config", cfgPath, "--reopen")

	entries, err := history.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, model.PayablePaid, entries[1].PrevStatus)
	assert.Equal(t, model.PayablePending, entries[1].NewStatus)

	out := runCommand(t, "summary", "--config", cfgPath)
	assert.Contains(t, out, "Contas (1, 1 vencidas)")
}

func TestPayCommand_UnknownPayable(t *testing.T) {
	dir := writeWorkspace(t)

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"pay", "404", "--config", filepath.Join(dir, "findash.yaml")})
	assert.ErrorContains(t, cmd.Execute(), "payable 404 not found")
}

func TestSummaryCommand_BadTimezone(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default("snapshot.json")
	cfg.Timezone = "Nowhere/Invalid"
	require.NoError(t, config.Save(filepath.Join(dir, "findash.yaml"), cfg))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "snapshot.json"), []byte(testSnapshot), 0o644))

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"summary", "--config", filepath.Join(dir, "findash.yaml")})
	assert.ErrorContains(t, cmd.Execute(), "Nowhere/Invalid")
}

func TestSummaryCommand_MissingConfig(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"summary", "--config", "/nonexistent/findash.yaml"})
	assert.Error(t, cmd.Execute())
}
