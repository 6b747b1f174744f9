package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/camt-extract/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestWriteTransactionsToCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "transactions.csv")
	txns := []models.Transaction{
		{
			models.FieldTransactionID: "TX-1",
			models.FieldAmount:        "10.00",
			models.FieldCurrency:      "CHF",
		},
		{
			models.FieldTransactionID: "TX-2",
			models.FieldAmount:        "20.00",
			models.FieldEndToEndID:    "E2E-9",
		},
	}

	require.NoError(t, WriteTransactionsToCSV(txns, out))

	lines := readLines(t, out)
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "TransactionID,AccountIBAN,Amount,"))
	assert.True(t, strings.HasPrefix(lines[1], "TX-1,,10.00,CHF,"))
	assert.Contains(t, lines[2], "E2E-9")
}

func TestWriteTransactionsToCSVEmptyInputWritesHeader(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.csv")

	require.NoError(t, WriteTransactionsToCSV(nil, out))

	lines := readLines(t, out)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "RemittanceInformationFull")
}

func TestWriteTransactionsToCSVCreatesDirectories(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "deep", "out.csv")

	require.NoError(t, WriteTransactionsToCSV([]models.Transaction{}, out))

	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestWriteStatementsToCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "statements.csv")
	summaries := []models.StatementSummary{
		{
			IBAN:               "CH9300762011623852957",
			Currency:           "CHF",
			OpeningBalance:     "1000.00",
			OpeningBalanceDate: "2024-01-01",
			ClosingBalance:     "-900.00",
			ClosingBalanceDate: "2024-01-31",
		},
	}

	require.NoError(t, WriteStatementsToCSV(summaries, out))

	lines := readLines(t, out)
	require.Len(t, lines, 2)
	assert.Equal(t, "IBAN,Currency,OpeningBalance,OpeningBalanceDate,ClosingBalance,ClosingBalanceDate", lines[0])
	assert.Equal(t, "CH9300762011623852957,CHF,1000.00,2024-01-01,-900.00,2024-01-31", lines[1])
}

func TestSetDelimiter(t *testing.T) {
	defer SetDelimiter(',')
	SetDelimiter(';')

	out := filepath.Join(t.TempDir(), "semi.csv")
	require.NoError(t, WriteStatementsToCSV([]models.StatementSummary{{IBAN: "CH11", Currency: "EUR"}}, out))

	lines := readLines(t, out)
	assert.True(t, strings.HasPrefix(lines[0], "IBAN;Currency;"))
	assert.True(t, strings.HasPrefix(lines[1], "CH11;EUR;"))
}
