// Package common provides the shared CSV output layer used by every command.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/camt-extract/internal/logging"
	"fjacquet/camt-extract/internal/models"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// Global CSV delimiter, configurable via config or the CSV_DELIMITER
// environment variable.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		// Use first rune only
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return // Don't change the logger if nil is passed
	}
	log = logger
}

// transactionRow is the fixed CSV projection of a sparse transaction map.
// Absent map keys become empty cells; the column set never varies with the
// input.
type transactionRow struct {
	TransactionID                   string `csv:"TransactionID"`
	AccountIBAN                     string `csv:"AccountIBAN"`
	Amount                          string `csv:"Amount"`
	Currency                        string `csv:"Currency"`
	CreditDebitIndicator            string `csv:"CreditDebitIndicator"`
	ReversalIndicator               string `csv:"ReversalIndicator"`
	Status                          string `csv:"Status"`
	BookingDate                     string `csv:"BookingDate"`
	ValueDate                       string `csv:"ValueDate"`
	BankTransactionCode             string `csv:"BankTransactionCode"`
	TransactionFamilyCode           string `csv:"TransactionFamilyCode"`
	TransactionSubFamilyCode        string `csv:"TransactionSubFamilyCode"`
	AdditionalEntryInformation      string `csv:"AdditionalEntryInformation"`
	EndToEndID                      string `csv:"EndToEndId"`
	MandateID                       string `csv:"MandateId"`
	CreditorName                    string `csv:"CreditorName"`
	CreditorIBAN                    string `csv:"CreditorIBAN"`
	DebtorName                      string `csv:"DebtorName"`
	DebtorIBAN                      string `csv:"DebtorIBAN"`
	PurposeCode                     string `csv:"PurposeCode"`
	RemittanceInformation           string `csv:"RemittanceInformation"`
	RemittanceInformationFull       string `csv:"RemittanceInformationFull"`
	AdditionalRemittanceInformation string `csv:"AdditionalRemittanceInformation"`
}

func toRow(t models.Transaction) transactionRow {
	return transactionRow{
		TransactionID:                   t[models.FieldTransactionID],
		AccountIBAN:                     t[models.FieldAccountIBAN],
		Amount:                          t[models.FieldAmount],
		Currency:                        t[models.FieldCurrency],
		CreditDebitIndicator:            t[models.FieldCreditDebitIndicator],
		ReversalIndicator:               t[models.FieldReversalIndicator],
		Status:                          t[models.FieldStatus],
		BookingDate:                     t[models.FieldBookingDate],
		ValueDate:                       t[models.FieldValueDate],
		BankTransactionCode:             t[models.FieldBankTransactionCode],
		TransactionFamilyCode:           t[models.FieldTransactionFamilyCode],
		TransactionSubFamilyCode:        t[models.FieldTransactionSubFamilyCode],
		AdditionalEntryInformation:      t[models.FieldAdditionalEntryInformation],
		EndToEndID:                      t[models.FieldEndToEndID],
		MandateID:                       t[models.FieldMandateID],
		CreditorName:                    t[models.FieldCreditorName],
		CreditorIBAN:                    t[models.FieldCreditorIBAN],
		DebtorName:                      t[models.FieldDebtorName],
		DebtorIBAN:                      t[models.FieldDebtorIBAN],
		PurposeCode:                     t[models.FieldPurposeCode],
		RemittanceInformation:           t[models.FieldRemittanceInformation],
		RemittanceInformationFull:       t[models.FieldRemittanceInformationFull],
		AdditionalRemittanceInformation: t[models.FieldAdditionalRemittanceInformation],
	}
}

// WriteTransactionsToCSV writes the flattened transactions to a CSV file.
// An empty slice produces a file with the header row only.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	log.Info("Writing transactions to CSV file",
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "count", Value: len(transactions)})

	rows := make([]transactionRow, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, toRow(t))
	}
	return writeCSVFile(rows, csvFile)
}

// WriteStatementsToCSV writes the per-container statement summaries to a
// CSV file.
func WriteStatementsToCSV(summaries []models.StatementSummary, csvFile string) error {
	if summaries == nil {
		summaries = []models.StatementSummary{}
	}

	log.Info("Writing statement summaries to CSV file",
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "count", Value: len(summaries)})

	return writeCSVFile(summaries, csvFile)
}

func writeCSVFile(rows interface{}, csvFile string) error {
	// Create the directory if it doesn't exist
	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal rows to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
