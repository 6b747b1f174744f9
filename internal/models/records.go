// Package models provides the flat record types produced by the extraction engine.
package models

// GroupHeader holds the message-level metadata of a CAMT document. Both
// values are preserved verbatim as text; CreationDateTime is never parsed
// into a date type.
type GroupHeader struct {
	MessageID        string
	CreationDateTime string
}

// IsEmpty reports whether the header carries no values, which is the case
// when the source document has no group header element.
func (h GroupHeader) IsEmpty() bool {
	return h.MessageID == "" && h.CreationDateTime == ""
}

// StatementSummary holds the per-account summary of one statement or report
// container. Empty strings mean the source element was absent. Balance
// amounts are sign-normalized: debit balances carry a leading minus.
type StatementSummary struct {
	IBAN               string `csv:"IBAN"`
	Currency           string `csv:"Currency"`
	OpeningBalance     string `csv:"OpeningBalance"`
	OpeningBalanceDate string `csv:"OpeningBalanceDate"`
	ClosingBalance     string `csv:"ClosingBalance"`
	ClosingBalanceDate string `csv:"ClosingBalanceDate"`
}

// Transaction is one flattened payment as a sparse field map: keys for
// absent fields are omitted entirely, never stored as empty placeholders.
// Two transactions from the same document may carry different key sets.
type Transaction map[string]string

// Field names shared by all transactions fanned out from one entry.
const (
	FieldTransactionID              = "TransactionID"
	FieldAccountIBAN                = "AccountIBAN"
	FieldAmount                     = "Amount"
	FieldCurrency                   = "Currency"
	FieldCreditDebitIndicator       = "CreditDebitIndicator"
	FieldReversalIndicator          = "ReversalIndicator"
	FieldStatus                     = "Status"
	FieldBookingDate                = "BookingDate"
	FieldValueDate                  = "ValueDate"
	FieldBankTransactionCode        = "BankTransactionCode"
	FieldTransactionFamilyCode      = "TransactionFamilyCode"
	FieldTransactionSubFamilyCode   = "TransactionSubFamilyCode"
	FieldAdditionalEntryInformation = "AdditionalEntryInformation"
)

// Field names contributed by individual transaction-detail nodes.
const (
	FieldEndToEndID                      = "EndToEndId"
	FieldMandateID                       = "MandateId"
	FieldCreditorName                    = "CreditorName"
	FieldCreditorIBAN                    = "CreditorIBAN"
	FieldDebtorName                      = "DebtorName"
	FieldDebtorIBAN                      = "DebtorIBAN"
	FieldPurposeCode                     = "PurposeCode"
	FieldRemittanceInformation           = "RemittanceInformation"
	FieldRemittanceInformationFull       = "RemittanceInformationFull"
	FieldAdditionalRemittanceInformation = "AdditionalRemittanceInformation"
)

// Clone returns an independent copy of the transaction.
func (t Transaction) Clone() Transaction {
	out := make(Transaction, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Merge returns a new transaction combining t with other; keys from other
// win on collision. Neither input is modified.
func (t Transaction) Merge(other Transaction) Transaction {
	out := t.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}
