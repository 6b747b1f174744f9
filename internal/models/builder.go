package models

// RecordBuilder accumulates transaction fields while mechanically enforcing
// the sparse-dictionary invariant: only present, non-empty values are ever
// inserted, so callers never need scattered existence checks.
type RecordBuilder struct {
	fields Transaction
}

// NewRecordBuilder creates an empty RecordBuilder.
func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{fields: make(Transaction)}
}

// Set records a field value. Empty values are skipped so the key stays
// absent from the built record.
func (b *RecordBuilder) Set(key, value string) *RecordBuilder {
	if value != "" {
		b.fields[key] = value
	}
	return b
}

// Unset removes a previously set field. Used when a later source element
// overrides an earlier one with absence.
func (b *RecordBuilder) Unset(key string) *RecordBuilder {
	delete(b.fields, key)
	return b
}

// Build returns the accumulated transaction. The builder must not be reused
// afterwards.
func (b *RecordBuilder) Build() Transaction {
	return b.fields
}
