// Package camt is the public entry point for embedding the CAMT extraction
// engine in other programs. It re-exports the record types and the parser
// constructors without exposing the internal package layout.
package camt

import (
	"fjacquet/camt-extract/internal/camtparser"
	"fjacquet/camt-extract/internal/models"
)

// Record types produced by extraction.
type (
	GroupHeader      = models.GroupHeader
	StatementSummary = models.StatementSummary
	Transaction      = models.Transaction
)

// Parser extracts flat records from one loaded CAMT document.
type Parser = camtparser.Parser

// VersionUnknown is reported for documents whose sub-version is not
// recognized; extraction still proceeds.
const VersionUnknown = camtparser.VersionUnknown

// New parses raw CAMT.053 or CAMT.052 document bytes.
func New(data []byte) (*Parser, error) {
	return camtparser.New(data)
}

// FromFile reads and parses a CAMT XML file.
func FromFile(path string) (*Parser, error) {
	return camtparser.FromFile(path)
}

// ValidateFormat reports whether a file looks like a CAMT.053 statement or
// CAMT.052 report document.
func ValidateFormat(path string) (bool, error) {
	return camtparser.ValidateFormat(path)
}
