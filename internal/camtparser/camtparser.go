// Package camtparser extracts a normalized flat record model from CAMT.053
// bank statements and CAMT.052 account reports. It walks an already-parsed
// generic element tree; it performs no I/O of its own beyond the file and
// byte-slice convenience constructors.
package camtparser

import (
	"fmt"
	"os"

	"fjacquet/camt-extract/internal/logging"
	"fjacquet/camt-extract/internal/models"
	"fjacquet/camt-extract/internal/parsererror"
	"fjacquet/camt-extract/internal/xmltree"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger for this package.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Parser holds one loaded CAMT document. Its extraction methods are pure
// over the tree and can be called independently and repeatedly; the tree is
// borrowed read-only and never mutated.
type Parser struct {
	root      *xmltree.Node
	namespace string
	version   string
}

// New parses raw document bytes and returns a Parser for them. The bytes
// must form one well-formed XML document; anything else is a structural
// parse error.
func New(data []byte) (*Parser, error) {
	root, err := xmltree.DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	return NewFromTree(root), nil
}

// NewFromTree wraps an already-decoded tree. The caller is responsible for
// having built the tree with external entity resolution disabled.
func NewFromTree(root *xmltree.Node) *Parser {
	p := &Parser{
		root:      root,
		namespace: root.Space,
		version:   detectVersion(root),
	}
	log.Debug("CAMT document loaded",
		logging.Field{Key: "namespace", Value: p.namespace},
		logging.Field{Key: "version", Value: p.version})
	return p
}

// FromFile reads and parses a CAMT XML file.
func FromFile(path string) (*Parser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read XML file: %w", err)
	}
	return New(data)
}

// Version returns the detected statement sub-version, or "unknown". The
// value is informational only and never changes extraction behavior.
func (p *Parser) Version() string {
	return p.version
}

// Namespace returns the document's default namespace URI.
func (p *Parser) Namespace() string {
	return p.namespace
}

// GroupHeader extracts the message id and creation timestamp. A document
// without a group header yields an empty header, not an error; once the
// header exists, both children are required.
func (p *Parser) GroupHeader() (models.GroupHeader, error) {
	hdr := p.root.FirstDescendant("GrpHdr")
	if hdr == nil {
		return models.GroupHeader{}, nil
	}

	msgID := hdr.FirstDescendant("MsgId")
	if msgID == nil {
		return models.GroupHeader{}, parsererror.NewStructuralError("GrpHdr/MsgId", "message identifier missing from group header")
	}
	creDtTm := hdr.FirstDescendant("CreDtTm")
	if creDtTm == nil {
		return models.GroupHeader{}, parsererror.NewStructuralError("GrpHdr/CreDtTm", "creation timestamp missing from group header")
	}

	return models.GroupHeader{
		MessageID:        msgID.Text,
		CreationDateTime: creDtTm.Text,
	}, nil
}

// containers locates the repeated per-account reporting nodes. Statements
// are tried before reports; a well-formed document carries exactly one of
// the two shapes.
func (p *Parser) containers() ([]*xmltree.Node, error) {
	for _, tag := range []string{"Stmt", "Rpt"} {
		if nodes := p.root.Descendants(tag); len(nodes) > 0 {
			return nodes, nil
		}
	}
	return nil, parsererror.NewStructuralError("Stmt/Rpt", "no statement or report container found")
}

// Transactions walks every entry of every container and returns the flat
// transaction list, in entry-then-detail document order.
func (p *Parser) Transactions() ([]models.Transaction, error) {
	containers, err := p.containers()
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	for _, container := range containers {
		for _, entry := range container.Descendants("Ntry") {
			fanned, err := p.fanOutEntry(entry, container)
			if err != nil {
				return nil, err
			}
			transactions = append(transactions, fanned...)
		}
	}

	log.Debug("transactions extracted",
		logging.Field{Key: "count", Value: len(transactions)})
	return transactions, nil
}
