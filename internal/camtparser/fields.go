package camtparser

import (
	"strings"

	"fjacquet/camt-extract/internal/models"
	"fjacquet/camt-extract/internal/parsererror"
	"fjacquet/camt-extract/internal/xmltree"
)

// descendantsAt collects, in document order, the nodes reached by following
// each tag of the path through all matching descendants. It is the all-
// matches traversal primitive every extractor composes from.
func descendantsAt(n *xmltree.Node, path ...string) []*xmltree.Node {
	current := []*xmltree.Node{n}
	for _, tag := range path {
		var next []*xmltree.Node
		for _, c := range current {
			next = append(next, c.Descendants(tag)...)
		}
		if len(next) == 0 {
			return nil
		}
		current = next
	}
	return current
}

// firstAt returns the first node reached by the path, or nil.
func firstAt(n *xmltree.Node, path ...string) *xmltree.Node {
	if nodes := descendantsAt(n, path...); len(nodes) > 0 {
		return nodes[0]
	}
	return nil
}

// textAt returns the text of the first node reached by the path, or "".
func textAt(n *xmltree.Node, path ...string) string {
	if node := firstAt(n, path...); node != nil {
		return node.Text
	}
	return ""
}

// fanOutEntry expands one booked entry into its flat transactions: one per
// transaction detail when details exist, otherwise the common record alone.
// Document order is preserved across detail groupings.
func (p *Parser) fanOutEntry(entry, container *xmltree.Node) ([]models.Transaction, error) {
	common, err := p.commonEntryFields(entry, container)
	if err != nil {
		return nil, err
	}

	groupings := entry.Descendants("NtryDtls")
	if len(groupings) == 0 {
		// Entry with no further breakdown.
		return []models.Transaction{common}, nil
	}

	var out []models.Transaction
	for _, grouping := range groupings {
		details := grouping.Descendants("TxDtls")
		if len(details) == 0 {
			// Batch-level grouping with no itemization.
			out = append(out, common.Clone())
			continue
		}
		for _, detail := range details {
			out = append(out, common.Merge(p.transactionDetailFields(detail)))
		}
	}
	return out, nil
}

// requiredEntryText locates a mandatory child of an entry. A missing or
// empty element makes the entry structurally invalid.
func requiredEntryText(entry *xmltree.Node, tag string) (string, error) {
	node := entry.FirstDescendant(tag)
	if node == nil || node.Text == "" {
		return "", parsererror.NewStructuralError("Ntry/"+tag, "required entry element missing")
	}
	return node.Text, nil
}

// entryDate reads a booking or value date wrapper whose single child may be
// either a plain date or a date-time element.
func entryDate(entry *xmltree.Node, wrapper string) (string, error) {
	node := entry.FirstDescendant(wrapper)
	if node == nil || len(node.Children) == 0 {
		return "", parsererror.NewStructuralError("Ntry/"+wrapper, "required entry date missing")
	}
	return node.Children[0].Text, nil
}

// commonEntryFields builds the field set shared by every transaction fanned
// out from one entry. TransactionID, Amount, CreditDebitIndicator,
// BookingDate and ValueDate are the minimum fields a valid entry carries;
// everything else is absent-tolerant.
func (p *Parser) commonEntryFields(entry, container *xmltree.Node) (models.Transaction, error) {
	txID, err := requiredEntryText(entry, "AcctSvcrRef")
	if err != nil {
		return nil, err
	}
	amt := entry.FirstDescendant("Amt")
	if amt == nil || amt.Text == "" {
		return nil, parsererror.NewStructuralError("Ntry/Amt", "required entry element missing")
	}
	cdtDbt, err := requiredEntryText(entry, "CdtDbtInd")
	if err != nil {
		return nil, err
	}
	bookingDate, err := entryDate(entry, "BookgDt")
	if err != nil {
		return nil, err
	}
	valueDate, err := entryDate(entry, "ValDt")
	if err != nil {
		return nil, err
	}

	b := models.NewRecordBuilder().
		Set(models.FieldTransactionID, txID).
		Set(models.FieldAmount, amt.Text).
		Set(models.FieldCurrency, amt.Attr("Ccy")).
		Set(models.FieldCreditDebitIndicator, cdtDbt).
		Set(models.FieldBookingDate, bookingDate).
		Set(models.FieldValueDate, valueDate)

	// The account is scoped to the enclosing container, not the entry.
	b.Set(models.FieldAccountIBAN, textAt(container, "Acct", "Id", "IBAN"))

	b.Set(models.FieldReversalIndicator, textAt(entry, "RvslInd"))
	b.Set(models.FieldStatus, entryStatus(entry))
	b.Set(models.FieldBankTransactionCode, textAt(entry, "BkTxCd", "Domn", "Cd"))
	b.Set(models.FieldTransactionFamilyCode, textAt(entry, "BkTxCd", "Domn", "Fmly", "Cd"))
	b.Set(models.FieldTransactionSubFamilyCode, textAt(entry, "BkTxCd", "Domn", "Fmly", "SubFmlyCd"))
	b.Set(models.FieldAdditionalEntryInformation, textAt(entry, "AddtlNtryInf"))

	return b.Build(), nil
}

// entryStatus resolves the entry status with a two-tier fallback: the coded
// child's text when present, otherwise the status node's own text. Both
// representations occur across sub-versions.
func entryStatus(entry *xmltree.Node) string {
	sts := entry.FirstDescendant("Sts")
	if sts == nil {
		return ""
	}
	if cd := sts.FirstDescendant("Cd"); cd != nil {
		return cd.Text
	}
	return strings.TrimSpace(sts.Text)
}

// transactionDetailFields extracts the per-detail field set. Every field is
// absent-tolerant; the sparse invariant is enforced by the builder.
func (p *Parser) transactionDetailFields(detail *xmltree.Node) models.Transaction {
	b := models.NewRecordBuilder().
		Set(models.FieldEndToEndID, textAt(detail, "Refs", "EndToEndId")).
		Set(models.FieldMandateID, textAt(detail, "Refs", "MndtId")).
		Set(models.FieldCreditorName, textAt(detail, "RltdPties", "Cdtr", "Nm")).
		Set(models.FieldCreditorIBAN, textAt(detail, "RltdPties", "CdtrAcct", "Id", "IBAN")).
		Set(models.FieldDebtorName, textAt(detail, "RltdPties", "Dbtr", "Nm")).
		Set(models.FieldDebtorIBAN, textAt(detail, "RltdPties", "DbtrAcct", "Id", "IBAN")).
		Set(models.FieldPurposeCode, textAt(detail, "Purp", "Cd"))

	// The detail amount overrides the entry amount on merge.
	if amt := detail.FirstDescendant("Amt"); amt != nil {
		b.Set(models.FieldAmount, amt.Text)
	}

	// RemittanceInformation is the first unstructured line;
	// RemittanceInformationFull joins all of them and is independent of the
	// structured block below. The two may legitimately disagree.
	unstructured := descendantsAt(detail, "RmtInf", "Ustrd")
	if len(unstructured) > 0 {
		b.Set(models.FieldRemittanceInformation, unstructured[0].Text)
		b.Set(models.FieldRemittanceInformationFull, joinRemittanceLines(unstructured))
	}

	// A structured block takes precedence for RemittanceInformation, even
	// overriding with absence when its reference child is missing.
	if strd := firstAt(detail, "RmtInf", "Strd"); strd != nil {
		b.Unset(models.FieldRemittanceInformation)
		b.Set(models.FieldRemittanceInformation, textAt(strd, "CdtrRefInf", "Ref"))
		b.Set(models.FieldAdditionalRemittanceInformation, textAt(strd, "AddtlRmtInf"))
	}

	return b.Build()
}

// joinRemittanceLines joins the trimmed, non-empty unstructured remittance
// lines with single spaces, in document order.
func joinRemittanceLines(nodes []*xmltree.Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if t := strings.TrimSpace(n.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
