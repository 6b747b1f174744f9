package camtparser

import (
	"strings"

	"fjacquet/camt-extract/internal/logging"
	"fjacquet/camt-extract/internal/models"
	"fjacquet/camt-extract/internal/xmltree"

	"github.com/shopspring/decimal"
)

// Balance type codes recognized by the summary extractor. Other codes are
// ignored so unknown balance types degrade gracefully.
const (
	balanceTypeOpening = "OPBD"
	balanceTypeClosing = "CLBD"
)

// Statements extracts one summary per statement or report container, in
// container order.
func (p *Parser) Statements() ([]models.StatementSummary, error) {
	containers, err := p.containers()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.StatementSummary, 0, len(containers))
	for _, container := range containers {
		summaries = append(summaries, extractSummary(container))
	}

	log.Debug("statement summaries extracted",
		logging.Field{Key: "count", Value: len(summaries)})
	return summaries, nil
}

func extractSummary(container *xmltree.Node) models.StatementSummary {
	summary := models.StatementSummary{
		IBAN:     textAt(container, "Acct", "Id", "IBAN"),
		Currency: textAt(container, "Acct", "Ccy"),
	}

	// Later balances of the same type overwrite earlier ones.
	for _, bal := range container.Descendants("Bal") {
		amount := ""
		if amt := bal.FirstDescendant("Amt"); amt != nil {
			amount = amt.Text
		}
		if amount != "" && textAt(bal, "CdtDbtInd") == "DBIT" {
			amount = negateAmount(amount)
		}

		date := ""
		if wrapper := bal.FirstDescendant("Dt"); wrapper != nil {
			if dt := wrapper.FirstDescendant("Dt"); dt != nil {
				date = dt.Text
			}
			// A date-time wins over a plain date when both are present.
			if dtm := wrapper.FirstDescendant("DtTm"); dtm != nil {
				date = dtm.Text
			}
		}

		switch textAt(bal, "Tp", "CdOrPrtry", "Cd") {
		case balanceTypeOpening:
			summary.OpeningBalance = amount
			summary.OpeningBalanceDate = date
		case balanceTypeClosing:
			summary.ClosingBalance = amount
			summary.ClosingBalanceDate = date
		}
	}

	return summary
}

// negateAmount negates a decimal amount while preserving its printed scale,
// so "100.00" becomes "-100.00". Text that does not parse as a number is
// returned untouched: sign display is best effort, never an error.
func negateAmount(text string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return text
	}
	places := -d.Exponent()
	if places < 0 {
		places = 0
	}
	return d.Neg().StringFixed(places)
}
