package camtparser

import (
	"fmt"
	"os"

	"fjacquet/camt-extract/internal/logging"

	"gopkg.in/xmlpath.v2"
)

// ValidateFormat checks whether a file looks like a CAMT.053 or CAMT.052
// XML document. It is a cheap structural probe for the CLI boundary, not a
// schema validation.
func ValidateFormat(xmlFile string) (bool, error) {
	log.Debug("validating CAMT format",
		logging.Field{Key: "file", Value: xmlFile})

	f, err := os.Open(xmlFile)
	if err != nil {
		return false, fmt.Errorf("error opening XML file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("failed to close file")
		}
	}()

	root, err := xmlpath.Parse(f)
	if err != nil {
		// Not well-formed XML, but that is a validation result here.
		log.Debug("file is not valid XML",
			logging.Field{Key: "file", Value: xmlFile})
		return false, nil
	}

	// A statement document carries BkToCstmrStmt, a report document
	// BkToCstmrAcctRpt. Either qualifies.
	for _, probe := range []string{"//BkToCstmrStmt//Stmt", "//BkToCstmrAcctRpt//Rpt"} {
		if iter := xmlpath.MustCompile(probe).Iter(root); iter.Next() {
			return true, nil
		}
	}

	log.Debug("file has no statement or report container",
		logging.Field{Key: "file", Value: xmlFile})
	return false, nil
}
