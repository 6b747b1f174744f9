// Package flatten handles the statement-to-CSV extraction command
package flatten

import (
	"strings"

	"fjacquet/camt-extract/cmd/root"
	"fjacquet/camt-extract/internal/camtparser"
	"fjacquet/camt-extract/internal/common"
	"fjacquet/camt-extract/internal/parsererror"

	"github.com/spf13/cobra"
)

// Cmd represents the flatten command
var Cmd = &cobra.Command{
	Use:   "flatten",
	Short: "Flatten a CAMT.053/052 file into transaction CSV records",
	Long: `Flatten reads a CAMT.053 statement or CAMT.052 report and writes one CSV
row per transaction detail, with batch entries fanned out into their
individual transactions. Statement summaries are written alongside when
--statements is given.`,
	Run: flattenFunc,
}

var statementsOut string

func init() {
	Cmd.Flags().StringVar(&statementsOut, "statements", "", "Also write per-account statement summaries to this CSV file")
}

// validateInput probes the input file shape before any extraction work. A
// readable file that is not a CAMT statement or report yields a typed
// InvalidFormatError.
func validateInput(path string) error {
	ok, err := camtparser.ValidateFormat(path)
	if err != nil {
		return err
	}
	if !ok {
		return &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "CAMT.053/CAMT.052 XML",
			Msg:            "no statement or report container found",
		}
	}
	return nil
}

func flattenFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("CAMT flatten command called")
	root.Log.Infof("Input CAMT file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output CSV file: %s", root.SharedFlags.Output)

	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("Both --input and --output are required")
	}

	if root.SharedFlags.Validate {
		if err := validateInput(root.SharedFlags.Input); err != nil {
			root.Log.Fatalf("Error validating input file: %v", err)
		}
	}

	p, err := camtparser.FromFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error parsing CAMT file: %v", err)
	}

	transactions, err := p.Transactions()
	if err != nil {
		root.Log.Fatalf("Error extracting transactions: %v", err)
	}
	if err := common.WriteTransactionsToCSV(transactions, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing transactions CSV: %v", err)
	}

	if statementsOut != "" {
		summaries, err := p.Statements()
		if err != nil {
			root.Log.Fatalf("Error extracting statement summaries: %v", err)
		}
		if err := common.WriteStatementsToCSV(summaries, statementsOut); err != nil {
			root.Log.Fatalf("Error writing statements CSV: %v", err)
		}
	}

	root.Log.WithField("count", len(transactions)).Info("CAMT flattening completed successfully!")
	if v := p.Version(); v != camtparser.VersionUnknown {
		root.Log.WithField("version", v).Debug("Detected statement version")
	} else if strings.TrimSpace(p.Namespace()) != "" {
		root.Log.WithField("namespace", p.Namespace()).Debug("Unrecognized statement namespace")
	}
}
