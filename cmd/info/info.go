// Package info handles the document inspection command
package info

import (
	"fmt"

	"fjacquet/camt-extract/cmd/root"
	"fjacquet/camt-extract/internal/camtparser"
	"fjacquet/camt-extract/internal/config"

	"github.com/spf13/cobra"
)

// Cmd represents the info command
var Cmd = &cobra.Command{
	Use:   "info",
	Short: "Show document metadata and the effective configuration",
	Long: `Info prints the group header, detected sub-version and per-account
summaries of a CAMT file without writing any CSV output. Without --input
it prints the effective configuration instead.`,
	Run: infoFunc,
}

func infoFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		dumpConfig()
		return
	}

	p, err := camtparser.FromFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error parsing CAMT file: %v", err)
	}

	hdr, err := p.GroupHeader()
	if err != nil {
		root.Log.Fatalf("Error reading group header: %v", err)
	}

	fmt.Printf("Version:   %s\n", p.Version())
	fmt.Printf("Namespace: %s\n", p.Namespace())
	if !hdr.IsEmpty() {
		fmt.Printf("MessageID: %s\n", hdr.MessageID)
		fmt.Printf("Created:   %s\n", hdr.CreationDateTime)
	}

	summaries, err := p.Statements()
	if err != nil {
		root.Log.Fatalf("Error extracting statement summaries: %v", err)
	}
	for _, s := range summaries {
		fmt.Printf("Account:   %s %s opening=%s closing=%s\n",
			s.IBAN, s.Currency, s.OpeningBalance, s.ClosingBalance)
	}

	transactions, err := p.Transactions()
	if err != nil {
		root.Log.Fatalf("Error extracting transactions: %v", err)
	}
	fmt.Printf("Transactions: %d\n", len(transactions))
}

func dumpConfig() {
	cfg, err := config.InitializeConfig()
	if err != nil {
		root.Log.Fatalf("Error loading configuration: %v", err)
	}
	out, err := cfg.Dump()
	if err != nil {
		root.Log.Fatalf("Error rendering configuration: %v", err)
	}
	fmt.Print(out)
}
