// Package root contains the root command for the application
package root

import (
	"os"

	"fjacquet/camt-extract/internal/camtparser"
	"fjacquet/camt-extract/internal/common"
	"fjacquet/camt-extract/internal/config"
	"fjacquet/camt-extract/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "camt-extract",
		Short: "A CLI tool to extract flat transaction records from CAMT.053/052 XML files.",
		Long: `camt-extract reads CAMT.053 bank statements and CAMT.052 account reports
and flattens their entries into normalized CSV records, one row per
transaction detail.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to camt-extract!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger for all packages doing their own logging
			adapted := logging.NewLogrusAdapterFromLogger(Log)
			camtparser.SetLogger(adapted)
			common.SetLogger(adapted)

			// Ensure CSV delimiter is updated after env variables are loaded
			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				common.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	// Add persistent flags to root command for common options
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before extraction")
}
