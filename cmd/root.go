package cmd

import (
	"os"

	"github.com/restmap-cli/restmap/core/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "restmap",
	Short: "A CLI tool that inventories the REST endpoints of a Java codebase.",
	Long: `Restmap scans a directory tree for Spring controller files and extracts
the endpoints they declare through mapping annotations (@GetMapping,
@PostMapping, @RequestMapping, ...), producing a per-file inventory of
HTTP verb and path pairs.`,
}

var logfile string
var verbose bool

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// setupLogging applies the persistent flags to the global logger. Called by
// every subcommand that produces log output.
func setupLogging() error {
	logger.SetVerbose(verbose)
	if logfile != "" {
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		logger.AddWriterForAll(f)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
}
