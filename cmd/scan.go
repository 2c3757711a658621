package cmd

import (
	"fmt"
	"os"

	"github.com/restmap-cli/restmap/core/config"
	"github.com/restmap-cli/restmap/core/logger"
	"github.com/restmap-cli/restmap/core/render"
	"github.com/restmap-cli/restmap/core/walker"
	"github.com/spf13/cobra"
)

var (
	scanFormat  string
	scanOutput  string
	scanLenient bool
	scanNoCache bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Scan a directory tree for controller endpoints",
	Long: `Recursively scans <dir> for *Controller.java files and reports the
endpoints their mapping annotations declare. Hidden directories and
configured excludes are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		logger.Debug("scan called")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyScanFlags(cmd, cfg)

		w := walker.FromConfig(cfg, !scanNoCache)
		report, err := w.Walk(args[0])
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		logger.Debug("Scanned %d controller files, %d endpoints", len(report.Files), report.TotalMatches())

		out := os.Stdout
		if scanOutput != "" {
			f, err := os.Create(scanOutput)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		return render.Render(report, cfg.Output.Format, out)
	},
}

// applyScanFlags lets explicitly set flags override the config file.
func applyScanFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = scanFormat
	}
	if cmd.Flags().Changed("lenient") {
		cfg.Scan.Lenient = scanLenient
	}
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanFormat, "format", render.FormatText, "Output format: text, yaml or tree")
	scanCmd.Flags().StringVar(&scanOutput, "output", "", "Write the report to a file instead of stdout")
	scanCmd.Flags().BoolVar(&scanLenient, "lenient", false, "Warn on unknown mapping annotations instead of aborting")
	scanCmd.Flags().BoolVar(&scanNoCache, "no-cache", false, "Bypass the report cache")
}
