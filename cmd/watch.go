package cmd

import (
	"fmt"
	"os"

	"github.com/restmap-cli/restmap/core/config"
	"github.com/restmap-cli/restmap/core/logger"
	"github.com/restmap-cli/restmap/core/render"
	"github.com/restmap-cli/restmap/core/walker"
	"github.com/restmap-cli/restmap/core/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Scan a directory tree and rescan on changes",
	Long: `Runs an initial scan of <dir> and then watches the tree, rescanning
and re-rendering the endpoint inventory whenever controller files change.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		logger.Debug("watch called")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyScanFlags(cmd, cfg)

		root := args[0]
		w := walker.FromConfig(cfg, true)

		rescan := func() error {
			report, err := w.Walk(root)
			if err != nil {
				return err
			}
			logger.Info("Scanned %d controller files, %d endpoints", len(report.Files), report.TotalMatches())
			return render.Render(report, cfg.Output.Format, os.Stdout)
		}

		fw, err := watcher.NewFileWatcher(root, cfg.Scan.Exclude)
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		defer fw.Close()

		fw.FileWatcher.AddOnStartFunc(rescan)
		fw.FileWatcher.AddOnChangeFunc(rescan)
		fw.FileWatcher.AddOnCloseFunc(func() error { return nil })

		logger.Info("Watching %s for controller changes...", root)
		return fw.Watch()
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&scanFormat, "format", render.FormatText, "Output format: text, yaml or tree")
	watchCmd.Flags().BoolVar(&scanLenient, "lenient", false, "Warn on unknown mapping annotations instead of aborting")
}
