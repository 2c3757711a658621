package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/restmap-cli/restmap/core/config"
	"github.com/restmap-cli/restmap/core/logger"
	"github.com/spf13/cobra"
)

var (
	force bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default restmap.yaml to the current directory",
	Long:  `Creates a restmap.yaml with the default scan excludes and output format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		logger.Debug("init called")

		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		path := filepath.Join(wd, config.FileName)
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists, use --force to overwrite", config.FileName)
		}

		if err := config.Default().Write(path); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		fmt.Printf("Created %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "Force overwrite existing files")
}
