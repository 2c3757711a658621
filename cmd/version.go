package cmd

import (
	"fmt"

	"github.com/restmap-cli/restmap/core/version"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of restmap",
	Long:  `Displays the version of restmap.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("restmap %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
