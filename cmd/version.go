package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdigaliarsen/api-gateway/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gateway version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.ServiceName, config.ServiceVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
