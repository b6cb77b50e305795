package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abdigaliarsen/api-gateway/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "api-gateway",
	Short: "Minimal HTTP gateway that relays GET requests to a target URL",
	Long: `api-gateway serves three endpoints:

  GET /                          service description
  GET /health                    health check
  GET /api/proxy?url=<target>    fetch <target> and relay its JSON

Running without a subcommand is the same as "api-gateway serve".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
	RunE: runServe,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a TOML config file")
	addServeFlags(rootCmd.Flags())
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
