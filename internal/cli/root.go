package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "plangen",
	Short:   "Generate load-test plans from declarative workload models",
	Version: version,
	Long: `Plangen turns a declarative, graph-structured workload model (states,
transitions, requests, think times and assertions) into a hierarchical
test-plan document consumable by a load-testing engine. It performs no
requests itself.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute runs the root command. It only needs to happen once; main
// turns a returned error into a non-zero exit.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	// Add subcommands to root command
	RootCmd.AddCommand(generateCmd)
	RootCmd.AddCommand(filtersCmd)
	RootCmd.AddCommand(inspectCmd)
}
