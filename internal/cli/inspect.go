package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/plangen/pkg/jsonpath"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <plan.json> <path>",
	Short: "Query a generated JSON-format plan with a JSONPath expression",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading plan: %v\n", err)
			os.Exit(1)
		}

		value, err := jsonpath.Extract(string(data), args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(value)
	},
}
