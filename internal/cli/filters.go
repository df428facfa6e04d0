package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/plangen/internal/filter"
)

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List the available post-processing filters",
	Run: func(cmd *cobra.Command, args []string) {
		registry := filter.DefaultRegistry()
		for _, name := range registry.Names() {
			f, err := registry.Get(name)
			if err != nil {
				continue
			}
			fmt.Printf("%-16s %s\n", name, f.Description())
		}
	},
}
