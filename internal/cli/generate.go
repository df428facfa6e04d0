package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wesleyorama2/plangen/internal/generator"
	"github.com/wesleyorama2/plangen/internal/output"
	"github.com/wesleyorama2/plangen/internal/plan"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a test-plan document from a workload model",
	Run: func(cmd *cobra.Command, args []string) {
		modelPath, _ := cmd.Flags().GetString("model")
		outputPath, _ := cmd.Flags().GetString("output")
		configPath, _ := cmd.Flags().GetString("config")
		defaultsPath, _ := cmd.Flags().GetString("defaults")
		filterSelection, _ := cmd.Flags().GetString("filters")
		formatFlag, _ := cmd.Flags().GetString("format")
		verbose, _ := cmd.Flags().GetBool("verbose")
		noColor, _ := cmd.Flags().GetBool("no-color")

		if modelPath == "" {
			fmt.Println("Error: model file is required")
			cmd.Help()
			return
		}

		if outputPath == "" {
			fmt.Println("Error: output file is required")
			cmd.Help()
			return
		}

		// Load generator configuration
		cfg := generator.DefaultConfig()
		if configPath != "" {
			loaded, err := generator.LoadConfig(configPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
				os.Exit(1)
			}
			cfg = loaded
		}

		// Load test-plan defaults
		var defaults *generator.TestPlanDefaults
		if defaultsPath != "" {
			loaded, err := generator.LoadTestPlanDefaults(defaultsPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error loading test-plan defaults: %v\n", err)
				os.Exit(1)
			}
			defaults = loaded
		}

		// Resolve the output format
		format := plan.FormatForPath(outputPath)
		if formatFlag != "" {
			parsed, err := plan.ParseFormat(formatFlag)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			format = parsed
		}

		log := zap.NewNop()
		if verbose {
			log, _ = zap.NewDevelopment()
		}

		gen := generator.New(cfg, defaults, generator.WithLogger(log))
		if err := gen.Run(modelPath, outputPath, filterSelection, format); err != nil {
			var vf *generator.ValidationFailure
			if errors.As(err, &vf) {
				fmt.Fprintln(os.Stderr, "Model validation failed:")
				printer := output.NewDiagnosticPrinter(os.Stderr, noColor)
				printer.Print(vf.Diagnostic)
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("%s Plan written to %s\n", output.SuccessIcon(noColor), outputPath)
	},
}

func init() {
	generateCmd.Flags().StringP("model", "m", "", "Workload model file (YAML or JSON)")
	generateCmd.Flags().StringP("output", "o", "", "Output plan file")
	generateCmd.Flags().StringP("config", "c", "", "Generator configuration file")
	generateCmd.Flags().StringP("defaults", "d", "", "Test-plan defaults file")
	generateCmd.Flags().StringP("filters", "f", "", "Comma-separated filter selection, applied in order")
	generateCmd.Flags().String("format", "", "Output format: xml or json (default: by output extension)")
	generateCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	generateCmd.Flags().Bool("no-color", false, "Disable colored output")
}
