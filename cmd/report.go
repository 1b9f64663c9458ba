// Package cmd implements the command-line interface for lifo.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/lifo-cli/lifo/demo"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().IntP("width", "w", 0, "Element byte width for the demonstration stack")
	reportCmd.Flags().BoolP("schema", "s", false, "Generate the JSON Schema of the report instead of running")

	reportCmd.SetOut(os.Stdout)
}

// reportCmd emits the scripted demonstration as a machine-readable JSON report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the scripted demonstration and emit a JSON report",
	Run: func(cmd *cobra.Command, args []string) {
		if schema, err := cmd.Flags().GetBool("schema"); err == nil && schema {
			reflector := new(jsonschema.Reflector)
			reflector.Anonymous = true
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(reflector.Reflect(&demo.Report{})))
			return
		}

		width := lo.Must(cmd.Flags().GetInt("width"))
		report, err := demo.BuildReport(width)
		handleErr(err)

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(report))
	},
}
