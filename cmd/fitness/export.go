// ABOUTME: CLI commands for exporting and importing fitness data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats; import reads JSON.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/fitness/internal/service"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export your fitness data",
	Long: `Export all of your workouts and measurements.

FORMATS:

  json       Full JSON export (suitable for backup and import)
  yaml       YAML export (human-readable)
  markdown   Markdown tables (for documentation/sharing)

EXAMPLES:

  fitness export json                   # Export all data as JSON
  fitness export json -o backup.json    # Save to file
  fitness export markdown`,
	Args:        cobra.ExactArgs(1),
	ValidArgs:   service.ExportFormats,
	Annotations: authRequired,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := svc.ExportData(cmd.Context(), sess, args[0])
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput == "" {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Exported to %s\n", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import workouts and measurements from JSON",
	Long: `Import workouts and measurements from a JSON export.

Records are added as new entries owned by the logged-in user. Every record
is validated before anything is written.

EXAMPLES:

  fitness import backup.json`,
	Args:        cobra.ExactArgs(1),
	Annotations: authRequired,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		summary, err := svc.ImportData(cmd.Context(), sess, raw)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Imported %d workouts and %d measurements from %s\n",
			summary.Workouts, summary.Measurements, args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
