// ABOUTME: CLI commands for the dashboard summary and the text report.
// ABOUTME: The report can be printed or saved as fitness_report_<user>.txt.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/service"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	reportOutput string
	reportSave   bool
)

var dashboardCmd = &cobra.Command{
	Use:         "dashboard",
	Aliases:     []string{"dash"},
	Short:       "Show totals, latest weight and BMI status",
	Args:        cobra.NoArgs,
	Annotations: authRequired,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := svc.BuildDashboardSummary(cmd.Context(), sess)
		out := cmd.OutOrStdout()
		bold := color.New(color.Bold)

		bold.Fprintf(out, "Welcome, %s!\n\n", sess.User.Username)
		fmt.Fprintf(out, "%-18s%d\n", "Workouts:", d.TotalWorkouts)
		fmt.Fprintf(out, "%-18s%d\n", "Calories (total):", d.TotalCalories)
		fmt.Fprintf(out, "%-18s%d\n", "Calories (today):", d.CaloriesToday)
		fmt.Fprintf(out, "%-18s%s\n", "Last weight:", d.LastWeight)
		fmt.Fprintf(out, "%-18s%s\n", "Status:", d.Status)

		if len(d.CalorieSeries) > 0 {
			fmt.Fprintln(out)
			bold.Fprintln(out, "Calories by type")
			t := newTable(out, table.Row{"Type", "Calories"})
			for _, c := range d.CalorieSeries {
				t.AppendRow(table.Row{c.Type, c.Calories})
			}
			t.Render()
		}

		if len(d.WeightSeries) > 0 {
			fmt.Fprintln(out)
			bold.Fprintln(out, "Weight trend")
			labels := make([]string, len(d.WeightSeries))
			for i, p := range d.WeightSeries {
				labels[i] = p.Label + " " + models.OneDecimal(p.Value)
			}
			fmt.Fprintln(out, strings.Join(labels, "  →  "))
		}
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print or save the full text report",
	Long: `Print the comprehensive fitness report.

Examples:
  fitness report                  # print to stdout
  fitness report --save           # write fitness_report_<user>.txt
  fitness report -o summary.txt   # write to a chosen file`,
	Args:        cobra.NoArgs,
	Annotations: authRequired,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := reportOutput
		if path == "" && reportSave {
			path = service.ReportFileName(sess.User.Username)
		}
		if path == "" {
			fmt.Fprint(cmd.OutOrStdout(), svc.BuildTextReport(cmd.Context(), sess))
			return nil
		}

		if err := svc.ExportReportToFile(cmd.Context(), sess, path); err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Report saved to %s\n", path)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "write the report to this file")
	reportCmd.Flags().BoolVar(&reportSave, "save", false, "write the report to fitness_report_<user>.txt")
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(reportCmd)
}
