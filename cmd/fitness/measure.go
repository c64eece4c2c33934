// ABOUTME: CLI commands for body measurements.
// ABOUTME: Supports add, list, update, and delete; list shows BMI per row.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/summary"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	measureDate   string
	measureWeight float64
	measureHeight float64
	measureLimit  int
)

var measureCmd = &cobra.Command{
	Use:     "measure",
	Aliases: []string{"m"},
	Short:   "Manage body measurements",
	Long: `Record body weight (kg) and optionally height (cm).

BMI is computed from weight and height whenever a height is present.`,
}

var measureAddCmd = &cobra.Command{
	Use:   "add <weight-kg>",
	Short: "Record a measurement",
	Long: `Record a body measurement.

Examples:
  fitness measure add 70.5
  fitness measure add 70.5 --height 175 --date 2024-01-02`,
	Args:        cobra.ExactArgs(1),
	Annotations: authRequired,
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[0])
		}
		date, err := dateFlag(measureDate)
		if err != nil {
			return err
		}

		m := models.NewMeasurement(sess.UserID(), date, weight)
		if cmd.Flags().Changed("height") {
			m.WithHeight(measureHeight)
		}
		if err := svc.LogMeasurement(cmd.Context(), sess, m); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Recorded %s kg\n", models.OneDecimal(m.Weight))
		fmt.Fprintf(out, "  ID: %d  %s  BMI %s\n", m.ID, m.RecordDate.Format(models.DateLayout), bmiLabel(m))
		return nil
	},
}

var measureListCmd = &cobra.Command{
	Use:         "list",
	Aliases:     []string{"ls"},
	Short:       "List measurements",
	Args:        cobra.NoArgs,
	Annotations: authRequired,
	RunE: func(cmd *cobra.Command, args []string) error {
		measurements := svc.ListMeasurements(cmd.Context(), sess)
		if measureLimit > 0 && len(measurements) > measureLimit {
			measurements = measurements[len(measurements)-measureLimit:]
		}

		out := cmd.OutOrStdout()
		if len(measurements) == 0 {
			fmt.Fprintln(out, "No measurements found.")
			return nil
		}

		t := newTable(out, table.Row{"ID", "Date", "Weight (kg)", "Height (cm)", "BMI"})
		for _, m := range measurements {
			t.AppendRow(table.Row{m.ID, m.RecordDate.Format(models.DateLayout), models.OneDecimal(m.Weight), heightLabel(m.Height), bmiLabel(&m)})
		}
		t.Render()
		return nil
	},
}

var measureUpdateCmd = &cobra.Command{
	Use:         "update <id>",
	Short:       "Change an existing measurement",
	Args:        cobra.ExactArgs(1),
	Annotations: authRequired,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		m, err := svc.FindMeasurement(cmd.Context(), sess, id)
		if err != nil {
			return fmt.Errorf("measurement %d not found: %w", id, err)
		}

		flags := cmd.Flags()
		if flags.Changed("date") {
			if m.RecordDate, err = models.ParseDate(measureDate); err != nil {
				return err
			}
		}
		if flags.Changed("weight") {
			m.Weight = measureWeight
		}
		if flags.Changed("height") {
			m.WithHeight(measureHeight)
		}

		if err := svc.UpdateMeasurement(cmd.Context(), sess, m); err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Updated measurement %d\n", m.ID)
		return nil
	},
}

var measureDeleteCmd = &cobra.Command{
	Use:         "delete <id>",
	Aliases:     []string{"del", "rm"},
	Short:       "Delete a measurement",
	Args:        cobra.ExactArgs(1),
	Annotations: authRequired,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := svc.DeleteMeasurement(cmd.Context(), sess, &models.Measurement{ID: id}); err != nil {
			return err
		}
		color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "✗ Deleted measurement %d\n", id)
		return nil
	},
}

func bmiLabel(m *models.Measurement) string {
	bmi := summary.MeasurementBMI(*m)
	if bmi <= 0 {
		return summary.NotAvailable
	}
	return models.OneDecimal(bmi)
}

func init() {
	measureAddCmd.Flags().StringVar(&measureDate, "date", "", "measurement date (YYYY-MM-DD, default today)")
	measureAddCmd.Flags().Float64Var(&measureHeight, "height", 0, "height in cm")

	measureListCmd.Flags().IntVarP(&measureLimit, "limit", "n", 0, "show only the most recent N")

	measureUpdateCmd.Flags().StringVar(&measureDate, "date", "", "new date (YYYY-MM-DD)")
	measureUpdateCmd.Flags().Float64Var(&measureWeight, "weight", 0, "new weight in kg")
	measureUpdateCmd.Flags().Float64Var(&measureHeight, "height", 0, "new height in cm")

	measureCmd.AddCommand(measureAddCmd)
	measureCmd.AddCommand(measureListCmd)
	measureCmd.AddCommand(measureUpdateCmd)
	measureCmd.AddCommand(measureDeleteCmd)
	rootCmd.AddCommand(measureCmd)
}
