// ABOUTME: CLI commands for managing workouts.
// ABOUTME: Supports add, list, update, and delete subcommands.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fitness/internal/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	workoutDate     string
	workoutDuration int
	workoutCalories int
	workoutType     string
	workoutLimit    int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workouts",
	Long: `Log and review workout sessions.

COMMANDS:

  add      Log a new workout
  list     List workouts, oldest first
  update   Change an existing workout
  delete   Delete a workout

Suggested types: ` + strings.Join(models.WorkoutTypes, ", ") + `
Any other label up to 20 characters is accepted.`,
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <type>",
	Short: "Log a new workout",
	Long: `Log a new workout.

Examples:
  fitness workout add Running --duration 30 --calories 300
  fitness workout add Yoga -d 45 --date 2024-01-02`,
	Args:        cobra.ExactArgs(1),
	Annotations: authRequired,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateFlag(workoutDate)
		if err != nil {
			return err
		}

		w := models.NewWorkout(sess.UserID(), date, args[0], workoutDuration)
		if cmd.Flags().Changed("calories") {
			w.WithCalories(workoutCalories)
		}
		if err := svc.LogWorkout(cmd.Context(), sess, w); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Logged %s workout\n", w.Type)
		fmt.Fprintf(out, "  ID: %d  %s  %d min  %s kcal\n",
			w.ID, w.Date.Format(models.DateLayout), w.DurationMinutes, caloriesLabel(w.CaloriesBurned))
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:         "list",
	Aliases:     []string{"ls"},
	Short:       "List workouts",
	Args:        cobra.NoArgs,
	Annotations: authRequired,
	RunE: func(cmd *cobra.Command, args []string) error {
		var workouts []models.Workout
		for _, w := range svc.ListWorkouts(cmd.Context(), sess) {
			if workoutType == "" || strings.EqualFold(w.Type, workoutType) {
				workouts = append(workouts, w)
			}
		}
		if workoutLimit > 0 && len(workouts) > workoutLimit {
			workouts = workouts[len(workouts)-workoutLimit:]
		}

		out := cmd.OutOrStdout()
		if len(workouts) == 0 {
			fmt.Fprintln(out, "No workouts found.")
			return nil
		}

		t := newTable(out, table.Row{"ID", "Date", "Type", "Minutes", "Calories"})
		for _, w := range workouts {
			t.AppendRow(table.Row{w.ID, w.Date.Format(models.DateLayout), w.Type, w.DurationMinutes, caloriesLabel(w.CaloriesBurned)})
		}
		t.Render()
		return nil
	},
}

var workoutUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change an existing workout",
	Long: `Change fields of an existing workout. Only the flags given are changed.

Examples:
  fitness workout update 3 --duration 40
  fitness workout update 3 --type Cycling --calories 420`,
	Args:        cobra.ExactArgs(1),
	Annotations: authRequired,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		w, err := svc.FindWorkout(cmd.Context(), sess, id)
		if err != nil {
			return fmt.Errorf("workout %d not found: %w", id, err)
		}

		flags := cmd.Flags()
		if flags.Changed("date") {
			if w.Date, err = models.ParseDate(workoutDate); err != nil {
				return err
			}
		}
		if flags.Changed("type") {
			w.Type = strings.TrimSpace(workoutType)
		}
		if flags.Changed("duration") {
			w.DurationMinutes = workoutDuration
		}
		if flags.Changed("calories") {
			w.WithCalories(workoutCalories)
		}

		if err := svc.UpdateWorkout(cmd.Context(), sess, w); err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Updated workout %d\n", w.ID)
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:         "delete <id>",
	Aliases:     []string{"del", "rm"},
	Short:       "Delete a workout",
	Args:        cobra.ExactArgs(1),
	Annotations: authRequired,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := svc.DeleteWorkout(cmd.Context(), sess, &models.Workout{ID: id}); err != nil {
			return err
		}
		color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "✗ Deleted workout %d\n", id)
		return nil
	},
}

func init() {
	workoutAddCmd.Flags().StringVar(&workoutDate, "date", "", "workout date (YYYY-MM-DD, default today)")
	workoutAddCmd.Flags().IntVarP(&workoutDuration, "duration", "d", 0, "duration in minutes")
	workoutAddCmd.Flags().IntVarP(&workoutCalories, "calories", "c", 0, "calories burned")
	_ = workoutAddCmd.MarkFlagRequired("duration")

	workoutListCmd.Flags().StringVarP(&workoutType, "type", "t", "", "filter by workout type")
	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "n", 0, "show only the most recent N")

	workoutUpdateCmd.Flags().StringVar(&workoutDate, "date", "", "new date (YYYY-MM-DD)")
	workoutUpdateCmd.Flags().StringVarP(&workoutType, "type", "t", "", "new workout type")
	workoutUpdateCmd.Flags().IntVarP(&workoutDuration, "duration", "d", 0, "new duration in minutes")
	workoutUpdateCmd.Flags().IntVarP(&workoutCalories, "calories", "c", 0, "new calories burned")

	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutUpdateCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
