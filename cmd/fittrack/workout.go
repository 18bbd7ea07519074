package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Browse routines and track workout history",
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show workout history",
	RunE: func(cmd *cobra.Command, args []string) error {
		a.workouts.LoadHistory()
		for _, w := range a.workouts.History() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-22s %3d min  %6.0f kcal\n",
				w.Date, w.Name, w.Duration, w.Calories)
		}
		return nil
	},
}

var workoutRoutinesCmd = &cobra.Command{
	Use:   "routines",
	Short: "Show bundled workout routines",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, r := range a.workouts.Routines() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", r.Name)
			for _, e := range r.Exercises {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-16s %d %s (%.0f kcal/%s)\n",
					e.Exercise.Name, e.DefaultQuantity, e.Exercise.Unit,
					e.Exercise.CaloriesPerUnit, e.Exercise.Unit)
			}
		}
		return nil
	},
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <name> <calories> <minutes>",
	Short: "Add a completed workout to the history",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		calories, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid calories %q", args[1])
		}
		duration, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid minutes %q", args[2])
		}
		a.workouts.LoadHistory()
		entry := a.workouts.AddWorkout(args[0], calories, duration)
		fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%.0f kcal, %d min) on %s.\n",
			entry.Name, entry.Calories, entry.Duration, entry.Date)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutListCmd, workoutRoutinesCmd, workoutAddCmd)
}
