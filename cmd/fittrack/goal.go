package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage the daily calorie-burn goal",
}

var goalSetCmd = &cobra.Command{
	Use:   "set <calories>",
	Short: "Set a new active calorie-burn goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid calories %q", args[0])
		}
		if err := a.store.SetCalorieGoal(cmd.Context(), target); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Daily burn goal set to %.0f kcal.\n", target)
		return nil
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active goal and today's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, err := a.goals.ActiveCalorieGoal(cmd.Context(), a.userID)
		if err != nil {
			return err
		}
		if goal == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No active calorie goal.")
			return nil
		}
		snap := a.store.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "Goal: %.0f kcal/day (since %s)\n",
			goal.TargetCalories, goal.StartDate.Format("2006-01-02"))
		fmt.Fprintf(cmd.OutOrStdout(), "Today: %.0f kcal burned (%.0f%%)\n",
			snap.Calories, 100*snap.Calories/goal.TargetCalories)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalSetCmd, goalShowCmd)
}
