package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/stridekit/fittrack/internal/service"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the day's activity, goals and nutrition",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if todayDate != "" {
			// Historical dates read straight from the operations layer;
			// the store only mirrors today.
			if _, err := time.ParseInLocation("2006-01-02", todayDate, time.Local); err != nil {
				return fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", todayDate)
			}
			summary, err := a.activities.GetDailySummary(cmd.Context(), a.userID, todayDate)
			if err != nil {
				return err
			}
			nutrition, err := a.nutrition.GetDailyNutrition(cmd.Context(), a.userID, todayDate)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Date: %s\n", todayDate)
			fmt.Fprintf(out, "Burned: %.0f kcal | Steps: %d | Distance: %.2f km | Active: %d min\n",
				summary.TotalCaloriesBurned, summary.TotalSteps, summary.TotalDistance, summary.TotalActivityMinutes)
			fmt.Fprintf(out, "Goal achieved: %v\n", summary.GoalAchieved)
			fmt.Fprintf(out, "Intake: %.0f kcal | Gained: %.0f kcal | Water: %.2f L\n",
				nutrition.CaloriesIntake, nutrition.CaloriesGained, nutrition.WaterIntake)
			return nil
		}

		snap := a.store.Snapshot()
		fmt.Fprintf(out, "Date: %s\n", service.DateOf(time.Now()))
		fmt.Fprintf(out, "Burned: %.0f / %.0f kcal\n", snap.Calories, snap.CalorieGoal)
		fmt.Fprintf(out, "Steps: %d | Distance: %.2f km | Active: %d min\n",
			snap.Steps, snap.Distance, snap.ActiveMinutes)
		fmt.Fprintf(out, "Intake: %.0f / %.0f kcal | Gained: %.0f kcal\n",
			snap.CaloriesIntake, snap.CaloriesIntakeGoal, snap.CaloriesGained)
		fmt.Fprintf(out, "Water: %.2f / %.2f L\n", snap.WaterIntake, snap.WaterIntakeGoal)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
