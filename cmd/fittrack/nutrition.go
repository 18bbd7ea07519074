package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var intakeCmd = &cobra.Command{
	Use:   "intake",
	Short: "Track consumed calories",
}

var intakeAddCmd = &cobra.Command{
	Use:   "add <calories>",
	Short: "Add consumed calories to today's total",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kcal, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid calories %q", args[0])
		}
		if err := a.store.AddCaloriesIntake(cmd.Context(), kcal); err != nil {
			return err
		}
		snap := a.store.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "Intake today: %.0f / %.0f kcal.\n",
			snap.CaloriesIntake, snap.CaloriesIntakeGoal)
		return nil
	},
}

var intakeGoalCmd = &cobra.Command{
	Use:   "goal <calories>",
	Short: "Set the daily intake goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kcal, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid calories %q", args[0])
		}
		if err := a.store.SetCaloriesIntakeGoal(cmd.Context(), kcal); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Daily intake goal set to %.0f kcal.\n", kcal)
		return nil
	},
}

var gainedAddCmd = &cobra.Command{
	Use:   "gained <calories>",
	Short: "Add net gained calories to today's total",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kcal, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid calories %q", args[0])
		}
		if err := a.store.AddCaloriesGained(cmd.Context(), kcal); err != nil {
			return err
		}
		snap := a.store.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "Gained today: %.0f kcal.\n", snap.CaloriesGained)
		return nil
	},
}

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track water intake",
}

var waterAddCmd = &cobra.Command{
	Use:   "add <liters>",
	Short: "Add water to today's total",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		liters, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid liters %q", args[0])
		}
		if err := a.store.AddWaterIntake(cmd.Context(), liters); err != nil {
			return err
		}
		snap := a.store.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "Water today: %.2f / %.2f L.\n",
			snap.WaterIntake, snap.WaterIntakeGoal)
		return nil
	},
}

var waterGoalCmd = &cobra.Command{
	Use:   "goal <liters>",
	Short: "Set the daily water goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		liters, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid liters %q", args[0])
		}
		if err := a.store.SetWaterIntakeGoal(cmd.Context(), liters); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Daily water goal set to %.2f L.\n", liters)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(intakeCmd, waterCmd)
	intakeCmd.AddCommand(intakeAddCmd, intakeGoalCmd, gainedAddCmd)
	waterCmd.AddCommand(waterAddCmd, waterGoalCmd)
}
