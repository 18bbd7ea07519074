package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/stridekit/fittrack/internal/service"
)

var (
	logDistance float64
	logSteps    int
	logNotes    string
)

var logCmd = &cobra.Command{
	Use:   "log <activity-type> <minutes>",
	Short: "Log an activity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		duration, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid minutes %q", args[1])
		}

		typeID, err := resolveActivityType(cmd, args[0])
		if err != nil {
			return err
		}

		opts := service.LogActivityOptions{
			Distance: logDistance,
			Steps:    logSteps,
			Notes:    logNotes,
		}
		if err := a.store.LogActivity(cmd.Context(), typeID, duration, opts); err != nil {
			if errors.Is(err, service.ErrActivityTypeNotFound) {
				return fmt.Errorf("unknown activity type %q (see 'fittrack types')", args[0])
			}
			return err
		}

		snap := a.store.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "Logged %s for %d min. Today: %.0f kcal burned.\n",
			args[0], duration, snap.Calories)
		return nil
	},
}

// resolveActivityType accepts a numeric id or a case-insensitive name.
func resolveActivityType(cmd *cobra.Command, arg string) (uint, error) {
	if id, err := strconv.ParseUint(arg, 10, 32); err == nil {
		return uint(id), nil
	}
	types, err := a.activities.ActivityTypes(cmd.Context())
	if err != nil {
		return 0, err
	}
	for _, at := range types {
		if strings.EqualFold(at.Name, arg) {
			return at.ID, nil
		}
	}
	return 0, fmt.Errorf("unknown activity type %q (see 'fittrack types')", arg)
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List activity types",
	RunE: func(cmd *cobra.Command, args []string) error {
		types, err := a.activities.ActivityTypes(cmd.Context())
		if err != nil {
			return err
		}
		for _, at := range types {
			fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-16s %.1f kcal/min\n", at.ID, at.Name, at.CaloriesPerMinute)
		}
		return nil
	},
}

var activitiesDate string

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "List the day's logged activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := activitiesDate
		if date == "" {
			date = service.DateOf(time.Now())
		}
		details, err := a.activities.ActivitiesForDay(cmd.Context(), a.userID, date)
		if err != nil {
			return err
		}
		if len(details) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No activities on %s.\n", date)
			return nil
		}
		for _, d := range details {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-16s %3d min  %6.0f kcal",
				d.StartTime.Format("15:04"), d.ActivityName, d.Duration, d.CaloriesBurned)
			if d.Steps > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "  %d steps", d.Steps)
			}
			if d.Notes != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  (%s)", d.Notes)
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd, typesCmd, activitiesCmd)
	logCmd.Flags().Float64Var(&logDistance, "distance", 0, "Distance in km")
	logCmd.Flags().IntVar(&logSteps, "steps", 0, "Step count")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "Notes")
	activitiesCmd.Flags().StringVar(&activitiesDate, "date", "", "Date YYYY-MM-DD (default today)")
}
