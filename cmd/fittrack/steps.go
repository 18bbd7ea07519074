package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stridekit/fittrack/internal/pedometer"
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Track pedometer step counts",
}

var stepsSetCmd = &cobra.Command{
	Use:   "set <count>",
	Short: "Apply a cumulative step count for today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid step count %q", args[0])
		}
		if err := a.store.RecordSteps(cmd.Context(), steps); err != nil {
			return err
		}
		snap := a.store.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "Steps today: %d (%.0f kcal burned in total).\n",
			snap.Steps, snap.Calories)
		return nil
	},
}

// stepsWatchCmd is a harness for the sensor stream: cumulative counts are
// read one per line from stdin and fed through the coalescing tracker,
// the same path a device pedometer subscription takes.
var stepsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Read cumulative step counts from stdin until EOF",
	RunE: func(cmd *cobra.Command, args []string) error {
		samples := make(chan int)
		tracker := pedometer.NewTracker(a.store, a.logger)

		errc := make(chan error, 1)
		go func() {
			errc <- tracker.Run(cmd.Context(), samples)
		}()

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			n, err := strconv.Atoi(line)
			if err != nil {
				a.logger.Warn("ignoring bad step sample", zap.String("sample", line))
				continue
			}
			samples <- n
		}
		close(samples)

		if err := <-errc; err != nil {
			return err
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read step samples: %w", err)
		}
		snap := a.store.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "Steps today: %d.\n", snap.Steps)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stepsCmd)
	stepsCmd.AddCommand(stepsSetCmd, stepsWatchCmd)
}
