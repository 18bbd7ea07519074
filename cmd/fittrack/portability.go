package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stridekit/fittrack/internal/service"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all data as a JSON snapshot (stdout by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return a.portability.Export(cmd.Context(), cmd.OutOrStdout())
		}
		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer f.Close()
		if err := a.portability.Export(cmd.Context(), f); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s.\n", args[0])
		return nil
	},
}

var importForce bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore a JSON snapshot, replacing current data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !importForce {
			hasData, err := a.portability.HasLoggedData(cmd.Context())
			if err != nil {
				return err
			}
			if hasData {
				return fmt.Errorf("%w; pass --force to replace it", service.ErrDataPresent)
			}
		}
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open snapshot file: %w", err)
		}
		defer f.Close()
		if err := a.portability.Import(cmd.Context(), f); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %s.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	importCmd.Flags().BoolVar(&importForce, "force", false, "Replace existing logged data")
}
