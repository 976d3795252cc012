package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canopyforge/canopyforge/internal/application/telemetry"
)

// newThrustCmd builds the thrust subcommand group for the load-cell test
// rig's log files.
func newThrustCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thrust",
		Short: "Analyze thrust logs from the load-cell test rig",
	}
	cmd.AddCommand(newThrustStatsCmd(), newThrustPlotCmd())
	return cmd
}

func newThrustStatsCmd() *cobra.Command {
	var calPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats <thrust_log>",
		Short: "Print summary statistics for a thrust log",
		Example: `  canopyforge thrust stats thrust_log_1.txt
  canopyforge thrust stats thrust_log_1.txt --calibration calibration.txt --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			svc := telemetry.NewService(cliCtx.Logger, nil)
			stats, err := svc.Stats(args[0], calPath)
			if err != nil {
				return err
			}

			if asJSON {
				return PrintJSON(cmd, stats)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Samples:  %d\n", stats.Samples)
			fmt.Fprintf(out, "Duration: %s\n", stats.Duration)
			fmt.Fprintf(out, "Peak:     %.1f g\n", stats.PeakGrams)
			fmt.Fprintf(out, "Mean:     %.1f g\n", stats.MeanGrams)
			fmt.Fprintf(out, "Impulse:  %.3f N·s\n", stats.ImpulseNs)
			return nil
		},
	}
	cmd.Flags().StringVar(&calPath, "calibration", "", "calibration file; recomputes weights from raw readings")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print statistics as JSON")
	return cmd
}

func newThrustPlotCmd() *cobra.Command {
	var calPath, outPath string

	cmd := &cobra.Command{
		Use:   "plot <thrust_log>",
		Short: "Render a weight-vs-time chart for a thrust log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			svc := telemetry.NewService(cliCtx.Logger, nil)
			written, err := svc.Chart(args[0], calPath, outPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Chart: %s\n", written)
			return nil
		},
	}
	cmd.Flags().StringVar(&calPath, "calibration", "", "calibration file; recomputes weights from raw readings")
	cmd.Flags().StringVar(&outPath, "out", "", "chart output path (default: next to the log)")
	return cmd
}
