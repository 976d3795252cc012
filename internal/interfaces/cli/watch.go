package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/canopyforge/canopyforge/internal/application/design"
	"github.com/canopyforge/canopyforge/internal/infrastructure/monitoring/logging"
	"github.com/canopyforge/canopyforge/internal/infrastructure/monitoring/prometheus"
	"github.com/canopyforge/canopyforge/internal/infrastructure/watch"
)

// newWatchCmd builds the watch subcommand: it monitors a directory of YAML
// design files and reruns the pipeline whenever one changes.
func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Watch a directory of design files and regenerate on change",
		Long: "Watch monitors <dir> for YAML design files. Whenever one is created or\n" +
			"written, its design is loaded and the full pipeline runs against the\n" +
			"configured output directory. Runs until interrupted.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			logger := cliCtx.Logger
			collector := prometheus.NewMetricsCollector(prometheus.CollectorConfig{}, logger)
			metrics := prometheus.NewAppMetrics(collector)
			svc := design.NewService(*cliCtx.Config, logger, metrics)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			handler := func(path string) error {
				req, err := watch.LoadRequest(path)
				if err != nil {
					logger.Error("skipping design file", logging.String("path", path), logging.Err(err))
					return err
				}
				if _, err := svc.Run(ctx, req); err != nil {
					logger.Error("design run failed", logging.String("path", path), logging.Err(err))
					return err
				}
				return nil
			}

			w, err := watch.NewWatcher(args[0], cliCtx.Config.Watch.Debounce, handler, logger, metrics.WatchEventsTotal)
			if err != nil {
				return err
			}
			if err := w.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
	return cmd
}
