// canopyd is the HTTP design service: it serves the pipeline over a JSON
// API with health and metrics endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/canopyforge/canopyforge/internal/application/design"
	"github.com/canopyforge/canopyforge/internal/config"
	"github.com/canopyforge/canopyforge/internal/infrastructure/monitoring/logging"
	"github.com/canopyforge/canopyforge/internal/infrastructure/monitoring/prometheus"
	httpserver "github.com/canopyforge/canopyforge/internal/interfaces/http"
	"github.com/canopyforge/canopyforge/internal/interfaces/http/handlers"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "canopyd: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "canopyd: logger initialization failed: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting canopyd",
		logging.String("version", version),
		logging.Int("port", cfg.Server.Port),
		logging.String("output_dir", cfg.Output.Dir))

	collector := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace:            "canopyforge",
		EnableProcessMetrics: true,
		EnableGoMetrics:      true,
	}, logger)
	metrics := prometheus.NewAppMetrics(collector)

	svc := design.NewService(*cfg, logger, metrics)
	router := httpserver.NewRouter(httpserver.RouterConfig{
		DesignHandler:    handlers.NewDesignHandler(svc),
		HealthHandler:    handlers.NewHealthHandler(version),
		Logger:           logger,
		Metrics:          metrics,
		MetricsCollector: collector,
		Mode:             cfg.Server.Mode,
	})
	srv := httpserver.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("http server failed", logging.Err(err))
		}
	case sig := <-quit:
		logger.Info("received signal", logging.String("signal", sig.String()))
		if err := srv.Stop(context.Background()); err != nil {
			logger.Error("shutdown failed", logging.Err(err))
			os.Exit(1)
		}
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	for _, p := range []string{"./canopyforge.yaml", "configs/canopyforge.yaml"} {
		if _, err := os.Stat(p); err == nil {
			return config.Load(p)
		}
	}
	return config.LoadFromEnv()
}
