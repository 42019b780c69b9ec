package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/han-ian/tidis/internal/app"
	"github.com/han-ian/tidis/internal/attribute"
	"github.com/han-ian/tidis/internal/config"
	"github.com/han-ian/tidis/internal/logger"
	"github.com/han-ian/tidis/internal/metrics"
	"github.com/han-ian/tidis/internal/router"
	"github.com/han-ian/tidis/internal/service"
	"github.com/han-ian/tidis/internal/storage"
)

var version = "dev"

const shutdownTimeout = 5 * time.Second

func main() {
	cliApp := &cli.App{
		Name:    "tidis",
		Usage:   "Redis protocol server over a partitioned transactional store",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML configuration file",
				EnvVars: []string{"TIDIS_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address, overrides server.address",
			},
			&cli.StringFlag{
				Name:  "data-dir",
				Usage: "storage directory, overrides storage.data_dir",
			},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))

	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if c.IsSet("addr") {
		cfg.Server.Address = c.String("addr")
	}

	if c.IsSet("data-dir") {
		cfg.Storage.DataDir = c.String("data-dir")
	}

	if err = cfg.Validate(); err != nil {
		return err
	}

	if !logger.SetLevel(cfg.Log.Level) {
		logger.Warn("unknown log level, keeping current", "level", cfg.Log.Level, "current", logger.Level())
	}

	registry, err := attribute.Default()

	if err != nil {
		logger.Fatal("command table", "error", err)
	}

	store, err := storage.NewClient(cfg.Storage.DataDir, storage.WithRegistry(registry))

	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.Close()

	recorder := metrics.NewRecorder()
	pool := service.NewPool(registry, store, router.New(cfg.Router.Tables), recorder)
	server := app.NewServer(pool)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	metricsServer := serveMetrics(cfg.Metrics.Address, recorder)

	logger.Info("starting tidis",
		"version", version,
		"commands", registry.Len(),
		"tables", cfg.Router.Tables,
		"data_dir", cfg.Storage.DataDir)

	errs := make(chan error, 1)

	go func() {
		errs <- server.Start(app.Config{Address: cfg.Server.Address})
	}()

	select {
	case err = <-errs:
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	server.Close()
	shutdownMetrics(metricsServer)

	return err
}

func serveMetrics(address string, recorder *metrics.Recorder) *http.Server {
	if address == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", recorder.Handler())

	server := &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: shutdownTimeout,
	}

	go func() {
		logger.Info("metrics listening", "address", address)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	return server
}

func shutdownMetrics(server *http.Server) {
	if server == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("metrics shutdown", "error", err)
	}
}
