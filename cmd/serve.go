package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"pkgadmin/internal/api"
	"pkgadmin/internal/api/handler/v1handler"
	"pkgadmin/internal/config"
	"pkgadmin/internal/packages"
	"pkgadmin/internal/worker"
	"pkgadmin/pkg/logger"
	"pkgadmin/pkg/plugin"
	"pkgadmin/pkg/plugin/httpplugin"
	"pkgadmin/pkg/storage/postgres"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func getValidator(ctx context.Context, cfg *config.Config) plugin.Validator {
	if cfg.Plugin.BaseURL == "" {
		logger.Warn(ctx, "no plugin endpoint configured, package configuration is not validated by plugins")

		return plugin.Noop{}
	}

	return httpplugin.New(&http.Client{Timeout: cfg.Plugin.Timeout}, cfg.Plugin.BaseURL)
}

func setupServer(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{Deps: v1handler.Deps{
		Packages:     packages.New(strg, getValidator(ctx, cfg), packages.NewOptions(cfg)),
		Repositories: packages.NewRepositoryFinder(strg),
	}}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorker(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) func(ctx context.Context) {
	riverClient, err := worker.Start(ctx, strg.Pool, strg, worker.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not start worker", zap.Error(err))
	}
	logger.Info(ctx, "worker started")

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping worker...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop worker", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			// the worker is stopped gracefully below instead of on signal
			stopWorker := setupWorker(context.WithoutCancel(ctx), cfg, strg)
			stopWebserver := setupServer(ctx, cfg, strg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorker(shutdownCtx)
		},
	}

	return cmd
}
