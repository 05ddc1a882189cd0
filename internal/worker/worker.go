// Package worker runs the River client that works background jobs enqueued by
// the package configuration service.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"pkgadmin/internal/config"
	"pkgadmin/pkg/logger"
	"pkgadmin/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

const defaultMaxWorkers = 100

// Options configure the River client.
type Options struct {
	// MaxWorkers is the number of jobs of the default queue worked concurrently.
	MaxWorkers int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers: cfg.Worker.MaxWorkers,
	}
}

// Workers registers every worker of the application.
func Workers(revisions storage.RevisionStorage) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewRevisionWorker(revisions))

	return workers
}

// Start creates and starts a River client working the default queue. The
// caller stops it with Stop once it is done.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	revisions storage.RevisionStorage,
	options Options) (*river.Client[pgx.Tx], error) {
	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = defaultMaxWorkers
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: Workers(revisions),
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
