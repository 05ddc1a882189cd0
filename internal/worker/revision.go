package worker

import (
	"context"
	"fmt"
	"pkgadmin/internal/packages"
	"pkgadmin/pkg/logger"
	"pkgadmin/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// RevisionWorker appends the change described by a packages.RevisionJobArgs
// to the package config history. Failed inserts are retried by River up to the
// job's MaxAttempts.
type RevisionWorker struct {
	river.WorkerDefaults[packages.RevisionJobArgs]

	storage storage.RevisionStorage
}

func NewRevisionWorker(storage storage.RevisionStorage) *RevisionWorker {
	return &RevisionWorker{storage: storage}
}

func (r *RevisionWorker) Work(ctx context.Context, job *river.Job[packages.RevisionJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("packageID", string(job.Args.PackageID)),
		zap.String("action", string(job.Args.Action)))

	rev := job.Args.Revision()
	if !job.CreatedAt.IsZero() {
		rev.CreatedAt = job.CreatedAt
	}

	if _, err := r.storage.StoreRevision(ctx, rev); err != nil {
		logger.Error(ctx, "could not record package revision", zap.Error(err))

		return fmt.Errorf("could not store revision: %w", err)
	}

	logger.Debug(ctx, "package revision recorded")

	return nil
}
