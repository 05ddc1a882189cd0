package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend; args
// carries the job payload and opts can customize insertion (queue name,
// delay, priority). The returned bool is false when the insert was skipped
// as a duplicate of a unique job.
//
// When called on a TxStorage the job must only become visible once the
// surrounding transaction commits, so that a job is never worked for a write
// that was rolled back.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
