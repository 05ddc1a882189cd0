package packages

import (
	"pkgadmin/pkg/domain"

	"github.com/riverqueue/river"
)

// RevisionJobArgs describes a change to a package that must be appended to
// the config history. Jobs are inserted in the same transaction as the change.
type RevisionJobArgs struct {
	PackageID   domain.PackageID      `json:"package_id"`
	PackageName string                `json:"package_name"`
	Action      domain.RevisionAction `json:"action"`
	Actor       string                `json:"actor"`
	Fingerprint string                `json:"fingerprint"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the revision worker.
func (args RevisionJobArgs) Kind() string { return "PackageRevisionJob" }

func (args RevisionJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
}

// Revision converts the job payload into a history entry.
func (args RevisionJobArgs) Revision() domain.Revision {
	return domain.Revision{
		PackageID:   args.PackageID,
		PackageName: args.PackageName,
		Action:      args.Action,
		Actor:       args.Actor,
		Fingerprint: args.Fingerprint,
	}
}
