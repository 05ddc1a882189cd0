package domain

import "time"

// RevisionAction describes the kind of change recorded by a Revision.
type RevisionAction string

const (
	// RevisionActionCreate records the creation of a package.
	RevisionActionCreate RevisionAction = "create"
	// RevisionActionUpdate records an update of a package.
	RevisionActionUpdate RevisionAction = "update"
	// RevisionActionDelete records the deletion of a package.
	RevisionActionDelete RevisionAction = "delete"
)

// Revision is an entry of the package config history: who changed which
// package, how, and what the package fingerprint was afterwards.
type Revision struct {
	ID          int64
	PackageID   PackageID
	PackageName string
	Action      RevisionAction
	Actor       string
	// Fingerprint of the package after the change. Empty for deletions.
	Fingerprint string
	CreatedAt   time.Time
}
