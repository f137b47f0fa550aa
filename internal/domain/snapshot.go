package domain

import "time"

// ApprovedSnapshot is the structural copy of a project captured when it is
// approved. It is never mutated after creation and coexists with the live
// project under the same external identity.
type ApprovedSnapshot struct {
	ProjectID  string
	ApprovedAt time.Time
	Project    Project
}
