package service

import (
	"context"
	"time"

	"github.com/vasco-fernandes21/starsoftflow/internal/allocation"
	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
)

// DraftSummary is one row in the resume-a-draft listing.
type DraftSummary struct {
	ID        string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DraftService interface {
	// Save persists the aggregate under the given draft id, creating the
	// draft when id is empty. The in-memory aggregate is untouched either
	// way; on error the caller simply keeps working with it.
	Save(ctx context.Context, id, title string, p *domain.Project) (string, error)
	Restore(ctx context.Context, id string) (*domain.Project, string, error)
	List(ctx context.Context) ([]DraftSummary, error)
	Delete(ctx context.Context, id string) error
}

// ValidationOutcome reports what a validation decision did to the project.
type ValidationOutcome struct {
	ProjectID      string
	State          domain.ProjectState
	ProjectRemains bool
}

type SubmissionService interface {
	// Submit persists the draft as a pending project. Incomplete phases
	// block submission with a *phase.IncompleteError.
	Submit(ctx context.Context, p *domain.Project) (string, error)

	// Validate approves or rejects a pending project. Approval captures
	// the immutable snapshot and publishes its allocations to the
	// submitted feeds; rejection deletes the project outright.
	Validate(ctx context.Context, id string, approve bool) (*ValidationOutcome, error)

	Get(ctx context.Context, id string) (*domain.Project, error)
	Snapshot(ctx context.Context, id string) (*domain.ApprovedSnapshot, error)
}

// AllocationOverview is everything the allocations screen needs for one
// user: both committed feeds plus the years worth offering in the filter.
type AllocationOverview struct {
	Real           []allocation.Record
	Submitted      []allocation.Record
	AvailableYears []int
}

type AllocationService interface {
	GetAllocations(ctx context.Context, userID string, year int) (*AllocationOverview, error)

	// SaveStaged commits a reconciler's pending edits to the user's real
	// feed. The submitted feed is never written here.
	SaveStaged(ctx context.Context, userID string, rec *allocation.Reconciler) error
}
