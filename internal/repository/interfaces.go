package repository

import (
	"context"
	"errors"
	"time"

	"github.com/vasco-fernandes21/starsoftflow/internal/allocation"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// DraftRecord is one named, persisted serialization of an in-progress
// aggregate. Content is the codec's JSON form.
type DraftRecord struct {
	ID        string
	Title     string
	Content   []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProjectRecord is a submitted project as stored at the persistence
// boundary. Content is the codec's JSON form of the full aggregate.
type ProjectRecord struct {
	ID          string
	Name        string
	State       string
	Content     []byte
	SubmittedAt time.Time
	UpdatedAt   time.Time
}

// SnapshotRecord is the stored approved snapshot of a project.
type SnapshotRecord struct {
	ProjectID  string
	ApprovedAt time.Time
	Content    []byte
}

type DraftRepo interface {
	Create(ctx context.Context, d *DraftRecord) error
	Update(ctx context.Context, id, title string, content []byte) error
	Get(ctx context.Context, id string) (*DraftRecord, error)
	List(ctx context.Context) ([]*DraftRecord, error)
	Delete(ctx context.Context, id string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *ProjectRecord) error
	Get(ctx context.Context, id string) (*ProjectRecord, error)
	UpdateState(ctx context.Context, id, state string) error
	Delete(ctx context.Context, id string) error
	SaveSnapshot(ctx context.Context, s *SnapshotRecord) error
	GetSnapshot(ctx context.Context, projectID string) (*SnapshotRecord, error)
}

type AllocationRepo interface {
	// ListReal and ListSubmitted return the committed feeds for one user.
	// A zero year returns every year.
	ListReal(ctx context.Context, userID string, year int) ([]allocation.Record, error)
	ListSubmitted(ctx context.Context, userID string, year int) ([]allocation.Record, error)

	// ReplaceReal upserts the given records into the user's real feed;
	// this is the write path behind saving staged occupancy edits.
	ReplaceReal(ctx context.Context, userID string, records []allocation.Record) error

	// ReplaceSubmitted upserts into the submitted feed. Only the approval
	// flow writes here; a save of staged edits never does.
	ReplaceSubmitted(ctx context.Context, userID string, records []allocation.Record) error

	// AvailableYears lists the distinct years present in either feed.
	AvailableYears(ctx context.Context, userID string) ([]int, error)
}
