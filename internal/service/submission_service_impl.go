package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vasco-fernandes21/starsoftflow/internal/allocation"
	"github.com/vasco-fernandes21/starsoftflow/internal/codec"
	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
	"github.com/vasco-fernandes21/starsoftflow/internal/draft"
	"github.com/vasco-fernandes21/starsoftflow/internal/phase"
	"github.com/vasco-fernandes21/starsoftflow/internal/repository"
)

type submissionService struct {
	projects    repository.ProjectRepo
	allocations repository.AllocationRepo
	log         zerolog.Logger
}

func NewSubmissionService(projects repository.ProjectRepo, allocations repository.AllocationRepo, log zerolog.Logger) SubmissionService {
	return &submissionService{projects: projects, allocations: allocations, log: log}
}

func (s *submissionService) Submit(ctx context.Context, p *domain.Project) (string, error) {
	c := phase.Evaluate(p)
	if !c.Summary {
		return "", &phase.IncompleteError{Phases: c.Incomplete()}
	}

	now := time.Now().UTC()
	submitted := *p
	if submitted.ID == "" {
		submitted.ID = draft.NewEntityID()
	}
	submitted.State = domain.ProjectPending
	if submitted.CreatedAt.IsZero() {
		submitted.CreatedAt = now
	}
	submitted.UpdatedAt = now

	content, err := codec.Encode(&submitted)
	if err != nil {
		return "", fmt.Errorf("encoding project: %w", err)
	}
	rec := &repository.ProjectRecord{
		ID:          submitted.ID,
		Name:        submitted.Name,
		State:       string(submitted.State),
		Content:     content,
		SubmittedAt: now,
		UpdatedAt:   now,
	}
	if err := s.projects.Create(ctx, rec); err != nil {
		return "", fmt.Errorf("persisting submission: %w", err)
	}
	s.log.Info().Str("project_id", submitted.ID).Str("name", submitted.Name).Msg("project submitted")
	return submitted.ID, nil
}

func (s *submissionService) Validate(ctx context.Context, id string, approve bool) (*ValidationOutcome, error) {
	rec, err := s.projects.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.State != string(domain.ProjectPending) {
		return nil, fmt.Errorf("project %q in state %s: %w", id, rec.State, ErrNotPending)
	}

	if !approve {
		if err := s.projects.Delete(ctx, id); err != nil {
			return nil, fmt.Errorf("deleting rejected project: %w", err)
		}
		s.log.Info().Str("project_id", id).Msg("project rejected")
		return &ValidationOutcome{
			ProjectID:      id,
			State:          domain.ProjectRejected,
			ProjectRemains: false,
		}, nil
	}

	p, err := codec.Decode(rec.Content)
	if err != nil {
		return nil, fmt.Errorf("decoding project %q: %w", id, err)
	}
	p.State = domain.ProjectApproved

	snap := &domain.ApprovedSnapshot{
		ProjectID:  id,
		ApprovedAt: time.Now().UTC(),
		Project:    *p,
	}
	snapContent, err := codec.EncodeSnapshot(snap)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := s.projects.SaveSnapshot(ctx, &repository.SnapshotRecord{
		ProjectID:  id,
		ApprovedAt: snap.ApprovedAt,
		Content:    snapContent,
	}); err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}
	if err := s.projects.UpdateState(ctx, id, string(domain.ProjectApproved)); err != nil {
		return nil, fmt.Errorf("approving project: %w", err)
	}
	if err := s.publishSubmittedFeed(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info().Str("project_id", id).Msg("project approved")
	return &ValidationOutcome{
		ProjectID:      id,
		State:          domain.ProjectApproved,
		ProjectRemains: true,
	}, nil
}

// publishSubmittedFeed copies the approved project's allocations into each
// user's submitted feed, where they stay fixed until the next approval.
func (s *submissionService) publishSubmittedFeed(ctx context.Context, p *domain.Project) error {
	byUser := make(map[string][]allocation.Record)
	var users []string
	for i := range p.WorkPackages {
		wp := &p.WorkPackages[i]
		for _, a := range wp.Allocations {
			if _, seen := byUser[a.UserID]; !seen {
				users = append(users, a.UserID)
			}
			byUser[a.UserID] = append(byUser[a.UserID], allocation.Record{
				Year:        a.Year,
				Month:       a.Month,
				Occupancy:   a.Occupancy,
				WorkPackage: allocation.WorkPackageRef{ID: wp.ID, Name: wp.Name},
				Project:     allocation.ProjectRef{ID: p.ID, Name: p.Name, State: p.State},
			})
		}
	}
	for _, userID := range users {
		if err := s.allocations.ReplaceSubmitted(ctx, userID, byUser[userID]); err != nil {
			return fmt.Errorf("publishing submitted allocations for %q: %w", userID, err)
		}
	}
	return nil
}

func (s *submissionService) Get(ctx context.Context, id string) (*domain.Project, error) {
	rec, err := s.projects.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := codec.Decode(rec.Content)
	if err != nil {
		return nil, fmt.Errorf("decoding project %q: %w", id, err)
	}
	// The stored content predates state transitions; the row is the truth.
	p.State = domain.ProjectState(rec.State)
	return p, nil
}

func (s *submissionService) Snapshot(ctx context.Context, id string) (*domain.ApprovedSnapshot, error) {
	rec, err := s.projects.GetSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	snap, err := codec.DecodeSnapshot(rec.Content)
	if err != nil {
		return nil, fmt.Errorf("decoding snapshot for %q: %w", id, err)
	}
	return snap, nil
}
