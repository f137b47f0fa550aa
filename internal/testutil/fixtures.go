package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vasco-fernandes21/starsoftflow/internal/allocation"
	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
)

// Project options
type ProjectOption func(*domain.Project)

func WithProjectState(s domain.ProjectState) ProjectOption {
	return func(p *domain.Project) {
		p.State = s
	}
}

func WithPeriod(start, end time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = &start
		p.EndDate = &end
	}
}

func WithFinance(overhead, fundingRate, hourlyRate, fundingSourceID string) ProjectOption {
	return func(p *domain.Project) {
		o := decimal.RequireFromString(overhead)
		f := decimal.RequireFromString(fundingRate)
		h := decimal.RequireFromString(hourlyRate)
		p.Overhead = &o
		p.FundingRate = &f
		p.HourlyRate = &h
		p.FundingSourceID = &fundingSourceID
	}
}

func WithWorkPackages(wps ...domain.WorkPackage) ProjectOption {
	return func(p *domain.Project) {
		p.WorkPackages = append(p.WorkPackages, wps...)
	}
}

// NewTestProject builds a draft project with a valid one-year period.
func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		StartDate: &start,
		EndDate:   &end,
		State:     domain.ProjectDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestWorkPackage builds a work package with empty collections.
func NewTestWorkPackage(name string) domain.WorkPackage {
	return domain.WorkPackage{
		ID:          uuid.New().String(),
		Name:        name,
		Tasks:       []domain.Task{},
		Materials:   []domain.Material{},
		Allocations: []domain.ResourceAllocation{},
	}
}

// NewTestAllocation builds one occupancy tuple.
func NewTestAllocation(userID string, month, year int, occupancy string) domain.ResourceAllocation {
	return domain.ResourceAllocation{
		UserID:    userID,
		Month:     month,
		Year:      year,
		Occupancy: decimal.RequireFromString(occupancy),
	}
}

// NewTestRecord builds one committed allocation feed record.
func NewTestRecord(projectID, wpID string, month, year int, occupancy string) allocation.Record {
	return allocation.Record{
		Year:      year,
		Month:     month,
		Occupancy: decimal.RequireFromString(occupancy),
		WorkPackage: allocation.WorkPackageRef{
			ID:   wpID,
			Name: "WP " + wpID,
		},
		Project: allocation.ProjectRef{
			ID:    projectID,
			Name:  "Project " + projectID,
			State: domain.ProjectApproved,
		},
	}
}

// ReadyProject builds a project that satisfies every workflow phase.
func ReadyProject(name string) *domain.Project {
	wp := NewTestWorkPackage("WP1")
	wp.Allocations = []domain.ResourceAllocation{NewTestAllocation("u1", 1, time.Now().UTC().Year(), "0.5")}
	return NewTestProject(name,
		WithFinance("0.2", "0.85", "30.5", "fs1"),
		WithWorkPackages(wp),
	)
}
