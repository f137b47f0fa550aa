package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vasco-fernandes21/starsoftflow/internal/allocation"
	"github.com/vasco-fernandes21/starsoftflow/internal/repository"
)

type allocationService struct {
	allocations repository.AllocationRepo
	log         zerolog.Logger
}

func NewAllocationService(allocations repository.AllocationRepo, log zerolog.Logger) AllocationService {
	return &allocationService{allocations: allocations, log: log}
}

func (s *allocationService) GetAllocations(ctx context.Context, userID string, year int) (*AllocationOverview, error) {
	real, err := s.allocations.ListReal(ctx, userID, year)
	if err != nil {
		return nil, fmt.Errorf("listing real allocations: %w", err)
	}
	submitted, err := s.allocations.ListSubmitted(ctx, userID, year)
	if err != nil {
		return nil, fmt.Errorf("listing submitted allocations: %w", err)
	}
	years, err := s.allocations.AvailableYears(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing available years: %w", err)
	}
	return &AllocationOverview{
		Real:           real,
		Submitted:      submitted,
		AvailableYears: years,
	}, nil
}

func (s *allocationService) SaveStaged(ctx context.Context, userID string, rec *allocation.Reconciler) error {
	if !rec.HasStaged() {
		return nil
	}
	records := rec.Commit()
	if err := s.allocations.ReplaceReal(ctx, userID, records); err != nil {
		return fmt.Errorf("saving staged allocations: %w", err)
	}
	s.log.Info().Str("user_id", userID).Int("records", len(records)).Msg("staged allocations saved")
	return nil
}
