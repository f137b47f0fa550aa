package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vasco-fernandes21/starsoftflow/internal/codec"
	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
	"github.com/vasco-fernandes21/starsoftflow/internal/draft"
	"github.com/vasco-fernandes21/starsoftflow/internal/repository"
)

type draftService struct {
	drafts repository.DraftRepo
	log    zerolog.Logger
}

func NewDraftService(drafts repository.DraftRepo, log zerolog.Logger) DraftService {
	return &draftService{drafts: drafts, log: log}
}

func (s *draftService) Save(ctx context.Context, id, title string, p *domain.Project) (string, error) {
	content, err := codec.Encode(p)
	if err != nil {
		return "", fmt.Errorf("encoding draft: %w", err)
	}

	if id == "" {
		now := time.Now().UTC()
		rec := &repository.DraftRecord{
			ID:        draft.NewEntityID(),
			Title:     title,
			Content:   content,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.drafts.Create(ctx, rec); err != nil {
			return "", fmt.Errorf("creating draft: %w", err)
		}
		s.log.Info().Str("draft_id", rec.ID).Str("title", title).Msg("draft created")
		return rec.ID, nil
	}

	if err := s.drafts.Update(ctx, id, title, content); err != nil {
		return "", fmt.Errorf("updating draft: %w", err)
	}
	s.log.Info().Str("draft_id", id).Msg("draft saved")
	return id, nil
}

func (s *draftService) Restore(ctx context.Context, id string) (*domain.Project, string, error) {
	rec, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	p, err := codec.Decode(rec.Content)
	if err != nil {
		return nil, "", fmt.Errorf("decoding draft %q: %w", id, err)
	}
	return p, rec.Title, nil
}

func (s *draftService) List(ctx context.Context) ([]DraftSummary, error) {
	recs, err := s.drafts.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]DraftSummary, 0, len(recs))
	for _, r := range recs {
		out = append(out, DraftSummary{
			ID:        r.ID,
			Title:     r.Title,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return out, nil
}

func (s *draftService) Delete(ctx context.Context, id string) error {
	if err := s.drafts.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("draft_id", id).Msg("draft deleted")
	return nil
}
