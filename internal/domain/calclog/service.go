package calclog

import (
	"context"

	"github.com/rs/zerolog"
)

type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Log persists a calculation record. Failures are logged and swallowed;
// audit persistence must never fail the calculation it describes.
func (s *Service) Log(ctx context.Context, rec *Record) {
	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Warn().Err(err).
			Str("score_id", rec.ScoreID).
			Str("outcome", rec.Outcome).
			Msg("calculation log write failed")
	}
}

func (s *Service) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Record, int, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.Search(ctx, params, limit, offset)
}
