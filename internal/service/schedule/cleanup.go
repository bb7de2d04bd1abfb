package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/unwind-backend/internal/domain"
)

// HardDeleteOld permanently removes schedules soft-deleted more than
// retentionDays ago. Returns the number of rows removed.
func (s *Service) HardDeleteOld(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, domain.NewValidationError("retention_days", "must be positive")
	}

	threshold := s.now().UTC().AddDate(0, 0, -retentionDays)

	count, err := s.schedules.HardDeleteOld(ctx, threshold)
	if err != nil {
		s.log.ErrorContext(ctx, "schedule cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("schedule.HardDeleteOld: %w", err)
	}

	s.log.InfoContext(ctx, "purged deleted schedules",
		slog.Int64("count", count),
		slog.Time("threshold", threshold))

	return count, nil
}
