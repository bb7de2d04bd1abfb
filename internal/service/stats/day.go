package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heartmarshall/unwind-backend/internal/domain"
	"github.com/heartmarshall/unwind-backend/pkg/ctxutil"
)

// GetDay returns the caller's record for date. A day without any activity
// yields an unsaved zero record with status NO_PLAN.
func (s *Service) GetDay(ctx context.Context, date time.Time) (*domain.DailyRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if date.IsZero() {
		return nil, domain.NewValidationError("date", "required")
	}

	rec, err := s.records.GetByDate(ctx, userID, domain.CivilDate(date))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			empty := domain.NewDailyRecord(userID, date)
			empty.Status = domain.DailyStatusNoPlan
			return &empty, nil
		}
		return nil, fmt.Errorf("stats.GetDay: %w", err)
	}
	return rec, nil
}
