package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/unwind-backend/internal/domain"
	"github.com/heartmarshall/unwind-backend/pkg/ctxutil"
)

// List returns the caller's active schedules, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Schedule, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.schedules.ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("schedule.List: %w", err)
	}
	return items, nil
}

// ListSince returns the caller's schedules changed after lastSync, including
// soft-deleted ones so the client can drop them locally.
func (s *Service) ListSince(ctx context.Context, lastSync time.Time) ([]domain.Schedule, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if lastSync.IsZero() {
		return nil, domain.NewValidationError("since", "required")
	}

	items, err := s.schedules.ListUpdatedSince(ctx, userID, lastSync.UTC())
	if err != nil {
		return nil, fmt.Errorf("schedule.ListSince: %w", err)
	}
	return items, nil
}
