package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/unwind-backend/internal/domain"
	"github.com/heartmarshall/unwind-backend/pkg/ctxutil"
)

// Update changes name and duration of one of the caller's active schedules.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Schedule, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = domain.NormalizeName(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Schedule
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkOwner(txCtx, userID, input.ID); err != nil {
			return err
		}

		var err error
		updated, err = s.schedules.Update(txCtx, input.ID, input.Name, input.Duration)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("schedule.Update: %w", err)
	}

	s.log.InfoContext(ctx, "schedule updated",
		slog.String("user_id", userID.String()),
		slog.String("schedule_id", input.ID.String()))

	return updated, nil
}

// Delete soft-deletes one of the caller's active schedules.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkOwner(txCtx, userID, id); err != nil {
			return err
		}
		return s.schedules.SoftDelete(txCtx, id)
	})
	if err != nil {
		return fmt.Errorf("schedule.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "schedule deleted",
		slog.String("user_id", userID.String()),
		slog.String("schedule_id", id.String()))

	return nil
}

func (s *Service) checkOwner(ctx context.Context, userID, id uuid.UUID) error {
	current, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.UserID != userID {
		s.log.WarnContext(ctx, "schedule access denied",
			slog.String("user_id", userID.String()),
			slog.String("schedule_id", id.String()))
		return domain.ErrForbidden
	}
	return nil
}
