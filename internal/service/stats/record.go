package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/unwind-backend/internal/domain"
	"github.com/heartmarshall/unwind-backend/pkg/ctxutil"
)

// RecordCompletion adds one session to the caller's record for input.Date.
// Each call accumulates; repeating a call counts the session twice.
func (s *Service) RecordCompletion(ctx context.Context, input CompletionInput) (*domain.DailyRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	ev := domain.CompletionEvent{
		Date:      domain.CivilDate(input.Date),
		Completed: *input.Completed,
		FocusTime: input.FocusTime,
		AllInMode: input.AllInMode,
	}

	rec, err := s.mutateDay(ctx, userID, ev.Date, func(r *domain.DailyRecord) {
		r.ApplyCompletion(ev)
	})
	if err != nil {
		return nil, fmt.Errorf("stats.RecordCompletion: %w", err)
	}

	s.log.InfoContext(ctx, "completion recorded",
		slog.String("user_id", userID.String()),
		slog.String("schedule_id", input.ScheduleID),
		slog.String("date", domain.DateKey(rec.Date)),
		slog.String("status", rec.Status.String()),
	)

	return rec, nil
}

// RecordForceQuit marks the home-zone day containing input.Timestamp as
// failed and bumps its force-quit counter.
func (s *Service) RecordForceQuit(ctx context.Context, input ForceQuitInput) (*domain.DailyRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	date := domain.DateIn(input.Timestamp, s.loc)

	rec, err := s.mutateDay(ctx, userID, date, func(r *domain.DailyRecord) {
		r.ApplyForceQuit()
	})
	if err != nil {
		return nil, fmt.Errorf("stats.RecordForceQuit: %w", err)
	}

	s.log.InfoContext(ctx, "force quit recorded",
		slog.String("user_id", userID.String()),
		slog.String("date", domain.DateKey(rec.Date)),
		slog.Int("force_quit_count", rec.ForceQuitCount),
	)

	return rec, nil
}

// mutateDay runs a locked read-modify-write on one (user, date) record.
// Concurrent calls for the same day serialize on the row lock.
func (s *Service) mutateDay(
	ctx context.Context,
	userID uuid.UUID,
	date time.Time,
	apply func(*domain.DailyRecord),
) (*domain.DailyRecord, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}

	var saved *domain.DailyRecord
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := s.records.GetOrCreateForUpdate(txCtx, userID, date)
		if err != nil {
			return fmt.Errorf("lock record: %w", err)
		}

		apply(rec)

		saved, err = s.records.Save(txCtx, rec)
		if err != nil {
			return fmt.Errorf("save record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}
