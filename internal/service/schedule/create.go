package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/unwind-backend/internal/domain"
	"github.com/heartmarshall/unwind-backend/pkg/ctxutil"
)

// Create stores a new schedule for the caller. Creation is idempotent by
// client id: a repeated request returns the stored schedule unchanged.
// A client id owned by another user yields ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, input CreateInput) (*CreateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = domain.NormalizeName(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}
	clientID := input.clientID()

	existing, err := s.lookupClientID(ctx, userID, clientID)
	if err != nil {
		return nil, fmt.Errorf("schedule.Create: %w", err)
	}
	if existing != nil {
		s.log.InfoContext(ctx, "schedule create replayed",
			slog.String("user_id", userID.String()),
			slog.String("schedule_id", existing.ID.String()))
		return &CreateResult{Schedule: existing}, nil
	}

	now := s.now().UTC()
	created, err := s.schedules.Create(ctx, &domain.Schedule{
		ID:        uuid.New(),
		ClientID:  clientID,
		UserID:    userID,
		Name:      input.Name,
		Duration:  input.Duration,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("schedule.Create: %w", err)
		}

		// Lost a race with a concurrent request carrying the same client id.
		winner, lookupErr := s.lookupClientID(ctx, userID, clientID)
		if lookupErr != nil {
			return nil, fmt.Errorf("schedule.Create: %w", lookupErr)
		}
		if winner == nil {
			return nil, fmt.Errorf("schedule.Create: %w", err)
		}
		return &CreateResult{Schedule: winner}, nil
	}

	s.log.InfoContext(ctx, "schedule created",
		slog.String("user_id", userID.String()),
		slog.String("schedule_id", created.ID.String()))

	return &CreateResult{Schedule: created, Created: true}, nil
}

// lookupClientID returns the caller's schedule with clientID, nil when none
// exists, or ErrAlreadyExists when another user owns it.
func (s *Service) lookupClientID(ctx context.Context, userID, clientID uuid.UUID) (*domain.Schedule, error) {
	existing, err := s.schedules.GetByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get by client id: %w", err)
	}
	if existing.UserID != userID {
		s.log.WarnContext(ctx, "client id owned by another user",
			slog.String("user_id", userID.String()),
			slog.String("client_id", clientID.String()))
		return nil, fmt.Errorf("client id %s: %w", clientID, domain.ErrAlreadyExists)
	}
	return existing, nil
}
