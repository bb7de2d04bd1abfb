// Package schedule implements focus schedule management and client sync.
package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/unwind-backend/internal/domain"
)

type scheduleRepo interface {
	Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Schedule, error)
	GetByClientID(ctx context.Context, clientID uuid.UUID) (*domain.Schedule, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]domain.Schedule, error)
	ListUpdatedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.Schedule, error)
	Update(ctx context.Context, id uuid.UUID, name string, duration int) (*domain.Schedule, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	HardDeleteOld(ctx context.Context, threshold time.Time) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements schedule business logic.
type Service struct {
	log       *slog.Logger
	schedules scheduleRepo
	tx        txManager
	now       func() time.Time
}

// NewService creates a new schedule service.
func NewService(logger *slog.Logger, schedules scheduleRepo, tx txManager) *Service {
	return &Service{
		log:       logger.With("service", "schedule"),
		schedules: schedules,
		tx:        tx,
		now:       time.Now,
	}
}
