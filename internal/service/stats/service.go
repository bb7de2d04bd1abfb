// Package stats records focus session outcomes per calendar day and derives
// streaks and completion rates from them.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/unwind-backend/internal/domain"
)

type recordRepo interface {
	GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyRecord, error)
	GetOrCreateForUpdate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyRecord, error)
	Save(ctx context.Context, rec *domain.DailyRecord) (*domain.DailyRecord, error)
	ListUpTo(ctx context.Context, userID uuid.UUID, today time.Time) ([]domain.DailyRecord, error)
}

type userRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements daily statistics.
type Service struct {
	log     *slog.Logger
	records recordRepo
	users   userRepo
	tx      txManager
	loc     *time.Location
	now     func() time.Time
}

// NewService creates a new stats service. loc is the home zone used to
// resolve instants into calendar days; nil means UTC.
func NewService(logger *slog.Logger, records recordRepo, users userRepo, tx txManager, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:     logger.With("service", "stats"),
		records: records,
		users:   users,
		tx:      tx,
		loc:     loc,
		now:     time.Now,
	}
}

// today returns the current calendar date in the home zone.
func (s *Service) today() time.Time {
	return domain.DateIn(s.now(), s.loc)
}
