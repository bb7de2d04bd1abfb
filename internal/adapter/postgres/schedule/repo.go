// Package schedule implements the Schedule repository using PostgreSQL.
package schedule

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/unwind-backend/internal/adapter/postgres"
	"github.com/heartmarshall/unwind-backend/internal/domain"
)

const scheduleColumns = `id, client_id, user_id, name, duration_minutes, created_at, updated_at, deleted_at`

const (
	sqlCreate = `
		INSERT INTO schedules (id, client_id, user_id, name, duration_minutes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + scheduleColumns

	sqlGetActiveByID = `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE id = $1 AND deleted_at IS NULL`

	sqlGetByClientID = `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE client_id = $1`

	sqlUpdate = `
		UPDATE schedules
		SET name = $2, duration_minutes = $3, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + scheduleColumns

	sqlSoftDelete = `
		UPDATE schedules
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`

	sqlHardDeleteOld = `
		DELETE FROM schedules
		WHERE deleted_at IS NOT NULL AND deleted_at < $1`
)

// Repo provides schedule persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new schedule repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a schedule. A reused client id yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanSchedule(q.QueryRow(ctx, sqlCreate,
		s.ID, s.ClientID, s.UserID, s.Name, s.Duration, s.CreatedAt, s.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "schedule", s.ClientID)
	}
	return created, nil
}

// GetByID returns an active (not soft-deleted) schedule.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Schedule, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSchedule(q.QueryRow(ctx, sqlGetActiveByID, id))
	if err != nil {
		return nil, postgres.MapError(err, "schedule", id)
	}
	return s, nil
}

// GetByClientID returns the schedule created with the given client id,
// including soft-deleted ones.
func (r *Repo) GetByClientID(ctx context.Context, clientID uuid.UUID) (*domain.Schedule, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSchedule(q.QueryRow(ctx, sqlGetByClientID, clientID))
	if err != nil {
		return nil, postgres.MapError(err, "schedule", clientID)
	}
	return s, nil
}

// ListActive returns the user's active schedules, newest first.
func (r *Repo) ListActive(ctx context.Context, userID uuid.UUID) ([]domain.Schedule, error) {
	query := selectSchedules().
		Where(sq.Eq{"user_id": userID, "deleted_at": nil}).
		OrderBy("created_at DESC", "id")

	return r.list(ctx, query, userID)
}

// ListUpdatedSince returns every schedule of the user, soft-deleted ones
// included, whose updated_at is strictly after since. Oldest change first.
func (r *Repo) ListUpdatedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.Schedule, error) {
	query := selectSchedules().
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Gt{"updated_at": since}).
		OrderBy("updated_at ASC", "id")

	return r.list(ctx, query, userID)
}

// Update changes name and duration of an active schedule.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name string, duration int) (*domain.Schedule, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSchedule(q.QueryRow(ctx, sqlUpdate, id, name, duration))
	if err != nil {
		return nil, postgres.MapError(err, "schedule", id)
	}
	return s, nil
}

// SoftDelete marks an active schedule as deleted.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, sqlSoftDelete, id)
	if err != nil {
		return postgres.MapError(err, "schedule", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("schedule %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// HardDeleteOld permanently removes schedules soft-deleted before threshold.
func (r *Repo) HardDeleteOld(ctx context.Context, threshold time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, sqlHardDeleteOld, threshold)
	if err != nil {
		return 0, fmt.Errorf("hard delete schedules: %w", err)
	}
	return tag.RowsAffected(), nil
}

func selectSchedules() sq.SelectBuilder {
	return postgres.Builder.Select(scheduleColumns).From("schedules")
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder, userID uuid.UUID) ([]domain.Schedule, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build schedule query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, postgres.MapError(err, "schedules of user", userID)
	}
	defer rows.Close()

	result := make([]domain.Schedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedules: %w", err)
	}

	return result, nil
}

func scanSchedule(row pgx.Row) (*domain.Schedule, error) {
	var s domain.Schedule
	err := row.Scan(&s.ID, &s.ClientID, &s.UserID, &s.Name, &s.Duration, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
