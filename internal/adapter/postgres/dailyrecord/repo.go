// Package dailyrecord implements the per-day statistics store using PostgreSQL.
package dailyrecord

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

const recordColumns = `id, user_id, date, total_schedules, completed_schedules, total_focus_time,
	force_quit_count, all_in_mode_used, status, created_at, updated_at`

const (
	sqlGetByDate = `
		SELECT ` + recordColumns + `
		FROM daily_records
		WHERE user_id = $1 AND date = $2`

	// The insert is a no-op when the row exists; the follow-up select
	// takes the row lock either way.
	sqlEnsure = `
		INSERT INTO daily_records (user_id, date, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, date) DO NOTHING`

	sqlLockByDate = `
		SELECT ` + recordColumns + `
		FROM daily_records
		WHERE user_id = $1 AND date = $2
		FOR UPDATE`

	sqlSave = `
		UPDATE daily_records
		SET total_schedules     = $2,
		    completed_schedules = $3,
		    total_focus_time    = $4,
		    force_quit_count    = $5,
		    all_in_mode_used    = $6,
		    status              = $7,
		    updated_at          = now()
		WHERE id = $1
		RETURNING ` + recordColumns
)

// Repo provides daily record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new daily record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByDate returns the record of the given day. A day without activity
// yields domain.ErrNotFound.
func (r *Repo) GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanRecord(q.QueryRow(ctx, sqlGetByDate, userID, domain.CivilDate(date)))
	if err != nil {
		return nil, postgres.MapError(err, "daily record", recordKey(userID, date))
	}
	return rec, nil
}

// GetOrCreateForUpdate returns the day's record, creating a zero-valued
// IN_PROGRESS row if none exists, and holds its row lock until the
// surrounding transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetOrCreateForUpdate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyRecord, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("daily record %s: lock requires a transaction", recordKey(userID, date))
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	day := domain.CivilDate(date)

	if _, err := q.Exec(ctx, sqlEnsure, userID, day, string(domain.DailyStatusInProgress)); err != nil {
		return nil, postgres.MapError(err, "daily record", recordKey(userID, date))
	}

	rec, err := scanRecord(q.QueryRow(ctx, sqlLockByDate, userID, day))
	if err != nil {
		return nil, postgres.MapError(err, "daily record", recordKey(userID, date))
	}
	return rec, nil
}

// Save writes counters and status of an existing record.
func (r *Repo) Save(ctx context.Context, rec *domain.DailyRecord) (*domain.DailyRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	saved, err := scanRecord(q.QueryRow(ctx, sqlSave,
		rec.ID, rec.TotalSchedules, rec.CompletedSchedules, rec.TotalFocusTime,
		rec.ForceQuitCount, rec.AllInModeUsed, string(rec.Status),
	))
	if err != nil {
		return nil, postgres.MapError(err, "daily record", recordKey(rec.UserID, rec.Date))
	}
	return saved, nil
}

// ListRange returns the user's records with from <= date <= to, newest first.
func (r *Repo) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyRecord, error) {
	query := selectRecords(userID).
		Where(sq.GtOrEq{"date": domain.CivilDate(from)}).
		Where(sq.LtOrEq{"date": domain.CivilDate(to)})

	return r.list(ctx, query, userID)
}

// ListUpTo returns every record of the user on or before today, newest first.
func (r *Repo) ListUpTo(ctx context.Context, userID uuid.UUID, today time.Time) ([]domain.DailyRecord, error) {
	query := selectRecords(userID).
		Where(sq.LtOrEq{"date": domain.CivilDate(today)})

	return r.list(ctx, query, userID)
}

func selectRecords(userID uuid.UUID) sq.SelectBuilder {
	return postgres.Builder.
		Select(recordColumns).
		From("daily_records").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC")
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder, userID uuid.UUID) ([]domain.DailyRecord, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build daily record query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, postgres.MapError(err, "daily records of user", userID)
	}
	defer rows.Close()

	result := make([]domain.DailyRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan daily record: %w", err)
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily records: %w", err)
	}

	return result, nil
}

func scanRecord(row pgx.Row) (*domain.DailyRecord, error) {
	var (
		rec    domain.DailyRecord
		status string
	)
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Date,
		&rec.TotalSchedules, &rec.CompletedSchedules, &rec.TotalFocusTime,
		&rec.ForceQuitCount, &rec.AllInModeUsed, &status,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Date = domain.CivilDate(rec.Date)
	rec.Status = domain.DailyStatus(status)
	if !rec.Status.IsValid() {
		return nil, fmt.Errorf("daily record %s: unknown status %q", rec.ID, status)
	}
	return &rec, nil
}

func recordKey(userID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("user=%s date=%s", userID, domain.DateKey(date))
}
