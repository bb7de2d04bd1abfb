package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/unwind-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique email and a dummy password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + uniqueSuffix() + "@example.com",
		PasswordHash: "$2a$04$not-a-real-hash",
		Role:         domain.UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedSchedule inserts an active schedule owned by userID.
func SeedSchedule(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string) domain.Schedule {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.Schedule{
		ID:        uuid.New(),
		ClientID:  uuid.New(),
		UserID:    userID,
		Name:      name,
		Duration:  25,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO schedules (id, client_id, user_id, name, duration_minutes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.ClientID, s.UserID, s.Name, s.Duration, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSchedule: %v", err)
	}

	return s
}

// SeedDailyRecord inserts a daily record with the given counters and status.
func SeedDailyRecord(t *testing.T, pool *pgxpool.Pool, rec domain.DailyRecord) domain.DailyRecord {
	t.Helper()

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.Date = domain.CivilDate(rec.Date)
	if rec.Status == "" {
		rec.Status = domain.DailyStatusInProgress
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO daily_records
		    (id, user_id, date, total_schedules, completed_schedules, total_focus_time,
		     force_quit_count, all_in_mode_used, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID, rec.UserID, rec.Date, rec.TotalSchedules, rec.CompletedSchedules, rec.TotalFocusTime,
		rec.ForceQuitCount, rec.AllInModeUsed, string(rec.Status),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDailyRecord: %v", err)
	}

	return rec
}
