package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/unwind-backend/internal/adapter/postgres"
	schedulerepo "github.com/heartmarshall/unwind-backend/internal/adapter/postgres/schedule"
	userrepo "github.com/heartmarshall/unwind-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/unwind-backend/internal/app"
	"github.com/heartmarshall/unwind-backend/internal/config"
	"github.com/heartmarshall/unwind-backend/internal/domain"
	schedulesvc "github.com/heartmarshall/unwind-backend/internal/service/schedule"
)

// env is shared by every command: loaded config, logger and a database pool.
type env struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    *config.Config
	log    *slog.Logger
	pool   *pgxpool.Pool
}

func newEnv(timeout time.Duration) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return &env{ctx: ctx, cancel: cancel, cfg: cfg, log: logger, pool: pool}, nil
}

func (e *env) close() {
	e.pool.Close()
	e.cancel()
}

func (e *env) migrator() (*postgres.Migrator, error) {
	return postgres.NewMigrator(e.pool)
}

// MigrateUpCmd applies pending migrations.
type MigrateUpCmd struct{}

func (c *MigrateUpCmd) Run(e *env) error {
	m, err := e.migrator()
	if err != nil {
		return err
	}
	defer m.Close()

	n, err := m.Up(e.ctx)
	if err != nil {
		return err
	}
	e.log.Info("migrations applied", slog.Int("count", n))
	return nil
}

// MigrateDownCmd rolls back one migration.
type MigrateDownCmd struct{}

func (c *MigrateDownCmd) Run(e *env) error {
	m, err := e.migrator()
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(e.ctx); err != nil {
		return err
	}
	e.log.Info("rolled back one migration")
	return nil
}

// MigrateStatusCmd prints the migration table.
type MigrateStatusCmd struct{}

func (c *MigrateStatusCmd) Run(e *env) error {
	m, err := e.migrator()
	if err != nil {
		return err
	}
	defer m.Close()

	list, err := m.Status(e.ctx)
	if err != nil {
		return err
	}

	for _, s := range list {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Printf("%-6d %-8s %s\n", s.Version, state, s.Source)
	}
	return nil
}

// CleanupCmd purges old soft-deleted schedules. It is meant to be run from
// an external scheduler such as cron.
type CleanupCmd struct {
	RetentionDays int `help:"Override schedule.hard_delete_retention_days." default:"0"`
}

func (c *CleanupCmd) Run(e *env) error {
	days := c.RetentionDays
	if days == 0 {
		days = e.cfg.Schedule.HardDeleteRetentionDays
	}

	svc := schedulesvc.NewService(e.log, schedulerepo.New(e.pool), postgres.NewTxManager(e.pool))

	deleted, err := svc.HardDeleteOld(e.ctx, days)
	if err != nil {
		return err
	}
	fmt.Printf("Removed %d schedule(s) deleted more than %d day(s) ago.\n", deleted, days)
	return nil
}

// PromoteCmd grants the admin role. It bootstraps the first admin.
type PromoteCmd struct {
	Email string `help:"Email of the user to promote." required:""`
}

func (c *PromoteCmd) Run(e *env) error {
	email := domain.NormalizeEmail(c.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email %q", c.Email)
	}

	users := userrepo.New(e.pool)

	current, err := users.GetByEmail(e.ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no user with email %q", email)
	}
	if err != nil {
		return err
	}
	if current.Role.IsAdmin() {
		return fmt.Errorf("user %q is already admin", email)
	}

	u, err := users.UpdateRole(e.ctx, email, domain.UserRoleAdmin)
	if err != nil {
		return err
	}

	e.log.Info("user promoted", slog.String("user_id", u.ID.String()), slog.String("email", u.Email))
	fmt.Printf("User %q promoted to admin.\n", u.Email)
	return nil
}
