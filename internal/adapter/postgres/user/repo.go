// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/unwind-backend/internal/adapter/postgres"
	"github.com/heartmarshall/unwind-backend/internal/domain"
)

const userColumns = `id, email, password_hash, role, created_at, updated_at`

const (
	sqlGetByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	sqlGetByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	sqlCreate = `
		INSERT INTO users (id, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	sqlUpdateRole = `
		UPDATE users SET role = $2, updated_at = now()
		WHERE email = $1
		RETURNING ` + userColumns

	sqlExists = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, sqlGetByID, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by (normalized) email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, sqlGetByEmail, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// Exists reports whether a user with the given id exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var ok bool
	if err := q.QueryRow(ctx, sqlExists, id).Scan(&ok); err != nil {
		return false, postgres.MapError(err, "user", id)
	}
	return ok, nil
}

// Create inserts a new user. A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanUser(q.QueryRow(ctx, sqlCreate,
		u.ID, u.Email, u.PasswordHash, string(u.Role), u.CreatedAt, u.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// UpdateRole sets the role of the user with the given email.
func (r *Repo) UpdateRole(ctx context.Context, email string, role domain.UserRole) (*domain.User, error) {
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "unknown role")
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, sqlUpdateRole, email, string(role)))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	if !u.Role.IsValid() {
		return nil, fmt.Errorf("user %s: unknown role %q", u.ID, role)
	}
	return &u, nil
}
