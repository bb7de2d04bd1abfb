package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that owns schedules and daily records.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
