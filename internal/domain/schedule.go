package domain

import (
	"time"

	"github.com/google/uuid"
)

// Schedule bounds.
const (
	ScheduleNameMaxLen      = 100
	ScheduleMinDurationMins = 1
	ScheduleMaxDurationMins = 480
)

// Schedule is a named focus block defined by the user.
// ClientID is generated on the device and makes creation idempotent.
type Schedule struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	UserID    uuid.UUID
	Name      string
	Duration  int // minutes
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// IsDeleted returns true if the schedule has been soft-deleted.
func (s *Schedule) IsDeleted() bool {
	return s.DeletedAt != nil
}
