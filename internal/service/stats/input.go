package stats

import (
	"time"

	"github.com/heartmarshall/unwind-backend/pkg/validation"
)

// CompletionInput reports one finished focus session.
type CompletionInput struct {
	// ScheduleID is the client id of the schedule that ran.
	ScheduleID string    `field:"scheduleId" validate:"required,uuid"`
	Completed  *bool     `field:"completed"  validate:"required"`
	FocusTime  int64     `field:"focusTime"  validate:"gte=0"`
	AllInMode  bool      `field:"allInMode"`
	Date       time.Time `field:"date"       validate:"required"`
}

// Validate validates the completion input.
func (i CompletionInput) Validate() error {
	return validation.Struct(i)
}

// ForceQuitInput reports that the app was killed during a session.
type ForceQuitInput struct {
	Timestamp time.Time `field:"timestamp" validate:"required"`
}

// Validate validates the force-quit input.
func (i ForceQuitInput) Validate() error {
	return validation.Struct(i)
}
