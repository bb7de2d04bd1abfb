package schedule

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/unwind-backend/internal/domain"
	"github.com/heartmarshall/unwind-backend/pkg/validation"
)

// CreateInput holds parameters for creating a schedule.
type CreateInput struct {
	ClientID string `field:"clientId" validate:"required,uuid"`
	Name     string `field:"name"     validate:"required,max=100"`
	Duration int    `field:"duration" validate:"gte=1,lte=480"`
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	return validation.Struct(i)
}

func (i CreateInput) clientID() uuid.UUID {
	// Validate guarantees the format.
	return uuid.MustParse(i.ClientID)
}

// UpdateInput holds parameters for updating a schedule.
type UpdateInput struct {
	ID       uuid.UUID `field:"id"       validate:"required"`
	Name     string    `field:"name"     validate:"required,max=100"`
	Duration int       `field:"duration" validate:"gte=1,lte=480"`
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	return validation.Struct(i)
}

// CreateResult is the outcome of Create. Created is false when an existing
// schedule with the same client id was returned.
type CreateResult struct {
	Schedule *domain.Schedule
	Created  bool
}
