package domain

import "strings"

// DailyStatus is the classification of one user's calendar day.
type DailyStatus string

const (
	DailyStatusSuccess    DailyStatus = "SUCCESS"
	DailyStatusWarning    DailyStatus = "WARNING"
	DailyStatusFailure    DailyStatus = "FAILURE"
	DailyStatusNoPlan     DailyStatus = "NO_PLAN"
	DailyStatusInProgress DailyStatus = "IN_PROGRESS"
)

func (s DailyStatus) String() string { return string(s) }

func (s DailyStatus) IsValid() bool {
	switch s {
	case DailyStatusSuccess, DailyStatusWarning, DailyStatusFailure,
		DailyStatusNoPlan, DailyStatusInProgress:
		return true
	}
	return false
}

// Label is the lower-case form used in summaries ("success", "in_progress").
func (s DailyStatus) Label() string { return strings.ToLower(string(s)) }

// UserRole represents the access level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

// IsAdmin returns true if the role is admin.
func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }
