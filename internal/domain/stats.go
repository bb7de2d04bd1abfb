package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyRecord is the per-user, per-calendar-day activity aggregate.
// Date is a civil date stored as midnight UTC.
type DailyRecord struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Date               time.Time
	TotalSchedules     int
	CompletedSchedules int
	TotalFocusTime     int64 // seconds
	ForceQuitCount     int
	AllInModeUsed      bool
	Status             DailyStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CompletionEvent is one finished (or abandoned) focus session.
type CompletionEvent struct {
	Date      time.Time
	Completed bool
	FocusTime int64 // seconds
	AllInMode bool
}

// NewDailyRecord returns a zero-counter record for the given day.
func NewDailyRecord(userID uuid.UUID, date time.Time) DailyRecord {
	return DailyRecord{
		UserID: userID,
		Date:   CivilDate(date),
		Status: DailyStatusInProgress,
	}
}

// ApplyCompletion accumulates one session into the record and reclassifies it.
func (r *DailyRecord) ApplyCompletion(ev CompletionEvent) {
	r.TotalSchedules++
	if ev.Completed {
		r.CompletedSchedules++
	}
	r.TotalFocusTime += ev.FocusTime
	if ev.AllInMode {
		r.AllInModeUsed = true
	}
	r.Status = ClassifyDay(r.TotalSchedules, r.CompletedSchedules, r.ForceQuitCount, r.Status)
}

// ApplyForceQuit records a forced exit. The day is FAILURE from here on.
func (r *DailyRecord) ApplyForceQuit() {
	r.ForceQuitCount++
	r.Status = DailyStatusFailure
}

// CompletionRate returns completed/total, or 0 when nothing was scheduled.
func (r DailyRecord) CompletionRate() float64 {
	if r.TotalSchedules == 0 {
		return 0
	}
	return float64(r.CompletedSchedules) / float64(r.TotalSchedules)
}

// ClassifyDay derives the status of a day from its counters.
// When no rule matches, current is returned unchanged.
func ClassifyDay(total, completed, forceQuits int, current DailyStatus) DailyStatus {
	switch {
	case forceQuits > 0:
		return DailyStatusFailure
	case total > 0 && completed == total:
		return DailyStatusSuccess
	case completed > 0:
		return DailyStatusWarning
	default:
		return current
	}
}

// CivilDate truncates t to its calendar date in t's own location and
// returns that date as midnight UTC.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateIn returns the calendar date of instant t as observed in loc.
func DateIn(t time.Time, loc *time.Location) time.Time {
	return CivilDate(t.In(loc))
}

// DateKey formats a civil date as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// StatsSummary is the derived view over a user's daily records.
type StatsSummary struct {
	CurrentStreak         int
	LongestStreak         int
	WeeklyCompletionRate  float64
	MonthlyCompletionRate float64
	TotalFocusTimeWeek    int64
	TotalFocusTimeMonth   int64
	RecentDays            []RecentDay
}

// RecentDay is a compact day entry of the weekly window.
type RecentDay struct {
	Date      time.Time
	Status    string
	Completed int
	Total     int
	FocusTime int64
}
