package stats

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/unwind-backend/internal/domain"
	"github.com/heartmarshall/unwind-backend/pkg/ctxutil"
)

// Window lengths in days, today included.
const (
	weekDays  = 7
	monthDays = 30
)

// GetSummary returns streaks and trailing 7/30-day figures for the caller,
// with today taken in the home zone.
func (s *Service) GetSummary(ctx context.Context) (domain.StatsSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.StatsSummary{}, domain.ErrUnauthorized
	}

	today := s.today()

	history, err := s.records.ListUpTo(ctx, userID, today)
	if err != nil {
		return domain.StatsSummary{}, fmt.Errorf("stats.GetSummary list history: %w", err)
	}

	summary := Summarize(today, history)

	s.log.DebugContext(ctx, "summary computed",
		slog.String("user_id", userID.String()),
		slog.String("today", domain.DateKey(today)),
		slog.Int("current_streak", summary.CurrentStreak),
	)

	return summary, nil
}

// Summarize derives the summary as of today from every record on or before
// today, newest first. history is not modified.
func Summarize(today time.Time, history []domain.DailyRecord) domain.StatsSummary {
	today = domain.CivilDate(today)
	weekStart := today.AddDate(0, 0, -(weekDays - 1))
	monthStart := today.AddDate(0, 0, -(monthDays - 1))

	week := inRange(history, weekStart, today)
	month := inRange(history, monthStart, today)

	recent := make([]domain.RecentDay, 0, len(week))
	for _, r := range week {
		recent = append(recent, domain.RecentDay{
			Date:      r.Date,
			Status:    r.Status.Label(),
			Completed: r.CompletedSchedules,
			Total:     r.TotalSchedules,
			FocusTime: r.TotalFocusTime,
		})
	}

	weekRate, weekFocus := totals(week)
	monthRate, monthFocus := totals(month)

	return domain.StatsSummary{
		CurrentStreak:         currentStreak(today, history),
		LongestStreak:         longestStreak(history),
		WeeklyCompletionRate:  weekRate,
		MonthlyCompletionRate: monthRate,
		TotalFocusTimeWeek:    weekFocus,
		TotalFocusTimeMonth:   monthFocus,
		RecentDays:            recent,
	}
}

// currentStreak counts consecutive SUCCESS days ending today, or ending
// yesterday when today is not (yet) a SUCCESS.
func currentStreak(today time.Time, history []domain.DailyRecord) int {
	byDay := make(map[string]domain.DailyStatus, len(history))
	for _, r := range history {
		byDay[domain.DateKey(r.Date)] = r.Status
	}

	day := today
	if byDay[domain.DateKey(day)] != domain.DailyStatusSuccess {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for byDay[domain.DateKey(day)] == domain.DailyStatusSuccess {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// longestStreak returns the longest run of calendar-consecutive SUCCESS days.
func longestStreak(history []domain.DailyRecord) int {
	sorted := slices.Clone(history)
	slices.SortFunc(sorted, func(a, b domain.DailyRecord) int {
		return a.Date.Compare(b.Date)
	})

	longest, run := 0, 0
	var prev time.Time
	for _, r := range sorted {
		if r.Status != domain.DailyStatusSuccess {
			run = 0
			continue
		}
		if run > 0 && domain.CivilDate(r.Date).Equal(prev.AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		prev = domain.CivilDate(r.Date)
		longest = max(longest, run)
	}
	return longest
}

// inRange keeps records with from <= date <= to, preserving order.
func inRange(records []domain.DailyRecord, from, to time.Time) []domain.DailyRecord {
	var out []domain.DailyRecord
	for _, r := range records {
		d := domain.CivilDate(r.Date)
		if d.Before(from) || d.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// totals returns completed/total over records (0 when nothing was
// scheduled) and the summed focus time.
func totals(records []domain.DailyRecord) (float64, int64) {
	var completed, total int
	var focus int64
	for _, r := range records {
		completed += r.CompletedSchedules
		total += r.TotalSchedules
		focus += r.TotalFocusTime
	}
	if total == 0 {
		return 0, focus
	}
	return float64(completed) / float64(total), focus
}
