package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/unwind-backend/internal/domain"
	"github.com/heartmarshall/unwind-backend/internal/service/stats"
)

type statsService interface {
	RecordCompletion(ctx context.Context, input stats.CompletionInput) (*domain.DailyRecord, error)
	RecordForceQuit(ctx context.Context, input stats.ForceQuitInput) (*domain.DailyRecord, error)
	GetSummary(ctx context.Context) (domain.StatsSummary, error)
	GetDay(ctx context.Context, date time.Time) (*domain.DailyRecord, error)
}

// StatsHandler serves the /api/stats endpoints.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

type completionRequest struct {
	ScheduleID string `json:"scheduleId"`
	Completed  *bool  `json:"completed"`
	FocusTime  int64  `json:"focusTime"`
	AllInMode  bool   `json:"allInMode"`
	Date       string `json:"date"` // YYYY-MM-DD
}

type forceQuitRequest struct {
	Timestamp time.Time `json:"timestamp"`
}

type dayResponse struct {
	Date               string  `json:"date"`
	TotalSchedules     int     `json:"totalSchedules"`
	CompletedSchedules int     `json:"completedSchedules"`
	TotalFocusTime     int64   `json:"totalFocusTime"`
	CompletionRate     float64 `json:"completionRate"`
	Status             string  `json:"status"`
	ForceQuitCount     int     `json:"forceQuitCount"`
	AllInModeUsed      bool    `json:"allInModeUsed"`
}

type completionResponse struct {
	Recorded   bool        `json:"recorded"`
	DailyStats dayResponse `json:"dailyStats"`
}

type forceQuitResponse struct {
	Recorded       bool        `json:"recorded"`
	ForceQuitCount int         `json:"forceQuitCount"`
	DailyStats     dayResponse `json:"dailyStats"`
}

type recentDayResponse struct {
	Date      string `json:"date"`
	Status    string `json:"status"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	FocusTime int64  `json:"focusTime"`
}

type summaryResponse struct {
	CurrentStreak           int                 `json:"currentStreak"`
	LongestStreak           int                 `json:"longestStreak"`
	WeeklyCompletionRate    float64             `json:"weeklyCompletionRate"`
	MonthlyCompletionRate   float64             `json:"monthlyCompletionRate"`
	TotalFocusTimeThisWeek  int64               `json:"totalFocusTimeThisWeek"`
	TotalFocusTimeThisMonth int64               `json:"totalFocusTimeThisMonth"`
	RecentDays              []recentDayResponse `json:"recentDays"`
}

// Completion handles POST /api/stats/completion.
func (h *StatsHandler) Completion(w http.ResponseWriter, r *http.Request) {
	var req completionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var date time.Time
	if req.Date != "" {
		d, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("date", "must be YYYY-MM-DD"))
			return
		}
		date = d
	}

	rec, err := h.svc.RecordCompletion(r.Context(), stats.CompletionInput{
		ScheduleID: req.ScheduleID,
		Completed:  req.Completed,
		FocusTime:  req.FocusTime,
		AllInMode:  req.AllInMode,
		Date:       date,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, completionResponse{Recorded: true, DailyStats: toDayResponse(rec)})
}

// ForceQuit handles POST /api/stats/force-quit.
func (h *StatsHandler) ForceQuit(w http.ResponseWriter, r *http.Request) {
	var req forceQuitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := h.svc.RecordForceQuit(r.Context(), stats.ForceQuitInput{Timestamp: req.Timestamp})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, forceQuitResponse{
		Recorded:       true,
		ForceQuitCount: rec.ForceQuitCount,
		DailyStats:     toDayResponse(rec),
	})
}

// Summary handles GET /api/stats/summary.
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.GetSummary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := summaryResponse{
		CurrentStreak:           sum.CurrentStreak,
		LongestStreak:           sum.LongestStreak,
		WeeklyCompletionRate:    sum.WeeklyCompletionRate,
		MonthlyCompletionRate:   sum.MonthlyCompletionRate,
		TotalFocusTimeThisWeek:  sum.TotalFocusTimeWeek,
		TotalFocusTimeThisMonth: sum.TotalFocusTimeMonth,
		RecentDays:              make([]recentDayResponse, 0, len(sum.RecentDays)),
	}
	for _, d := range sum.RecentDays {
		resp.RecentDays = append(resp.RecentDays, recentDayResponse{
			Date:      domain.DateKey(d.Date),
			Status:    d.Status,
			Completed: d.Completed,
			Total:     d.Total,
			FocusTime: d.FocusTime,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Daily handles GET /api/stats/daily/{date}.
func (h *StatsHandler) Daily(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(time.DateOnly, r.PathValue("date"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("date", "must be YYYY-MM-DD"))
		return
	}

	rec, err := h.svc.GetDay(r.Context(), date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDayResponse(rec))
}

func toDayResponse(rec *domain.DailyRecord) dayResponse {
	return dayResponse{
		Date:               domain.DateKey(rec.Date),
		TotalSchedules:     rec.TotalSchedules,
		CompletedSchedules: rec.CompletedSchedules,
		TotalFocusTime:     rec.TotalFocusTime,
		CompletionRate:     rec.CompletionRate(),
		Status:             rec.Status.String(),
		ForceQuitCount:     rec.ForceQuitCount,
		AllInModeUsed:      rec.AllInModeUsed,
	}
}
