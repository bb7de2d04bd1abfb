package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/unwind-backend/internal/domain"
	"github.com/heartmarshall/unwind-backend/internal/service/schedule"
)

type scheduleService interface {
	Create(ctx context.Context, input schedule.CreateInput) (*schedule.CreateResult, error)
	List(ctx context.Context) ([]domain.Schedule, error)
	ListSince(ctx context.Context, lastSync time.Time) ([]domain.Schedule, error)
	Update(ctx context.Context, input schedule.UpdateInput) (*domain.Schedule, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ScheduleHandler serves the /api/schedules endpoints.
type ScheduleHandler struct {
	svc scheduleService
	log *slog.Logger
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(svc scheduleService, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, log: logger.With("handler", "schedule")}
}

type createScheduleRequest struct {
	ClientID string `json:"clientId"`
	Name     string `json:"name"`
	Duration int    `json:"duration"`
}

type updateScheduleRequest struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
}

type scheduleResponse struct {
	ID        string     `json:"id"`
	ClientID  string     `json:"clientId"`
	Name      string     `json:"name"`
	Duration  int        `json:"duration"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

type scheduleListResponse struct {
	Schedules  []scheduleResponse `json:"schedules"`
	ServerTime time.Time          `json:"serverTime"`
}

// Create handles POST /api/schedules. A replayed clientId answers 200 with
// the stored schedule instead of 201.
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createScheduleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Create(r.Context(), schedule.CreateInput{
		ClientID: req.ClientID,
		Name:     req.Name,
		Duration: req.Duration,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toScheduleResponse(result.Schedule))
}

// List handles GET /api/schedules. With ?since=<RFC3339> it returns every
// schedule changed after that instant, deletions included.
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		items []domain.Schedule
		err   error
	)

	if raw := r.URL.Query().Get("since"); raw != "" {
		since, perr := time.Parse(time.RFC3339, raw)
		if perr != nil {
			handleError(h.log, w, r, domain.NewValidationError("since", "must be an RFC3339 timestamp"))
			return
		}
		items, err = h.svc.ListSince(r.Context(), since)
	} else {
		items, err = h.svc.List(r.Context())
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := scheduleListResponse{
		Schedules:  make([]scheduleResponse, 0, len(items)),
		ServerTime: time.Now().UTC(),
	}
	for i := range items {
		resp.Schedules = append(resp.Schedules, toScheduleResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /api/schedules/{id}.
func (h *ScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req updateScheduleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	s, err := h.svc.Update(r.Context(), schedule.UpdateInput{ID: id, Name: req.Name, Duration: req.Duration})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toScheduleResponse(s))
}

// Delete handles DELETE /api/schedules/{id}.
func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ScheduleHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func toScheduleResponse(s *domain.Schedule) scheduleResponse {
	return scheduleResponse{
		ID:        s.ID.String(),
		ClientID:  s.ClientID.String(),
		Name:      s.Name,
		Duration:  s.Duration,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		DeletedAt: s.DeletedAt,
	}
}
