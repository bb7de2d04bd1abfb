// Package rest holds the JSON HTTP handlers of the API.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/unwind-backend/internal/domain"
	"github.com/heartmarshall/unwind-backend/pkg/ctxutil"
)

// maxBodyBytes caps request bodies. Every payload of the API is tiny.
const maxBodyBytes = 64 << 10

// Error codes of the JSON error envelope.
const (
	codeValidation   = "VALIDATION"
	codeBadRequest   = "BAD_REQUEST"
	codeUnauthorized = "UNAUTHORIZED"
	codeForbidden    = "FORBIDDEN"
	codeNotFound     = "NOT_FOUND"
	codeConflict     = "CONFLICT"
	codeInternal     = "INTERNAL"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error     string       `json:"error"`
	Message   string       `json:"message"`
	RequestID string       `json:"requestId,omitempty"`
	Fields    []FieldIssue `json:"fields,omitempty"`
}

// FieldIssue is one rejected input field.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	})
}

// decodeJSON reads a single JSON object from the request body.
// On failure it writes a 400 and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, codeBadRequest, "invalid request body")
		return false
	}
	return true
}

// handleError maps a service error onto the error envelope.
// Anything unrecognised is logged and reported as 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		fields := make([]FieldIssue, 0, len(verr.Errors))
		for _, fe := range verr.Errors {
			fields = append(fields, FieldIssue{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:     codeValidation,
			Message:   verr.Error(),
			RequestID: ctxutil.RequestIDFromCtx(r.Context()),
			Fields:    fields,
		})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, r, http.StatusBadRequest, codeValidation, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, r, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, r, http.StatusForbidden, codeForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, codeNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, r, http.StatusConflict, codeConflict, "already exists")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path),
		)
		writeError(w, r, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}
