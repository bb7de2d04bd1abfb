package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/unwind-backend/pkg/ctxutil"
)

// errorBody matches the envelope written by the REST handlers.
type errorBody struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error:     code,
		Message:   message,
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	})
}
