package utils

import (
	"net/http"

	"titoubarz-backend/internal/domain"

	"github.com/goccy/go-json"
)

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// WriteSuccess wraps data in the standard response envelope.
func WriteSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	WriteJSON(w, status, domain.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// WriteError writes a failed envelope. The message is the stable,
// client-facing text; detail carries the underlying error when safe to show.
func WriteError(w http.ResponseWriter, status int, message string, detail ...string) {
	resp := domain.Response{
		Success: false,
		Message: message,
	}
	if len(detail) > 0 {
		resp.Error = detail[0]
	}
	WriteJSON(w, status, resp)
}
