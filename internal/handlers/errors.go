package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"rentahome/internal/apperr"
)

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError converts any error into a structured response. Unexpected
// errors are logged and collapse to a generic 500; nothing internal leaks
// to the client.
func writeError(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", slog.Any("err", err))
	}

	writeJSON(w, status, messageResponse{Success: false, Message: apperr.ClientMessage(err)})
}
