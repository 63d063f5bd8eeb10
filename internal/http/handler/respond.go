package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"gifttrack/internal/gift"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondErrorMsg(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]any{"error": msg})
}

// respondServiceError maps domain failures to the wire. Unexpected errors
// get a generic body; the detail stays in the server log.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *gift.ValidationError
	switch {
	case errors.As(err, &ve):
		respondErrorMsg(w, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, gift.ErrNotFound):
		respondErrorMsg(w, http.StatusNotFound, "not found")
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		respondErrorMsg(w, http.StatusInternalServerError, "server error")
	}
}
