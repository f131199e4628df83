package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rishbot91/todo-project/internal/store"
	"github.com/rishbot91/todo-project/internal/todo"
)

// writeJSON encodes data as the response body with the given status code.
func writeJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeErr translates a core error into an HTTP response. Validation
// failures become a field->messages mapping; anything unrecognized is a
// generic 500 so storage-level details never leak to the client.
func writeErr(w http.ResponseWriter, log *slog.Logger, err error) {
	var fieldErrs todo.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		writeJSON(w, fieldErrs, http.StatusBadRequest)
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, map[string]string{"detail": "Not found."}, http.StatusNotFound)
	default:
		log.Error("request failed", "error", err)
		writeJSON(w, map[string]string{"detail": "Internal server error."}, http.StatusInternalServerError)
	}
}
