package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"washradar/internal/models"
)

type errorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps the engine's error taxonomy onto HTTP statuses.
// Invalid queries carry their validation message; transient catalog
// failures are flagged retryable instead of being served stale.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidQuery):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrListingNotFound):
		writeError(w, http.StatusNotFound, "Listing not found")
	case errors.Is(err, models.ErrCatalogUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error:     "Catalog is temporarily unavailable, try again",
			Retryable: true,
		})
	case errors.Is(err, models.ErrFavoriteWriteFailed):
		writeError(w, http.StatusInternalServerError, "Failed to update favorite")
	default:
		log.Printf("unhandled service error: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
