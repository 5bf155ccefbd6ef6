package handlers

import (
	"net/http"

	"washradar/internal/services"
)

type FavoritesHandler struct {
	Service *services.FavoritesService
}

// ToggleFavorite handles POST /discovery/:id/favorite.
func (h *FavoritesHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(string)
	if !ok || userID == "" {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	listingID := getParam(r, "id")
	if listingID == "" {
		writeError(w, http.StatusBadRequest, "Listing id is required")
		return
	}

	favorited, err := h.Service.Toggle(r.Context(), userID, listingID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_favorited": favorited})
}

// ListFavorites handles GET /discovery/favorites.
func (h *FavoritesHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(string)
	if !ok || userID == "" {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	favorites, err := h.Service.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}
