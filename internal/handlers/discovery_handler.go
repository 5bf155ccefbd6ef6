package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"washradar/internal/models"
	"washradar/internal/services"
)

type DiscoveryHandler struct {
	Service *services.DiscoveryService
}

// SearchNearby handles GET /discovery/nearby.
func (h *DiscoveryHandler) SearchNearby(w http.ResponseWriter, r *http.Request) {
	query, err := parseSearchQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.Service.Search(r.Context(), query)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetProfile handles GET /discovery/:id.
func (h *DiscoveryHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	listingID := getParam(r, "id")
	if listingID == "" {
		writeError(w, http.StatusBadRequest, "Listing id is required")
		return
	}
	userID, _ := r.Context().Value("user_id").(string)

	profile, err := h.Service.Profile(r.Context(), listingID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func parseSearchQuery(r *http.Request) (models.SearchQuery, error) {
	var query models.SearchQuery
	params := r.URL.Query()

	lat, err := requiredFloat(params.Get("lat"), "lat")
	if err != nil {
		return query, err
	}
	lng, err := requiredFloat(params.Get("lng"), "lng")
	if err != nil {
		return query, err
	}
	query.Latitude = lat
	query.Longitude = lng

	if query.RadiusMiles, err = optionalFloat(params.Get("radiusMiles"), "radiusMiles"); err != nil {
		return query, err
	}
	if query.MinRating, err = optionalFloat(params.Get("minRating"), "minRating"); err != nil {
		return query, err
	}
	if query.OpenNow, err = optionalBool(params.Get("openNow"), "openNow"); err != nil {
		return query, err
	}
	if query.HasMembership, err = optionalBool(params.Get("hasMembership"), "hasMembership"); err != nil {
		return query, err
	}
	if query.HasFreeVacuum, err = optionalBool(params.Get("hasFreeVacuum"), "hasFreeVacuum"); err != nil {
		return query, err
	}
	if query.EcoFriendly, err = optionalBool(params.Get("ecoFriendly"), "ecoFriendly"); err != nil {
		return query, err
	}
	if query.Page, err = optionalInt(params.Get("page"), "page"); err != nil {
		return query, err
	}
	if query.Limit, err = optionalInt(params.Get("limit"), "limit"); err != nil {
		return query, err
	}

	if raw := strings.TrimSpace(params.Get("type")); raw != "" {
		for _, key := range strings.Split(raw, ",") {
			if key = strings.TrimSpace(key); key != "" {
				query.CarWashTypes = append(query.CarWashTypes, key)
			}
		}
	}
	query.Search = strings.TrimSpace(params.Get("search"))
	query.SortBy = models.SortKey(params.Get("sortBy"))

	return query, nil
}

func requiredFloat(raw, name string) (float64, error) {
	if raw == "" {
		return 0, &paramError{name: name, reason: "is required"}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &paramError{name: name, reason: "must be a number"}
	}
	return v, nil
}

func optionalFloat(raw, name string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &paramError{name: name, reason: "must be a number"}
	}
	return v, nil
}

func optionalInt(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &paramError{name: name, reason: "must be an integer"}
	}
	return v, nil
}

func optionalBool(raw, name string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &paramError{name: name, reason: "must be a boolean"}
	}
	return v, nil
}

type paramError struct {
	name   string
	reason string
}

func (e *paramError) Error() string {
	return "Invalid query: " + e.name + " " + e.reason
}
