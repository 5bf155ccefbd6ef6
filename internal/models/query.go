package models

// SortKey selects the ranking order for a search.
type SortKey string

const (
	SortByDistance SortKey = "distance"
	SortByRating   SortKey = "rating"
	SortByPrice    SortKey = "price"
)

// SearchQuery is one discovery request. Zero values mean "not requested"
// for the optional filters; defaults for radius, page and limit are applied
// during compilation, out-of-range values are rejected there.
type SearchQuery struct {
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lng"`
	RadiusMiles float64 `json:"radius_miles"`

	CarWashTypes  []string `json:"types,omitempty"`
	Search        string   `json:"search,omitempty"`
	MinRating     float64  `json:"min_rating,omitempty"`
	OpenNow       bool     `json:"open_now,omitempty"`
	HasMembership bool     `json:"has_membership,omitempty"`
	HasFreeVacuum bool     `json:"has_free_vacuum,omitempty"`
	EcoFriendly   bool     `json:"eco_friendly,omitempty"`

	SortBy SortKey `json:"sort_by"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}
