package models

// SearchResult is a listing enriched for one specific query. DistanceMiles
// is rounded to one decimal for display; ExactDistance keeps the full
// precision the ranking engine orders by.
type SearchResult struct {
	ID                    string   `json:"id"`
	BusinessName          string   `json:"business_name"`
	CarWashTypes          []string `json:"car_wash_types"`
	Address               string   `json:"address"`
	City                  string   `json:"city"`
	State                 string   `json:"state"`
	ZipCode               string   `json:"zip_code"`
	Latitude              float64  `json:"latitude"`
	Longitude             float64  `json:"longitude"`
	DistanceMiles         float64  `json:"distance_miles"`
	ExactDistance         float64  `json:"-"`
	EstimatedDriveMinutes int      `json:"estimated_drive_minutes"`
	AverageRating         float64  `json:"average_rating"`
	TotalReviews          int      `json:"total_reviews"`
	IsOpenNow             bool     `json:"is_open_now"`
	OpensAt               *string  `json:"opens_at"`
	ClosesAt              *string  `json:"closes_at"`
	PriceFrom             *float64 `json:"price_from"`
	HasMembershipPlans    bool     `json:"has_membership_plans"`
	HasFreeVacuum         bool     `json:"has_free_vacuum"`
	IsEcoFriendly         bool     `json:"is_eco_friendly"`
	LogoURL               *string  `json:"logo_url,omitempty"`
	PrimaryPhoto          *string  `json:"primary_photo,omitempty"`
	// Rank is the 0-based position within the full ranked set, not the page.
	Rank int `json:"rank"`
}

// Pagination describes the slice of the full ranked set a response carries.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasMore    bool `json:"has_more"`
}

type SearchResponse struct {
	Listings   []SearchResult `json:"listings"`
	Pagination Pagination     `json:"pagination"`
}

// ListingProfile is the full profile view: the catalog record plus the
// availability and favorite state computed for the requesting user.
type ListingProfile struct {
	Listing
	IsOpenNow   bool    `json:"is_open_now"`
	OpensAt     *string `json:"opens_at"`
	ClosesAt    *string `json:"closes_at"`
	IsFavorited bool    `json:"is_favorited"`
}
