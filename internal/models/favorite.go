package models

import (
	"time"
)

// FavoriteListing is one entry of a user's favorites list, most recently
// favorited first. Availability is computed at read time like a search hit.
type FavoriteListing struct {
	ID                 string   `json:"id"`
	BusinessName       string   `json:"business_name"`
	CarWashTypes       []string `json:"car_wash_types"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	ZipCode            string   `json:"zip_code"`
	Latitude           float64  `json:"latitude"`
	Longitude          float64  `json:"longitude"`
	AverageRating      float64  `json:"average_rating"`
	TotalReviews       int      `json:"total_reviews"`
	IsOpenNow          bool     `json:"is_open_now"`
	OpensAt            *string  `json:"opens_at"`
	ClosesAt           *string  `json:"closes_at"`
	PriceFrom          *float64 `json:"price_from"`
	HasMembershipPlans bool     `json:"has_membership_plans"`
	HasFreeVacuum      bool     `json:"has_free_vacuum"`
	IsEcoFriendly      bool     `json:"is_eco_friendly"`
	PrimaryPhoto       *string  `json:"primary_photo,omitempty"`

	FavoritedAt time.Time `json:"favorited_at"`
}
