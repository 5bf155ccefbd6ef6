package models

import (
	"time"
)

// Listing is an immutable catalog snapshot of one car wash location. The
// catalog owns these records; the engine only reads them per request.
type Listing struct {
	ID           string   `json:"id"`
	BusinessName string   `json:"business_name"`
	CarWashTypes []string `json:"car_wash_types"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	ZipCode      string   `json:"zip_code"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	// Timezone is a required IANA zone name. Listings never inherit the
	// server zone; a listing with a broken zone resolves as closed.
	Timezone string `json:"timezone"`

	HasMembershipPlans bool     `json:"has_membership_plans"`
	HasFreeVacuum      bool     `json:"has_free_vacuum"`
	IsEcoFriendly      bool     `json:"is_eco_friendly"`
	PriceFrom          *float64 `json:"price_from,omitempty"`

	Rating       RatingAggregate   `json:"rating"`
	Hours        []DayHours        `json:"hours"`
	HolidayHours []HolidayOverride `json:"holiday_hours,omitempty"`

	LogoURL      *string   `json:"logo_url,omitempty"`
	PrimaryPhoto *string   `json:"primary_photo,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// RatingAggregate is produced by the review collaborator and read as-is.
// Count is expected to equal the sum of Distribution.
type RatingAggregate struct {
	Average      float64     `json:"average"`
	Count        int         `json:"count"`
	Distribution map[int]int `json:"distribution,omitempty"`
}
