package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"washradar/internal/geo"
	"washradar/internal/hours"
	"washradar/internal/models"
	"washradar/internal/search"
)

// Catalog is the external read-only source of listing snapshots.
type Catalog interface {
	ListingsNear(ctx context.Context, box geo.BoundingBox) ([]models.Listing, error)
	ListingByID(ctx context.Context, id string) (models.Listing, error)
	ListingsByIDs(ctx context.Context, ids []string) ([]models.Listing, error)
}

// FavoriteChecker reports membership for profile views; the full store
// lives behind FavoritesService.
type FavoriteChecker interface {
	IsFavorite(ctx context.Context, userID, listingID string) (bool, error)
}

const (
	catalogAttempts   = 3
	defaultRetryDelay = 200 * time.Millisecond
)

// DiscoveryService runs the search pipeline: compile the query, fetch
// catalog candidates, annotate with distance and availability, filter,
// rank and paginate. It holds no per-request state.
type DiscoveryService struct {
	Catalog   Catalog
	Favorites FavoriteChecker

	// Now is swappable for tests; zero value means time.Now.
	Now func() time.Time
	// RetryDelay is the base backoff between catalog attempts.
	RetryDelay time.Duration
}

func (s *DiscoveryService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Search executes one discovery query. An empty result is a valid
// response; only validation and catalog failures are errors.
func (s *DiscoveryService) Search(ctx context.Context, query models.SearchQuery) (models.SearchResponse, error) {
	query, pred, err := search.Compile(query)
	if err != nil {
		return models.SearchResponse{}, err
	}

	box := geo.Bounds(query.Latitude, query.Longitude, query.RadiusMiles)
	listings, err := s.fetchCandidates(ctx, box)
	if err != nil {
		return models.SearchResponse{}, fmt.Errorf("%w: %v", models.ErrCatalogUnavailable, err)
	}

	nowUTC := s.now().UTC()
	results := make([]models.SearchResult, 0, len(listings))
	for _, listing := range listings {
		r := annotate(listing, query.Latitude, query.Longitude, nowUTC)
		if pred(r) {
			results = append(results, r)
		}
	}

	search.Rank(results, query.SortBy)
	items, pagination := search.Paginate(results, query.Page, query.Limit)

	if items == nil {
		items = []models.SearchResult{}
	}
	return models.SearchResponse{Listings: items, Pagination: pagination}, nil
}

// Profile returns the full listing view with computed availability and,
// when a user is known, their favorite state.
func (s *DiscoveryService) Profile(ctx context.Context, listingID, userID string) (models.ListingProfile, error) {
	listing, err := s.Catalog.ListingByID(ctx, listingID)
	if err != nil {
		return models.ListingProfile{}, err
	}

	status := hours.Resolve(listing.Hours, listing.HolidayHours, listing.Timezone, s.now().UTC())
	profile := models.ListingProfile{
		Listing:   listing,
		IsOpenNow: status.IsOpenNow,
		OpensAt:   status.OpensAt,
		ClosesAt:  status.ClosesAt,
	}

	if userID != "" && s.Favorites != nil {
		fav, err := s.Favorites.IsFavorite(ctx, userID, listingID)
		if err != nil {
			return models.ListingProfile{}, err
		}
		profile.IsFavorited = fav
	}
	return profile, nil
}

// fetchCandidates retries transient catalog failures with exponential
// backoff before giving up. The caller owns classifying the final error.
func (s *DiscoveryService) fetchCandidates(ctx context.Context, box geo.BoundingBox) ([]models.Listing, error) {
	delay := s.RetryDelay
	if delay == 0 {
		delay = defaultRetryDelay
	}

	var lastErr error
	for attempt := 0; attempt < catalogAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay << (attempt - 1)):
			}
		}
		listings, err := s.Catalog.ListingsNear(ctx, box)
		if err == nil {
			return listings, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// annotate enriches one catalog snapshot for the query at hand.
func annotate(listing models.Listing, originLat, originLng float64, nowUTC time.Time) models.SearchResult {
	distance := geo.DistanceMiles(originLat, originLng, listing.Latitude, listing.Longitude)
	status := hours.Resolve(listing.Hours, listing.HolidayHours, listing.Timezone, nowUTC)

	return models.SearchResult{
		ID:                    listing.ID,
		BusinessName:          listing.BusinessName,
		CarWashTypes:          listing.CarWashTypes,
		Address:               listing.Address,
		City:                  listing.City,
		State:                 listing.State,
		ZipCode:               listing.ZipCode,
		Latitude:              listing.Latitude,
		Longitude:             listing.Longitude,
		DistanceMiles:         math.Round(distance*10) / 10,
		ExactDistance:         distance,
		EstimatedDriveMinutes: int(math.Round(distance * 2)),
		AverageRating:         listing.Rating.Average,
		TotalReviews:          listing.Rating.Count,
		IsOpenNow:             status.IsOpenNow,
		OpensAt:               status.OpensAt,
		ClosesAt:              status.ClosesAt,
		PriceFrom:             listing.PriceFrom,
		HasMembershipPlans:    listing.HasMembershipPlans,
		HasFreeVacuum:         listing.HasFreeVacuum,
		IsEcoFriendly:         listing.IsEcoFriendly,
		LogoURL:               listing.LogoURL,
		PrimaryPhoto:          listing.PrimaryPhoto,
	}
}
