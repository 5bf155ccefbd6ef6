package services

import (
	"context"
	"fmt"
	"time"

	"washradar/internal/hours"
	"washradar/internal/models"
	"washradar/internal/repositories"
)

// FavoriteStore is the engine-owned mutable state: boolean membership per
// (user, listing) with a toggle timestamp.
type FavoriteStore interface {
	Add(ctx context.Context, userID, listingID string, at time.Time) error
	Remove(ctx context.Context, userID, listingID string) error
	IsFavorite(ctx context.Context, userID, listingID string) (bool, error)
	Entries(ctx context.Context, userID string) ([]repositories.FavoriteEntry, error)
}

type FavoritesService struct {
	Store   FavoriteStore
	Catalog Catalog

	Now func() time.Time
}

func (s *FavoritesService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Toggle flips the favorite state and returns the new one. Two identical
// toggles in sequence restore the original state. A failed write leaves
// the stored state untouched and surfaces ErrFavoriteWriteFailed so the
// caller can roll back its optimistic update.
func (s *FavoritesService) Toggle(ctx context.Context, userID, listingID string) (bool, error) {
	if _, err := s.Catalog.ListingByID(ctx, listingID); err != nil {
		return false, err
	}

	favorited, err := s.Store.IsFavorite(ctx, userID, listingID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", models.ErrFavoriteWriteFailed, err)
	}

	if favorited {
		if err := s.Store.Remove(ctx, userID, listingID); err != nil {
			return true, fmt.Errorf("%w: %v", models.ErrFavoriteWriteFailed, err)
		}
		return false, nil
	}

	if err := s.Store.Add(ctx, userID, listingID, s.now()); err != nil {
		return false, fmt.Errorf("%w: %v", models.ErrFavoriteWriteFailed, err)
	}
	return true, nil
}

// IsFavorite reports current membership.
func (s *FavoritesService) IsFavorite(ctx context.Context, userID, listingID string) (bool, error) {
	return s.Store.IsFavorite(ctx, userID, listingID)
}

// List returns the user's favorites, most recently favorited first, each
// annotated with its current availability the way a search hit would be.
func (s *FavoritesService) List(ctx context.Context, userID string) ([]models.FavoriteListing, error) {
	entries, err := s.Store.Entries(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []models.FavoriteListing{}, nil
	}

	ids := make([]string, len(entries))
	favoritedAt := make(map[string]time.Time, len(entries))
	for i, e := range entries {
		ids[i] = e.ListingID
		favoritedAt[e.ListingID] = e.FavoritedAt
	}

	listings, err := s.Catalog.ListingsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrCatalogUnavailable, err)
	}

	nowUTC := s.now().UTC()
	favorites := make([]models.FavoriteListing, 0, len(listings))
	for _, listing := range listings {
		status := hours.Resolve(listing.Hours, listing.HolidayHours, listing.Timezone, nowUTC)
		favorites = append(favorites, models.FavoriteListing{
			ID:                 listing.ID,
			BusinessName:       listing.BusinessName,
			CarWashTypes:       listing.CarWashTypes,
			Address:            listing.Address,
			City:               listing.City,
			State:              listing.State,
			ZipCode:            listing.ZipCode,
			Latitude:           listing.Latitude,
			Longitude:          listing.Longitude,
			AverageRating:      listing.Rating.Average,
			TotalReviews:       listing.Rating.Count,
			IsOpenNow:          status.IsOpenNow,
			OpensAt:            status.OpensAt,
			ClosesAt:           status.ClosesAt,
			PriceFrom:          listing.PriceFrom,
			HasMembershipPlans: listing.HasMembershipPlans,
			HasFreeVacuum:      listing.HasFreeVacuum,
			IsEcoFriendly:      listing.IsEcoFriendly,
			PrimaryPhoto:       listing.PrimaryPhoto,
			FavoritedAt:        favoritedAt[listing.ID],
		})
	}
	return favorites, nil
}
