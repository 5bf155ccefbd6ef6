package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"washradar/internal/geo"
	"washradar/internal/models"
)

// CatalogRepository is the read-only adapter over the catalog collaborator's
// listing store. Schedules, holiday overrides, type tags and the rating
// distribution live in JSON columns and are decoded per row.
type CatalogRepository struct {
	DB *sql.DB
}

const listingColumns = `id, business_name, car_wash_types, address, city, state, zip_code,
       latitude, longitude, timezone,
       has_membership_plans, has_free_vacuum, is_eco_friendly, price_from,
       average_rating, total_reviews, rating_distribution,
       operating_hours, holiday_hours, logo_url, primary_photo, created_at`

// ListingsNear returns active listings inside the bounding box. Exact
// radius membership is decided later by the distance calculator.
func (r *CatalogRepository) ListingsNear(ctx context.Context, box geo.BoundingBox) ([]models.Listing, error) {
	query := `SELECT ` + listingColumns + `
              FROM car_washes
              WHERE status = 'ACTIVE'
                AND latitude BETWEEN $1 AND $2
                AND longitude BETWEEN $3 AND $4`
	rows, err := r.DB.QueryContext(ctx, query, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng)
	if err != nil {
		return nil, fmt.Errorf("catalog listings near: %w", err)
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog rows error: %w", err)
	}
	return listings, nil
}

func (r *CatalogRepository) ListingByID(ctx context.Context, id string) (models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM car_washes WHERE id = $1 AND status = 'ACTIVE'`
	listing, err := scanListing(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Listing{}, models.ErrListingNotFound
	}
	if err != nil {
		return models.Listing{}, fmt.Errorf("catalog listing %s: %w", id, err)
	}
	return listing, nil
}

// ListingsByIDs loads the given listings, preserving the input order.
// Ids no longer present in the catalog are skipped silently.
func (r *CatalogRepository) ListingsByIDs(ctx context.Context, ids []string) ([]models.Listing, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + listingColumns + ` FROM car_washes WHERE id = ANY($1) AND status = 'ACTIVE'`
	rows, err := r.DB.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("catalog listings by ids: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]models.Listing, len(ids))
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		byID[listing.ID] = listing
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog rows error: %w", err)
	}

	listings := make([]models.Listing, 0, len(byID))
	for _, id := range ids {
		if listing, ok := byID[id]; ok {
			listings = append(listings, listing)
		}
	}
	return listings, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (models.Listing, error) {
	var (
		listing                             models.Listing
		typesJSON, distributionJSON         []byte
		hoursJSON, holidaysJSON             []byte
		priceFrom                           sql.NullFloat64
		logoURL, primaryPhoto               sql.NullString
	)

	err := row.Scan(
		&listing.ID, &listing.BusinessName, &typesJSON, &listing.Address, &listing.City,
		&listing.State, &listing.ZipCode, &listing.Latitude, &listing.Longitude, &listing.Timezone,
		&listing.HasMembershipPlans, &listing.HasFreeVacuum, &listing.IsEcoFriendly, &priceFrom,
		&listing.Rating.Average, &listing.Rating.Count, &distributionJSON,
		&hoursJSON, &holidaysJSON, &logoURL, &primaryPhoto, &listing.CreatedAt,
	)
	if err != nil {
		return models.Listing{}, err
	}

	if err := json.Unmarshal(typesJSON, &listing.CarWashTypes); err != nil {
		return models.Listing{}, fmt.Errorf("decode car wash types for %s: %w", listing.ID, err)
	}
	if len(distributionJSON) > 0 {
		if err := json.Unmarshal(distributionJSON, &listing.Rating.Distribution); err != nil {
			return models.Listing{}, fmt.Errorf("decode rating distribution for %s: %w", listing.ID, err)
		}
	}
	if err := json.Unmarshal(hoursJSON, &listing.Hours); err != nil {
		return models.Listing{}, fmt.Errorf("decode operating hours for %s: %w", listing.ID, err)
	}
	if len(holidaysJSON) > 0 {
		if err := json.Unmarshal(holidaysJSON, &listing.HolidayHours); err != nil {
			return models.Listing{}, fmt.Errorf("decode holiday hours for %s: %w", listing.ID, err)
		}
	}

	if priceFrom.Valid {
		listing.PriceFrom = &priceFrom.Float64
	}
	if logoURL.Valid {
		listing.LogoURL = &logoURL.String
	}
	if primaryPhoto.Valid {
		listing.PrimaryPhoto = &primaryPhoto.String
	}
	return listing, nil
}
