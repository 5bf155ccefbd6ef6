package search

import (
	"fmt"
	"strings"

	"washradar/internal/geo"
	"washradar/internal/models"
)

const (
	MinRadiusMiles     = 1.0
	MaxRadiusMiles     = 50.0
	DefaultRadiusMiles = 10.0
	DefaultLimit       = 20
	MaxLimit           = 50
)

// knownCarWashTypes are the category keys the catalog seeds listings with.
var knownCarWashTypes = map[string]struct{}{
	"AUTOMATIC_TUNNEL": {},
	"EXPRESS_EXTERIOR": {},
	"SELF_SERVICE_BAY": {},
	"FULL_SERVICE":     {},
	"HAND_WASH":        {},
	"TOUCHLESS":        {},
	"DETAILING":        {},
}

var knownSortKeys = map[models.SortKey]struct{}{
	models.SortByDistance: {},
	models.SortByRating:   {},
	models.SortByPrice:    {},
}

// Predicate decides whether an annotated result matches the compiled query.
type Predicate func(models.SearchResult) bool

// Compile validates a raw query and builds the conjunction predicate over
// annotated candidates. Defaults are filled for omitted radius, sort key,
// page and limit; out-of-bounds values are rejected, never clamped.
func Compile(q models.SearchQuery) (models.SearchQuery, Predicate, error) {
	if q.Latitude < -90 || q.Latitude > 90 || q.Longitude < -180 || q.Longitude > 180 {
		return q, nil, fmt.Errorf("%w: coordinates out of range (%.4f, %.4f)", models.ErrInvalidQuery, q.Latitude, q.Longitude)
	}

	if q.RadiusMiles == 0 {
		q.RadiusMiles = DefaultRadiusMiles
	}
	if q.RadiusMiles < MinRadiusMiles || q.RadiusMiles > MaxRadiusMiles {
		return q, nil, fmt.Errorf("%w: radius %.1f outside [%.0f, %.0f] miles", models.ErrInvalidQuery, q.RadiusMiles, MinRadiusMiles, MaxRadiusMiles)
	}

	if q.SortBy == "" {
		q.SortBy = models.SortByDistance
	}
	if _, ok := knownSortKeys[q.SortBy]; !ok {
		return q, nil, fmt.Errorf("%w: unknown sort key %q", models.ErrInvalidQuery, q.SortBy)
	}

	if q.Page == 0 {
		q.Page = 1
	}
	if q.Page < 1 {
		return q, nil, fmt.Errorf("%w: page %d must be positive", models.ErrInvalidQuery, q.Page)
	}
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit < 1 || q.Limit > MaxLimit {
		return q, nil, fmt.Errorf("%w: limit %d outside [1, %d]", models.ErrInvalidQuery, q.Limit, MaxLimit)
	}

	if q.MinRating < 0 || q.MinRating > 5 {
		return q, nil, fmt.Errorf("%w: minRating %.1f outside [0, 5]", models.ErrInvalidQuery, q.MinRating)
	}

	for _, key := range q.CarWashTypes {
		if _, ok := knownCarWashTypes[key]; !ok {
			return q, nil, fmt.Errorf("%w: unknown car wash type %q", models.ErrInvalidQuery, key)
		}
	}

	return q, predicate(q), nil
}

// predicate builds the conjunction of the requested criteria. An omitted
// criterion contributes nothing; it never turns into "match nothing".
func predicate(q models.SearchQuery) Predicate {
	needle := strings.ToLower(strings.TrimSpace(q.Search))

	return func(r models.SearchResult) bool {
		if !geo.WithinRadius(r.ExactDistance, q.RadiusMiles) {
			return false
		}
		if len(q.CarWashTypes) > 0 && !intersects(q.CarWashTypes, r.CarWashTypes) {
			return false
		}
		if q.OpenNow && !r.IsOpenNow {
			return false
		}
		if q.HasMembership && !r.HasMembershipPlans {
			return false
		}
		if q.HasFreeVacuum && !r.HasFreeVacuum {
			return false
		}
		if q.EcoFriendly && !r.IsEcoFriendly {
			return false
		}
		if q.MinRating > 0 && r.AverageRating < q.MinRating {
			return false
		}
		if needle != "" && !matchesText(r, needle) {
			return false
		}
		return true
	}
}

func intersects(requested, available []string) bool {
	set := make(map[string]struct{}, len(available))
	for _, key := range available {
		set[key] = struct{}{}
	}
	for _, key := range requested {
		if _, ok := set[key]; ok {
			return true
		}
	}
	return false
}

func matchesText(r models.SearchResult, needle string) bool {
	for _, field := range []string{r.BusinessName, r.Address, r.City, r.ZipCode} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
