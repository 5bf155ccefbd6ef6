package search

import (
	"golang.org/x/exp/slices"

	"washradar/internal/models"
)

// Rank orders results by the chosen key and assigns each its 0-based rank
// within the full set. Every tie, including the "sorts last" buckets,
// breaks by ascending listing id so repeated identical queries order
// identically.
func Rank(results []models.SearchResult, sortBy models.SortKey) {
	slices.SortStableFunc(results, func(a, b models.SearchResult) int {
		if c := compare(a, b, sortBy); c != 0 {
			return c
		}
		return compareStrings(a.ID, b.ID)
	})
	for i := range results {
		results[i].Rank = i
	}
}

func compare(a, b models.SearchResult, sortBy models.SortKey) int {
	switch sortBy {
	case models.SortByRating:
		// unrated listings sort after every rated one regardless of the
		// nominal average they carry
		aRated, bRated := a.TotalReviews > 0, b.TotalReviews > 0
		if aRated != bRated {
			if aRated {
				return -1
			}
			return 1
		}
		return compareFloats(b.AverageRating, a.AverageRating)
	case models.SortByPrice:
		if (a.PriceFrom == nil) != (b.PriceFrom == nil) {
			if a.PriceFrom != nil {
				return -1
			}
			return 1
		}
		if a.PriceFrom == nil {
			return 0
		}
		return compareFloats(*a.PriceFrom, *b.PriceFrom)
	default:
		return compareFloats(a.ExactDistance, b.ExactDistance)
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Paginate slices the ranked set statelessly: page p with size s starts at
// offset (p-1)*s. A page past the end is an empty page, not an error.
func Paginate(ranked []models.SearchResult, page, limit int) ([]models.SearchResult, models.Pagination) {
	total := len(ranked)
	totalPages := (total + limit - 1) / limit

	offset := (page - 1) * limit
	var items []models.SearchResult
	if offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		items = ranked[offset:end]
	}

	return items, models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    offset+len(items) < total,
	}
}
