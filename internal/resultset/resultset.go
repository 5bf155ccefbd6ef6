package resultset

import (
	"washradar/internal/models"
)

// Marker is the map-pin projection of one ranked result.
type Marker struct {
	ListingID string  `json:"listing_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Rank      int     `json:"rank"`
}

// ResultSet is one canonical ranked page served to both renderers. The
// list and the markers are projections of the same backing slice, so they
// cannot drift apart, and selection resolves through one shared index.
type ResultSet struct {
	results     []models.SearchResult
	markers     []Marker
	byID        map[string]int
	mapDegraded bool
}

func New(page []models.SearchResult) *ResultSet {
	rs := &ResultSet{
		results: page,
		markers: make([]Marker, len(page)),
		byID:    make(map[string]int, len(page)),
	}
	for i, r := range page {
		rs.markers[i] = Marker{ListingID: r.ID, Latitude: r.Latitude, Longitude: r.Longitude, Rank: r.Rank}
		rs.byID[r.ID] = i
	}
	return rs
}

// List returns the ordered list view.
func (rs *ResultSet) List() []models.SearchResult {
	return rs.results
}

// Markers returns the map view in the same rank order as List. After the
// map renderer degrades it returns nil; the list keeps serving.
func (rs *ResultSet) Markers() []Marker {
	if rs.mapDegraded {
		return nil
	}
	return rs.markers
}

// Select resolves a listing id (from either view) to the shared index and
// result both views present.
func (rs *ResultSet) Select(listingID string) (models.SearchResult, int, bool) {
	i, ok := rs.byID[listingID]
	if !ok {
		return models.SearchResult{}, 0, false
	}
	return rs.results[i], i, true
}

// DegradeMap records that the map renderer failed. The already-computed
// results stay available to the list view; nothing is re-queried.
func (rs *ResultSet) DegradeMap() {
	rs.mapDegraded = true
}

// MapDegraded reports whether the map view has been switched off.
func (rs *ResultSet) MapDegraded() bool {
	return rs.mapDegraded
}

// Len is the number of results on this page.
func (rs *ResultSet) Len() int {
	return len(rs.results)
}
