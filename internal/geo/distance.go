package geo

import (
	"math"
)

const earthRadiusMiles = 3958.8

// milesPerDegree is the approximate length of one degree of latitude.
const milesPerDegree = 69.0

// DistanceMiles returns the great-circle distance between two WGS84
// coordinates using the haversine formula on a spherical earth.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	// rounding can push a a hair past 1 for near-antipodal points
	a = math.Min(a, 1)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

// WithinRadius reports whether a distance falls inside the radius,
// boundary inclusive.
func WithinRadius(distanceMiles, radiusMiles float64) bool {
	return distanceMiles <= radiusMiles
}

// BoundingBox is a coarse lat/lng rectangle used to prefilter catalog
// candidates before exact distances are computed.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// Bounds returns the bounding box covering radiusMiles around the origin.
// Longitude degrees shrink with latitude; near the poles the box widens to
// the full longitude range instead of dividing by ~zero.
func Bounds(lat, lng, radiusMiles float64) BoundingBox {
	latDelta := radiusMiles / milesPerDegree

	lngDelta := 180.0
	if cos := math.Cos(lat * math.Pi / 180); cos > 1e-6 {
		lngDelta = radiusMiles / (milesPerDegree * cos)
	}

	return BoundingBox{
		MinLat: lat - latDelta,
		MaxLat: lat + latDelta,
		MinLng: lng - lngDelta,
		MaxLng: lng + lngDelta,
	}
}
