package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// FavoritesRepository keeps each user's saved listings in a Redis sorted
// set, member = listing id, score = toggle time. The score ordering gives
// the most-recently-favorited-first listing for free, and a re-toggle just
// overwrites the score (last write wins).
type FavoritesRepository struct {
	RDB *redis.Client
}

// FavoriteEntry is one membership record with its toggle time.
type FavoriteEntry struct {
	ListingID   string
	FavoritedAt time.Time
}

func favoritesKey(userID string) string {
	return "favorites:" + userID
}

func (r *FavoritesRepository) Add(ctx context.Context, userID, listingID string, at time.Time) error {
	return r.RDB.ZAdd(ctx, favoritesKey(userID), redis.Z{
		Score:  float64(at.Unix()),
		Member: listingID,
	}).Err()
}

func (r *FavoritesRepository) Remove(ctx context.Context, userID, listingID string) error {
	return r.RDB.ZRem(ctx, favoritesKey(userID), listingID).Err()
}

func (r *FavoritesRepository) IsFavorite(ctx context.Context, userID, listingID string) (bool, error) {
	_, err := r.RDB.ZScore(ctx, favoritesKey(userID), listingID).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Entries returns the user's favorites, most recently toggled first.
func (r *FavoritesRepository) Entries(ctx context.Context, userID string) ([]FavoriteEntry, error) {
	members, err := r.RDB.ZRevRangeWithScores(ctx, favoritesKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]FavoriteEntry, 0, len(members))
	for _, m := range members {
		id, ok := m.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, FavoriteEntry{
			ListingID:   id,
			FavoritedAt: time.Unix(int64(m.Score), 0).UTC(),
		})
	}
	return entries, nil
}
