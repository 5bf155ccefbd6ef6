package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testFavorites(t *testing.T) *FavoritesRepository {
	t.Helper()
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return &FavoritesRepository{RDB: rdb}
}

func TestFavoritesAddRemove(t *testing.T) {
	repo := testFavorites(t)
	ctx := context.Background()

	fav, err := repo.IsFavorite(ctx, "u1", "cw-1")
	if err != nil || fav {
		t.Fatalf("expected not favorited, got %v %v", fav, err)
	}

	if err := repo.Add(ctx, "u1", "cw-1", time.Unix(1000, 0)); err != nil {
		t.Fatalf("add: %v", err)
	}
	fav, err = repo.IsFavorite(ctx, "u1", "cw-1")
	if err != nil || !fav {
		t.Fatalf("expected favorited, got %v %v", fav, err)
	}

	if err := repo.Remove(ctx, "u1", "cw-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	fav, _ = repo.IsFavorite(ctx, "u1", "cw-1")
	if fav {
		t.Fatal("expected removed")
	}
}

func TestFavoritesEntriesRecentFirst(t *testing.T) {
	repo := testFavorites(t)
	ctx := context.Background()

	repo.Add(ctx, "u1", "old", time.Unix(100, 0))
	repo.Add(ctx, "u1", "newest", time.Unix(300, 0))
	repo.Add(ctx, "u1", "middle", time.Unix(200, 0))

	entries, err := repo.Entries(ctx, "u1")
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	want := []string{"newest", "middle", "old"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, w := range want {
		if entries[i].ListingID != w {
			t.Fatalf("expected %v, got %v at %d", w, entries[i].ListingID, i)
		}
	}
}

func TestFavoritesReToggleUpdatesScore(t *testing.T) {
	repo := testFavorites(t)
	ctx := context.Background()

	repo.Add(ctx, "u1", "a", time.Unix(100, 0))
	repo.Add(ctx, "u1", "b", time.Unix(200, 0))
	// re-favoriting a moves it to the front
	repo.Add(ctx, "u1", "a", time.Unix(300, 0))

	entries, err := repo.Entries(ctx, "u1")
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 2 || entries[0].ListingID != "a" {
		t.Fatalf("expected a first after re-toggle, got %+v", entries)
	}
}

func TestFavoritesIsolatedPerUser(t *testing.T) {
	repo := testFavorites(t)
	ctx := context.Background()

	repo.Add(ctx, "u1", "cw-1", time.Unix(100, 0))

	fav, _ := repo.IsFavorite(ctx, "u2", "cw-1")
	if fav {
		t.Fatal("favorites must be per user")
	}
}
