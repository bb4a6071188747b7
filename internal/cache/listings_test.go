package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/danielmerja/stnh/internal/models"
	"github.com/danielmerja/stnh/internal/store"
)

func newTestListings(t *testing.T) (*Listings, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewListings(client, zap.NewNop()), mr
}

func TestListingsRoundTrip(t *testing.T) {
	listings, _ := newTestListings(t)
	ctx := context.Background()
	filter := store.PostFilter{CategorySlug: "hustle-culture", Sort: store.SortTop, Limit: 10}

	_, ok := listings.Get(ctx, filter)
	assert.False(t, ok)

	posts := []models.Post{{ID: 1, PostType: models.PostTypeTwitter, PostID: "42", Upvotes: 3}}
	listings.Set(ctx, filter, posts)

	got, ok := listings.Get(ctx, filter)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, posts[0].PostID, got[0].PostID)
	assert.Equal(t, posts[0].Upvotes, got[0].Upvotes)
}

func TestListingsKeyedByFilter(t *testing.T) {
	listings, _ := newTestListings(t)
	ctx := context.Background()

	listings.Set(ctx, store.PostFilter{Sort: store.SortTop, Limit: 10}, []models.Post{{ID: 1}})

	_, ok := listings.Get(ctx, store.PostFilter{Sort: store.SortRecent, Limit: 10})
	assert.False(t, ok)
	_, ok = listings.Get(ctx, store.PostFilter{Sort: store.SortTop, Limit: 10, Offset: 10})
	assert.False(t, ok)
}

func TestListingsInvalidateOrphansAllPages(t *testing.T) {
	listings, _ := newTestListings(t)
	ctx := context.Background()
	a := store.PostFilter{Sort: store.SortTop, Limit: 10}
	b := store.PostFilter{Sort: store.SortRecent, Limit: 10}

	listings.Set(ctx, a, []models.Post{{ID: 1}})
	listings.Set(ctx, b, []models.Post{{ID: 2}})

	listings.Invalidate(ctx)

	_, ok := listings.Get(ctx, a)
	assert.False(t, ok)
	_, ok = listings.Get(ctx, b)
	assert.False(t, ok)

	// new generation caches normally again
	listings.Set(ctx, a, []models.Post{{ID: 3}})
	got, ok := listings.Get(ctx, a)
	require.True(t, ok)
	assert.Equal(t, 3, got[0].ID)
}

func TestListingsEntriesExpire(t *testing.T) {
	listings, mr := newTestListings(t)
	ctx := context.Background()
	filter := store.PostFilter{Limit: 10}

	listings.Set(ctx, filter, []models.Post{{ID: 1}})
	mr.FastForward(listingTTL + 1)

	_, ok := listings.Get(ctx, filter)
	assert.False(t, ok)
}

func TestListingsGenerationFaultIsAMiss(t *testing.T) {
	listings, mr := newTestListings(t)
	ctx := context.Background()
	filter := store.PostFilter{Limit: 10}

	listings.Set(ctx, filter, []models.Post{{ID: 1}})

	// an unreadable generation counter must not fall back to generation
	// zero and serve pages from before an invalidation
	require.NoError(t, mr.Set(generationKey, "not-a-number"))

	_, ok := listings.Get(ctx, filter)
	assert.False(t, ok)

	listings.Set(ctx, filter, []models.Post{{ID: 2}})
	_, ok = listings.Get(ctx, filter)
	assert.False(t, ok)
}

func TestNilListingsAreNoOps(t *testing.T) {
	var listings *Listings
	ctx := context.Background()

	_, ok := listings.Get(ctx, store.PostFilter{})
	assert.False(t, ok)
	listings.Set(ctx, store.PostFilter{}, []models.Post{{ID: 1}})
	listings.Invalidate(ctx)
}
