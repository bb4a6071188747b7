// Package cache keeps serialized listing pages in Redis so the hot
// front-page reads skip the database. The cache is optional: a nil
// *Listings is valid and every method degrades to a miss or no-op.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/danielmerja/stnh/internal/models"
	"github.com/danielmerja/stnh/internal/store"
)

const (
	listingTTL    = 5 * time.Minute
	generationKey = "posts:listing:gen"
)

type Listings struct {
	client *redis.Client
	log    *zap.Logger
}

// NewListings wraps a connected Redis client. Callers that run without
// Redis pass nil straight through to the handlers.
func NewListings(client *redis.Client, log *zap.Logger) *Listings {
	return &Listings{client: client, log: log}
}

// Get returns a cached page for the filter, if one exists for the current
// generation. Any Redis fault is logged and reported as a miss.
func (c *Listings) Get(ctx context.Context, f store.PostFilter) ([]models.Post, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	key, err := c.key(ctx, f)
	if err != nil {
		c.log.Warn("listing cache generation read failed", zap.Error(err))
		return nil, false
	}

	raw, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("listing cache read failed", zap.Error(err))
		return nil, false
	}

	var posts []models.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		c.log.Warn("listing cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return posts, true
}

// Set stores a page under the current generation with a short TTL.
func (c *Listings) Set(ctx context.Context, f store.PostFilter, posts []models.Post) {
	if c == nil || c.client == nil {
		return
	}

	key, err := c.key(ctx, f)
	if err != nil {
		c.log.Warn("listing cache generation read failed", zap.Error(err))
		return
	}

	raw, err := json.Marshal(posts)
	if err != nil {
		c.log.Warn("listing cache marshal failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, raw, listingTTL).Err(); err != nil {
		c.log.Warn("listing cache write failed", zap.Error(err))
	}
}

// Invalidate orphans every cached page at once by bumping the generation
// counter. Orphaned entries age out through their TTL.
func (c *Listings) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		c.log.Warn("listing cache invalidation failed", zap.Error(err))
	}
}

// key builds the cache key for a filter under the current generation. A
// generation read fault is an error: guessing generation zero could
// resurrect pages orphaned by an earlier Invalidate.
func (c *Listings) key(ctx context.Context, f store.PostFilter) (string, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return fmt.Sprintf("posts:listing:%s:%s:%s:%s:%d:%d",
		strconv.FormatInt(gen, 10), f.CategorySlug, f.Sort, f.Search, f.Limit, f.Offset), nil
}
