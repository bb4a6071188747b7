package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/danielmerja/stnh/internal/cache"
	"github.com/danielmerja/stnh/internal/middleware"
	"github.com/danielmerja/stnh/internal/store"
)

type PostHandler struct {
	posts    *store.Posts
	listings *cache.Listings
}

func NewPostHandler(posts *store.Posts, listings *cache.Listings) *PostHandler {
	return &PostHandler{posts: posts, listings: listings}
}

// GetPosts lists published posts filtered, sorted and paginated by query
// parameters. There is no total count: the client infers another page
// exists when it receives a full one.
func (h *PostHandler) GetPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := store.PostFilter{
		CategorySlug: c.Query("category"),
		Search:       c.Query("q"),
		Sort:         store.SortOption(c.DefaultQuery("sort", string(store.SortTrending))),
		Limit:        limit,
		Offset:       offset,
	}.Normalized()

	ctx := c.Request.Context()
	if posts, ok := h.listings.Get(ctx, filter); ok {
		c.JSON(http.StatusOK, posts)
		return
	}

	posts := h.posts.List(ctx, filter)
	// An empty page may be a degraded store read; don't pin it for a TTL.
	if len(posts) > 0 {
		h.listings.Set(ctx, filter, posts)
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost returns a single post by ID
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	post, found := h.posts.Get(c.Request.Context(), id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// VotePost records one vote from the anonymous visitor identity and
// returns the reconciled counters. Voting the same way twice undoes the
// vote; voting the other way switches it.
func (h *PostHandler) VotePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	var input struct {
		VoteType string `json:"vote_type" binding:"required,oneof=upvote downvote"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vote type must be upvote or downvote"})
		return
	}

	voterID := middleware.VoterID(c)
	if voterID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Missing voter identity"})
		return
	}

	result, err := h.posts.Vote(c.Request.Context(), id, voterID, input.VoteType)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process vote"})
		return
	}

	// Counters changed, cached listings are stale.
	h.listings.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, result)
}
