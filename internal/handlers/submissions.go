package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielmerja/stnh/internal/intake"
	"github.com/danielmerja/stnh/internal/store"
)

type SubmissionHandler struct {
	intake *intake.Service
}

func NewSubmissionHandler(service *intake.Service) *SubmissionHandler {
	return &SubmissionHandler{intake: service}
}

// SubmitPost accepts a pasted Twitter/X or LinkedIn URL. Validation
// failures come back 400 with the reason, duplicates 409; either way no
// rows are written.
func (h *SubmissionHandler) SubmitPost(c *gin.Context) {
	var req intake.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "post_url and category_id are required"})
		return
	}

	result, err := h.intake.Submit(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, result)
	case errors.Is(err, intake.ErrUnrecognizedURL), errors.Is(err, intake.ErrNoPostID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrDuplicatePost):
		c.JSON(http.StatusConflict, gin.H{"error": "This post has already been submitted"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit post"})
	}
}
