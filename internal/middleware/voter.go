package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VoterCookie is the cookie carrying the anonymous voter identity.
const VoterCookie = "voter_id"

const voterCookieMaxAge = 365 * 24 * 60 * 60

// VoterIdentity assigns every visitor a stable anonymous UUID. There are
// no accounts; this identity exists only so the vote ledger can enforce
// one active vote per visitor per post.
func VoterIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(VoterCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(VoterCookie, id, voterCookieMaxAge, "/", "", false, true)
		}
		c.Set(VoterCookie, id)
		c.Next()
	}
}

// VoterID returns the identity set by VoterIdentity for this request.
func VoterID(c *gin.Context) string {
	id, _ := c.Get(VoterCookie)
	s, _ := id.(string)
	return s
}
