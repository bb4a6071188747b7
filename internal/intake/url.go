// Package intake turns a pasted social-media URL into an archived post:
// classify the platform, extract the external identifier, reject
// duplicates, then publish directly or stage for moderation depending on
// configuration.
package intake

import (
	"errors"
	"net/url"
	"regexp"
	"strings"

	"github.com/danielmerja/stnh/internal/models"
)

var (
	// ErrUnrecognizedURL rejects hosts other than twitter/x and linkedin.
	ErrUnrecognizedURL = errors.New("please provide a valid Twitter or LinkedIn post URL")

	// ErrNoPostID means the platform was recognized but no numeric post
	// identifier could be extracted from the URL.
	ErrNoPostID = errors.New("could not identify the post from the URL")
)

var (
	linkedinShareRe    = regexp.MustCompile(`urn:li:share:(\d+)`)
	linkedinActivityRe = regexp.MustCompile(`activity:(\d+)`)
	allDigitsRe        = regexp.MustCompile(`^\d+$`)
)

// Classify determines the platform and external post identifier for a
// submitted URL. Twitter/X identifiers are the last path segment;
// LinkedIn identifiers are the digits of the urn:li:share token, falling
// back to the activity token for posts shared from a feed. Identifiers
// must be all digits on both platforms.
func Classify(rawURL string) (postType, externalID string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", "", ErrUnrecognizedURL
	}

	host := strings.ToLower(u.Hostname())
	switch {
	case strings.Contains(host, "twitter.com") || strings.Contains(host, "x.com"):
		postType = models.PostTypeTwitter
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		externalID = segments[len(segments)-1]
	case strings.Contains(host, "linkedin.com"):
		postType = models.PostTypeLinkedIn
		if m := linkedinShareRe.FindStringSubmatch(rawURL); m != nil {
			externalID = m[1]
		} else if m := linkedinActivityRe.FindStringSubmatch(rawURL); m != nil {
			externalID = m[1]
		}
	default:
		return "", "", ErrUnrecognizedURL
	}

	if externalID == "" || !allDigitsRe.MatchString(externalID) {
		return "", "", ErrNoPostID
	}
	return postType, externalID, nil
}
