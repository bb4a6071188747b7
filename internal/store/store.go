// Package store is the query and reconciliation layer over the relational
// store. Reads fail soft: on a store fault they log and return empty
// results so a broken database degrades the page instead of killing it.
// Writes return typed errors the handlers map onto HTTP codes.
package store

import "errors"

var (
	// ErrPostNotFound is returned by lookups and votes for an unknown post id.
	ErrPostNotFound = errors.New("post not found")

	// ErrDuplicatePost means the external post is already archived.
	ErrDuplicatePost = errors.New("post already submitted")

	// ErrInvalidVoteType rejects anything other than upvote/downvote.
	ErrInvalidVoteType = errors.New("vote type must be upvote or downvote")
)
