package request

import (
	"context"
	"strings"
	"time"

	"github.com/lendly/service-rental/internal/apperr"
)

// ItemRequest is a user's published wish for an item that is not yet
// offered. Owners may answer it by creating an item referencing it.
type ItemRequest struct {
	id          int64
	description string
	requesterID int64
	createdAt   time.Time
}

// NewItemRequest creates an item request for the given user.
func NewItemRequest(requesterID int64, description string) (*ItemRequest, error) {
	if strings.TrimSpace(description) == "" {
		return nil, apperr.NewValidationError("request description is required")
	}
	return &ItemRequest{
		description: description,
		requesterID: requesterID,
		createdAt:   time.Now(),
	}, nil
}

// ReconstructItemRequest rebuilds an ItemRequest from persistence data.
func ReconstructItemRequest(id int64, description string, requesterID int64, createdAt time.Time) *ItemRequest {
	return &ItemRequest{
		id:          id,
		description: description,
		requesterID: requesterID,
		createdAt:   createdAt,
	}
}

// ID returns the request's store-assigned identifier.
func (r *ItemRequest) ID() int64 { return r.id }

// Description returns what the requester is looking for.
func (r *ItemRequest) Description() string { return r.description }

// RequesterID returns the id of the requesting user.
func (r *ItemRequest) RequesterID() int64 { return r.requesterID }

// CreatedAt returns the creation timestamp.
func (r *ItemRequest) CreatedAt() time.Time { return r.createdAt }

// Repository defines the persistence contract for item requests.
type Repository interface {
	// Save persists a new request and returns it with its assigned id.
	Save(ctx context.Context, r *ItemRequest) (*ItemRequest, error)

	// FindByID retrieves a request by its identifier.
	FindByID(ctx context.Context, id int64) (*ItemRequest, error)

	// FindByRequesterID retrieves a user's requests, newest first.
	FindByRequesterID(ctx context.Context, requesterID int64) ([]*ItemRequest, error)

	// FindByOtherRequesters retrieves other users' requests, newest
	// first, with zero-based pagination.
	FindByOtherRequesters(ctx context.Context, requesterID int64, page, size int) ([]*ItemRequest, error)
}
