package application

import (
	"context"
	"time"

	itemDomain "github.com/lendly/service-rental/internal/domain/item"
	requestDomain "github.com/lendly/service-rental/internal/domain/request"
	userDomain "github.com/lendly/service-rental/internal/domain/user"
)

// CreateItemRequestRequest is the request DTO for publishing a wish
// for an item nobody offers yet.
type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

// ItemRequestDTO is the API response representation of an item request,
// including the items offered in answer to it.
type ItemRequestDTO struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequesterID int64     `json:"requesterId"`
	CreatedAt   time.Time `json:"created"`
	Items       []ItemDTO `json:"items"`
}

// RequestService implements use cases around item requests.
type RequestService struct {
	requests requestDomain.Repository
	users    userDomain.Repository
	items    itemDomain.Repository
}

// NewRequestService creates a new RequestService.
func NewRequestService(requests requestDomain.Repository, users userDomain.Repository, items itemDomain.Repository) *RequestService {
	return &RequestService{requests: requests, users: users, items: items}
}

// Create publishes an item request for the given user.
func (s *RequestService) Create(ctx context.Context, requesterID int64, req CreateItemRequestRequest) (*ItemRequestDTO, error) {
	if _, err := s.users.FindByID(ctx, requesterID); err != nil {
		return nil, err
	}

	r, err := requestDomain.NewItemRequest(requesterID, req.Description)
	if err != nil {
		return nil, err
	}

	saved, err := s.requests.Save(ctx, r)
	if err != nil {
		return nil, err
	}

	result := toItemRequestDTO(saved, nil)
	return &result, nil
}

// Get retrieves one item request together with the items answering it.
func (s *RequestService) Get(ctx context.Context, callerID, requestID int64) (*ItemRequestDTO, error) {
	if _, err := s.users.FindByID(ctx, callerID); err != nil {
		return nil, err
	}

	r, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	answers, err := s.items.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	result := toItemRequestDTO(r, answers)
	return &result, nil
}

// ListOwn returns the caller's requests, newest first.
func (s *RequestService) ListOwn(ctx context.Context, requesterID int64) ([]ItemRequestDTO, error) {
	requests, err := s.requests.FindByRequesterID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return s.toItemRequestDTOs(ctx, requests)
}

// ListOthers returns other users' requests, newest first, so owners
// can browse for wishes to answer.
func (s *RequestService) ListOthers(ctx context.Context, callerID int64, page, size int) ([]ItemRequestDTO, error) {
	requests, err := s.requests.FindByOtherRequesters(ctx, callerID, page, size)
	if err != nil {
		return nil, err
	}
	return s.toItemRequestDTOs(ctx, requests)
}

func (s *RequestService) toItemRequestDTOs(ctx context.Context, requests []*requestDomain.ItemRequest) ([]ItemRequestDTO, error) {
	dtos := make([]ItemRequestDTO, len(requests))
	for i, r := range requests {
		answers, err := s.items.FindByRequestID(ctx, r.ID())
		if err != nil {
			return nil, err
		}
		dtos[i] = toItemRequestDTO(r, answers)
	}
	return dtos, nil
}

func toItemRequestDTO(r *requestDomain.ItemRequest, answers []*itemDomain.Item) ItemRequestDTO {
	return ItemRequestDTO{
		ID:          r.ID(),
		Description: r.Description(),
		RequesterID: r.RequesterID(),
		CreatedAt:   r.CreatedAt(),
		Items:       toItemDTOs(answers),
	}
}
