package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lendly/service-rental/internal/apperr"
	bookingDomain "github.com/lendly/service-rental/internal/domain/booking"
	itemDomain "github.com/lendly/service-rental/internal/domain/item"
	userDomain "github.com/lendly/service-rental/internal/domain/user"
)

// CreateItemRequest is the request DTO for publishing a new item offer.
type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Available   *bool   `json:"available" binding:"required"`
	PhotoURL    string  `json:"photoUrl"`
	PriceCents  int64   `json:"priceCents"`
	RequestID   *int64  `json:"requestId"`
	CategoryIDs []int64 `json:"categoryIds"`
}

// UpdateItemRequest is the request DTO for a partial item update.
// Absent fields are left untouched.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
	PhotoURL    *string `json:"photoUrl"`
	PriceCents  *int64  `json:"priceCents"`
}

// AddCommentRequest is the request DTO for commenting on an item.
type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// ItemDTO is the API response representation of an item offer.
type ItemDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
	PhotoURL    string  `json:"photoUrl,omitempty"`
	PriceCents  int64   `json:"priceCents"`
	OwnerID     int64   `json:"ownerId"`
	CategoryIDs []int64 `json:"categoryIds,omitempty"`
}

// CommentDTO is the API response representation of an item comment.
type CommentDTO struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	AuthorID  int64     `json:"authorId"`
	CreatedAt time.Time `json:"created"`
}

// ItemDetailDTO is the enriched item view: the offer itself, the last
// and next approved bookings relative to now, and its comments.
type ItemDetailDTO struct {
	ItemDTO
	LastBooking *bookingDomain.Ref `json:"lastBooking,omitempty"`
	NextBooking *bookingDomain.Ref `json:"nextBooking,omitempty"`
	Comments    []CommentDTO       `json:"comments"`
}

// ItemService implements use cases around item offers: publishing,
// updating, browsing, and commenting.
type ItemService struct {
	items    itemDomain.Repository
	comments itemDomain.CommentRepository
	bookings bookingDomain.Repository
	users    userDomain.Repository
	logger   *zap.Logger
}

// NewItemService creates a new ItemService.
func NewItemService(
	items itemDomain.Repository,
	comments itemDomain.CommentRepository,
	bookings bookingDomain.Repository,
	users userDomain.Repository,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		items:    items,
		comments: comments,
		bookings: bookings,
		users:    users,
		logger:   logger,
	}
}

// Create publishes a new item offer for the given owner.
func (s *ItemService) Create(ctx context.Context, ownerID int64, req CreateItemRequest) (*ItemDTO, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}

	available := req.Available != nil && *req.Available
	it, err := itemDomain.NewItem(ownerID, req.Name, req.Description, req.PhotoURL, req.PriceCents, available, req.RequestID, req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	saved, err := s.items.Save(ctx, it)
	if err != nil {
		return nil, err
	}

	s.logger.Info("item published",
		zap.Int64("item_id", saved.ID()),
		zap.Int64("owner_id", ownerID),
	)

	result := toItemDTO(saved)
	return &result, nil
}

// Update applies a partial update. Only the owner may change an item;
// re-listing a lapsed item happens here by patching availability.
func (s *ItemService) Update(ctx context.Context, ownerID, itemID int64, req UpdateItemRequest) (*ItemDTO, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if !it.IsOwnedBy(ownerID) {
		return nil, apperr.NewForbiddenError("only the item owner can update it")
	}

	it.ApplyPatch(itemDomain.Patch{
		Name:        req.Name,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
		PriceCents:  req.PriceCents,
		Available:   req.Available,
	})

	if err := s.items.Update(ctx, it); err != nil {
		return nil, err
	}

	result := toItemDTO(it)
	return &result, nil
}

// GetByID returns the enriched detail view of one item as seen by the
// given viewer. The last/next projection is viewer dependent.
func (s *ItemService) GetByID(ctx context.Context, viewerID, itemID int64) (*ItemDetailDTO, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.FindByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	last, next := bookingDomain.ProjectLastNext(bookings, viewerID, time.Now())

	comments, err := s.comments.FindByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	detail := &ItemDetailDTO{
		ItemDTO:     toItemDTO(it),
		LastBooking: last,
		NextBooking: next,
		Comments:    toCommentDTOs(comments),
	}
	return detail, nil
}

// ListByOwner returns the owner's items, each enriched like GetByID.
func (s *ItemService) ListByOwner(ctx context.Context, ownerID int64, page, size int) ([]ItemDetailDTO, error) {
	items, err := s.items.FindByOwnerID(ctx, ownerID, page, size)
	if err != nil {
		return nil, err
	}

	details := make([]ItemDetailDTO, len(items))
	for i, it := range items {
		detail, err := s.GetByID(ctx, ownerID, it.ID())
		if err != nil {
			return nil, err
		}
		details[i] = *detail
	}
	return details, nil
}

// Search returns available items matching the text. An empty query
// yields an empty result without touching the store.
func (s *ItemService) Search(ctx context.Context, text string, page, size int) ([]ItemDTO, error) {
	if text == "" {
		return []ItemDTO{}, nil
	}

	items, err := s.items.Search(ctx, text, page, size)
	if err != nil {
		return nil, err
	}
	return toItemDTOs(items), nil
}

// ListByCategory returns all items listed under one category.
func (s *ItemService) ListByCategory(ctx context.Context, categoryID int64) ([]ItemDTO, error) {
	items, err := s.items.FindByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toItemDTOs(items), nil
}

// AddComment records feedback on an item. Only a user who already
// finished an approved booking may comment.
func (s *ItemService) AddComment(ctx context.Context, authorID, itemID int64, req AddCommentRequest) (*CommentDTO, error) {
	if _, err := s.users.FindByID(ctx, authorID); err != nil {
		return nil, err
	}
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return nil, err
	}

	allowed, err := s.bookings.HasFinishedApprovedByBooker(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperr.NewValidationError("commenting requires a finished approved booking")
	}

	comment, err := itemDomain.NewComment(authorID, itemID, req.Text)
	if err != nil {
		return nil, err
	}

	saved, err := s.comments.Save(ctx, comment)
	if err != nil {
		return nil, err
	}

	result := toCommentDTO(saved)
	return &result, nil
}

// --- Helpers ---

func toItemDTO(i *itemDomain.Item) ItemDTO {
	return ItemDTO{
		ID:          i.ID(),
		Name:        i.Name(),
		Description: i.Description(),
		Available:   i.Available(),
		PhotoURL:    i.PhotoURL(),
		PriceCents:  i.PriceCents(),
		OwnerID:     i.OwnerID(),
		CategoryIDs: i.CategoryIDs(),
	}
}

func toItemDTOs(items []*itemDomain.Item) []ItemDTO {
	dtos := make([]ItemDTO, len(items))
	for i, it := range items {
		dtos[i] = toItemDTO(it)
	}
	return dtos
}

func toCommentDTO(c *itemDomain.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID(),
		Text:      c.Text(),
		AuthorID:  c.AuthorID(),
		CreatedAt: c.CreatedAt(),
	}
}

func toCommentDTOs(comments []*itemDomain.Comment) []CommentDTO {
	dtos := make([]CommentDTO, len(comments))
	for i, c := range comments {
		dtos[i] = toCommentDTO(c)
	}
	return dtos
}
