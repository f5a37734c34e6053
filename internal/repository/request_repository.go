package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/lendly/service-rental/internal/apperr"
	requestDomain "github.com/lendly/service-rental/internal/domain/request"
)

// ItemRequestModel is the GORM model for the item_requests table.
type ItemRequestModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Description string    `gorm:"not null;size:1000"`
	RequesterID int64     `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (ItemRequestModel) TableName() string {
	return "item_requests"
}

// GormItemRequestRepository is the GORM-based implementation of request.Repository.
type GormItemRequestRepository struct {
	db *gorm.DB
}

// NewGormItemRequestRepository creates a new GormItemRequestRepository.
func NewGormItemRequestRepository(db *gorm.DB) *GormItemRequestRepository {
	return &GormItemRequestRepository{db: db}
}

// Save persists a new item request and returns it with its assigned id.
func (r *GormItemRequestRepository) Save(ctx context.Context, req *requestDomain.ItemRequest) (*requestDomain.ItemRequest, error) {
	model := &ItemRequestModel{
		ID:          req.ID(),
		Description: req.Description(),
		RequesterID: req.RequesterID(),
		CreatedAt:   req.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save item request: %w", err)
	}
	return requestDomain.ReconstructItemRequest(model.ID, model.Description, model.RequesterID, model.CreatedAt), nil
}

// FindByID retrieves an item request by its identifier.
func (r *GormItemRequestRepository) FindByID(ctx context.Context, id int64) (*requestDomain.ItemRequest, error) {
	var model ItemRequestModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundError("ItemRequest", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to find item request by id: %w", err)
	}
	return requestDomain.ReconstructItemRequest(model.ID, model.Description, model.RequesterID, model.CreatedAt), nil
}

// FindByRequesterID retrieves a user's item requests, newest first.
func (r *GormItemRequestRepository) FindByRequesterID(ctx context.Context, requesterID int64) ([]*requestDomain.ItemRequest, error) {
	var models []ItemRequestModel
	if err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find item requests: %w", err)
	}

	return toDomainItemRequests(models), nil
}

// FindByOtherRequesters retrieves requests published by anyone but the
// given user, newest first.
func (r *GormItemRequestRepository) FindByOtherRequesters(ctx context.Context, requesterID int64, page, size int) ([]*requestDomain.ItemRequest, error) {
	var models []ItemRequestModel
	if err := r.db.WithContext(ctx).
		Where("requester_id <> ?", requesterID).
		Order("created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find other users' item requests: %w", err)
	}
	return toDomainItemRequests(models), nil
}

func toDomainItemRequests(models []ItemRequestModel) []*requestDomain.ItemRequest {
	requests := make([]*requestDomain.ItemRequest, len(models))
	for i, m := range models {
		requests[i] = requestDomain.ReconstructItemRequest(m.ID, m.Description, m.RequesterID, m.CreatedAt)
	}
	return requests
}
