package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/lendly/service-rental/internal/apperr"
	itemDomain "github.com/lendly/service-rental/internal/domain/item"
)

// ItemModel is the GORM model for the items table.
type ItemModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null;size:200"`
	Description string `gorm:"not null;size:1000"`
	Available   bool   `gorm:"not null;column:is_available"`
	PhotoURL    string `gorm:"size:500"`
	PriceCents  int64  `gorm:"not null;default:0"`
	OwnerID     int64  `gorm:"not null;index"`
	RequestID   *int64 `gorm:"index"`

	Categories []CategoryModel `gorm:"many2many:item_categories;joinForeignKey:ItemID;joinReferences:CategoryID"`
}

// TableName returns the table name for the GORM model.
func (ItemModel) TableName() string {
	return "items"
}

// GormItemRepository is the GORM-based implementation of item.Repository.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Save persists a new item and returns it with its assigned id.
func (r *GormItemRepository) Save(ctx context.Context, i *itemDomain.Item) (*itemDomain.Item, error) {
	model := toItemModel(i)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}
	return toDomainItem(model), nil
}

// Update persists changes to an existing item.
func (r *GormItemRepository) Update(ctx context.Context, i *itemDomain.Item) error {
	model := toItemModel(i)
	err := r.db.WithContext(ctx).
		Model(&ItemModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":         model.Name,
			"description":  model.Description,
			"is_available": model.Available,
			"photo_url":    model.PhotoURL,
			"price_cents":  model.PriceCents,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return nil
}

// FindByID retrieves an item by its identifier.
func (r *GormItemRepository) FindByID(ctx context.Context, id int64) (*itemDomain.Item, error) {
	var model ItemModel
	if err := r.db.WithContext(ctx).Preload("Categories").Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundError("Item", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to find item by id: %w", err)
	}
	return toDomainItem(&model), nil
}

// IsAvailable reads the item's current availability flag.
func (r *GormItemRepository) IsAvailable(ctx context.Context, id int64) (bool, error) {
	var available bool
	err := r.db.WithContext(ctx).
		Model(&ItemModel{}).
		Select("is_available").
		Where("id = ?", id).
		Scan(&available).Error
	if err != nil {
		return false, fmt.Errorf("failed to read item availability: %w", err)
	}
	return available, nil
}

// SetAvailable unconditionally writes the availability flag.
func (r *GormItemRepository) SetAvailable(ctx context.Context, id int64, available bool) error {
	err := r.db.WithContext(ctx).
		Model(&ItemModel{}).
		Where("id = ?", id).
		Update("is_available", available).Error
	if err != nil {
		return fmt.Errorf("failed to set item availability: %w", err)
	}
	return nil
}

// FindByOwnerID retrieves the owner's items with zero-based pagination.
func (r *GormItemRepository) FindByOwnerID(ctx context.Context, ownerID int64, page, size int) ([]*itemDomain.Item, error) {
	var models []ItemModel
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Where("owner_id = ?", ownerID).
		Order("id").
		Offset(page * size).
		Limit(size).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find items by owner: %w", err)
	}
	return toDomainItems(models), nil
}

// CountByOwnerID returns how many items the owner offers.
func (r *GormItemRepository) CountByOwnerID(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ItemModel{}).Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count items by owner: %w", err)
	}
	return count, nil
}

// Search retrieves available items matching the text in name or
// description, case-insensitively.
func (r *GormItemRepository) Search(ctx context.Context, text string, page, size int) ([]*itemDomain.Item, error) {
	pattern := "%" + text + "%"
	var models []ItemModel
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Where("is_available = ? AND (name ILIKE ? OR description ILIKE ?)", true, pattern, pattern).
		Order("id").
		Offset(page * size).
		Limit(size).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	return toDomainItems(models), nil
}

// FindByCategoryID retrieves all items listed under one category.
func (r *GormItemRepository) FindByCategoryID(ctx context.Context, categoryID int64) ([]*itemDomain.Item, error) {
	var models []ItemModel
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Joins("JOIN item_categories ON item_categories.item_id = items.id").
		Where("item_categories.category_id = ?", categoryID).
		Order("items.id").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find items by category: %w", err)
	}
	return toDomainItems(models), nil
}

// FindByRequestID retrieves the items offered in answer to one item request.
func (r *GormItemRepository) FindByRequestID(ctx context.Context, requestID int64) ([]*itemDomain.Item, error) {
	var models []ItemModel
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Where("request_id = ?", requestID).
		Order("id").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find items by request: %w", err)
	}
	return toDomainItems(models), nil
}

// --- Conversion helpers ---

func toItemModel(i *itemDomain.Item) *ItemModel {
	categories := make([]CategoryModel, len(i.CategoryIDs()))
	for idx, catID := range i.CategoryIDs() {
		categories[idx] = CategoryModel{ID: catID}
	}
	return &ItemModel{
		ID:          i.ID(),
		Name:        i.Name(),
		Description: i.Description(),
		Available:   i.Available(),
		PhotoURL:    i.PhotoURL(),
		PriceCents:  i.PriceCents(),
		OwnerID:     i.OwnerID(),
		RequestID:   i.RequestID(),
		Categories:  categories,
	}
}

func toDomainItem(m *ItemModel) *itemDomain.Item {
	categoryIDs := make([]int64, len(m.Categories))
	for idx, c := range m.Categories {
		categoryIDs[idx] = c.ID
	}
	return itemDomain.ReconstructItem(m.ID, m.OwnerID, m.Name, m.Description, m.PhotoURL, m.PriceCents, m.Available, m.RequestID, categoryIDs)
}

func toDomainItems(models []ItemModel) []*itemDomain.Item {
	items := make([]*itemDomain.Item, len(models))
	for i, m := range models {
		items[i] = toDomainItem(&m)
	}
	return items
}
