package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/lendly/service-rental/internal/apperr"
	categoryDomain "github.com/lendly/service-rental/internal/domain/category"
)

// CategoryModel is the GORM model for the categories table.
type CategoryModel struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Title string `gorm:"not null;uniqueIndex;size:200"`
}

// TableName returns the table name for the GORM model.
func (CategoryModel) TableName() string {
	return "categories"
}

// GormCategoryRepository is the GORM-based implementation of category.Repository.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository.
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID retrieves a category by its identifier.
func (r *GormCategoryRepository) FindByID(ctx context.Context, id int64) (*categoryDomain.Category, error) {
	var model CategoryModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundError("Category", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to find category by id: %w", err)
	}
	return &categoryDomain.Category{ID: model.ID, Title: model.Title}, nil
}

// FindAll retrieves every category.
func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]*categoryDomain.Category, error) {
	var models []CategoryModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*categoryDomain.Category, len(models))
	for i, m := range models {
		categories[i] = &categoryDomain.Category{ID: m.ID, Title: m.Title}
	}
	return categories, nil
}
