package application

import (
	"context"

	categoryDomain "github.com/lendly/service-rental/internal/domain/category"
)

// CategoryDTO is the API response representation of a category.
type CategoryDTO struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// CategoryService implements read-only catalog browsing.
type CategoryService struct {
	categories categoryDomain.Repository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories categoryDomain.Repository) *CategoryService {
	return &CategoryService{categories: categories}
}

// List returns every category.
func (s *CategoryService) List(ctx context.Context) ([]CategoryDTO, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]CategoryDTO, len(categories))
	for i, c := range categories {
		dtos[i] = CategoryDTO{ID: c.ID, Title: c.Title}
	}
	return dtos, nil
}

// Get retrieves one category by id.
func (s *CategoryService) Get(ctx context.Context, id int64) (*CategoryDTO, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CategoryDTO{ID: c.ID, Title: c.Title}, nil
}
