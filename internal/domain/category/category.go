package category

import "context"

// Category groups items for catalog browsing. The service only reads
// categories; managing them belongs to a back-office surface.
type Category struct {
	ID    int64
	Title string
}

// Repository defines the read contract for categories.
type Repository interface {
	// FindByID retrieves a category by its identifier.
	FindByID(ctx context.Context, id int64) (*Category, error)

	// FindAll retrieves every category.
	FindAll(ctx context.Context) ([]*Category, error)
}
