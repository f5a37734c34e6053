package item

import "context"

// Repository defines the persistence contract for item offers.
type Repository interface {
	// Save persists a new item and returns it with its assigned id.
	Save(ctx context.Context, i *Item) (*Item, error)

	// Update persists changes to an existing item.
	Update(ctx context.Context, i *Item) error

	// FindByID retrieves an item by its identifier.
	FindByID(ctx context.Context, id int64) (*Item, error)

	// IsAvailable reads the item's current availability flag.
	IsAvailable(ctx context.Context, id int64) (bool, error)

	// SetAvailable unconditionally writes the availability flag.
	SetAvailable(ctx context.Context, id int64, available bool) error

	// FindByOwnerID retrieves the owner's items with pagination.
	FindByOwnerID(ctx context.Context, ownerID int64, page, size int) ([]*Item, error)

	// CountByOwnerID returns how many items the owner offers.
	CountByOwnerID(ctx context.Context, ownerID int64) (int64, error)

	// Search retrieves available items whose name or description
	// contains the text, case-insensitively.
	Search(ctx context.Context, text string, page, size int) ([]*Item, error)

	// FindByCategoryID retrieves all items listed under one category.
	FindByCategoryID(ctx context.Context, categoryID int64) ([]*Item, error)

	// FindByRequestID retrieves the items offered in answer to one
	// item request.
	FindByRequestID(ctx context.Context, requestID int64) ([]*Item, error)
}

// CommentRepository defines the persistence contract for item comments.
type CommentRepository interface {
	// Save persists a new comment and returns it with its assigned id.
	Save(ctx context.Context, c *Comment) (*Comment, error)

	// FindByItemID retrieves all comments on one item.
	FindByItemID(ctx context.Context, itemID int64) ([]*Comment, error)
}
