package item

import (
	"strings"
	"time"

	"github.com/lendly/service-rental/internal/apperr"
)

// Comment is feedback left on an item by a user who has completed an
// approved booking of some item.
type Comment struct {
	id        int64
	text      string
	itemID    int64
	authorID  int64
	createdAt time.Time
}

// NewComment creates a comment on the given item.
func NewComment(authorID, itemID int64, text string) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.NewValidationError("comment text is required")
	}
	return &Comment{
		text:      text,
		itemID:    itemID,
		authorID:  authorID,
		createdAt: time.Now(),
	}, nil
}

// ReconstructComment rebuilds a Comment from persistence data.
func ReconstructComment(id int64, text string, itemID, authorID int64, createdAt time.Time) *Comment {
	return &Comment{
		id:        id,
		text:      text,
		itemID:    itemID,
		authorID:  authorID,
		createdAt: createdAt,
	}
}

// ID returns the comment's store-assigned identifier.
func (c *Comment) ID() int64 { return c.id }

// Text returns the comment body.
func (c *Comment) Text() string { return c.text }

// ItemID returns the id of the commented item.
func (c *Comment) ItemID() int64 { return c.itemID }

// AuthorID returns the id of the commenting user.
func (c *Comment) AuthorID() int64 { return c.authorID }

// CreatedAt returns the creation timestamp.
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
