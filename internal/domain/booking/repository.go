package booking

import (
	"context"
	"time"
)

// Repository defines the persistence contract for bookings. Each
// listing category maps to its own query; all listings are ordered by
// start descending and paginated with a page/size pair.
type Repository interface {
	// Save persists a new booking and returns it with its assigned id.
	Save(ctx context.Context, b *Booking) (*Booking, error)

	// FindByID retrieves a booking by its identifier.
	FindByID(ctx context.Context, id int64) (*Booking, error)

	// DecideIfWaiting writes the terminal status only while the booking
	// is still waiting. It reports whether the row was updated; false
	// means a concurrent decision won the race.
	DecideIfWaiting(ctx context.Context, id int64, status Status) (bool, error)

	// FindByItemID retrieves all bookings referencing one item.
	FindByItemID(ctx context.Context, itemID int64) ([]*Booking, error)

	// HasFinishedApprovedByBooker reports whether the booker has at
	// least one approved booking that already ended.
	HasFinishedApprovedByBooker(ctx context.Context, bookerID int64) (bool, error)

	// Booker-side listings.
	FindByBooker(ctx context.Context, bookerID int64, page, size int) ([]*Booking, error)
	FindByBookerAndStatus(ctx context.Context, bookerID int64, status Status, page, size int) ([]*Booking, error)
	FindCurrentByBooker(ctx context.Context, bookerID int64, now time.Time, page, size int) ([]*Booking, error)
	FindPastByBooker(ctx context.Context, bookerID int64, now time.Time, page, size int) ([]*Booking, error)
	FindFutureByBooker(ctx context.Context, bookerID int64, now time.Time, page, size int) ([]*Booking, error)

	// Owner-side listings, spanning every item the owner offers.
	FindByItemOwner(ctx context.Context, ownerID int64, page, size int) ([]*Booking, error)
	FindByItemOwnerAndStatus(ctx context.Context, ownerID int64, status Status, page, size int) ([]*Booking, error)
	FindCurrentByItemOwner(ctx context.Context, ownerID int64, now time.Time, page, size int) ([]*Booking, error)
	FindPastByItemOwner(ctx context.Context, ownerID int64, now time.Time, page, size int) ([]*Booking, error)
	FindFutureByItemOwner(ctx context.Context, ownerID int64, now time.Time, page, size int) ([]*Booking, error)
}
