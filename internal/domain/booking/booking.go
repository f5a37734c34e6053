package booking

import (
	"time"

	"github.com/lendly/service-rental/internal/apperr"
)

// Booking is the aggregate root for the booking domain. It links a
// booker to an item for a time window. Cross-aggregate references are
// held as ids and resolved through the stores, never embedded.
type Booking struct {
	id        int64
	start     time.Time
	end       time.Time
	status    Status
	itemID    int64
	bookerID  int64
	createdAt time.Time
}

// NewBooking creates a booking request in status waiting. The time
// window must be strictly ordered and must not begin or end in the past.
func NewBooking(bookerID, itemID int64, start, end time.Time) (*Booking, error) {
	if !start.Before(end) {
		return nil, apperr.NewInvalidRangeError("booking start must be before its end")
	}
	now := time.Now()
	if start.Before(now) || end.Before(now) {
		return nil, apperr.NewValidationError("booking dates must not be in the past")
	}

	return &Booking{
		start:     start,
		end:       end,
		status:    StatusWaiting,
		itemID:    itemID,
		bookerID:  bookerID,
		createdAt: now,
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(id int64, start, end time.Time, status Status, itemID, bookerID int64, createdAt time.Time) *Booking {
	return &Booking{
		id:        id,
		start:     start,
		end:       end,
		status:    status,
		itemID:    itemID,
		bookerID:  bookerID,
		createdAt: createdAt,
	}
}

// ID returns the booking's store-assigned identifier.
func (b *Booking) ID() int64 { return b.id }

// Start returns the beginning of the reserved window.
func (b *Booking) Start() time.Time { return b.start }

// End returns the end of the reserved window.
func (b *Booking) End() time.Time { return b.end }

// Status returns the current lifecycle status.
func (b *Booking) Status() Status { return b.status }

// ItemID returns the id of the reserved item.
func (b *Booking) ItemID() int64 { return b.itemID }

// BookerID returns the id of the requesting user.
func (b *Booking) BookerID() int64 { return b.bookerID }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// IsDecided reports whether the booking already carries a terminal status.
func (b *Booking) IsDecided() bool {
	return b.status != StatusWaiting
}

// IsCurrentAt reports whether t falls inside the reserved window, inclusive.
func (b *Booking) IsCurrentAt(t time.Time) bool {
	return !t.Before(b.start) && !t.After(b.end)
}
