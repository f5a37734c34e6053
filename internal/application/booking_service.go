package application

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/lendly/service-rental/internal/apperr"
	bookingDomain "github.com/lendly/service-rental/internal/domain/booking"
	itemDomain "github.com/lendly/service-rental/internal/domain/item"
	userDomain "github.com/lendly/service-rental/internal/domain/user"
	"github.com/lendly/service-rental/internal/events"
)

// CreateBookingRequest holds the data needed to file a booking request.
type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required,futuredate"`
	End    time.Time `json:"end" binding:"required,futuredate"`
}

// ItemRefDTO is the reduced item representation inside a booking response.
type ItemRefDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookerRefDTO is the reduced booker representation inside a booking response.
type BookerRefDTO struct {
	ID int64 `json:"id"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID     int64        `json:"id"`
	Start  time.Time    `json:"start"`
	End    time.Time    `json:"end"`
	Status string       `json:"status"`
	Item   ItemRefDTO   `json:"item"`
	Booker BookerRefDTO `json:"booker"`
}

// BookingService orchestrates the booking lifecycle: filing a request,
// the owner's one-shot approval or rejection, and single-booking reads.
// It holds no state between calls; every operation works against the
// stores it was given.
type BookingService struct {
	bookings  bookingDomain.Repository
	items     itemDomain.Repository
	users     userDomain.Repository
	guard     *AvailabilityGuard
	publisher events.Publisher
	logger    *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookings bookingDomain.Repository,
	items itemDomain.Repository,
	users userDomain.Repository,
	guard *AvailabilityGuard,
	publisher events.Publisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings:  bookings,
		items:     items,
		users:     users,
		guard:     guard,
		publisher: publisher,
		logger:    logger,
	}
}

// Create files a booking request for the given booker. The request is
// validated before any store access; a successful request is persisted
// waiting for the owner's decision.
//
// Known hazard: availability is read and the booking written without an
// atomic check-and-reserve, so two concurrent creates against one item
// can both succeed. This mirrors the store contract, which offers no
// reservation primitive.
func (s *BookingService) Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (*BookingDTO, error) {
	b, err := bookingDomain.NewBooking(bookerID, req.ItemID, req.Start, req.End)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, bookerID); err != nil {
		return nil, err
	}

	it, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	if it.IsOwnedBy(bookerID) {
		return nil, apperr.NewSelfBookingError(bookerID)
	}

	available, err := s.guard.CheckAvailable(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, apperr.NewItemNotAvailableError(req.ItemID)
	}

	saved, err := s.bookings.Save(ctx, b)
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking requested",
		zap.Int64("booking_id", saved.ID()),
		zap.Int64("item_id", req.ItemID),
		zap.Int64("booker_id", bookerID),
	)

	s.publisher.BookingRequested(ctx, events.BookingRequestedEvent{
		BookingID:  saved.ID(),
		ItemID:     saved.ItemID(),
		BookerID:   saved.BookerID(),
		Start:      saved.Start(),
		End:        saved.End(),
		OccurredAt: time.Now().UTC(),
	})

	result := toBookingDTO(saved, it.Name())
	return &result, nil
}

// Decide applies the item owner's one-shot approval or rejection.
// Approval flips the item's availability off; rejection leaves it
// untouched. The status write is conditional on the booking still
// waiting, so a decision racing another surfaces as a conflict instead
// of a double transition. Availability is only flipped after the status
// write succeeds; a lost race must leave the item on the market. The
// returned projection is re-read from the store after the write.
func (s *BookingService) Decide(ctx context.Context, ownerID, bookingID int64, approve bool) (*BookingDTO, error) {
	b, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.IsDecided() {
		return nil, apperr.NewAlreadyDecidedError(bookingID)
	}

	it, err := s.items.FindByID(ctx, b.ItemID())
	if err != nil {
		return nil, err
	}

	if !it.IsOwnedBy(ownerID) {
		return nil, apperr.NewForbiddenError("only the item owner can decide a booking")
	}

	status := bookingDomain.StatusRejected
	if approve {
		status = bookingDomain.StatusApproved
	}

	decided, err := s.bookings.DecideIfWaiting(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}
	if !decided {
		return nil, apperr.NewConflictError("booking " + strconv.FormatInt(bookingID, 10) + " was decided concurrently")
	}

	if approve {
		if err := s.guard.SetAvailable(ctx, it.ID(), false); err != nil {
			return nil, err
		}
	}

	fresh, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking decided",
		zap.Int64("booking_id", bookingID),
		zap.String("status", status.String()),
	)

	s.publisher.BookingDecided(ctx, events.BookingDecidedEvent{
		BookingID:  fresh.ID(),
		ItemID:     fresh.ItemID(),
		BookerID:   fresh.BookerID(),
		OwnerID:    ownerID,
		Status:     fresh.Status().String(),
		OccurredAt: time.Now().UTC(),
	})

	result := toBookingDTO(fresh, it.Name())
	return &result, nil
}

// Get retrieves a single booking. Only the booker and the item owner
// may view it.
func (s *BookingService) Get(ctx context.Context, userID, bookingID int64) (*BookingDTO, error) {
	b, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	it, err := s.items.FindByID(ctx, b.ItemID())
	if err != nil {
		return nil, err
	}

	if userID != b.BookerID() && !it.IsOwnedBy(userID) {
		return nil, apperr.NewForbiddenError("booking is only visible to its booker and the item owner")
	}

	result := toBookingDTO(b, it.Name())
	return &result, nil
}

func toBookingDTO(b *bookingDomain.Booking, itemName string) BookingDTO {
	return BookingDTO{
		ID:     b.ID(),
		Start:  b.Start(),
		End:    b.End(),
		Status: b.Status().String(),
		Item:   ItemRefDTO{ID: b.ItemID(), Name: itemName},
		Booker: BookerRefDTO{ID: b.BookerID()},
	}
}
