package application

import (
	"context"
	"strconv"
	"time"

	"github.com/lendly/service-rental/internal/apperr"
	bookingDomain "github.com/lendly/service-rental/internal/domain/booking"
)

// ListForBooker returns the booker's bookings in the given category,
// ordered by start descending. Every category dispatches to its own
// store query; the switch is exhaustive over the closed category set.
func (s *BookingService) ListForBooker(ctx context.Context, bookerID int64, category bookingDomain.Category, page, size int) ([]BookingDTO, error) {
	if _, err := s.users.FindByID(ctx, bookerID); err != nil {
		return nil, err
	}

	now := time.Now()
	var (
		bookings []*bookingDomain.Booking
		err      error
	)
	switch category {
	case bookingDomain.CategoryAll:
		bookings, err = s.bookings.FindByBooker(ctx, bookerID, page, size)
	case bookingDomain.CategoryCurrent:
		bookings, err = s.bookings.FindCurrentByBooker(ctx, bookerID, now, page, size)
	case bookingDomain.CategoryPast:
		bookings, err = s.bookings.FindPastByBooker(ctx, bookerID, now, page, size)
	case bookingDomain.CategoryFuture:
		bookings, err = s.bookings.FindFutureByBooker(ctx, bookerID, now, page, size)
	case bookingDomain.CategoryWaiting:
		bookings, err = s.bookings.FindByBookerAndStatus(ctx, bookerID, bookingDomain.StatusWaiting, page, size)
	case bookingDomain.CategoryRejected:
		bookings, err = s.bookings.FindByBookerAndStatus(ctx, bookerID, bookingDomain.StatusRejected, page, size)
	default:
		return nil, apperr.NewUnknownStateError(string(category))
	}
	if err != nil {
		return nil, err
	}

	return s.toBookingDTOs(ctx, bookings)
}

// ListForOwner returns the bookings placed on the owner's items in the
// given category, ordered by start descending. An owner who offers no
// items at all fails with not found before any booking query runs.
func (s *BookingService) ListForOwner(ctx context.Context, ownerID int64, category bookingDomain.Category, page, size int) ([]BookingDTO, error) {
	count, err := s.items.CountByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperr.NewNotFoundError("Items of owner", strconv.FormatInt(ownerID, 10))
	}

	now := time.Now()
	var bookings []*bookingDomain.Booking
	switch category {
	case bookingDomain.CategoryAll:
		bookings, err = s.bookings.FindByItemOwner(ctx, ownerID, page, size)
	case bookingDomain.CategoryCurrent:
		bookings, err = s.bookings.FindCurrentByItemOwner(ctx, ownerID, now, page, size)
	case bookingDomain.CategoryPast:
		bookings, err = s.bookings.FindPastByItemOwner(ctx, ownerID, now, page, size)
	case bookingDomain.CategoryFuture:
		bookings, err = s.bookings.FindFutureByItemOwner(ctx, ownerID, now, page, size)
	case bookingDomain.CategoryWaiting:
		bookings, err = s.bookings.FindByItemOwnerAndStatus(ctx, ownerID, bookingDomain.StatusWaiting, page, size)
	case bookingDomain.CategoryRejected:
		bookings, err = s.bookings.FindByItemOwnerAndStatus(ctx, ownerID, bookingDomain.StatusRejected, page, size)
	default:
		return nil, apperr.NewUnknownStateError(string(category))
	}
	if err != nil {
		return nil, err
	}

	return s.toBookingDTOs(ctx, bookings)
}

// toBookingDTOs resolves each booking's item name and assembles the
// response list.
func (s *BookingService) toBookingDTOs(ctx context.Context, bookings []*bookingDomain.Booking) ([]BookingDTO, error) {
	dtos := make([]BookingDTO, len(bookings))
	for i, b := range bookings {
		it, err := s.items.FindByID(ctx, b.ItemID())
		if err != nil {
			return nil, err
		}
		dtos[i] = toBookingDTO(b, it.Name())
	}
	return dtos, nil
}
