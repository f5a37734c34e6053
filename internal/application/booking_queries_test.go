package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendly/service-rental/internal/apperr"
	bookingDomain "github.com/lendly/service-rental/internal/domain/booking"
)

// seedListingBookings plants one booking per temporal slice for booker 2
// on item 1: a finished one, one running now, and three future ones in
// waiting, rejected, and approved states.
func seedListingBookings(f *bookingFixture) {
	now := time.Now()
	plant := func(id int64, start, end time.Time, status bookingDomain.Status) {
		f.bookings.bookings[id] = bookingDomain.ReconstructBooking(id, start, end, status, 1, 2, start)
	}

	plant(10, day(2020, 1, 1), day(2020, 1, 5), bookingDomain.StatusApproved)
	plant(11, now.Add(-time.Hour), now.Add(time.Hour), bookingDomain.StatusApproved)
	plant(12, day(2030, 1, 1), day(2030, 1, 5), bookingDomain.StatusWaiting)
	plant(13, day(2031, 1, 1), day(2031, 1, 5), bookingDomain.StatusRejected)
	plant(14, day(2032, 1, 1), day(2032, 1, 5), bookingDomain.StatusApproved)
	f.bookings.nextID = 15
}

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func bookingIDs(dtos []BookingDTO) []int64 {
	ids := make([]int64, len(dtos))
	for i, dto := range dtos {
		ids[i] = dto.ID
	}
	return ids
}

func TestListForBookerByCategory(t *testing.T) {
	f := newBookingFixture(t)
	seedListingBookings(f)

	cases := []struct {
		category bookingDomain.Category
		want     []int64
	}{
		{bookingDomain.CategoryAll, []int64{14, 13, 12, 11, 10}},
		{bookingDomain.CategoryCurrent, []int64{11}},
		{bookingDomain.CategoryPast, []int64{10}},
		{bookingDomain.CategoryFuture, []int64{14, 13, 12}},
		{bookingDomain.CategoryWaiting, []int64{12}},
		{bookingDomain.CategoryRejected, []int64{13}},
	}

	for _, tc := range cases {
		t.Run(string(tc.category), func(t *testing.T) {
			dtos, err := f.service.ListForBooker(context.Background(), 2, tc.category, 0, 10)
			require.NoError(t, err)
			assert.Equal(t, tc.want, bookingIDs(dtos), "listings are ordered by start descending")
		})
	}
}

func TestListForBookerPaging(t *testing.T) {
	f := newBookingFixture(t)
	seedListingBookings(f)

	dtos, err := f.service.ListForBooker(context.Background(), 2, bookingDomain.CategoryAll, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{12, 11}, bookingIDs(dtos))
}

func TestListForBookerUnknownUser(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.service.ListForBooker(context.Background(), 404, bookingDomain.CategoryAll, 0, 10)
	require.Error(t, err)

	var notFound *apperr.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestListForOwnerByCategory(t *testing.T) {
	f := newBookingFixture(t)
	seedListingBookings(f)

	dtos, err := f.service.ListForOwner(context.Background(), 1, bookingDomain.CategoryAll, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{14, 13, 12, 11, 10}, bookingIDs(dtos))

	waiting, err := f.service.ListForOwner(context.Background(), 1, bookingDomain.CategoryWaiting, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{12}, bookingIDs(waiting))
}

func TestListForOwnerWithoutItems(t *testing.T) {
	f := newBookingFixture(t)
	seedListingBookings(f)

	_, err := f.service.ListForOwner(context.Background(), 2, bookingDomain.CategoryAll, 0, 10)
	require.Error(t, err)

	var notFound *apperr.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Items of owner", notFound.Resource)
}
