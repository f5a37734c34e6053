package booking

import "time"

// Ref is the reduced booking reference shown on an item's detail view.
type Ref struct {
	BookingID int64 `json:"id"`
	BookerID  int64 `json:"bookerId"`
}

// ProjectLastNext derives the last and next approved bookings of one
// item relative to now, as seen by the given viewer.
//
// A single booking is always reported as the next one, for any viewer.
// A viewer who is among the item's bookers sees neither; the projection
// is suppressed for a party who is themselves a renter of the item.
func ProjectLastNext(bookings []*Booking, viewerID int64, now time.Time) (last, next *Ref) {
	if len(bookings) == 1 {
		return nil, nextBooking(bookings, now)
	}
	for _, b := range bookings {
		if b.BookerID() == viewerID {
			return nil, nil
		}
	}
	return lastBooking(bookings, now), nextBooking(bookings, now)
}

// nextBooking picks the approved booking ending soonest after now.
func nextBooking(bookings []*Booking, now time.Time) *Ref {
	var best *Booking
	for _, b := range bookings {
		if b.Status() != StatusApproved || !b.End().After(now) {
			continue
		}
		if best == nil || b.End().Before(best.End()) {
			best = b
		}
	}
	return toRef(best)
}

// lastBooking picks the approved booking with the latest start among
// those already ended.
func lastBooking(bookings []*Booking, now time.Time) *Ref {
	var best *Booking
	for _, b := range bookings {
		if b.Status() != StatusApproved || !b.End().Before(now) {
			continue
		}
		if best == nil || b.Start().After(best.Start()) {
			best = b
		}
	}
	return toRef(best)
}

func toRef(b *Booking) *Ref {
	if b == nil {
		return nil
	}
	return &Ref{BookingID: b.ID(), BookerID: b.BookerID()}
}
