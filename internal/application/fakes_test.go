package application

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lendly/service-rental/internal/apperr"
	bookingDomain "github.com/lendly/service-rental/internal/domain/booking"
	itemDomain "github.com/lendly/service-rental/internal/domain/item"
	requestDomain "github.com/lendly/service-rental/internal/domain/request"
	userDomain "github.com/lendly/service-rental/internal/domain/user"
	"github.com/lendly/service-rental/internal/events"
)

// In-memory fakes backing the service tests. They implement the same
// ordering and paging contract as the GORM repositories: listings come
// back ordered by start descending, window CURRENT is inclusive on both
// edges, and a page/size pair translates to offset page*size.

type fakeBookingRepo struct {
	bookings map[int64]*bookingDomain.Booking
	ownerOf  map[int64]int64 // itemID -> ownerID
	nextID   int64
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[int64]*bookingDomain.Booking),
		ownerOf:  make(map[int64]int64),
		nextID:   1,
	}
}

func (r *fakeBookingRepo) Save(_ context.Context, b *bookingDomain.Booking) (*bookingDomain.Booking, error) {
	saved := bookingDomain.ReconstructBooking(r.nextID, b.Start(), b.End(), b.Status(), b.ItemID(), b.BookerID(), b.CreatedAt())
	r.bookings[r.nextID] = saved
	r.nextID++
	return saved, nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id int64) (*bookingDomain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, apperr.NewNotFoundError("Booking", strconv.FormatInt(id, 10))
	}
	return b, nil
}

func (r *fakeBookingRepo) DecideIfWaiting(_ context.Context, id int64, status bookingDomain.Status) (bool, error) {
	b, ok := r.bookings[id]
	if !ok || b.Status() != bookingDomain.StatusWaiting {
		return false, nil
	}
	r.bookings[id] = bookingDomain.ReconstructBooking(b.ID(), b.Start(), b.End(), status, b.ItemID(), b.BookerID(), b.CreatedAt())
	return true, nil
}

func (r *fakeBookingRepo) FindByItemID(_ context.Context, itemID int64) ([]*bookingDomain.Booking, error) {
	var out []*bookingDomain.Booking
	for _, b := range r.bookings {
		if b.ItemID() == itemID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) HasFinishedApprovedByBooker(_ context.Context, bookerID int64) (bool, error) {
	now := time.Now()
	for _, b := range r.bookings {
		if b.BookerID() == bookerID && b.Status() == bookingDomain.StatusApproved && b.End().Before(now) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) list(filter func(*bookingDomain.Booking) bool, page, size int) []*bookingDomain.Booking {
	var out []*bookingDomain.Booking
	for _, b := range r.bookings {
		if filter(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start().After(out[j].Start()) })

	offset := page * size
	if offset >= len(out) {
		return nil
	}
	end := offset + size
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end]
}

func (r *fakeBookingRepo) FindByBooker(_ context.Context, bookerID int64, page, size int) ([]*bookingDomain.Booking, error) {
	return r.list(func(b *bookingDomain.Booking) bool { return b.BookerID() == bookerID }, page, size), nil
}

func (r *fakeBookingRepo) FindByBookerAndStatus(_ context.Context, bookerID int64, status bookingDomain.Status, page, size int) ([]*bookingDomain.Booking, error) {
	return r.list(func(b *bookingDomain.Booking) bool {
		return b.BookerID() == bookerID && b.Status() == status
	}, page, size), nil
}

func (r *fakeBookingRepo) FindCurrentByBooker(_ context.Context, bookerID int64, now time.Time, page, size int) ([]*bookingDomain.Booking, error) {
	return r.list(func(b *bookingDomain.Booking) bool {
		return b.BookerID() == bookerID && b.IsCurrentAt(now)
	}, page, size), nil
}

func (r *fakeBookingRepo) FindPastByBooker(_ context.Context, bookerID int64, now time.Time, page, size int) ([]*bookingDomain.Booking, error) {
	return r.list(func(b *bookingDomain.Booking) bool {
		return b.BookerID() == bookerID && b.End().Before(now)
	}, page, size), nil
}

func (r *fakeBookingRepo) FindFutureByBooker(_ context.Context, bookerID int64, now time.Time, page, size int) ([]*bookingDomain.Booking, error) {
	return r.list(func(b *bookingDomain.Booking) bool {
		return b.BookerID() == bookerID && b.Start().After(now)
	}, page, size), nil
}

func (r *fakeBookingRepo) FindByItemOwner(_ context.Context, ownerID int64, page, size int) ([]*bookingDomain.Booking, error) {
	return r.list(func(b *bookingDomain.Booking) bool { return r.ownerOf[b.ItemID()] == ownerID }, page, size), nil
}

func (r *fakeBookingRepo) FindByItemOwnerAndStatus(_ context.Context, ownerID int64, status bookingDomain.Status, page, size int) ([]*bookingDomain.Booking, error) {
	return r.list(func(b *bookingDomain.Booking) bool {
		return r.ownerOf[b.ItemID()] == ownerID && b.Status() == status
	}, page, size), nil
}

func (r *fakeBookingRepo) FindCurrentByItemOwner(_ context.Context, ownerID int64, now time.Time, page, size int) ([]*bookingDomain.Booking, error) {
	return r.list(func(b *bookingDomain.Booking) bool {
		return r.ownerOf[b.ItemID()] == ownerID && b.IsCurrentAt(now)
	}, page, size), nil
}

func (r *fakeBookingRepo) FindPastByItemOwner(_ context.Context, ownerID int64, now time.Time, page, size int) ([]*bookingDomain.Booking, error) {
	return r.list(func(b *bookingDomain.Booking) bool {
		return r.ownerOf[b.ItemID()] == ownerID && b.End().Before(now)
	}, page, size), nil
}

func (r *fakeBookingRepo) FindFutureByItemOwner(_ context.Context, ownerID int64, now time.Time, page, size int) ([]*bookingDomain.Booking, error) {
	return r.list(func(b *bookingDomain.Booking) bool {
		return r.ownerOf[b.ItemID()] == ownerID && b.Start().After(now)
	}, page, size), nil
}

type fakeItemRepo struct {
	items  map[int64]*itemDomain.Item
	nextID int64
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[int64]*itemDomain.Item), nextID: 1}
}

func (r *fakeItemRepo) Save(_ context.Context, i *itemDomain.Item) (*itemDomain.Item, error) {
	saved := itemDomain.ReconstructItem(r.nextID, i.OwnerID(), i.Name(), i.Description(), i.PhotoURL(), i.PriceCents(), i.Available(), i.RequestID(), i.CategoryIDs())
	r.items[r.nextID] = saved
	r.nextID++
	return saved, nil
}

func (r *fakeItemRepo) Update(_ context.Context, i *itemDomain.Item) error {
	r.items[i.ID()] = i
	return nil
}

func (r *fakeItemRepo) FindByID(_ context.Context, id int64) (*itemDomain.Item, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, apperr.NewNotFoundError("Item", strconv.FormatInt(id, 10))
	}
	return i, nil
}

func (r *fakeItemRepo) IsAvailable(ctx context.Context, id int64) (bool, error) {
	i, err := r.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return i.Available(), nil
}

func (r *fakeItemRepo) SetAvailable(ctx context.Context, id int64, available bool) error {
	i, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	i.ApplyPatch(itemDomain.Patch{Available: &available})
	return nil
}

func (r *fakeItemRepo) FindByOwnerID(_ context.Context, ownerID int64, page, size int) ([]*itemDomain.Item, error) {
	var out []*itemDomain.Item
	for _, i := range r.items {
		if i.OwnerID() == ownerID {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID() < out[b].ID() })
	return out, nil
}

func (r *fakeItemRepo) CountByOwnerID(_ context.Context, ownerID int64) (int64, error) {
	var n int64
	for _, i := range r.items {
		if i.OwnerID() == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *fakeItemRepo) Search(_ context.Context, text string, page, size int) ([]*itemDomain.Item, error) {
	var out []*itemDomain.Item
	for _, i := range r.items {
		if i.Available() && (containsFold(i.Name(), text) || containsFold(i.Description(), text)) {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) FindByCategoryID(_ context.Context, categoryID int64) ([]*itemDomain.Item, error) {
	var out []*itemDomain.Item
	for _, i := range r.items {
		for _, c := range i.CategoryIDs() {
			if c == categoryID {
				out = append(out, i)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeItemRepo) FindByRequestID(_ context.Context, requestID int64) ([]*itemDomain.Item, error) {
	var out []*itemDomain.Item
	for _, i := range r.items {
		if i.RequestID() != nil && *i.RequestID() == requestID {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID() < out[b].ID() })
	return out, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

type fakeUserRepo struct {
	users  map[int64]*userDomain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*userDomain.User), nextID: 1}
}

func (r *fakeUserRepo) Save(_ context.Context, u *userDomain.User) (*userDomain.User, error) {
	saved := userDomain.ReconstructUser(r.nextID, u.Name(), u.Email(), u.PasswordHash())
	r.users[r.nextID] = saved
	r.nextID++
	return saved, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*userDomain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.NewNotFoundError("User", strconv.FormatInt(id, 10))
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*userDomain.User, error) {
	for _, u := range r.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, apperr.NewNotFoundError("User", email)
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*userDomain.User, error) {
	var out []*userDomain.User
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *userDomain.User) error {
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

type fakeCommentRepo struct {
	comments map[int64]*itemDomain.Comment
	nextID   int64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[int64]*itemDomain.Comment), nextID: 1}
}

func (r *fakeCommentRepo) Save(_ context.Context, c *itemDomain.Comment) (*itemDomain.Comment, error) {
	saved := itemDomain.ReconstructComment(r.nextID, c.Text(), c.ItemID(), c.AuthorID(), c.CreatedAt())
	r.comments[r.nextID] = saved
	r.nextID++
	return saved, nil
}

func (r *fakeCommentRepo) FindByItemID(_ context.Context, itemID int64) ([]*itemDomain.Comment, error) {
	var out []*itemDomain.Comment
	for _, c := range r.comments {
		if c.ItemID() == itemID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeRequestRepo struct {
	requests map[int64]*requestDomain.ItemRequest
	nextID   int64
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[int64]*requestDomain.ItemRequest), nextID: 1}
}

func (r *fakeRequestRepo) Save(_ context.Context, req *requestDomain.ItemRequest) (*requestDomain.ItemRequest, error) {
	saved := requestDomain.ReconstructItemRequest(r.nextID, req.Description(), req.RequesterID(), req.CreatedAt())
	r.requests[r.nextID] = saved
	r.nextID++
	return saved, nil
}

func (r *fakeRequestRepo) FindByID(_ context.Context, id int64) (*requestDomain.ItemRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, apperr.NewNotFoundError("ItemRequest", strconv.FormatInt(id, 10))
	}
	return req, nil
}

func (r *fakeRequestRepo) listSorted(filter func(*requestDomain.ItemRequest) bool) []*requestDomain.ItemRequest {
	var out []*requestDomain.ItemRequest
	for _, req := range r.requests {
		if filter(req) {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().After(out[j].CreatedAt()) })
	return out
}

func (r *fakeRequestRepo) FindByRequesterID(_ context.Context, requesterID int64) ([]*requestDomain.ItemRequest, error) {
	return r.listSorted(func(req *requestDomain.ItemRequest) bool { return req.RequesterID() == requesterID }), nil
}

func (r *fakeRequestRepo) FindByOtherRequesters(_ context.Context, requesterID int64, page, size int) ([]*requestDomain.ItemRequest, error) {
	out := r.listSorted(func(req *requestDomain.ItemRequest) bool { return req.RequesterID() != requesterID })
	offset := page * size
	if offset >= len(out) {
		return nil, nil
	}
	end := offset + size
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

// fakePublisher records emitted events so tests can assert on them.
type fakePublisher struct {
	requested []events.BookingRequestedEvent
	decided   []events.BookingDecidedEvent
}

func (p *fakePublisher) BookingRequested(_ context.Context, evt events.BookingRequestedEvent) {
	p.requested = append(p.requested, evt)
}

func (p *fakePublisher) BookingDecided(_ context.Context, evt events.BookingDecidedEvent) {
	p.decided = append(p.decided, evt)
}
