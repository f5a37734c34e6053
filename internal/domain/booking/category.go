package booking

import "github.com/lendly/service-rental/internal/apperr"

// Category selects which slice of a subject's bookings a listing
// returns. It is a closed set; every value maps to a distinct store
// query and the dispatch switches over it exhaustively.
type Category string

const (
	CategoryAll      Category = "ALL"
	CategoryCurrent  Category = "CURRENT"
	CategoryPast     Category = "PAST"
	CategoryFuture   Category = "FUTURE"
	CategoryWaiting  Category = "WAITING"
	CategoryRejected Category = "REJECTED"
)

// ParseCategory converts a request token to a Category. Unrecognized
// tokens fail with an unknown-state error rather than falling through
// to any default listing.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	switch c {
	case CategoryAll, CategoryCurrent, CategoryPast, CategoryFuture, CategoryWaiting, CategoryRejected:
		return c, nil
	}
	return "", apperr.NewUnknownStateError(s)
}
