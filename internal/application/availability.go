package application

import (
	"context"

	itemDomain "github.com/lendly/service-rental/internal/domain/item"
)

// AvailabilityGuard owns the rule that an item must be flagged
// available to accept a new booking, and the side effect that approving
// a booking flips the flag off. No other code path inside the booking
// engine writes this flag.
type AvailabilityGuard struct {
	items itemDomain.Repository
}

// NewAvailabilityGuard creates an AvailabilityGuard over the item store.
func NewAvailabilityGuard(items itemDomain.Repository) *AvailabilityGuard {
	return &AvailabilityGuard{items: items}
}

// CheckAvailable reads the item's current availability flag.
func (g *AvailabilityGuard) CheckAvailable(ctx context.Context, itemID int64) (bool, error) {
	return g.items.IsAvailable(ctx, itemID)
}

// SetAvailable unconditionally writes the availability flag.
func (g *AvailabilityGuard) SetAvailable(ctx context.Context, itemID int64, available bool) error {
	return g.items.SetAvailable(ctx, itemID, available)
}
