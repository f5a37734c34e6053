package item

import (
	"strings"

	"github.com/lendly/service-rental/internal/apperr"
)

// Item is an offer made by its owner for temporary use by others. The
// availability flag gates whether new bookings may be created; the
// booking engine flips it off on approval and never flips it back.
type Item struct {
	id          int64
	name        string
	description string
	available   bool
	photoURL    string
	priceCents  int64
	ownerID     int64
	requestID   *int64
	categoryIDs []int64
}

// NewItem creates a new item offer for the given owner.
func NewItem(ownerID int64, name, description, photoURL string, priceCents int64, available bool, requestID *int64, categoryIDs []int64) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.NewValidationError("item name is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, apperr.NewValidationError("item description is required")
	}
	if priceCents < 0 {
		return nil, apperr.NewValidationError("item price must not be negative")
	}

	return &Item{
		name:        name,
		description: description,
		available:   available,
		photoURL:    photoURL,
		priceCents:  priceCents,
		ownerID:     ownerID,
		requestID:   requestID,
		categoryIDs: categoryIDs,
	}, nil
}

// ReconstructItem rebuilds an Item from persistence data (no validation).
func ReconstructItem(id int64, ownerID int64, name, description, photoURL string, priceCents int64, available bool, requestID *int64, categoryIDs []int64) *Item {
	return &Item{
		id:          id,
		name:        name,
		description: description,
		available:   available,
		photoURL:    photoURL,
		priceCents:  priceCents,
		ownerID:     ownerID,
		requestID:   requestID,
		categoryIDs: categoryIDs,
	}
}

// ID returns the item's store-assigned identifier.
func (i *Item) ID() int64 { return i.id }

// Name returns the item's display name.
func (i *Item) Name() string { return i.name }

// Description returns the item's description.
func (i *Item) Description() string { return i.description }

// Available reports whether the item may accept new bookings.
func (i *Item) Available() bool { return i.available }

// PhotoURL returns the item's photo URL.
func (i *Item) PhotoURL() string { return i.photoURL }

// PriceCents returns the rental price in cents.
func (i *Item) PriceCents() int64 { return i.priceCents }

// OwnerID returns the id of the offering user.
func (i *Item) OwnerID() int64 { return i.ownerID }

// RequestID returns the id of the item request this offer answers, or nil.
func (i *Item) RequestID() *int64 { return i.requestID }

// CategoryIDs returns the ids of the categories the item is listed under.
func (i *Item) CategoryIDs() []int64 { return i.categoryIDs }

// IsOwnedBy reports whether the given user owns this item.
func (i *Item) IsOwnedBy(userID int64) bool {
	return i.ownerID == userID
}

// ApplyPatch overwrites only the fields present in the patch. The
// owner may re-list a lapsed item this way; the booking engine itself
// never restores availability.
func (i *Item) ApplyPatch(p Patch) {
	if p.Name != nil {
		i.name = *p.Name
	}
	if p.Description != nil {
		i.description = *p.Description
	}
	if p.PhotoURL != nil {
		i.photoURL = *p.PhotoURL
	}
	if p.PriceCents != nil {
		i.priceCents = *p.PriceCents
	}
	if p.Available != nil {
		i.available = *p.Available
	}
}

// Patch holds the optional fields of a partial item update.
type Patch struct {
	Name        *string
	Description *string
	PhotoURL    *string
	PriceCents  *int64
	Available   *bool
}
