package apperr

import "fmt"

// NotFoundError indicates that a referenced resource does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

// NewNotFoundError creates a NotFoundError for the given resource and identifier.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}

// ValidationError indicates that the caller supplied invalid data.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// InvalidRangeError indicates a booking window whose start does not
// precede its end.
type InvalidRangeError struct {
	Message string
}

// NewInvalidRangeError creates an InvalidRangeError with the given message.
func NewInvalidRangeError(message string) *InvalidRangeError {
	return &InvalidRangeError{Message: message}
}

func (e *InvalidRangeError) Error() string {
	return e.Message
}

// ForbiddenError indicates that the caller lacks the required
// relationship to the resource.
type ForbiddenError struct {
	Message string
}

// NewForbiddenError creates a ForbiddenError with the given message.
func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// ConflictError indicates that a conditional write lost against a
// concurrent mutation of the same record.
type ConflictError struct {
	Message string
}

// NewConflictError creates a ConflictError with the given message.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ItemNotAvailableError indicates that the item is not flagged
// available and cannot accept a new booking.
type ItemNotAvailableError struct {
	ItemID int64
}

// NewItemNotAvailableError creates an ItemNotAvailableError for the given item.
func NewItemNotAvailableError(itemID int64) *ItemNotAvailableError {
	return &ItemNotAvailableError{ItemID: itemID}
}

func (e *ItemNotAvailableError) Error() string {
	return fmt.Sprintf("item %d is not available for booking", e.ItemID)
}

// AlreadyDecidedError indicates that the booking already carries a
// terminal status and cannot be decided again.
type AlreadyDecidedError struct {
	BookingID int64
}

// NewAlreadyDecidedError creates an AlreadyDecidedError for the given booking.
func NewAlreadyDecidedError(bookingID int64) *AlreadyDecidedError {
	return &AlreadyDecidedError{BookingID: bookingID}
}

func (e *AlreadyDecidedError) Error() string {
	return fmt.Sprintf("booking %d has already been decided", e.BookingID)
}

// UnknownStateError indicates an unrecognized listing category token.
type UnknownStateError struct {
	State string
}

// NewUnknownStateError creates an UnknownStateError for the given token.
func NewUnknownStateError(state string) *UnknownStateError {
	return &UnknownStateError{State: state}
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("Unknown state: %s", e.State)
}

// SelfBookingError indicates that a user tried to book their own item.
type SelfBookingError struct {
	UserID int64
}

// NewSelfBookingError creates a SelfBookingError for the given user.
func NewSelfBookingError(userID int64) *SelfBookingError {
	return &SelfBookingError{UserID: userID}
}

func (e *SelfBookingError) Error() string {
	return fmt.Sprintf("user %d cannot book their own item", e.UserID)
}

// UnauthenticatedError indicates a request without a resolvable caller identity.
type UnauthenticatedError struct {
	Message string
}

// NewUnauthenticatedError creates an UnauthenticatedError with the given message.
func NewUnauthenticatedError(message string) *UnauthenticatedError {
	return &UnauthenticatedError{Message: message}
}

func (e *UnauthenticatedError) Error() string {
	return e.Message
}
