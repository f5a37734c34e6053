package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/lendly/service-rental/internal/apperr"
	bookingDomain "github.com/lendly/service-rental/internal/domain/booking"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	StartDate time.Time `gorm:"not null;index"`
	EndDate   time.Time `gorm:"not null;index"`
	Status    string    `gorm:"not null;size:20;index"`
	ItemID    int64     `gorm:"not null;index"`
	BookerID  int64     `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of booking.Repository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Save persists a new booking and returns it with its assigned id.
func (r *GormBookingRepository) Save(ctx context.Context, b *bookingDomain.Booking) (*bookingDomain.Booking, error) {
	model := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}
	return toDomainBooking(model)
}

// FindByID retrieves a booking by its identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFoundError("Booking", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to find booking by id: %w", err)
	}
	return toDomainBooking(&model)
}

// DecideIfWaiting writes the terminal status only while the booking is
// still waiting. Zero affected rows means a concurrent decision won.
func (r *GormBookingRepository) DecideIfWaiting(ctx context.Context, id int64, status bookingDomain.Status) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND status = ?", id, bookingDomain.StatusWaiting.String()).
		Update("status", status.String())
	if result.Error != nil {
		return false, fmt.Errorf("failed to update booking status: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// FindByItemID retrieves all bookings referencing one item.
func (r *GormBookingRepository) FindByItemID(ctx context.Context, itemID int64) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find bookings by item: %w", err)
	}
	return toDomainBookings(models)
}

// HasFinishedApprovedByBooker reports whether the booker has at least
// one approved booking that already ended.
func (r *GormBookingRepository) HasFinishedApprovedByBooker(ctx context.Context, bookerID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("booker_id = ? AND status = ? AND end_date < ?", bookerID, bookingDomain.StatusApproved.String(), time.Now()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count finished bookings: %w", err)
	}
	return count > 0, nil
}

// --- Booker-side listings ---

// FindByBooker retrieves all of the booker's bookings, newest start first.
func (r *GormBookingRepository) FindByBooker(ctx context.Context, bookerID int64, page, size int) ([]*bookingDomain.Booking, error) {
	return r.listBookings(ctx, r.bookerScope(bookerID), page, size)
}

// FindByBookerAndStatus retrieves the booker's bookings with the given status.
func (r *GormBookingRepository) FindByBookerAndStatus(ctx context.Context, bookerID int64, status bookingDomain.Status, page, size int) ([]*bookingDomain.Booking, error) {
	return r.listBookings(ctx, r.bookerScope(bookerID).Where("status = ?", status.String()), page, size)
}

// FindCurrentByBooker retrieves the booker's bookings whose window contains now.
func (r *GormBookingRepository) FindCurrentByBooker(ctx context.Context, bookerID int64, now time.Time, page, size int) ([]*bookingDomain.Booking, error) {
	return r.listBookings(ctx, r.bookerScope(bookerID).Where("start_date <= ? AND end_date >= ?", now, now), page, size)
}

// FindPastByBooker retrieves the booker's bookings already ended.
func (r *GormBookingRepository) FindPastByBooker(ctx context.Context, bookerID int64, now time.Time, page, size int) ([]*bookingDomain.Booking, error) {
	return r.listBookings(ctx, r.bookerScope(bookerID).Where("end_date < ?", now), page, size)
}

// FindFutureByBooker retrieves the booker's bookings not yet started.
func (r *GormBookingRepository) FindFutureByBooker(ctx context.Context, bookerID int64, now time.Time, page, size int) ([]*bookingDomain.Booking, error) {
	return r.listBookings(ctx, r.bookerScope(bookerID).Where("start_date > ?", now), page, size)
}

// --- Owner-side listings ---

// FindByItemOwner retrieves all bookings on the owner's items.
func (r *GormBookingRepository) FindByItemOwner(ctx context.Context, ownerID int64, page, size int) ([]*bookingDomain.Booking, error) {
	return r.listBookings(ctx, r.ownerScope(ownerID), page, size)
}

// FindByItemOwnerAndStatus retrieves bookings on the owner's items with the given status.
func (r *GormBookingRepository) FindByItemOwnerAndStatus(ctx context.Context, ownerID int64, status bookingDomain.Status, page, size int) ([]*bookingDomain.Booking, error) {
	return r.listBookings(ctx, r.ownerScope(ownerID).Where("bookings.status = ?", status.String()), page, size)
}

// FindCurrentByItemOwner retrieves bookings on the owner's items whose window contains now.
func (r *GormBookingRepository) FindCurrentByItemOwner(ctx context.Context, ownerID int64, now time.Time, page, size int) ([]*bookingDomain.Booking, error) {
	return r.listBookings(ctx, r.ownerScope(ownerID).Where("bookings.start_date <= ? AND bookings.end_date >= ?", now, now), page, size)
}

// FindPastByItemOwner retrieves bookings on the owner's items already ended.
func (r *GormBookingRepository) FindPastByItemOwner(ctx context.Context, ownerID int64, now time.Time, page, size int) ([]*bookingDomain.Booking, error) {
	return r.listBookings(ctx, r.ownerScope(ownerID).Where("bookings.end_date < ?", now), page, size)
}

// FindFutureByItemOwner retrieves bookings on the owner's items not yet started.
func (r *GormBookingRepository) FindFutureByItemOwner(ctx context.Context, ownerID int64, now time.Time, page, size int) ([]*bookingDomain.Booking, error) {
	return r.listBookings(ctx, r.ownerScope(ownerID).Where("bookings.start_date > ?", now), page, size)
}

// --- Helpers ---

func (r *GormBookingRepository) bookerScope(bookerID int64) *gorm.DB {
	return r.db.Model(&BookingModel{}).Where("booker_id = ?", bookerID)
}

func (r *GormBookingRepository) ownerScope(ownerID int64) *gorm.DB {
	return r.db.Model(&BookingModel{}).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
}

// listBookings applies the shared ordering and zero-based page/size
// window to a prepared scope.
func (r *GormBookingRepository) listBookings(ctx context.Context, scope *gorm.DB, page, size int) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := scope.WithContext(ctx).
		Order("bookings.start_date DESC").
		Offset(page * size).
		Limit(size).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return toDomainBookings(models)
}

func toBookingModel(b *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:        b.ID(),
		StartDate: b.Start(),
		EndDate:   b.End(),
		Status:    b.Status().String(),
		ItemID:    b.ItemID(),
		BookerID:  b.BookerID(),
		CreatedAt: b.CreatedAt(),
	}
}

func toDomainBooking(m *BookingModel) (*bookingDomain.Booking, error) {
	status, err := bookingDomain.ParseStatus(m.Status)
	if err != nil {
		return nil, err
	}
	return bookingDomain.ReconstructBooking(m.ID, m.StartDate, m.EndDate, status, m.ItemID, m.BookerID, m.CreatedAt), nil
}

func toDomainBookings(models []BookingModel) ([]*bookingDomain.Booking, error) {
	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		b, err := toDomainBooking(&m)
		if err != nil {
			return nil, err
		}
		bookings[i] = b
	}
	return bookings, nil
}
