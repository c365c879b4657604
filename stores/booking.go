package stores

import (
	"context"
	"log"

	"salonbook-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStore is an append/list/delete surface with live snapshot
// subscriptions: every successful mutation pushes the full current booking
// sequence to all subscribers.
type BookingStore interface {
	List(ctx context.Context) ([]models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	Subscribe(onChange func([]models.Booking)) *Subscription
	ListByDate(ctx context.Context, date string) ([]models.Booking, error)
}

type GormBookingStore struct {
	db  *gorm.DB
	hub *bookingHub
}

func NewGormBookingStore(db *gorm.DB) *GormBookingStore {
	return &GormBookingStore{db: db, hub: newBookingHub()}
}

func (s *GormBookingStore) List(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *GormBookingStore) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).
		Where("booking_date = ?", date).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *GormBookingStore) Create(ctx context.Context, booking *models.Booking) error {
	if err := s.db.WithContext(ctx).Create(booking).Error; err != nil {
		return err
	}
	s.notify(ctx)
	return nil
}

func (s *GormBookingStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Booking{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	s.notify(ctx)
	return nil
}

func (s *GormBookingStore) Subscribe(onChange func([]models.Booking)) *Subscription {
	return s.hub.subscribe(onChange)
}

// notify reloads the collection and broadcasts it. A reload failure only
// skips the push; the committed write itself already succeeded.
func (s *GormBookingStore) notify(ctx context.Context) {
	bookings, err := s.List(ctx)
	if err != nil {
		log.Printf("Failed to reload bookings for broadcast: %v", err)
		return
	}
	s.hub.broadcast(bookings)
}
