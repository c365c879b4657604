package stores

import (
	"context"
	"strings"
	"sync"
	"time"

	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/google/uuid"
)

// In-memory store implementations. They back the package tests and any
// handler test that needs store behavior without a database.

type MemoryCatalogStore struct {
	mu       sync.Mutex
	services []models.Service
}

func NewMemoryCatalogStore() *MemoryCatalogStore {
	return &MemoryCatalogStore{}
}

func (s *MemoryCatalogStore) List(ctx context.Context) ([]models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Service(nil), s.services...), nil
}

func (s *MemoryCatalogStore) Search(ctx context.Context, query string) ([]models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := strings.ToLower(query)
	matched := []models.Service{}
	for _, svc := range s.services {
		if strings.Contains(strings.ToLower(svc.Name), q) {
			matched = append(matched, svc)
		}
	}
	return matched, nil
}

func (s *MemoryCatalogStore) ByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, svc := range s.services {
		if svc.ID == id {
			found := svc
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryCatalogStore) Create(ctx context.Context, service *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	s.services = append(s.services, *service)
	return nil
}

func (s *MemoryCatalogStore) Update(ctx context.Context, id uuid.UUID, upd ServiceUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.services {
		if s.services[i].ID == id {
			s.services[i].Name = upd.Name
			s.services[i].Prices = upd.Prices
			s.services[i].ImageURL = upd.ImageURL
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryCatalogStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.services {
		if s.services[i].ID == id {
			s.services = append(s.services[:i], s.services[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryCatalogStore) UpdateByName(ctx context.Context, name string, upd ServiceUpdate) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var affected int64
	for i := range s.services {
		if s.services[i].Name == name {
			s.services[i].Name = upd.Name
			s.services[i].Prices = upd.Prices
			s.services[i].ImageURL = upd.ImageURL
			affected++
		}
	}
	return affected, nil
}

func (s *MemoryCatalogStore) DeleteByName(ctx context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var affected int64
	remaining := s.services[:0]
	for _, svc := range s.services {
		if svc.Name == name {
			affected++
			continue
		}
		remaining = append(remaining, svc)
	}
	s.services = remaining
	return affected, nil
}

type MemoryBookingStore struct {
	mu       sync.Mutex
	bookings []models.Booking
	hub      *bookingHub
}

func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{hub: newBookingHub()}
}

func (s *MemoryBookingStore) List(ctx context.Context) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Booking(nil), s.bookings...), nil
}

func (s *MemoryBookingStore) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []models.Booking{}
	for _, b := range s.bookings {
		if b.BookingDate == date {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func (s *MemoryBookingStore) Create(ctx context.Context, booking *models.Booking) error {
	s.mu.Lock()
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	s.bookings = append(s.bookings, *booking)
	snapshot := append([]models.Booking(nil), s.bookings...)
	s.mu.Unlock()

	s.hub.broadcast(snapshot)
	return nil
}

func (s *MemoryBookingStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			snapshot := append([]models.Booking(nil), s.bookings...)
			s.mu.Unlock()
			s.hub.broadcast(snapshot)
			return nil
		}
	}
	s.mu.Unlock()
	return ErrNotFound
}

func (s *MemoryBookingStore) Subscribe(onChange func([]models.Booking)) *Subscription {
	return s.hub.subscribe(onChange)
}

type MemoryUserStore struct {
	mu    sync.Mutex
	users []models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{}
}

func (s *MemoryUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	// Mirror the BeforeCreate hook that runs on the database path.
	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryUserStore) ByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) ByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].LastLogin = &at
			return nil
		}
	}
	return ErrNotFound
}
