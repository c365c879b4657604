package stores

import (
	"context"
	"errors"
	"time"

	"salonbook-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserStore resolves user records. The canonical key is the id; the email
// lookup is a derived index used only at login.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	ByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) Create(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *GormUserStore) ByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("last_login", &at).Error
}
