package stores

import (
	"context"
	"errors"

	"salonbook-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// ServiceUpdate carries the replacement field values for a catalog mutation.
type ServiceUpdate struct {
	Name     string
	Prices   string
	ImageURL string
}

// CatalogStore is the CRUD surface over catalog services.
//
// Update and Delete are id-keyed and single-record. UpdateByName and
// DeleteByName keep the legacy broadcast semantics: every record whose
// service field matches is mutated, and zero matches is not an error.
type CatalogStore interface {
	List(ctx context.Context) ([]models.Service, error)
	Search(ctx context.Context, query string) ([]models.Service, error)
	ByID(ctx context.Context, id uuid.UUID) (*models.Service, error)
	Create(ctx context.Context, service *models.Service) error
	Update(ctx context.Context, id uuid.UUID, upd ServiceUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Deprecated: compatibility shims for name-keyed clients.
	UpdateByName(ctx context.Context, name string, upd ServiceUpdate) (int64, error)
	DeleteByName(ctx context.Context, name string) (int64, error)
}

type GormCatalogStore struct {
	db *gorm.DB
}

func NewGormCatalogStore(db *gorm.DB) *GormCatalogStore {
	return &GormCatalogStore{db: db}
}

func (s *GormCatalogStore) List(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := s.db.WithContext(ctx).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (s *GormCatalogStore) Search(ctx context.Context, query string) ([]models.Service, error) {
	var services []models.Service
	if err := s.db.WithContext(ctx).
		Where("service ILIKE ?", "%"+query+"%").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (s *GormCatalogStore) ByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var service models.Service
	if err := s.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (s *GormCatalogStore) Create(ctx context.Context, service *models.Service) error {
	return s.db.WithContext(ctx).Create(service).Error
}

func (s *GormCatalogStore) Update(ctx context.Context, id uuid.UUID, upd ServiceUpdate) error {
	var service models.Service
	if err := s.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	service.Name = upd.Name
	service.Prices = upd.Prices
	service.ImageURL = upd.ImageURL

	return s.db.WithContext(ctx).Save(&service).Error
}

func (s *GormCatalogStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormCatalogStore) UpdateByName(ctx context.Context, name string, upd ServiceUpdate) (int64, error) {
	result := s.db.WithContext(ctx).Model(&models.Service{}).
		Where("service = ?", name).
		Updates(map[string]interface{}{
			"service":   upd.Name,
			"prices":    upd.Prices,
			"image_url": upd.ImageURL,
		})
	return result.RowsAffected, result.Error
}

func (s *GormCatalogStore) DeleteByName(ctx context.Context, name string) (int64, error) {
	result := s.db.WithContext(ctx).Where("service = ?", name).Delete(&models.Service{})
	return result.RowsAffected, result.Error
}
