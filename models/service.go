package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is a catalog entry. Column and JSON names follow the wire contract
// of the existing data set: the display name lives in the "service" field and
// prices is an unseparated numeric string.
type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"column:service;not null" json:"service"`
	Prices      string    `gorm:"column:prices;not null" json:"prices"`
	ImageURL    string    `gorm:"column:image_url" json:"imageUrl"`
	CreatorName string    `gorm:"column:creator_name" json:"creatorName"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
