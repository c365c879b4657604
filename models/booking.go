package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking snapshots the booked service's name, price and image at creation
// time. Later catalog edits never touch existing bookings.
type Booking struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceName string    `gorm:"column:service_name;not null" json:"serviceName"`
	Prices      string    `gorm:"column:prices" json:"prices"`
	ImageURL    string    `gorm:"column:image_url" json:"imageUrl"`
	BookingDate string    `gorm:"column:booking_date;not null" json:"bookingDate"` // YYYY-MM-DD
	BookingTime string    `gorm:"column:booking_time;not null" json:"bookingTime"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
