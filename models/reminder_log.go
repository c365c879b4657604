package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderLog records every reminder SMS attempt so the daily digest is not
// re-sent for the same date.
type ReminderLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	BookingDate  string    `gorm:"type:varchar(10);index;not null"` // digest target date, YYYY-MM-DD
	Message      string    `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(20)"` // sent, failed
	ErrorMessage string    `gorm:"type:text"`
	SentAt       time.Time

	gorm.Model
}

func (r *ReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New()
	return
}
