package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/stores"
	"salonbook-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService sends the salon a daily SMS digest of the next day's
// bookings. Sends are logged so a restart does not repeat a digest.
type ReminderService struct {
	db       *gorm.DB
	bookings stores.BookingStore
	client   *twilio.RestClient
}

func NewReminderService(db *gorm.DB, bookings stores.BookingStore) *ReminderService {
	return &ReminderService{
		db:       db,
		bookings: bookings,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: config.AppConfig.TwilioAccountSID,
			Password: config.AppConfig.TwilioAuthToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyDigest)

	c.Start()
	log.Println("Reminder scheduler started")
}

func (s *ReminderService) SendDailyDigest() {
	to := config.AppConfig.ReminderPhone
	if to == "" {
		log.Println("REMINDER_PHONE not set, skipping booking digest")
		return
	}
	if !utils.ValidatePhone(to) {
		log.Printf("REMINDER_PHONE %q is not a valid phone number, skipping digest", to)
		return
	}

	target := utils.Tomorrow(time.Now())

	var sent int64
	if err := s.db.Model(&models.ReminderLog{}).
		Where("booking_date = ? AND status = ?", target, "sent").
		Count(&sent).Error; err != nil {
		log.Printf("Failed to check reminder log: %v", err)
		return
	}
	if sent > 0 {
		log.Printf("Digest for %s already sent, skipping", target)
		return
	}

	bookings, err := s.bookings.ListByDate(context.Background(), target)
	if err != nil {
		log.Printf("Failed to fetch bookings for %s: %v", target, err)
		return
	}
	if len(bookings) == 0 {
		log.Printf("No bookings for %s, nothing to send", target)
		return
	}

	message := composeDigest(target, bookings)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(config.AppConfig.TwilioPhoneNumber)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send booking digest to %s: %v", to, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Booking digest sent to %s, SID: %s", to, *resp.Sid)
	} else {
		log.Printf("Booking digest sent to %s, but no SID returned", to)
	}

	reminderLog := models.ReminderLog{
		BookingDate:  target,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log booking digest for %s: %v", target, err)
	}
}

func composeDigest(date string, bookings []models.Booking) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Bookings for %s (%d):", date, len(bookings))
	for _, booking := range bookings {
		fmt.Fprintf(&b, "\n- %s at %s (%s)",
			booking.ServiceName,
			booking.BookingTime,
			utils.FormatPrice(booking.Prices))
	}
	return b.String()
}
