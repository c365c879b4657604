package services

import (
	"testing"

	"salonbook-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestComposeDigest(t *testing.T) {
	bookings := []models.Booking{
		{ServiceName: "Hair Cut", BookingTime: "10:00", Prices: "150000"},
		{ServiceName: "Spa", BookingTime: "14:30", Prices: "1500000"},
	}

	msg := composeDigest("2024-12-25", bookings)

	assert.Contains(t, msg, "Bookings for 2024-12-25 (2):")
	assert.Contains(t, msg, "- Hair Cut at 10:00 (150.000 VND)")
	assert.Contains(t, msg, "- Spa at 14:30 (1.500.000 VND)")
}
