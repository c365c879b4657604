package controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"salonbook-backend/models"
	"salonbook-backend/stores"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateBookingInput carries the service snapshot and the requested slot.
// The date arrives in the client's DD-MM-YYYY form.
type CreateBookingInput struct {
	ServiceName string `json:"serviceName"`
	Prices      string `json:"prices"`
	ImageURL    string `json:"imageUrl"`
	BookingDate string `json:"bookingDate"`
	BookingTime string `json:"bookingTime"`
}

type BookingController struct {
	bookings stores.BookingStore
}

func NewBookingController(bookings stores.BookingStore) *BookingController {
	return &BookingController{bookings: bookings}
}

// CreateBooking stores a booking with a snapshot of the chosen service. The
// date is reordered to YYYY-MM-DD; values are not calendar-validated.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if strings.TrimSpace(input.BookingDate) == "" || strings.TrimSpace(input.BookingTime) == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Please enter the booking date and time")
		return
	}

	formattedDate, err := utils.TransformBookingDate(input.BookingDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking := models.Booking{
		ServiceName: input.ServiceName,
		Prices:      input.Prices,
		ImageURL:    input.ImageURL,
		BookingDate: formattedDate,
		BookingTime: strings.TrimSpace(input.BookingTime),
	}

	if err := ctrl.bookings.Create(c.Request.Context(), &booking); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBookings lists all bookings. Delivery order follows the backend, the
// client treats position as a display-only ordinal.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.bookings.List(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// DeleteBooking removes one booking by its id
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	if err := ctrl.bookings.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete booking")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// StreamBookings delivers live booking snapshots over SSE. Every event is
// the full current sequence. The subscription is cancelled when the client
// disconnects.
func (ctrl *BookingController) StreamBookings(c *gin.Context) {
	updates := make(chan []models.Booking, 16)

	sub := ctrl.bookings.Subscribe(func(bookings []models.Booking) {
		select {
		case updates <- bookings:
		default:
			// Slow consumer: drop this push, a newer full snapshot follows.
		}
	})
	defer sub.Cancel()

	// Seed the stream with the current sequence before any mutation arrives.
	if bookings, err := ctrl.bookings.List(c.Request.Context()); err == nil {
		select {
		case updates <- bookings:
		default:
		}
	}

	c.Stream(func(w io.Writer) bool {
		select {
		case bookings := <-updates:
			c.SSEvent("bookings", bookings)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
