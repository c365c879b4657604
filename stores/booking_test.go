package stores

import (
	"context"
	"testing"

	"salonbook-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingCreateListDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryBookingStore()

	booking := models.Booking{
		ServiceName: "Hair Cut",
		Prices:      "150000",
		BookingDate: "2024-12-25",
		BookingTime: "10:00",
	}
	require.NoError(t, store.Create(ctx, &booking))
	assert.NotEqual(t, uuid.Nil, booking.ID)
	assert.False(t, booking.CreatedAt.IsZero())

	bookings, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "2024-12-25", bookings[0].BookingDate)

	require.NoError(t, store.Delete(ctx, booking.ID))

	bookings, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	assert.ErrorIs(t, store.Delete(ctx, booking.ID), ErrNotFound)
}

// Every mutation pushes the full current sequence: a create followed by a
// delete yields exactly two pushes, one including the booking and one
// excluding it.
func TestBookingSubscriptionPushesFullSnapshots(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryBookingStore()

	var pushes [][]models.Booking
	sub := store.Subscribe(func(bookings []models.Booking) {
		pushes = append(pushes, bookings)
	})
	defer sub.Cancel()

	booking := models.Booking{ServiceName: "Spa", BookingDate: "2024-12-25", BookingTime: "14:00"}
	require.NoError(t, store.Create(ctx, &booking))
	require.NoError(t, store.Delete(ctx, booking.ID))

	require.Len(t, pushes, 2)
	require.Len(t, pushes[0], 1)
	assert.Equal(t, booking.ID, pushes[0][0].ID)
	assert.Empty(t, pushes[1])
}

func TestBookingSubscriptionCancelStopsCallbacks(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryBookingStore()

	var pushes int
	sub := store.Subscribe(func([]models.Booking) { pushes++ })

	require.NoError(t, store.Create(ctx, &models.Booking{ServiceName: "A", BookingDate: "2024-12-25", BookingTime: "09:00"}))
	assert.Equal(t, 1, pushes)

	sub.Cancel()

	require.NoError(t, store.Create(ctx, &models.Booking{ServiceName: "B", BookingDate: "2024-12-26", BookingTime: "09:00"}))
	assert.Equal(t, 1, pushes)
}

func TestBookingMultipleSubscribers(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryBookingStore()

	var first, second int
	s1 := store.Subscribe(func([]models.Booking) { first++ })
	s2 := store.Subscribe(func([]models.Booking) { second++ })
	defer s2.Cancel()

	require.NoError(t, store.Create(ctx, &models.Booking{ServiceName: "A", BookingDate: "2024-12-25", BookingTime: "09:00"}))
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)

	s1.Cancel()

	require.NoError(t, store.Create(ctx, &models.Booking{ServiceName: "B", BookingDate: "2024-12-25", BookingTime: "10:00"}))
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestBookingListByDate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryBookingStore()

	require.NoError(t, store.Create(ctx, &models.Booking{ServiceName: "A", BookingDate: "2024-12-25", BookingTime: "09:00"}))
	require.NoError(t, store.Create(ctx, &models.Booking{ServiceName: "B", BookingDate: "2024-12-26", BookingTime: "10:00"}))

	bookings, err := store.ListByDate(ctx, "2024-12-26")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "B", bookings[0].ServiceName)
}
