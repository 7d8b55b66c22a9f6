package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ ports.Transactor     = (*Store)(nil)
	_ ports.BookingRepo    = (*BookingRepo)(nil)
	_ ports.RoomRepo       = (*RoomRepo)(nil)
	_ ports.EnrollmentRepo = (*EnrollmentRepo)(nil)
	_ ports.TicketRepo     = (*TicketRepo)(nil)
	_ ports.SessionRepo    = (*SessionRepo)(nil)
)

func TestStore_WithinTx_RollsBackOnError(t *testing.T) {
	s := New()
	s.AddRoom(domain.Room{ID: 1, Capacity: 2})

	errBoom := errors.New("boom")
	err := s.WithinTx(context.Background(), func(ctx context.Context) error {
		b := &domain.Booking{UserID: 7, RoomID: 1}
		require.NoError(t, s.Bookings().Create(ctx, b))
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, s.AllBookings())

	b := &domain.Booking{UserID: 7, RoomID: 1}
	require.NoError(t, s.Bookings().Create(context.Background(), b))
	assert.Equal(t, int64(1), b.ID)
}

func TestStore_Create_OneBookingPerUser(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Bookings().Create(ctx, &domain.Booking{UserID: 1, RoomID: 1}))
	err := s.Bookings().Create(ctx, &domain.Booking{UserID: 1, RoomID: 2})

	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestStore_GetByUserID_AttachesRoom(t *testing.T) {
	s := New()
	ctx := context.Background()
	s.AddRoom(domain.Room{ID: 3, Name: "101", Capacity: 2})
	s.AddBooking(domain.Booking{UserID: 5, RoomID: 3})

	b, err := s.Bookings().GetByUserID(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, b.Room)
	assert.Equal(t, "101", b.Room.Name)

	_, err = s.Bookings().GetByUserID(ctx, 6)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestStore_UpdateRoom(t *testing.T) {
	s := New()
	ctx := context.Background()
	stored := s.AddBooking(domain.Booking{UserID: 5, RoomID: 3})

	b := &domain.Booking{ID: stored.ID, UserID: 5, RoomID: 4}
	require.NoError(t, s.Bookings().UpdateRoom(ctx, b))

	got, err := s.Bookings().GetForUpdate(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.RoomID)

	err = s.Bookings().UpdateRoom(ctx, &domain.Booking{ID: 99})
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestStore_ListOccupancy(t *testing.T) {
	s := New()
	s.AddRoom(domain.Room{ID: 2, HotelID: 1, Capacity: 1})
	s.AddRoom(domain.Room{ID: 1, HotelID: 1, Capacity: 3})
	s.AddBooking(domain.Booking{UserID: 1, RoomID: 1})
	s.AddBooking(domain.Booking{UserID: 2, RoomID: 2})

	occ, err := s.Rooms().ListOccupancy(context.Background())
	require.NoError(t, err)
	require.Len(t, occ, 2)

	assert.Equal(t, domain.RoomOccupancy{RoomID: 1, HotelID: 1, Capacity: 3, Occupied: 1}, occ[0])
	assert.True(t, occ[1].Full())
}

func TestStore_Lookups_NotFound(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Rooms().GetForUpdate(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)

	_, err = s.Enrollments().GetByUserID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrEnrollmentNotFound)

	_, err = s.Tickets().GetByEnrollmentID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)

	_, err = s.Sessions().GetByToken(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
