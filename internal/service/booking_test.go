package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/repository/memory"
	"github.com/stpnv0/HotelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newMemoryService(t *testing.T, store *memory.Store, opts ...Option) *BookingService {
	t.Helper()
	return NewBookingService(
		store,
		store.Enrollments(),
		store.Tickets(),
		store.Rooms(),
		store.Bookings(),
		newTestLogger(t),
		opts...,
	)
}

// seedUser gives userID an enrollment and a ticket of the given shape.
func seedUser(store *memory.Store, userID int64, status domain.TicketStatus, ticketType domain.TicketType) {
	enrollmentID := userID * 10
	store.AddEnrollment(domain.Enrollment{ID: enrollmentID, UserID: userID, Name: "guest"})
	store.AddTicket(domain.Ticket{
		ID:           enrollmentID,
		EnrollmentID: enrollmentID,
		Status:       status,
		Type:         ticketType,
	})
}

var hotelTicket = domain.TicketType{ID: 1, Name: "presential+hotel", IncludesHotel: true}

func seedEligibleUser(store *memory.Store, userID int64) {
	seedUser(store, userID, domain.TicketStatusPaid, hotelTicket)
}

// --- GetBooking ---

func TestBookingService_GetBooking_NotFound(t *testing.T) {
	store := memory.New()
	svc := newMemoryService(t, store)

	_, err := svc.GetBooking(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_GetBooking_WithRoom(t *testing.T) {
	store := memory.New()
	store.AddRoom(domain.Room{ID: 4, HotelID: 1, Name: "Suite", Capacity: 2})
	stored := store.AddBooking(domain.Booking{UserID: 1, RoomID: 4})
	store.AddBooking(domain.Booking{UserID: 2, RoomID: 4})
	svc := newMemoryService(t, store)

	booking, err := svc.GetBooking(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, booking.ID)
	assert.Equal(t, int64(1), booking.UserID)
	require.NotNil(t, booking.Room)
	assert.Equal(t, "Suite", booking.Room.Name)
}

// --- CreateBooking ---

func TestBookingService_CreateBooking_Success(t *testing.T) {
	store := memory.New()
	seedEligibleUser(store, 1)
	store.AddRoom(domain.Room{ID: 7, Capacity: 1})
	svc := newMemoryService(t, store)

	booking, err := svc.CreateBooking(context.Background(), 1, 7)

	require.NoError(t, err)
	assert.NotZero(t, booking.ID)
	assert.Equal(t, int64(1), booking.UserID)
	assert.Equal(t, int64(7), booking.RoomID)
	assert.Len(t, store.AllBookings(), 1)
}

func TestBookingService_CreateBooking_Forbidden(t *testing.T) {
	tests := []struct {
		name   string
		seed   func(store *memory.Store)
		reason domain.DenyReason
	}{
		{
			name:   "no enrollment",
			seed:   func(*memory.Store) {},
			reason: domain.ReasonNoEnrollment,
		},
		{
			name: "no ticket",
			seed: func(store *memory.Store) {
				store.AddEnrollment(domain.Enrollment{ID: 10, UserID: 1})
			},
			reason: domain.ReasonNoTicket,
		},
		{
			name: "remote ticket",
			seed: func(store *memory.Store) {
				seedUser(store, 1, domain.TicketStatusPaid, domain.TicketType{IsRemote: true, IncludesHotel: true})
			},
			reason: domain.ReasonRemoteTicket,
		},
		{
			name: "ticket without hotel",
			seed: func(store *memory.Store) {
				seedUser(store, 1, domain.TicketStatusPaid, domain.TicketType{})
			},
			reason: domain.ReasonHotelNotIncluded,
		},
		{
			name: "reserved ticket",
			seed: func(store *memory.Store) {
				seedUser(store, 1, domain.TicketStatusReserved, hotelTicket)
			},
			reason: domain.ReasonTicketNotPaid,
		},
		{
			name: "already booked",
			seed: func(store *memory.Store) {
				seedEligibleUser(store, 1)
				store.AddRoom(domain.Room{ID: 8, Capacity: 5})
				store.AddBooking(domain.Booking{UserID: 1, RoomID: 8})
			},
			reason: domain.ReasonAlreadyBooked,
		},
		{
			name: "room full",
			seed: func(store *memory.Store) {
				seedEligibleUser(store, 1)
				store.AddBooking(domain.Booking{UserID: 2, RoomID: 7})
			},
			reason: domain.ReasonRoomFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.New()
			store.AddRoom(domain.Room{ID: 7, Capacity: 1})
			tt.seed(store)
			before := len(store.AllBookings())
			svc := newMemoryService(t, store)

			_, err := svc.CreateBooking(context.Background(), 1, 7)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrForbidden)
			reason, ok := domain.ReasonOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.reason, reason)
			assert.Len(t, store.AllBookings(), before)
		})
	}
}

func TestBookingService_CreateBooking_ExistingBookingAlwaysForbidden(t *testing.T) {
	tickets := map[string]domain.TicketType{
		"valid ticket":  hotelTicket,
		"remote ticket": {IsRemote: true, IncludesHotel: true},
		"without hotel": {},
	}

	for name, ticketType := range tickets {
		t.Run(name, func(t *testing.T) {
			store := memory.New()
			store.AddRoom(domain.Room{ID: 7, Capacity: 3})
			seedUser(store, 1, domain.TicketStatusPaid, ticketType)
			store.AddBooking(domain.Booking{UserID: 1, RoomID: 7})
			svc := newMemoryService(t, store)

			_, err := svc.CreateBooking(context.Background(), 1, 7)

			assert.ErrorIs(t, err, domain.ErrForbidden)
			assert.Len(t, store.AllBookings(), 1)
		})
	}
}

func TestBookingService_CreateBooking_RoomNotFound(t *testing.T) {
	store := memory.New()
	seedEligibleUser(store, 1)
	svc := newMemoryService(t, store)

	_, err := svc.CreateBooking(context.Background(), 1, 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_CreateBooking_ConcurrentLastSpot(t *testing.T) {
	store := memory.New()
	store.AddRoom(domain.Room{ID: 7, Capacity: 2})
	store.AddBooking(domain.Booking{UserID: 100, RoomID: 7})
	const users = 10
	for u := int64(1); u <= users; u++ {
		seedEligibleUser(store, u)
	}
	svc := newMemoryService(t, store)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for u := int64(1); u <= users; u++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			_, err := svc.CreateBooking(context.Background(), userID, 7)
			if err == nil {
				mu.Lock()
				success++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, domain.ErrRoomFull)
		}(u)
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	assert.Len(t, store.AllBookings(), 2)
}

func TestBookingService_CreateBooking_ConcurrentSameUser(t *testing.T) {
	store := memory.New()
	store.AddRoom(domain.Room{ID: 7, Capacity: 10})
	seedEligibleUser(store, 1)
	svc := newMemoryService(t, store)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.CreateBooking(context.Background(), 1, 7)
		}()
	}
	wg.Wait()

	assert.Len(t, store.AllBookings(), 1)
}

// --- ChangeBookingRoom ---

func TestBookingService_ChangeBookingRoom_Success(t *testing.T) {
	store := memory.New()
	store.AddRoom(domain.Room{ID: 1, Capacity: 1})
	store.AddRoom(domain.Room{ID: 2, Capacity: 2})
	stored := store.AddBooking(domain.Booking{UserID: 5, RoomID: 1})
	svc := newMemoryService(t, store)

	booking, err := svc.ChangeBookingRoom(context.Background(), 5, 2, stored.ID)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, booking.ID)
	assert.Equal(t, int64(5), booking.UserID)
	assert.Equal(t, int64(2), booking.RoomID)

	persisted := store.AllBookings()
	require.Len(t, persisted, 1)
	assert.Equal(t, int64(2), persisted[0].RoomID)
}

func TestBookingService_ChangeBookingRoom_DoesNotRecheckTicket(t *testing.T) {
	store := memory.New()
	store.AddRoom(domain.Room{ID: 1, Capacity: 1})
	store.AddRoom(domain.Room{ID: 2, Capacity: 1})
	seedUser(store, 5, domain.TicketStatusReserved, domain.TicketType{IsRemote: true})
	stored := store.AddBooking(domain.Booking{UserID: 5, RoomID: 1})
	svc := newMemoryService(t, store)

	_, err := svc.ChangeBookingRoom(context.Background(), 5, 2, stored.ID)

	assert.NoError(t, err)
}

func TestBookingService_ChangeBookingRoom_BookingNotFound(t *testing.T) {
	store := memory.New()
	store.AddRoom(domain.Room{ID: 1, Capacity: 1})
	svc := newMemoryService(t, store)

	_, err := svc.ChangeBookingRoom(context.Background(), 5, 1, 99)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_ChangeBookingRoom_NotOwner(t *testing.T) {
	store := memory.New()
	store.AddRoom(domain.Room{ID: 1, Capacity: 1})
	store.AddRoom(domain.Room{ID: 2, Capacity: 1})
	stored := store.AddBooking(domain.Booking{UserID: 1, RoomID: 1})
	svc := newMemoryService(t, store)

	_, err := svc.ChangeBookingRoom(context.Background(), 2, 2, stored.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
	assert.Equal(t, int64(1), store.AllBookings()[0].RoomID)
}

func TestBookingService_ChangeBookingRoom_RoomNotFound(t *testing.T) {
	store := memory.New()
	store.AddRoom(domain.Room{ID: 1, Capacity: 1})
	stored := store.AddBooking(domain.Booking{UserID: 1, RoomID: 1})
	svc := newMemoryService(t, store)

	_, err := svc.ChangeBookingRoom(context.Background(), 1, 2, stored.ID)

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestBookingService_ChangeBookingRoom_RoomFull(t *testing.T) {
	store := memory.New()
	store.AddRoom(domain.Room{ID: 1, Capacity: 1})
	store.AddRoom(domain.Room{ID: 2, Capacity: 1})
	stored := store.AddBooking(domain.Booking{UserID: 1, RoomID: 1})
	store.AddBooking(domain.Booking{UserID: 2, RoomID: 2})
	svc := newMemoryService(t, store)

	_, err := svc.ChangeBookingRoom(context.Background(), 1, 2, stored.ID)

	assert.ErrorIs(t, err, domain.ErrRoomFull)
	assert.Equal(t, int64(1), store.AllBookings()[0].RoomID)
}

func TestBookingService_ChangeBookingRoom_SameFullRoom(t *testing.T) {
	tests := []struct {
		name    string
		exempt  bool
		wantErr error
	}{
		{name: "counted by default", exempt: false, wantErr: domain.ErrRoomFull},
		{name: "exempted by policy", exempt: true, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.New()
			store.AddRoom(domain.Room{ID: 1, Capacity: 1})
			stored := store.AddBooking(domain.Booking{UserID: 1, RoomID: 1})
			svc := newMemoryService(t, store, WithExemptCurrentRoom(tt.exempt))

			booking, err := svc.ChangeBookingRoom(context.Background(), 1, 1, stored.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), booking.RoomID)
		})
	}
}

func TestBookingService_ChangeBookingRoom_ExemptionOnlyForOwnRoom(t *testing.T) {
	store := memory.New()
	store.AddRoom(domain.Room{ID: 1, Capacity: 1})
	store.AddRoom(domain.Room{ID: 2, Capacity: 1})
	stored := store.AddBooking(domain.Booking{UserID: 1, RoomID: 1})
	store.AddBooking(domain.Booking{UserID: 2, RoomID: 2})
	svc := newMemoryService(t, store, WithExemptCurrentRoom(true))

	_, err := svc.ChangeBookingRoom(context.Background(), 1, 2, stored.ID)

	assert.ErrorIs(t, err, domain.ErrRoomFull)
}

// --- RoomOccupancy ---

func TestBookingService_RoomOccupancy(t *testing.T) {
	store := memory.New()
	store.AddRoom(domain.Room{ID: 1, Capacity: 2})
	store.AddBooking(domain.Booking{UserID: 1, RoomID: 1})
	svc := newMemoryService(t, store)

	occ, err := svc.RoomOccupancy(context.Background())

	require.NoError(t, err)
	require.Len(t, occ, 1)
	assert.Equal(t, 1, occ[0].Occupied)
}

// --- collaborator failures ---

type mockedDeps struct {
	tx          *mocks.MockTransactor
	enrollments *mocks.MockEnrollmentRepo
	tickets     *mocks.MockTicketRepo
	rooms       *mocks.MockRoomRepo
	bookings    *mocks.MockBookingRepo
}

func newMockedService(t *testing.T) (*BookingService, mockedDeps) {
	t.Helper()
	d := mockedDeps{
		tx:          mocks.NewMockTransactor(t),
		enrollments: mocks.NewMockEnrollmentRepo(t),
		tickets:     mocks.NewMockTicketRepo(t),
		rooms:       mocks.NewMockRoomRepo(t),
		bookings:    mocks.NewMockBookingRepo(t),
	}
	svc := NewBookingService(d.tx, d.enrollments, d.tickets, d.rooms, d.bookings, newTestLogger(t))
	return svc, d
}

func passThroughTx(d mockedDeps) {
	d.tx.EXPECT().WithinTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestBookingService_CreateBooking_EnrollmentLookupFails(t *testing.T) {
	svc, d := newMockedService(t)
	passThroughTx(d)

	dbErr := errors.New("db down")
	d.enrollments.EXPECT().GetByUserID(mock.Anything, int64(1)).Return(nil, dbErr)

	_, err := svc.CreateBooking(context.Background(), 1, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domain.ErrForbidden)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_CreateBooking_InsertFails(t *testing.T) {
	svc, d := newMockedService(t)
	passThroughTx(d)

	dbErr := errors.New("insert failed")
	d.enrollments.EXPECT().GetByUserID(mock.Anything, int64(1)).
		Return(&domain.Enrollment{ID: 10, UserID: 1}, nil)
	d.tickets.EXPECT().GetByEnrollmentID(mock.Anything, int64(10)).
		Return(&domain.Ticket{ID: 3, EnrollmentID: 10, Status: domain.TicketStatusPaid, Type: hotelTicket}, nil)
	d.bookings.EXPECT().GetByUserID(mock.Anything, int64(1)).Return(nil, domain.ErrBookingNotFound)
	d.rooms.EXPECT().GetForUpdate(mock.Anything, int64(7)).Return(&domain.Room{ID: 7, Capacity: 1}, nil)
	d.bookings.EXPECT().CountByRoom(mock.Anything, int64(7)).Return(0, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(dbErr)

	_, err := svc.CreateBooking(context.Background(), 1, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestBookingService_CreateBooking_CapacityCheckedBeforeInsert(t *testing.T) {
	svc, d := newMockedService(t)
	passThroughTx(d)

	d.enrollments.EXPECT().GetByUserID(mock.Anything, int64(1)).
		Return(&domain.Enrollment{ID: 10, UserID: 1}, nil)
	d.tickets.EXPECT().GetByEnrollmentID(mock.Anything, int64(10)).
		Return(&domain.Ticket{Status: domain.TicketStatusPaid, Type: hotelTicket}, nil)
	d.bookings.EXPECT().GetByUserID(mock.Anything, int64(1)).Return(nil, domain.ErrBookingNotFound)
	d.rooms.EXPECT().GetForUpdate(mock.Anything, int64(7)).Return(&domain.Room{ID: 7, Capacity: 0}, nil)
	d.bookings.EXPECT().CountByRoom(mock.Anything, int64(7)).Return(0, nil)

	_, err := svc.CreateBooking(context.Background(), 1, 7)

	assert.ErrorIs(t, err, domain.ErrRoomFull)
}

func TestBookingService_CreateBooking_TxBeginFails(t *testing.T) {
	svc, d := newMockedService(t)

	txErr := errors.New("begin tx")
	d.tx.EXPECT().WithinTx(mock.Anything, mock.Anything).Return(txErr)

	_, err := svc.CreateBooking(context.Background(), 1, 7)

	assert.ErrorIs(t, err, txErr)
}

func TestBookingService_ChangeBookingRoom_UpdateFails(t *testing.T) {
	svc, d := newMockedService(t)
	passThroughTx(d)

	dbErr := errors.New("update failed")
	d.bookings.EXPECT().GetForUpdate(mock.Anything, int64(3)).
		Return(&domain.Booking{ID: 3, UserID: 1, RoomID: 1}, nil)
	d.rooms.EXPECT().GetForUpdate(mock.Anything, int64(2)).Return(&domain.Room{ID: 2, Capacity: 2}, nil)
	d.bookings.EXPECT().CountByRoom(mock.Anything, int64(2)).Return(1, nil)
	d.bookings.EXPECT().UpdateRoom(mock.Anything, mock.Anything).Return(dbErr)

	_, err := svc.ChangeBookingRoom(context.Background(), 1, 2, 3)

	assert.ErrorIs(t, err, dbErr)
}

func TestBookingService_GetBooking_RepoError(t *testing.T) {
	svc, d := newMockedService(t)

	dbErr := errors.New("db error")
	d.bookings.EXPECT().GetByUserID(mock.Anything, int64(1)).Return(nil, dbErr)

	_, err := svc.GetBooking(context.Background(), 1)

	assert.ErrorIs(t, err, dbErr)
}
