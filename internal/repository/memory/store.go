// Package memory keeps every booking collaborator in process memory.
// A transaction holds the store lock for its whole body, which gives the
// same isolation the PostgreSQL repositories get from row locks.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type txKey struct{}

type Store struct {
	mu sync.Mutex

	enrollments map[int64]domain.Enrollment // by user id
	tickets     map[int64]domain.Ticket     // by enrollment id
	rooms       map[int64]domain.Room
	bookings    map[int64]domain.Booking
	sessions    map[string]domain.Session

	nextBookingID int64
	now           func() time.Time
}

func New() *Store {
	return &Store{
		enrollments: make(map[int64]domain.Enrollment),
		tickets:     make(map[int64]domain.Ticket),
		rooms:       make(map[int64]domain.Room),
		bookings:    make(map[int64]domain.Booking),
		sessions:    make(map[string]domain.Session),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.bookingsCopy()
	next := s.nextBookingID

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.bookings = snapshot
		s.nextBookingID = next
		return err
	}
	return nil
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// lock takes the store lock unless ctx already runs inside WithinTx.
func (s *Store) lock(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) bookingsCopy() map[int64]domain.Booking {
	cp := make(map[int64]domain.Booking, len(s.bookings))
	for id, b := range s.bookings {
		cp[id] = b
	}
	return cp
}

// Seed helpers.

func (s *Store) AddEnrollment(e domain.Enrollment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enrollments[e.UserID] = e
}

func (s *Store) AddTicket(t domain.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets[t.EnrollmentID] = t
}

func (s *Store) AddRoom(r domain.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[r.ID] = r
}

func (s *Store) AddSession(sess domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
}

// AddBooking stores b as is, assigning an id when b.ID is zero.
func (s *Store) AddBooking(b domain.Booking) domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == 0 {
		s.nextBookingID++
		b.ID = s.nextBookingID
	} else if b.ID > s.nextBookingID {
		s.nextBookingID = b.ID
	}
	s.bookings[b.ID] = b
	return b
}

// AllBookings returns every stored booking ordered by id.
func (s *Store) AllBookings() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		res = append(res, b)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}
