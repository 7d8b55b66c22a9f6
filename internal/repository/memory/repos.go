package memory

import (
	"context"
	"sort"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

// The port interfaces share method names, so every collaborator is a
// separate view over the same Store.

type BookingRepo struct{ s *Store }

type RoomRepo struct{ s *Store }

type EnrollmentRepo struct{ s *Store }

type TicketRepo struct{ s *Store }

type SessionRepo struct{ s *Store }

func (s *Store) Bookings() *BookingRepo       { return &BookingRepo{s: s} }
func (s *Store) Rooms() *RoomRepo             { return &RoomRepo{s: s} }
func (s *Store) Enrollments() *EnrollmentRepo { return &EnrollmentRepo{s: s} }
func (s *Store) Tickets() *TicketRepo         { return &TicketRepo{s: s} }
func (s *Store) Sessions() *SessionRepo       { return &SessionRepo{s: s} }

func (r *BookingRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Booking, error) {
	defer r.s.lock(ctx)()

	for _, b := range r.s.bookings {
		if b.UserID != userID {
			continue
		}
		if room, ok := r.s.rooms[b.RoomID]; ok {
			b.Room = &room
		}
		return &b, nil
	}
	return nil, domain.ErrBookingNotFound
}

func (r *BookingRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Booking, error) {
	defer r.s.lock(ctx)()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

func (r *BookingRepo) CountByRoom(ctx context.Context, roomID int64) (int, error) {
	defer r.s.lock(ctx)()
	return r.s.countByRoom(roomID), nil
}

func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	defer r.s.lock(ctx)()

	// mirrors the unique index on bookings.user_id
	for _, existing := range r.s.bookings {
		if existing.UserID == b.UserID {
			return domain.ErrAlreadyBooked
		}
	}

	r.s.nextBookingID++
	now := r.s.now()
	b.ID = r.s.nextBookingID
	b.CreatedAt = now
	b.UpdatedAt = now

	stored := *b
	stored.Room = nil
	r.s.bookings[b.ID] = stored
	return nil
}

func (r *BookingRepo) UpdateRoom(ctx context.Context, b *domain.Booking) error {
	defer r.s.lock(ctx)()

	stored, ok := r.s.bookings[b.ID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	stored.RoomID = b.RoomID
	stored.UpdatedAt = r.s.now()
	r.s.bookings[b.ID] = stored

	b.UpdatedAt = stored.UpdatedAt
	b.Room = nil
	return nil
}

func (s *Store) countByRoom(roomID int64) int {
	n := 0
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			n++
		}
	}
	return n
}

func (r *RoomRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Room, error) {
	defer r.s.lock(ctx)()

	room, ok := r.s.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return &room, nil
}

func (r *RoomRepo) ListOccupancy(ctx context.Context) ([]domain.RoomOccupancy, error) {
	defer r.s.lock(ctx)()

	res := make([]domain.RoomOccupancy, 0, len(r.s.rooms))
	for _, room := range r.s.rooms {
		res = append(res, domain.RoomOccupancy{
			RoomID:   room.ID,
			HotelID:  room.HotelID,
			Capacity: room.Capacity,
			Occupied: r.s.countByRoom(room.ID),
		})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].RoomID < res[j].RoomID })
	return res, nil
}

func (r *EnrollmentRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	defer r.s.lock(ctx)()

	e, ok := r.s.enrollments[userID]
	if !ok {
		return nil, domain.ErrEnrollmentNotFound
	}
	return &e, nil
}

func (r *TicketRepo) GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error) {
	defer r.s.lock(ctx)()

	t, ok := r.s.tickets[enrollmentID]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	return &t, nil
}

func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	defer r.s.lock(ctx)()

	sess, ok := r.s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &sess, nil
}
